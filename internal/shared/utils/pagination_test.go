package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"dialpool/internal/shared/query"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   query.PageFilter
	}{
		{"defaults", "/records", query.PageFilter{Page: 1, PageSize: query.DefaultPageSize}},
		{"explicit", "/records?page=3&page_size=50", query.PageFilter{Page: 3, PageSize: 50}},
		{"capped", "/records?page_size=5000", query.PageFilter{Page: 1, PageSize: query.MaxPageSize}},
		{"garbage", "/records?page=abc&page_size=-1", query.PageFilter{Page: 1, PageSize: query.DefaultPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePagination(newContext(tt.target)))
		})
	}
}

func TestParseUintParam(t *testing.T) {
	c := newContext("/")
	c.Params = gin.Params{{Key: "id", Value: "42"}, {Key: "bad", Value: "0"}}

	id, ok := ParseUintParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = ParseUintParam(c, "bad")
	assert.False(t, ok)

	_, ok = ParseUintParam(c, "missing")
	assert.False(t, ok)
}
