package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"dialpool/internal/shared/query"
)

// ParsePagination reads page and page_size from the query string. Invalid
// values fall back to the defaults of query.PageFilter.
func ParsePagination(c *gin.Context) query.PageFilter {
	return query.PageFilter{
		Page:     parseQueryInt(c, "page", 1),
		PageSize: parseQueryInt(c, "page_size", query.DefaultPageSize),
	}.Normalized()
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// ParseUintParam parses a positive path parameter.
func ParseUintParam(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
