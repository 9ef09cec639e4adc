package setutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintSet(t *testing.T) {
	s := NewUintSetWithCap(2)

	assert.True(t, s.Add(3))
	assert.True(t, s.Add(7))
	assert.False(t, s.Add(3))

	assert.True(t, s.Has(7))
	assert.False(t, s.Has(9))
	assert.Equal(t, 2, s.Len())
}
