package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dialpool/internal/shared/authorization"
)

func TestSelectPrincipal(t *testing.T) {
	p, err := selectPrincipal(true, 0)
	require.NoError(t, err)
	assert.True(t, p.IsAdmin())

	p, err = selectPrincipal(false, 4)
	require.NoError(t, err)
	id, ok := p.AgentID()
	assert.True(t, ok)
	assert.Equal(t, uint(4), id)
	assert.Equal(t, authorization.RoleAgent, p.Role())

	_, err = selectPrincipal(true, 4)
	assert.Error(t, err)
	_, err = selectPrincipal(false, 0)
	assert.Error(t, err)
}
