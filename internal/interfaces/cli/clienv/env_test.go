package clienv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnvToMode(t *testing.T) {
	tests := map[string]string{
		"production":  "release",
		"prod":        "release",
		"test":        "test",
		"development": "debug",
		"":            "debug",
	}
	for env, want := range tests {
		assert.Equal(t, want, MapEnvToMode(env), env)
	}
}
