// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProcessEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"NODE_ENV": "development",
		"MODE":     "staging",
		"APP_X":    "ignored",
	}

	// Act
	cfg, err := ParseProcessEnv(environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.NodeEnv)
	assert.Equal(t, "staging", cfg.Mode)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "staging", cfg.DotEnvMode())
}

func TestParseProcessEnv_Empty(t *testing.T) {
	cfg, err := ParseProcessEnv(map[string]string{})

	require.NoError(t, err)
	assert.Empty(t, cfg.NodeEnv)
	assert.Empty(t, cfg.Mode)
	assert.Empty(t, cfg.DotEnvMode())
}

func TestParseProcessEnv_IgnoresRealEnvironment(t *testing.T) {
	t.Setenv("NODE_ENV", "production")

	cfg, err := ParseProcessEnv(map[string]string{"NODE_ENV": "test"})

	require.NoError(t, err)
	assert.Equal(t, "test", cfg.NodeEnv)
}

func TestProcessEnv_IsDevelopment(t *testing.T) {
	tests := []struct {
		nodeEnv string
		want    bool
	}{
		{nodeEnv: "production", want: false},
		{nodeEnv: "development", want: true},
		{nodeEnv: "test", want: true},
		{nodeEnv: "Production", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.nodeEnv, func(t *testing.T) {
			p := &ProcessEnv{NodeEnv: tt.nodeEnv}
			assert.Equal(t, tt.want, p.IsDevelopment())
		})
	}
}

func TestProcessEnv_DotEnvModeFallsBackToNodeEnv(t *testing.T) {
	p := &ProcessEnv{NodeEnv: "production"}
	assert.Equal(t, "production", p.DotEnvMode())
}
