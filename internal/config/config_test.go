package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("UNCPATH_QUIET", "")
	t.Setenv("UNCPATH_DEBUG", "yes")
	t.Setenv(MappingsEnvVar, `[{"host":"h","share":"s","mount_point":"/m"}]`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Quiet)
	assert.True(t, cfg.Debug)
	assert.Equal(t, `[{"host":"h","share":"s","mount_point":"/m"}]`, cfg.EnvMappings)
}

func TestSettersOnlyEnable(t *testing.T) {
	cfg := &Config{Debug: true}
	cfg.SetDebug(false)
	cfg.SetQuiet(true)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Quiet)
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", false, false},
		{"", true, true},
		{"1", false, true},
		{"true", false, true},
		{"yes", false, true},
		{"0", true, false},
		{"no", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("UNCPATH_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, envBool("UNCPATH_TEST_BOOL", tt.def))
		})
	}
}
