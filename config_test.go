package fp64set

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	r := strings.NewReader("log_size: 10\nsimd: \"off\"\n")
	cfg, err := LoadConfig(r)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.LogSize)
	assert.Equal(t, "off", cfg.SIMD)
}

func TestLoadConfigDefaultsSIMD(t *testing.T) {
	r := strings.NewReader("log_size: 6\n")
	cfg, err := LoadConfig(r)
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.simdOrDefault())
}

func TestLoadConfigRejectsGarbage(t *testing.T) {
	r := strings.NewReader("not: [valid: yaml")
	_, err := LoadConfig(r)
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	cfg := Config{LogSize: 5, SIMD: "off"}
	s, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, s.logsize)
	assert.Equal(t, "off", s.simdMode)
	assert.False(t, s.simd)
}
