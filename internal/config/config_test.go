package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pablu23/contentForm/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, content.DefaultSites, cfg.Sites)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, "port: 9000\nsites:\n  - FAKKU\n  - NEXUS\n")

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, []string{"FAKKU", "NEXUS"}, cfg.Sites)
	assert.Equal(t, Default().PreviewSize, cfg.PreviewSize)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestReadConfigEmptyFile(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestReadConfigUnknownField(t *testing.T) {
	_, err := ReadConfig(writeConfig(t, "prot: 9000\n"))
	assert.Error(t, err)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Port out of range", func(c *Config) { c.Port = 70000 }},
		{"No sites", func(c *Config) { c.Sites = nil }},
		{"Blank site", func(c *Config) { c.Sites = []string{"NEXUS", ""} }},
		{"Preview too small", func(c *Config) { c.PreviewSize = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, ValidateConfig(cfg))
		})
	}
}
