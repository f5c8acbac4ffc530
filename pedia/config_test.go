package pedia

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultPathMissing(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *config)
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stationpedia.yaml")
	content := `source_path: /srv/stationeers/english.xml
code_package: hashes
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/stationeers/english.xml", config.SourcePath)
	assert.Equal(t, "hashes", config.CodePackage)
	assert.Equal(t, DefaultConfig().TextPath, config.TextPath)
	assert.Equal(t, DefaultConfig().CodePath, config.CodePath)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stationpedia.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source_path: [unclosed"), 0644))

	config, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestWithDefaults(t *testing.T) {
	config := Config{TextPath: "./elsewhere/stationpedia.txt"}.WithDefaults()
	assert.Equal(t, "./elsewhere/stationpedia.txt", config.TextPath)
	assert.Equal(t, DefaultConfig().SourcePath, config.SourcePath)
	assert.Equal(t, DefaultConfig().CodePath, config.CodePath)
	assert.Equal(t, "devicehashes", config.CodePackage)
}
