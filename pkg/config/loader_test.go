package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mizuki0629/rrcm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
dotfiles:
  linux: "${HOME}/.dotfiles"
  mac: "${HOME}/.dotfiles"
  windows: "%USERPROFILE%\\dotfiles"
repos:
  - name: example
    url: "git@github.com:example/dotfiles.git"
    deploy:
      home:
        linux: "${HOME}"
      config:
        linux: "${XDG_CONFIG_HOME}"
`

const sampleTOML = `
[dotfiles]
linux = "${HOME}/.dotfiles"

[[repos]]
name = "example"
url = "git@github.com:example/dotfiles.git"

[repos.deploy.home]
linux = "${HOME}"
`

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Repos, 1)
	assert.Equal(t, "example", cfg.Repos[0].Name)
	assert.Equal(t, "${HOME}", cfg.Repos[0].Deploy["home"].Linux)
	assert.Equal(t, "${HOME}/.dotfiles", cfg.Dotfiles.Linux)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTOML), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Repos, 1)
	assert.Equal(t, "${HOME}", cfg.Repos[0].Deploy["home"].Linux)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dotfiles: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestDefaultStarterConfig(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "${HOME}/.dotfiles", cfg.Dotfiles.Linux)
	assert.Equal(t, `%USERPROFILE%\dotfiles`, cfg.Dotfiles.Windows)
	assert.Empty(t, cfg.Repos)
}

func TestInitWritesStarterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rrcm", "config.yaml")

	require.NoError(t, Init(path))
	assert.FileExists(t, path)

	// Round-trip: the written file must load
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Repos)
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dotfiles: {}"), 0644))

	err := Init(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestDefaultPathUnderConfigHome(t *testing.T) {
	assert.Contains(t, DefaultPath(), filepath.Join("rrcm", "config.yaml"))
}
