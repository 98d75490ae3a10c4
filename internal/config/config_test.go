package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "cometdom")
}

func TestConfigRoot(t *testing.T) {
	root := isolate(t)
	assert.Equal(t, root, ConfigRoot())
	assert.Equal(t, filepath.Join(root, "configs", "Default.yaml"), ConfigPathByLabel("Default"))

	t.Setenv("APPDATA", "/appdata")
	assert.Equal(t, filepath.Join("/appdata", "cometdom"), ConfigRoot())
}

func TestLoadMergedWithoutProfile(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{Pages: []string{"a.html"}, Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, "(default config in memory)", used)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, []string{"a.html"}, cfg.Pages)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadMergedActiveProfile(t *testing.T) {
	isolate(t)

	path, err := CreateConfig("site")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("output: static/dom.js\nminify: true\nworkers: 0\npages:\n  - https://comet.example/\n"), 0644))
	require.NoError(t, SwitchConfig("site"))

	cfg, used, err := LoadMerged(Options{Strict: true})
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, "static/dom.js", cfg.Output)
	assert.True(t, cfg.Minify)
	assert.True(t, cfg.Strict)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, []string{"https://comet.example/"}, cfg.Pages)

	cfg, _, err = LoadMerged(Options{Output: "x.js"})
	require.NoError(t, err)
	assert.Equal(t, "x.js", cfg.Output)

	cfg, used, err = LoadMerged(Options{IgnoreConfig: true})
	require.NoError(t, err)
	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoadMergedBrokenProfile(t *testing.T) {
	isolate(t)

	path, err := CreateConfig("bad")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("pages: [unterminated\n"), 0644))
	require.NoError(t, SwitchConfig("bad"))

	_, _, err = LoadMerged(Options{})
	assert.ErrorContains(t, err, "failed to load config")
}

func TestProfiles(t *testing.T) {
	isolate(t)

	_, err := CurrentLabel()
	assert.ErrorIs(t, err, ErrNoConfig)
	_, err = ActiveConfigPath()
	assert.ErrorIs(t, err, ErrNoConfig)

	_, err = CreateConfig(DefaultLabel)
	require.NoError(t, err)
	_, err = CreateConfig("staging")
	require.NoError(t, err)
	_, err = CreateConfig("staging")
	assert.Error(t, err)
	_, err = CreateConfig("../escape")
	assert.Error(t, err)

	require.NoError(t, SwitchConfig("staging"))
	assert.Error(t, SwitchConfig("missing"))

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.False(t, list[0].Active)
	assert.Equal(t, "staging", list[1].Label)
	assert.True(t, list[1].Active)

	require.NoError(t, RenameConfig("staging", "prod"))
	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "prod", label)
	assert.Error(t, RenameConfig("staging", "other"))
	assert.Error(t, RenameConfig("prod", DefaultLabel))

	_, err = RemoveConfig(DefaultLabel)
	assert.Error(t, err)

	switched, err := RemoveConfig("prod")
	require.NoError(t, err)
	assert.True(t, switched)
	label, err = CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, label)

	_, err = RemoveConfig("prod")
	assert.Error(t, err)
}
