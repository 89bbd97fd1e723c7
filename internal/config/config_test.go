package config

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "slides", cfg.SlidesDir)
	assert.Equal(t, 6, cfg.Presenter.NotesHeight)
	assert.True(t, cfg.Presenter.WatchEnabled())
	for _, action := range Actions {
		assert.NotEmpty(t, cfg.Keys[action], "no default keys for %s", action)
	}
}

func TestParseFillsMissingValues(t *testing.T) {
	cfg, err := Parse([]byte(`
slides_dir = "talk"

[presenter]
scroll_step = 5
watch = false

[keys]
next = ["space", "l"]
`))
	require.NoError(t, err)

	assert.Equal(t, "talk", cfg.SlidesDir)
	assert.Equal(t, 5, cfg.Presenter.ScrollStep)
	assert.Equal(t, 6, cfg.Presenter.NotesHeight)
	assert.False(t, cfg.Presenter.WatchEnabled())
	assert.Equal(t, []string{"space", "l"}, cfg.Keys["next"])
	assert.Equal(t, DefaultKeys()["prev"], cfg.Keys["prev"])
}

func TestParseRejectsInvalidValues(t *testing.T) {
	_, err := Parse([]byte(`
[presenter]
notes_height = 40
scroll_step = -1

[keys]
teleport = ["t"]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes_height")
	assert.Contains(t, err.Error(), "scroll_step")
	assert.Contains(t, err.Error(), "keys.teleport")
}

func TestParseRejectsBadTOML(t *testing.T) {
	_, err := Parse([]byte("slides_dir = "))
	require.Error(t, err)
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.SlidesDir = "deck"
	cfg.Presenter.ShowNotes = true

	require.NoError(t, Write(cfg, path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "deck", loaded.SlidesDir)
	assert.True(t, loaded.Presenter.ShowNotes)
	assert.Equal(t, cfg.Keys, loaded.Keys)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ApplyOverrides(cfg, Overrides{
		SlidesDir:   "other",
		NotesHeight: 10,
		ShowNotes:   true,
		ProgressBar: true,
		NoWatch:     true,
	}))
	assert.Equal(t, "other", cfg.SlidesDir)
	assert.Equal(t, 10, cfg.Presenter.NotesHeight)
	assert.Equal(t, 3, cfg.Presenter.ScrollStep)
	assert.True(t, cfg.Presenter.ShowNotes)
	assert.True(t, cfg.Presenter.ProgressBar)
	assert.False(t, cfg.Presenter.WatchEnabled())

	require.Error(t, ApplyOverrides(cfg, Overrides{NotesHeight: 1}))
}

func TestLoadUserConfigCreatesDefaults(t *testing.T) {
	t.Cleanup(xdg.Reload)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	cfg, path, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, RelPath), path)
	assert.FileExists(t, path)
	assert.Equal(t, DefaultConfig(), cfg)

	again, againPath, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, path, againPath)
	assert.Equal(t, cfg, again)
}
