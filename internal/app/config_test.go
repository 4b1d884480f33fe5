package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildprep/internal/app"
	"buildprep/internal/domain"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, app.ConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_DefaultsWhenMissing(t *testing.T) {
	root := t.TempDir()

	cfg, err := app.LoadConfig(root, "")
	require.NoError(t, err)

	assert.Equal(t, app.DefaultConfig(root), cfg)
	assert.Equal(t, filepath.Join(root, "dist"), cfg.Layout().OutDir)
}

func TestLoadConfig_RelativeRootIsResolved(t *testing.T) {
	cfg, err := app.LoadConfig(".", "")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Root))
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
out_dir = "build/server"
runtime = "node"
sources = ["src/server", "src/shared"]
extensions = ["ts", ".mts"]
manifest = true
debounce = "1s"
`)

	cfg, err := app.LoadConfig(root, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("build", "server"), cfg.OutDir)
	assert.Equal(t, "node", cfg.Runtime)
	assert.Equal(t, []string{filepath.Join("src", "server"), filepath.Join("src", "shared")}, cfg.Sources)
	assert.Equal(t, []string{".ts", ".mts"}, cfg.Extensions)
	assert.True(t, cfg.Manifest)
	assert.Equal(t, time.Second, cfg.Interval)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `manifest = true`)

	cfg, err := app.LoadConfig(root, "")
	require.NoError(t, err)

	assert.Equal(t, "dist", cfg.OutDir)
	assert.Equal(t, "tsx", cfg.Runtime)
	assert.Equal(t, []string{"server"}, cfg.Sources)
	assert.True(t, cfg.Manifest)
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	path := writeConfig(t, other, `runtime = "bun"`)

	cfg, err := app.LoadConfig(root, path)
	require.NoError(t, err)
	assert.Equal(t, "bun", cfg.Runtime)
	assert.Equal(t, root, cfg.Root)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `out_dir = `},
		{"unknown key", `outdir = "dist"`},
		{"absolute out_dir", `out_dir = "/tmp/dist"`},
		{"escaping out_dir", `out_dir = "../dist"`},
		{"root out_dir", `out_dir = "."`},
		{"empty runtime", `runtime = " "`},
		{"escaping source", `sources = ["server", "../other"]`},
		{"bad debounce", `debounce = "soon"`},
		{"negative debounce", `debounce = "-1s"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.body)

			_, err := app.LoadConfig(root, "")
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	root := t.TempDir()

	_, err := app.LoadConfig(root, filepath.Join(root, "nope.toml"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestNew_WiresManifestOnlyWhenEnabled(t *testing.T) {
	root := t.TempDir()
	cfg := app.DefaultConfig(root)

	a, err := app.New(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "dist", "build-manifest.json"), a.Manifests.Path())

	opts := a.WatchOptions()
	assert.Equal(t, []string{filepath.Join(root, "server")}, opts.Dirs)
	assert.Equal(t, []string{filepath.Join(root, "dist")}, opts.Ignore)
	assert.Equal(t, 250*time.Millisecond, opts.Debounce)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := app.DefaultConfig("relative/root")

	_, err := app.New(cfg, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
