package app

import (
	"context"
	"io"
	"path/filepath"

	"buildprep/internal/domain"
	"buildprep/internal/services/manifest"
	"buildprep/internal/services/prep"
	"buildprep/internal/store"
	"buildprep/internal/watch"
)

// App bundles the services and stores the commands use.
type App struct {
	Config    Config
	Layout    domain.Layout
	Scanner   *manifest.Scanner
	Manifests *store.ManifestFileStore
	Prep      *prep.Service
}

// New validates cfg and constructs the dependency graph. Status lines from
// the preparation service are written to out.
func New(cfg Config, out io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	layout := cfg.Layout()

	scanner := manifest.New(layout, cfg.Sources, cfg.Extensions, cfg.Runtime)
	manifests := store.NewManifestFileStore(layout.OutDir)

	svc := prep.New(layout, cfg.Runtime, out)
	if cfg.Manifest {
		svc.WithManifest(scanner, manifests)
	}

	return &App{
		Config:    cfg,
		Layout:    layout,
		Scanner:   scanner,
		Manifests: manifests,
		Prep:      svc,
	}, nil
}

// WatchOptions returns watcher settings for the configured sources.
// The output directory is ignored so manifest writes do not retrigger a run.
func (a *App) WatchOptions() watch.Options {
	dirs := make([]string, 0, len(a.Config.Sources))
	for _, s := range a.Config.Sources {
		dirs = append(dirs, filepath.Join(a.Layout.Root, s))
	}
	return watch.Options{
		Dirs:     dirs,
		Ignore:   []string{a.Layout.OutDir},
		Debounce: a.Config.Interval,
		Run: func(ctx context.Context) error {
			_, err := a.Prep.Prepare(ctx)
			return err
		},
	}
}
