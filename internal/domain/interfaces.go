package domain

import "context"

// ManifestStore persists the build manifest inside the output directory.
type ManifestStore interface {
	SaveManifest(m Manifest) error
	LoadManifest() (Manifest, bool, error)
}

// SourceScanner builds a manifest from the configured source directories.
type SourceScanner interface {
	Scan(ctx context.Context) (Manifest, error)
}

// Preparer runs the build preparation.
type Preparer interface {
	Prepare(ctx context.Context) (Result, error)
}
