package store

import (
	"path/filepath"
	"sync"

	"buildprep/internal/domain"
)

// ManifestFilename is the manifest's name inside the output directory.
const ManifestFilename = "build-manifest.json"

// ManifestFileStore persists the build manifest to the output directory.
type ManifestFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewManifestFileStore returns a ManifestFileStore rooted at dir.
func NewManifestFileStore(dir string) *ManifestFileStore {
	return &ManifestFileStore{dir: dir}
}

// Path returns the manifest's location on disk.
func (s *ManifestFileStore) Path() string {
	return filepath.Join(s.dir, ManifestFilename)
}

// SaveManifest atomically replaces the manifest on disk.
func (s *ManifestFileStore) SaveManifest(m domain.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.Path(), m, 0o644)
}

// LoadManifest returns the stored manifest and whether it was present.
func (s *ManifestFileStore) LoadManifest() (domain.Manifest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var m domain.Manifest
	ok, err := readJSON(s.Path(), &m)
	if err != nil || !ok {
		return domain.Manifest{}, false, err
	}
	return m, true, nil
}

// Compile-time assertion that ManifestFileStore implements domain.ManifestStore.
var _ domain.ManifestStore = (*ManifestFileStore)(nil)
