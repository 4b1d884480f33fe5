package domain

import "time"

// Layout locates the project on disk.
type Layout struct {
	Root   string // absolute project root
	OutDir string // absolute output directory, inside Root
}

// Result describes what a preparation run did.
type Result struct {
	OutDir   string
	Created  bool      // the output directory did not exist before the run
	Manifest *Manifest // nil unless manifest writing is enabled
}

// Manifest records the server sources that the runtime will execute in place.
type Manifest struct {
	BuildID     string         `json:"build_id"`
	CreatedAt   time.Time      `json:"created_at"`
	Runtime     string         `json:"runtime"`
	Root        string         `json:"root"`
	Files       []ManifestFile `json:"files"`
	Fingerprint string         `json:"fingerprint"`
}

// ManifestFile is one source file listed in a Manifest.
type ManifestFile struct {
	Path    string `json:"path"` // slash-separated, relative to Root
	Size    int64  `json:"size"`
	Blake2b string `json:"blake2b"`
}
