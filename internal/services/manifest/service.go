package manifest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"buildprep/internal/digest"
	"buildprep/internal/domain"
	"buildprep/internal/logger"
)

// Scanner walks the server source directories and digests every matching file.
type Scanner struct {
	root       string
	outDir     string // skipped while walking
	sources    []string
	extensions []string
	runtime    string

	now   func() time.Time
	newID func() string
}

// New returns a scanner over sources (relative to layout.Root) keeping files
// whose extension is in extensions. An empty extension list keeps every file.
// The output directory is never scanned, even when it sits inside a source.
func New(layout domain.Layout, sources, extensions []string, runtime string) *Scanner {
	return &Scanner{
		root:       layout.Root,
		outDir:     layout.OutDir,
		sources:    sources,
		extensions: extensions,
		runtime:    runtime,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

// Scan builds a manifest. Missing source directories are skipped.
func (s *Scanner) Scan(ctx context.Context) (domain.Manifest, error) {
	log := logger.L()

	files := []domain.ManifestFile{}
	seen := make(map[string]bool)

	for _, src := range s.sources {
		dir := filepath.Join(s.root, src)
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			log.Debug("manifest.source.missing", "dir", dir)
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if s.outDir != "" && path == s.outDir {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !s.wanted(path) {
				return nil
			}

			rel, err := filepath.Rel(s.root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if seen[rel] {
				return nil
			}
			seen[rel] = true

			sum, size, err := digest.File(path)
			if err != nil {
				return err
			}
			files = append(files, domain.ManifestFile{Path: rel, Size: size, Blake2b: sum})
			return nil
		})
		if err != nil {
			return domain.Manifest{}, &domain.PrepError{Op: "scan", Path: dir, Err: err}
		}
	}

	slices.SortFunc(files, func(a, b domain.ManifestFile) int {
		return strings.Compare(a.Path, b.Path)
	})

	parts := make([]string, 0, 2*len(files))
	for _, f := range files {
		parts = append(parts, f.Path, f.Blake2b)
	}

	m := domain.Manifest{
		BuildID:     s.newID(),
		CreatedAt:   s.now(),
		Runtime:     s.runtime,
		Root:        s.root,
		Files:       files,
		Fingerprint: digest.Fingerprint(parts...),
	}
	log.Debug("manifest.scanned", "files", len(files), "fingerprint", m.Fingerprint)
	return m, nil
}

func (s *Scanner) wanted(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range s.extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// Compile-time assertion that Scanner implements domain.SourceScanner.
var _ domain.SourceScanner = (*Scanner)(nil)
