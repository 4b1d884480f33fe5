package prep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"buildprep/internal/domain"
	"buildprep/internal/logger"
)

// Service prepares the server build output.
//
// The server sources are not compiled: the runtime executes them directly,
// so preparing a build means ensuring the output directory exists and,
// optionally, recording a manifest of the sources.
type Service struct {
	layout  domain.Layout
	runtime string
	out     io.Writer

	scanner   domain.SourceScanner // nil disables the manifest
	manifests domain.ManifestStore
}

// New returns a preparation service writing status lines to out.
func New(layout domain.Layout, runtime string, out io.Writer) *Service {
	if out == nil {
		out = io.Discard
	}
	return &Service{layout: layout, runtime: runtime, out: out}
}

// WithManifest enables writing a manifest after the output directory is ensured.
func (s *Service) WithManifest(scanner domain.SourceScanner, store domain.ManifestStore) *Service {
	s.scanner = scanner
	s.manifests = store
	return s
}

// Prepare ensures the output directory and reports completion.
func (s *Service) Prepare(ctx context.Context) (domain.Result, error) {
	log := logger.L()
	fmt.Fprintln(s.out, "Building server...")

	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	created, err := EnsureDir(s.layout.OutDir)
	if err != nil {
		return domain.Result{}, err
	}
	log.Debug("prep.outdir", "path", s.layout.OutDir, "created", created)

	res := domain.Result{OutDir: s.layout.OutDir, Created: created}

	if s.scanner != nil && s.manifests != nil {
		m, err := s.scanner.Scan(ctx)
		if err != nil {
			return domain.Result{}, err
		}
		if err := s.manifests.SaveManifest(m); err != nil {
			return domain.Result{}, &domain.PrepError{Op: "write manifest", Path: s.layout.OutDir, Err: err}
		}
		log.Info("prep.manifest", "files", len(m.Files), "fingerprint", m.Fingerprint)
		res.Manifest = &m
	}

	fmt.Fprintf(s.out, "✓ Server build complete (TypeScript files will be executed with %s)\n", s.runtime)
	return res, nil
}

// EnsureDir creates path with its parents when missing. An existing
// directory is left untouched and reported with created=false.
func EnsureDir(path string) (created bool, err error) {
	fi, err := os.Stat(path)
	switch {
	case err == nil:
		if !fi.IsDir() {
			return false, &domain.PrepError{Op: "stat", Path: path, Err: domain.ErrNotDirectory}
		}
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(path, 0o755); err != nil {
			return false, &domain.PrepError{Op: "create", Path: path, Err: unwrapPath(err)}
		}
		return true, nil
	default:
		return false, &domain.PrepError{Op: "stat", Path: path, Err: unwrapPath(err)}
	}
}

// unwrapPath drops the *fs.PathError wrapper so the path is not printed twice.
func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// Compile-time assertion that Service implements domain.Preparer.
var _ domain.Preparer = (*Service)(nil)
