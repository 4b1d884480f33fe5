// Package store provides file-based persistence for buildprep.
//
// Writes go through a temp file in the target directory followed by a
// rename, so readers never observe a half-written manifest. All methods are
// concurrency-safe via internal locking.
//
// The package includes:
//   - The build manifest (ManifestFileStore), kept in the output directory
package store
