// Package digest hashes server sources for the build manifest.
//
// Contents
//
//   - BLAKE2b-256 digests of individual files (File)
//   - Short fingerprints over an ordered set of digests for display (Fingerprint)
package digest
