// Package manifest builds the build manifest for server sources that are
// executed in place by the runtime rather than compiled into the output
// directory.
//
// Files are collected from the configured source directories, filtered by
// extension, digested with BLAKE2b and sorted by slash-separated path so the
// manifest fingerprint only changes when the sources do.
package manifest
