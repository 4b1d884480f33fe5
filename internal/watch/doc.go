// Package watch re-runs the build preparation when server sources change.
//
// Source directories are watched recursively with fsnotify, and directories
// created later are added as they appear. Bursts of events are debounced
// into a single run. Events under ignored paths (the output directory) and
// chmod-only events are dropped.
package watch
