// Package prep implements the server build step.
//
// It prints a start line, ensures the output directory exists without
// touching an existing one, optionally writes the source manifest, and prints
// a completion line naming the runtime that will execute the sources.
package prep
