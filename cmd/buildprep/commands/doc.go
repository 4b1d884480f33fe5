// Package commands defines the buildprep CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (none)     Same as build
//   - build      Ensure the output directory exists, optionally write the manifest
//   - manifest   Print the source manifest without writing it
//   - watch      Build, then rebuild when server sources change
//   - version    Print the version
//
// # Implementation
//
// The root command loads buildprep.toml and builds the dependency graph
// (stores, services) before any subcommand runs. Errors are returned to main
// unprinted; main reports them once and exits with status 1.
package commands
