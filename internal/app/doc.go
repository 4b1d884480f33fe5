// Package app wires application dependencies for the CLI.
//
// It loads Config from an optional buildprep.toml in the project root and
// builds the concrete stores and services from it, exposing them via the
// App struct for commands to use.
package app
