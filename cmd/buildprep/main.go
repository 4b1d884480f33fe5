package main

import (
	"fmt"
	"io"
	"os"

	"buildprep/cmd/buildprep/commands"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and maps any error to exit status 1.
func run(args []string, stdout, stderr io.Writer) int {
	if err := commands.Execute(args, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, "Server build failed:", err)
		return 1
	}
	return 0
}
