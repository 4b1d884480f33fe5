package commands

import "github.com/spf13/cobra"

// version is set at link time with -ldflags "-X buildprep/cmd/buildprep/commands.version=...".
var version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		// Skip config loading so version works outside a project.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("buildprep version %s\n", version)
		},
	}
}
