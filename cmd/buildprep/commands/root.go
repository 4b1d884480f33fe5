package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"buildprep/internal/app"
	"buildprep/internal/logger"
)

var (
	rootDir    string
	configPath string
	outDir     string
	verbose    bool
	appCtx     *app.App

	writeManifest bool
)

// Execute runs the CLI with args, writing status lines to out and
// diagnostics to errOut.
func Execute(args []string, out, errOut io.Writer) error {
	if args == nil {
		args = []string{}
	}
	root := newRootCmd(out, errOut)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "buildprep",
		Short: "Prepare the server build output",
		Long: "Ensures the server output directory exists. Server sources are not compiled;\n" +
			"the configured runtime (tsx by default) executes them directly.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(logger.Config{Verbose: verbose, Output: cmd.ErrOrStderr()})

			if rootDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				rootDir = wd
			}

			cfg, err := app.LoadConfig(rootDir, configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out-dir") {
				cfg.OutDir = outDir
			}
			if writeManifest {
				cfg.Manifest = true
			}

			appCtx, err = app.New(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			logger.L().Debug("config.loaded", "root", cfg.Root, "out_dir", cfg.OutDir, "runtime", cfg.Runtime)
			return nil
		},
		RunE: runBuild,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&rootDir, "root", "", "project root (default: current directory)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: <root>/buildprep.toml)")
	root.PersistentFlags().StringVar(&outDir, "out-dir", "dist", "output directory relative to the root")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVar(&writeManifest, "manifest", false, "also write the source manifest")

	root.AddCommand(buildCmd(), manifestCmd(), watchCmd(), versionCmd())
	return root
}
