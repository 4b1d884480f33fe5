package commands

import (
	"github.com/spf13/cobra"

	"buildprep/internal/logger"
)

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Ensure the output directory exists and report the build",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}
	cmd.Flags().BoolVar(&writeManifest, "manifest", false, "also write the source manifest")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	res, err := appCtx.Prep.Prepare(cmd.Context())
	if err != nil {
		return err
	}
	logger.L().Debug("build.done", "out_dir", res.OutDir, "created", res.Created)
	if res.Manifest != nil {
		cmd.Printf("Manifest: %s (%d files, fingerprint %s)\n",
			appCtx.Manifests.Path(), len(res.Manifest.Files), res.Manifest.Fingerprint)
	}
	return nil
}
