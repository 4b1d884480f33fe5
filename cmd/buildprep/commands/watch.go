package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"buildprep/internal/logger"
	"buildprep/internal/watch"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Build, then rebuild whenever server sources change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if _, err := appCtx.Prep.Prepare(ctx); err != nil {
				return err
			}

			w, err := watch.New(appCtx.WatchOptions())
			if err != nil {
				return err
			}
			logger.L().Info("watch.start", "dirs", w.WatchList())
			return w.Run(ctx)
		},
	}
}
