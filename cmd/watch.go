package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/agreement-cli/internal/branch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the branch table file and validate every change",
	Long:  "Loads branches.table_path, then reloads it whenever the file changes. Invalid edits are reported and the previous table stays in effect.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("watch"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		r, err := initResolver()
		if err != nil {
			return err
		}

		w := branch.NewWatcher(cfg.Branches.TablePath, r, time.Duration(cfg.Branches.WatchDebounceMs)*time.Millisecond)
		w.OnReload = func(t *branch.Table) {
			zap.L().Info("branch table reloaded",
				zap.Int("branches", len(t.Branches)),
				zap.Int("policies", len(t.Policies)),
				zap.Int("branch_options", len(r.Options())),
			)
		}

		zap.L().Info("watching branch table", zap.String("path", cfg.Branches.TablePath))
		return w.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
