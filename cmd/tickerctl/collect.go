package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"ticker/db"
	"ticker/lib"
	"ticker/parser"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const userAgent = "tickerctl"

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch every feed and ingest new posts",
	Long: `Fetch every feed and ingest new posts.

With --watch, collect runs every collect.interval until interrupted.

Example:
  tickerctl collect
  tickerctl collect --watch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withDB(func(adb db.DB) error {
			p := parser.New(userAgent)
			opts := lib.CollectOptions{
				LockTimeout: cfg.Collect.LockTimeout,
				Window:      cfg.Collect.Window,
			}

			collect := func(ctx context.Context) error {
				res, err := lib.Collect(ctx, adb, p, opts)
				if err != nil {
					return err
				}

				return printJSON(res)
			}

			if watch {
				return lib.Watch(ctx, cfg.Collect.Interval, collect)
			}

			err := collect(ctx)
			if errors.Cause(err) == lib.ErrLocked {
				log.Warn().Msg("Collect is already running")
				return nil
			}
			return err
		})
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete posts older than purge.max_age",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			n, err := lib.Purge(adb, lib.PurgeOptions{
				MaxAge:      cfg.Purge.MaxAge,
				BatchSize:   cfg.Purge.BatchSize,
				LockTimeout: cfg.Collect.LockTimeout,
			})
			if errors.Cause(err) == lib.ErrLocked {
				log.Warn().Msg("Purge is already running")
				return nil
			}
			if err != nil {
				return err
			}

			return printJSON(map[string]int{"deleted": n})
		})
	},
}

func init() {
	collectCmd.Flags().Bool("watch", false, "collect periodically until interrupted")

	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(purgeCmd)
}
