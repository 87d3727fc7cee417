package main

import (
	"ticker/db"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create and/or upgrade the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			err := db.Migrate(adb)
			if err != nil {
				return err
			}

			log.Info().Msg("Migrations succeeded")
			return nil
		})
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			err := db.Rollback(adb)
			if err != nil {
				return err
			}

			log.Info().Msg("Rollback succeeded")
			return nil
		})
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the database is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(adb db.DB) error {
			err := adb.Ping()
			if err != nil {
				return err
			}

			log.Info().Msg("Ping succeeded")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rollbackCmd)
	rootCmd.AddCommand(pingCmd)
}
