package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"ticker/auth"
	"ticker/config"
	"ticker/db"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configDir  string
	configName string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tickerctl",
	Short: "Manage the ticker news aggregator",
	Long: `Manage the ticker news aggregator: migrate the database, collect and
purge posts, and administer feeds and users.

Settings are read from <config-dir>/<config-name>.{yaml,json,toml} and
overridden by TICKER_ environment variables, ex. TICKER_DATABASE_DSN.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.New(configDir, configName)
		if err != nil {
			return err
		}

		lvl, err := cfg.Level()
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(lvl)

		return errors.Wrap(auth.SetCost(cfg.BcryptCost), "failed to set bcrypt cost")
	},
}

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".config", "directory holding the config file")
	rootCmd.PersistentFlags().StringVar(&configName, "config-name", "config", "config file name, without extension")
}

func appDB() (db.DB, error) {
	adb, err := db.New(&cfg.DB)
	return adb, errors.Wrap(err, "failed to create DB client")
}

// withDB opens the database for the duration of fn
func withDB(fn func(db.DB) error) error {
	adb, err := appDB()
	if err != nil {
		return err
	}
	defer adb.Close()

	return fn(adb)
}

// printJSON writes each value as one line of JSON to stdout
func printJSON(vs ...interface{}) error {
	for _, v := range vs {
		b, err := json.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "failed to marshal json")
		}
		fmt.Println(string(b))
	}

	return nil
}

func scanLine() (string, error) {
	s := bufio.NewScanner(os.Stdin)
	if !s.Scan() {
		return "", errors.Wrap(s.Err(), "failed to read stdin")
	}

	return s.Text(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
