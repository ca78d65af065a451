package main

import (
	"context"
	"fmt"
	stdLog "log"
	"os"
	"time"

	lendingApp "github.com/Astemirdum/book-lending/lending/app"
	lendingConfig "github.com/Astemirdum/book-lending/lending/config"
	statsApp "github.com/Astemirdum/book-lending/stats/app"
	statsConfig "github.com/Astemirdum/book-lending/stats/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	EnvFile string
	Debug   bool
}

func (o *rootOptions) logLevel() zapcore.Level {
	if o.Debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "bookfriend",
		Short:         "Lend books to your friends",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(opts.EnvFile); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("load envs from %s: %w", opts.EnvFile, err)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env", ".env", "dotenv file, skipped when missing")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "debug logging")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newStatsCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newRemindCommand(opts))
	return cmd
}

func lendingCfg(opts *rootOptions) *lendingConfig.Config {
	return lendingConfig.NewConfig(
		lendingConfig.WithLogLevel(opts.logLevel()),
		lendingConfig.WithWriteTimeout(time.Minute),
	)
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the lending web service",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			lendingApp.Run(lendingCfg(opts))
		},
	}
}

func newStatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Run the activity statistics service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return statsApp.Run(statsConfig.NewConfig(
				statsConfig.WithLogLevel(opts.logLevel()),
				statsConfig.WithWriteTimeout(time.Minute),
			))
		},
	}
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back one step of the lending schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return lendingApp.Migrate(cmd.Context(), lendingCfg(opts), args[0] == "up")
		},
	}
}

func newRemindCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Notify borrowers whose books are due within a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := lendingApp.Remind(cmd.Context(), lendingCfg(opts))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d reminders sent\n", n)
			return nil
		},
	}
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		stdLog.Fatal(err)
	}
}
