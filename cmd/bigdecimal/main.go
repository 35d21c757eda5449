package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const logLevelFlag = "log-level"

type app struct {
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "bigdecimal",
		Short:         "Inspect and convert arbitrary precision decimals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := cmd.Flags().GetString(logLevelFlag)
			if err != nil {
				return fmt.Errorf("get log level flag: %w", err)
			}

			a.logger, err = newLogger(level)
			if err != nil {
				return err
			}

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().String(logLevelFlag, "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		a.parseCmd(),
		a.decodeCmd(),
		a.compareCmd(),
		a.convertCmd(),
		a.packCmd(),
		a.unpackCmd(),
		versionCmd(),
	)

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version of current build",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
