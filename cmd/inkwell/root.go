package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/inkwell/internal/config"
)

var (
	cfgPath string
	cfg     config.Config
	logger  *slog.Logger

	rootCmd = &cobra.Command{
		Use:           "inkwell",
		Short:         "A scriptable 2D drawing tool with full undo history",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}

			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))
			slog.SetDefault(logger)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML config file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(versionCmd)
}
