package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yungbote/skillup-backend/internal/app"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
)

type rootOptions struct {
	configFile string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "skillup",
		Short:         "Learning path and skill suggestion API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "Optional YAML config file (env vars still win)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Force development logging at debug level")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newMigrateCmd(opts))
	root.AddCommand(newAuditCmd(opts))
	return root
}

// bootstrap loads config and builds the logger every subcommand needs.
func bootstrap(opts *rootOptions) (app.Config, *logger.Logger, error) {
	cfg, err := app.LoadConfig(viper.New(), opts.configFile)
	if err != nil {
		return app.Config{}, nil, err
	}
	mode := cfg.LogMode
	if opts.debug {
		mode = "development"
	}
	log, err := logger.New(mode)
	if err != nil {
		return app.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}
