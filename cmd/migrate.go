package main

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/skillup-backend/internal/app"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer log.Sync()
			dbs, err := app.OpenDB(cfg, log)
			if err != nil {
				return err
			}
			log.Info("schema migrated", "driver", cfg.DB.Driver)
			return dbs.Close()
		},
	}
}
