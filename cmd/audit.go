package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/skillup-backend/internal/app"
)

func newAuditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Count goals and progress rows whose learning path is gone",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer log.Sync()
			report, err := app.RunAudit(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "orphaned goals: %d\norphaned progress: %d\n",
				report.OrphanedGoals, report.OrphanedProgress)
			return nil
		},
	}
}
