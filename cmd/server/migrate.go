package main

import (
	"fmt"

	"careerbot/backend/internal/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending account store migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := openStore(ctx, cfg)
			if err != nil {
				return fmt.Errorf("open %s store: %w", cfg.StoreKind(), err)
			}
			defer st.close()

			if err := st.migrate(ctx); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			log.Info(ctx, "migrations applied", "store", st.kind)
			fmt.Fprintf(cmd.OutOrStdout(), "%s store is up to date\n", st.kind)
			return nil
		},
	}
}
