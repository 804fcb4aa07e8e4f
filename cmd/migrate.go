package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pcc1news/pcc1-manager/config"
	"github.com/pcc1news/pcc1-manager/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("cannot load a config %v", err.Error())
		}
		n, err := store.MigrateDSN(context.Background(), cfg.DB)
		if err != nil {
			return err
		}
		slog.Default().Info("applied migrations", slog.Int("count", n))
		return nil
	},
}
