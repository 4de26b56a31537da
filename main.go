package main

import (
	"fmt"
	"os"

	"promptstack-backend/config"
	"promptstack-backend/internal/api"
	"promptstack-backend/internal/database"
	"promptstack-backend/internal/store"
	"promptstack-backend/internal/ui"
	"promptstack-backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newStore wires config, logger, database and the optional redis cache into
// a ready Store. Both commands share it; the store is the single owner of
// persistent state.
func newStore() (*store.Store, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	rdb, err := database.ConnectRedis(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	return store.NewStore(db, rdb), cfg, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "promptstack-backend",
		Short: "Prompt storage, versioning and composition service",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := newStore()
			if err != nil {
				return err
			}
			defer logger.Sync()

			router := api.NewRouter(s)
			logger.Log.Info("starting server", zap.String("addr", cfg.ServerAddr))
			return router.Run(cfg.ServerAddr)
		},
	}

	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Run the interactive terminal client",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newStore()
			if err != nil {
				return err
			}
			defer logger.Sync()

			return ui.Run(s)
		},
	}

	rootCmd.AddCommand(serveCmd, uiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
