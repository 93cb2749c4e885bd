package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"careerbot/backend/internal/config"
	"careerbot/backend/internal/domain/chat"
	"careerbot/backend/internal/httpserver"
	"careerbot/backend/internal/infrastructure/token"
	authusecase "careerbot/backend/internal/usecase/auth"
	chatusecase "careerbot/backend/internal/usecase/chat"
	userusecase "careerbot/backend/internal/usecase/user"

	"github.com/spf13/cobra"
)

const tokenIssuer = "careerbot"

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the account store and start the HTTP server",
		RunE:  runServe,
	}
	addServeFlags(cmd)
	return cmd
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("port", "", "Listen port (overrides HTTP_PORT)")
	cmd.Flags().Bool("skip-migrations", false, "Do not apply migrations on start")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.HTTPPort = port
	}
	skipMigrations, _ := cmd.Flags().GetBool("skip-migrations")

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	rootCtx := cmd.Context()
	if rootCtx == nil {
		rootCtx = context.Background()
	}

	st, err := openStore(rootCtx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreKind(), err)
	}
	defer st.close()
	if !skipMigrations {
		if err := st.migrate(rootCtx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	streaks, closeStreaks, err := openStreaks(rootCtx, cfg, log)
	if err != nil {
		return fmt.Errorf("open streak store: %w", err)
	}
	defer closeStreaks()

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		secret, err = token.RandomSecret()
		if err != nil {
			return err
		}
		log.Warn(rootCtx, "SESSION_SECRET not set; using a random key, sessions end on restart")
	}
	tokens := token.NewJWTManager(secret, cfg.SessionTTL, tokenIssuer)

	server, err := httpserver.NewServer(cfg, httpserver.Services{
		Auth: authusecase.NewService(st.users, tokens, authusecase.WithLogger(log)),
		User: userusecase.NewService(st.users),
		Chat: chatusecase.NewService(chat.NewMatcher(nil), streaks, cfg.StreakScope == config.StreakScopeGlobal, log),
	}, log)
	if err != nil {
		return err
	}

	shutdownCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info(rootCtx, "HTTP server listening", "addr", server.Addr(), "store", st.kind)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-shutdownCtx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error(ctx, "graceful shutdown failed", "error", err)
		return err
	}
	log.Info(ctx, "graceful shutdown completed")
	return nil
}
