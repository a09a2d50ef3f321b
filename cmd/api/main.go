package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/chloe-app/backend/internal/config"
	"github.com/chloe-app/backend/internal/handler"
	"github.com/chloe-app/backend/internal/logger"
	"github.com/chloe-app/backend/internal/model/category"
	"github.com/chloe-app/backend/internal/model/teammember"
	"github.com/chloe-app/backend/internal/service/assistant"
	"github.com/chloe-app/backend/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	if envErr != nil {
		zl.Warn("failed to load .env file, continuing with system environment variables only", zap.Error(envErr))
	}

	// Assistant ids are read per request; a gap here is only worth a warning.
	resolver := assistant.NewResolver(nil)
	if _, err := resolver.Resolve(); err != nil {
		zl.Warn("multilingual config incomplete", zap.Error(err))
	}

	router := handler.NewRouter(handler.Deps{
		Categories:     category.NewMemoryStore(category.Seed()),
		TeamMembers:    teammember.NewDisabledStore(),
		Chat:           chat.NewService(),
		Assistants:     resolver,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         zl,
	})

	startServer(ctx, zl, cfg.Server, router)
}

func startServer(ctx context.Context, zl *zap.Logger, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		ErrorLog:          zap.NewStdLog(zl),
	}

	zl.Info("Chloe backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
	zl.Info("server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
