package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/nglmq/chi-checksum/internal/auth"
	"github.com/nglmq/chi-checksum/internal/config"
	"github.com/nglmq/chi-checksum/internal/http-server/server"
	"github.com/nglmq/chi-checksum/internal/middleware/logger"
	"go.uber.org/zap"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var issueToken = flag.String("issue-token", "", "print a bearer token for the given subject and exit")

func main() {
	config.ParseFlags()

	if *issueToken != "" {
		token, err := buildToken(config.JWTSecret, *issueToken)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(token)
		return
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func buildToken(secret, subject string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret is not configured")
	}
	return auth.BuildJWTString(secret, subject)
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, closeStore, err := server.Start(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              config.RunAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Log.Info("server started", zap.String("addr", config.RunAddr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
