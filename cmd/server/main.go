// Package main provides the network log translator API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Humam-hub/network-log-translator/internal/api"
	"github.com/Humam-hub/network-log-translator/internal/auth"
	"github.com/Humam-hub/network-log-translator/internal/config"
	"github.com/Humam-hub/network-log-translator/internal/explain"
	"github.com/Humam-hub/network-log-translator/internal/llm"
	"github.com/Humam-hub/network-log-translator/internal/session"
	"github.com/Humam-hub/network-log-translator/internal/speech"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// A missing API key disables analysis and transcription for every
	// session but does not prevent the server from starting; the affected
	// endpoints surface the problem to the user.
	var requester *explain.Requester
	var transcriber *speech.Transcriber

	clientOpts := []llm.Option{llm.WithTimeout(cfg.RequestTimeout)}
	if cfg.Model != "" {
		clientOpts = append(clientOpts, llm.WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, llm.WithBaseURL(cfg.BaseURL))
	}

	client, err := llm.NewGroqClientFromEnv(clientOpts...)
	if err != nil {
		logger.Warn("analysis disabled", zap.Error(err))
	} else {
		requester = explain.NewRequester(client, cfg.RequestsPerMinute)
		transcriber, _ = speech.NewTranscriberFromEnv()
	}

	sessions := session.NewManager(cfg.SessionTTL)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Sweep(sweepCtx)

	server := api.NewServer(api.Config{
		Sessions:    sessions,
		Requester:   requester,
		Synthesizer: speech.NewSynthesizer(),
		Transcriber: transcriber,
		Issuer:      auth.NewIssuer(cfg.TokenSecret, cfg.TokenTTL),
		Logger:      logger,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, server),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}

// requestLogger logs every request with method, path, and duration.
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}
