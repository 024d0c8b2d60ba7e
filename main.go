// Command promanager-devapi is a local SQLite implementation of the
// ProManager API used for development and end-to-end tests.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/kidandcat/promanager/internal/auth"
	"github.com/kidandcat/promanager/internal/config"
	"github.com/kidandcat/promanager/internal/db"
	"github.com/kidandcat/promanager/internal/logger"
)

func main() {
	config.LoadDotenv()
	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, ServiceName: "promanager-devapi"})

	store, err := db.Open(cfg.DevAPI.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer store.Close()

	// Sync admin users from config
	for _, email := range cfg.DevAPI.AdminEmails {
		ok, err := store.PromoteAdmin(email)
		if err != nil {
			log.Error().Err(err).Str("email", email).Msg("promote admin")
			continue
		}
		if ok {
			log.Info().Str("email", email).Msg("admin role granted")
		}
	}

	uploads := filepath.Join(cfg.DevAPI.DataDir, "uploads")
	if err := os.MkdirAll(uploads, 0755); err != nil {
		log.Fatal().Err(err).Msg("create uploads dir")
	}

	srv := newServer(store, auth.NewIssuer(cfg.DevAPI.JWTSecret, cfg.DevAPI.TokenTTL), uploads, log)
	srv.admins = cfg.DevAPI.AdminEmails

	httpSrv := &http.Server{
		Addr:              cfg.DevAPI.Addr,
		Handler:           srv.routes(cfg.DevAPI.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.DevAPI.Addr).Strs("cors", cfg.DevAPI.CORSOrigins).Msg("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
