// Command api runs the HireEcho HTTP server.
//
// @title HireEcho API
// @version 1.0
// @description Job board backend: job postings, applications and the company directory.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"HireEcho-backend/internal/auth"
	"HireEcho-backend/internal/background"
	"HireEcho-backend/internal/config"
	"HireEcho-backend/internal/database"
	"HireEcho-backend/internal/logging"
	"HireEcho-backend/internal/server"
)

const (
	connectTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
	drainTimeout    = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.Production())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	db, err := database.NewDBInstance(connectCtx, &database.DBConfig{
		URI:       cfg.DatabaseURI(),
		DBName:    cfg.DBName,
		StrictAPI: cfg.ConnStr == "",
	}, log)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("database failed to initialize")
	}

	runner := background.NewRunner(log, cfg.IncrementTimeout)
	blacklist := auth.NewInMemoryBlacklistStore(ctx, time.Minute)
	srv := server.NewServer(server.New(cfg, db, blacklist, runner, log))

	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}

	drainCtx, cancelDrain := context.WithTimeout(context.Background(), drainTimeout)
	defer cancelDrain()
	if err := runner.Wait(drainCtx); err != nil {
		log.WithError(err).Warn("background tasks abandoned")
	}

	closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelClose()
	if err := db.Close(closeCtx); err != nil {
		log.WithError(err).Error("database close")
	}
}
