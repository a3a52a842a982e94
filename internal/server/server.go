package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"HireEcho-backend/internal/apply"
	"HireEcho-backend/internal/auth"
	"HireEcho-backend/internal/background"
	"HireEcho-backend/internal/config"
	"HireEcho-backend/internal/database"
	"HireEcho-backend/internal/store"
)

// Server holds the dependencies shared by the route handlers.
type Server struct {
	Config    *config.Config
	DB        *database.Service
	Tokens    *auth.TokenService
	Blacklist auth.JwtBlacklistStore
	Runner    *background.Runner
	Log       logrus.FieldLogger

	jobs         *store.JobStore
	applications *store.ApplicationStore
	companies    *store.CompanyStore
	recorder     *apply.Recorder
}

// New wires the stores and the application recorder on top of db.
func New(cfg *config.Config, db *database.Service, blacklist auth.JwtBlacklistStore, runner *background.Runner, log logrus.FieldLogger) *Server {
	s := &Server{
		Config:       cfg,
		DB:           db,
		Tokens:       auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL),
		Blacklist:    blacklist,
		Runner:       runner,
		Log:          log,
		jobs:         store.NewJobStore(db),
		applications: store.NewApplicationStore(db),
		companies:    store.NewCompanyStore(db),
	}
	s.recorder = apply.NewRecorder(s.applications, s.jobs, runner, log)
	return s
}

// NewServer construct new http.Server serving s on the configured port
func NewServer(s *Server) *http.Server {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.Config.Port),
		Handler:           s.RegisterRoutes(),
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return server
}
