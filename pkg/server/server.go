// Package server exposes the dashboards and data operations over local HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/alert"
	"github.com/jakechorley/save-a-life/pkg/core/dashboard"
	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/db"
)

// Server serves one stored session's dashboards
type Server struct {
	database db.Database
	alerter  alert.Alerter
	logger   *zap.Logger
	opts     dashboard.Options
	now      func() time.Time
}

func New(database db.Database, alerter alert.Alerter, logger *zap.Logger, opts dashboard.Options) *Server {
	return &Server{
		database: database,
		alerter:  alerter,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
	}
}

// Routes builds the router. Dashboard paths match each role's navigation route.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.instrument)

	r.HandleFunc("/health", s.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/register", s.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", s.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.Logout).Methods(http.MethodPost)
	r.HandleFunc("/session", s.GetSession).Methods(http.MethodGet)

	r.Handle(model.RoleDonor.DashboardPath(), s.requireRole(s.Dashboard, model.RoleDonor)).Methods(http.MethodGet)
	r.Handle(model.RoleRecipient.DashboardPath(), s.requireRole(s.Dashboard, model.RoleRecipient)).Methods(http.MethodGet)
	r.Handle(model.RoleHospital.DashboardPath(), s.requireRole(s.Dashboard, model.RoleHospital)).Methods(http.MethodGet)
	r.Handle(model.RoleBloodBank.DashboardPath(), s.requireRole(s.Dashboard, model.RoleBloodBank)).Methods(http.MethodGet)

	r.HandleFunc("/requests", s.ListRequests).Methods(http.MethodGet)
	r.Handle("/requests", s.requireRole(s.CreateRequest, model.RoleRecipient, model.RoleHospital)).Methods(http.MethodPost)
	r.HandleFunc("/requests/{id}", s.GetRequest).Methods(http.MethodGet)
	r.Handle("/requests/{id}", s.requireRole(s.UpdateRequest)).Methods(http.MethodPatch)

	r.HandleFunc("/appointments", s.ListAppointments).Methods(http.MethodGet)
	r.Handle("/appointments", s.requireRole(s.ScheduleAppointment, model.RoleDonor)).Methods(http.MethodPost)
	r.Handle("/appointments/{id}", s.requireRole(s.UpdateAppointment)).Methods(http.MethodPatch)

	r.HandleFunc("/notifications", s.ListNotifications).Methods(http.MethodGet)
	r.HandleFunc("/notifications", s.AddNotification).Methods(http.MethodPost)
	r.HandleFunc("/notifications/read", s.MarkAllRead).Methods(http.MethodPost)
	r.HandleFunc("/notifications/{id}/read", s.MarkRead).Methods(http.MethodPost)

	r.HandleFunc("/donors", s.FindDonors).Methods(http.MethodGet)
	r.HandleFunc("/bloodbanks", s.ListBloodBanks).Methods(http.MethodGet)

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}
