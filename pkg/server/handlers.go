package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/pkg/core/dashboard"
	"github.com/jakechorley/save-a-life/pkg/core/directory"
	"github.com/jakechorley/save-a-life/pkg/core/model"
	"github.com/jakechorley/save-a-life/pkg/core/services"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeError maps service errors onto status codes. Unknown errors are logged and hidden.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrMissingField), errors.Is(err, services.ErrInvalidField):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNoSession):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrForbiddenRole):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidTransition):
		status = http.StatusConflict
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", zap.Error(err))
		msg = "internal error"
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(services.ErrInvalidField, errors.New("invalid request body"))
	}
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "active", "service": "save-a-life"})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var input services.Registration
	if err := decodeBody(r, &input); err != nil {
		s.writeError(w, err)
		return
	}

	session, err := services.Register(r.Context(), s.database, s.logger, input)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"session": session, "redirect": session.Role.DashboardPath()})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var input services.Credentials
	if err := decodeBody(r, &input); err != nil {
		s.writeError(w, err)
		return
	}

	session, err := services.Login(r.Context(), s.database, s.logger, input)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"session": session, "redirect": session.Role.DashboardPath()})
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := services.Logout(r.Context(), s.database, s.logger); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := services.CurrentSession(r.Context(), s.database)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Dashboard renders the view for the session put on the context by requireRole
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := sessionFrom(ctx)

	in, err := services.DashboardInput(ctx, s.database, *session, s.now())
	if err != nil {
		s.writeError(w, err)
		return
	}

	view, err := dashboard.ForRole(in, s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := services.ListBloodRequests(r.Context(), s.database)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (s *Server) GetRequest(w http.ResponseWriter, r *http.Request) {
	details, err := services.GetRequestDetails(r.Context(), s.database, mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var form services.RequestForm
	if err := decodeBody(r, &form); err != nil {
		s.writeError(w, err)
		return
	}

	input, err := services.RequestFromForm(*sessionFrom(r.Context()), form)
	if err != nil {
		s.writeError(w, err)
		return
	}

	request, err := services.CreateBloodRequest(r.Context(), s.database, s.alerter, s.logger, s.now(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

type statusUpdate struct {
	Status string `json:"status"`
}

func (s *Server) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	var body statusUpdate
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	if err := services.UpdateRequestStatus(r.Context(), s.database, s.logger, id, model.RequestStatus(body.Status)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := services.ListAppointments(r.Context(), s.database)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (s *Server) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	var form services.DonationForm
	if err := decodeBody(r, &form); err != nil {
		s.writeError(w, err)
		return
	}

	input, err := services.AppointmentFromForm(*sessionFrom(r.Context()), form)
	if err != nil {
		s.writeError(w, err)
		return
	}

	appointment, err := services.ScheduleAppointment(r.Context(), s.database, s.alerter, s.logger, s.now(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appointment)
}

func (s *Server) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var body statusUpdate
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	if err := services.UpdateAppointmentStatus(r.Context(), s.database, s.logger, id, model.AppointmentStatus(body.Status)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := services.ListNotifications(r.Context(), s.database)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": notifications,
		"unreadCount":   services.CountUnread(notifications),
	})
}

func (s *Server) AddNotification(w http.ResponseWriter, r *http.Request) {
	var input services.NewNotification
	if err := decodeBody(r, &input); err != nil {
		s.writeError(w, err)
		return
	}

	notification, err := services.AddNotification(r.Context(), s.database, s.alerter, s.logger, s.now(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, notification)
}

func (s *Server) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := services.MarkAsRead(r.Context(), s.database, s.logger, mux.Vars(r)["id"]); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	changed, err := services.MarkAllAsRead(r.Context(), s.database, s.logger)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"marked": changed})
}

func (s *Server) FindDonors(w http.ResponseWriter, r *http.Request) {
	var bloodType model.BloodType
	if raw := r.URL.Query().Get("bloodType"); raw != "" {
		// an unescaped '+' arrives as a space
		raw = strings.ReplaceAll(raw, " ", "+")
		bt, ok := model.ParseBloodType(raw)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown blood type " + raw})
			return
		}
		bloodType = bt
	}

	donors := directory.SearchDonors(bloodType)
	if donors == nil {
		donors = []directory.Donor{}
	}
	writeJSON(w, http.StatusOK, donors)
}

func (s *Server) ListBloodBanks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, directory.BloodBanks())
}
