package handlers

import (
	"MuscleTracker/internal/middleware"
	"MuscleTracker/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// SleepHandler обрабатывает журнал сна.
type SleepHandler struct {
	Sleep  *service.SleepService
	Logger *zap.SugaredLogger
}

// NewSleepHandler создаёт хендлер сна
func NewSleepHandler(sleep *service.SleepService, logger *zap.SugaredLogger) *SleepHandler {
	return &SleepHandler{Sleep: sleep, Logger: logger}
}

type logSleepRequest struct {
	Date    string  `json:"date"`
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
	Notes   string  `json:"notes"`
}

// Log сохраняет запись о сне. Повторная запись за ту же дату перезаписывает
// предыдущую, дубликатов не возникает.
func (h *SleepHandler) Log(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req logSleepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if !validDate(req.Date) {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if err := h.Sleep.Log(r.Context(), userID, req.Date, req.Hours, req.Quality, req.Notes); err != nil {
		h.Logger.Errorw("Log sleep: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"result": "logged"})
}

// List отдаёт записи о сне по убыванию даты.
func (h *SleepHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	logs, err := h.Sleep.Logs(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List sleep: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
