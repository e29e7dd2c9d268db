package handlers

import (
	"MuscleTracker/internal/middleware"
	"MuscleTracker/internal/service"
	"net/http"

	"go.uber.org/zap"
)

// ExportHandler отдаёт сводную выгрузку журналов питания и сна.
type ExportHandler struct {
	Export *service.ExportService
	Logger *zap.SugaredLogger
}

// NewExportHandler создаёт хендлер выгрузки
func NewExportHandler(export *service.ExportService, logger *zap.SugaredLogger) *ExportHandler {
	return &ExportHandler{Export: export, Logger: logger}
}

// Combined отдаёт .xlsx с двумя листами: "Food Log" и "Daily Metrics".
func (h *ExportHandler) Combined(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	wb, err := h.Export.Workbook(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("Combined export: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer wb.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="muscletracker_export.xlsx"`)
	if err := wb.Write(w); err != nil {
		h.Logger.Errorw("Combined export: write failed", "user_id", userID, "error", err)
	}
}
