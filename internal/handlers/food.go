package handlers

import (
	"MuscleTracker/internal/middleware"
	"MuscleTracker/internal/service"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"
)

// FoodHandler обрабатывает каталог продуктов: список, поиск, ручное
// добавление и CSV-импорт/слияние/выгрузку.
type FoodHandler struct {
	Catalog *service.CatalogService
	Logger  *zap.SugaredLogger
}

// NewFoodHandler создаёт хендлер каталога
func NewFoodHandler(catalog *service.CatalogService, logger *zap.SugaredLogger) *FoodHandler {
	return &FoodHandler{Catalog: catalog, Logger: logger}
}

// List отдаёт весь каталог пользователя.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	foods, err := h.Catalog.List(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("List foods: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

// Search ищет продукты по подстроке имени без учёта регистра.
func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	foods, err := h.Catalog.Search(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		h.Logger.Errorw("Search foods: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

type addFoodRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Unit     string  `json:"unit"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add добавляет один продукт вручную. Калории считаются на сервере.
func (h *FoodHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req addFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	food, err := h.Catalog.Add(r.Context(), userID, req.Name, req.Category, req.Unit, req.Protein, req.Carbs, req.Fat)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			http.Error(w, "food name is required", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Add food: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, food)
}

// ExportCSV выгружает каталог в CSV (калории включены).
func (h *FoodHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="foods.csv"`)
	if err := h.Catalog.WriteCSV(r.Context(), userID, w); err != nil {
		h.Logger.Errorw("Export CSV: service error", "user_id", userID, "error", err)
	}
}

// ImportCSV — разрушающий импорт: каталог заменяется содержимым файла.
func (h *FoodHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	file, ok := h.csvFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.Catalog.ImportCSV(r.Context(), userID, file)
	if err != nil {
		if errors.Is(err, service.ErrMissingColumns) {
			http.Error(w, service.ErrMissingColumns.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Import CSV: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// UpsertCSV — неразрушающее слияние файла с каталогом.
func (h *FoodHandler) UpsertCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	file, ok := h.csvFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.Catalog.UpsertCSV(r.Context(), userID, file)
	if err != nil {
		if errors.Is(err, service.ErrMissingColumns) {
			http.Error(w, service.ErrMissingColumns.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Upsert CSV: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// csvFile достаёт файл из multipart-формы (поле "file").
// При ошибке сам пишет ответ и возвращает ok=false.
func (h *FoodHandler) csvFile(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("csvFile: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("csvFile: missing file", "error", err)
		http.Error(w, "missing file", http.StatusBadRequest)
		return nil, false
	}
	return file, true
}
