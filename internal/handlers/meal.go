package handlers

import (
	"MuscleTracker/internal/middleware"
	"MuscleTracker/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// MealHandler обрабатывает логирование приёмов пищи и суточную агрегацию.
type MealHandler struct {
	Meals  *service.MealService
	Logger *zap.SugaredLogger
}

// NewMealHandler создаёт хендлер приёмов пищи
func NewMealHandler(meals *service.MealService, logger *zap.SugaredLogger) *MealHandler {
	return &MealHandler{Meals: meals, Logger: logger}
}

// mealTypes — допустимые типы приёма пищи. Проверяются только на границе API,
// хранилище принимает произвольный текст.
var mealTypes = map[string]bool{
	"Breakfast": true,
	"Lunch":     true,
	"Dinner":    true,
	"Snack":     true,
}

type logMealRequest struct {
	MealType string `json:"meal_type"`
	Date     string `json:"date"`
	Items    []struct {
		FoodID   int64   `json:"food_id"`
		Quantity float64 `json:"quantity"`
	} `json:"items"`
}

// Log сохраняет приём пищи с позициями.
func (h *MealHandler) Log(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req logMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if !mealTypes[req.MealType] {
		http.Error(w, "invalid meal_type", http.StatusBadRequest)
		return
	}
	if !validDate(req.Date) {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	items := make([]service.MealItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.MealItemInput{FoodID: it.FoodID, Quantity: it.Quantity})
	}

	if err := h.Meals.Log(r.Context(), userID, req.MealType, req.Date, items); err != nil {
		if errors.Is(err, service.ErrNoItems) || errors.Is(err, service.ErrBadQuantity) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Log meal: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"result": "logged"})
}

// List отдаёт журнал приёмов пищи, опционально за одну дату (?date=).
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	date := r.URL.Query().Get("date")
	if date != "" && !validDate(date) {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	meals, err := h.Meals.Logs(r.Context(), userID, date)
	if err != nil {
		h.Logger.Errorw("List meals: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

// Daily отдаёт суточные итоги питания. Ошибки чтения не возвращаются:
// сервис в этом случае отдаёт нулевые итоги.
func (h *MealHandler) Daily(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	date := r.URL.Query().Get("date")
	if !validDate(date) {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Meals.Daily(r.Context(), userID, date))
}

// validDate проверяет формат календарного дня YYYY-MM-DD.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
