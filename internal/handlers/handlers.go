package handlers

import (
	"MuscleTracker/internal/config"
	"MuscleTracker/internal/middleware"
	"MuscleTracker/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	catalogService *service.CatalogService,
	mealService *service.MealService,
	sleepService *service.SleepService,
	exportService *service.ExportService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	foodHandler := NewFoodHandler(catalogService, logger)
	mealHandler := NewMealHandler(mealService, logger)
	sleepHandler := NewSleepHandler(sleepService, logger)
	exportHandler := NewExportHandler(exportService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/reset", userHandler.Reset)

	// Food catalog routes
	r.Get("/api/foods", foodHandler.List)
	r.Get("/api/foods/search", foodHandler.Search)
	r.Post("/api/foods", foodHandler.Add)
	r.Get("/api/foods/export", foodHandler.ExportCSV)
	r.Post("/api/foods/import", foodHandler.ImportCSV)
	r.Post("/api/foods/upsert", foodHandler.UpsertCSV)

	// Meal & nutrition routes
	r.Post("/api/meals", mealHandler.Log)
	r.Get("/api/meals", mealHandler.List)
	r.Get("/api/nutrition/daily", mealHandler.Daily)

	// Sleep routes
	r.Post("/api/sleep", sleepHandler.Log)
	r.Get("/api/sleep", sleepHandler.List)

	// Combined export
	r.Get("/api/export", exportHandler.Combined)

	return &Handler{Router: r}
}
