package main

import (
	"MuscleTracker/internal/config"
	"MuscleTracker/internal/handlers"
	"MuscleTracker/internal/middleware"
	"MuscleTracker/internal/repo"
	"MuscleTracker/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	foodRepo := repo.NewFoodRepository(gormDB)
	mealRepo := repo.NewMealRepository(gormDB)
	sleepRepo := repo.NewSleepRepository(gormDB)

	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(foodRepo, sugar)
	mealService := service.NewMealService(mealRepo, sugar)
	sleepService := service.NewSleepService(sleepRepo)
	exportService := service.NewExportService(mealRepo, sleepRepo)

	h := handlers.NewHandler(userService, catalogService, mealService, sleepService, exportService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
