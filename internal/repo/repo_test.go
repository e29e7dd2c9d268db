package repo

import (
	"MuscleTracker/internal/model"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// База общая на процесс (cache=shared), поэтому тесты используют
// непересекающиеся user id.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.Food{}, &model.Meal{}, &model.MealItem{}, &model.SleepLog{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// mkFood — хелпер для создания продукта с посчитанными калориями
func mkFood(userID int64, name string, protein, carbs, fat float64) model.Food {
	return model.Food{
		UserID:   userID,
		Name:     name,
		Category: "Other",
		Unit:     "unit",
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Calories: protein*4 + carbs*4 + fat*9,
	}
}
