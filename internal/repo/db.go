package repo

import (
	"MuscleTracker/internal/model"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// ErrNotFound — запись не найдена. Псевдоним, чтобы слой сервиса
// не зависел от gorm напрямую.
var ErrNotFound = gorm.ErrRecordNotFound

// InitDB открывает соединение с БД и прогоняет миграции моделей.
// DSN со схемой postgres:// — Postgres, иначе значение трактуется
// как путь к файлу SQLite (чистый Go-драйвер modernc).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Food{},
		&model.Meal{},
		&model.MealItem{},
		&model.SleepLog{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
