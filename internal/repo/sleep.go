package repo

import (
	"MuscleTracker/internal/model"
	"context"

	"gorm.io/gorm"
)

// SleepRepository — контракт доступа к записям о сне.
type SleepRepository interface {
	// Upsert сохраняет запись о сне: для пары (user, date) существует не более
	// одной записи, повторная запись перезаписывает часы/качество/заметки.
	Upsert(ctx context.Context, log *model.SleepLog) error

	// ListByUser возвращает записи о сне по убыванию даты.
	ListByUser(ctx context.Context, userID int64) ([]model.SleepLog, error)
}

type sleepRepo struct {
	db *gorm.DB
}

// NewSleepRepository создаёт реализацию репозитория для SleepLog.
func NewSleepRepository(db *gorm.DB) SleepRepository {
	return &sleepRepo{db: db}
}

func (r *sleepRepo) Upsert(ctx context.Context, log *model.SleepLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.SleepLog
		err := tx.Where("user_id = ? AND date = ?", log.UserID, log.Date).First(&existing).Error
		switch {
		case err == nil:
			existing.Hours = log.Hours
			existing.Quality = log.Quality
			existing.Notes = log.Notes
			return tx.Save(&existing).Error
		case err == gorm.ErrRecordNotFound:
			return tx.Create(log).Error
		default:
			return err
		}
	})
}

func (r *sleepRepo) ListByUser(ctx context.Context, userID int64) ([]model.SleepLog, error) {
	var logs []model.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").Find(&logs).Error
	return logs, err
}
