package service

import (
	"MuscleTracker/internal/model"
	"MuscleTracker/internal/repo"
	"context"
	"fmt"
)

// SleepService инкапсулирует журнал сна.
type SleepService struct {
	repo repo.SleepRepository
}

func NewSleepService(r repo.SleepRepository) *SleepService {
	return &SleepService{repo: r}
}

// Log сохраняет запись о сне за дату. Повторная запись за ту же дату
// перезаписывает часы/качество/заметки, дубликаты не создаются.
func (s *SleepService) Log(ctx context.Context, userID int64, date string, hours float64, quality, notes string) error {
	log := &model.SleepLog{
		UserID:  userID,
		Date:    date,
		Hours:   hours,
		Quality: quality,
		Notes:   notes,
	}
	if err := s.repo.Upsert(ctx, log); err != nil {
		return fmt.Errorf("log sleep: %w", err)
	}
	return nil
}

// Logs возвращает записи о сне по убыванию даты.
func (s *SleepService) Logs(ctx context.Context, userID int64) ([]model.SleepLog, error) {
	return s.repo.ListByUser(ctx, userID)
}
