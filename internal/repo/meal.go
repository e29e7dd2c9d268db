package repo

import (
	"MuscleTracker/internal/model"
	"context"

	"gorm.io/gorm"
)

// MealRepository — контракт доступа к приёмам пищи.
type MealRepository interface {
	// Create сохраняет приём пищи вместе с позициями атомарно.
	Create(ctx context.Context, meal *model.Meal) error

	// ListByUser возвращает приёмы пищи пользователя с позициями и продуктами,
	// date == "" — без фильтра по дате. Порядок: дата по убыванию, затем
	// время создания по убыванию (свежие первыми).
	ListByUser(ctx context.Context, userID int64, date string) ([]model.Meal, error)
}

type mealRepo struct {
	db *gorm.DB
}

// NewMealRepository создаёт реализацию репозитория для Meal.
func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepo{db: db}
}

func (r *mealRepo) Create(ctx context.Context, meal *model.Meal) error {
	// GORM создаёт запись и ассоциации одной транзакцией
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepo) ListByUser(ctx context.Context, userID int64, date string) ([]model.Meal, error) {
	q := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Food").
		Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var meals []model.Meal
	err := q.Order("date DESC, created_at DESC").Find(&meals).Error
	return meals, err
}
