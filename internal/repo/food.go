package repo

import (
	"MuscleTracker/internal/model"
	"context"
	"strings"

	"gorm.io/gorm"
)

// FoodRepository — контракт доступа к каталогу продуктов пользователя.
type FoodRepository interface {
	// ListByUser возвращает весь каталог пользователя.
	ListByUser(ctx context.Context, userID int64) ([]model.Food, error)

	// SearchByName ищет продукты по подстроке имени без учёта регистра.
	SearchByName(ctx context.Context, userID int64, term string) ([]model.Food, error)

	// Create добавляет один продукт.
	Create(ctx context.Context, food *model.Food) error

	// ReplaceAll удаляет весь каталог пользователя и вставляет foods.
	// Одна транзакция: при любой ошибке прежний каталог остаётся нетронутым.
	ReplaceAll(ctx context.Context, userID int64, foods []model.Food) error

	// UpsertAll для каждого продукта ищет существующий по имени без учёта
	// регистра: найден — обновляет на месте (id сохраняется), нет — вставляет.
	// Вся пачка в одной транзакции. Возвращает число добавленных и обновлённых.
	UpsertAll(ctx context.Context, userID int64, foods []model.Food) (added, updated int, err error)
}

type foodRepo struct {
	db *gorm.DB
}

// NewFoodRepository создаёт реализацию репозитория для Food.
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepo{db: db}
}

func (r *foodRepo) ListByUser(ctx context.Context, userID int64) ([]model.Food, error) {
	var foods []model.Food
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&foods).Error
	return foods, err
}

func (r *foodRepo) SearchByName(ctx context.Context, userID int64, term string) ([]model.Food, error) {
	var foods []model.Food
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND lower(name) LIKE ?", userID, pattern).
		Order("id").Find(&foods).Error
	return foods, err
}

func (r *foodRepo) Create(ctx context.Context, food *model.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepo) ReplaceAll(ctx context.Context, userID int64, foods []model.Food) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.Food{}).Error; err != nil {
			return err
		}
		for i := range foods {
			foods[i].UserID = userID
		}
		if len(foods) > 0 {
			if err := tx.Create(&foods).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *foodRepo) UpsertAll(ctx context.Context, userID int64, foods []model.Food) (int, int, error) {
	var added, updated int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range foods {
			f := foods[i]

			var existing model.Food
			err := tx.Where("user_id = ? AND lower(name) = ?", userID, strings.ToLower(f.Name)).
				First(&existing).Error
			switch {
			case err == nil:
				// обновляем на месте, идентичность записи сохраняется
				existing.Category = f.Category
				existing.Unit = f.Unit
				existing.Protein = f.Protein
				existing.Carbs = f.Carbs
				existing.Fat = f.Fat
				existing.Calories = f.Calories
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				updated++
			case err == gorm.ErrRecordNotFound:
				f.UserID = userID
				if err := tx.Create(&f).Error; err != nil {
					return err
				}
				added++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return added, updated, nil
}
