package repo

import (
	"MuscleTracker/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository — контракт доступа к учётным записям и жизненному циклу данных.
type UserRepository interface {
	// CreateUser создаёт пользователя и засевает его стартовый каталог продуктов
	// одной транзакцией: при ошибке сидирования пользователь не создаётся.
	CreateUser(ctx context.Context, user *model.User, seed []model.Food) (*model.User, error)

	// GetUserByLogin возвращает пользователя по логину (точное совпадение).
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	// ResetData удаляет все данные пользователя в порядке зависимостей
	// (MealItems → Meals → SleepLogs → Foods) и восстанавливает стартовый
	// каталог. Всё в одной транзакции: частичный сброс невозможен.
	ResetData(ctx context.Context, userID int64, seed []model.Food) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User, seed []model.Food) (*model.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		for i := range seed {
			seed[i].UserID = user.ID
		}
		if len(seed) > 0 {
			if err := tx.Create(&seed).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ResetData(ctx context.Context, userID int64, seed []model.Food) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// сначала позиции приёмов пищи — на них смотрит внешний ключ
		mealIDs := tx.Model(&model.Meal{}).Select("id").Where("user_id = ?", userID)
		if err := tx.Where("meal_id IN (?)", mealIDs).Delete(&model.MealItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Meal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.SleepLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Food{}).Error; err != nil {
			return err
		}

		for i := range seed {
			seed[i].UserID = userID
		}
		if len(seed) > 0 {
			if err := tx.Create(&seed).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
