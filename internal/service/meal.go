package service

import (
	"MuscleTracker/internal/model"
	"MuscleTracker/internal/repo"
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// ErrBadQuantity — количество в позиции приёма пищи должно быть положительным.
var ErrBadQuantity = errors.New("quantity must be positive")

// ErrNoItems — приём пищи без позиций не логируется.
var ErrNoItems = errors.New("meal must contain at least one item")

// MealItemInput — позиция приёма пищи на входе сервиса.
type MealItemInput struct {
	FoodID   int64
	Quantity float64
}

// DailyNutrition — суточные итоги, округлённые до двух знаков.
// Всегда считаются заново от текущих макросов каталога, нигде не хранятся.
type DailyNutrition struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

// MealService инкапсулирует логирование приёмов пищи и агрегацию питания.
type MealService struct {
	repo   repo.MealRepository
	logger *zap.SugaredLogger
}

func NewMealService(r repo.MealRepository, logger *zap.SugaredLogger) *MealService {
	return &MealService{repo: r, logger: logger}
}

// Log сохраняет приём пищи вместе с позициями атомарно.
func (s *MealService) Log(ctx context.Context, userID int64, mealType, date string, items []MealItemInput) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	meal := &model.Meal{
		UserID:   userID,
		MealType: mealType,
		Date:     date,
		Items:    make([]model.MealItem, 0, len(items)),
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return ErrBadQuantity
		}
		meal.Items = append(meal.Items, model.MealItem{FoodID: it.FoodID, Quantity: it.Quantity})
	}

	if err := s.repo.Create(ctx, meal); err != nil {
		return fmt.Errorf("log meal: %w", err)
	}
	return nil
}

// Logs возвращает приёмы пищи с позициями и продуктами,
// date == "" — вся история. Свежие записи первыми.
func (s *MealService) Logs(ctx context.Context, userID int64, date string) ([]model.Meal, error) {
	return s.repo.ListByUser(ctx, userID, date)
}

// Daily возвращает суточные итоги по макросам и калориям.
// Ошибки чтения подавляются: метрика дашборда отдаёт нули, а не падает.
func (s *MealService) Daily(ctx context.Context, userID int64, date string) DailyNutrition {
	meals, err := s.repo.ListByUser(ctx, userID, date)
	if err != nil {
		s.logger.Warnw("daily nutrition read failed, returning zeros",
			"user_id", userID, "date", date, "error", err)
		return DailyNutrition{}
	}

	var total DailyNutrition
	for _, meal := range meals {
		for _, item := range meal.Items {
			if item.Food == nil {
				// позиция ссылается на продукт, удалённый из каталога
				continue
			}
			total.Protein += item.Food.Protein * item.Quantity
			total.Carbs += item.Food.Carbs * item.Quantity
			total.Fat += item.Food.Fat * item.Quantity
			total.Calories += item.Food.Calories * item.Quantity
		}
	}

	total.Protein = round2(total.Protein)
	total.Carbs = round2(total.Carbs)
	total.Fat = round2(total.Fat)
	total.Calories = round2(total.Calories)
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
