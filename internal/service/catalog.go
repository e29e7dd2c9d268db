package service

import (
	"MuscleTracker/internal/model"
	"MuscleTracker/internal/repo"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrEmptyName — обязательное имя продукта не задано.
var ErrEmptyName = errors.New("food name is required")

// Calories считает калории по стандартной формуле: 4*protein + 4*carbs + 9*fat.
// Единственное место, где это значение вычисляется: извне калории не принимаются.
func Calories(protein, carbs, fat float64) float64 {
	return protein*4 + carbs*4 + fat*9
}

// ImportResult — итог разрушающего импорта каталога.
type ImportResult struct {
	Count int      `json:"count"`
	Names []string `json:"names"`
}

// UpsertResult — итог неразрушающего слияния каталога.
type UpsertResult struct {
	Added   int      `json:"added"`
	Updated int      `json:"updated"`
	Names   []string `json:"names"`
}

// CatalogService инкапсулирует работу с личным каталогом продуктов.
type CatalogService struct {
	repo   repo.FoodRepository
	logger *zap.SugaredLogger
}

func NewCatalogService(r repo.FoodRepository, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{repo: r, logger: logger}
}

// List возвращает весь каталог пользователя.
func (s *CatalogService) List(ctx context.Context, userID int64) ([]model.Food, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Search ищет продукты по подстроке имени без учёта регистра.
func (s *CatalogService) Search(ctx context.Context, userID int64, term string) ([]model.Food, error) {
	return s.repo.SearchByName(ctx, userID, term)
}

// Add добавляет один продукт вручную. Калории считаются на сервере.
func (s *CatalogService) Add(ctx context.Context, userID int64, name, category, unit string, protein, carbs, fat float64) (*model.Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	food := &model.Food{
		UserID:   userID,
		Name:     name,
		Category: category,
		Unit:     unit,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Calories: Calories(protein, carbs, fat),
	}
	if err := s.repo.Create(ctx, food); err != nil {
		return nil, fmt.Errorf("add food: %w", err)
	}
	return food, nil
}

// ImportCSV — разрушающий импорт: каталог пользователя целиком заменяется
// строками CSV. Удаление и вставка идут одной транзакцией: при ошибке
// прежний каталог остаётся нетронутым.
func (s *CatalogService) ImportCSV(ctx context.Context, userID int64, r io.Reader) (*ImportResult, error) {
	foods, err := parseCatalogCSV(r)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceAll(ctx, userID, foods); err != nil {
		return nil, fmt.Errorf("replace catalog: %w", err)
	}

	names := make([]string, 0, len(foods))
	for _, f := range foods {
		names = append(names, f.Name)
	}
	s.logger.Infow("catalog replaced from CSV", "user_id", userID, "count", len(foods))
	return &ImportResult{Count: len(foods), Names: names}, nil
}

// UpsertCSV — неразрушающее слияние: существующий продукт (совпадение имени
// без учёта регистра) обновляется на месте, новый — добавляется.
func (s *CatalogService) UpsertCSV(ctx context.Context, userID int64, r io.Reader) (*UpsertResult, error) {
	foods, err := parseCatalogCSV(r)
	if err != nil {
		return nil, err
	}

	added, updated, err := s.repo.UpsertAll(ctx, userID, foods)
	if err != nil {
		return nil, fmt.Errorf("upsert catalog: %w", err)
	}

	names := make([]string, 0, len(foods))
	for _, f := range foods {
		names = append(names, f.Name)
	}
	s.logger.Infow("catalog merged from CSV", "user_id", userID, "added", added, "updated", updated)
	return &UpsertResult{Added: added, Updated: updated, Names: names}, nil
}

// WriteCSV выгружает каталог пользователя в CSV, калории включены.
func (s *CatalogService) WriteCSV(ctx context.Context, userID int64, w io.Writer) error {
	foods, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list foods: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "category", "unit", "protein", "carbs", "fat", "calories"}); err != nil {
		return err
	}
	for _, f := range foods {
		rec := []string{
			f.Name,
			f.Category,
			f.Unit,
			formatFloat(f.Protein),
			formatFloat(f.Carbs),
			formatFloat(f.Fat),
			formatFloat(f.Calories),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
