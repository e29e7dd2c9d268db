package service

import (
	"MuscleTracker/internal/model"
	"MuscleTracker/internal/repo"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
)

// FoodLogRow — одна строка «тайди»-журнала: позиция приёма пищи
// с макросами, умноженными на количество.
type FoodLogRow struct {
	Date     string    `json:"date"`
	MealType string    `json:"meal_type"`
	FoodName string    `json:"food_name"`
	Quantity float64   `json:"quantity"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Calories float64   `json:"calories"`
	LoggedAt time.Time `json:"logged_at"`
}

// DailyMetricsRow — суточная строка сводного экспорта: итоги питания,
// сшитые с записью о сне по дате. Отсутствующая сторона помечается
// флагом и остаётся пустой в выгрузке.
type DailyMetricsRow struct {
	Date string

	HasNutrition bool
	Protein      float64
	Carbs        float64
	Fat          float64
	Calories     float64

	HasSleep     bool
	Hours        float64
	SleepQuality string
	Notes        string
}

// ExportService собирает сводную выгрузку из журналов питания и сна.
type ExportService struct {
	meals  repo.MealRepository
	sleeps repo.SleepRepository
}

func NewExportService(meals repo.MealRepository, sleeps repo.SleepRepository) *ExportService {
	return &ExportService{meals: meals, sleeps: sleeps}
}

// FoodLog возвращает строки журнала питания: по одной на позицию приёма пищи,
// в порядке приёмов (дата по убыванию, затем время создания по убыванию).
func (s *ExportService) FoodLog(ctx context.Context, userID int64) ([]FoodLogRow, error) {
	meals, err := s.meals.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	var rows []FoodLogRow
	for _, meal := range meals {
		for _, item := range meal.Items {
			if item.Food == nil {
				// продукт удалён из каталога после логирования
				continue
			}
			rows = append(rows, FoodLogRow{
				Date:     meal.Date,
				MealType: meal.MealType,
				FoodName: item.Food.Name,
				Quantity: item.Quantity,
				Protein:  item.Food.Protein * item.Quantity,
				Carbs:    item.Food.Carbs * item.Quantity,
				Fat:      item.Food.Fat * item.Quantity,
				Calories: item.Food.Calories * item.Quantity,
				LoggedAt: meal.CreatedAt,
			})
		}
	}
	return rows, nil
}

// mergeDailyMetrics сшивает суточные итоги питания с журналом сна по дате:
// внешнее объединение через map по строке даты. Дата из любого источника
// попадает в результат; сортировка — дата по убыванию.
func mergeDailyMetrics(foodLog []FoodLogRow, sleeps []model.SleepLog) []DailyMetricsRow {
	byDate := make(map[string]*DailyMetricsRow)

	row := func(date string) *DailyMetricsRow {
		if r, ok := byDate[date]; ok {
			return r
		}
		r := &DailyMetricsRow{Date: date}
		byDate[date] = r
		return r
	}

	for _, fl := range foodLog {
		r := row(fl.Date)
		r.HasNutrition = true
		r.Protein += fl.Protein
		r.Carbs += fl.Carbs
		r.Fat += fl.Fat
		r.Calories += fl.Calories
	}
	for _, sl := range sleeps {
		r := row(sl.Date)
		r.HasSleep = true
		r.Hours = sl.Hours
		r.SleepQuality = sl.Quality
		r.Notes = sl.Notes
	}

	out := make([]DailyMetricsRow, 0, len(byDate))
	for _, r := range byDate {
		if r.HasNutrition {
			r.Protein = round2(r.Protein)
			r.Carbs = round2(r.Carbs)
			r.Fat = round2(r.Fat)
			r.Calories = round2(r.Calories)
		}
		out = append(out, *r)
	}
	// даты в формате YYYY-MM-DD сортируются лексикографически
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

const (
	sheetFoodLog      = "Food Log"
	sheetDailyMetrics = "Daily Metrics"
)

// Workbook собирает двухлистовую книгу: «Food Log» — журнал по позициям,
// «Daily Metrics» — суточные итоги, сшитые со сном.
func (s *ExportService) Workbook(ctx context.Context, userID int64) (*excelize.File, error) {
	foodLog, err := s.FoodLog(ctx, userID)
	if err != nil {
		return nil, err
	}
	sleeps, err := s.sleeps.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sleep logs: %w", err)
	}
	metrics := mergeDailyMetrics(foodLog, sleeps)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetFoodLog); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetDailyMetrics); err != nil {
		return nil, err
	}

	foodHeader := []any{"date", "meal_type", "food_name", "quantity", "protein", "carbs", "fat", "calories", "logged_at"}
	if err := writeRow(f, sheetFoodLog, 1, foodHeader); err != nil {
		return nil, err
	}
	for i, r := range foodLog {
		cells := []any{
			r.Date, r.MealType, r.FoodName, r.Quantity,
			r.Protein, r.Carbs, r.Fat, r.Calories,
			r.LoggedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := writeRow(f, sheetFoodLog, i+2, cells); err != nil {
			return nil, err
		}
	}

	metricsHeader := []any{"date", "total_protein", "total_carbs", "total_fat", "total_calories", "hours", "sleep_quality", "notes"}
	if err := writeRow(f, sheetDailyMetrics, 1, metricsHeader); err != nil {
		return nil, err
	}
	for i, r := range metrics {
		cells := []any{r.Date, nil, nil, nil, nil, nil, nil, nil}
		if r.HasNutrition {
			cells[1], cells[2], cells[3], cells[4] = r.Protein, r.Carbs, r.Fat, r.Calories
		}
		if r.HasSleep {
			cells[5], cells[6], cells[7] = r.Hours, r.SleepQuality, r.Notes
		}
		if err := writeRow(f, sheetDailyMetrics, i+2, cells); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// writeRow пишет значения в строку листа начиная с колонки A.
// nil-значения оставляют ячейку пустой.
func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
