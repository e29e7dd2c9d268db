package service

import (
	"MuscleTracker/internal/model"
	"MuscleTracker/internal/repo"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// мок для repo.SleepRepository
type mockSleepRepo struct{ mock.Mock }

func (m *mockSleepRepo) Upsert(ctx context.Context, log *model.SleepLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockSleepRepo) ListByUser(ctx context.Context, userID int64) ([]model.SleepLog, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.SleepLog); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.SleepRepository = (*mockSleepRepo)(nil)

func TestExportService_FoodLog(t *testing.T) {
	ctx := context.Background()
	meals := new(mockMealRepo)
	sleeps := new(mockSleepRepo)
	svc := NewExportService(meals, sleeps)

	egg := &model.Food{Name: "Egg", Protein: 6, Carbs: 0.3, Fat: 5, Calories: 70.2}
	loggedAt := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	meals.On("ListByUser", mock.Anything, int64(1), "").Return([]model.Meal{
		{
			Date:      "2025-06-01",
			MealType:  "Breakfast",
			CreatedAt: loggedAt,
			Items: []model.MealItem{
				{Food: egg, Quantity: 2},
				{Food: nil, Quantity: 1}, // осиротевшая позиция не попадает в выгрузку
			},
		},
	}, nil).Once()

	rows, err := svc.FoodLog(ctx, 1)
	assert.NoError(t, err)
	if assert.Len(t, rows, 1) {
		r := rows[0]
		assert.Equal(t, "2025-06-01", r.Date)
		assert.Equal(t, "Breakfast", r.MealType)
		assert.Equal(t, "Egg", r.FoodName)
		assert.InDelta(t, 2, r.Quantity, 1e-9)
		assert.InDelta(t, 12, r.Protein, 1e-9)
		assert.InDelta(t, 0.6, r.Carbs, 1e-9)
		assert.InDelta(t, 10, r.Fat, 1e-9)
		assert.InDelta(t, 140.4, r.Calories, 1e-9)
		assert.Equal(t, loggedAt, r.LoggedAt)
	}
}

func TestMergeDailyMetrics_OuterJoinByDate(t *testing.T) {
	foodLog := []FoodLogRow{
		{Date: "2025-06-02", Protein: 10, Carbs: 20, Fat: 5, Calories: 165},
		{Date: "2025-06-02", Protein: 5, Carbs: 0, Fat: 0, Calories: 20},
		{Date: "2025-06-01", Protein: 7, Carbs: 8, Fat: 9, Calories: 141},
	}
	sleeps := []model.SleepLog{
		{Date: "2025-06-02", Hours: 7.5, Quality: "Good", Notes: "ok"},
		{Date: "2025-06-03", Hours: 6, Quality: "Poor"}, // сон без питания
	}

	rows := mergeDailyMetrics(foodLog, sleeps)
	if !assert.Len(t, rows, 3) {
		return
	}

	// сортировка: дата по убыванию
	assert.Equal(t, "2025-06-03", rows[0].Date)
	assert.Equal(t, "2025-06-02", rows[1].Date)
	assert.Equal(t, "2025-06-01", rows[2].Date)

	// только сон
	assert.False(t, rows[0].HasNutrition)
	assert.True(t, rows[0].HasSleep)
	assert.InDelta(t, 6, rows[0].Hours, 1e-9)

	// обе стороны: питание просуммировано по дате
	assert.True(t, rows[1].HasNutrition)
	assert.True(t, rows[1].HasSleep)
	assert.InDelta(t, 15, rows[1].Protein, 1e-9)
	assert.InDelta(t, 185, rows[1].Calories, 1e-9)
	assert.Equal(t, "Good", rows[1].SleepQuality)

	// только питание
	assert.True(t, rows[2].HasNutrition)
	assert.False(t, rows[2].HasSleep)
}

func TestMergeDailyMetrics_Empty(t *testing.T) {
	assert.Empty(t, mergeDailyMetrics(nil, nil))
}

func TestExportService_Workbook(t *testing.T) {
	ctx := context.Background()
	meals := new(mockMealRepo)
	sleeps := new(mockSleepRepo)
	svc := NewExportService(meals, sleeps)

	egg := &model.Food{Name: "Egg", Protein: 6, Carbs: 0.3, Fat: 5, Calories: 70.2}
	meals.On("ListByUser", mock.Anything, int64(1), "").Return([]model.Meal{
		{
			Date:      "2025-06-01",
			MealType:  "Breakfast",
			CreatedAt: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
			Items:     []model.MealItem{{Food: egg, Quantity: 1}},
		},
	}, nil).Once()
	sleeps.On("ListByUser", mock.Anything, int64(1)).Return([]model.SleepLog{
		{Date: "2025-06-02", Hours: 8, Quality: "Good"},
	}, nil).Once()

	wb, err := svc.Workbook(ctx, 1)
	assert.NoError(t, err)
	defer wb.Close()

	// оба листа на месте
	assert.Equal(t, []string{"Food Log", "Daily Metrics"}, wb.GetSheetList())

	// журнал питания
	got, err := wb.GetCellValue("Food Log", "C2")
	assert.NoError(t, err)
	assert.Equal(t, "Egg", got)

	// суточные метрики: сначала день только со сном, затем день с питанием
	d1, _ := wb.GetCellValue("Daily Metrics", "A2")
	assert.Equal(t, "2025-06-02", d1)
	hours, _ := wb.GetCellValue("Daily Metrics", "F2")
	assert.Equal(t, "8", hours)
	// у дня со сном ячейки питания пустые
	emptyProtein, _ := wb.GetCellValue("Daily Metrics", "B2")
	assert.Equal(t, "", emptyProtein)

	d2, _ := wb.GetCellValue("Daily Metrics", "A3")
	assert.Equal(t, "2025-06-01", d2)
	cal, _ := wb.GetCellValue("Daily Metrics", "E3")
	assert.Equal(t, "70.2", cal)
}
