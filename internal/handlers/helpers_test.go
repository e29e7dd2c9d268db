package handlers_test

import (
	"MuscleTracker/internal/config"
	"MuscleTracker/internal/handlers"
	"MuscleTracker/internal/middleware"
	"MuscleTracker/internal/model"
	"MuscleTracker/internal/repo"
	"MuscleTracker/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User, seed []model.Food) (*model.User, error) {
	args := m.Called(ctx, user, seed)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ResetData(ctx context.Context, userID int64, seed []model.Food) error {
	args := m.Called(ctx, userID, seed)
	return args.Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockFoodRepo struct{ mock.Mock }

func (m *mockFoodRepo) ListByUser(ctx context.Context, userID int64) ([]model.Food, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Food); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFoodRepo) SearchByName(ctx context.Context, userID int64, term string) ([]model.Food, error) {
	args := m.Called(ctx, userID, term)
	if v, ok := args.Get(0).([]model.Food); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFoodRepo) Create(ctx context.Context, food *model.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *mockFoodRepo) ReplaceAll(ctx context.Context, userID int64, foods []model.Food) error {
	args := m.Called(ctx, userID, foods)
	return args.Error(0)
}

func (m *mockFoodRepo) UpsertAll(ctx context.Context, userID int64, foods []model.Food) (int, int, error) {
	args := m.Called(ctx, userID, foods)
	return args.Int(0), args.Int(1), args.Error(2)
}

var _ repo.FoodRepository = (*mockFoodRepo)(nil)

type mockMealRepo struct{ mock.Mock }

func (m *mockMealRepo) Create(ctx context.Context, meal *model.Meal) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

func (m *mockMealRepo) ListByUser(ctx context.Context, userID int64, date string) ([]model.Meal, error) {
	args := m.Called(ctx, userID, date)
	if v, ok := args.Get(0).([]model.Meal); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.MealRepository = (*mockMealRepo)(nil)

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

// testRepos — набор моков для сборки полного роутера.
type testRepos struct {
	users  *mockUserRepo
	foods  *mockFoodRepo
	meals  *mockMealRepo
	sleeps *mockSleepRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		users:  new(mockUserRepo),
		foods:  new(mockFoodRepo),
		meals:  new(mockMealRepo),
		sleeps: new(mockSleepRepo),
	}
}

// --- Helpers ---
func newTestRouter(t *testing.T, reps *testRepos) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(reps.users)
	catalogSvc := service.NewCatalogService(reps.foods, logger)
	mealSvc := service.NewMealService(reps.meals, logger)
	sleepSvc := service.NewSleepService(reps.sleeps)
	exportSvc := service.NewExportService(reps.meals, reps.sleeps)

	h := handlers.NewHandler(userSvc, catalogSvc, mealSvc, sleepSvc, exportSvc, logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
