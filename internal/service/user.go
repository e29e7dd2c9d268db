package service

import (
	"MuscleTracker/internal/model"
	"MuscleTracker/internal/repo"
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrLoginTaken — логин уже занят (сравнение хранимого значения чувствительно к регистру).
var ErrLoginTaken = errors.New("login already taken")

// ErrInvalidCredentials — неизвестный логин или неверный пароль.
// Намеренно не различаются, чтобы не раскрывать существование логина.
var ErrInvalidCredentials = errors.New("invalid login or password")

// UserService инкапсулирует жизненный цикл учётной записи.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля и стартовым каталогом
// продуктов. Сидирование и создание идут одной транзакцией в репозитории.
func (s *UserService) Register(ctx context.Context, login, password string) (*model.User, error) {
	existing, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("check login: %w", err)
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Login: login, Password: string(hash)}
	created, err := s.repo.CreateUser(ctx, user, DefaultFoods())
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Login проверяет пароль и возвращает пользователя.
func (s *UserService) Login(ctx context.Context, login, password string) (*model.User, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Reset удаляет все данные пользователя и восстанавливает стартовый каталог.
func (s *UserService) Reset(ctx context.Context, userID int64) error {
	return s.repo.ResetData(ctx, userID, DefaultFoods())
}
