// users.go — сервис пользователей (сотрудники с доступом по лицу).
package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/listing"
)

// UserService — CRUD пользователей поверх backend API.
type UserService struct {
	client *backend.Client
	logger *slog.Logger
}

// NewUserService создаёт сервис пользователей.
func NewUserService(client *backend.Client, logger *slog.Logger) *UserService {
	return &UserService{
		client: client,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

// List возвращает страницу пользователей по запросу списка.
func (s *UserService) List(ctx context.Context, cred backend.Credentials, q listing.Query) (listing.Page[model.User], error) {
	return listPage(ctx, q, func(ctx context.Context, query url.Values) ([]model.User, model.Meta, error) {
		return s.client.ListUsers(ctx, cred, query)
	})
}

// Get возвращает пользователя по id.
func (s *UserService) Get(ctx context.Context, cred backend.Credentials, id int64) (*model.User, error) {
	u, err := s.client.GetUser(ctx, cred, id)
	if err != nil {
		return nil, wrapListErr(err)
	}
	return u, nil
}

// Create создаёт пользователя. Ошибки валидации (422) возвращаются
// как *backend.APIError с картой полей — их разбирает обработчик формы.
func (s *UserService) Create(ctx context.Context, cred backend.Credentials, input model.UserInput) (*model.User, error) {
	u, err := s.client.CreateUser(ctx, cred, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Пользователь создан", slog.Int64("id", u.ID), slog.String("login", u.Login))
	return u, nil
}

// Update обновляет пользователя.
func (s *UserService) Update(ctx context.Context, cred backend.Credentials, id int64, input model.UserInput) (*model.User, error) {
	u, err := s.client.UpdateUser(ctx, cred, id, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Пользователь обновлён", slog.Int64("id", id))
	return u, nil
}

// Delete удаляет пользователя.
func (s *UserService) Delete(ctx context.Context, cred backend.Credentials, id int64) error {
	if err := s.client.DeleteUser(ctx, cred, id); err != nil {
		return wrapListErr(err)
	}
	s.logger.Info("Пользователь удалён", slog.Int64("id", id))
	return nil
}
