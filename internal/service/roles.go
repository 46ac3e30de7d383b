// roles.go — сервис ролей и каталога прав.
package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/listing"
)

// RoleService — CRUD ролей поверх backend API.
type RoleService struct {
	client *backend.Client
	logger *slog.Logger
}

// NewRoleService создаёт сервис ролей.
func NewRoleService(client *backend.Client, logger *slog.Logger) *RoleService {
	return &RoleService{
		client: client,
		logger: logger.With(slog.String("component", "role_service")),
	}
}

// List возвращает страницу ролей.
func (s *RoleService) List(ctx context.Context, cred backend.Credentials, q listing.Query) (listing.Page[model.Role], error) {
	return listPage(ctx, q, func(ctx context.Context, query url.Values) ([]model.Role, model.Meta, error) {
		return s.client.ListRoles(ctx, cred, query)
	})
}

// Get возвращает роль по id вместе с её правами.
func (s *RoleService) Get(ctx context.Context, cred backend.Credentials, id int64) (*model.Role, error) {
	r, err := s.client.GetRole(ctx, cred, id)
	if err != nil {
		return nil, wrapListErr(err)
	}
	return r, nil
}

// Permissions возвращает полный каталог прав для формы роли.
func (s *RoleService) Permissions(ctx context.Context, cred backend.Credentials) ([]model.Permission, error) {
	q := url.Values{}
	q.Set("limit", "1000")
	perms, _, err := s.client.ListPermissions(ctx, cred, q)
	if err != nil {
		return nil, wrapListErr(err)
	}
	return perms, nil
}

// Create создаёт роль с набором прав.
func (s *RoleService) Create(ctx context.Context, cred backend.Credentials, input model.RoleInput) (*model.Role, error) {
	r, err := s.client.CreateRole(ctx, cred, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Роль создана", slog.Int64("id", r.ID), slog.String("key", r.Key))
	return r, nil
}

// Update обновляет роль.
func (s *RoleService) Update(ctx context.Context, cred backend.Credentials, id int64, input model.RoleInput) (*model.Role, error) {
	r, err := s.client.UpdateRole(ctx, cred, id, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Роль обновлена", slog.Int64("id", id))
	return r, nil
}

// Delete удаляет роль.
func (s *RoleService) Delete(ctx context.Context, cred backend.Credentials, id int64) error {
	if err := s.client.DeleteRole(ctx, cred, id); err != nil {
		return wrapListErr(err)
	}
	s.logger.Info("Роль удалена", slog.Int64("id", id))
	return nil
}
