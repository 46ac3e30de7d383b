// roles.go — операции над ресурсами /roles и /permissions.
package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/davrbek/facegate/internal/domain/model"
)

// ListRoles возвращает страницу ролей.
func (c *Client) ListRoles(ctx context.Context, cred Credentials, query url.Values) ([]model.Role, model.Meta, error) {
	return getCollection[model.Role](ctx, c, cred, "/roles", query)
}

// GetRole возвращает роль по id (с разрешениями).
func (c *Client) GetRole(ctx context.Context, cred Credentials, id int64) (*model.Role, error) {
	return getOne[model.Role](ctx, c, cred, "/roles/"+strconv.FormatInt(id, 10))
}

// CreateRole создаёт роль. Уникальность key проверяет backend:
// дубликат приходит как 409 либо 422 с сообщением о дубликате,
// оба нормализуются в KindConflict.
func (c *Client) CreateRole(ctx context.Context, cred Credentials, input model.RoleInput) (*model.Role, error) {
	return mutateOne[model.Role](ctx, c, cred, http.MethodPost, "/roles", input)
}

// UpdateRole обновляет роль.
func (c *Client) UpdateRole(ctx context.Context, cred Credentials, id int64, input model.RoleInput) (*model.Role, error) {
	return mutateOne[model.Role](ctx, c, cred, http.MethodPut, "/roles/"+strconv.FormatInt(id, 10), input)
}

// DeleteRole удаляет роль.
func (c *Client) DeleteRole(ctx context.Context, cred Credentials, id int64) error {
	_, err := c.do(ctx, cred, http.MethodDelete, "/roles/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}

// ListPermissions возвращает каталог разрешений для формы роли.
func (c *Client) ListPermissions(ctx context.Context, cred Credentials, query url.Values) ([]model.Permission, model.Meta, error) {
	return getCollection[model.Permission](ctx, c, cred, "/permissions", query)
}
