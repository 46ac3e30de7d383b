// users.go — операции над ресурсом /users.
package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/davrbek/facegate/internal/domain/model"
)

// ListUsers возвращает страницу пользователей.
// query строится пакетом listing: page 1-based, limit,
// действующие фильтры (status, search, role_id).
func (c *Client) ListUsers(ctx context.Context, cred Credentials, query url.Values) ([]model.User, model.Meta, error) {
	return getCollection[model.User](ctx, c, cred, "/users", query)
}

// GetUser возвращает пользователя по id (с includes).
func (c *Client) GetUser(ctx context.Context, cred Credentials, id int64) (*model.User, error) {
	return getOne[model.User](ctx, c, cred, "/users/"+strconv.FormatInt(id, 10))
}

// CreateUser создаёт пользователя.
func (c *Client) CreateUser(ctx context.Context, cred Credentials, input model.UserInput) (*model.User, error) {
	return mutateOne[model.User](ctx, c, cred, http.MethodPost, "/users", input)
}

// UpdateUser обновляет пользователя.
func (c *Client) UpdateUser(ctx context.Context, cred Credentials, id int64, input model.UserInput) (*model.User, error) {
	return mutateOne[model.User](ctx, c, cred, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), input)
}

// DeleteUser удаляет пользователя.
func (c *Client) DeleteUser(ctx context.Context, cred Credentials, id int64) error {
	_, err := c.do(ctx, cred, http.MethodDelete, "/users/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}
