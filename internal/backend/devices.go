// devices.go — операции над ресурсом /face-devices.
package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/davrbek/facegate/internal/domain/model"
)

// ListDevices возвращает страницу терминалов.
// Фильтры: type (enter/exit), status (active/not_active), search.
func (c *Client) ListDevices(ctx context.Context, cred Credentials, query url.Values) ([]model.FaceDevice, model.Meta, error) {
	return getCollection[model.FaceDevice](ctx, c, cred, "/face-devices", query)
}

// GetDevice возвращает терминал по id.
func (c *Client) GetDevice(ctx context.Context, cred Credentials, id int64) (*model.FaceDevice, error) {
	return getOne[model.FaceDevice](ctx, c, cred, "/face-devices/"+strconv.FormatInt(id, 10))
}

// CreateDevice регистрирует терминал.
func (c *Client) CreateDevice(ctx context.Context, cred Credentials, input model.DeviceInput) (*model.FaceDevice, error) {
	return mutateOne[model.FaceDevice](ctx, c, cred, http.MethodPost, "/face-devices", input)
}

// UpdateDevice обновляет терминал.
func (c *Client) UpdateDevice(ctx context.Context, cred Credentials, id int64, input model.DeviceInput) (*model.FaceDevice, error) {
	return mutateOne[model.FaceDevice](ctx, c, cred, http.MethodPut, "/face-devices/"+strconv.FormatInt(id, 10), input)
}

// DeleteDevice удаляет терминал.
func (c *Client) DeleteDevice(ctx context.Context, cred Credentials, id int64) error {
	_, err := c.do(ctx, cred, http.MethodDelete, "/face-devices/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}
