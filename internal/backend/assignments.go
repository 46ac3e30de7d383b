// assignments.go — many-to-many назначения пользователей на терминалы.
// Пути endpoint'ов заданы контрактом backend'а и несимметричны REST:
// getUsersInSingleDevice/{id}, addUsersToSingleDevice и т.п.
// Тела мутаций всегда {face_device_id, user_id}: одна сторона — скаляр,
// другая — массив id, в зависимости от endpoint'а.
package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/davrbek/facegate/internal/domain/model"
)

// deviceUsersBody — тело мутаций со стороны терминала:
// скалярный face_device_id, массив user_id.
type deviceUsersBody struct {
	FaceDeviceID int64   `json:"face_device_id"`
	UserID       []int64 `json:"user_id"`
}

// userDevicesBody — тело мутаций со стороны пользователя:
// скалярный user_id, массив face_device_id.
type userDevicesBody struct {
	FaceDeviceID []int64 `json:"face_device_id"`
	UserID       int64   `json:"user_id"`
}

// UsersInDevice возвращает страницу пользователей, заведённых
// на терминал (со статусами синхронизации по трём каналам).
func (c *Client) UsersInDevice(ctx context.Context, cred Credentials, deviceID int64, query url.Values) ([]model.DeviceUser, model.Meta, error) {
	path := "/getUsersInSingleDevice/" + strconv.FormatInt(deviceID, 10)
	return getCollection[model.DeviceUser](ctx, c, cred, path, query)
}

// UsersOutDevice возвращает страницу пользователей, НЕ заведённых
// на терминал (голые User, без статусов).
func (c *Client) UsersOutDevice(ctx context.Context, cred Credentials, deviceID int64, query url.Values) ([]model.User, model.Meta, error) {
	path := "/getUsersOutSingleDevice/" + strconv.FormatInt(deviceID, 10)
	return getCollection[model.User](ctx, c, cred, path, query)
}

// AddUsersToDevice заводит пользователей на терминал.
// userIDs может быть одноэлементным (одиночное действие) или
// множественным (массовое).
func (c *Client) AddUsersToDevice(ctx context.Context, cred Credentials, deviceID int64, userIDs []int64) error {
	body := deviceUsersBody{FaceDeviceID: deviceID, UserID: userIDs}
	_, err := c.do(ctx, cred, http.MethodPost, "/addUsersToSingleDevice", nil, body)
	return err
}

// RemoveUsersFromDevice снимает пользователей с терминала.
func (c *Client) RemoveUsersFromDevice(ctx context.Context, cred Credentials, deviceID int64, userIDs []int64) error {
	body := deviceUsersBody{FaceDeviceID: deviceID, UserID: userIDs}
	_, err := c.do(ctx, cred, http.MethodPost, "/removeUsersInSingleDevice", nil, body)
	return err
}

// DevicesInUser возвращает страницу терминалов, на которые заведён
// пользователь (со статусами синхронизации).
func (c *Client) DevicesInUser(ctx context.Context, cred Credentials, userID int64, query url.Values) ([]model.UserDevice, model.Meta, error) {
	path := "/getDevicesInSingleUser/" + strconv.FormatInt(userID, 10)
	return getCollection[model.UserDevice](ctx, c, cred, path, query)
}

// DevicesOutUser возвращает страницу терминалов, на которые
// пользователь НЕ заведён.
func (c *Client) DevicesOutUser(ctx context.Context, cred Credentials, userID int64, query url.Values) ([]model.FaceDevice, model.Meta, error) {
	path := "/getDevicesOutSingleUser/" + strconv.FormatInt(userID, 10)
	return getCollection[model.FaceDevice](ctx, c, cred, path, query)
}

// AddDevicesToUser заводит пользователя на терминалы.
func (c *Client) AddDevicesToUser(ctx context.Context, cred Credentials, userID int64, deviceIDs []int64) error {
	body := userDevicesBody{UserID: userID, FaceDeviceID: deviceIDs}
	_, err := c.do(ctx, cred, http.MethodPost, "/addDevicesToSingleUser", nil, body)
	return err
}

// RemoveDevicesFromUser снимает пользователя с терминалов.
func (c *Client) RemoveDevicesFromUser(ctx context.Context, cred Credentials, userID int64, deviceIDs []int64) error {
	body := userDevicesBody{UserID: userID, FaceDeviceID: deviceIDs}
	_, err := c.do(ctx, cred, http.MethodPost, "/removeDevicesInSingleUser", nil, body)
	return err
}
