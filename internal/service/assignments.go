// assignments.go — сервис назначений пользователь ↔ терминал.
// Четыре списка (in/out с обеих сторон) и парные мутации,
// одиночные и массовые. Логическая ошибка backend'а (error_class
// в успешном ответе) возвращается вызывающему как есть: обработчик
// показывает alert и НЕ перечитывает список.
package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/listing"
)

// AssignmentService — назначения пользователей на терминалы.
type AssignmentService struct {
	client *backend.Client
	logger *slog.Logger
}

// NewAssignmentService создаёт сервис назначений.
func NewAssignmentService(client *backend.Client, logger *slog.Logger) *AssignmentService {
	return &AssignmentService{
		client: client,
		logger: logger.With(slog.String("component", "assignment_service")),
	}
}

// UsersInDevice — пользователи, заведённые на терминал,
// со статусами синхронизации по каналам.
func (s *AssignmentService) UsersInDevice(ctx context.Context, cred backend.Credentials, deviceID int64, q listing.Query) (listing.Page[model.DeviceUser], error) {
	return listPage(ctx, q, func(ctx context.Context, query url.Values) ([]model.DeviceUser, model.Meta, error) {
		return s.client.UsersInDevice(ctx, cred, deviceID, query)
	})
}

// UsersOutDevice — пользователи, ещё не заведённые на терминал.
func (s *AssignmentService) UsersOutDevice(ctx context.Context, cred backend.Credentials, deviceID int64, q listing.Query) (listing.Page[model.User], error) {
	return listPage(ctx, q, func(ctx context.Context, query url.Values) ([]model.User, model.Meta, error) {
		return s.client.UsersOutDevice(ctx, cred, deviceID, query)
	})
}

// DevicesInUser — терминалы, на которые заведён пользователь.
func (s *AssignmentService) DevicesInUser(ctx context.Context, cred backend.Credentials, userID int64, q listing.Query) (listing.Page[model.UserDevice], error) {
	return listPage(ctx, q, func(ctx context.Context, query url.Values) ([]model.UserDevice, model.Meta, error) {
		return s.client.DevicesInUser(ctx, cred, userID, query)
	})
}

// DevicesOutUser — терминалы, на которые пользователь не заведён.
func (s *AssignmentService) DevicesOutUser(ctx context.Context, cred backend.Credentials, userID int64, q listing.Query) (listing.Page[model.FaceDevice], error) {
	return listPage(ctx, q, func(ctx context.Context, query url.Values) ([]model.FaceDevice, model.Meta, error) {
		return s.client.DevicesOutUser(ctx, cred, userID, query)
	})
}

// AssignUsers заводит пользователей на терминал (1..N id).
func (s *AssignmentService) AssignUsers(ctx context.Context, cred backend.Credentials, deviceID int64, userIDs []int64) error {
	if err := s.client.AddUsersToDevice(ctx, cred, deviceID, userIDs); err != nil {
		return err
	}
	s.logger.Info("Пользователи заведены на терминал",
		slog.Int64("device_id", deviceID), slog.Int("count", len(userIDs)))
	return nil
}

// RemoveUsers снимает пользователей с терминала.
func (s *AssignmentService) RemoveUsers(ctx context.Context, cred backend.Credentials, deviceID int64, userIDs []int64) error {
	if err := s.client.RemoveUsersFromDevice(ctx, cred, deviceID, userIDs); err != nil {
		return err
	}
	s.logger.Info("Пользователи сняты с терминала",
		slog.Int64("device_id", deviceID), slog.Int("count", len(userIDs)))
	return nil
}

// AssignDevices заводит пользователя на терминалы (1..N id).
func (s *AssignmentService) AssignDevices(ctx context.Context, cred backend.Credentials, userID int64, deviceIDs []int64) error {
	if err := s.client.AddDevicesToUser(ctx, cred, userID, deviceIDs); err != nil {
		return err
	}
	s.logger.Info("Пользователь заведён на терминалы",
		slog.Int64("user_id", userID), slog.Int("count", len(deviceIDs)))
	return nil
}

// RemoveDevices снимает пользователя с терминалов.
func (s *AssignmentService) RemoveDevices(ctx context.Context, cred backend.Credentials, userID int64, deviceIDs []int64) error {
	if err := s.client.RemoveDevicesFromUser(ctx, cred, userID, deviceIDs); err != nil {
		return err
	}
	s.logger.Info("Пользователь снят с терминалов",
		slog.Int64("user_id", userID), slog.Int("count", len(deviceIDs)))
	return nil
}
