// devices.go — сервис терминалов распознавания лиц.
package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/listing"
)

// DeviceService — CRUD терминалов поверх backend API.
type DeviceService struct {
	client *backend.Client
	logger *slog.Logger
}

// NewDeviceService создаёт сервис терминалов.
func NewDeviceService(client *backend.Client, logger *slog.Logger) *DeviceService {
	return &DeviceService{
		client: client,
		logger: logger.With(slog.String("component", "device_service")),
	}
}

// List возвращает страницу терминалов.
func (s *DeviceService) List(ctx context.Context, cred backend.Credentials, q listing.Query) (listing.Page[model.FaceDevice], error) {
	return listPage(ctx, q, func(ctx context.Context, query url.Values) ([]model.FaceDevice, model.Meta, error) {
		return s.client.ListDevices(ctx, cred, query)
	})
}

// Get возвращает терминал по id.
func (s *DeviceService) Get(ctx context.Context, cred backend.Credentials, id int64) (*model.FaceDevice, error) {
	d, err := s.client.GetDevice(ctx, cred, id)
	if err != nil {
		return nil, wrapListErr(err)
	}
	return d, nil
}

// Create регистрирует новый терминал.
func (s *DeviceService) Create(ctx context.Context, cred backend.Credentials, input model.DeviceInput) (*model.FaceDevice, error) {
	d, err := s.client.CreateDevice(ctx, cred, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Терминал создан", slog.Int64("id", d.ID), slog.String("ip", d.IP))
	return d, nil
}

// Update обновляет терминал.
func (s *DeviceService) Update(ctx context.Context, cred backend.Credentials, id int64, input model.DeviceInput) (*model.FaceDevice, error) {
	d, err := s.client.UpdateDevice(ctx, cred, id, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Терминал обновлён", slog.Int64("id", id))
	return d, nil
}

// Delete удаляет терминал.
func (s *DeviceService) Delete(ctx context.Context, cred backend.Credentials, id int64) error {
	if err := s.client.DeleteDevice(ctx, cred, id); err != nil {
		return wrapListErr(err)
	}
	s.logger.Info("Терминал удалён", slog.Int64("id", id))
	return nil
}
