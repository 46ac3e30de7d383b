// errors.go — ошибки бизнес-логики сервисного слоя.
package service

import "errors"

var (
	// ErrNotFound — ресурс не найден.
	ErrNotFound = errors.New("ресурс не найден")
	// ErrUnauthorized — токен отсутствует, просрочен или отозван.
	ErrUnauthorized = errors.New("сессия недействительна")
	// ErrBackendUnavailable — backend API недоступен.
	ErrBackendUnavailable = errors.New("backend API недоступен")
)
