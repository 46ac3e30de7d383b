// errors.go — единый дискриминированный тип ошибок backend API.
// Каждый вызов клиента возвращает *APIError с полем Kind; вызывающие
// стороны переключаются по Kind и никогда не щупают форму ошибки ad hoc.
package backend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind — категория ошибки backend-вызова.
type ErrorKind string

const (
	// KindValidation — HTTP 422 с картой field → messages.
	KindValidation ErrorKind = "validation"
	// KindConflict — HTTP 409 либо 422 с признаком дубликата ключа.
	KindConflict ErrorKind = "conflict"
	// KindLogical — HTTP 200, но в теле присутствует error_class
	// (соглашение backend'а для массовых операций назначения).
	KindLogical ErrorKind = "logical"
	// KindNotFound — HTTP 404.
	KindNotFound ErrorKind = "notfound"
	// KindUnauthorized — HTTP 401: токен отсутствует/просрочен.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindUnavailable — транспортная ошибка: backend недоступен.
	KindUnavailable ErrorKind = "unavailable"
	// KindInternal — любой другой не-2xx ответ.
	KindInternal ErrorKind = "internal"
)

// APIError — ошибка вызова backend API.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	// Message — человекочитаемое сообщение backend'а.
	Message string
	// Fields — карта field → messages для KindValidation.
	Fields map[string][]string
	// Err — исходная ошибка транспорта/декодирования.
	Err error
}

// Error реализует error.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend [%s]: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("backend [%s]: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("backend [%s]: статус %d", e.Kind, e.StatusCode)
}

// Unwrap возвращает исходную ошибку.
func (e *APIError) Unwrap() error { return e.Err }

// AsAPIError извлекает *APIError из цепочки ошибок.
// Если ошибка другого типа — оборачивает её как KindUnavailable.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Kind: KindUnavailable, Err: err}
}

// duplicateMarkers — подстроки сообщений 422, по которым ошибка
// валидации распознаётся как конфликт уникальности.
var duplicateMarkers = []string{
	"already exists",
	"has already been taken",
	"duplicate",
}

// looksLikeDuplicate проверяет сообщения на признак дубликата ключа.
func looksLikeDuplicate(messages []string) bool {
	for _, m := range messages {
		lower := strings.ToLower(m)
		for _, marker := range duplicateMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}
	}
	return false
}
