// Пакет backend — HTTP-клиент к FaceGate backend API.
// Единственный источник данных админ-панели: коллекции в конверте
// {data:{models, meta}}, одиночные сущности в {data:{...}}.
// Каждый запрос несёт Authorization: Bearer и Accept-Language.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/davrbek/facegate/internal/domain/model"
)

// backendRequestsTotal — счётчик запросов к backend API по исходам.
var backendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fa_backend_requests_total",
		Help: "Общее количество запросов к FaceGate backend API",
	},
	[]string{"method", "outcome"},
)

// Credentials — учётные данные текущего запроса: токен пользователя
// и его локаль. Передаются в каждый вызов клиента; клиент сам
// ничего не хранит между запросами.
type Credentials struct {
	Token  string
	Locale string
}

// Client — HTTP-клиент к backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New создаёт клиент backend API.
// baseURL — базовый URL backend'а (trailing slash убирается).
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("component", "backend_client")),
	}
}

// do выполняет запрос к backend'у и возвращает тело успешного ответа.
// Все ошибки нормализуются в *APIError (см. errors.go).
func (c *Client) do(ctx context.Context, cred Credentials, method, path string, query url.Values, body any) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Kind: KindInternal, Err: fmt.Errorf("сериализация тела запроса: %w", err)}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, &APIError{Kind: KindInternal, Err: fmt.Errorf("создание запроса: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}
	if cred.Locale != "" {
		req.Header.Set("Accept-Language", cred.Locale)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		backendRequestsTotal.WithLabelValues(method, "network_error").Inc()
		return nil, &APIError{Kind: KindUnavailable, Err: fmt.Errorf("запрос %s %s: %w", method, path, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		backendRequestsTotal.WithLabelValues(method, "network_error").Inc()
		return nil, &APIError{Kind: KindUnavailable, Err: fmt.Errorf("чтение ответа %s: %w", path, err)}
	}

	if apiErr := classify(resp.StatusCode, raw); apiErr != nil {
		backendRequestsTotal.WithLabelValues(method, string(apiErr.Kind)).Inc()
		c.logger.Warn("Ошибка backend API",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("kind", string(apiErr.Kind)),
		)
		return nil, apiErr
	}

	backendRequestsTotal.WithLabelValues(method, "ok").Inc()
	return raw, nil
}

// validationBody — тело ответа 422: {errors: {field: "msg" | ["msg", ...]}}.
type validationBody struct {
	Message string                     `json:"message"`
	Errors  map[string]json.RawMessage `json:"errors"`
}

// logicalBody — признак логической ошибки в успешном ответе.
type logicalBody struct {
	ErrorClass string `json:"error_class"`
	Message    string `json:"message"`
}

// genericBody — сообщение произвольного ответа об ошибке.
type genericBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// classify нормализует HTTP-ответ backend'а в *APIError
// (nil — успешный ответ без логической ошибки).
func classify(status int, raw []byte) *APIError {
	if status >= 200 && status < 300 {
		// Backend возвращает часть ошибок массовых операций
		// с HTTP 200 и полем error_class в теле.
		var lb logicalBody
		if err := json.Unmarshal(raw, &lb); err == nil && lb.ErrorClass != "" {
			return &APIError{
				Kind:       KindLogical,
				StatusCode: status,
				Message:    lb.Message,
			}
		}
		return nil
	}

	switch status {
	case http.StatusUnauthorized:
		return &APIError{Kind: KindUnauthorized, StatusCode: status, Message: bodyMessage(raw)}
	case http.StatusNotFound:
		return &APIError{Kind: KindNotFound, StatusCode: status, Message: bodyMessage(raw)}
	case http.StatusConflict:
		return &APIError{Kind: KindConflict, StatusCode: status, Message: bodyMessage(raw)}
	case http.StatusUnprocessableEntity:
		return classifyValidation(raw)
	default:
		return &APIError{Kind: KindInternal, StatusCode: status, Message: bodyMessage(raw)}
	}
}

// classifyValidation разбирает 422: карта field → messages.
// Если среди сообщений распознан дубликат ключа — это конфликт.
func classifyValidation(raw []byte) *APIError {
	var vb validationBody
	if err := json.Unmarshal(raw, &vb); err != nil || len(vb.Errors) == 0 {
		return &APIError{
			Kind:       KindValidation,
			StatusCode: http.StatusUnprocessableEntity,
			Message:    bodyMessage(raw),
		}
	}

	fields := make(map[string][]string, len(vb.Errors))
	isConflict := false
	for field, rawMsgs := range vb.Errors {
		msgs := decodeMessages(rawMsgs)
		fields[field] = msgs
		if looksLikeDuplicate(msgs) {
			isConflict = true
		}
	}

	kind := KindValidation
	if isConflict {
		kind = KindConflict
	}
	return &APIError{
		Kind:       kind,
		StatusCode: http.StatusUnprocessableEntity,
		Message:    vb.Message,
		Fields:     fields,
	}
}

// decodeMessages разбирает значение карты errors:
// backend присылает либо строку, либо массив строк.
func decodeMessages(raw json.RawMessage) []string {
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}
	}
	return []string{string(raw)}
}

// bodyMessage извлекает message/error из произвольного тела ответа.
func bodyMessage(raw []byte) string {
	var gb genericBody
	if err := json.Unmarshal(raw, &gb); err == nil {
		if gb.Message != "" {
			return gb.Message
		}
		if gb.Error != "" {
			return gb.Error
		}
	}
	return ""
}

// --- Разбор конвертов ---

// envelope — внешний конверт каждого ответа backend'а.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// collectionData — конверт коллекции: {models: [...], meta: {...}}.
type collectionData struct {
	Models json.RawMessage `json:"models"`
	Meta   model.Meta      `json:"meta"`
}

// getCollection выполняет GET коллекции и разбирает конверт
// {data:{models, meta}} в срез T и мету.
func getCollection[T any](ctx context.Context, c *Client, cred Credentials, path string, query url.Values) ([]T, model.Meta, error) {
	raw, err := c.do(ctx, cred, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, model.Meta{}, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, model.Meta{}, &APIError{Kind: KindInternal, Err: fmt.Errorf("декодирование конверта %s: %w", path, err)}
	}

	var coll collectionData
	if err := json.Unmarshal(env.Data, &coll); err != nil {
		return nil, model.Meta{}, &APIError{Kind: KindInternal, Err: fmt.Errorf("декодирование коллекции %s: %w", path, err)}
	}

	var items []T
	if len(coll.Models) > 0 {
		if err := json.Unmarshal(coll.Models, &items); err != nil {
			return nil, model.Meta{}, &APIError{Kind: KindInternal, Err: fmt.Errorf("декодирование моделей %s: %w", path, err)}
		}
	}

	return items, coll.Meta, nil
}

// getOne выполняет GET одиночной сущности: конверт {data:{...}}.
func getOne[T any](ctx context.Context, c *Client, cred Credentials, path string) (*T, error) {
	raw, err := c.do(ctx, cred, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](raw, path)
}

// mutateOne выполняет POST/PUT и разбирает сущность из ответа.
func mutateOne[T any](ctx context.Context, c *Client, cred Credentials, method, path string, body any) (*T, error) {
	raw, err := c.do(ctx, cred, method, path, nil, body)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](raw, path)
}

// decodeOne разбирает конверт {data:{...}} в T.
func decodeOne[T any](raw []byte, path string) (*T, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &APIError{Kind: KindInternal, Err: fmt.Errorf("декодирование конверта %s: %w", path, err)}
	}

	var item T
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, &APIError{Kind: KindInternal, Err: fmt.Errorf("декодирование сущности %s: %w", path, err)}
	}
	return &item, nil
}
