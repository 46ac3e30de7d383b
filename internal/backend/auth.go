// auth.go — аутентификация и текущий принципал.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/davrbek/facegate/internal/domain/model"
)

// LoginResult — результат POST /auth/login.
type LoginResult struct {
	Token string `json:"token"`
	// ExpiresAt — время истечения токена (RFC3339),
	// дублируется в cookie token_expiration.
	ExpiresAt string `json:"token_expiration"`
	User      *model.User `json:"user,omitempty"`
}

// loginRequest — тело запроса логина.
type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login выполняет вход по логину/паролю.
// Locale в cred нужна для локализованных сообщений об ошибках.
func (c *Client) Login(ctx context.Context, locale, login, password string) (*LoginResult, error) {
	cred := Credentials{Locale: locale}
	raw, err := c.do(ctx, cred, http.MethodPost, "/auth/login", nil, loginRequest{Login: login, Password: password})
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &APIError{Kind: KindInternal, Err: fmt.Errorf("декодирование ответа логина: %w", err)}
	}

	var result LoginResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, &APIError{Kind: KindInternal, Err: fmt.Errorf("декодирование ответа логина: %w", err)}
	}
	return &result, nil
}

// Me возвращает текущего принципала с includes
// (роль и выданные разрешения).
func (c *Client) Me(ctx context.Context, cred Credentials) (*model.User, error) {
	return getOne[model.User](ctx, c, cred, "/auth/me")
}

// Logout инвалидирует токен на стороне backend'а.
// Ошибка не фатальна: cookie всё равно очищаются.
func (c *Client) Logout(ctx context.Context, cred Credentials) error {
	_, err := c.do(ctx, cred, http.MethodPost, "/auth/logout", nil, nil)
	return err
}
