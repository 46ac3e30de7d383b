// principal.go — сервис текущего пользователя.
// Разворачивает /auth/me в Principal: профиль + вычислитель прав.
// Ответ кэшируется по токену с коротким TTL, чтобы не дёргать
// backend на каждый HTTP-запрос панели. Кэшируется только principal;
// данные списков, фильтры и выборки никогда не кэшируются.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/domain/perm"
)

var principalCacheOps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fa_principal_cache_ops_total",
		Help: "Операции кэша principal (hit/miss)",
	},
	[]string{"result"},
)

// Principal — аутентифицированный пользователь панели:
// профиль и вычислитель прав, построенный из его ролей.
type Principal struct {
	User      *model.User
	Evaluator *perm.Evaluator
}

// PrincipalService — сервис текущего пользователя.
type PrincipalService struct {
	client *backend.Client
	cache  *expirable.LRU[string, *Principal]
	logger *slog.Logger
}

// NewPrincipalService создаёт сервис с LRU-кэшем по токену.
// ttl — время жизни записи; size — максимум записей.
func NewPrincipalService(client *backend.Client, size int, ttl time.Duration, logger *slog.Logger) *PrincipalService {
	if size <= 0 {
		size = 256
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &PrincipalService{
		client: client,
		cache:  expirable.NewLRU[string, *Principal](size, nil, ttl),
		logger: logger.With(slog.String("component", "principal_service")),
	}
}

// Current возвращает principal для токена, из кэша или от backend'а.
// Просроченный или отозванный токен — ErrUnauthorized.
func (s *PrincipalService) Current(ctx context.Context, cred backend.Credentials) (*Principal, error) {
	if p, ok := s.cache.Get(cred.Token); ok {
		principalCacheOps.WithLabelValues("hit").Inc()
		return p, nil
	}
	principalCacheOps.WithLabelValues("miss").Inc()

	user, err := s.client.Me(ctx, cred)
	if err != nil {
		apiErr := backend.AsAPIError(err)
		switch apiErr.Kind {
		case backend.KindUnauthorized:
			return nil, ErrUnauthorized
		case backend.KindUnavailable:
			return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		default:
			return nil, err
		}
	}

	roleName := perm.ResolveActingRole(user, cred.Locale)
	p := &Principal{
		User:      user,
		Evaluator: perm.NewEvaluator(perm.Grants(user), roleName),
	}
	s.cache.Add(cred.Token, p)

	s.logger.Debug("Principal загружен",
		slog.Int64("user_id", user.ID),
		slog.String("role", roleName),
	)
	return p, nil
}

// Invalidate удаляет principal из кэша (вызывается при logout).
func (s *PrincipalService) Invalidate(token string) {
	s.cache.Remove(token)
}

// Login аутентифицирует пользователя и возвращает результат backend'а.
func (s *PrincipalService) Login(ctx context.Context, locale, login, password string) (*backend.LoginResult, error) {
	res, err := s.client.Login(ctx, locale, login, password)
	if err != nil {
		apiErr := backend.AsAPIError(err)
		if apiErr.Kind == backend.KindUnavailable {
			return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
		}
		return nil, err
	}
	return res, nil
}

// Logout отзывает токен на backend'е и чистит кэш.
// Сетевая ошибка logout не фатальна: cookie всё равно стирается.
func (s *PrincipalService) Logout(ctx context.Context, cred backend.Credentials) {
	s.cache.Remove(cred.Token)
	if err := s.client.Logout(ctx, cred); err != nil && !errors.Is(err, ErrUnauthorized) {
		s.logger.Warn("Logout на backend не удался", slog.String("error", err.Error()))
	}
}
