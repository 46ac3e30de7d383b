// Пакет handlers — HTTP-обработчики панели.
// handlers.go — общие помощники: рендер компонентов, разбор
// параметров списков, перевод ошибок backend'а в alert'ы.
package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/listing"
	"github.com/davrbek/facegate/internal/ui/i18n"
	"github.com/davrbek/facegate/internal/ui/middleware"
	"github.com/davrbek/facegate/internal/ui/pages"
	"github.com/davrbek/facegate/internal/ui/partials"
)

// render пишет компонент в ответ.
func render(w http.ResponseWriter, r *http.Request, logger *slog.Logger, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		logger.Error("Рендер компонента не удался",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
}

// layoutData собирает каркас страницы из principal в контексте.
func layoutData(r *http.Request, titleKey, active string) pages.LayoutData {
	d := pages.LayoutData{Title: titleKey, Active: active}
	if p := middleware.PrincipalFrom(r.Context()); p != nil {
		d.UserName = p.User.FullName()
		d.RoleName = p.Evaluator.RoleName()
		d.Can = p.Evaluator.Has
	}
	return d
}

// listQuery восстанавливает запрос списка из query-параметров.
// reset=1 — сброс к фильтрам по умолчанию; page — переход на
// UI-страницу с сохранением применённых фильтров.
func listQuery(r *http.Request, defaults listing.Filters) listing.Query {
	fs := listing.NewFilterState(defaults)
	vals := r.URL.Query()
	if vals.Get("reset") != "" {
		return fs.Reset()
	}
	for field := range defaults {
		if vals.Has(field) {
			fs.Set(field, vals.Get(field))
		}
	}
	if limit := vals.Get("limit"); limit != "" {
		fs.SetPerPage(parsePerPage(limit))
	}
	q := fs.Apply()
	if pageStr := vals.Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			q = q.WithPage(page)
		}
	}
	return q
}

// parsePerPage переводит значение limit формы в размер страницы.
func parsePerPage(raw string) int {
	if raw == "all" {
		return listing.PerPageAll
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return listing.DefaultPerPage
	}
	return n
}

// pageURL строит ссылки пагинации с сохранением применённых
// фильтров и размера страницы.
func pageURL(base string, q listing.Query) func(page int) string {
	return func(page int) string {
		v := url.Values{}
		for k, val := range q.Filters {
			v.Set(k, val)
		}
		if q.PerPage == listing.PerPageAll {
			v.Set("limit", "all")
		} else {
			v.Set("limit", strconv.Itoa(q.PerPage))
		}
		v.Set("page", strconv.Itoa(page))
		return base + "?" + v.Encode()
	}
}

// errorAlert переводит ошибку backend'а в alert'ы.
// Валидация — по alert'у на каждое поле; конфликт, логическая
// и сетевые ошибки — одиночный локализованный alert.
func errorAlert(ctx context.Context, err error) templ.Component {
	apiErr := backend.AsAPIError(err)
	switch apiErr.Kind {
	case backend.KindValidation:
		var messages []string
		for _, msgs := range apiErr.Fields {
			messages = append(messages, msgs...)
		}
		if len(messages) == 0 {
			messages = append(messages, i18n.T(ctx, "errors.generic"))
		}
		return partials.ErrorAlerts(messages)
	case backend.KindConflict:
		return partials.ErrorAlert(i18n.T(ctx, "errors.conflict"))
	case backend.KindLogical:
		msg := apiErr.Message
		if msg == "" {
			msg = i18n.T(ctx, "errors.generic")
		}
		return partials.ErrorAlert(msg)
	case backend.KindNotFound:
		return partials.ErrorAlert(i18n.T(ctx, "errors.notfound"))
	case backend.KindUnavailable:
		return partials.ErrorAlert(i18n.T(ctx, "errors.unavailable"))
	default:
		return partials.ErrorAlert(i18n.T(ctx, "errors.generic"))
	}
}

// idParam читает числовой {id} из chi-маршрута.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// closeModalAndRefresh — успешный исход формы: модалка
// закрывается, страница перечитывается.
func closeModalAndRefresh(w http.ResponseWriter) {
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

// fieldErrors извлекает карту field → messages из ошибки валидации.
func fieldErrors(err error) map[string][]string {
	if apiErr := backend.AsAPIError(err); apiErr != nil {
		return apiErr.Fields
	}
	return nil
}

// concat склеивает компоненты; nil-компоненты пропускаются.
func concat(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// cred — учётные данные запроса из контекста Auth middleware.
func cred(r *http.Request) backend.Credentials {
	return middleware.CredentialsFrom(r.Context())
}
