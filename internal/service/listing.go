// listing.go — общий путь выборки страниц для всех сервисов списков.
package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/davrbek/facegate/internal/backend"
	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/listing"
)

// fetchFunc — выборка коллекции у backend'а с готовыми query-параметрами.
type fetchFunc[T any] func(ctx context.Context, query url.Values) ([]T, model.Meta, error)

// listPage выполняет запрос страницы. Режим "все записи"
// (PerPageAll) материализуется здесь: сначала зондируем мету
// минимальным запросом, затем запрашиваем total записей одной
// страницей. Между зондом и выборкой total может устареть —
// принимаем это, следующий Apply перечитает.
func listPage[T any](ctx context.Context, q listing.Query, fetch fetchFunc[T]) (listing.Page[T], error) {
	if q.PerPage == listing.PerPageAll {
		probe := q.First().WithPerPage(1)
		_, meta, err := fetch(ctx, probe.BackendValues())
		if err != nil {
			return listing.Page[T]{}, wrapListErr(err)
		}
		q = q.First().Materialize(meta.Total)
	}

	items, meta, err := fetch(ctx, q.BackendValues())
	if err != nil {
		return listing.Page[T]{}, wrapListErr(err)
	}
	return listing.FromMeta(items, meta), nil
}

// wrapListErr переводит сетевые ошибки в сервисные sentinel'ы,
// остальные ошибки backend'а проходят как есть.
func wrapListErr(err error) error {
	apiErr := backend.AsAPIError(err)
	switch apiErr.Kind {
	case backend.KindUnauthorized:
		return ErrUnauthorized
	case backend.KindUnavailable:
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	case backend.KindNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}
