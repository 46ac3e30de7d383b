// badges.go — статусные бейджи таблиц.
package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/davrbek/facegate/internal/domain/model"
	"github.com/davrbek/facegate/internal/ui/i18n"
)

// StatusBadge — бейдж активности записи.
func StatusBadge(active bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if active {
			return writef(w, `<span class="badge badge-success">%s</span>`, E(i18n.T(ctx, "common.active")))
		}
		return writef(w, `<span class="badge badge-danger">%s</span>`, E(i18n.T(ctx, "common.inactive")))
	})
}

// SyncBadge — бейдж статуса синхронизации канала с терминалом.
func SyncBadge(status string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch status {
		case model.SyncSuccess:
			return writef(w, `<span class="badge badge-success">%s</span>`, E(i18n.T(ctx, "assign.sync.success")))
		case model.SyncFailed:
			return writef(w, `<span class="badge badge-danger">%s</span>`, E(i18n.T(ctx, "assign.sync.failed")))
		default:
			return writef(w, `<span class="badge badge-warning">%s</span>`, E(i18n.T(ctx, "assign.sync.pending")))
		}
	})
}
