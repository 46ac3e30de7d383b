package pages

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/davrbek/facegate/internal/ui/i18n"
)

func renderLayout(t *testing.T, d LayoutData) string {
	t.Helper()
	_, _ = i18n.Init(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var buf bytes.Buffer
	if err := Layout(d, nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Layout.Render: %v", err)
	}
	return buf.String()
}

// Logout меняет состояние сессии, поэтому в каркасе он отрисован
// POST-формой на /logout, а не GET-ссылкой: маршрут принимает
// только POST, и GET-ссылка никогда бы до него не дошла.
func TestLayout_LogoutIsPostForm(t *testing.T) {
	out := renderLayout(t, LayoutData{Title: "users.title", UserName: "admin"})

	if !strings.Contains(out, `<form method="post" action="/logout"`) {
		t.Error("в каркасе нет POST-формы logout")
	}
	if strings.Contains(out, `<a href="/logout"`) {
		t.Error("logout отрисован GET-ссылкой, маршрут её не примет")
	}
}

func TestLayout_NavSkipsForbiddenItems(t *testing.T) {
	out := renderLayout(t, LayoutData{
		Title: "users.title",
		Can:   func(action string) bool { return action == "view-user" },
	})

	if !strings.Contains(out, `href="/users"`) {
		t.Error("пункт /users обязан отрисоваться при праве view-user")
	}
	if strings.Contains(out, `href="/roles"`) {
		t.Error("пункт /roles без права view-role не должен отрисовываться")
	}
}
