package partials

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/davrbek/facegate/internal/ui/i18n"
)

func renderAssignTable(t *testing.T, d AssignTableData) string {
	t.Helper()
	_, _ = i18n.Init(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var buf bytes.Buffer
	ctx := i18n.WithLang(context.Background(), "en")
	if err := AssignTable(d).Render(ctx, &buf); err != nil {
		t.Fatalf("AssignTable.Render: %v", err)
	}
	return buf.String()
}

// Шапка и кнопка массового действия несут хуки для app.js:
// data-select-all / data-header-state на чекбоксе шапки и
// data-count-label с сырым шаблоном счётчика на кнопке.
// Без них тристабильная шапка и счётчик выбранных не работают.
func TestAssignTable_SelectionHooksRendered(t *testing.T) {
	out := renderAssignTable(t, AssignTableData{
		ContainerID: "assign-table",
		Headers:     []string{"ID"},
		Rows: []AssignRow{
			{ID: 1, Cells: []string{"1"}},
			{ID: 2, Cells: []string{"2"}},
		},
		ActionURL:   "/face-devices/3/users/remove",
		ActionKey:   "assign.remove",
		BulkKey:     "assign.remove_selected",
		HeaderState: "unchecked",
		CanAct:      true,
	})

	if !strings.Contains(out, `data-select-all data-header-state="unchecked"`) {
		t.Error("на чекбоксе шапки нет хуков data-select-all/data-header-state")
	}
	if !strings.Contains(out, `data-count-label="Remove selected (%d)"`) {
		t.Error("на кнопке массового действия нет шаблона счётчика")
	}
	if !strings.Contains(out, `Remove selected (0)`) {
		t.Error("начальное состояние счётчика — ноль выбранных")
	}
	if got := strings.Count(out, `class="row-select"`); got != 2 {
		t.Errorf("чекбоксов строк %d, ожидалось 2", got)
	}
	// Сервер никогда не отдаёт заранее выбранные строки
	if strings.Contains(out, `class="row-select" name="ids" value="1" checked`) {
		t.Error("строка отрисована выбранной, выделение живёт только в DOM")
	}
}

func TestAssignTable_ReadOnlyWithoutPermission(t *testing.T) {
	out := renderAssignTable(t, AssignTableData{
		ContainerID: "assign-table",
		Headers:     []string{"ID"},
		Rows:        []AssignRow{{ID: 1, Cells: []string{"1"}}},
		ActionURL:   "/face-devices/3/users/assign",
		ActionKey:   "assign.assign",
		BulkKey:     "assign.assign_selected",
		CanAct:      false,
	})

	if strings.Contains(out, "data-select-all") {
		t.Error("без права назначения чекбоксы не отрисовываются")
	}
	if strings.Contains(out, "data-count-label") {
		t.Error("без права назначения нет кнопки массового действия")
	}
}
