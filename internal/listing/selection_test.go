package listing

import "testing"

func TestSelection_ClearedOnAnyQueryChange(t *testing.T) {
	base := Query{Page: 0, PerPage: 10, Filters: Filters{"status": FilterAll}}

	changes := []struct {
		name string
		next Query
	}{
		{name: "смена страницы", next: base.WithPage(1)},
		{name: "смена размера страницы", next: base.WithPerPage(50)},
		{name: "смена фильтра", next: Query{Page: 0, PerPage: 10, Filters: Filters{"status": "active"}}},
	}

	for _, tt := range changes {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection(base.Key())
			sel.SelectPage([]int64{1, 2, 3})
			if sel.Count() != 3 {
				t.Fatalf("Count = %d, хотели 3", sel.Count())
			}

			sel.Sync(tt.next.Key())

			if sel.Count() != 0 {
				t.Errorf("после %s выделение должно быть пустым, Count = %d", tt.name, sel.Count())
			}
		})
	}
}

func TestSelection_SameKeySurvivesSync(t *testing.T) {
	q := Query{Page: 2, PerPage: 10, Filters: Filters{"search": "ali"}}
	sel := NewSelection(q.Key())
	sel.Toggle(7)

	sel.Sync(q.Key())

	if !sel.Contains(7) {
		t.Error("перезагрузка той же страницы не должна сбрасывать выделение")
	}
}

func TestSelection_ToggleAndIDs(t *testing.T) {
	sel := NewSelection("k")
	sel.Toggle(5)
	sel.Toggle(1)
	sel.Toggle(3)
	sel.Toggle(5) // снятие

	ids := sel.IDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("IDs = %v, хотели [1 3] (по возрастанию)", ids)
	}
}

func TestSelection_SelectPageScope(t *testing.T) {
	// "Выбрать всё" охватывает только строки текущей страницы
	sel := NewSelection("k")
	pageIDs := []int64{10, 11, 12}

	sel.SelectPage(pageIDs)
	if sel.Count() != 3 {
		t.Errorf("Count = %d, хотели 3", sel.Count())
	}
	if sel.Contains(13) {
		t.Error("id вне страницы не должен быть выделен")
	}

	sel.DeselectPage(pageIDs)
	if sel.Count() != 0 {
		t.Errorf("после DeselectPage Count = %d, хотели 0", sel.Count())
	}
}

func TestSelection_HeaderState(t *testing.T) {
	pageIDs := []int64{1, 2, 3}
	sel := NewSelection("k")

	if got := sel.HeaderState(pageIDs); got != HeaderUnchecked {
		t.Errorf("без выделения: %q, хотели %q", got, HeaderUnchecked)
	}

	sel.Toggle(2)
	if got := sel.HeaderState(pageIDs); got != HeaderIndeterminate {
		t.Errorf("частичное выделение: %q, хотели %q", got, HeaderIndeterminate)
	}

	sel.SelectPage(pageIDs)
	if got := sel.HeaderState(pageIDs); got != HeaderChecked {
		t.Errorf("полное выделение: %q, хотели %q", got, HeaderChecked)
	}

	if got := sel.HeaderState(nil); got != HeaderUnchecked {
		t.Errorf("пустая страница: %q, хотели %q", got, HeaderUnchecked)
	}
}

// Сценарий: выделили 3 строки на странице 0,
// перешли на страницу 1 — счётчик выделения обнулился.
func TestSelection_PagingClearsSelection(t *testing.T) {
	filters := Filters{"search": ""}
	q0 := Query{Page: 0, PerPage: 10, Filters: filters}

	sel := NewSelection(q0.Key())
	sel.SelectPage([]int64{1, 2, 3})

	q1 := q0.WithPage(1)
	sel.Sync(q1.Key())

	if sel.Count() != 0 {
		t.Errorf("Count = %d, хотели 0 после перехода на страницу 1", sel.Count())
	}
}
