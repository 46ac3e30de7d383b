package listing

import (
	"strconv"
	"testing"

	"github.com/davrbek/facegate/internal/domain/model"
)

func TestQuery_BackendValues_PageTranslation(t *testing.T) {
	// UI-страница p → backend page=p+1
	for _, p := range []int{0, 1, 7} {
		q := Query{Page: p, PerPage: 10, Filters: Filters{}}
		v := q.BackendValues()
		want := p + 1
		if got := v.Get("page"); got != strconv.Itoa(want) {
			t.Errorf("Page=%d: page=%s, хотели %d", p, got, want)
		}
		if got := v.Get("limit"); got != "10" {
			t.Errorf("limit=%s, хотели 10", got)
		}
	}
}

func TestQuery_BackendValues_SentinelFiltersOmitted(t *testing.T) {
	q := Query{
		Page:    0,
		PerPage: 20,
		Filters: Filters{
			"status":  FilterAll,
			"type":    "",
			"search":  "karim",
			"role_id": "3",
		},
	}

	v := q.BackendValues()

	if v.Has("status") {
		t.Errorf("status='all' не должен отправляться, получили %q", v.Get("status"))
	}
	if v.Has("type") {
		t.Error("пустой фильтр type не должен отправляться")
	}
	if v.Get("search") != "karim" {
		t.Errorf("search=%q, хотели karim", v.Get("search"))
	}
	if v.Get("role_id") != "3" {
		t.Errorf("role_id=%q, хотели 3", v.Get("role_id"))
	}
}

func TestQuery_Materialize(t *testing.T) {
	q := Query{Page: 0, PerPage: PerPageAll}

	m := q.Materialize(137)
	if m.PerPage != 137 {
		t.Errorf("PerPage = %d, хотели 137 (последний известный total)", m.PerPage)
	}

	// total=0 не должен давать limit=0
	m = q.Materialize(0)
	if m.PerPage != 1 {
		t.Errorf("PerPage = %d, хотели 1 при total=0", m.PerPage)
	}

	// обычный размер страницы не трогается
	q.PerPage = 25
	if got := q.Materialize(137).PerPage; got != 25 {
		t.Errorf("PerPage = %d, хотели 25", got)
	}
}

func TestQuery_Key_CanonicalAndFilterSensitive(t *testing.T) {
	a := Query{Page: 1, PerPage: 10, Filters: Filters{"status": "active", "search": ""}}
	b := Query{Page: 1, PerPage: 10, Filters: Filters{"search": FilterAll, "status": "active"}}
	if a.Key() != b.Key() {
		t.Errorf("сентинелы и порядок ключей не должны влиять на Key: %q != %q", a.Key(), b.Key())
	}

	c := a.WithPage(2)
	if a.Key() == c.Key() {
		t.Error("смена страницы должна менять Key")
	}
	d := a.WithPerPage(50)
	if a.Key() == d.Key() {
		t.Error("смена размера страницы должна менять Key")
	}
	e := Query{Page: 1, PerPage: 10, Filters: Filters{"status": "not_active"}}
	if a.Key() == e.Key() {
		t.Error("смена фильтра должна менять Key")
	}
}

func TestFromMeta_UIPageIsBackendMinusOne(t *testing.T) {
	meta := model.Meta{CurrentPage: 3, LastPage: 5, PerPage: 10, Total: 42}
	page := FromMeta([]int{1, 2, 3}, meta)

	if page.Index != 2 {
		t.Errorf("Index = %d, хотели 2 (current_page-1)", page.Index)
	}
	if page.TotalPages != 5 {
		t.Errorf("TotalPages = %d, хотели 5", page.TotalPages)
	}
	if !page.HasPrev() || !page.HasNext() {
		t.Error("страница 2 из 5 должна иметь и prev, и next")
	}
}

func TestFromMeta_TotalPagesFallback(t *testing.T) {
	// Часть ресурсов backend'а возвращает total_pages вместо last_page
	meta := model.Meta{CurrentPage: 1, TotalPages: 7, PerPage: 10, Total: 61}
	page := FromMeta([]string{}, meta)
	if page.TotalPages != 7 {
		t.Errorf("TotalPages = %d, хотели 7 (fallback на total_pages)", page.TotalPages)
	}
	if !page.Empty() {
		t.Error("страница без строк должна быть Empty")
	}
}
