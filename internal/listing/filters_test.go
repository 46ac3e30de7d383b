package listing

import "testing"

func defaultFilters() Filters {
	return Filters{"status": FilterAll, "type": FilterAll, "search": ""}
}

func TestFilterState_SetDoesNotChangeApplied(t *testing.T) {
	s := NewFilterState(defaultFilters())

	s.Set("status", "active")
	s.Set("search", "terminal")

	// Черновик изменился, применённые — нет: fetch не должен запускаться
	if got := s.Draft()["status"]; got != "active" {
		t.Errorf("Draft status = %q, хотели active", got)
	}
	if got := s.Applied()["status"]; got != FilterAll {
		t.Errorf("Applied status = %q, хотели %q (Set не применяет)", got, FilterAll)
	}
}

func TestFilterState_ApplyResetsToFirstPage(t *testing.T) {
	s := NewFilterState(defaultFilters())
	s.SetPerPage(25)
	s.Set("status", "active")

	q := s.Apply()

	if q.Page != 0 {
		t.Errorf("Apply должен давать страницу 0, получили %d", q.Page)
	}
	if q.PerPage != 25 {
		t.Errorf("PerPage = %d, хотели 25", q.PerPage)
	}
	if q.Filters["status"] != "active" {
		t.Errorf("фильтр не применился: %q", q.Filters["status"])
	}
	if got := s.Applied()["status"]; got != "active" {
		t.Errorf("Applied после Apply = %q, хотели active", got)
	}
}

func TestFilterState_ResetRestoresDefaults(t *testing.T) {
	s := NewFilterState(defaultFilters())
	s.Set("status", "active")
	s.Set("search", "gate")
	s.Apply()

	q := s.Reset()

	if q.Page != 0 {
		t.Errorf("Reset должен давать страницу 0, получили %d", q.Page)
	}
	if q.Filters["status"] != FilterAll || q.Filters["search"] != "" {
		t.Errorf("Reset не вернул форму по умолчанию: %v", q.Filters)
	}
	if s.Draft()["status"] != FilterAll {
		t.Error("черновик не сброшен")
	}
}

func TestFilterState_QueryAtKeepsApplied(t *testing.T) {
	s := NewFilterState(defaultFilters())
	s.Set("status", "active")
	s.Apply()
	// Черновик меняется дальше, но пагинация идёт по применённым
	s.Set("status", "not_active")

	q := s.QueryAt(3)
	if q.Page != 3 {
		t.Errorf("Page = %d, хотели 3", q.Page)
	}
	if q.Filters["status"] != "active" {
		t.Errorf("пагинация должна использовать применённые фильтры, получили %q", q.Filters["status"])
	}
}
