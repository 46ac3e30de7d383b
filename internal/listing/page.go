package listing

import "github.com/davrbek/facegate/internal/domain/model"

// Page — нормализованный результат fetch'а одной страницы.
type Page[T any] struct {
	Items []T
	// Index — 0-based номер страницы (backend current_page - 1).
	Index int
	// TotalPages — общее число страниц (минимум 1).
	TotalPages int
	// PerPage — фактический размер страницы из meta.
	PerPage int
	// Total — общее число строк по действующим фильтрам.
	Total int
}

// FromMeta нормализует пагинационный конверт backend'а:
// 1-based current_page переводится в 0-based Index.
func FromMeta[T any](items []T, meta model.Meta) Page[T] {
	idx := meta.CurrentPage - 1
	if idx < 0 {
		idx = 0
	}
	return Page[T]{
		Items:      items,
		Index:      idx,
		TotalPages: meta.Pages(),
		PerPage:    meta.PerPage,
		Total:      meta.Total,
	}
}

// HasPrev сообщает, есть ли предыдущая страница.
func (p Page[T]) HasPrev() bool { return p.Index > 0 }

// HasNext сообщает, есть ли следующая страница.
func (p Page[T]) HasNext() bool { return p.Index+1 < p.TotalPages }

// Empty сообщает, пуста ли страница (empty state таблицы).
func (p Page[T]) Empty() bool { return len(p.Items) == 0 }
