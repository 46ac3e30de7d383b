package model

// Meta — пагинационный конверт backend'а.
// Номера страниц всегда 1-based; перевод в 0-based для UI
// выполняет пакет listing. Разные ресурсы backend'а возвращают
// либо last_page, либо total_pages — учитываются оба.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page,omitempty"`
	TotalPages  int `json:"total_pages,omitempty"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Pages возвращает общее число страниц: last_page,
// при его отсутствии — total_pages, минимум 1.
func (m Meta) Pages() int {
	n := m.LastPage
	if n == 0 {
		n = m.TotalPages
	}
	if n < 1 {
		n = 1
	}
	return n
}
