package listing

import "sort"

// Состояние заголовочного чекбокса таблицы.
const (
	HeaderUnchecked     = "unchecked"
	HeaderIndeterminate = "indeterminate"
	HeaderChecked       = "checked"
)

// Selection — выделение строк для массовых действий.
// Инвариант: время жизни выделения ограничено одним результатом
// fetch'а. Выделение привязано к Query.Key(); любой другой ключ
// (смена страницы, размера, фильтров) опустошает набор. Это
// защищает от устаревшего выделения: id, отмеченный на странице 1,
// не попадёт под массовое действие после перехода на страницу 2.
type Selection struct {
	key string
	ids map[int64]bool
}

// NewSelection создаёт пустое выделение для ключа key.
func NewSelection(key string) *Selection {
	return &Selection{key: key, ids: make(map[int64]bool)}
}

// Sync сверяет ключ результата: при несовпадении выделение
// опустошается и привязывается к новому ключу.
func (s *Selection) Sync(key string) {
	if s.key != key {
		s.key = key
		s.ids = make(map[int64]bool)
	}
}

// Toggle переключает выделение одной строки.
func (s *Selection) Toggle(id int64) {
	if s.ids[id] {
		delete(s.ids, id)
	} else {
		s.ids[id] = true
	}
}

// SelectPage отмечает все строки текущей страницы.
// Осознанное решение: "выбрать всё" охватывает только строки,
// отрисованные на текущей странице, а не весь отфильтрованный
// набор на сервере — это ограничивает радиус массового действия.
func (s *Selection) SelectPage(pageIDs []int64) {
	for _, id := range pageIDs {
		s.ids[id] = true
	}
}

// DeselectPage снимает выделение со строк текущей страницы.
func (s *Selection) DeselectPage(pageIDs []int64) {
	for _, id := range pageIDs {
		delete(s.ids, id)
	}
}

// Clear опустошает выделение (после успешного массового действия).
func (s *Selection) Clear() {
	s.ids = make(map[int64]bool)
}

// Contains сообщает, выделена ли строка.
func (s *Selection) Contains(id int64) bool {
	return s.ids[id]
}

// Count возвращает количество выделенных строк.
func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs возвращает выделенные id в возрастающем порядке.
func (s *Selection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HeaderState возвращает tri-state заголовочного чекбокса
// относительно строк текущей страницы.
func (s *Selection) HeaderState(pageIDs []int64) string {
	if len(pageIDs) == 0 {
		return HeaderUnchecked
	}
	selected := 0
	for _, id := range pageIDs {
		if s.ids[id] {
			selected++
		}
	}
	switch {
	case selected == 0:
		return HeaderUnchecked
	case selected == len(pageIDs):
		return HeaderChecked
	default:
		return HeaderIndeterminate
	}
}
