// Пакет listing — повторно используемое ядро пагинируемых/фильтруемых
// списков и парных экранов назначений. Чистые структуры состояния без
// HTTP и рендеринга: состояние кодируется в query string страницы,
// fetch выполняет сервисный слой.
//
// Соглашение о страницах: UI всюду оперирует 0-based номерами,
// backend — 1-based; перевод выполняется ровно в двух местах —
// BackendValues (наружу) и FromMeta (внутрь).
package listing

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// FilterAll — значение-сентинел "без фильтра". Наравне с пустой
// строкой никогда не отправляется backend'у.
const FilterAll = "all"

// PerPageAll — запрос "все строки". Перед fetch'ем заменяется
// на последний известный meta.total (Materialize), а не передаётся
// backend'у как спец-значение.
const PerPageAll = -1

// DefaultPerPage — размер страницы по умолчанию.
const DefaultPerPage = 10

// Filters — значения фильтров экрана (имя поля → значение).
type Filters map[string]string

// Clone возвращает независимую копию.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Active возвращает только действующие фильтры: значения '' и 'all'
// считаются "без фильтра" и отбрасываются.
func (f Filters) Active() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		if v == "" || v == FilterAll {
			continue
		}
		out[k] = v
	}
	return out
}

// Query — запрос одной страницы списка.
type Query struct {
	// Page — 0-based номер страницы UI.
	Page int
	// PerPage — размер страницы; PerPageAll — "все строки".
	PerPage int
	// Filters — значения фильтров (включая сентинелы).
	Filters Filters
}

// NewQuery возвращает запрос первой страницы с размером по умолчанию.
func NewQuery(filters Filters) Query {
	return Query{Page: 0, PerPage: DefaultPerPage, Filters: filters.Clone()}
}

// BackendValues кодирует запрос для backend'а: page = 1-based,
// limit, действующие фильтры. Сентинелы '' и 'all' не отправляются.
func (q Query) BackendValues() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page+1))
	if q.PerPage > 0 {
		v.Set("limit", strconv.Itoa(q.PerPage))
	}
	for k, val := range q.Filters.Active() {
		v.Set(k, val)
	}
	return v
}

// First возвращает копию запроса, сброшенную на первую страницу.
func (q Query) First() Query {
	q.Page = 0
	q.Filters = q.Filters.Clone()
	return q
}

// WithPage возвращает копию запроса на указанной странице.
func (q Query) WithPage(page int) Query {
	if page < 0 {
		page = 0
	}
	q.Page = page
	q.Filters = q.Filters.Clone()
	return q
}

// WithPerPage возвращает копию с новым размером страницы,
// сброшенную на первую страницу.
func (q Query) WithPerPage(perPage int) Query {
	q.PerPage = perPage
	q.Page = 0
	q.Filters = q.Filters.Clone()
	return q
}

// Materialize заменяет PerPageAll на последний известный total.
// Вычисляется на клиенте; total может устареть между рендерами —
// зафиксированное свойство, не баг.
func (q Query) Materialize(total int) Query {
	if q.PerPage == PerPageAll {
		if total < 1 {
			total = 1
		}
		q.PerPage = total
	}
	return q
}

// Key — каноническое представление запроса. Используется как граница
// жизни выделения строк: смена страницы, размера или фильтров даёт
// новый ключ, и выделение сбрасывается.
func (q Query) Key() string {
	var b strings.Builder
	b.WriteString("p=")
	b.WriteString(strconv.Itoa(q.Page))
	b.WriteString(";l=")
	b.WriteString(strconv.Itoa(q.PerPage))

	active := q.Filters.Active()
	keys := make([]string, 0, len(active))
	for k := range active {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(";")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(active[k])
	}
	return b.String()
}
