package listing

// FilterState — держатель фильтров экрана с разделением на черновик
// (значения в полях формы) и применённые (использованные в последнем
// fetch'е). Изменение черновика само по себе никогда не приводит
// к fetch'у — запрос порождают только Apply, Reset, пагинация
// и смена размера страницы.
type FilterState struct {
	defaults Filters
	draft    Filters
	applied  Filters
	perPage  int
}

// NewFilterState создаёт держатель с фиксированной формой значений
// по умолчанию; черновик и применённые инициализируются ею же.
func NewFilterState(defaults Filters) *FilterState {
	return &FilterState{
		defaults: defaults.Clone(),
		draft:    defaults.Clone(),
		applied:  defaults.Clone(),
		perPage:  DefaultPerPage,
	}
}

// Set записывает значение в черновик. Без побочных эффектов.
func (s *FilterState) Set(field, value string) {
	s.draft[field] = value
}

// Draft возвращает копию черновика (для привязки к полям формы).
func (s *FilterState) Draft() Filters {
	return s.draft.Clone()
}

// Applied возвращает копию применённых фильтров.
func (s *FilterState) Applied() Filters {
	return s.applied.Clone()
}

// SetPerPage запоминает размер страницы для последующих запросов.
func (s *FilterState) SetPerPage(perPage int) {
	s.perPage = perPage
}

// Apply фиксирует черновик как применённые фильтры и возвращает
// запрос первой страницы с ними.
func (s *FilterState) Apply() Query {
	s.applied = s.draft.Clone()
	return Query{Page: 0, PerPage: s.perPage, Filters: s.applied.Clone()}
}

// Reset возвращает черновик и применённые фильтры к форме по умолчанию
// и возвращает запрос первой страницы.
func (s *FilterState) Reset() Query {
	s.draft = s.defaults.Clone()
	s.applied = s.defaults.Clone()
	return Query{Page: 0, PerPage: s.perPage, Filters: s.applied.Clone()}
}

// QueryAt возвращает запрос страницы page с применёнными фильтрами —
// для пагинации без повторного применения черновика.
func (s *FilterState) QueryAt(page int) Query {
	if page < 0 {
		page = 0
	}
	return Query{Page: page, PerPage: s.perPage, Filters: s.applied.Clone()}
}
