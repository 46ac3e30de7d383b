package listing

// Pair — пара взаимодополняющих списков экрана назначений:
// In — назначенные (со статусами синхронизации), Out — неназначенные.
// Каждая сторона — независимый пагинируемый запрос; пара хранит
// только политику перезагрузки после мутаций.
//
// Политика после мутации:
//   - assign (Out → In): обе стороны перезагружают текущую страницу;
//   - remove (In → Out): сторона In сбрасывается на первую страницу —
//     текущая могла стать короче и перестать существовать.
//
// Перезагрузка выполняется безусловно после успешной мутации;
// логическая ошибка (error_class при HTTP 200) перезагрузку
// не запускает — это решает сервисный слой.
type Pair struct {
	In  Query
	Out Query
}

// NewPair создаёт пару запросов первой страницы с общими фильтрами
// по умолчанию для каждой стороны.
func NewPair(inFilters, outFilters Filters) Pair {
	return Pair{
		In:  NewQuery(inFilters),
		Out: NewQuery(outFilters),
	}
}

// AfterAssign возвращает пару запросов для перезагрузки после
// назначения: обе стороны на своих текущих страницах.
func (p Pair) AfterAssign() Pair {
	return Pair{In: p.In, Out: p.Out}
}

// AfterRemove возвращает пару запросов для перезагрузки после снятия:
// In — на первой странице, Out — на текущей.
func (p Pair) AfterRemove() Pair {
	return Pair{In: p.In.First(), Out: p.Out}
}
