package listing

import "testing"

func TestPair_AfterAssignKeepsCurrentPages(t *testing.T) {
	p := NewPair(Filters{"search": ""}, Filters{"search": ""})
	p.In = p.In.WithPage(2)
	p.Out = p.Out.WithPage(4)

	next := p.AfterAssign()

	if next.In.Page != 2 || next.Out.Page != 4 {
		t.Errorf("после assign обе стороны остаются на текущих страницах: In=%d Out=%d",
			next.In.Page, next.Out.Page)
	}
}

func TestPair_AfterRemoveResetsSourceSide(t *testing.T) {
	p := NewPair(Filters{}, Filters{})
	p.In = p.In.WithPage(3)
	p.Out = p.Out.WithPage(1)

	next := p.AfterRemove()

	if next.In.Page != 0 {
		t.Errorf("после remove сторона In сбрасывается на страницу 0, получили %d", next.In.Page)
	}
	if next.Out.Page != 1 {
		t.Errorf("сторона Out остаётся на текущей странице, получили %d", next.Out.Page)
	}
}

func TestPair_SidesIndependentFilters(t *testing.T) {
	p := NewPair(Filters{"status": "active"}, Filters{"search": "ali"})

	if p.In.Filters["status"] != "active" {
		t.Error("фильтры стороны In потеряны")
	}
	if p.Out.Filters["search"] != "ali" {
		t.Error("фильтры стороны Out потеряны")
	}
	if _, ok := p.Out.Filters["status"]; ok {
		t.Error("фильтры сторон не должны смешиваться")
	}
}
