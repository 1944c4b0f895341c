package search

import (
	"testing"

	"kilo/buffer"
	"kilo/screen"
	"kilo/terminal"
)

func docOf(lines ...string) *buffer.Document {
	d := buffer.NewDocument()
	for _, l := range lines {
		d.InsertRow(d.NumRows(), []byte(l))
	}
	d.ClearDirty()
	return d
}

func TestForwardSearchWrapsAround(t *testing.T) {
	doc := docOf("apple", "banana", "cherry")
	v := &screen.View{}
	f := NewFinder(doc, v)

	f.OnKey("an", 'n')
	if v.CY != 1 || v.CX != 1 {
		t.Fatalf("expected first match at (1,1), got (%d,%d)", v.CY, v.CX)
	}
	// Stepping forward wraps through cherry and apple back to banana.
	for i := 0; i < 3; i++ {
		f.OnKey("an", terminal.ArrowDown)
		if v.CY != 1 || f.LastMatch() != 1 {
			t.Fatalf("step %d: expected banana again, got row %d", i, v.CY)
		}
	}
}

func TestDirectionalStepping(t *testing.T) {
	doc := docOf("x one", "two", "x three", "four x")
	v := &screen.View{}
	f := NewFinder(doc, v)

	f.OnKey("x", 'x')
	if v.CY != 0 {
		t.Fatalf("expected row 0, got %d", v.CY)
	}
	f.OnKey("x", terminal.ArrowRight)
	if v.CY != 2 {
		t.Fatalf("expected row 2, got %d", v.CY)
	}
	f.OnKey("x", terminal.ArrowDown)
	if v.CY != 3 || v.CX != 5 {
		t.Fatalf("expected (3,5), got (%d,%d)", v.CY, v.CX)
	}
	f.OnKey("x", terminal.ArrowUp)
	if v.CY != 2 {
		t.Fatalf("expected row 2 going back, got %d", v.CY)
	}
	f.OnKey("x", terminal.ArrowLeft)
	f.OnKey("x", terminal.ArrowLeft)
	if v.CY != 3 {
		t.Fatalf("expected backward wrap to row 3, got %d", v.CY)
	}
}

func TestBackwardWithoutMatchSearchesForward(t *testing.T) {
	doc := docOf("a", "b", "a")
	v := &screen.View{}
	f := NewFinder(doc, v)
	f.OnKey("a", terminal.ArrowUp)
	if v.CY != 0 {
		t.Errorf("expected first match from the top, got row %d", v.CY)
	}
}

func TestMatchMapsRenderColumnToChars(t *testing.T) {
	doc := docOf("\t\tneedle")
	v := &screen.View{}
	NewFinder(doc, v).OnKey("needle", 'e')
	if v.CX != 2 {
		t.Errorf("expected CX 2 after two tabs, got %d", v.CX)
	}
	if v.RowOff != doc.NumRows() {
		t.Errorf("expected RowOff pushed past the end, got %d", v.RowOff)
	}
}

func TestNoMatchLeavesView(t *testing.T) {
	doc := docOf("abc", "def")
	v := &screen.View{CX: 1, CY: 1, RowOff: 0}
	f := NewFinder(doc, v)
	f.OnKey("zzz", 'z')
	if *v != (screen.View{CX: 1, CY: 1}) {
		t.Errorf("view changed without a match: %+v", *v)
	}
	if f.LastMatch() != -1 {
		t.Errorf("expected no last match, got %d", f.LastMatch())
	}
}

func TestEmptyQueryMatchesFirstRow(t *testing.T) {
	doc := docOf("abc", "def", "ghi")
	v := &screen.View{CX: 2, CY: 2}
	f := NewFinder(doc, v)
	f.OnKey("d", 'd')
	if v.CY != 1 {
		t.Fatalf("expected match on row 1, got row %d", v.CY)
	}

	// Deleting the query back to nothing restarts from the top.
	f.OnKey("", terminal.Backspace)
	if v.CY != 0 || v.CX != 0 {
		t.Errorf("expected cursor at (0,0), got (%d,%d)", v.CY, v.CX)
	}
	if f.LastMatch() != 0 {
		t.Errorf("expected last match 0, got %d", f.LastMatch())
	}
}

func TestEmptyQueryOnEmptyDocument(t *testing.T) {
	v := &screen.View{}
	f := NewFinder(docOf(), v)
	f.OnKey("", terminal.Backspace)
	if *v != (screen.View{}) || f.LastMatch() != -1 {
		t.Errorf("expected nothing to change, got %+v last=%d", *v, f.LastMatch())
	}
}

func TestEscapeRestoresView(t *testing.T) {
	doc := docOf("abc", "xyz")
	start := screen.View{CX: 2, CY: 0, RowOff: 0, ColOff: 1}
	v := start
	f := NewFinder(doc, &v)

	f.OnKey("y", 'y')
	if v.CY != 1 {
		t.Fatalf("expected match on row 1, got %d", v.CY)
	}
	f.OnKey("y", terminal.Escape)
	if v != start {
		t.Errorf("expected view %+v restored, got %+v", start, v)
	}
	if f.LastMatch() != -1 {
		t.Errorf("expected last match reset, got %d", f.LastMatch())
	}
}

func TestEnterKeepsMatch(t *testing.T) {
	doc := docOf("abc", "xyz")
	v := &screen.View{}
	f := NewFinder(doc, v)
	f.OnKey("z", 'z')
	f.OnKey("z", terminal.Enter)
	if v.CY != 1 || v.CX != 2 {
		t.Errorf("expected cursor on the match, got (%d,%d)", v.CY, v.CX)
	}
	if f.LastMatch() != -1 {
		t.Errorf("expected last match reset, got %d", f.LastMatch())
	}
}

func TestEmptyDocument(t *testing.T) {
	v := &screen.View{}
	NewFinder(buffer.NewDocument(), v).OnKey("a", 'a')
	if *v != (screen.View{}) {
		t.Errorf("view changed on empty document: %+v", *v)
	}
}
