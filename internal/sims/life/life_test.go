package life

import "testing"

const (
	o = Dead
	x = Alive
)

// assertStep steps a universe built from before and compares the result
// against after, cell by cell.
func assertStep(t *testing.T, w, h int, before, after []Cell) {
	t.Helper()
	u := FromCells(w, h, before)
	if err := u.Step(); err != nil {
		t.Fatal(err)
	}
	got := u.ToCells()
	for i := range after {
		if got[i] != after[i] {
			t.Fatalf("cell (%d,%d) = %d, want %d", i%w, i/w, got[i], after[i])
		}
	}
}

func TestLoneCellDies(t *testing.T) {
	assertStep(t, 5, 5,
		[]Cell{
			o, o, o, o, o,
			o, o, o, o, o,
			o, o, x, o, o,
			o, o, o, o, o,
			o, o, o, o, o,
		},
		[]Cell{
			o, o, o, o, o,
			o, o, o, o, o,
			o, o, o, o, o,
			o, o, o, o, o,
			o, o, o, o, o,
		})
}

func TestBlockIsStill(t *testing.T) {
	grid := []Cell{
		o, o, o, o, o,
		o, o, o, o, o,
		o, x, x, o, o,
		o, x, x, o, o,
		o, o, o, o, o,
	}
	assertStep(t, 5, 5, grid, grid)
}

func TestPlusBecomesRing(t *testing.T) {
	assertStep(t, 5, 5,
		[]Cell{
			o, o, o, o, o,
			o, o, x, o, o,
			o, x, x, x, o,
			o, o, x, o, o,
			o, o, o, o, o,
		},
		[]Cell{
			o, o, o, o, o,
			o, x, x, x, o,
			o, x, o, x, o,
			o, x, x, x, o,
			o, o, o, o, o,
		})
}

func TestCellsWrapAroundEdges(t *testing.T) {
	assertStep(t, 5, 5,
		[]Cell{
			o, o, o, o, o,
			o, o, o, o, o,
			x, o, o, x, x,
			o, o, o, o, o,
			o, o, o, o, o,
		},
		[]Cell{
			o, o, o, o, o,
			o, o, o, o, x,
			o, o, o, o, x,
			o, o, o, o, x,
			o, o, o, o, o,
		})
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := []Cell{
		o, o, o, o, o,
		o, o, x, o, o,
		o, o, x, o, o,
		o, o, x, o, o,
		o, o, o, o, o,
	}
	horizontal := []Cell{
		o, o, o, o, o,
		o, o, o, o, o,
		o, x, x, x, o,
		o, o, o, o, o,
		o, o, o, o, o,
	}
	u := FromCells(5, 5, vertical)

	if err := u.Step(); err != nil {
		t.Fatal(err)
	}
	got := u.ToCells()
	for i := range horizontal {
		if got[i] != horizontal[i] {
			t.Fatalf("after one step cell (%d,%d) = %d, want %d", i%5, i/5, got[i], horizontal[i])
		}
	}

	if err := u.Step(); err != nil {
		t.Fatal(err)
	}
	got = u.ToCells()
	for i := range vertical {
		if got[i] != vertical[i] {
			t.Fatalf("after two steps cell (%d,%d) = %d, want %d", i%5, i/5, got[i], vertical[i])
		}
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.Reset(42)
	b.Reset(42)

	ac, bc := a.ToCells(), b.ToCells()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("same seed produced diverging boards at cell %d", i)
		}
	}

	b.Reset(43)
	diff := 0
	for i, c := range b.ToCells() {
		if c != ac[i] {
			diff++
		}
	}
	if diff == 0 {
		t.Fatal("different seeds produced identical boards")
	}
}

func TestDefaultDimensions(t *testing.T) {
	c := FromMap(nil)
	if c.Width != 64 || c.Height != 64 {
		t.Fatalf("default config = %dx%d, want 64x64", c.Width, c.Height)
	}
	c = FromMap(map[string]string{"w": "10", "h": "20"})
	if c.Width != 10 || c.Height != 20 {
		t.Fatalf("config = %dx%d, want 10x20", c.Width, c.Height)
	}
}
