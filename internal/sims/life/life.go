package life

import (
	"strings"

	"lifeloop/internal/core"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is an empty cell.
	Dead Cell = 0
	// Alive is a populated cell.
	Alive Cell = 1
)

const (
	glyphAlive = '◼'
	glyphDead  = '◻'
)

// Universe implements Conway's Game of Life with toroidal wrapping.
// Cells are stored bit-packed, eight per byte.
type Universe struct {
	cur *core.BitGrid
	nxt *core.BitGrid

	unpacked []uint8
}

// New returns a Universe with the provided dimensions.
func New(w, h int) *Universe {
	return &Universe{
		cur: core.NewBitGrid(w, h),
		nxt: core.NewBitGrid(w, h),
	}
}

// FromCells builds a Universe from one Cell per grid position.
// The slice length must equal w*h.
func FromCells(w, h int, cells []Cell) *Universe {
	u := New(w, h)
	if len(cells) != u.cur.Len() {
		panic("life: cell count does not match dimensions")
	}
	for i, c := range cells {
		u.cur.Set(i, uint8(c))
	}
	return u
}

// ToCells expands the packed state into one Cell per grid position.
func (u *Universe) ToCells() []Cell {
	out := make([]Cell, u.cur.Len())
	for i := range out {
		out[i] = Cell(u.cur.Get(i))
	}
	return out
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.cur.W, H: u.cur.H} }

// Cells exposes the current grid as one 0/1 byte per cell. The returned
// slice is reused across calls.
func (u *Universe) Cells() []uint8 {
	if u.unpacked == nil {
		u.unpacked = make([]uint8, u.cur.Len())
	}
	u.cur.Unpack(u.unpacked)
	return u.unpacked
}

// Reset randomizes the board to roughly half alive using the provided seed.
func (u *Universe) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBits(rng, u.cur)
}

// Step advances the universe by one generation. A live cell survives with
// two or three neighbors; a dead cell becomes alive with exactly three.
func (u *Universe) Step() error {
	w, h := u.cur.W, u.cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := u.cur.Wrap(x+dx, y+dy)
					neighbors += int(u.cur.Get(u.cur.Index(nx, ny)))
				}
			}
			idx := u.cur.Index(x, y)
			alive := u.cur.Get(idx) == 1
			next := uint8(0)
			if (alive && neighbors == 2) || neighbors == 3 {
				next = 1
			}
			u.nxt.Set(idx, next)
		}
	}
	u.cur.Swap(u.nxt)
	return nil
}

// Render returns the textual snapshot of the current generation.
func (u *Universe) Render() (string, error) {
	return u.String(), nil
}

// String draws the board one row per line, a glyph and a space per cell.
func (u *Universe) String() string {
	w, h := u.cur.W, u.cur.H
	var b strings.Builder
	b.Grow((w*5 + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if u.cur.Get(u.cur.Index(x, y)) == 1 {
				b.WriteRune(glyphAlive)
			} else {
				b.WriteRune(glyphDead)
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
