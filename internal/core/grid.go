package core

// BitGrid stores a 2D grid of binary cells packed eight per byte in
// row-major order, least significant bit first within each byte.
type BitGrid struct {
	W, H int
	data []uint8
}

// NewBitGrid allocates a packed grid with the given dimensions.
func NewBitGrid(w, h int) *BitGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BitGrid{W: w, H: h, data: make([]uint8, (w*h+7)/8)}
}

// Bytes exposes the packed backing slice.
func (g *BitGrid) Bytes() []uint8 { return g.data }

// Len returns the number of cells in the grid.
func (g *BitGrid) Len() int { return g.W * g.H }

// Index returns the linear cell index for coordinates (x, y).
func (g *BitGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BitGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get reports whether the cell at the linear index is set.
func (g *BitGrid) Get(i int) uint8 {
	return (g.data[i/8] >> (uint(i) % 8)) & 1
}

// Set writes a 0/1 value into the cell at the linear index.
func (g *BitGrid) Set(i int, v uint8) {
	bit := uint8(1) << (uint(i) % 8)
	if v != 0 {
		g.data[i/8] |= bit
		return
	}
	g.data[i/8] &^= bit
}

// Clear zeroes every cell.
func (g *BitGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Swap exchanges the backing storage with another grid of equal dimensions.
func (g *BitGrid) Swap(o *BitGrid) {
	g.data, o.data = o.data, g.data
}

// Unpack expands the packed cells into dst as 0/1 bytes, one per cell.
// dst must hold Len() elements.
func (g *BitGrid) Unpack(dst []uint8) {
	for i := 0; i < g.Len(); i++ {
		dst[i] = g.Get(i)
	}
}
