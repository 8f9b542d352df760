package world

// Grid is a fixed size, row-major matrix of cells addressed by Coord.
// Out of range reads return the zero value and out of range writes are ignored.
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid[T any](width, height int) *Grid[T] {
	g := &Grid[T]{}
	g.Build(width, height)
	return g
}

// Build (re)initializes the grid with the given dimensions
func (g *Grid[T]) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]T, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid[T]) Height() int {
	return g.height
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid[T]) IsValidPosition(p Coord) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the value at p, or the zero value if out of bounds
func (g *Grid[T]) Get(p Coord) T {
	if !g.IsValidPosition(p) {
		var zero T
		return zero
	}
	return g.cells[p.Y*g.width+p.X]
}

// Set stores v at p. Returns false if out of bounds.
func (g *Grid[T]) Set(p Coord, v T) bool {
	if !g.IsValidPosition(p) {
		return false
	}
	g.cells[p.Y*g.width+p.X] = v
	return true
}

// Fill sets every cell to v
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// ForEachCell iterates over all cells row by row
func (g *Grid[T]) ForEachCell(fn func(p Coord, v T)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Coord{x, y}, g.cells[y*g.width+x])
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{width: g.width, height: g.height, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have the same size and contents
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
