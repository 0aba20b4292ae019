package cellgrid

// Grid2D is a fixed-size dense 2-D array with exactly one element per
// coordinate, backed by a row-major slice. A user-supplied factory produces
// default cell values; an optional destructor is invoked for occupants
// dropped when a Resize shrinks the grid.
//
// Grid2D is a supporting type: it shares the coordinate conventions and
// error taxonomy of SpatialGrid2D but none of its pooling machinery.
type Grid2D[T any] struct {
	width, height int
	cells         []T
	factory       func(x, y int) T
	destructor    func(v T, x, y int)
}

// NewGrid2D creates a width x height grid with every cell initialized from
// factory. destructor may be nil.
func NewGrid2D[T any](width, height int, factory func(x, y int) T, destructor func(v T, x, y int)) (*Grid2D[T], error) {
	if width < 1 {
		return nil, &ErrInvalidDimension{Name: "grid width", Value: width}
	}
	if height < 1 {
		return nil, &ErrInvalidDimension{Name: "grid height", Value: height}
	}

	g := &Grid2D[T]{
		width:      width,
		height:     height,
		cells:      make([]T, width*height),
		factory:    factory,
		destructor: destructor,
	}
	for i := range g.cells {
		g.cells[i] = factory(i%width, i/width)
	}

	return g, nil
}

// At returns the value at (x, y).
func (g *Grid2D[T]) At(x, y int) (T, error) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		var zero T
		return zero, &ErrOutOfBounds{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return g.cells[y*g.width+x], nil
}

// Set overwrites the value at (x, y).
func (g *Grid2D[T]) Set(x, y int, v T) error {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return &ErrOutOfBounds{X: x, Y: y, Width: g.width, Height: g.height}
	}
	g.cells[y*g.width+x] = v
	return nil
}

// Resize rebuilds the grid at the new dimensions. Cells inside the overlap
// keep their values, dropped occupants are handed to the destructor, and
// fresh cells are filled from the factory.
func (g *Grid2D[T]) Resize(width, height int) error {
	if width < 1 {
		return &ErrInvalidDimension{Name: "grid width", Value: width}
	}
	if height < 1 {
		return &ErrInvalidDimension{Name: "grid height", Value: height}
	}

	cells := make([]T, width*height)
	for i := range cells {
		x, y := i%width, i/width
		if x < g.width && y < g.height {
			cells[i] = g.cells[y*g.width+x]
		} else {
			cells[i] = g.factory(x, y)
		}
	}

	if g.destructor != nil {
		for i, v := range g.cells {
			x, y := i%g.width, i/g.width
			if x >= width || y >= height {
				g.destructor(v, x, y)
			}
		}
	}

	g.width, g.height = width, height
	g.cells = cells

	return nil
}

// ForEach visits every cell in row-major order.
func (g *Grid2D[T]) ForEach(fn func(x, y int, v T)) {
	for i, v := range g.cells {
		fn(i%g.width, i/g.width, v)
	}
}

// Width returns the grid width.
func (g *Grid2D[T]) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid2D[T]) Height() int { return g.height }
