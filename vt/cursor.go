package vt

// cursor is a zero-based (x, y) position within the grid.
type cursor struct {
	x, y int
}

func (c cursor) equal(other cursor) bool {
	return c.x == other.x && c.y == other.y
}
