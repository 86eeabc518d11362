package funge

// Direction of pointer travel.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirDown
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	}
	return "unknown"
}

// Pointer is the execution cursor: a position inside the field plus a
// travel direction. The zero value is the initial state, (0,0) facing
// right.
type Pointer struct {
	X, Y int
	Dir  Direction
}

// advance moves the pointer one cell in its direction, wrapping at the
// field edges. Movement never changes the direction.
func (p *Pointer) advance(width, height int) {
	switch p.Dir {
	case DirRight:
		p.X++
		if p.X >= width {
			p.X = 0
		}
	case DirLeft:
		p.X--
		if p.X < 0 {
			p.X = width - 1
		}
	case DirDown:
		p.Y++
		if p.Y >= height {
			p.Y = 0
		}
	case DirUp:
		p.Y--
		if p.Y < 0 {
			p.Y = height - 1
		}
	}
}
