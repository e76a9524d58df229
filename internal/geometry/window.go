package geometry

import "fmt"

// Constraint is one linear scan window edge: two points in mill coordinates,
// in scan system units. The window interior lies to a consistent side of
// every constraint in a window.
type Constraint struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// Window is an ordered list of constraints describing the region a head
// reports measurements within.
type Window struct {
	constraints []Constraint
}

// NewRectangularWindow expands the rectangular shorthand into its four
// canonical constraints: top, bottom, left, right, each oriented so the
// interior lies to the same side.
func NewRectangularWindow(top, bottom, left, right float64) (Window, error) {
	if top <= bottom {
		return Window{}, fmt.Errorf("window top (%v) must be greater than bottom (%v)", top, bottom)
	}
	if right <= left {
		return Window{}, fmt.Errorf("window right (%v) must be greater than left (%v)", right, left)
	}

	return Window{constraints: []Constraint{
		{X0: left, Y0: top, X1: right, Y1: top},
		{X0: right, Y0: bottom, X1: left, Y1: bottom},
		{X0: left, Y0: bottom, X1: left, Y1: top},
		{X0: right, Y0: top, X1: right, Y1: bottom},
	}}, nil
}

// NewWindow builds a window from caller-supplied constraints. The list is
// copied; an empty list yields the unconstrained window.
func NewWindow(constraints []Constraint) Window {
	w := Window{constraints: make([]Constraint, len(constraints))}
	copy(w.constraints, constraints)
	return w
}

// Constraints returns the window's constraints in order.
func (w Window) Constraints() []Constraint {
	return w.constraints
}
