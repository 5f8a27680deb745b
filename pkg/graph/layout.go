package graph

import (
	"math"

	"github.com/matzehuels/graphwalk/pkg/errors"
)

// Hit-test slack around a node's radius.
const (
	DragSlop  = 4.0 // grabbing a node to drag it
	HoverSlop = 8.0 // highlighting the node under the pointer
)

// Canvas is the logical drawing surface node positions live on.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Radius float64 `toml:"radius"` // node circle radius
}

// DefaultCanvas is the 700×480 surface with 22px nodes.
var DefaultCanvas = Canvas{Width: 700, Height: 480, Radius: 22}

// Clamp keeps p inside the canvas so a node circle of the canvas radius
// stays fully visible.
func (c Canvas) Clamp(p Point) Point {
	return Point{
		X: math.Max(c.Radius, math.Min(c.Width-c.Radius, p.X)),
		Y: math.Max(c.Radius, math.Min(c.Height-c.Radius, p.Y)),
	}
}

// MoveNode repositions node i, clamped into the canvas.
// Moving is not a structural edit and never touches the weights.
// Returns OUT_OF_RANGE if i is outside [0, N).
func (s *Store) MoveNode(i int, x, y float64) error {
	if i < 0 || i >= len(s.pos) {
		return errors.New(errors.ErrCodeOutOfRange, "node indices must be 0 – %d", len(s.pos)-1)
	}
	s.pos[i] = s.canvas.Clamp(Point{X: x, Y: y})
	return nil
}

// NodeAt returns the node whose circle, widened by slop, contains (x, y).
// When circles overlap the highest index wins. Returns -1 if none match.
func (s *Store) NodeAt(x, y, slop float64) int {
	hit := -1
	for i, p := range s.pos {
		if math.Hypot(x-p.X, y-p.Y) < s.canvas.Radius+slop {
			hit = i
		}
	}
	return hit
}
