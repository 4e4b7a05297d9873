// Package gamemath holds the geometry shared by every frontend. It has no
// dependencies on ebitengine, donburi, or resolv.
package gamemath

// Rect is an axis-aligned bounding box in canvas space (origin top-left, y down).
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether a and b overlap on both axes. Touching edges do
// not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// OverlapsX reports whether the horizontal spans of a and b overlap.
func OverlapsX(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X
}

// OverlapsY reports whether the vertical spans of a and b overlap.
func OverlapsY(a, b Rect) bool {
	return a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
// Negative values grow it.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

