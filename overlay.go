package overlay

import "image/color"

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the
// API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Align is a bitmask of anchor flags used to position auxiliary items within
// their parent's cell or rectangle. Horizontal and vertical flags combine
// with bitwise OR (e.g. AlignRight | AlignBottom).
type Align uint8

const (
	AlignLeft    Align = 1 << iota // anchor to the left edge
	AlignRight                     // anchor to the right edge
	AlignHCenter                   // center horizontally
	AlignTop                       // anchor to the top edge
	AlignBottom                    // anchor to the bottom edge
	AlignVCenter                   // center vertically
)

// AlignCenter centers on both axes.
const AlignCenter = AlignHCenter | AlignVCenter

// has reports whether all bits of flag are set in a.
func (a Align) has(flag Align) bool {
	return a&flag == flag
}

// Direction selects the orientation of a track overlay.
type Direction uint8

const (
	Horizontal Direction = iota + 1 // track runs left to right
	Vertical                        // track runs top to bottom
)

// Pen describes the stroke used for auxiliary item outlines.
type Pen struct {
	Color color.RGBA
	Width float32
}

// Brush describes the fill used for auxiliary item interiors.
type Brush struct {
	Color color.RGBA
}

// withAlpha returns c with its alpha channel replaced, preserving RGB.
// Used when a RectOutline overrides the shared outline color: the override
// keeps the shared pen's translucency.
func withAlpha(c color.RGBA, alpha uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
