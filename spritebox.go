package overlay

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Spritebox is the placement indicator box drawn for a sprite. It is owned
// exclusively by one SpriteImage. Geometry is held in logical tile units and
// scaled to paint units on demand; the derived rects are recomputed from the
// current fields on every access, never cached.
type Spritebox struct {
	Dims

	// Shown controls whether the placement box is drawn at all.
	Shown bool

	// Scale converts logical units to paint units.
	Scale float64

	// Selection flash: a short fade-back-in of the outline after placement.
	flash      *gween.Tween
	flashAlpha float64
}

// NewSpritebox creates a spritebox with default 16x16 geometry.
func NewSpritebox(scale float64) *Spritebox {
	return &Spritebox{
		Dims:       defaultDims(),
		Shown:      true,
		Scale:      scale,
		flashAlpha: 1,
	}
}

// RoundedRect returns the border-style rect: the scaled bounds inset by one
// paint unit on each side, so the stroke sits inside the logical bounds.
func (b *Spritebox) RoundedRect() Rect {
	return Rect{
		X:      (b.XOffset * b.Scale) + 1,
		Y:      (b.YOffset * b.Scale) + 1,
		Width:  (b.Width * b.Scale) - 2,
		Height: (b.Height * b.Scale) - 2,
	}
}

// SetRoundedRect back-computes the geometry fields from a border-style rect.
// The inverse formula is intentionally not an exact inverse of RoundedRect;
// the asymmetry is preserved for visual compatibility.
func (b *Spritebox) SetRoundedRect(r Rect) {
	b.SetDimensions(
		(r.X/b.Scale)-1,
		(r.Y/b.Scale)-1,
		(r.Width/b.Scale)+2,
		(r.Height/b.Scale)+2,
	)
}

// ResetRoundedRect restores the canonical default geometry.
func (b *Spritebox) ResetRoundedRect() {
	b.ResetDimensions()
}

// BoundingRect returns the exact scaled rect, used for hit-testing and paint
// invalidation.
func (b *Spritebox) BoundingRect() Rect {
	return Rect{
		X:      b.XOffset * b.Scale,
		Y:      b.YOffset * b.Scale,
		Width:  b.Width * b.Scale,
		Height: b.Height * b.Scale,
	}
}

// SetBoundingRect back-computes the geometry fields from a bounding rect.
// Like SetRoundedRect, the formula mirrors the original editor's behavior
// (multiply, not divide) rather than inverting BoundingRect.
func (b *Spritebox) SetBoundingRect(r Rect) {
	b.SetDimensions(
		r.X*b.Scale,
		r.Y*b.Scale,
		r.Width*b.Scale,
		r.Height*b.Scale,
	)
}

// ResetBoundingRect restores the canonical default geometry.
func (b *Spritebox) ResetBoundingRect() {
	b.ResetDimensions()
}

// Flash blanks the outline and fades it back in over the given duration in
// seconds. Used by the editor to highlight a freshly placed sprite.
func (b *Spritebox) Flash(duration float32) {
	b.flashAlpha = 0
	b.flash = gween.New(0, 1, duration, ease.OutQuad)
}

// Update advances the flash animation by dt seconds. No-op when no flash is
// active.
func (b *Spritebox) Update(dt float32) {
	if b.flash == nil {
		return
	}
	val, finished := b.flash.Update(dt)
	b.flashAlpha = float64(val)
	if finished {
		b.flash = nil
		b.flashAlpha = 1
	}
}

// OutlineAlpha returns the current outline opacity multiplier in [0, 1].
// It is 1 whenever no flash is in progress.
func (b *Spritebox) OutlineAlpha() float64 {
	return b.flashAlpha
}
