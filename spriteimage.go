package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// refScale is the reference grid scale sprite artwork is authored against.
// Layout units are normalized to a 1.5-scale (24 px per 16-unit tile) grid,
// independent of an instance's own rendering scale.
const refScale = 1.5

// Renderer is the visual plugin contract for a sprite type. SpriteImage
// provides the default implementation; concrete sprite types embed it and
// override the hooks they need. The owning sprite invokes the hooks on its
// own lifecycle events.
type Renderer interface {
	// DataChanged is invoked whenever the sprite's field values change.
	DataChanged()
	// PositionChanged is invoked whenever the sprite moves in the scene.
	PositionChanged()
	// Paint draws the sprite's primary image onto dst at the local origin.
	Paint(dst *ebiten.Image)
	// Remove is invoked when the sprite is deleted. It must release all
	// owned auxiliary items.
	Remove()
}

// SpriteImage is the per-sprite visual composition unit: a spritebox, an
// optional primary image, and an ordered list of auxiliary items. It is
// owned exclusively by the sprite object it visualizes.
type SpriteImage struct {
	Dims

	ctx    *Context
	parent *Node

	// Alpha is the image opacity in [0, 1].
	Alpha float64

	// Image is the primary image; nil means nothing is drawn.
	Image *ebiten.Image

	Spritebox *Spritebox
	Scale     float64

	aux []AuxiliaryItem
}

// NewSpriteImage creates a sprite image attached to the sprite's scene node.
func NewSpriteImage(ctx *Context, parent *Node, scale float64) *SpriteImage {
	s := &SpriteImage{
		Dims:      defaultDims(),
		ctx:       ctx,
		parent:    parent,
		Alpha:     1,
		Spritebox: NewSpritebox(scale),
		Scale:     scale,
	}
	if parent != nil {
		parent.Owner = s
	}
	return s
}

// NewStaticImage creates a sprite image that always draws the given image.
// The spritebox is hidden and the size is derived from the image dimensions.
func NewStaticImage(ctx *Context, parent *Node, scale float64, img *ebiten.Image, offset *Vec2) *SpriteImage {
	s := NewSpriteImage(ctx, parent, scale)
	s.Image = img
	s.Spritebox.Shown = false

	if img != nil {
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		s.Width = float64(w)/s.Scale + 1
		s.Height = float64(h)/s.Scale + 2
	}
	if offset != nil {
		s.XOffset = offset.X
		s.YOffset = offset.Y
	}
	return s
}

// Context returns the shared rendering context.
func (s *SpriteImage) Context() *Context {
	return s.ctx
}

// Node returns the owning sprite's scene node.
func (s *SpriteImage) Node() *Node {
	return s.parent
}

// DataChanged recomputes the derived size from the primary image: one extra
// logical unit of width and two of height beyond the scaled image, matching
// how sprite artwork overhangs its tile. Without an image the size resets to
// the default cell.
func (s *SpriteImage) DataChanged() {
	if s.Image != nil {
		w, h := s.Image.Bounds().Dx(), s.Image.Bounds().Dy()
		s.SetSize(
			float64(w)/s.Scale+1,
			float64(h)/s.Scale+2,
		)
	} else {
		s.ResetSize()
	}
}

// PositionChanged is an extension point; the base has no position-dependent
// state.
func (s *SpriteImage) PositionChanged() {}

// Paint draws the primary image at the local origin under the reference
// grid transform, with the instance's opacity. No-op without an image.
func (s *SpriteImage) Paint(dst *ebiten.Image) {
	if s.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(refScale/s.Scale, refScale/s.Scale)
	op.ColorScale.ScaleAlpha(float32(s.Alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.Image, op)
}

// Remove releases all owned auxiliary items so they do not outlive their
// visual parent, then clears the list.
func (s *SpriteImage) Remove() {
	for _, item := range s.aux {
		item.Node().Dispose()
	}
	s.aux = nil
}

// AddAux appends an auxiliary item to the ordered list and parents its node
// under the sprite's node.
func (s *SpriteImage) AddAux(item AuxiliaryItem) {
	s.aux = append(s.aux, item)
	if s.parent != nil {
		s.parent.AddChild(item.Node())
	}
}

// Aux returns the ordered auxiliary item list. The returned slice MUST NOT
// be mutated by the caller.
func (s *SpriteImage) Aux() []AuxiliaryItem {
	return s.aux
}
