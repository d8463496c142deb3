package overlay

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// AuxImage draws a bitmap at a fixed position relative to its parent.
type AuxImage struct {
	auxItem

	width  float64
	height float64

	// Image is the bitmap to draw; nil draws nothing.
	Image *ebiten.Image

	// Alpha is the draw opacity in [0, 1].
	Alpha float64
}

// NewAuxImage creates an image item with the given size in paint units.
func NewAuxImage(ctx *Context, parent *Node, width, height float64) *AuxImage {
	a := &AuxImage{
		auxItem: newAuxItem(ctx, parent, "image", true),
		width:   width,
		height:  height,
		Alpha:   1,
	}
	a.node.Owner = a
	a.bounds = Rect{0, 0, width, height}
	a.Hover = true
	return a
}

// SetSize updates the image item's size and offset.
func (a *AuxImage) SetSize(width, height, xoff, yoff float64) {
	a.prepareGeometryChange()
	a.bounds = Rect{0, 0, width, height}
	a.node.SetPos(xoff, yoff)
	a.width = width
	a.height = height
}

// Size returns the item's current effective size.
func (a *AuxImage) Size() (w, h float64) {
	return a.width, a.height
}

// Paint draws the bitmap at the local origin with the item's opacity.
func (a *AuxImage) Paint(dst *ebiten.Image, clip *Rect) {
	target := clipTo(dst, clip)

	if a.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(a.Alpha))
	target.DrawImage(a.Image, op)
}

// AuxImageFollowsRect is an image item that letterboxes itself into a
// caller-supplied rectangle, realigned per its alignment anchor. It only
// contributes to the frame when the real-view display mode is active.
type AuxImageFollowsRect struct {
	AuxImage

	// Alignment anchors the image within the rectangle handed to Move.
	Alignment Align

	realWidth  float64
	realHeight float64
	realImage  *ebiten.Image

	// OnMoved, when set by the host, is called after a reposition with the
	// previous absolute position and the effective size, so the vacated
	// region can be invalidated.
	OnMoved func(oldX, oldY, w, h float64)
}

// NewAuxImageFollowsRect creates a rect-following image item.
func NewAuxImageFollowsRect(ctx *Context, parent *Node, width, height float64) *AuxImageFollowsRect {
	f := &AuxImageFollowsRect{
		AuxImage:  *NewAuxImage(ctx, parent, width, height),
		Alignment: AlignTop | AlignLeft,
	}
	f.node.Owner = f
	f.realWidth = width
	f.realHeight = height
	return f
}

// SetSize updates the item's size and records it as the "real" size that
// Move shrinks from when the available rectangle is smaller.
func (f *AuxImageFollowsRect) SetSize(width, height float64) {
	f.AuxImage.SetSize(width, height, 0, 0)
	f.realWidth = width
	f.realHeight = height
}

// SetImage installs the full-resolution bitmap.
func (f *AuxImageFollowsRect) SetImage(img *ebiten.Image) {
	f.Image = img
	f.realImage = img
}

// Paint draws the bitmap only when the real-view display mode is enabled.
func (f *AuxImageFollowsRect) Paint(dst *ebiten.Image, clip *Rect) {
	if !f.ctx.RealView() {
		return
	}
	f.AuxImage.Paint(dst, clip)

	if f.realImage == nil {
		f.realImage = f.Image
	}
}

// Move repositions the item within the absolute rectangle (x, y, w, h).
// The effective size is the minimum of the real size and the available
// size, cropping the retained full-resolution image when shrinking. The
// computed absolute position is converted to parent-relative coordinates;
// if the parent has been destroyed the move is a no-op, and if the position
// is unchanged no repositioning or invalidation occurs.
func (f *AuxImageFollowsRect) Move(x, y, w, h float64) {
	oldX, oldY := f.node.Pos()

	f.width = f.realWidth
	f.height = f.realHeight
	changedSize := false
	if w < f.width {
		f.width = w
		changedSize = true
	}
	if h < f.height {
		f.height = h
		changedSize = true
	}
	if f.realImage != nil {
		if changedSize {
			f.Image = cropImage(f.realImage, f.width, f.height)
		} else {
			f.Image = f.realImage
		}
	}

	// Absolute X from the alignment anchor.
	var newX float64
	switch {
	case f.Alignment.has(AlignLeft):
		newX = x
	case f.Alignment.has(AlignRight):
		newX = x + w - f.width
	default:
		newX = x + w/2 - f.width/2
	}

	// Absolute Y.
	var newY float64
	switch {
	case f.Alignment.has(AlignTop):
		newY = y
	case f.Alignment.has(AlignBottom):
		newY = y + h - f.height
	default:
		newY = y + h/2 - f.height/2
	}

	// Translate to parent-relative coordinates.
	parent := f.node.Parent
	if parent == nil || parent.IsDisposed() {
		return
	}
	px, py := parent.AbsPos()
	newX -= px
	newY -= py

	if newX == oldX && newY == oldY {
		// The item did not move; skip repositioning and invalidation.
		return
	}

	f.node.SetPos(newX, newY)

	if f.OnMoved != nil {
		f.OnMoved(oldX+px, oldY+py, f.width, f.height)
	}
}

// cropImage returns the top-left w x h region of img. The region is clamped
// to the image bounds.
func cropImage(img *ebiten.Image, w, h float64) *ebiten.Image {
	b := img.Bounds()
	r := image.Rect(b.Min.X, b.Min.Y, b.Min.X+int(w), b.Min.Y+int(h)).Intersect(b)
	return img.SubImage(r).(*ebiten.Image)
}
