package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AuxiliaryItem is a visual decoration attached to a sprite, zone, or
// location. Each item participates in the host scene graph as a child node,
// exposes a bounding rectangle for invalidation and hit-testing, and paints
// with the shared outline pen and brush.
type AuxiliaryItem interface {
	// Node returns the item's scene node.
	Node() *Node
	// BoundingRect returns the current bounds. It always equals the last
	// value set via the constructor or a geometry setter.
	BoundingRect() Rect
	// Paint draws the item's shape onto dst. A non-nil clip restricts
	// drawing to that region and enables smoothing.
	Paint(dst *ebiten.Image, clip *Rect)
	// SetBehindParent chooses whether the item stacks behind its parent
	// or in front of it.
	SetBehindParent(behind bool)
}

// auxItem carries the state shared by every auxiliary variant.
type auxItem struct {
	ctx    *Context
	node   *Node
	bounds Rect

	// Hover tracks the editor's mouseover state for this item.
	Hover bool

	// OnGeometryChange, when set by the host, is called with the previous
	// bounds before a geometry setter installs new ones, so the paint
	// scheduler learns of the change before the new geometry is drawn.
	OnGeometryChange func(old Rect)
}

// newAuxItem builds the shared state and parents the item's node.
// Sprite-owned items stack behind their sprite by default.
func newAuxItem(ctx *Context, parent *Node, name string, behind bool) auxItem {
	n := NewNode(name)
	n.BehindParent = behind
	if parent != nil {
		parent.AddChild(n)
	}
	return auxItem{
		ctx:    ctx,
		node:   n,
		bounds: Rect{0, 0, 24, 24},
	}
}

func (a *auxItem) Node() *Node {
	return a.node
}

func (a *auxItem) BoundingRect() Rect {
	return a.bounds
}

func (a *auxItem) SetBehindParent(behind bool) {
	a.node.BehindParent = behind
}

// prepareGeometryChange notifies the host of the impending bounds change.
// Must be called by every geometry setter before installing new bounds.
func (a *auxItem) prepareGeometryChange() {
	if a.OnGeometryChange != nil {
		a.OnGeometryChange(a.bounds)
	}
}

// clipTo returns dst restricted to the clip region, or dst itself when no
// clip is supplied.
func clipTo(dst *ebiten.Image, clip *Rect) *ebiten.Image {
	if clip == nil {
		return dst
	}
	r := image.Rect(
		int(math.Floor(clip.X)), int(math.Floor(clip.Y)),
		int(math.Ceil(clip.X+clip.Width)), int(math.Ceil(clip.Y+clip.Height)),
	)
	return dst.SubImage(r).(*ebiten.Image)
}

// whiteImage backs path fills and strokes rendered via DrawTriangles.
// The 1x1 center sub-image avoids sampling bleed at the edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// fillPath fills the path with the given color.
func fillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA, aa bool) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawPathTriangles(dst, vs, is, clr, aa)
}

// strokePath strokes the path with the given pen.
func strokePath(dst *ebiten.Image, path *vector.Path, pen Pen, aa bool) {
	ops := &vector.StrokeOptions{Width: pen.Width}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, ops)
	drawPathTriangles(dst, vs, is, pen.Color, aa)
}

func drawPathTriangles(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA, aa bool) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: aa,
		FillRule:  ebiten.FillRuleNonZero,
	}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

// --- Track ---

// TrackObject is the movement-path overlay shown behind moving platforms:
// a line with a circle at each end.
type TrackObject struct {
	auxItem

	width     float64
	height    float64
	direction Direction
}

// NewTrackObject creates a track with the given logical size and direction.
func NewTrackObject(ctx *Context, parent *Node, width, height float64, direction Direction) *TrackObject {
	t := &TrackObject{
		auxItem:   newAuxItem(ctx, parent, "track", true),
		direction: direction,
	}
	t.node.Owner = t
	t.node.SetPos(0, 0)
	t.width = width
	t.height = height
	t.bounds = Rect{0, 0, width * refScale, height * refScale}
	return t
}

// SetSize updates the track's logical size.
func (t *TrackObject) SetSize(width, height float64) {
	t.prepareGeometryChange()
	t.bounds = Rect{0, 0, width * refScale, height * refScale}
	t.width = width
	t.height = height
}

// Direction returns the track's orientation.
func (t *TrackObject) Direction() Direction {
	return t.direction
}

// Paint draws the track line with end circles. The line is inset 20 paint
// units from each end; circle centers sit 12 units in.
func (t *TrackObject) Paint(dst *ebiten.Image, clip *Rect) {
	target := clipTo(dst, clip)
	aa := clip != nil
	pen := t.ctx.Pen

	if t.direction == Horizontal {
		lineY := float32(t.height * refScale * 0.75)
		endX := float32(t.width*refScale) - 20
		vector.StrokeLine(target, 20, lineY, endX, lineY, pen.Width, pen.Color, aa)
		vector.StrokeCircle(target, 12, lineY, 4, pen.Width, pen.Color, aa)
		vector.StrokeCircle(target, float32(t.width*refScale)-12, lineY, 4, pen.Width, pen.Color, aa)
	} else {
		lineX := float32(t.width * refScale * 0.75)
		endY := float32(t.height*refScale) - 20
		vector.StrokeLine(target, lineX, 20, lineX, endY, pen.Width, pen.Color, aa)
		vector.StrokeCircle(target, lineX, 12, 4, pen.Width, pen.Color, aa)
		vector.StrokeCircle(target, lineX, float32(t.height*refScale)-12, 4, pen.Width, pen.Color, aa)
	}
}

// --- Circle outline ---

// CircleOutline draws a circular range indicator anchored within a single
// 16x16 cell according to its alignment.
type CircleOutline struct {
	auxItem

	diameter float64
	align    Align

	// Fill fills the circle with the shared outline brush.
	Fill bool
}

// NewCircleOutline creates a circle outline with the given diameter in
// logical units, anchored per align.
func NewCircleOutline(ctx *Context, parent *Node, diameter float64, align Align) *CircleOutline {
	c := &CircleOutline{
		auxItem: newAuxItem(ctx, parent, "circle", true),
		align:   align,
		Fill:    true,
	}
	c.node.Owner = c
	c.SetDiameter(diameter)
	return c
}

// SetDiameter resizes the circle and realigns it within its cell.
// The center-aligned axis offsets by (8 - d/2)*1.5, the far-aligned axis by
// -(d*1.5)+24, and the near-aligned axis stays at 0.
func (c *CircleOutline) SetDiameter(diameter float64) {
	c.prepareGeometryChange()
	c.bounds = Rect{0, 0, diameter * refScale, diameter * refScale}

	centerOffset := (8 - diameter/2) * refScale
	fullOffset := -(diameter * refScale) + 24

	xval := 0.0
	if c.align.has(AlignHCenter) {
		xval = centerOffset
	} else if c.align.has(AlignRight) {
		xval = fullOffset
	}

	yval := 0.0
	if c.align.has(AlignVCenter) {
		yval = centerOffset
	} else if c.align.has(AlignBottom) {
		yval = fullOffset
	}

	c.node.SetPos(xval, yval)
	c.diameter = diameter
}

// Diameter returns the circle's logical diameter.
func (c *CircleOutline) Diameter() float64 {
	return c.diameter
}

// Paint draws the circle, filled with the outline brush when Fill is set.
func (c *CircleOutline) Paint(dst *ebiten.Image, clip *Rect) {
	target := clipTo(dst, clip)
	pen := c.ctx.Pen

	cx := float32(c.bounds.X + c.bounds.Width/2)
	cy := float32(c.bounds.Y + c.bounds.Height/2)
	r := float32(c.bounds.Width / 2)

	if c.Fill {
		vector.DrawFilledCircle(target, cx, cy, r, c.ctx.Brush.Color, true)
	}
	vector.StrokeCircle(target, cx, cy, r, pen.Width, pen.Color, true)
}

// --- Rotation area outline ---

// RotationAreaOutline draws the pie slice a rotation-controlled sprite
// sweeps through. Angles are stored in sixteenths of a degree, matching the
// host's angular units; zero points right and positive spans run
// counterclockwise.
type RotationAreaOutline struct {
	auxItem

	diameter   float64
	startAngle int
	spanAngle  int
}

// NewRotationAreaOutline creates a pie outline with the given diameter in
// logical units, centered on its cell.
func NewRotationAreaOutline(ctx *Context, parent *Node, diameter float64) *RotationAreaOutline {
	r := &RotationAreaOutline{
		auxItem:  newAuxItem(ctx, parent, "rotation", true),
		diameter: diameter,
	}
	r.node.Owner = r
	r.bounds = Rect{0, 0, diameter * refScale, diameter * refScale}
	centerOffset := (8 - diameter/2) * refScale
	r.node.SetPos(centerOffset, centerOffset)
	return r
}

// SetAngle sets the slice's start and span in degrees.
func (r *RotationAreaOutline) SetAngle(startAngle, spanAngle float64) {
	r.startAngle = int(startAngle * 16)
	r.spanAngle = int(spanAngle * 16)
}

// Angle returns the slice's start and span in sixteenths of a degree.
func (r *RotationAreaOutline) Angle() (start, span int) {
	return r.startAngle, r.spanAngle
}

// Paint draws the pie slice, always filled.
func (r *RotationAreaOutline) Paint(dst *ebiten.Image, clip *Rect) {
	target := clipTo(dst, clip)

	cx := float32(r.bounds.X + r.bounds.Width/2)
	cy := float32(r.bounds.Y + r.bounds.Height/2)
	radius := float32(r.bounds.Width / 2)

	// Convert to screen-space radians. Y grows downward, so positive spans
	// sweep counterclockwise on screen.
	start := -float64(r.startAngle) / 16 * math.Pi / 180
	end := -float64(r.startAngle+r.spanAngle) / 16 * math.Pi / 180
	dir := vector.Clockwise
	if r.spanAngle > 0 {
		dir = vector.CounterClockwise
	}

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, radius, float32(start), float32(end), dir)
	path.Close()

	fillPath(target, &path, r.ctx.Brush.Color, true)
	strokePath(target, &path, r.ctx.Pen, true)
}

// --- Rect outline ---

// RectOutline draws a rectangular range indicator at a caller-supplied size
// and offset, optionally in an override color.
type RectOutline struct {
	auxItem

	color *color.RGBA

	// Fill fills the rectangle with the outline brush (or the override
	// color at the brush's translucency).
	Fill bool
}

// NewRectOutline creates a rect outline in paint units.
func NewRectOutline(ctx *Context, parent *Node, width, height, xoff, yoff float64) *RectOutline {
	r := &RectOutline{
		auxItem: newAuxItem(ctx, parent, "rect", true),
		Fill:    true,
	}
	r.node.Owner = r
	r.bounds = Rect{0, 0, width, height}
	r.node.SetPos(xoff, yoff)
	return r
}

// SetSize updates the rectangle's size and offset.
func (r *RectOutline) SetSize(width, height, xoff, yoff float64) {
	r.prepareGeometryChange()
	r.bounds = Rect{0, 0, width, height}
	r.node.SetPos(xoff, yoff)
}

// SetColor overrides the outline color; nil restores the shared pen and
// brush. The override keeps the shared colors' alpha so translucency stays
// uniform across overlays.
func (r *RectOutline) SetColor(c *color.RGBA) {
	if c == nil {
		r.color = nil
		return
	}
	clr := *c
	r.color = &clr
}

// Paint draws the rectangle.
func (r *RectOutline) Paint(dst *ebiten.Image, clip *Rect) {
	target := clipTo(dst, clip)
	aa := clip != nil

	pen := r.ctx.Pen
	brush := r.ctx.Brush
	if r.color != nil {
		pen.Color = withAlpha(*r.color, r.ctx.Pen.Color.A)
		brush.Color = withAlpha(*r.color, r.ctx.Brush.Color.A)
	}

	x := float32(r.bounds.X)
	y := float32(r.bounds.Y)
	w := float32(r.bounds.Width)
	h := float32(r.bounds.Height)

	if r.Fill {
		vector.DrawFilledRect(target, x, y, w, h, brush.Color, aa)
	}
	vector.StrokeRect(target, x, y, w, h, pen.Width, pen.Color, aa)
}

// --- Painter path ---

// PainterPath draws an arbitrary closed outline supplied by the sprite type.
type PainterPath struct {
	auxItem

	path *vector.Path

	// Fill fills the path with the shared outline brush.
	Fill bool
}

// NewPainterPath creates a path outline with the given bounds and offset in
// paint units.
func NewPainterPath(ctx *Context, parent *Node, path *vector.Path, width, height, xoff, yoff float64) *PainterPath {
	p := &PainterPath{
		auxItem: newAuxItem(ctx, parent, "path", true),
		path:    path,
		Fill:    true,
	}
	p.node.Owner = p
	p.bounds = Rect{0, 0, width, height}
	p.node.SetPos(xoff, yoff)
	return p
}

// SetPath replaces the outline shape.
func (p *PainterPath) SetPath(path *vector.Path) {
	p.path = path
}

// Path returns the current outline shape.
func (p *PainterPath) Path() *vector.Path {
	return p.path
}

// SetSize updates the path's bounds and offset.
func (p *PainterPath) SetSize(width, height, xoff, yoff float64) {
	p.prepareGeometryChange()
	p.bounds = Rect{0, 0, width, height}
	p.node.SetPos(xoff, yoff)
}

// Paint draws the path.
func (p *PainterPath) Paint(dst *ebiten.Image, clip *Rect) {
	if p.path == nil {
		return
	}
	target := clipTo(dst, clip)
	aa := clip != nil

	if p.Fill {
		fillPath(target, p.path, p.ctx.Brush.Color, aa)
	}
	strokePath(target, p.path, p.ctx.Pen, aa)
}
