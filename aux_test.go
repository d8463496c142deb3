package overlay

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func TestTrackObjectBounds(t *testing.T) {
	ctx := testContext()
	track := NewTrackObject(ctx, NewNode("sprite"), 100, 16, Horizontal)

	got := track.BoundingRect()
	want := Rect{0, 0, 150, 24}
	if got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
	if track.Direction() != Horizontal {
		t.Errorf("Direction = %v, want Horizontal", track.Direction())
	}
}

func TestTrackObjectSetSize(t *testing.T) {
	ctx := testContext()
	track := NewTrackObject(ctx, NewNode("sprite"), 100, 16, Vertical)
	track.SetSize(16, 80)

	got := track.BoundingRect()
	want := Rect{0, 0, 24, 120}
	if got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
}

// Geometry setters must report the previous bounds to the host before
// installing the new ones, so invalidation covers the vacated region.
func TestTrackObjectGeometryChangeOrdering(t *testing.T) {
	ctx := testContext()
	track := NewTrackObject(ctx, NewNode("sprite"), 100, 16, Horizontal)

	var reported Rect
	track.OnGeometryChange = func(old Rect) {
		reported = old
		if track.BoundingRect() != old {
			t.Error("bounds must still be the old value during the notification")
		}
	}

	track.SetSize(50, 16)
	if reported != (Rect{0, 0, 150, 24}) {
		t.Errorf("reported old bounds = %v, want {0 0 150 24}", reported)
	}
	if track.BoundingRect() != (Rect{0, 0, 75, 24}) {
		t.Errorf("new bounds = %v, want {0 0 75 24}", track.BoundingRect())
	}
}

func TestTrackObjectPaint(t *testing.T) {
	ctx := testContext()
	track := NewTrackObject(ctx, NewNode("sprite"), 100, 16, Horizontal)

	dst := ebiten.NewImage(160, 32)
	track.Paint(dst, nil)
	clip := Rect{0, 0, 80, 32}
	track.Paint(dst, &clip)
}

func TestCircleOutlineCenterAlignment(t *testing.T) {
	ctx := testContext()
	c := NewCircleOutline(ctx, NewNode("sprite"), 32, AlignCenter)

	if got, want := c.BoundingRect(), (Rect{0, 0, 48, 48}); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}

	// Center offset is (8 - d/2)*1.5 on both axes.
	x, y := c.Node().Pos()
	if x != -12 || y != -12 {
		t.Errorf("Pos = (%v, %v), want (-12, -12)", x, y)
	}
}

func TestCircleOutlineFarAlignment(t *testing.T) {
	ctx := testContext()
	c := NewCircleOutline(ctx, NewNode("sprite"), 32, AlignRight|AlignBottom)

	// Far offset is -(d*1.5)+24 on both axes.
	x, y := c.Node().Pos()
	if x != -24 || y != -24 {
		t.Errorf("Pos = (%v, %v), want (-24, -24)", x, y)
	}
}

func TestCircleOutlineNearAlignment(t *testing.T) {
	ctx := testContext()
	c := NewCircleOutline(ctx, NewNode("sprite"), 32, AlignLeft|AlignTop)

	x, y := c.Node().Pos()
	if x != 0 || y != 0 {
		t.Errorf("Pos = (%v, %v), want (0, 0)", x, y)
	}
}

func TestCircleOutlineSetDiameter(t *testing.T) {
	ctx := testContext()
	c := NewCircleOutline(ctx, NewNode("sprite"), 16, AlignCenter)
	c.SetDiameter(48)

	if got, want := c.BoundingRect(), (Rect{0, 0, 72, 72}); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
	if c.Diameter() != 48 {
		t.Errorf("Diameter = %v, want 48", c.Diameter())
	}
}

func TestRotationAreaOutline(t *testing.T) {
	ctx := testContext()
	r := NewRotationAreaOutline(ctx, NewNode("sprite"), 32)

	if got, want := r.BoundingRect(), (Rect{0, 0, 48, 48}); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
	x, y := r.Node().Pos()
	if x != -12 || y != -12 {
		t.Errorf("Pos = (%v, %v), want (-12, -12)", x, y)
	}

	// Angles are stored in sixteenths of a degree.
	r.SetAngle(90, 45)
	start, span := r.Angle()
	if start != 90*16 || span != 45*16 {
		t.Errorf("Angle = (%d, %d), want (%d, %d)", start, span, 90*16, 45*16)
	}
}

func TestRotationAreaOutlinePaint(t *testing.T) {
	ctx := testContext()
	r := NewRotationAreaOutline(ctx, NewNode("sprite"), 32)
	r.SetAngle(0, 270)

	dst := ebiten.NewImage(64, 64)
	r.Paint(dst, nil)

	r.SetAngle(45, -90)
	r.Paint(dst, nil)
}

func TestRectOutlineBounds(t *testing.T) {
	ctx := testContext()
	r := NewRectOutline(ctx, NewNode("sprite"), 60, 30, 5, 10)

	if got, want := r.BoundingRect(), (Rect{0, 0, 60, 30}); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
	x, y := r.Node().Pos()
	if x != 5 || y != 10 {
		t.Errorf("Pos = (%v, %v), want (5, 10)", x, y)
	}
}

func TestRectOutlineSetColor(t *testing.T) {
	ctx := testContext()
	r := NewRectOutline(ctx, NewNode("sprite"), 60, 30, 0, 0)

	red := color.RGBA{R: 255, A: 255}
	r.SetColor(&red)
	if r.color == nil || r.color.R != 255 {
		t.Error("override color should be stored")
	}

	// The stored color is a copy, not an alias.
	red.R = 0
	if r.color.R != 255 {
		t.Error("SetColor must copy the supplied color")
	}

	r.SetColor(nil)
	if r.color != nil {
		t.Error("SetColor(nil) should restore the shared pen and brush")
	}
}

func TestRectOutlinePaint(t *testing.T) {
	ctx := testContext()
	r := NewRectOutline(ctx, NewNode("sprite"), 60, 30, 0, 0)

	dst := ebiten.NewImage(64, 32)
	r.Paint(dst, nil)

	green := color.RGBA{G: 255, A: 255}
	r.SetColor(&green)
	r.Fill = false
	clip := Rect{0, 0, 32, 32}
	r.Paint(dst, &clip)
}

func TestPainterPath(t *testing.T) {
	ctx := testContext()

	var path vector.Path
	path.MoveTo(0, 0)
	path.LineTo(40, 0)
	path.LineTo(20, 30)
	path.Close()

	p := NewPainterPath(ctx, NewNode("sprite"), &path, 40, 30, 2, 3)

	if got, want := p.BoundingRect(), (Rect{0, 0, 40, 30}); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
	x, y := p.Node().Pos()
	if x != 2 || y != 3 {
		t.Errorf("Pos = (%v, %v), want (2, 3)", x, y)
	}

	dst := ebiten.NewImage(64, 64)
	p.Paint(dst, nil)

	p.SetPath(nil)
	p.Paint(dst, nil) // nil path: no-op
}

func TestAuxItemStacking(t *testing.T) {
	ctx := testContext()
	sprite := NewNode("sprite")

	track := NewTrackObject(ctx, sprite, 100, 16, Horizontal)
	if !track.Node().BehindParent {
		t.Error("sprite aux items should stack behind their sprite by default")
	}

	track.SetBehindParent(false)
	if track.Node().BehindParent {
		t.Error("SetBehindParent(false) should move the item in front")
	}
}
