package overlay

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestZoneBoundingRect(t *testing.T) {
	z := NewZone(3, Rect{10, 20, 40, 30})

	if got, want := z.BoundingRect(), (Rect{0, 0, 60, 45}); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
	x, y := z.Node().Pos()
	if x != 10 || y != 20 {
		t.Errorf("Pos = (%v, %v), want (10, 20)", x, y)
	}
}

func TestZoneItemOwnership(t *testing.T) {
	ctx := testContext()
	zone := NewZone(1, Rect{0, 0, 40, 30})

	item := NewZoneItem(ctx, zone, nil)

	if item.Zone() != zone {
		t.Error("item should belong to its zone")
	}
	if !zone.HasAux(item) {
		t.Error("zone should track the item in its auxiliary set")
	}
	if item.Node().Parent != zone.Node() {
		t.Error("item node should be parented under the zone node")
	}
	if item.Node().BehindParent {
		t.Error("zone items stack in front of the zone")
	}
}

func TestZoneItemSetZoneID(t *testing.T) {
	ctx := testContext()
	ctx.Area = NewArea()
	z1 := NewZone(1, Rect{0, 0, 40, 30})
	z2 := NewZone(2, Rect{100, 0, 40, 30})
	ctx.Area.AddZone(z1)
	ctx.Area.AddZone(z2)

	item := NewZoneItem(ctx, z1, nil)

	if err := item.SetZoneID(2); err != nil {
		t.Fatalf("SetZoneID(2) error: %v", err)
	}
	if item.Zone() != z2 {
		t.Error("item should now belong to zone 2")
	}
	if z1.HasAux(item) {
		t.Error("zone 1 should have released the item")
	}
	if !z2.HasAux(item) {
		t.Error("zone 2 should have claimed the item")
	}
	if item.Node().Parent != z2.Node() {
		t.Error("item node should be reparented under zone 2")
	}
}

// A failed reassignment must leave the current association untouched.
func TestZoneItemSetZoneIDMissing(t *testing.T) {
	ctx := testContext()
	ctx.Area = NewArea()
	z1 := NewZone(1, Rect{0, 0, 40, 30})
	ctx.Area.AddZone(z1)

	item := NewZoneItem(ctx, z1, nil)

	err := item.SetZoneID(99)
	if !errors.Is(err, ErrZoneNotFound) {
		t.Fatalf("SetZoneID(99) = %v, want ErrZoneNotFound", err)
	}
	if item.Zone() != z1 {
		t.Error("failed reassignment must keep the old zone")
	}
	if !z1.HasAux(item) {
		t.Error("failed reassignment must keep the old membership")
	}
}

// When ids repeat, the last matching zone wins.
func TestZoneItemSetZoneIDDuplicate(t *testing.T) {
	ctx := testContext()
	ctx.Area = NewArea()
	first := NewZone(7, Rect{0, 0, 10, 10})
	second := NewZone(7, Rect{50, 0, 10, 10})
	ctx.Area.AddZone(first)
	ctx.Area.AddZone(second)

	item := NewZoneItem(ctx, nil, nil)
	if err := item.SetZoneID(7); err != nil {
		t.Fatalf("SetZoneID(7) error: %v", err)
	}
	if item.Zone() != second {
		t.Error("duplicate ids: the last matching zone should win")
	}
}

func TestZoneItemSetZoneIDNoArea(t *testing.T) {
	ctx := testContext()
	item := NewZoneItem(ctx, nil, nil)

	if err := item.SetZoneID(1); !errors.Is(err, ErrZoneNotFound) {
		t.Errorf("SetZoneID without an area = %v, want ErrZoneNotFound", err)
	}
}

func TestZoneItemAlignToZone(t *testing.T) {
	ctx := testContext()
	zone := NewZone(1, Rect{5, 5, 40, 30})

	item := NewZoneItem(ctx, zone, nil)
	item.Node().SetPos(99, 99)
	item.AlignToZone()

	x, y := item.Node().Pos()
	if x != 0 || y != 0 {
		t.Errorf("Pos = (%v, %v), want (0, 0)", x, y)
	}
	if got, want := item.BoundingRect(), zone.BoundingRect(); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
}

func TestZoneItemAlignWithoutZone(t *testing.T) {
	ctx := testContext()
	item := NewZoneItem(ctx, nil, nil)
	item.AlignToZone()

	if got, want := item.BoundingRect(), (Rect{0, 0, 24, 24}); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}
}

func TestLocationItemTracksDrawRect(t *testing.T) {
	ctx := testContext()
	loc := NewLocation(Rect{0, 0, 20, 10})
	item := NewLocationItem(ctx, loc, nil)

	if got, want := item.BoundingRect(), (Rect{0, 0, 30, 15}); got != want {
		t.Errorf("BoundingRect = %v, want %v", got, want)
	}

	// Bounds follow the location live, without a realignment call.
	loc.Rect.Width = 40
	if got, want := item.BoundingRect(), (Rect{0, 0, 60, 15}); got != want {
		t.Errorf("BoundingRect after resize = %v, want %v", got, want)
	}
}

func TestLocationItemRemove(t *testing.T) {
	ctx := testContext()
	loc := NewLocation(Rect{0, 0, 20, 10})
	item := NewLocationItem(ctx, loc, nil)

	item.Remove()
	if item.Node().Parent != nil {
		t.Error("Remove should detach the item from the location node")
	}
	if item.Node().IsDisposed() {
		t.Error("Remove detaches but must not dispose")
	}
}

func TestLocationItemPaintTiles(t *testing.T) {
	ctx := testContext()
	loc := NewLocation(Rect{0, 0, 20, 10})
	item := NewLocationItem(ctx, loc, nil)

	dst := ebiten.NewImage(64, 32)
	item.Paint(dst, nil) // nil image: no-op

	item.Image = ebiten.NewImage(8, 8)
	item.Paint(dst, nil)
	clip := Rect{0, 0, 16, 16}
	item.Paint(dst, &clip)
}

func TestLocateZoneContained(t *testing.T) {
	zones := []*Zone{
		NewZone(1, Rect{0, 0, 100, 100}),
		NewZone(2, Rect{50, 50, 100, 100}), // overlaps the first
	}

	// The first containing zone in order wins, even when two contain it.
	if got := LocateZone(zones, 60, 60); got != 0 {
		t.Errorf("LocateZone(60, 60) = %d, want 0", got)
	}
	if got := LocateZone(zones, 120, 120); got != 1 {
		t.Errorf("LocateZone(120, 120) = %d, want 1", got)
	}
}

func TestLocateZoneNearest(t *testing.T) {
	zones := []*Zone{
		NewZone(1, Rect{0, 0, 10, 10}),
		NewZone(2, Rect{100, 0, 10, 10}),
	}

	if got := LocateZone(zones, 30, 5); got != 0 {
		t.Errorf("LocateZone(30, 5) = %d, want 0", got)
	}
	if got := LocateZone(zones, 80, 5); got != 1 {
		t.Errorf("LocateZone(80, 5) = %d, want 1", got)
	}
}

// Equidistant points keep the earlier zone.
func TestLocateZoneTie(t *testing.T) {
	zones := []*Zone{
		NewZone(1, Rect{0, 0, 10, 10}),
		NewZone(2, Rect{30, 0, 10, 10}),
	}

	if got := LocateZone(zones, 20, 5); got != 0 {
		t.Errorf("LocateZone(20, 5) = %d, want 0", got)
	}
}

func TestLocateZoneEmpty(t *testing.T) {
	if got := LocateZone(nil, 0, 0); got != -1 {
		t.Errorf("LocateZone(nil) = %d, want -1", got)
	}
	if got := LocateZoneID(nil, 0, 0); got != -1 {
		t.Errorf("LocateZoneID(nil) = %d, want -1", got)
	}
}

func TestLocateZoneID(t *testing.T) {
	zones := []*Zone{
		NewZone(7, Rect{0, 0, 10, 10}),
		NewZone(9, Rect{100, 0, 10, 10}),
	}

	if got := LocateZoneID(zones, 5, 5); got != 7 {
		t.Errorf("LocateZoneID(5, 5) = %d, want 7", got)
	}
	if got := LocateZoneID(zones, 105, 5); got != 9 {
		t.Errorf("LocateZoneID(105, 5) = %d, want 9", got)
	}
}
