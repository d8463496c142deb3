package overlay

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrZoneNotFound is returned by SetZoneID when the area has no zone with
// the requested id.
var ErrZoneNotFound = errors.New("overlay: no zone with this id exists")

// Zone is a rectangular region of the level with its own identity, tracked
// independently of sprites. Zones own a set of auxiliary items.
type Zone struct {
	// ID is the zone's stable identifier within its area.
	ID int

	// Rect is the zone's bounds in logical units.
	Rect Rect

	node *Node
	aux  map[AuxiliaryItem]struct{}
}

// NewZone creates a zone with the given id and bounds.
func NewZone(id int, r Rect) *Zone {
	z := &Zone{
		ID:   id,
		Rect: r,
		aux:  make(map[AuxiliaryItem]struct{}),
	}
	z.node = NewNode(fmt.Sprintf("zone-%d", id))
	z.node.Owner = z
	z.node.SetPos(r.X, r.Y)
	return z
}

// Node returns the zone's scene node.
func (z *Zone) Node() *Node {
	return z.node
}

// BoundingRect returns the zone's bounds at the local origin, in paint
// units.
func (z *Zone) BoundingRect() Rect {
	return Rect{0, 0, z.Rect.Width * refScale, z.Rect.Height * refScale}
}

// addAux and removeAux maintain the zone's auxiliary set. Reparenting goes
// through ZoneItem.SetZoneID so the set and the node tree stay in step.
func (z *Zone) addAux(item AuxiliaryItem) {
	z.aux[item] = struct{}{}
}

func (z *Zone) removeAux(item AuxiliaryItem) {
	delete(z.aux, item)
}

// HasAux reports whether item belongs to this zone.
func (z *Zone) HasAux(item AuxiliaryItem) bool {
	_, ok := z.aux[item]
	return ok
}

// NumAux returns the number of auxiliary items owned by this zone.
func (z *Zone) NumAux() int {
	return len(z.aux)
}

// Location is a rectangular region of the level without an identity of its
// own; location items fill it with a tiled image.
type Location struct {
	// Rect is the location's bounds in logical units.
	Rect Rect

	node *Node
}

// NewLocation creates a location with the given bounds.
func NewLocation(r Rect) *Location {
	l := &Location{Rect: r}
	l.node = NewNode("location")
	l.node.Owner = l
	l.node.SetPos(r.X, r.Y)
	return l
}

// Node returns the location's scene node.
func (l *Location) Node() *Node {
	return l.node
}

// DrawRect returns the location's bounds at the local origin, in paint
// units.
func (l *Location) DrawRect() Rect {
	return Rect{0, 0, l.Rect.Width * refScale, l.Rect.Height * refScale}
}

// --- Zone item ---

// ZoneItem is an auxiliary item whose owning parent is a zone rather than a
// sprite. It stacks in front of the zone by default.
type ZoneItem struct {
	auxItem

	zone *Zone

	// ImageObj is the sprite image this item decorates on the zone's
	// behalf.
	ImageObj *SpriteImage
}

// NewZoneItem creates a zone item parented to the given zone.
func NewZoneItem(ctx *Context, zone *Zone, imageObj *SpriteImage) *ZoneItem {
	var parent *Node
	if zone != nil {
		parent = zone.Node()
	}
	item := &ZoneItem{
		auxItem:  newAuxItem(ctx, parent, "zone-item", false),
		zone:     zone,
		ImageObj: imageObj,
	}
	item.node.Owner = item
	if zone != nil {
		zone.addAux(item)
	}
	return item
}

// Zone returns the item's owning zone.
func (z *ZoneItem) Zone() *Zone {
	return z.zone
}

// SetZoneID reparents this item to the zone with the given id in the current
// area. The removal from the old zone and the addition to the new one happen
// together; on failure the current parent association is left untouched.
func (z *ZoneItem) SetZoneID(id int) error {
	area := z.ctx.Area
	if area == nil {
		return ErrZoneNotFound
	}

	var target *Zone
	for _, candidate := range area.Zones() {
		if candidate.ID == id {
			target = candidate
		}
	}
	if target == nil {
		return fmt.Errorf("%w (id %d)", ErrZoneNotFound, id)
	}

	if z.zone != nil {
		z.zone.removeAux(z)
	}
	target.Node().AddChild(z.node)
	z.zone = target
	target.addAux(z)
	return nil
}

// AlignToZone resets the item's position to the origin and its bounds to the
// parent zone's bounding rect, or a 24x24 default when parentless.
func (z *ZoneItem) AlignToZone() {
	z.node.SetPos(0, 0)
	if z.zone != nil {
		z.bounds = z.zone.BoundingRect()
	} else {
		z.bounds = Rect{0, 0, 24, 24}
	}
}

// ZoneRepositioned is called when the zone is repositioned or resized.
// Concrete zone decorations override this to retrack the zone.
func (z *ZoneItem) ZoneRepositioned() {}

// Paint is an extension point; the base zone item draws nothing.
func (z *ZoneItem) Paint(dst *ebiten.Image, clip *Rect) {}

// --- Location item ---

// LocationItem is an auxiliary item whose owning parent is a location. Its
// bounds always track the location's draw rect.
type LocationItem struct {
	auxItem

	location *Location

	// ImageObj is the sprite image this item decorates on the location's
	// behalf.
	ImageObj *SpriteImage

	// Image is tiled across the location's rect.
	Image *ebiten.Image
}

// NewLocationItem creates a location item parented to the given location.
func NewLocationItem(ctx *Context, location *Location, imageObj *SpriteImage) *LocationItem {
	var parent *Node
	if location != nil {
		parent = location.Node()
	}
	item := &LocationItem{
		auxItem:  newAuxItem(ctx, parent, "location-item", false),
		location: location,
		ImageObj: imageObj,
	}
	item.node.Owner = item
	return item
}

// Location returns the item's owning location.
func (l *LocationItem) Location() *Location {
	return l.location
}

// BoundingRect returns the parent location's draw rect; the item always
// covers its location exactly.
func (l *LocationItem) BoundingRect() Rect {
	if l.location == nil {
		return l.bounds
	}
	return l.location.DrawRect()
}

// AlignToLocation resets the item's position to the origin and its recorded
// size to the location's.
func (l *LocationItem) AlignToLocation() {
	l.node.SetPos(0, 0)
	if l.location != nil {
		l.bounds = l.location.DrawRect()
	}
}

// Paint tiles the image across the location's full bounding rect rather
// than stretching it.
func (l *LocationItem) Paint(dst *ebiten.Image, clip *Rect) {
	if l.Image == nil {
		return
	}

	bounds := l.BoundingRect()
	region := bounds
	if clip != nil {
		region = *clip
	}
	target := clipTo(dst, &region)

	iw := float64(l.Image.Bounds().Dx())
	ih := float64(l.Image.Bounds().Dy())
	if iw <= 0 || ih <= 0 {
		return
	}

	for y := bounds.Y; y < bounds.Y+bounds.Height; y += ih {
		for x := bounds.X; x < bounds.X+bounds.Width; x += iw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			target.DrawImage(l.Image, op)
		}
	}
}

// Remove detaches the item from the scene graph so the sole remaining owner
// is the sprite image it belongs to, giving deterministic cleanup.
func (l *LocationItem) Remove() {
	l.node.RemoveFromParent()
}

// --- Nearest-zone lookup ---

// LocateZone returns the index of the zone containing the point (x, y), or
// failing that the index of the nearest zone by squared distance from the
// point to the zone rectangle's closest edge. The first containing zone in
// iteration order wins; distance ties keep the first zone encountered.
// Returns -1 only when zones is empty.
func LocateZone(zones []*Zone, x, y float64) int {
	minimumDist := -1.0
	matchIndex := -1

	for i, zone := range zones {
		rect := zone.Rect
		if rect.Contains(x, y) {
			matchIndex = i
			break
		}

		dist := 0.0
		l, t := rect.X, rect.Y
		r, b := rect.X+rect.Width, rect.Y+rect.Height

		if x < l {
			dist += (l - x) * (l - x)
		} else if x > r {
			dist += (x - r) * (x - r)
		}

		if y < t {
			dist += (t - y) * (t - y)
		} else if y > b {
			dist += (y - b) * (y - b)
		}

		if dist < minimumDist || minimumDist == -1 {
			minimumDist = dist
			matchIndex = i
		}
	}

	return matchIndex
}

// LocateZoneID is LocateZone but returns the matched zone's stable id
// instead of its index. Returns -1 when zones is empty.
func LocateZoneID(zones []*Zone, x, y float64) int {
	index := LocateZone(zones, x, y)
	if index == -1 {
		return -1
	}
	return zones[index].ID
}
