package overlay

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// TilesetSlots is the number of tileset slots an area carries.
const TilesetSlots = 4

// AreaSettings holds the per-area options edited in the area dialog. The
// dialog itself lives in the host UI; the model and its value ranges live
// here.
type AreaSettings struct {
	// TimeLimit is the area timer in seconds, 0-999.
	TimeLimit int
	// StartEntrance is the entrance the area begins at, 0-255.
	StartEntrance int
	// RoomType selects the special room behavior, as an index into the
	// host's room type list.
	RoomType int

	Wrap    bool
	Credits bool
	Ambush  bool

	// Unknown engine flags and values, preserved round-trip.
	ExtraFlag1 bool
	ExtraFlag2 bool
	ExtraVal1  int
	ExtraVal2  int
}

// SetTimeLimit sets the timer, clamped to its valid range.
func (s *AreaSettings) SetTimeLimit(v int) {
	s.TimeLimit = clampInt(v, 0, 999)
}

// SetStartEntrance sets the starting entrance, clamped to its valid range.
func (s *AreaSettings) SetStartEntrance(v int) {
	s.StartEntrance = clampInt(v, 0, 255)
}

// SetExtraVal1 sets the first unknown value, clamped to its valid range.
func (s *AreaSettings) SetExtraVal1(v int) {
	s.ExtraVal1 = clampInt(v, 0, 999)
}

// SetExtraVal2 sets the second unknown value, clamped to its valid range.
func (s *AreaSettings) SetExtraVal2(v int) {
	s.ExtraVal2 = clampInt(v, 0, 999)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Area is one level area: its zones, locations, settings, and tileset slot
// assignments.
type Area struct {
	zones     []*Zone
	locations []*Location

	Settings AreaSettings

	// Tilesets holds the file name chosen for each slot; empty means none.
	Tilesets [TilesetSlots]string
}

// NewArea creates an empty area.
func NewArea() *Area {
	return &Area{}
}

// AddZone appends a zone to the area.
func (a *Area) AddZone(z *Zone) {
	a.zones = append(a.zones, z)
}

// Zones returns the area's zones in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (a *Area) Zones() []*Zone {
	return a.zones
}

// ZoneByID returns the zone with the given id, or nil if none matches.
func (a *Area) ZoneByID(id int) *Zone {
	for _, z := range a.zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// RemoveZone detaches a zone from the area. Auxiliary items still parented
// to it keep their association until reassigned.
func (a *Area) RemoveZone(z *Zone) {
	for i, candidate := range a.zones {
		if candidate == z {
			a.zones = append(a.zones[:i], a.zones[i+1:]...)
			return
		}
	}
}

// AddLocation appends a location to the area.
func (a *Area) AddLocation(l *Location) {
	a.locations = append(a.locations, l)
}

// Locations returns the area's locations in insertion order. The returned
// slice MUST NOT be mutated by the caller.
func (a *Area) Locations() []*Location {
	return a.locations
}

// --- Tileset catalog ---

// TilesetEntry names one tileset: its file name and its display name.
type TilesetEntry struct {
	File string `yaml:"file"`
	Name string `yaml:"name"`
}

// TilesetCategory groups tileset entries, possibly nested.
type TilesetCategory struct {
	Name     string            `yaml:"name"`
	Entries  []TilesetEntry    `yaml:"entries"`
	Children []TilesetCategory `yaml:"children"`
}

// TilesetCatalog is the per-slot category tree of available tilesets,
// supplied by the host's data files.
type TilesetCatalog struct {
	Slots [TilesetSlots][]TilesetCategory `yaml:"slots"`
}

// LoadTilesetCatalog reads a catalog from a YAML file.
func LoadTilesetCatalog(path string) (*TilesetCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading tileset catalog from %s: %w", path, err)
	}
	var catalog TilesetCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing tileset catalog %s: %w", path, err)
	}
	return &catalog, nil
}

// FlattenSlot collapses a slot's category tree into a flat list of entries
// sorted by display name, for completion and browsing widgets.
func (c *TilesetCatalog) FlattenSlot(slot int) []TilesetEntry {
	if slot < 0 || slot >= TilesetSlots {
		return nil
	}
	var out []TilesetEntry
	out = flattenCategories(c.Slots[slot], out)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func flattenCategories(categories []TilesetCategory, out []TilesetEntry) []TilesetEntry {
	for _, cat := range categories {
		out = append(out, cat.Entries...)
		out = flattenCategories(cat.Children, out)
	}
	return out
}

// FileNames returns the flattened slot's file names, preserving the sorted
// entry order.
func (c *TilesetCatalog) FileNames(slot int) []string {
	entries := c.FlattenSlot(slot)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.File
	}
	return names
}
