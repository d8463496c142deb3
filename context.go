package overlay

import (
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// outlinePenWidth is the stroke width of the shared outline pen.
const outlinePenWidth = 4

// tileTableSize is the number of regular slots in the tile table.
const tileTableSize = 256

// UnknownTileIndex is the tile table slot reserved for the "unknown tile"
// override, returned whenever a requested slot has no loaded tile.
const UnknownTileIndex = 4*0x200 + 64

// Tile is one renderable entry in the tile table.
type Tile struct {
	Main *ebiten.Image
}

// Context carries the process-wide state shared by every sprite image and
// auxiliary item: outline styling, the image cache, the tile table, sprite
// folder registrations, the real-view flag, and the current area. All access
// happens on the UI thread, so no locking is used.
type Context struct {
	outlineColor color.RGBA

	// Pen and Brush are the shared outline stroke and fill read by every
	// auxiliary item's paint.
	Pen   Pen
	Brush Brush

	// BaseFolder is the built-in sprite image folder, searched after all
	// override folders.
	BaseFolder string

	folders  []string
	images   map[string]*ebiten.Image
	tiles    map[int]*Tile
	realView bool

	// Area is the level area currently loaded in the editor. Zone items
	// resolve zone ids against it.
	Area *Area
}

// NewContext creates a context with the given outline color and resets it to
// its initial state.
func NewContext(outline color.RGBA) *Context {
	c := &Context{
		outlineColor: outline,
		BaseFolder:   filepath.Join("data", "sprites"),
	}
	c.Reset()
	return c
}

// NewContextFromConfig creates a context configured from editor settings.
func NewContextFromConfig(cfg *Config) *Context {
	oc := cfg.Display.OutlineColor
	c := NewContext(color.RGBA{R: oc[0], G: oc[1], B: oc[2], A: oc[3]})
	c.BaseFolder = cfg.Sprites.BaseFolder
	for _, folder := range cfg.Sprites.OverrideFolders {
		c.AddSpritesFolder(folder)
	}
	c.SetRealView(cfg.Display.RealView)
	return c
}

// Reset clears the image cache, the tile table, and the override folder
// registrations back to their initial state, and rebuilds the outline pen and
// brush from the current outline color. Used when switching editor contexts.
func (c *Context) Reset() {
	c.Pen = Pen{Color: c.outlineColor, Width: outlinePenWidth}
	c.Brush = Brush{Color: c.outlineColor}

	// Seed the regular slots empty so lookups distinguish "known but
	// unloaded" from ids outside the table.
	c.tiles = make(map[int]*Tile, tileTableSize)
	for i := 0; i < tileTableSize; i++ {
		c.tiles[i] = nil
	}

	c.images = make(map[string]*ebiten.Image)
	c.folders = nil
}

// SetOutlineColor replaces the outline color and rebuilds the pen and brush.
func (c *Context) SetOutlineColor(outline color.RGBA) {
	c.outlineColor = outline
	c.Pen = Pen{Color: outline, Width: outlinePenWidth}
	c.Brush = Brush{Color: outline}
}

// OutlineColor returns the current outline color.
func (c *Context) OutlineColor() color.RGBA {
	return c.outlineColor
}

// SetRealView toggles the realistic-preview display mode read by
// AuxImageFollowsRect.
func (c *Context) SetRealView(enabled bool) {
	c.realView = enabled
}

// RealView reports whether the realistic-preview display mode is active.
func (c *Context) RealView() bool {
	return c.realView
}
