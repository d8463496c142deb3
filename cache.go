package overlay

import (
	"fmt"
	"image"
	_ "image/png" // sprite images are PNG files
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// AddSpritesFolder registers an override folder for sprite image lookups.
// Folders added later take priority over earlier ones.
func (c *Context) AddSpritesFolder(folder string) {
	c.folders = append(c.folders, folder)
}

// SpritesFolders returns the registered override folders in registration
// order. The returned slice MUST NOT be mutated by the caller.
func (c *Context) SpritesFolders() []string {
	return c.folders
}

// Image returns the image for the given file name, searching the override
// folders most-recently-added first and falling back to the base folder.
// A missing image is logged and returns nil; callers omit the element.
func (c *Context) Image(name string) *ebiten.Image {
	path := filepath.Join(c.BaseFolder, name)

	// Find the most recent override copy.
	for i := len(c.folders) - 1; i >= 0; i-- {
		tryPath := filepath.Join(c.folders[i], name)
		if isFile(tryPath) {
			path = tryPath
			break
		}
	}

	img, err := loadImageFile(path)
	if err != nil {
		Log.Warn("could not load sprite image",
			zap.String("name", name),
			zap.Error(err))
		return nil
	}
	return img
}

// LoadIfAbsent populates the cache entry for name from filename only if it is
// not already present. Idempotent: a second call with the same name leaves
// the existing entry untouched, even if the load failed.
func (c *Context) LoadIfAbsent(name, filename string) {
	if _, ok := c.images[name]; ok {
		return
	}
	c.images[name] = c.Image(filename)
}

// CachedImage returns the cache entry for name, or nil if absent or if the
// load failed.
func (c *Context) CachedImage(name string) *ebiten.Image {
	return c.images[name]
}

// SetTile stores a tile in the table at the given slot.
func (c *Context) SetTile(id int, tile *Tile) {
	c.tiles[id] = tile
}

// Tile returns the image for the tile at the given slot, or the unknown-tile
// override's image if the slot is empty. Returns nil only when the override
// itself has not been loaded.
func (c *Context) Tile(id int) *ebiten.Image {
	tile := c.tiles[id]
	if tile == nil {
		tile = c.tiles[UnknownTileIndex]
	}
	if tile == nil {
		return nil
	}
	return tile.Main
}

// isFile reports whether path exists and is a regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// loadImageFile decodes the image at path into an ebiten image.
func loadImageFile(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
