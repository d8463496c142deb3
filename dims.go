package overlay

// Default logical cell size. Sprite geometry resets to a single 16x16 cell.
const (
	defaultCellW = 16
	defaultCellH = 16
)

// Dims is the rectangle-geometry value shared by sprite images and
// spriteboxes: an offset plus a size in logical tile units, accessible both
// as four scalar fields and as grouped tuples. Grouped setters update all
// fields together; the Reset* methods restore the canonical (0, 0, 16, 16)
// default.
type Dims struct {
	XOffset float64
	YOffset float64
	Width   float64
	Height  float64
}

// defaultDims returns the canonical default geometry.
func defaultDims() Dims {
	return Dims{0, 0, defaultCellW, defaultCellH}
}

// Offset returns the x/y offset pair.
func (d *Dims) Offset() (x, y float64) {
	return d.XOffset, d.YOffset
}

// SetOffset sets both offset fields.
func (d *Dims) SetOffset(x, y float64) {
	d.XOffset = x
	d.YOffset = y
}

// ResetOffset restores the default (0, 0) offset.
func (d *Dims) ResetOffset() {
	d.XOffset = 0
	d.YOffset = 0
}

// Size returns the width/height pair.
func (d *Dims) Size() (w, h float64) {
	return d.Width, d.Height
}

// SetSize sets both size fields.
func (d *Dims) SetSize(w, h float64) {
	d.Width = w
	d.Height = h
}

// ResetSize restores the default 16x16 size.
func (d *Dims) ResetSize() {
	d.Width = defaultCellW
	d.Height = defaultCellH
}

// Dimensions returns all four fields as one tuple.
func (d *Dims) Dimensions() (x, y, w, h float64) {
	return d.XOffset, d.YOffset, d.Width, d.Height
}

// SetDimensions sets all four fields together.
func (d *Dims) SetDimensions(x, y, w, h float64) {
	d.XOffset = x
	d.YOffset = y
	d.Width = w
	d.Height = h
}

// ResetDimensions restores the canonical (0, 0, 16, 16) geometry.
func (d *Dims) ResetDimensions() {
	*d = defaultDims()
}
