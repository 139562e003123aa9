package thicklines

import (
	"image"
	"image/color"
	"math"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, non-premultiplied
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// AlphaAt returns the raw alpha byte at a pixel, 0 for out-of-bounds.
func (p *Pixmap) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[(y*p.width+x)*4+3]
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// BlendPixel blends a color into a single pixel. coverage scales the source
// alpha and is expected in [0, 1]; out-of-bounds writes are ignored.
func (p *Pixmap) BlendPixel(x, y int, c RGBA, coverage float64, mode BlendMode) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height || coverage <= 0 {
		return
	}
	srcA := uint8(clamp255(c.A * coverage * 255))
	srcR := uint8(clamp255(c.R * 255))
	srcG := uint8(clamp255(c.G * 255))
	srcB := uint8(clamp255(c.B * 255))

	i := (y*p.width + x) * 4
	r, g, b, a := blend(srcR, srcG, srcB, srcA,
		p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3], mode)
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// FillCircle stamps a filled circle of the given radius centered at (cx, cy),
// blending with the chosen mode. Edge pixels get partial coverage for a soft
// one-pixel rim.
func (p *Pixmap) FillCircle(cx, cy, radius float64, c RGBA, mode BlendMode) {
	if radius <= 0 {
		return
	}
	minX := int(math.Floor(cx - radius - 1))
	maxX := int(math.Ceil(cx + radius + 1))
	minY := int(math.Floor(cy - radius - 1))
	maxY := int(math.Ceil(cy + radius + 1))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx + dy*dy)
			coverage := radius + 0.5 - dist
			if coverage <= 0 {
				continue
			}
			if coverage > 1 {
				coverage = 1
			}
			p.BlendPixel(x, y, c, coverage, mode)
		}
	}
}

// StampLine stamps circles of diameter width along the segment from a to b,
// spaced closely enough that the trail reads as a solid stroke.
func (p *Pixmap) StampLine(a, b Point, width float64, c RGBA, mode BlendMode) {
	radius := width / 2
	if radius <= 0 {
		return
	}
	dist := a.Distance(b)
	step := radius / 2
	if step < 0.5 {
		step = 0.5
	}
	n := int(math.Ceil(dist / step))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		q := a.Lerp(b, float64(i)/float64(n))
		p.FillCircle(q.X, q.Y, radius, c, mode)
	}
}

// StampQuad stamps circles along the quadratic curve with endpoints a and b
// and control point ctrl, interpolating width from w0 at a to w1 at b.
func (p *Pixmap) StampQuad(a, ctrl, b Point, w0, w1 float64, c RGBA, mode BlendMode) {
	// Chord length bounds the flattening density; the control polygon
	// overestimates arc length, which only makes the trail denser.
	approxLen := a.Distance(ctrl) + ctrl.Distance(b)
	step := math.Min(w0, w1) / 4
	if step < 0.5 {
		step = 0.5
	}
	n := int(math.Ceil(approxLen / step))
	if n < 2 {
		n = 2
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		q := quadPoint(a, ctrl, b, t)
		w := w0 + (w1-w0)*t
		p.FillCircle(q.X, q.Y, w/2, c, mode)
	}
}

// quadPoint evaluates the quadratic Bezier at parameter t.
func quadPoint(a, ctrl, b Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*a.X + 2*u*t*ctrl.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*ctrl.Y + t*t*b.Y,
	}
}

// DrawPixmap draws src onto p at the origin with the given opacity and blend
// mode. Source pixels outside the destination are clipped.
func (p *Pixmap) DrawPixmap(src *Pixmap, opacity float64, mode BlendMode) {
	opacity = math.Max(0, math.Min(1, opacity))
	w := src.width
	if w > p.width {
		w = p.width
	}
	h := src.height
	if h > p.height {
		h = p.height
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := (y*src.width + x) * 4
			srcA := src.data[si+3]
			if opacity < 1 {
				srcA = uint8(float64(srcA) * opacity)
			}
			if srcA == 0 && mode != BlendDestinationOut {
				continue
			}
			di := (y*p.width + x) * 4
			r, g, b, a := blend(src.data[si+0], src.data[si+1], src.data[si+2], srcA,
				p.data[di+0], p.data[di+1], p.data[di+2], p.data[di+3], mode)
			p.data[di+0] = r
			p.data[di+1] = g
			p.data[di+2] = b
			p.data[di+3] = a
		}
	}
}

// ResizePreserve returns a new pixmap of the given dimensions with this
// pixmap's content copied at the origin, unscaled. Content outside the new
// bounds is dropped; new area is transparent.
func (p *Pixmap) ResizePreserve(width, height int) *Pixmap {
	out := NewPixmap(width, height)
	w := p.width
	if w > width {
		w = width
	}
	h := p.height
	if h > height {
		h = height
	}
	for y := 0; y < h; y++ {
		copy(out.data[y*width*4:y*width*4+w*4], p.data[y*p.width*4:y*p.width*4+w*4])
	}
	return out
}

// Blit copies src's pixels 1:1 at the origin, overwriting destination bytes
// without blending. Used for exact snapshot restoration.
func (p *Pixmap) Blit(src *Pixmap) {
	w := src.width
	if w > p.width {
		w = p.width
	}
	h := src.height
	if h > p.height {
		h = p.height
	}
	for y := 0; y < h; y++ {
		copy(p.data[y*p.width*4:y*p.width*4+w*4], src.data[y*src.width*4:y*src.width*4+w*4])
	}
}

// Rect is an integer pixel rectangle with top-left (X, Y).
type Rect struct {
	X, Y, W, H int
}

// ExtractRect copies the pixels of r into a new pixmap. Out-of-bounds parts
// of r read as transparent.
func (p *Pixmap) ExtractRect(r Rect) *Pixmap {
	out := NewPixmap(r.W, r.H)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			out.SetPixel(x, y, p.GetPixel(r.X+x, r.Y+y))
		}
	}
	return out
}

// ClearRect sets the pixels of r to transparent.
func (p *Pixmap) ClearRect(r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetPixel(x, y, Transparent)
		}
	}
}

// PasteAt draws src at (x, y) with source-over blending.
func (p *Pixmap) PasteAt(src *Pixmap, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			c := src.GetPixel(sx, sy)
			if c.A == 0 {
				continue
			}
			p.BlendPixel(x+sx, y+sy, c, 1, BlendNormal)
		}
	}
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if n, ok := img.(*image.NRGBA); ok && n.Stride == width*4 {
		copy(pm.data, n.Pix)
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
