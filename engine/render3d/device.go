package render3d

import (
	"image"
	"image/color"
	"math"

	"github.com/1siamBot/softraster/engine/math3d"
)

// PixelFormat is the byte order of one framebuffer pixel
type PixelFormat uint8

const (
	FormatBGRA PixelFormat = iota // bitmap surfaces
	FormatRGBA                    // image.RGBA, ebiten
)

// Presenter is the surface a finished frame is copied to.
type Presenter interface {
	Present(pix []byte, width, height, stride int) error
}

// Device owns a color framebuffer and a per-pixel depth buffer of fixed
// size. Both are indexed by x + y*width. A Device is not safe for
// concurrent use.
type Device struct {
	width, height int
	format        PixelFormat
	buffer        []byte
	depth         []float64
}

// NewDevice allocates buffers for a width x height target, cleared to
// transparent black at the far limit.
func NewDevice(width, height int, format PixelFormat) *Device {
	d := &Device{
		width:  width,
		height: height,
		format: format,
		buffer: make([]byte, width*height*4),
		depth:  make([]float64, width*height),
	}
	d.Fill(0, 0, 0, 0)
	return d
}

func (d *Device) Width() int          { return d.width }
func (d *Device) Height() int         { return d.height }
func (d *Device) Format() PixelFormat { return d.format }

// Bounds returns the pixel grid size. Device is a Clipper.
func (d *Device) Bounds() (width, height int) { return d.width, d.height }

// Pixels returns the raw framebuffer in the device's pixel format.
func (d *Device) Pixels() []byte { return d.buffer }

// Fill clears every pixel to the given color and pushes every depth entry
// to the far limit.
func (d *Device) Fill(r, g, b, a byte) {
	n := len(d.depth)
	if n == 0 {
		return
	}
	d.setPixel(0, r, g, b, a)
	// copy-doubling
	for i := 4; i < len(d.buffer); i *= 2 {
		copy(d.buffer[i:], d.buffer[:i])
	}
	d.depth[0] = math.MaxFloat64
	for i := 1; i < n; i *= 2 {
		copy(d.depth[i:], d.depth[:i])
	}
}

func (d *Device) setPixel(i int, r, g, b, a byte) {
	if d.format == FormatBGRA {
		r, b = b, r
	}
	d.buffer[i] = r
	d.buffer[i+1] = g
	d.buffer[i+2] = b
	d.buffer[i+3] = a
}

// PutPixel writes c at (x, y) unless the stored depth is already nearer
// (numerically smaller) than z. Coordinates must be in bounds.
func (d *Device) PutPixel(x, y int, z float64, c Color) {
	idx := x + y*d.width
	if d.depth[idx] < z {
		return
	}
	d.depth[idx] = z
	d.setPixel(idx*4, channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A))
}

// InBounds reports whether p lies on the pixel grid.
func (d *Device) InBounds(p math3d.Vector3) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(d.width) && p.Y < float64(d.height)
}

// DrawPoint is PutPixel with out-of-bounds points silently dropped.
func (d *Device) DrawPoint(p math3d.Vector3, c Color) {
	if d.InBounds(p) {
		d.PutPixel(int(p.X), int(p.Y), p.Z, c)
	}
}

// Project transforms p by m and maps the normalized result to pixel
// coordinates, Y growing downward. Z is passed through for depth tests.
func (d *Device) Project(p math3d.Vector3, m *math3d.Matrix) math3d.Vector3 {
	n := math3d.Transform(p, m)
	w, h := float64(d.width), float64(d.height)
	return math3d.V3(n.X*w+w/2, -n.Y*h+h/2, n.Z)
}

// DrawLine draws a depth-less Bresenham line.
func (d *Device) DrawLine(p1, p2 math3d.Vector2, c Color) {
	BresenhamLine(d, p1, p2, c)
}

// DrawLineSubdivide draws a line by recursive midpoint subdivision.
func (d *Device) DrawLineSubdivide(p1, p2 math3d.Vector3, c Color) {
	SubdivideLine(d, p1, p2, c)
}

// DrawTriangle scan-fills a screen-space triangle with depth testing.
func (d *Device) DrawTriangle(p1, p2, p3 math3d.Vector3, c Color) {
	FillTriangle(d, p1, p2, p3, c)
}

// Depth returns the stored depth at (x, y).
func (d *Device) Depth(x, y int) float64 { return d.depth[x+y*d.width] }

// ColorAt returns the stored pixel at (x, y) in RGBA order.
func (d *Device) ColorAt(x, y int) color.RGBA {
	i := (x + y*d.width) * 4
	p := d.buffer[i : i+4]
	if d.format == FormatBGRA {
		return color.RGBA{p[2], p[1], p[0], p[3]}
	}
	return color.RGBA{p[0], p[1], p[2], p[3]}
}

// Image copies the framebuffer into a new RGBA image.
func (d *Device) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	copy(img.Pix, d.buffer)
	if d.format == FormatBGRA {
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i], img.Pix[i+2] = img.Pix[i+2], img.Pix[i]
		}
	}
	return img
}

// Refresh hands the finished frame to a presentation surface.
func (d *Device) Refresh(p Presenter) error {
	return p.Present(d.buffer, d.width, d.height, d.width*4)
}
