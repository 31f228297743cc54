package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/1siamBot/softraster/engine/anim"
	"github.com/1siamBot/softraster/engine/config"
	"github.com/1siamBot/softraster/engine/render3d"
)

var filters = map[string]xdraw.Interpolator{
	"nearest":    xdraw.NearestNeighbor,
	"approx":     xdraw.ApproxBiLinear,
	"bilinear":   xdraw.BiLinear,
	"catmullrom": xdraw.CatmullRom,
}

// renderFrames advances the configured spins by one tick per frame and
// renders the final state.
func renderFrames(cfg config.Config, scene []*render3d.Mesh, frames int) (*render3d.Device, render3d.Stats) {
	device := render3d.NewDevice(cfg.Window.Width, cfg.Window.Height, render3d.FormatRGBA)
	r := render3d.NewRenderer(device)
	r.Projection = cfg.RenderProjection()
	cam := cfg.NewCamera()

	spins := make([]anim.Spin, 0, len(cfg.Animation.Spins))
	for _, s := range cfg.Animation.Spins {
		spins = append(spins, anim.Spin{Mesh: s.Mesh, Delta: config.Vec(s.Delta)})
	}
	loop := anim.NewLoop(cfg.Animation.TickRate, spins)
	for i := 0; i < frames; i++ {
		loop.Advance(1/cfg.Animation.TickRate, scene)
	}

	c := cfg.Clear
	device.Fill(c.R, c.G, c.B, c.A)
	return device, r.Render(cam, scene...)
}

// flatten forces every pixel opaque.
func flatten(img *image.RGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}

// scaleImage resizes src by factor with the named filter.
func scaleImage(src *image.RGBA, factor float64, filter string) (image.Image, error) {
	if factor == 1 {
		return src, nil
	}
	interp, ok := filters[filter]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q", filter)
	}
	b := src.Bounds()
	w, h := int(float64(b.Dx())*factor), int(float64(b.Dy())*factor)
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("scale %g leaves no pixels", factor)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	interp.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst, nil
}

// encoders maps output extensions to image encoders.
var encoders = map[string]func(io.Writer, image.Image) error{
	".png": png.Encode,
	".bmp": bmp.Encode,
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
	return enc, nil
}

// writeImage encodes img by the extension of path. The file is only
// created once the format is known.
func writeImage(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}
