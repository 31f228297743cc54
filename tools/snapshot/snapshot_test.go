package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/1siamBot/softraster/engine/config"
	"github.com/1siamBot/softraster/engine/render3d"
)

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, run("", "", out, 1, 0, "nearest", true))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 720, 480), img.Bounds())
	r, g, b, a := img.At(355, 245).RGBA()
	assert.NotZero(t, r+g+b)
	assert.Equal(t, uint32(0xffff), a)
	r, g, b, _ = img.At(2, 2).RGBA()
	assert.Zero(t, r+g+b)
}

func TestRunWritesScaledBMP(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.bmp")
	require.NoError(t, run("", "", out, 0.5, 3, "bilinear", true))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	img, err := bmp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 360, 240), img.Bounds())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorContains(t, run("", "", filepath.Join(dir, "f.gif"), 1, 0, "nearest", true), "unsupported output format")
	_, err := os.Stat(filepath.Join(dir, "f.gif"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = encoderFor("frame.JPG")
	assert.Error(t, err)
	assert.ErrorContains(t, run("", "", filepath.Join(dir, "f.png"), 2, 0, "lanczos", true), "unknown filter")
	assert.Error(t, run(filepath.Join(dir, "missing.toml"), "", filepath.Join(dir, "f.png"), 1, 0, "nearest", true))
	assert.Error(t, run("", filepath.Join(dir, "missing.babylon"), filepath.Join(dir, "f.png"), 1, 0, "nearest", true))
}

func TestRunRendersPrimitives(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "shapes.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[scene]
cube_grid = false

[[scene.primitives]]
kind = "box"
size = [4.0, 4.0, 4.0]
position = [0.0, 0.0, 10.0]
`), 0o644))

	out := filepath.Join(dir, "box.png")
	require.NoError(t, run(cfgPath, "", out, 1, 0, "nearest", true))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(350, 235).RGBA()
	assert.NotZero(t, r+g+b)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[scene.primitives]]\nkind = \"torus\"\n"), 0o644))
	assert.ErrorIs(t, run(bad, "", out, 1, 0, "nearest", true), config.ErrInvalid)
}

func TestRenderFramesSpins(t *testing.T) {
	cfg := config.Default()
	scene := render3d.NewCubeGrid()
	_, stats := renderFrames(cfg, scene, 4)

	assert.Equal(t, 4, stats.MeshesDrawn)
	assert.InDelta(t, 0.1, scene[0].Rotation.X, 1e-9)
	assert.InDelta(t, 0.1, scene[0].Rotation.Y, 1e-9)
	assert.Zero(t, scene[1].Rotation.Y)
}

func TestScaleImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	same, err := scaleImage(src, 1, "bogus")
	require.NoError(t, err)
	assert.Same(t, src, same)

	up, err := scaleImage(src, 3, "catmullrom")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 6), up.Bounds())

	_, err = scaleImage(src, 0.1, "nearest")
	assert.Error(t, err)
}
