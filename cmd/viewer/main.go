package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/1siamBot/softraster/engine/anim"
	"github.com/1siamBot/softraster/engine/config"
	"github.com/1siamBot/softraster/engine/control"
	"github.com/1siamBot/softraster/engine/input"
	"github.com/1siamBot/softraster/engine/meshio"
	"github.com/1siamBot/softraster/engine/render3d"
)

// framePresenter copies the finished framebuffer into an ebiten image.
// Ebiten wants premultiplied alpha, so the frame is shown opaque.
type framePresenter struct {
	img     *ebiten.Image
	scratch []byte
}

func (p *framePresenter) Present(pix []byte, width, height, stride int) error {
	if len(p.scratch) != len(pix) {
		p.scratch = make([]byte, len(pix))
	}
	copy(p.scratch, pix)
	for i := 3; i < len(p.scratch); i += 4 {
		p.scratch[i] = 0xff
	}
	p.img.WritePixels(p.scratch)
	return nil
}

// Viewer implements ebiten.Game
type Viewer struct {
	cfg       config.Config
	log       *slog.Logger
	device    *render3d.Device
	renderer  *render3d.Renderer
	camera    *render3d.Camera
	control   *control.Controller
	loop      *anim.Loop
	input     *input.State
	presenter *framePresenter
	watcher   *meshio.Watcher

	grid       []*render3d.Mesh
	primitives []*render3d.Mesh
	scene      []*render3d.Mesh
	stats      render3d.Stats
}

func NewViewer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Viewer, error) {
	w, h := cfg.Window.Width, cfg.Window.Height
	device := render3d.NewDevice(w, h, render3d.FormatRGBA)
	renderer := render3d.NewRenderer(device)
	renderer.Projection = cfg.RenderProjection()
	camera := cfg.NewCamera()

	spins := make([]anim.Spin, 0, len(cfg.Animation.Spins))
	for _, s := range cfg.Animation.Spins {
		spins = append(spins, anim.Spin{Mesh: s.Mesh, Delta: config.Vec(s.Delta)})
	}

	v := &Viewer{
		cfg:       cfg,
		log:       logger,
		device:    device,
		renderer:  renderer,
		camera:    camera,
		control:   control.NewController(camera, cfg.Camera.MoveSpeed, w, h, cfg.Camera.EdgeMargin),
		loop:      anim.NewLoop(cfg.Animation.TickRate, spins),
		input:     input.NewState(),
		presenter: &framePresenter{img: ebiten.NewImage(w, h)},
	}
	if cfg.Animation.Paused {
		v.loop.Pause()
	}

	if cfg.Scene.CubeGrid {
		v.grid = render3d.NewCubeGrid()
	}
	prims, err := cfg.Scene.PrimitiveMeshes()
	if err != nil {
		return nil, err
	}
	v.primitives = prims
	scene, err := meshio.LoadScene(ctx, cfg.Scene.File, false)
	if err != nil {
		return nil, err
	}
	v.setScene(scene)
	logger.Info("scene ready", "meshes", len(v.scene), "file", cfg.Scene.File)

	if cfg.Scene.File != "" && cfg.Scene.Watch {
		v.watcher, err = meshio.Watch(ctx, cfg.Scene.File, logger)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// setScene orders the cube grid, then the file's meshes, then the
// configured primitives, so spin indices into the grid and the file stay
// stable across reloads.
func (v *Viewer) setScene(loaded []*render3d.Mesh) {
	scene := make([]*render3d.Mesh, 0, len(v.grid)+len(loaded)+len(v.primitives))
	scene = append(scene, v.grid...)
	scene = append(scene, loaded...)
	v.scene = append(scene, v.primitives...)
}

func (v *Viewer) Update() error {
	if v.watcher != nil {
		select {
		case loaded, ok := <-v.watcher.Updates():
			if ok {
				v.setScene(loaded)
			}
		default:
		}
	}

	v.control.Apply(v.input.Poll())

	if v.input.Toggled(ebiten.KeyF) {
		v.renderer.Wireframe = !v.renderer.Wireframe
	}
	if v.input.Toggled(ebiten.KeyP) {
		v.loop.Toggle()
	}

	v.loop.Update(v.scene)
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	c := v.cfg.Clear
	v.device.Fill(c.R, c.G, c.B, c.A)
	v.stats = v.renderer.Render(v.camera, v.scene...)
	if err := v.device.Refresh(v.presenter); err != nil {
		v.log.Error("present", "err", err)
	}

	screen.Fill(color.Black)
	screen.DrawImage(v.presenter.img, nil)
	v.drawHUD(screen)
}

func (v *Viewer) drawHUD(screen *ebiten.Image) {
	info := fmt.Sprintf(
		"FPS: %.2f | Tick: %d (%s)\n"+
			"Meshes: %d drawn, %d skipped | Faces: %d drawn, %d culled\n"+
			"Eye %v -> %v\n"+
			"[WASD] Move [RMB/Click] Look [Esc] Release [F] Wireframe [P] Pause",
		ebiten.ActualFPS(),
		v.loop.Ticks(), v.loop.State,
		v.stats.MeshesDrawn, v.stats.MeshesSkipped,
		v.stats.FacesDrawn, v.stats.FacesCulled,
		v.camera.Position, v.camera.Target,
	)
	ebitenutil.DebugPrint(screen, info)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Window.Width, v.cfg.Window.Height
}

func (v *Viewer) Close() error {
	if v.watcher == nil {
		return nil
	}
	return v.watcher.Close()
}

func main() {
	configPath := flag.String("config", "", "settings file (.toml, .yaml)")
	scenePath := flag.String("scene", "", "Babylon scene file, overrides the config")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("config", "err", err)
			os.Exit(1)
		}
	}
	if *scenePath != "" {
		cfg.Scene.File = *scenePath
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewer, err := NewViewer(ctx, cfg, logger)
	if err != nil {
		logger.Error("start viewer", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)

	runErr := ebiten.RunGame(viewer)
	if err := viewer.Close(); err != nil {
		logger.Warn("close watcher", "err", err)
	}
	if runErr != nil {
		logger.Error("run", "err", runErr)
		os.Exit(1)
	}
}
