package meshio

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/1siamBot/softraster/engine/render3d"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a scene file whenever it is written or replaced and
// publishes the result on Updates. Only the newest unread scene is kept.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan []*render3d.Mesh
	log     *slog.Logger
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once

	closeErr error // set by run when it releases fsw
}

// Watch starts watching path. The watch ends when ctx is done or Close is
// called. A nil logger means slog.Default().
func Watch(ctx context.Context, path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	// editors often replace the file, so watch the directory
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		updates: make(chan []*render3d.Mesh, 1),
		log:     logger.With("scene", abs),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run(ctx)
	return w, nil
}

// Updates delivers freshly loaded scenes. It is closed after the watcher
// stops.
func (w *Watcher) Updates() <-chan []*render3d.Mesh { return w.updates }

// Close stops the watcher and waits for it to exit. It reports the error
// from releasing the underlying watch, once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.closeErr
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.updates)
	defer func() { w.closeErr = w.fsw.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			meshes, err := LoadFile(ctx, w.path)
			if err != nil {
				w.log.Warn("scene reload failed", "err", err)
				continue
			}
			w.log.Info("scene reloaded", "meshes", len(meshes))
			w.publish(meshes)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error("scene watch", "err", err)
		}
	}
}

// publish replaces any scene the reader has not picked up yet.
func (w *Watcher) publish(meshes []*render3d.Mesh) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- meshes
}
