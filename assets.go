package games

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder for FileLoader
	"io/fs"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Resource is something Preload can fetch. The set is closed:
// ImageResource, SpriteSheetResource, FontResource and TaskResource.
type Resource interface {
	isResource()
}

// ImageResource is a single image by URL.
type ImageResource struct {
	URL string
}

// SpriteSheetResource is a named set of sprites cut from one image. Every
// sprite must share the image of the first (in name order); anything else
// fails the preload with ErrMixedSpriteSheet.
type SpriteSheetResource struct {
	Sprites map[string]*Sprite
}

// FontResource is a bitmap font; its atlas image is loaded.
type FontResource struct {
	Font *Font
}

// TaskResource is an arbitrary pending task joined with the image loads.
type TaskResource struct {
	Name string
	Fn   func(ctx context.Context) error
}

func (ImageResource) isResource()       {}
func (SpriteSheetResource) isResource() {}
func (FontResource) isResource()        {}
func (TaskResource) isResource()        {}

// Loader fetches and decodes the image at url.
type Loader func(ctx context.Context, url string) (image.Image, error)

// FileLoader returns a Loader reading URLs as paths in fsys.
func FileLoader(fsys fs.FS) Loader {
	return func(ctx context.Context, url string) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := fsys.Open(url)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return img, nil
	}
}

type pendingTask struct {
	name string
	fn   func(ctx context.Context) error
}

// Assets registers preload tasks and holds the loaded images.
//
// Loads run concurrently inside WaitForAll; everything else, including
// converting decoded images to surfaces, happens on the caller's goroutine.
type Assets struct {
	backend Backend
	loader  Loader
	logger  *slog.Logger

	pending []pendingTask
	queued  map[string]bool

	mu      sync.Mutex
	decoded map[string]image.Image

	surfaces map[string]Surface

	// replaced runs after a loaded image is swapped for a new one.
	replaced func(url string)
}

// NewAssets creates a registry. A nil loader fails every image load.
func NewAssets(backend Backend, loader Loader, logger *slog.Logger) *Assets {
	if logger == nil {
		logger = newNopLogger()
	}
	return &Assets{
		backend:  backend,
		loader:   loader,
		logger:   logger,
		queued:   make(map[string]bool),
		decoded:  make(map[string]image.Image),
		surfaces: make(map[string]Surface),
	}
}

// SetLoader replaces the image loader used by later WaitForAll calls.
func (a *Assets) SetLoader(l Loader) {
	a.loader = l
}

// Preload registers r to be fetched by the next WaitForAll. Images already
// loaded or queued are not fetched twice.
func (a *Assets) Preload(r Resource) {
	switch r := r.(type) {
	case ImageResource:
		a.preloadImage(r.URL)
	case SpriteSheetResource:
		url, err := sheetURL(r.Sprites)
		if err != nil {
			a.pending = append(a.pending, pendingTask{name: "sprites", fn: func(context.Context) error { return err }})
			return
		}
		a.preloadImage(url)
	case FontResource:
		if err := r.Font.Validate(); err != nil {
			a.pending = append(a.pending, pendingTask{name: "font", fn: func(context.Context) error { return err }})
			return
		}
		a.preloadImage(r.Font.URL)
	case TaskResource:
		a.pending = append(a.pending, pendingTask{name: r.Name, fn: r.Fn})
	}
}

// sheetURL returns the image URL shared by every sprite.
func sheetURL(sprites map[string]*Sprite) (string, error) {
	names := slices.Sorted(maps.Keys(sprites))
	if len(names) == 0 {
		return "", errors.New("empty sprite sheet")
	}
	url := sprites[names[0]].URL
	for _, name := range names[1:] {
		if got := sprites[name].URL; got != url {
			return "", fmt.Errorf("%w: sprite %q uses %q, sheet uses %q", ErrMixedSpriteSheet, name, got, url)
		}
	}
	return url, nil
}

func (a *Assets) preloadImage(url string) {
	if a.queued[url] || a.surfaces[url] != nil {
		return
	}
	a.queued[url] = true
	a.pending = append(a.pending, pendingTask{name: url, fn: func(ctx context.Context) error {
		if a.loader == nil {
			return errors.New("no loader configured")
		}
		img, err := a.loader(ctx, url)
		if err != nil {
			return err
		}
		a.mu.Lock()
		a.decoded[url] = img
		a.mu.Unlock()
		return nil
	}})
}

// Pending returns the number of registered tasks not yet waited on.
func (a *Assets) Pending() int {
	return len(a.pending)
}

// WaitForAll runs every registered task concurrently and waits for them.
// The first failure cancels the rest and is returned wrapped in
// ErrAssetLoad. Images that finished loading are kept either way.
func (a *Assets) WaitForAll(ctx context.Context) error {
	tasks := a.pending
	a.pending = nil

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		g.Go(func() error {
			if err := t.fn(gctx); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrAssetLoad, t.name, err)
			}
			return nil
		})
	}
	err := g.Wait()

	a.mu.Lock()
	decoded := a.decoded
	a.decoded = make(map[string]image.Image)
	a.mu.Unlock()
	for url, img := range decoded {
		a.surfaces[url] = a.backend.NewSurfaceFromImage(img)
		a.logger.Info("loaded image", "url", url)
	}
	clear(a.queued)

	if err != nil {
		a.logger.Error("preload failed", "err", err)
	}
	return err
}

// AddImage registers an already decoded image under url.
func (a *Assets) AddImage(url string, img image.Image) {
	a.AddSurface(url, a.backend.NewSurfaceFromImage(img))
}

// AddSurface registers a surface under url. Replacing an image disposes
// the old surface; a Context also drops the bitmaps it cached from it.
func (a *Assets) AddSurface(url string, s Surface) {
	old := a.surfaces[url]
	a.surfaces[url] = s
	if old == nil || old == s {
		return
	}
	old.Dispose()
	if a.replaced != nil {
		a.replaced(url)
	}
}

// Image returns the loaded surface for url.
func (a *Assets) Image(url string) (Surface, bool) {
	s, ok := a.surfaces[url]
	return s, ok
}

// Preload registers r with the context's asset registry.
func (c *Context) Preload(r Resource) {
	c.assets.Preload(r)
}

// WaitForAll joins every registered preload.
func (c *Context) WaitForAll(ctx context.Context) error {
	return c.assets.WaitForAll(ctx)
}
