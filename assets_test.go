package games

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// mapLoader serves images from a map and fails for anything else.
func mapLoader(images map[string]image.Image, calls *atomic.Int32) Loader {
	return func(_ context.Context, url string) (image.Image, error) {
		if calls != nil {
			calls.Add(1)
		}
		img, ok := images[url]
		if !ok {
			return nil, errors.New("not found")
		}
		return img, nil
	}
}

func TestFileLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"img/a.png":  {Data: pngBytes(t, solidImage(3, 2, rgbaRed))},
		"broken.png": {Data: []byte("not a png")},
	}
	load := FileLoader(fsys)

	img, err := load(context.Background(), "img/a.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	_, err = load(context.Background(), "missing.png")
	assert.Error(t, err)
	_, err = load(context.Background(), "broken.png")
	assert.ErrorContains(t, err, "decode")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = load(ctx, "img/a.png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitForAllLoadsImagesOnce(t *testing.T) {
	var calls atomic.Int32
	a := NewAssets(SoftBackend{}, mapLoader(map[string]image.Image{
		"a.png": solidImage(2, 2, rgbaRed),
		"f.png": solidImage(64, 32, rgbaRed),
	}, &calls), nil)

	a.Preload(ImageResource{URL: "a.png"})
	a.Preload(ImageResource{URL: "a.png"})
	a.Preload(FontResource{Font: &Font{URL: "f.png", GlyphWidth: 4, GlyphHeight: 4, LineHeight: 4}})
	assert.Equal(t, 2, a.Pending())

	require.NoError(t, a.WaitForAll(context.Background()))
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 0, a.Pending())

	s, ok := a.Image("a.png")
	require.True(t, ok)
	w, h := s.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)

	// Loaded images are not fetched again.
	a.Preload(ImageResource{URL: "a.png"})
	assert.Equal(t, 0, a.Pending())
}

func TestWaitForAllFailureKeepsResolvedImages(t *testing.T) {
	a := NewAssets(SoftBackend{}, mapLoader(map[string]image.Image{
		"good.png": solidImage(1, 1, rgbaRed),
	}, nil), nil)
	a.Preload(ImageResource{URL: "good.png"})
	a.Preload(ImageResource{URL: "bad.png"})

	err := a.WaitForAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssetLoad)
	assert.ErrorContains(t, err, "bad.png")

	_, ok := a.Image("good.png")
	assert.True(t, ok)
	_, ok = a.Image("bad.png")
	assert.False(t, ok)

	// A failed image can be retried.
	a.SetLoader(mapLoader(map[string]image.Image{"bad.png": solidImage(1, 1, rgbaRed)}, nil))
	a.Preload(ImageResource{URL: "bad.png"})
	require.NoError(t, a.WaitForAll(context.Background()))
	_, ok = a.Image("bad.png")
	assert.True(t, ok)
}

func TestPreloadMixedSpriteSheet(t *testing.T) {
	a := NewAssets(SoftBackend{}, mapLoader(nil, nil), nil)
	a.Preload(SpriteSheetResource{Sprites: map[string]*Sprite{
		"a": {URL: "one.png"},
		"b": {URL: "two.png"},
	}})
	err := a.WaitForAll(context.Background())
	assert.ErrorIs(t, err, ErrMixedSpriteSheet)
	assert.ErrorIs(t, err, ErrAssetLoad)
}

func TestPreloadSpriteSheet(t *testing.T) {
	var calls atomic.Int32
	a := NewAssets(SoftBackend{}, mapLoader(map[string]image.Image{"ui.png": solidImage(8, 8, rgbaRed)}, &calls), nil)
	a.Preload(SpriteSheetResource{Sprites: map[string]*Sprite{
		"a": {URL: "ui.png", W: 4, H: 4},
		"b": {URL: "ui.png", X: 4, W: 4, H: 4},
	}})
	require.NoError(t, a.WaitForAll(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
	_, ok := a.Image("ui.png")
	assert.True(t, ok)
}

func TestPreloadInvalidFont(t *testing.T) {
	a := NewAssets(SoftBackend{}, mapLoader(nil, nil), nil)
	a.Preload(FontResource{Font: &Font{URL: "f.png"}})
	err := a.WaitForAll(context.Background())
	assert.ErrorIs(t, err, ErrAssetLoad)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestTaskResource(t *testing.T) {
	c, _ := newTestContext(t, 8, 8)
	ran := false
	c.Preload(TaskResource{Name: "warmup", Fn: func(context.Context) error {
		ran = true
		return nil
	}})
	require.NoError(t, c.WaitForAll(context.Background()))
	assert.True(t, ran)

	boom := errors.New("boom")
	c.Preload(TaskResource{Name: "sounds", Fn: func(context.Context) error { return boom }})
	err := c.WaitForAll(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrAssetLoad)
	assert.ErrorContains(t, err, "sounds")
}

func TestNoLoader(t *testing.T) {
	c, _ := newTestContext(t, 8, 8)
	c.Preload(ImageResource{URL: "x.png"})
	assert.ErrorIs(t, c.WaitForAll(context.Background()), ErrAssetLoad)
}

func TestAddSurfaceDisposesReplaced(t *testing.T) {
	a := NewAssets(SoftBackend{}, nil, nil)
	old := &disposeSurface{SoftSurface: NewSoftSurface(1, 1)}
	a.AddSurface("x", old)
	a.AddSurface("x", old)
	assert.Equal(t, 0, old.disposed)
	a.AddSurface("x", NewSoftSurface(2, 2))
	assert.Equal(t, 1, old.disposed)
}

func TestReplacingImageDropsCachedRenders(t *testing.T) {
	c, surf := newTestContext(t, 8, 8)
	f := withTestFont(c)
	c.WriteAt("a", 0, 0)
	require.Equal(t, nrgbaWhite, surf.At(0, 0))
	require.Positive(t, c.Cache().Len())

	// Same atlas layout with no ink.
	c.Assets().AddImage(f.URL, image.NewRGBA(testAtlas(f).Bounds()))
	assert.Zero(t, c.Cache().Len())

	surf.Clear()
	c.WriteAt("a", 0, 0)
	assert.Equal(t, nrgbaTransparent, surf.At(0, 0), "rendered from the new image")
}
