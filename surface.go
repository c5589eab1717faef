package games

import "image"

// Surface is an opaque 2D raster target. Implementations keep their own
// save/restore stack of translation and clip so that drawing calls can be
// made in view-local coordinates.
//
// DrawImage sources are expected to come from the same Backend as the
// destination; mixing backends works but falls back to copying pixels.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// Clear resets every pixel to transparent black, ignoring clip.
	Clear()
	// DrawImage copies the src sub-rectangle sr into dst, scaling to fit.
	// A nil op draws with BlendNormal.
	DrawImage(src Surface, sr image.Rectangle, dst Rect, op *DrawOptions)
	// FillRect fills r with c.
	FillRect(r Rect, c Color)
	// StrokeRect outlines r with a one pixel line.
	StrokeRect(r Rect, c Color)
	// StrokeLine draws a one pixel line from (x0, y0) to (x1, y1).
	StrokeLine(x0, y0, x1, y1 float64, c Color)
	// Composite fills the whole surface with c using the given blend,
	// ignoring translation and clip. Composite(c, BlendSourceAtop) recolors
	// every opaque pixel while keeping its coverage.
	Composite(c Color, blend BlendMode)
	// Save pushes the current translation and clip.
	Save()
	// Restore pops the last saved translation and clip. Restoring an empty
	// stack is a no-op.
	Restore()
	// Translate moves the origin for subsequent drawing.
	Translate(x, y float64)
	// Clip intersects the clip region with r (in current coordinates).
	Clip(r Rect)
	// Pixels returns premultiplied RGBA bytes for r, row-major.
	Pixels(r image.Rectangle) []byte
	// Dispose releases the surface. It must not be used afterwards.
	Dispose()
}

// DrawOptions controls how DrawImage composites its source.
type DrawOptions struct {
	Blend BlendMode
}

// Backend allocates surfaces.
type Backend interface {
	// NewSurface returns a transparent surface of the given size.
	NewSurface(w, h int) Surface
	// NewSurfaceFromImage uploads a decoded bitmap.
	NewSurfaceFromImage(img image.Image) Surface
}

// surfaceBounds returns the full bounds of s.
func surfaceBounds(s Surface) image.Rectangle {
	w, h := s.Size()
	return image.Rect(0, 0, w, h)
}

// --- Translation and clip tracking ---

// transformTracker maintains translation and clip state for surfaces whose
// underlying raster API has no save stack of its own.
type transformTracker struct {
	tx, ty    float64
	saveStack []trackerSaveState
	clips     []Rect
}

type trackerSaveState struct {
	tx, ty    float64
	clipDepth int
}

func (t *transformTracker) Save() {
	t.saveStack = append(t.saveStack, trackerSaveState{
		tx:        t.tx,
		ty:        t.ty,
		clipDepth: len(t.clips),
	})
}

func (t *transformTracker) Restore() {
	if len(t.saveStack) == 0 {
		return
	}
	state := t.saveStack[len(t.saveStack)-1]
	t.saveStack = t.saveStack[:len(t.saveStack)-1]
	t.tx, t.ty = state.tx, state.ty
	t.clips = t.clips[:state.clipDepth]
}

func (t *transformTracker) Translate(dx, dy float64) {
	t.tx += dx
	t.ty += dy
}

func (t *transformTracker) Clip(r Rect) {
	global := r.Translate(t.tx, t.ty)
	if len(t.clips) > 0 {
		global = t.clips[len(t.clips)-1].Intersect(global)
	}
	t.clips = append(t.clips, global)
}

// currentClip returns the active clip in surface coordinates and whether
// one is set.
func (t *transformTracker) currentClip() (Rect, bool) {
	if len(t.clips) == 0 {
		return Rect{}, false
	}
	return t.clips[len(t.clips)-1], true
}

// toSurface maps a rectangle from current coordinates to surface pixels.
func (t *transformTracker) toSurface(r Rect) Rect {
	return r.Translate(t.tx, t.ty)
}

// depth returns the number of saved states.
func (t *transformTracker) depth() int {
	return len(t.saveStack)
}
