package games

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenBackend allocates GPU-backed surfaces through Ebitengine.
type EbitenBackend struct{}

// NewSurface returns a transparent EbitenSurface.
func (EbitenBackend) NewSurface(w, h int) Surface {
	return NewEbitenSurface(ebiten.NewImage(max(w, 1), max(h, 1)))
}

// NewSurfaceFromImage uploads img to the GPU.
func (EbitenBackend) NewSurfaceFromImage(img image.Image) Surface {
	if ei, ok := img.(*ebiten.Image); ok {
		return NewEbitenSurface(ei)
	}
	return NewEbitenSurface(ebiten.NewImageFromImage(img))
}

// EbitenSurface adapts an *ebiten.Image to Surface. Ebitengine has no
// transform stack, so translation and clip are tracked here and applied
// per draw call; clipping draws into a SubImage of the target.
type EbitenSurface struct {
	image *ebiten.Image
	transformTracker
}

// NewEbitenSurface wraps img. The screen image passed to Draw can be wrapped
// freshly every frame.
func NewEbitenSurface(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{image: img}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.image
}

// Size returns the image dimensions.
func (s *EbitenSurface) Size() (int, int) {
	b := s.image.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the image with transparent black.
func (s *EbitenSurface) Clear() {
	s.image.Clear()
}

// target returns the destination image restricted to the active clip.
// Sub-images keep the parent's coordinate system.
func (s *EbitenSurface) target() *ebiten.Image {
	clip, ok := s.currentClip()
	if !ok {
		return s.image
	}
	r := clip.pixelRect().Intersect(s.image.Bounds())
	if r.Empty() {
		return nil
	}
	return s.image.SubImage(r).(*ebiten.Image)
}

// DrawImage draws sr of src scaled into dst.
func (s *EbitenSurface) DrawImage(src Surface, sr image.Rectangle, dst Rect, op *DrawOptions) {
	if src == nil || sr.Empty() || dst.Width <= 0 || dst.Height <= 0 {
		return
	}
	t := s.target()
	if t == nil {
		return
	}
	srcImg := ebitenImageOf(src, sr)
	if srcImg == nil {
		return
	}
	sub := srcImg.SubImage(sr).(*ebiten.Image)

	d := s.toSurface(dst)
	var eop ebiten.DrawImageOptions
	eop.GeoM.Scale(d.Width/float64(sr.Dx()), d.Height/float64(sr.Dy()))
	eop.GeoM.Translate(d.X, d.Y)
	if op != nil {
		eop.Blend = op.Blend.EbitenBlend()
	}
	t.DrawImage(sub, &eop)
}

// ebitenImageOf returns an *ebiten.Image holding sr of src.
func ebitenImageOf(src Surface, sr image.Rectangle) *ebiten.Image {
	if es, ok := src.(*EbitenSurface); ok {
		return es.image
	}
	img := ebiten.NewImage(sr.Max.X, sr.Max.Y)
	img.SubImage(sr).(*ebiten.Image).WritePixels(src.Pixels(sr))
	return img
}

// FillRect fills r with c.
func (s *EbitenSurface) FillRect(r Rect, c Color) {
	t := s.target()
	if t == nil {
		return
	}
	d := s.toSurface(r)
	vector.DrawFilledRect(t, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), c.toRGBA(), false)
}

// StrokeRect outlines r with a one pixel border.
func (s *EbitenSurface) StrokeRect(r Rect, c Color) {
	t := s.target()
	if t == nil {
		return
	}
	// Inset by half a pixel so the stroke lands inside r like FillRect.
	d := s.toSurface(r)
	vector.StrokeRect(t, float32(d.X)+0.5, float32(d.Y)+0.5, float32(d.Width)-1, float32(d.Height)-1, 1, c.toRGBA(), false)
}

// StrokeLine draws a one pixel line.
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1 float64, c Color) {
	t := s.target()
	if t == nil {
		return
	}
	p0 := s.toSurface(Rect{X: x0, Y: y0})
	p1 := s.toSurface(Rect{X: x1, Y: y1})
	vector.StrokeLine(t, float32(p0.X)+0.5, float32(p0.Y)+0.5, float32(p1.X)+0.5, float32(p1.Y)+0.5, 1, c.toRGBA(), false)
}

// whitePixel is a 1x1 white image used as the source for solid composites.
// Single-threaded, so no sync.Once.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Composite covers the whole image with c using blend.
func (s *EbitenSurface) Composite(c Color, blend BlendMode) {
	w, h := s.Size()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	op.Blend = blend.EbitenBlend()
	s.image.DrawImage(ensureWhitePixel(), &op)
}

// Pixels reads back premultiplied RGBA bytes for r. Only valid once the
// game loop is running.
func (s *EbitenSurface) Pixels(r image.Rectangle) []byte {
	out := make([]byte, 4*r.Dx()*r.Dy())
	area := r.Intersect(s.image.Bounds())
	if area.Empty() {
		return out
	}
	if area == r {
		s.image.SubImage(r).(*ebiten.Image).ReadPixels(out)
		return out
	}
	buf := make([]byte, 4*area.Dx()*area.Dy())
	s.image.SubImage(area).(*ebiten.Image).ReadPixels(buf)
	for y := 0; y < area.Dy(); y++ {
		di := 4 * ((area.Min.Y-r.Min.Y+y)*r.Dx() + (area.Min.X - r.Min.X))
		copy(out[di:di+4*area.Dx()], buf[4*y*area.Dx():4*(y+1)*area.Dx()])
	}
	return out
}

// Dispose releases the GPU memory of the underlying image. Ebitengine
// reallocates it, cleared, if it is drawn to again.
func (s *EbitenSurface) Dispose() {
	s.image.Deallocate()
}
