package games

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// SoftBackend allocates SoftSurfaces. It needs no GPU or window, which makes
// it the backend of choice for tests and headless rendering.
type SoftBackend struct{}

// NewSurface returns a transparent SoftSurface.
func (SoftBackend) NewSurface(w, h int) Surface {
	return NewSoftSurface(w, h)
}

// NewSurfaceFromImage copies img into a new SoftSurface.
func (SoftBackend) NewSurfaceFromImage(img image.Image) Surface {
	b := img.Bounds()
	s := NewSoftSurface(b.Dx(), b.Dy())
	xdraw.Draw(s.img, s.img.Bounds(), img, b.Min, xdraw.Src)
	return s
}

// SoftSurface is a Surface backed by an *image.RGBA. Scaled blits use
// nearest-neighbour sampling so pixel art stays crisp.
type SoftSurface struct {
	img *image.RGBA
	transformTracker
}

// NewSoftSurface creates a transparent w×h surface.
func NewSoftSurface(w, h int) *SoftSurface {
	return &SoftSurface{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// Image returns the underlying image. Pixels are premultiplied.
func (s *SoftSurface) Image() *image.RGBA {
	return s.img
}

// Size returns the surface dimensions.
func (s *SoftSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear resets every pixel to transparent black.
func (s *SoftSurface) Clear() {
	clear(s.img.Pix)
}

// target returns the image region drawing may touch under the current clip.
func (s *SoftSurface) target() *image.RGBA {
	clip, ok := s.currentClip()
	if !ok {
		return s.img
	}
	return s.img.SubImage(clip.pixelRect()).(*image.RGBA)
}

// DrawImage copies sr of src into dst.
func (s *SoftSurface) DrawImage(src Surface, sr image.Rectangle, dst Rect, op *DrawOptions) {
	if src == nil || sr.Empty() {
		return
	}
	dr := s.toSurface(dst).pixelRect()
	if dr.Empty() {
		return
	}
	blend := BlendNormal
	if op != nil {
		blend = op.Blend
	}

	srcImg := softImageOf(src, sr)
	t := s.target()
	switch blend {
	case BlendCopy:
		xdraw.NearestNeighbor.Scale(t, dr, srcImg, sr, xdraw.Src, nil)
	case BlendNormal:
		xdraw.NearestNeighbor.Scale(t, dr, srcImg, sr, xdraw.Over, nil)
	default:
		// Scale into a scratch image, then composite pixel by pixel.
		scratch := image.NewRGBA(dr)
		xdraw.NearestNeighbor.Scale(scratch, dr, srcImg, sr, xdraw.Src, nil)
		area := dr.Intersect(t.Bounds())
		for y := area.Min.Y; y < area.Max.Y; y++ {
			for x := area.Min.X; x < area.Max.X; x++ {
				si := scratch.PixOffset(x, y)
				di := t.PixOffset(x, y)
				blendPixel(t.Pix[di:di+4], scratch.Pix[si:si+4], blend)
			}
		}
	}
}

// softImageOf returns an image.Image holding at least sr of src.
func softImageOf(src Surface, sr image.Rectangle) image.Image {
	if ss, ok := src.(*SoftSurface); ok {
		return ss.img
	}
	img := image.NewRGBA(sr)
	copy(img.Pix, src.Pixels(sr))
	return img
}

// FillRect fills r with c.
func (s *SoftSurface) FillRect(r Rect, c Color) {
	dr := s.toSurface(r).pixelRect()
	if dr.Empty() || c.A <= 0 {
		return
	}
	xdraw.Draw(s.target(), dr, image.NewUniform(c.toRGBA()), image.Point{}, xdraw.Over)
}

// StrokeRect outlines r with a one pixel border drawn inside r.
func (s *SoftSurface) StrokeRect(r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	s.FillRect(Rect{r.X, r.Y, r.Width, 1}, c)
	if r.Height > 1 {
		s.FillRect(Rect{r.X, r.Y + r.Height - 1, r.Width, 1}, c)
	}
	if r.Height > 2 {
		s.FillRect(Rect{r.X, r.Y + 1, 1, r.Height - 2}, c)
		if r.Width > 1 {
			s.FillRect(Rect{r.X + r.Width - 1, r.Y + 1, 1, r.Height - 2}, c)
		}
	}
}

// StrokeLine draws a one pixel Bresenham line.
func (s *SoftSurface) StrokeLine(x0, y0, x1, y1 float64, c Color) {
	if c.A <= 0 {
		return
	}
	p0 := s.toSurface(Rect{X: x0, Y: y0}).pixelRect().Min
	p1 := s.toSurface(Rect{X: x1, Y: y1}).pixelRect().Min
	t := s.target()
	src := c.toRGBA()
	px := []uint8{src.R, src.G, src.B, src.A}
	bounds := t.Bounds()

	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		if (image.Point{x, y}).In(bounds) {
			i := t.PixOffset(x, y)
			blendPixel(t.Pix[i:i+4], px, BlendNormal)
		}
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Composite fills the whole surface with c under blend.
func (s *SoftSurface) Composite(c Color, blend BlendMode) {
	src := c.toRGBA()
	px := []uint8{src.R, src.G, src.B, src.A}
	for i := 0; i < len(s.img.Pix); i += 4 {
		blendPixel(s.img.Pix[i:i+4], px, blend)
	}
}

// Pixels returns a copy of the premultiplied bytes in r.
func (s *SoftSurface) Pixels(r image.Rectangle) []byte {
	out := make([]byte, 4*r.Dx()*r.Dy())
	area := r.Intersect(s.img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		si := s.img.PixOffset(area.Min.X, y)
		di := 4 * ((y-r.Min.Y)*r.Dx() + (area.Min.X - r.Min.X))
		copy(out[di:di+4*area.Dx()], s.img.Pix[si:si+4*area.Dx()])
	}
	return out
}

// At returns the straight-alpha color at (x, y).
func (s *SoftSurface) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(s.img.At(x, y)).(color.NRGBA)
}

// Dispose is a no-op; the image is garbage collected.
func (s *SoftSurface) Dispose() {}

// blendPixel composites one premultiplied src pixel onto dst in place.
func blendPixel(dst, src []uint8, blend BlendMode) {
	sa := uint32(src[3])
	da := uint32(dst[3])
	switch blend {
	case BlendCopy:
		copy(dst, src)
	case BlendSourceAtop:
		// out = src*da + dst*(1-sa); alpha stays da.
		for i := 0; i < 3; i++ {
			dst[i] = uint8((uint32(src[i])*da + uint32(dst[i])*(255-sa) + 127) / 255)
		}
	case BlendAdd:
		for i := 0; i < 4; i++ {
			dst[i] = uint8(min(uint32(dst[i])+uint32(src[i]), 255))
		}
	case BlendErase:
		for i := 0; i < 4; i++ {
			dst[i] = uint8((uint32(dst[i])*(255-sa) + 127) / 255)
		}
	default:
		for i := 0; i < 4; i++ {
			dst[i] = uint8(uint32(src[i]) + (uint32(dst[i])*(255-sa)+127)/255)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
