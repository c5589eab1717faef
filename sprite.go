package games

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
)

// Sprite is a rectangle of an image, optionally with a 9-slice center and
// a pivot. Center is relative to the sprite's top-left corner; an empty
// Center means the sprite cannot be 9-sliced.
type Sprite struct {
	URL    string
	X, Y   int
	W, H   int
	Center image.Rectangle
	Pivot  Vec2
}

// rect returns the sprite's source rectangle in its image.
func (s *Sprite) rect() image.Rectangle {
	return image.Rect(s.X, s.Y, s.X+s.W, s.Y+s.H)
}

// DrawSprite draws s with its pivot at (x, y).
func (c *Context) DrawSprite(s *Sprite, x, y float64) {
	c.DrawSpriteRect(s, Rect{X: x - s.Pivot.X, Y: y - s.Pivot.Y, Width: float64(s.W), Height: float64(s.H)})
}

// DrawSpriteRect stretches s over dst. A sprite whose image is not loaded
// is drawn as a magenta placeholder.
func (c *Context) DrawSpriteRect(s *Sprite, dst Rect) {
	img, ok := c.assets.Image(s.URL)
	if !ok {
		c.logger.Warn("sprite image not loaded, using placeholder", "url", s.URL)
		c.surface.FillRect(dst, magenta)
		return
	}
	c.surface.DrawImage(img, s.rect(), dst, nil)
	c.stats.Blits++
}

var magenta = Color{R: 1, G: 0, B: 1, A: 1}

// --- TexturePacker sprite sheets ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect   `json:"frame"`
	Rotated bool       `json:"rotated"`
	Pivot   *jsonPivot `json:"pivot"`
	Center  *jsonRect  `json:"center"`
}

// jsonPivot is TexturePacker's normalized pivot.
type jsonPivot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// LoadSpriteSheet parses TexturePacker JSON into sprites cut from the image
// at url. Both the hash format (a "frames" object) and the array format (a
// "textures" list) are accepted; the array format must hold a single page
// since every sprite in a sheet shares one image. Rotated frames are
// rejected. A non-standard "center" rect per frame sets the 9-slice center.
func LoadSpriteSheet(jsonData []byte, url string) (map[string]*Sprite, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("games: failed to parse sprite sheet JSON: %w", err)
	}

	var frames map[string]jsonFrame
	switch {
	case probe.Textures != nil:
		var pages []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &pages); err != nil {
			return nil, fmt.Errorf("games: failed to parse sprite sheet textures: %w", err)
		}
		if len(pages) != 1 {
			return nil, fmt.Errorf("%w: %d texture pages", ErrMixedSpriteSheet, len(pages))
		}
		frames = pages[0].Frames
	case probe.Frames != nil:
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("games: failed to parse sprite sheet frames: %w", err)
		}
	default:
		return nil, fmt.Errorf("games: sprite sheet JSON has neither \"frames\" nor \"textures\" key")
	}

	sprites := make(map[string]*Sprite, len(frames))
	for name, f := range frames {
		if f.Rotated {
			return nil, fmt.Errorf("games: sprite %q is rotated; export without rotation", name)
		}
		sprites[name] = frameToSprite(f, url)
	}
	return sprites, nil
}

func frameToSprite(f jsonFrame, url string) *Sprite {
	s := &Sprite{
		URL: url,
		X:   f.Frame.X,
		Y:   f.Frame.Y,
		W:   f.Frame.W,
		H:   f.Frame.H,
	}
	if f.Pivot != nil {
		s.Pivot = Vec2{X: f.Pivot.X * float64(f.Frame.W), Y: f.Pivot.Y * float64(f.Frame.H)}
	}
	if f.Center != nil {
		s.Center = image.Rect(f.Center.X, f.Center.Y, f.Center.X+f.Center.W, f.Center.Y+f.Center.H)
	}
	return s
}

// PlaceholderImage returns a w x h magenta image, for sprites whose art is
// not drawn yet.
func PlaceholderImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	m := color.RGBA{R: 255, B: 255, A: 255}
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, m)
		}
	}
	return img
}
