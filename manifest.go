package games

import (
	"fmt"
	"image"
	"maps"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Manifest lists the assets a game preloads.
//
//	images: [ui.png]
//	fonts:
//	  main: {url: font.png, glyphWidth: 6, glyphHeight: 6, lineHeight: 8, widths: {"i": 2}}
//	sprites:
//	  panel: {url: ui.png, x: 0, y: 0, w: 24, h: 24, center: {x: 8, y: 8, w: 8, h: 8}}
type Manifest struct {
	Images  []string                  `yaml:"images"`
	Fonts   map[string]manifestFont   `yaml:"fonts"`
	Sprites map[string]manifestSprite `yaml:"sprites"`

	fonts   map[string]*Font
	sprites map[string]*Sprite
}

type manifestRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type manifestFont struct {
	URL         string         `yaml:"url"`
	GlyphWidth  int            `yaml:"glyphWidth"`
	GlyphHeight int            `yaml:"glyphHeight"`
	LineHeight  int            `yaml:"lineHeight"`
	Precolored  int            `yaml:"precolored"`
	Widths      map[string]int `yaml:"widths"`
}

type manifestSprite struct {
	URL    string        `yaml:"url"`
	X      int           `yaml:"x"`
	Y      int           `yaml:"y"`
	W      int           `yaml:"w"`
	H      int           `yaml:"h"`
	Center *manifestRect `yaml:"center"`
	Pivot  *Vec2         `yaml:"pivot"`
}

// LoadManifest parses and validates a YAML manifest.
func LoadManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("games: parse manifest: %w", err)
	}
	m.fonts = make(map[string]*Font, len(m.Fonts))
	for name, mf := range m.Fonts {
		f, err := mf.font()
		if err != nil {
			return nil, fmt.Errorf("games: manifest font %q: %w", name, err)
		}
		m.fonts[name] = f
	}
	m.sprites = make(map[string]*Sprite, len(m.Sprites))
	for name, ms := range m.Sprites {
		if ms.URL == "" || ms.W <= 0 || ms.H <= 0 {
			return nil, fmt.Errorf("games: manifest sprite %q: %w", name, configErrorf("needs url and positive size"))
		}
		s := &Sprite{URL: ms.URL, X: ms.X, Y: ms.Y, W: ms.W, H: ms.H}
		if ms.Center != nil {
			c := ms.Center
			s.Center = image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)
			if !s.Center.In(image.Rect(0, 0, s.W, s.H)) {
				return nil, fmt.Errorf("games: manifest sprite %q: %w", name, configErrorf("center %v outside %dx%d", s.Center, s.W, s.H))
			}
		}
		if ms.Pivot != nil {
			s.Pivot = *ms.Pivot
		}
		m.sprites[name] = s
	}
	return &m, nil
}

func (mf manifestFont) font() (*Font, error) {
	f := &Font{
		URL:         mf.URL,
		GlyphWidth:  mf.GlyphWidth,
		GlyphHeight: mf.GlyphHeight,
		LineHeight:  mf.LineHeight,
		Precolored:  mf.Precolored,
	}
	if f.LineHeight == 0 {
		f.LineHeight = f.GlyphHeight
	}
	if len(mf.Widths) > 0 {
		f.Widths = make(map[rune]int, len(mf.Widths))
		for ch, w := range mf.Widths {
			r, size := utf8.DecodeRuneInString(ch)
			if size == 0 || size != len(ch) {
				return nil, configErrorf("width key %q is not a single character", ch)
			}
			f.Widths[r] = w
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Font returns the named font.
func (m *Manifest) Font(name string) (*Font, bool) {
	f, ok := m.fonts[name]
	return f, ok
}

// Sprite returns the named sprite.
func (m *Manifest) Sprite(name string) (*Sprite, bool) {
	s, ok := m.sprites[name]
	return s, ok
}

// FontNames returns the font names in sorted order.
func (m *Manifest) FontNames() []string {
	return slices.Sorted(maps.Keys(m.fonts))
}

// SpriteNames returns the sprite names in sorted order.
func (m *Manifest) SpriteNames() []string {
	return slices.Sorted(maps.Keys(m.sprites))
}

// Resources returns everything the manifest names as preload resources:
// images, then fonts, then one sprite sheet per image URL.
func (m *Manifest) Resources() []Resource {
	var out []Resource
	for _, url := range m.Images {
		out = append(out, ImageResource{URL: url})
	}
	for _, name := range m.FontNames() {
		out = append(out, FontResource{Font: m.fonts[name]})
	}
	sheets := make(map[string]map[string]*Sprite)
	for _, name := range m.SpriteNames() {
		s := m.sprites[name]
		if sheets[s.URL] == nil {
			sheets[s.URL] = make(map[string]*Sprite)
		}
		sheets[s.URL][name] = s
	}
	for _, url := range slices.Sorted(maps.Keys(sheets)) {
		out = append(out, SpriteSheetResource{Sprites: sheets[url]})
	}
	return out
}
