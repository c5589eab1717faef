package games

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
images: [bg.png]
fonts:
  main:
    url: font.png
    glyphWidth: 6
    glyphHeight: 6
    lineHeight: 8
    widths: {"i": 2, " ": 3}
  tiny: {url: tiny.png, glyphWidth: 4, glyphHeight: 5}
sprites:
  panel: {url: ui.png, x: 0, y: 0, w: 24, h: 24, center: {x: 8, y: 8, w: 8, h: 8}}
  arrow: {url: ui.png, x: 24, y: 0, w: 8, h: 8, pivot: {x: 4, y: 8}}
  coin: {url: items.png, w: 16, h: 16}
`

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest([]byte(testManifest))
	require.NoError(t, err)

	assert.Equal(t, []string{"main", "tiny"}, m.FontNames())
	assert.Equal(t, []string{"arrow", "coin", "panel"}, m.SpriteNames())

	main, ok := m.Font("main")
	require.True(t, ok)
	assert.Equal(t, 8, main.LineHeight)
	assert.Equal(t, 2, main.Advance('i'))
	assert.Equal(t, 3, main.SpaceWidth())

	tiny, _ := m.Font("tiny")
	assert.Equal(t, 5, tiny.LineHeight, "defaults to the glyph height")

	panel, ok := m.Sprite("panel")
	require.True(t, ok)
	assert.Equal(t, image.Rect(8, 8, 16, 16), panel.Center)

	arrow, _ := m.Sprite("arrow")
	assert.Equal(t, Vec2{4, 8}, arrow.Pivot)

	_, ok = m.Sprite("nope")
	assert.False(t, ok)
}

func TestManifestResources(t *testing.T) {
	m, err := LoadManifest([]byte(testManifest))
	require.NoError(t, err)

	res := m.Resources()
	require.Len(t, res, 5)
	assert.Equal(t, ImageResource{URL: "bg.png"}, res[0])
	assert.Equal(t, "font.png", res[1].(FontResource).Font.URL)
	assert.Equal(t, "tiny.png", res[2].(FontResource).Font.URL)

	items := res[3].(SpriteSheetResource)
	assert.Len(t, items.Sprites, 1)
	assert.Contains(t, items.Sprites, "coin")
	ui := res[4].(SpriteSheetResource)
	assert.Len(t, ui.Sprites, 2)
}

func TestManifestPreloads(t *testing.T) {
	m, err := LoadManifest([]byte(testManifest))
	require.NoError(t, err)

	c, _ := newTestContext(t, 8, 8)
	c.Assets().SetLoader(mapLoader(map[string]image.Image{
		"bg.png":    solidImage(1, 1, rgbaRed),
		"font.png":  solidImage(96, 48, rgbaRed),
		"tiny.png":  solidImage(64, 40, rgbaRed),
		"ui.png":    solidImage(32, 24, rgbaRed),
		"items.png": solidImage(16, 16, rgbaRed),
	}, nil))
	for _, r := range m.Resources() {
		c.Preload(r)
	}
	require.NoError(t, c.WaitForAll(t.Context()))
	for _, url := range []string{"bg.png", "font.png", "tiny.png", "ui.png", "items.png"} {
		_, ok := c.Assets().Image(url)
		assert.True(t, ok, url)
	}
}

func TestManifestErrors(t *testing.T) {
	tests := []struct {
		name, yaml string
	}{
		{"wide width key", `fonts: {f: {url: f.png, glyphWidth: 4, glyphHeight: 4, widths: {"ab": 2}}}`},
		{"bad font", `fonts: {f: {url: f.png, glyphWidth: 0, glyphHeight: 4}}`},
		{"sprite without url", `sprites: {s: {w: 4, h: 4}}`},
		{"center outside", `sprites: {s: {url: a.png, w: 4, h: 4, center: {x: 2, y: 2, w: 4, h: 1}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadManifest([]byte(tt.yaml))
			assert.True(t, errors.Is(err, ErrConfiguration), "got %v", err)
		})
	}

	_, err := LoadManifest([]byte("images: [unclosed"))
	assert.Error(t, err)
}
