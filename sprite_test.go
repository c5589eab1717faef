package games

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hashSheet = `{
	"frames": {
		"button": {"frame": {"x": 0, "y": 0, "w": 16, "h": 12}, "rotated": false,
			"center": {"x": 4, "y": 3, "w": 8, "h": 6}},
		"arrow": {"frame": {"x": 16, "y": 0, "w": 8, "h": 8}, "pivot": {"x": 0.5, "y": 1}}
	},
	"meta": {"image": "ui.png"}
}`

func TestLoadSpriteSheetHash(t *testing.T) {
	sprites, err := LoadSpriteSheet([]byte(hashSheet), "ui.png")
	require.NoError(t, err)
	require.Len(t, sprites, 2)

	b := sprites["button"]
	assert.Equal(t, "ui.png", b.URL)
	assert.Equal(t, image.Rect(0, 0, 16, 12), b.rect())
	assert.Equal(t, image.Rect(4, 3, 12, 9), b.Center)

	a := sprites["arrow"]
	assert.Equal(t, image.Rect(16, 0, 24, 8), a.rect())
	assert.Equal(t, Vec2{4, 8}, a.Pivot)
	assert.True(t, a.Center.Empty())
}

func TestLoadSpriteSheetArray(t *testing.T) {
	one := `{"textures": [{"image": "a.png", "frames": {"x": {"frame": {"x": 1, "y": 2, "w": 3, "h": 4}}}}]}`
	sprites, err := LoadSpriteSheet([]byte(one), "a.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(1, 2, 4, 6), sprites["x"].rect())

	two := `{"textures": [{"image": "a.png", "frames": {}}, {"image": "b.png", "frames": {}}]}`
	_, err = LoadSpriteSheet([]byte(two), "a.png")
	assert.True(t, errors.Is(err, ErrMixedSpriteSheet))
}

func TestLoadSpriteSheetErrors(t *testing.T) {
	for _, data := range []string{
		`not json`,
		`{"meta": {}}`,
		`{"frames": {"r": {"frame": {"x": 0, "y": 0, "w": 1, "h": 1}, "rotated": true}}}`,
	} {
		_, err := LoadSpriteSheet([]byte(data), "x.png")
		assert.Error(t, err, data)
	}
}

func TestDrawSprite(t *testing.T) {
	c, surf := newTestContext(t, 16, 16)
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 4; y < 8; y++ {
		for x := 4; x < 8; x++ {
			img.Set(x, y, nrgbaGreen)
		}
	}
	c.Assets().AddImage("s.png", img)
	s := &Sprite{URL: "s.png", X: 4, Y: 4, W: 4, H: 4, Pivot: Vec2{2, 4}}

	c.DrawSprite(s, 6, 8)
	assert.Equal(t, image.Rect(4, 4, 8, 8), opaqueBounds(surf))
	assert.Equal(t, nrgbaGreen, surf.At(4, 4))

	surf.Clear()
	c.DrawSpriteRect(s, Rect{X: 0, Y: 0, Width: 8, Height: 2})
	assert.Equal(t, image.Rect(0, 0, 8, 2), opaqueBounds(surf))
	assert.Equal(t, 2, c.Stats().Blits)
}

func TestDrawSpritePlaceholder(t *testing.T) {
	c, surf := newTestContext(t, 8, 8)
	c.DrawSprite(&Sprite{URL: "missing.png", W: 2, H: 3}, 1, 1)
	assert.Equal(t, image.Rect(1, 1, 3, 4), opaqueBounds(surf))
	assert.Equal(t, 0, c.Stats().Blits)

	p := PlaceholderImage(3, 2)
	assert.Equal(t, uint8(255), p.RGBAAt(2, 1).B)
}
