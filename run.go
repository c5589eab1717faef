package games

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerButtons are the mouse buttons polled each tick.
var pointerButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Game drives a Context from Ebitengine. It implements ebiten.Game: Update
// turns device state into input events, Draw runs one frame.
type Game struct {
	ctx    *Context
	render func(*Context)
	fps    FPSMeter

	last    time.Time
	lastX   int
	lastY   int
	keys    []ebiten.Key
	screen  *EbitenSurface
	started bool
}

// NewGame returns a Game rendering with render every frame.
func NewGame(ctx *Context, render func(*Context)) *Game {
	return &Game{ctx: ctx, render: render, lastX: -1, lastY: -1}
}

// Context returns the driven context.
func (g *Game) Context() *Context {
	return g.ctx
}

// Update polls devices and feeds changes to the context as events.
func (g *Game) Update() error {
	in := g.ctx.input
	if x, y := ebiten.CursorPosition(); x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		in.Handle(PointerMoveEvent{X: float64(x), Y: float64(y)})
	}
	for i, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			in.Handle(PointerDownEvent{Button: i})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			in.Handle(PointerUpEvent{Button: i})
		}
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		in.Handle(KeyDownEvent{Key: k.String()})
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		in.Handle(KeyUpEvent{Key: k.String()})
	}
	return nil
}

// Draw runs BeginFrame, the render callback and EndFrame against screen.
// The delta is the wall-clock time since the previous Draw; the first
// frame's delta is 0.
func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	var dt float64
	if g.started {
		dt = float64(now.Sub(g.last)) / float64(time.Millisecond)
	}
	g.last, g.started = now, true

	if g.screen == nil || g.screen.Image() != screen {
		g.screen = NewEbitenSurface(screen)
	}
	g.ctx.surface = g.screen
	g.ctx.Frame(dt, g.render)

	g.fps.Tick(dt)
	if g.ctx.cfg.ShowFPS {
		drawFPS(screen, &g.fps)
	}
}

// Layout keeps the canvas at its configured logical size; Ebitengine scales
// it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctx.cfg.Width, g.ctx.cfg.Height
}

// Run opens a window and runs render every frame until the window closes.
// Resources registered with preload are loaded first; if any fails the
// window never opens.
func Run(cfg RunConfig, loader Loader, preload []Resource, render func(*Context)) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	canvas := ebiten.NewImage(cfg.Width, cfg.Height)
	ctx, err := NewContext(EbitenBackend{}, NewEbitenSurface(canvas), cfg)
	if err != nil {
		return err
	}
	ctx.assets.SetLoader(loader)
	for _, r := range preload {
		ctx.Preload(r)
	}
	if err := ctx.WaitForAll(context.Background()); err != nil {
		return err
	}
	canvas.Deallocate()

	mw, mh := ebiten.Monitor().Size()
	scale := ComputeScale(float64(cfg.Width), float64(cfg.Height), float64(mw), float64(mh), cfg.MaxScale)
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(cfg.Width)*scale), int(float64(cfg.Height)*scale))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	if err := ebiten.RunGame(NewGame(ctx, render)); err != nil {
		return fmt.Errorf("games: run: %w", err)
	}
	return nil
}
