// Package games is a small immediate-mode 2D toolkit for pixel-art games on
// [Ebitengine].
//
// Nothing is retained between frames except caches: every frame the game
// draws everything again through a [Context], which owns a draw-state stack
// (view origin and size, font, color, text cursor, shadow), a bitmap cache
// for rendered text, tinted fonts and 9-slice panels, tween and timer
// schedulers, and an input snapshot.
//
// # Quick start
//
//	font := &games.Font{URL: "font.png", GlyphWidth: 6, GlyphHeight: 6, LineHeight: 8}
//	err := games.Run(games.DefaultRunConfig(), games.FileLoader(os.DirFS("assets")),
//		[]games.Resource{games.FontResource{Font: font}},
//		func(c *games.Context) {
//			c.SetFont(font)
//			c.View(10, 10)
//			c.WriteLineAt("hello", 0, 0)
//			c.WriteLine("world")
//			c.End()
//		})
//
// # Frames
//
// A frame is BeginFrame, drawing, then EndFrame(dt). BeginFrame resets the
// draw-state stack to its base; EndFrame advances tweens and then timers by
// dt milliseconds and clears the per-frame input transitions. [Run] does
// this for you; headless code (tests, the games CLI) calls [Context.Frame]
// with a [SoftBackend] surface instead.
//
// # Views
//
// [Context.View] and [Context.ViewRect] push a translated, optionally
// clipped, coordinate space. Each must be closed by [Context.End]. All
// drawing and [Context.Over] hit tests use the current view's coordinates.
//
// # Caching
//
// Text bitmaps are cached per (font image, color, shadow, text). Dynamic
// strings grow an unbounded cache forever; set RunConfig.CachePolicy to
// "lru" to bound it.
//
// [Ebitengine]: https://ebitengine.org
package games
