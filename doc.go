// Package tilt animates pointer-driven 3D "profile card" tilt for
// [Ebitengine].
//
// Each [Card] owns an [Engine] that smooths raw pointer positions towards a
// moving target with frame-rate independent exponential smoothing and
// publishes a [Params] set (pointer percentages, background parallax,
// rotation angles, proximity) once per frame. The engine has no rendering
// or timing dependencies of its own: it runs against a [Scheduler], a
// [Clock], a [Surface] and an optional [FocusFunc], so it can be driven by a
// window, a terminal, or a test.
//
// # Quick start
//
//	board := tilt.NewBoard(tilt.DefaultConfig())
//	card := board.NewCard("profile", tilt.Rect{X: 140, Y: 40, Width: 360, Height: 400})
//	card.Intro()
//	tilt.Run(board, tilt.RunConfig{Title: "Profile", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [Board.Update]
// and [Board.Draw] directly.
//
// # Smoothing
//
// Each frame moves the current position a fraction k = 1 - exp(-dt/τ) of
// the remaining distance to the target. τ is [DefaultFastTau] normally and
// [DefaultInitialTau] during the entrance phase started by
// [Engine.BeginInitial]. The loop stops once the position is within
// epsilon of the target, unless the [ContinuePolicy] keeps it running while
// the host is focused.
//
// # Standalone engines
//
// [FrameLoop] is a fixed-tick Scheduler and Clock. Call [FrameLoop.Tick]
// from any tick source:
//
//	loop := tilt.NewFrameLoop()
//	e := tilt.NewEngine(tilt.EngineConfig{
//		Surface:   tilt.SurfaceFunc(func() (float64, float64) { return 360, 400 }),
//		Scheduler: loop,
//		Clock:     loop,
//		Publish:   func(p tilt.Params) { /* style the host */ },
//	})
//	e.SetTarget(300, 50)
//	loop.Tick(16 * time.Millisecond)
//
// [Ebitengine]: https://ebitengine.org
package tilt
