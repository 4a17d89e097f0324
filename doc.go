// Package tween is a frame-driven property animation engine for
// [Ebitengine].
//
// Animations interpolate positions, scales, rotations, colors, alpha and text
// counters on a small retained scene graph, or any property at all through
// [Scheduler.TweenValue]. A [Scheduler] owns the active animations and
// advances them once per frame.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := tween.NewScene()
//	box := tween.NewSprite("box", 40, 40)
//	scene.Root().AddChild(box)
//
//	p := tween.NewParams(0.5).WithEase(tween.OutBack)
//	scene.Tweens().Move2DTo(box, tween.Vec2{X: 0, Y: 0}, tween.Vec2{X: 200, Y: 120}, p)
//
//	tween.Run(scene, tween.RunConfig{Title: "Tweens", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw], or drive a bare [Scheduler] with
// [Scheduler.Update] from any loop.
//
// # Duration and speed
//
// [Params.DurationOrSpeed] is read by the constructor it is passed to. The
// "To" constructors ([Scheduler.MoveTo], [Scheduler.ColorTo], ...) treat it
// as a duration in seconds. The "By" constructors treat it as a speed in
// value units per second, so the time taken depends on the distance between
// the start and end values.
//
// # Easing
//
// Every [EaseType] returns exactly 0 at the start and exactly 1 at the end.
// Interior values come from [gween]'s easing functions; Back, Elastic and
// Spring overshoot. A sampled [Curve] can replace the named easing and wins
// when both are configured.
//
// # Loops and ping-pong
//
// A loop count of n plays n forward sweeps. With ping-pong each loop is a
// forward sweep followed by a backward one. [LoopInfinite] repeats until the
// animation is stopped.
//
// # Lifecycle
//
// Animations registered during a tick first advance on the next tick.
// Finished animations leave the scheduler at the end of the tick that
// finished them. An animation whose target has been disposed ends without
// calling its completion callback. An [EventSink] sees every removal together
// with its [Reason]; the ecs submodule forwards them to a [Donburi] world.
//
// # Presets and effects
//
// [LoadPresets] reads named [Params] from YAML. [LoadEffects] reads UI
// effects (hover, pressed, selected...) that tween node position, scale and
// tint into a state and back again.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tween
