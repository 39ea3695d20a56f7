// Package sapling grows a procedural tree out of a heart, for [Ebitengine].
//
// A run plays one fixed sequence: a beating heart waits for a click, drops
// as a seed, lands with a small burst of earth, grows into a branching tree,
// buds into a canopy of heart-shaped leaves, slides aside and types out a
// poem next to it.
//
// The simplest way to play it is [Run], which opens a window:
//
//	cfg := sapling.DefaultConfig()
//	if err := sapling.Run(cfg, sapling.GameOptions{}); err != nil {
//		log.Fatal(err)
//	}
//
// # Trees
//
// [TreeGenerator] draws a tree from a seed, a base point, a growth progress
// and a maximum height. Every random decision comes from a [SeededRand]
// keyed by the seed, so a tree redrawn at a higher progress is the same tree,
// further along. Render returns the canopy [Tip] points, which
// [PlaceLeaf] uses to hang [Leaf] values generated by [GenerateLeaves].
//
//	tips := sapling.RenderTree(canvas, 42, 400, 580, 1, 450)
//
// # Canvases
//
// Drawing goes through the small [Canvas] interface: filled and stroked
// [Path] values with solid or [Gradient] paint, a Save/Restore transform
// stack, a global alpha and text. [EbitenCanvas] draws onto an
// [ebiten.Image] each frame; [ImageCanvas] rasterizes onto an image.RGBA
// with golang.org/x/image/vector and needs no window, which makes it the
// choice for tests and headless renders (see examples/growth). The package
// still imports Ebitengine, so any program using it builds with cgo and, on
// Linux, the X11 and OpenGL headers.
//
// # Sequence
//
// [Sequence] owns the animation state and moves through the [Phase] values
// in order. Motion uses [gween] tweens and the [Camera] scrolls the world
// layer during the slide. Notable moments are reported as [Event] values
// through Sequence.OnEvent, which cmd/sapling turns into sound with the
// audio package.
//
// # Scripts and screenshots
//
// A [ScriptRunner] loaded with [LoadScript] replays clicks, waits and
// screenshots so a run can be captured unattended.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sapling
