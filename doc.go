// Package overlay is the sprite image and auxiliary-overlay rendering core
// of a 2D tile-based level editor, built on [Ebitengine].
//
// The package maps abstract sprite state (position, dimensions, type-specific
// parameters) into a layered visual representation: a placement box
// ([Spritebox]), an optional primary image ([SpriteImage]), and an ordered
// list of decorations ([AuxiliaryItem]) such as movement tracks, circular
// and rectangular range outlines, rotation arcs, and tiled location fills.
// Geometry is recomputed reactively whenever the underlying sprite data
// changes.
//
// # Composition
//
// Every sprite, zone, and location owns a scene [Node]; auxiliary items
// attach as child nodes, so the host editor's scene walker finds them in
// stacking order:
//
//	ctx := overlay.NewContext(color.RGBA{R: 255, G: 255, B: 255, A: 80})
//	img := overlay.NewSpriteImage(ctx, spriteNode, 1.5)
//	img.AddAux(overlay.NewTrackObject(ctx, spriteNode, 100, 16, overlay.Horizontal))
//
// Concrete sprite types implement [Renderer], usually by embedding
// [SpriteImage] and overriding DataChanged to derive geometry from their
// own parameters.
//
// # Shared state
//
// A [Context] carries everything process-wide: the outline pen and brush
// used by every auxiliary item, the sprite image cache, the tile table with
// its unknown-tile fallback, the registered sprite folders, the real-view
// display flag, and the current [Area]. Contexts have an explicit
// [NewContext]/[Context.Reset] lifecycle; Reset is used when switching
// editor contexts.
//
// The whole package is single-threaded and event-driven: all rendering and
// geometry recomputation happens synchronously on the UI thread in response
// to host callbacks.
//
// [Ebitengine]: https://ebitengine.org
package overlay
