// Package folio is the interaction engine for single-page presentations
// built on [Ebitengine]: a long, vertically scrolling page of sections under
// a fixed navigation header.
//
// Folio decides which section is active as the user scrolls (scroll-spy),
// scrolls to a section with the header height compensated, maps scroll
// progress to parallax outputs, tracks the pointer and its hover state for a
// custom cursor, and follows the platform's reduced-motion preference.
//
// # Quick start
//
// The simplest way to get started is [NewPage] and [Run]:
//
//	cfg, err := folio.LoadConfig(yamlData)
//	// ...
//	page, err := folio.NewPage(cfg, 1280, 800)
//	// ...
//	folio.Run(page.Engine, folio.RunConfig{
//		Title: "Portfolio", Width: 1280, Height: 800,
//		Draw:  func(screen *ebiten.Image) { /* draw page */ },
//	})
//
// For full control, feed a [Window] yourself (or with an [EbitenHost]) and
// call [Engine.Update] once per frame.
//
// # State
//
// Each piece of shared state has exactly one owner. Display code reads it
// through a [ReadOnly] view and may subscribe to changes:
//
//	page.Engine.ActiveSection().Subscribe(func(id string) {
//		highlight(id)
//	})
//
// # Listeners
//
// Every component attaches its window listeners on Mount and removes all of
// them on Unmount. [Window.ListenerCount] exposes the counts so leaks are
// observable in tests.
//
// # Frame cadence
//
// Scroll and resize events only request a sample. [Engine.Update] takes at
// most one sample per frame and evaluates the resolver, parallax layers and
// header state against it.
//
// Smooth scrolling and cursor easing use [gween]. Interaction events can be
// forwarded to an ECS via the [Donburi] adapter in folio/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package folio
