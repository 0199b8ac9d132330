// Package arbor is a retained-mode view tree for 2D interfaces on [Ebitengine]
// and in the terminal.
//
// Arbor provides the geometry, hierarchy, hit testing, scrolling and input
// routing that a windowed UI needs. It does not paint: applications draw their
// views however they like and let arbor decide where things are and who
// receives input.
//
// # Quick start
//
//	scene := arbor.NewScene(640, 480)
//	list := arbor.NewScrollView(arbor.NewRegion(20, 20, 200, 300), scene.Root())
//	list.SetContentSize(arbor.Size{W: 200, H: 1200})
//	for i := 0; i < 40; i++ {
//		row := arbor.NewView(fmt.Sprintf("row%d", i), arbor.NewRegion(0, i*30, 200, 30))
//		list.AddSubviewInFrontOfView(row, nil)
//	}
//	arbor.Run(scene, arbor.RunConfig{Title: "List", Width: 640, Height: 480})
//
// For a custom loop, call [Scene.Update] from your own ebiten.Game, or feed
// events from another backend through [Scene.DispatchKey],
// [Scene.DispatchWheel] and [Scene.DispatchPointer] (see package term for
// tcell).
//
// # View tree
//
// Every element is a [View]: a [Region] frame in its superview's coordinates
// plus subviews ordered back to front. The tree never owns views; removing a
// subview only detaches it. Flags make subviews follow their superview's size
// ([ResizeWidth], [ResizeHeight]) or fall through hit tests ([IgnoreEvents]).
//
// # Scroll views
//
// A [ScrollView] keeps a single content view and forwards subview changes to
// it. Arrow keys, the mouse wheel and drags with [MouseButtonAction] pan the
// content, clamped so it never scrolls past its own edges. Hit tests never
// return the content view itself.
//
// # Input routing
//
// Key presses go to the focused view, wheel and pointer events to the view
// under the pointer. Views that do not consume an event pass it to their
// superview. Scene-level observers ([Scene.OnKey], [Scene.OnDrag], ...) and an
// optional ECS bridge ([EntityStore], see package ecs) see every event.
//
// [Ebitengine]: https://ebitengine.org
package arbor
