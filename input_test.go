package arbor

import "testing"

var left = ButtonMask(MouseButtonLeft)

func press(s *Scene, x, y int, b MouseButtons) {
	s.DispatchPointer(PointerEvent{Pos: Point{x, y}, Buttons: b})
}

func release(s *Scene, x, y int) {
	s.DispatchPointer(PointerEvent{Pos: Point{x, y}})
}

// --- Key routing ---

func TestDispatchKey_Focus(t *testing.T) {
	s := NewScene(200, 200)
	v := NewView("v", NewRegion(0, 0, 50, 50))
	s.Root().AddSubviewInFrontOfView(v, nil)

	var got []Key
	v.OnKeyPress = func(ev KeyEvent) bool { got = append(got, ev.Key); return true }

	if s.DispatchKey(KeyEvent{Key: KeyEnter}) {
		t.Error("root without handler consumed the key")
	}
	s.SetFocus(v)
	if !s.DispatchKey(KeyEvent{Key: KeyEnter}) {
		t.Error("focused view did not consume the key")
	}
	if len(got) != 1 || got[0] != KeyEnter {
		t.Errorf("received %v", got)
	}
}

func TestDispatchKey_Bubbles(t *testing.T) {
	s := NewScene(200, 200)
	outer := NewView("outer", NewRegion(0, 0, 100, 100))
	inner := NewView("inner", NewRegion(0, 0, 10, 10))
	s.Root().AddSubviewInFrontOfView(outer, nil)
	outer.AddSubviewInFrontOfView(inner, nil)

	var order []string
	inner.OnKeyPress = func(KeyEvent) bool { order = append(order, "inner"); return false }
	outer.OnKeyPress = func(KeyEvent) bool { order = append(order, "outer"); return true }
	s.Root().OnKeyPress = func(KeyEvent) bool { order = append(order, "root"); return true }

	s.SetFocus(inner)
	s.DispatchKey(KeyEvent{Key: KeyTab})
	if len(order) != 2 || order[0] != "inner" || order[1] != "outer" {
		t.Errorf("order = %v, want [inner outer]", order)
	}
}

func TestFocus_DetachedFallsBackToRoot(t *testing.T) {
	s := NewScene(200, 200)
	v := NewView("v", NewRegion(0, 0, 10, 10))
	s.Root().AddSubviewInFrontOfView(v, nil)
	s.SetFocus(v)
	v.RemoveFromSuperview()
	if s.Focus() != s.Root() {
		t.Error("detached focus should fall back to root")
	}
}

func TestDispatchKey_ScrollView(t *testing.T) {
	s := NewScene(200, 200)
	sv := NewScrollView(NewRegion(0, 0, 100, 100), s.Root())
	sv.SetContentSize(Size{300, 300})
	s.SetFocus(&sv.View)

	if !s.DispatchKey(KeyEvent{Key: KeyRight}) {
		t.Fatal("right arrow not consumed")
	}
	if sv.ContentOffset() != (Point{-10, 0}) {
		t.Errorf("offset = %v", sv.ContentOffset())
	}
	if s.DispatchKey(KeyEvent{Key: KeyRune, Rune: 'q'}) {
		t.Error("rune consumed by scroll view")
	}
}

// --- Wheel routing ---

func TestDispatchWheel_HitTest(t *testing.T) {
	s := NewScene(300, 300)
	sv := NewScrollView(NewRegion(100, 100, 100, 100), s.Root())
	sv.SetContentSize(Size{100, 500})
	row := NewView("row", NewRegion(0, 0, 100, 20))
	sv.AddSubviewInFrontOfView(row, nil)

	// Over a child of the content view: bubbles row -> content -> scroll view.
	if !s.DispatchWheel(WheelEvent{Pos: Point{150, 105}, Delta: Point{0, -25}}) {
		t.Fatal("wheel over row not consumed")
	}
	if sv.ContentOffset() != (Point{0, -25}) {
		t.Errorf("offset = %v", sv.ContentOffset())
	}

	if s.DispatchWheel(WheelEvent{Pos: Point{10, 10}, Delta: Point{0, -25}}) {
		t.Error("wheel outside scroll view consumed")
	}
	if s.DispatchWheel(WheelEvent{Pos: Point{-5, 10}, Delta: Point{0, -25}}) {
		t.Error("wheel outside the scene consumed")
	}
}

// --- Pointer state machine ---

func TestPointerDownUp(t *testing.T) {
	s := NewScene(200, 200)
	v := NewView("v", NewRegion(10, 10, 50, 50))
	s.Root().AddSubviewInFrontOfView(v, nil)

	var down, up MouseEvent
	v.OnMouseDown = func(ev MouseEvent) bool { down = ev; return true }
	v.OnMouseUp = func(ev MouseEvent) bool { up = ev; return true }

	press(s, 20, 30, left)
	if down.Local != (Point{10, 20}) || down.Button != MouseButtonLeft {
		t.Errorf("down = %+v", down)
	}
	if s.Focus() != v {
		t.Error("press did not focus the view")
	}
	release(s, 25, 30)
	if up.Pos != (Point{25, 30}) {
		t.Errorf("up = %+v", up)
	}
}

func TestPointerCapture(t *testing.T) {
	s := NewScene(200, 200)
	a := NewView("a", NewRegion(0, 0, 50, 50))
	b := NewView("b", NewRegion(100, 0, 50, 50))
	s.Root().AddSubviewInFrontOfView(a, nil)
	s.Root().AddSubviewInFrontOfView(b, nil)

	var aUp, bUp int
	a.OnMouseUp = func(MouseEvent) bool { aUp++; return true }
	b.OnMouseUp = func(MouseEvent) bool { bUp++; return true }

	press(s, 10, 10, left)
	press(s, 120, 10, left)
	release(s, 120, 10)
	if aUp != 1 || bUp != 0 {
		t.Errorf("release went to a=%d b=%d, want the press target", aUp, bUp)
	}
}

func TestDragDetection(t *testing.T) {
	s := NewScene(200, 200)
	v := NewView("v", NewRegion(0, 0, 200, 200))
	s.Root().AddSubviewInFrontOfView(v, nil)

	var starts, ends int
	var deltas []Point
	s.OnDragStart(func(EventContext) { starts++ })
	s.OnDragEnd(func(EventContext) { ends++ })
	v.OnMouseDrag = func(ev MouseEvent) bool { deltas = append(deltas, ev.Delta); return true }

	press(s, 50, 50, left)
	press(s, 52, 51, left) // inside the dead zone
	if starts != 0 || len(deltas) != 0 {
		t.Fatal("drag started inside the dead zone")
	}
	press(s, 56, 50, left)
	press(s, 60, 45, left)
	release(s, 60, 45)

	if starts != 1 || ends != 1 {
		t.Errorf("starts=%d ends=%d, want 1,1", starts, ends)
	}
	// The first delta includes the movement absorbed by the dead zone.
	want := []Point{{6, 0}, {4, -5}}
	if len(deltas) != len(want) || deltas[0] != want[0] || deltas[1] != want[1] {
		t.Errorf("deltas = %v, want %v", deltas, want)
	}
}

func TestSetDragDeadZone(t *testing.T) {
	s := NewScene(200, 200)
	s.SetDragDeadZone(20)
	var starts int
	s.OnDragStart(func(EventContext) { starts++ })

	press(s, 50, 50, left)
	press(s, 60, 60, left)
	if starts != 0 {
		t.Error("drag started inside a 20px dead zone")
	}
	press(s, 70, 70, left)
	if starts != 1 {
		t.Error("drag did not start outside the dead zone")
	}
}

func TestDragScrollsScrollView(t *testing.T) {
	s := NewScene(300, 300)
	sv := NewScrollView(NewRegion(0, 0, 100, 100), s.Root())
	sv.SetContentSize(Size{400, 400})
	row := NewView("row", NewRegion(0, 0, 400, 30))
	sv.AddSubviewInFrontOfView(row, nil)
	s.SetDragDeadZone(0)

	press(s, 50, 10, left) // on row; drag bubbles to the scroll view
	press(s, 40, 5, left)
	press(s, 20, -20, left) // outside the scene, still captured
	release(s, 20, -20)

	if got := sv.ContentOffset(); got != (Point{-30, -30}) {
		t.Errorf("offset = %v, want (-30,-30)", got)
	}
}

func TestDragWithoutActionButton(t *testing.T) {
	s := NewScene(300, 300)
	sv := NewScrollView(NewRegion(0, 0, 100, 100), s.Root())
	sv.SetContentSize(Size{400, 400})
	s.SetDragDeadZone(0)

	var observed []bool
	s.OnDrag(func(ctx EventContext) { observed = append(observed, ctx.Handled) })

	right := ButtonMask(MouseButtonRight)
	press(s, 50, 50, right)
	press(s, 20, 20, right)
	release(s, 20, 20)

	if !sv.ContentOffset().IsZero() {
		t.Errorf("offset = %v, want (0,0)", sv.ContentOffset())
	}
	if len(observed) != 1 || observed[0] {
		t.Errorf("drag observations = %v, want one unhandled", observed)
	}
}

func TestPointerMove(t *testing.T) {
	s := NewScene(200, 200)
	v := NewView("v", NewRegion(100, 100, 50, 50))
	s.Root().AddSubviewInFrontOfView(v, nil)

	var ctxs []EventContext
	s.OnPointerMove(func(ctx EventContext) { ctxs = append(ctxs, ctx) })

	release(s, 10, 10)
	release(s, 10, 10) // no movement
	release(s, 110, 120)

	if len(ctxs) != 2 {
		t.Fatalf("moves = %d, want 2", len(ctxs))
	}
	if ctxs[0].View != s.Root() || ctxs[1].View != v {
		t.Errorf("move targets = %v, %v", ctxs[0].View.Name, ctxs[1].View.Name)
	}
	if ctxs[1].Local != (Point{10, 20}) {
		t.Errorf("local = %v, want (10,20)", ctxs[1].Local)
	}
}

// --- Observers ---

func TestObserversSeeHandledFlag(t *testing.T) {
	s := NewScene(200, 200)
	v := NewView("v", NewRegion(0, 0, 50, 50))
	s.Root().AddSubviewInFrontOfView(v, nil)
	v.OnMouseDown = func(MouseEvent) bool { return true }

	var got []EventContext
	s.OnPointerDown(func(ctx EventContext) { got = append(got, ctx) })
	s.OnPointerUp(func(ctx EventContext) { got = append(got, ctx) })

	press(s, 10, 10, left)
	release(s, 10, 10)

	if len(got) != 2 {
		t.Fatalf("observed %d events, want 2", len(got))
	}
	if got[0].Type != EventPointerDown || !got[0].Handled || got[0].View != v {
		t.Errorf("down ctx = %+v", got[0])
	}
	if got[1].Type != EventPointerUp || got[1].Handled {
		t.Errorf("up ctx = %+v", got[1])
	}
}

func TestCallbackHandle_Remove(t *testing.T) {
	s := NewScene(200, 200)
	var a, b int
	ha := s.OnKey(func(EventContext) { a++ })
	s.OnKey(func(EventContext) { b++ })

	s.DispatchKey(KeyEvent{Key: KeyUp})
	ha.Remove()
	ha.Remove() // second remove is a no-op
	s.DispatchKey(KeyEvent{Key: KeyUp})

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1,2", a, b)
	}
	CallbackHandle{}.Remove() // zero handle is safe
}

func TestCallbackHandle_RemoveDuringDispatch(t *testing.T) {
	s := NewScene(200, 200)
	var once, after int
	var h CallbackHandle
	h = s.OnKey(func(EventContext) {
		once++
		h.Remove()
	})
	s.OnKey(func(EventContext) { after++ })

	s.DispatchKey(KeyEvent{Key: KeyUp})
	if once != 1 || after != 1 {
		t.Fatalf("first dispatch: once=%d after=%d, want 1,1", once, after)
	}

	s.DispatchKey(KeyEvent{Key: KeyUp})
	if once != 1 || after != 2 {
		t.Errorf("second dispatch: once=%d after=%d, want 1,2", once, after)
	}
}

func TestOnWheelObserver(t *testing.T) {
	s := NewScene(200, 200)
	var got EventContext
	s.OnWheel(func(ctx EventContext) { got = ctx })
	s.DispatchWheel(WheelEvent{Pos: Point{5, 6}, Delta: Point{0, 3}, Modifiers: ModShift})
	if got.Type != EventMouseWheel || got.Delta != (Point{0, 3}) || got.Modifiers != ModShift || got.View != s.Root() {
		t.Errorf("ctx = %+v", got)
	}
}

func TestIndependentScenes(t *testing.T) {
	s1 := NewScene(100, 100)
	s2 := NewScene(100, 100)
	var n1, n2 int
	s1.OnKey(func(EventContext) { n1++ })
	s2.OnKey(func(EventContext) { n2++ })

	s1.DispatchKey(KeyEvent{Key: KeyUp})
	if n1 != 1 || n2 != 0 {
		t.Errorf("n1=%d n2=%d", n1, n2)
	}
}

// --- ECS bridge ---

type mockStore struct {
	events []InteractionEvent
}

func (m *mockStore) EmitEvent(e InteractionEvent) {
	m.events = append(m.events, e)
}

func TestECSBridge(t *testing.T) {
	s := NewScene(200, 200)
	store := &mockStore{}
	s.SetEntityStore(store)

	v := NewView("v", NewRegion(0, 0, 100, 100))
	v.EntityID = 42
	s.Root().AddSubviewInFrontOfView(v, nil)

	press(s, 50, 60, left)

	if len(store.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(store.events))
	}
	e := store.events[0]
	if e.Type != EventPointerDown || e.EntityID != 42 || e.Local != (Point{50, 60}) {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestECSBridge_NoEntity(t *testing.T) {
	s := NewScene(200, 200)
	store := &mockStore{}
	s.SetEntityStore(store)

	press(s, 50, 50, left)
	release(s, 50, 50)
	if len(store.events) != 0 {
		t.Errorf("expected 0 events for views without EntityID, got %d", len(store.events))
	}
}

func TestScrollViewUserCallbacks(t *testing.T) {
	s := NewScene(300, 300)
	sv := NewScrollView(NewRegion(0, 0, 100, 100), s.Root())
	sv.SetContentSize(Size{400, 400})
	s.SetFocus(&sv.View)
	s.SetDragDeadZone(0)

	var keys, drags, ticks int
	sv.OnKeyPress = func(ev KeyEvent) bool { keys++; return ev.Key == KeyUp }
	sv.OnMouseDrag = func(MouseEvent) bool { drags++; return false }
	sv.OnUpdate = func(float32) { ticks++ }

	s.DispatchKey(KeyEvent{Key: KeyDown})
	if got := sv.ContentOffset(); got != (Point{0, -10}) {
		t.Errorf("after down: offset = %v, want (0,-10)", got)
	}
	s.DispatchKey(KeyEvent{Key: KeyUp}) // consumed by the user callback
	if got := sv.ContentOffset(); got != (Point{0, -10}) {
		t.Errorf("after consumed up: offset = %v, want (0,-10)", got)
	}
	if keys != 2 {
		t.Errorf("user OnKeyPress ran %d times, want 2", keys)
	}

	press(s, 50, 50, left)
	press(s, 40, 50, left)
	release(s, 40, 50)
	if got := sv.ContentOffset(); got != (Point{-10, -10}) {
		t.Errorf("after drag: offset = %v, want (-10,-10)", got)
	}
	if drags != 1 {
		t.Errorf("user OnMouseDrag ran %d times, want 1", drags)
	}

	sv.AnimateScrollTo(Point{0, -300}, 0.5, nil)
	for i := 0; i < 60; i++ {
		s.Advance(1.0 / 60)
	}
	if got := sv.ContentOffset(); got != (Point{0, -300}) {
		t.Errorf("after animation: offset = %v, want (0,-300)", got)
	}
	if ticks != 60 {
		t.Errorf("user OnUpdate ran %d times, want 60", ticks)
	}
}

func TestScrollViewResizeWithUserOnSizeChanged(t *testing.T) {
	sv := NewScrollView(NewRegion(0, 0, 100, 100), nil)
	sv.SetContentSize(Size{100, 300})
	sv.ContentView().SetFlags(0, OpSet)
	sv.Scroll(Point{0, -200})

	var seen Point
	sv.OnSizeChanged = func(Size) { seen = sv.ContentOffset() }
	sv.SetFrameSize(Size{100, 250})

	if got := sv.ContentOffset(); got != (Point{0, -50}) {
		t.Errorf("offset = %v, want (0,-50)", got)
	}
	if seen != (Point{0, -50}) {
		t.Errorf("OnSizeChanged saw offset %v, want the re-clamped (0,-50)", seen)
	}
}
