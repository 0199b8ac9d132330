package arbor

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	Pos       Point
	Local     Point
	Delta     Point
	Key       Key
	Rune      rune
	Button    MouseButton
	Modifiers KeyModifiers
	Handled   bool
}

const (
	defaultWheelStep      = 10
	defaultScrollDuration = 0.25
)

// Scene is the top-level object that owns the view tree, keyboard focus,
// pointer state and input routing.
type Scene struct {
	root  *View
	focus *View
	store EntityStore
	debug bool

	// Input state
	handlers     handlerRegistry
	pointer      pointerState
	dragDeadZone int
	wheelStep    int
	keyBuf       []ebiten.Key

	// Scroll animation defaults used by script-driven scrolling.
	scrollDuration float32
	scrollEase     ease.TweenFunc

	injectQueue []syntheticEvent
	testRunner  *TestRunner

	stats debugStats
}

// NewScene creates a scene whose root view covers a w×h window.
func NewScene(w, h int) *Scene {
	return &Scene{
		root:           NewView("root", NewRegion(0, 0, w, h)),
		dragDeadZone:   defaultDragDeadZone,
		wheelStep:      defaultWheelStep,
		scrollDuration: defaultScrollDuration,
		scrollEase:     ease.OutCubic,
	}
}

// Root returns the scene's root view.
func (s *Scene) Root() *View {
	return s.root
}

// SetFocus makes v the target of key events. nil restores the root.
func (s *Scene) SetFocus(v *View) {
	s.focus = v
}

// Focus returns the view that receives key events. A focused view that has
// been detached from the tree no longer counts; the root is returned instead.
func (s *Scene) Focus() *View {
	if s.focus == nil || !isAncestor(s.root, s.focus) {
		return s.root
	}
	return s.focus
}

// HitTest returns the deepest opaque view under the window point p, the root
// when nothing else is hit, or nil when p lies outside the root.
func (s *Scene) HitTest(p Point) *View {
	if !s.root.frame.Contains(p) {
		return nil
	}
	if v := s.root.SubviewAt(s.root.ConvertPointFromSuper(p), false, true); v != nil {
		return v
	}
	return s.root
}

// Update processes one frame: the test runner step, one synthetic event or
// live input, then view updates. Call it from ebiten.Game.Update.
func (s *Scene) Update() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() {
		s.processInput()
	}
	s.Advance(float32(1.0 / float64(ebiten.TPS())))

	if s.debug {
		s.stats.updateTime = time.Since(t0)
		s.debugLog(s.stats)
	}
	s.stats = debugStats{}
}

// Advance runs OnUpdate for every visible view, depth first. Scroll
// animations progress here.
func (s *Scene) Advance(dt float32) {
	advanceViews(s.root, dt)
}

func advanceViews(v *View, dt float32) {
	if !v.IsVisible() {
		return
	}
	if v.OnUpdate != nil {
		v.OnUpdate(dt)
	}
	if v.scroller != nil {
		v.scroller.update(dt)
	}
	for _, sub := range v.subviews {
		advanceViews(sub, dt)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDragDeadZone sets the minimum movement in pixels before a press becomes a drag.
func (s *Scene) SetDragDeadZone(pixels int) {
	s.dragDeadZone = pixels
}

// SetWheelStep sets how many pixels one wheel notch scrolls.
func (s *Scene) SetWheelStep(pixels int) {
	s.wheelStep = pixels
}

// WheelStep returns the pixels scrolled per wheel notch.
func (s *Scene) WheelStep() int {
	return s.wheelStep
}

// SetScrollAnimation sets the duration and easing used by AnimateScroll.
func (s *Scene) SetScrollAnimation(duration float32, fn ease.TweenFunc) {
	s.scrollDuration = duration
	s.scrollEase = fn
}

// AnimateScroll tweens sv to offset with the scene's animation defaults.
func (s *Scene) AnimateScroll(sv *ScrollView, offset Point) {
	sv.AnimateScrollTo(offset, s.scrollDuration, s.scrollEase)
}

// SetDebugMode enables or disables debug mode. When enabled, use of disposed
// scroll views panics, tree depth and subview count warnings are printed, and
// per-frame input stats are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that view
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool
