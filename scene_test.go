package arbor

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewScene(t *testing.T) {
	s := NewScene(640, 480)
	if s.Root() == nil {
		t.Fatal("Root() returned nil")
	}
	if s.Root().Frame() != NewRegion(0, 0, 640, 480) {
		t.Errorf("root frame = %v", s.Root().Frame())
	}
	if s.Focus() != s.Root() {
		t.Error("initial focus should be the root")
	}
	if s.WheelStep() != defaultWheelStep {
		t.Errorf("WheelStep = %d, want %d", s.WheelStep(), defaultWheelStep)
	}
}

func TestSceneHitTest(t *testing.T) {
	s := NewScene(200, 200)
	sv := NewScrollView(NewRegion(50, 50, 100, 100), s.Root())
	row := NewView("row", NewRegion(0, 0, 100, 10))
	sv.AddSubviewInFrontOfView(row, nil)

	tests := []struct {
		name string
		p    Point
		want *View
	}{
		{"outside scene", Point{250, 10}, nil},
		{"root", Point{10, 10}, s.Root()},
		{"row", Point{60, 55}, row},
		{"content area resolves to scroll view", Point{60, 100}, &sv.View},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HitTest(tt.p); got != tt.want {
				t.Errorf("HitTest(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestSceneAdvanceRunsOnUpdate(t *testing.T) {
	s := NewScene(100, 100)
	a := NewView("a", NewRegion(0, 0, 10, 10))
	hidden := NewView("hidden", NewRegion(0, 0, 10, 10))
	child := NewView("child", NewRegion(0, 0, 1, 1))
	hidden.SetFlags(Invisible, OpSet)
	s.Root().AddSubviewInFrontOfView(a, nil)
	s.Root().AddSubviewInFrontOfView(hidden, nil)
	hidden.AddSubviewInFrontOfView(child, nil)

	var total float32
	var hiddenCalls int
	a.OnUpdate = func(dt float32) { total += dt }
	hidden.OnUpdate = func(float32) { hiddenCalls++ }
	child.OnUpdate = func(float32) { hiddenCalls++ }

	s.Advance(0.5)
	s.Advance(0.25)
	if total != 0.75 {
		t.Errorf("total dt = %v, want 0.75", total)
	}
	if hiddenCalls != 0 {
		t.Error("invisible subtree was updated")
	}
}

func TestSceneUpdate(t *testing.T) {
	s := NewScene(200, 200)
	var ticks int
	s.Root().OnUpdate = func(float32) { ticks++ }
	s.Update()
	s.Update()
	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
}

func TestSceneAnimateScroll(t *testing.T) {
	s := NewScene(200, 200)
	sv := NewScrollView(NewRegion(0, 0, 100, 100), s.Root())
	sv.SetContentSize(Size{100, 1000})
	s.SetScrollAnimation(0.5, ease.Linear)

	s.AnimateScroll(sv, Point{0, -400})
	s.Advance(0.25)
	if got := sv.ContentOffset(); got != (Point{0, -200}) {
		t.Errorf("halfway offset = %v, want (0,-200)", got)
	}
	s.Advance(0.25)
	if got := sv.ContentOffset(); got != (Point{0, -400}) {
		t.Errorf("final offset = %v, want (0,-400)", got)
	}
	if sv.Animating() {
		t.Error("animation still running after its duration")
	}
}
