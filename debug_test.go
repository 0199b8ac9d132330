package arbor

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	t.Cleanup(func() { SetDebugOutput(nil) })
	return &buf
}

func TestDebugMode_DisposedScrollPanics(t *testing.T) {
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	sv := NewScrollView(NewRegion(0, 0, 50, 50), s.Root())
	sv.Name = "list"
	sv.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on Scroll of a disposed scroll view, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") || !strings.Contains(msg, `"list"`) {
			t.Errorf("panic message should name the disposed view, got: %s", msg)
		}
	}()

	sv.Scroll(Point{0, -1})
}

func TestDebugModeOff_DisposedScrollAllowed(t *testing.T) {
	sv := NewScrollView(NewRegion(0, 0, 50, 50), nil)
	sv.Dispose()
	sv.Scroll(Point{0, -1}) // no panic without debug mode
}

func TestDebugLog_Stats(t *testing.T) {
	buf := captureDebug(t)
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	s.debugLog(debugStats{events: 3, handled: 1})
	if !strings.Contains(buf.String(), "[arbor] events: 3 | handled: 1") {
		t.Errorf("log = %q", buf.String())
	}

	buf.Reset()
	s.debugLog(debugStats{})
	if buf.Len() != 0 {
		t.Errorf("idle frame logged %q", buf.String())
	}
}

func TestDebugLog_OffByDefault(t *testing.T) {
	buf := captureDebug(t)
	s := NewScene(100, 100)
	s.debugLog(debugStats{events: 5})
	if buf.Len() != 0 {
		t.Errorf("logged without debug mode: %q", buf.String())
	}
}

func TestDebugCheckTreeDepth(t *testing.T) {
	buf := captureDebug(t)
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := s.Root()
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		child := NewView(fmt.Sprintf("v%d", i), NewRegion(0, 0, 10, 10))
		parent.AddSubviewInFrontOfView(child, nil)
		parent = child
	}
	if !strings.Contains(buf.String(), "tree depth") {
		t.Errorf("expected tree depth warning, got %q", buf.String())
	}
}

func TestDebugCheckSubviewCount(t *testing.T) {
	buf := captureDebug(t)
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	for i := 0; i <= debugMaxSubviewCount; i++ {
		s.Root().AddSubviewInFrontOfView(NewView("", Region{}), nil)
	}
	if !strings.Contains(buf.String(), `view "root" has 1001 subviews`) {
		t.Errorf("expected subview count warning, got %q", buf.String())
	}
}

func TestDebugUpdateLogsInjectedEvents(t *testing.T) {
	buf := captureDebug(t)
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	s.InjectKey(KeyUp)
	s.Update()
	if !strings.Contains(buf.String(), "events: 1") {
		t.Errorf("log = %q", buf.String())
	}
}
