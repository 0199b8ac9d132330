package arbor

import "fmt"

// keyScrollAmount is the offset applied per arrow key press.
const keyScrollAmount = 10

// ScrollContext describes a change of a scroll view's content offset.
type ScrollContext struct {
	ScrollView *ScrollView
	Previous   Point
	Offset     Point
}

// ScrollView is a container whose visible area pans over a single content
// view. All subviews added to a ScrollView actually live in the content view,
// whose origin is the (non-positive) scroll offset.
//
// The embedded View is the node to place in the tree. Its callback fields stay
// free for the caller: the scene runs HandleKeyPress, HandleMouseWheel and
// HandleMouseDrag whenever the matching callback is unset or does not consume
// the event, and re-clamps and animates the offset regardless of OnSizeChanged
// and OnUpdate.
type ScrollView struct {
	View

	content *View

	// Scrollbar controllers. Not wired to any behavior yet.
	hscroll *View
	vscroll *View

	// OnScroll fires after the content offset changes.
	OnScroll func(ScrollContext)

	anim     *scrollAnim
	disposed bool
}

// NewScrollView creates a scroll view with the given frame and adds it in
// front of superview's subviews when superview is non-nil. The content view
// starts at the origin with the scroll view's size and resizes along with it.
func NewScrollView(frame Region, superview *View) *ScrollView {
	sv := &ScrollView{}
	viewDefaults(&sv.View, "scrollview", frame)

	sv.content = NewView("content", RegionFrom(Point{}, frame.Dimensions()))
	sv.content.routing = true
	sv.View.insertSubview(sv.content, nil)
	sv.content.SetFlags(ResizeWidth|ResizeHeight, OpOr)
	sv.View.host = sv.content
	sv.View.scroller = sv

	if superview != nil {
		superview.AddSubviewInFrontOfView(&sv.View, nil)
	}
	return sv
}

// ContentView returns the view that holds the scrollable subviews.
func (sv *ScrollView) ContentView() *View {
	return sv.content
}

// ContentOffset returns the content view's origin. Both components are in
// [frame size - content size, 0] whenever content exceeds the frame.
func (sv *ScrollView) ContentOffset() Point {
	return sv.content.Origin()
}

// AddSubviewInFrontOfView adds front to the content view.
func (sv *ScrollView) AddSubviewInFrontOfView(front, back *View) {
	sv.content.AddSubviewInFrontOfView(front, back)
}

// RemoveSubview detaches sub from the content view.
func (sv *ScrollView) RemoveSubview(sub *View) *View {
	return sv.content.RemoveSubview(sub)
}

// SubviewAt hit-tests like View.SubviewAt but never reports the content view.
func (sv *ScrollView) SubviewAt(p Point, ignoreTransparency, recursive bool) *View {
	v := sv.View.SubviewAt(p, ignoreTransparency, recursive)
	if v == sv.content {
		return nil
	}
	return v
}

// SetContentSize resizes the content view and re-clamps the offset.
func (sv *ScrollView) SetContentSize(s Size) {
	sv.content.SetFrameSize(s)
	sv.Scroll(Point{})
}

// Scroll moves the content by delta, clamped so the content never pans past
// its own edges. An axis whose content fits inside the frame cannot scroll.
// Panics if the content view has a negative size.
func (sv *ScrollView) Scroll(delta Point) {
	if globalDebug {
		debugCheckDisposedScroll(sv, "Scroll")
	}
	frame := sv.Dimensions()
	content := sv.content.Dimensions()
	if content.W < 0 || content.H < 0 {
		panic(fmt.Sprintf("arbor: scroll view %q has negative content size %v", sv.Name, content))
	}

	prev := sv.content.Origin()
	next := prev.Add(delta)

	// clamp so we never scroll beyond the content
	minX := min(frame.W-content.W, 0)
	minY := min(frame.H-content.H, 0)
	next.X = min(max(next.X, minX), 0)
	next.Y = min(max(next.Y, minY), 0)

	sv.content.SetFrameOrigin(next)
	if next != prev && sv.OnScroll != nil {
		sv.OnScroll(ScrollContext{ScrollView: sv, Previous: prev, Offset: next})
	}
}

// ScrollTo sets the content offset, clamped like Scroll.
func (sv *ScrollView) ScrollTo(offset Point) {
	sv.Scroll(offset.Sub(sv.content.Origin()))
}

// ScrollRectToVisible scrolls the least distance that brings r, given in
// content coordinates, into view. When r is larger than the frame its
// top-left corner wins.
func (sv *ScrollView) ScrollRectToVisible(r Region) {
	frame := sv.Dimensions()
	off := sv.content.Origin()
	off.X = revealAxis(off.X, r.X, r.W, frame.W)
	off.Y = revealAxis(off.Y, r.Y, r.H, frame.H)
	sv.ScrollTo(off)
}

func revealAxis(off, pos, size, span int) int {
	if pos+size > span-off {
		off = span - (pos + size)
	}
	if pos < -off {
		off = -pos
	}
	return off
}

// ScrollViewToVisible reveals v, which must live somewhere inside the content
// view. Returns false, leaving the offset untouched, for any other view.
func (sv *ScrollView) ScrollViewToVisible(v *View) bool {
	r := v.Frame()
	for p := v.superview; p != sv.content; p = p.superview {
		if p == nil {
			return false
		}
		r = r.Translate(p.Origin())
	}
	sv.ScrollRectToVisible(r)
	return true
}

// HandleKeyPress scrolls by a fixed amount for arrow keys. Up and left reveal
// content above and to the left, so they move the content down and right.
// Returns false for any other key.
func (sv *ScrollView) HandleKeyPress(ev KeyEvent) bool {
	var delta Point
	switch ev.Key {
	case KeyUp:
		delta.Y = keyScrollAmount
	case KeyDown:
		delta.Y = -keyScrollAmount
	case KeyLeft:
		delta.X = keyScrollAmount
	case KeyRight:
		delta.X = -keyScrollAmount
	}
	if delta.IsZero() {
		return false
	}
	sv.anim = nil
	sv.Scroll(delta)
	return true
}

// HandleMouseWheel applies the wheel delta directly. Always handled.
func (sv *ScrollView) HandleMouseWheel(ev WheelEvent) bool {
	sv.anim = nil
	sv.Scroll(ev.Delta)
	return true
}

// HandleMouseDrag pans the content by the drag delta while the action button
// is held. Drags with other buttons are left unhandled.
func (sv *ScrollView) HandleMouseDrag(ev MouseEvent) bool {
	if !ev.Buttons.Has(MouseButtonAction) {
		return false
	}
	sv.anim = nil
	sv.Scroll(ev.Delta)
	return true
}

// Dispose detaches the content view and removes the scroll view from its
// superview. The content view and everything added to it stay alive and can
// still be reached through ContentView.
func (sv *ScrollView) Dispose() {
	if sv.disposed {
		return
	}
	sv.View.detachSubview(sv.content) // no delete
	sv.View.host = nil
	sv.hscroll = nil
	sv.vscroll = nil
	sv.anim = nil
	sv.View.RemoveFromSuperview()
	sv.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (sv *ScrollView) IsDisposed() bool {
	return sv.disposed
}
