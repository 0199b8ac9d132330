package arbor

// --- Event payloads ---

// KeyEvent carries a single key press.
type KeyEvent struct {
	Key       Key
	Rune      rune // valid when Key == KeyRune
	Modifiers KeyModifiers
}

// WheelEvent carries a mouse wheel movement at a window position. Delta is in
// pixels; positive Y means the wheel moved up.
type WheelEvent struct {
	Pos       Point
	Delta     Point
	Modifiers KeyModifiers
}

// PointerEvent is the raw pointer state reported by a backend: the window
// position and the set of held buttons.
type PointerEvent struct {
	Pos       Point
	Buttons   MouseButtons
	Modifiers KeyModifiers
}

// MouseEvent is delivered to view mouse callbacks. Delta is the movement since
// the previous drag event (zero for press and release).
type MouseEvent struct {
	Pos       Point // window coordinates
	Local     Point // receiving view's coordinates
	Delta     Point
	Button    MouseButton  // button captured at press time
	Buttons   MouseButtons // buttons held when the event was produced
	Modifiers KeyModifiers
}

// --- ID counter ---

// viewIDCounter is a plain counter (no atomic; arbor is single-threaded).
var viewIDCounter uint32

func nextViewID() uint32 {
	viewIDCounter++
	return viewIDCounter
}

// --- Flags ---

// ViewFlags controls resize propagation and input visibility of a view.
type ViewFlags uint32

const (
	ResizeWidth  ViewFlags = 1 << iota // width follows superview width changes
	ResizeHeight                       // height follows superview height changes
	Invisible                          // skipped by hit tests and updates
	IgnoreEvents                       // transparent to hit tests that honor transparency
)

// ResizeAll makes a view track its superview's size on both axes.
const ResizeAll = ResizeWidth | ResizeHeight

// FlagOp selects how SetFlags combines the given flags with the current ones.
type FlagOp uint8

const (
	OpSet  FlagOp = iota // replace
	OpOr                 // add
	OpAnd                // keep only the given flags
	OpNand               // clear the given flags
	OpXor                // toggle
)

// --- View ---

// View is the fundamental tree element: a frame in its superview's coordinate
// space plus an ordered list of subviews. Subviews are stored back to front;
// the last one is frontmost for hit testing.
//
// The tree does not own views. Removing a subview detaches it and nothing
// more; whoever created a view decides how long it lives.
type View struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	superview *View
	subviews  []*View

	frame Region
	flags ViewFlags

	// HitShape refines the opaque area inside the frame, in local coordinates.
	HitShape HitShape

	// routing views pass hit tests through to their subviews but are never
	// reported themselves.
	routing bool
	// host receives subview mutations addressed to this view.
	host *View
	// scroller is set on the view embedded in a ScrollView.
	scroller *ScrollView

	// Metadata
	UserData any
	EntityID uint32

	// Per-view callbacks (nil by default). Input callbacks return true when
	// they consume the event; otherwise it bubbles to the superview.
	OnKeyPress     func(KeyEvent) bool
	OnMouseWheel   func(WheelEvent) bool
	OnMouseDown    func(MouseEvent) bool
	OnMouseUp      func(MouseEvent) bool
	OnMouseDrag    func(MouseEvent) bool
	OnFrameChanged func(old Region)
	OnSizeChanged  func(old Size)
	OnUpdate       func(dt float32)
}

func viewDefaults(v *View, name string, frame Region) {
	v.ID = nextViewID()
	v.Name = name
	v.frame = frame
}

// NewView creates a detached view with the given frame.
func NewView(name string, frame Region) *View {
	v := &View{}
	viewDefaults(v, name, frame)
	return v
}

// --- Tree manipulation ---

// AddSubviewInFrontOfView inserts front immediately in front of back. A nil
// back places front frontmost. If front already has a superview it is removed
// from there first.
// Panics if front is nil, equals back, is an ancestor of this view, or if back
// is not a subview.
func (v *View) AddSubviewInFrontOfView(front, back *View) {
	if v.host != nil {
		v.host.AddSubviewInFrontOfView(front, back)
		return
	}
	v.insertSubview(front, back)
}

func (v *View) insertSubview(front, back *View) {
	if front == nil {
		panic("arbor: cannot add nil subview")
	}
	if front == back {
		panic("arbor: cannot insert a view in front of itself")
	}
	if isAncestor(front, v) {
		panic("arbor: adding subview would create a cycle")
	}
	if back != nil && back.superview != v {
		panic("arbor: reference view is not a subview")
	}
	if front.superview != nil {
		front.superview.removeSubviewByPtr(front)
	}
	front.superview = v

	index := len(v.subviews)
	if back != nil {
		index = v.indexOf(back) + 1
	}
	v.subviews = append(v.subviews, nil)
	copy(v.subviews[index+1:], v.subviews[index:])
	v.subviews[index] = front

	if globalDebug {
		debugCheckTreeDepth(front)
		debugCheckSubviewCount(v)
	}
}

// RemoveSubview detaches sub and returns it. The view is not destroyed.
// Returns nil if sub is not a subview.
func (v *View) RemoveSubview(sub *View) *View {
	if v.host != nil {
		return v.host.RemoveSubview(sub)
	}
	return v.detachSubview(sub)
}

func (v *View) detachSubview(sub *View) *View {
	if sub == nil || sub.superview != v {
		return nil
	}
	v.removeSubviewByPtr(sub)
	sub.superview = nil
	return sub
}

// RemoveFromSuperview detaches this view from its superview.
// No-op if this view has no superview.
func (v *View) RemoveFromSuperview() {
	if v.superview == nil {
		return
	}
	v.superview.detachSubview(v)
}

// Superview returns the view's direct parent, or nil.
func (v *View) Superview() *View {
	return v.superview
}

// Subviews returns the subview list, back to front. The returned slice MUST
// NOT be mutated by the caller.
func (v *View) Subviews() []*View {
	return v.subviews
}

// ScrollView returns the scroll view v is embedded in, or nil when v is a
// plain view.
func (v *View) ScrollView() *ScrollView {
	return v.scroller
}

// NumSubviews returns the number of direct subviews.
func (v *View) NumSubviews() int {
	return len(v.subviews)
}

// --- Frame ---

// Frame returns the view's region in superview coordinates.
func (v *View) Frame() Region {
	return v.frame
}

// Origin returns the frame origin.
func (v *View) Origin() Point {
	return v.frame.Origin()
}

// Dimensions returns the frame size.
func (v *View) Dimensions() Size {
	return v.frame.Dimensions()
}

// SetFrameOrigin moves the view within its superview.
func (v *View) SetFrameOrigin(p Point) {
	v.SetFrame(RegionFrom(p, v.frame.Dimensions()))
}

// SetFrameSize resizes the view, propagating the change to flagged subviews.
func (v *View) SetFrameSize(s Size) {
	v.SetFrame(RegionFrom(v.frame.Origin(), s))
}

// SetFrame replaces the frame. Size deltas are applied to subviews flagged
// ResizeWidth or ResizeHeight before OnSizeChanged fires. Setting an identical
// frame does nothing.
func (v *View) SetFrame(r Region) {
	old := v.frame
	if r == old {
		return
	}
	v.frame = r

	if r.W != old.W || r.H != old.H {
		dw, dh := r.W-old.W, r.H-old.H
		for _, sub := range v.subviews {
			sub.resizeWithSuperview(dw, dh)
		}
		if v.scroller != nil {
			v.scroller.Scroll(Point{})
		}
		if v.OnSizeChanged != nil {
			v.OnSizeChanged(old.Dimensions())
		}
	}
	if v.OnFrameChanged != nil {
		v.OnFrameChanged(old)
	}
}

func (v *View) resizeWithSuperview(dw, dh int) {
	s := v.frame.Dimensions()
	if v.flags&ResizeWidth != 0 {
		s.W = max(s.W+dw, 0)
	}
	if v.flags&ResizeHeight != 0 {
		s.H = max(s.H+dh, 0)
	}
	v.SetFrameSize(s)
}

// --- Flags ---

// Flags returns the current flag set.
func (v *View) Flags() ViewFlags {
	return v.flags
}

// SetFlags combines flags with the current set using op. Returns false, leaving
// the flags untouched, if op is unknown.
func (v *View) SetFlags(flags ViewFlags, op FlagOp) bool {
	switch op {
	case OpSet:
		v.flags = flags
	case OpOr:
		v.flags |= flags
	case OpAnd:
		v.flags &= flags
	case OpNand:
		v.flags &^= flags
	case OpXor:
		v.flags ^= flags
	default:
		return false
	}
	return true
}

// IsVisible reports whether the Invisible flag is clear.
func (v *View) IsVisible() bool {
	return v.flags&Invisible == 0
}

// --- Helpers ---

// isAncestor reports whether candidate is view or one of its ancestors.
func isAncestor(candidate, view *View) bool {
	for p := view; p != nil; p = p.superview {
		if p == candidate {
			return true
		}
	}
	return false
}

func (v *View) indexOf(sub *View) int {
	for i, s := range v.subviews {
		if s == sub {
			return i
		}
	}
	return -1
}

// removeSubviewByPtr removes sub from v.subviews without clearing sub.superview.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (v *View) removeSubviewByPtr(sub *View) {
	i := v.indexOf(sub)
	if i < 0 {
		return
	}
	copy(v.subviews[i:], v.subviews[i+1:])
	v.subviews[len(v.subviews)-1] = nil
	v.subviews = v.subviews[:len(v.subviews)-1]
}
