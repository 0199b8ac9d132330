package arbor

import "fmt"

// Point is an integer position or offset. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width/height pair.
type Size struct {
	W, H int
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// EventType identifies a kind of input event observed by the scene.
type EventType uint8

const (
	EventKeyPress    EventType = iota // fires when a key press is dispatched
	EventMouseWheel                   // fires when a wheel delta is dispatched
	EventPointerDown                  // fires when a pointer button is pressed
	EventPointerUp                    // fires when all pointer buttons are released
	EventPointerMove                  // fires when the pointer moves with no button held
	EventDragStart                    // fires when held movement exceeds the drag dead zone
	EventDrag                         // fires for every held movement once dragging
	EventDragEnd                      // fires when the pointer is released after dragging

	eventTypeCount
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// MouseButtonAction is the button that drags content in scroll views.
const MouseButtonAction = MouseButtonLeft

// MouseButtons is a bitmask of currently held mouse buttons.
type MouseButtons uint8

// ButtonMask returns the mask bit for a single button.
func ButtonMask(b MouseButton) MouseButtons {
	return 1 << b
}

// Has reports whether button b is held.
func (m MouseButtons) Has(b MouseButton) bool {
	return m&ButtonMask(b) != 0
}

// primary returns the highest-priority held button (left, right, middle).
func (m MouseButtons) primary() MouseButton {
	switch {
	case m.Has(MouseButtonLeft):
		return MouseButtonLeft
	case m.Has(MouseButtonRight):
		return MouseButtonRight
	default:
		return MouseButtonMiddle
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key identifies a non-printable key, or KeyRune for text input.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyRune // printable character, see KeyEvent.Rune
)

var keyNames = map[Key]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyRune:      "rune",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey returns the key with the given lowercase name, as produced by
// Key.String.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return KeyUnknown, false
}
