// Package term drives an arbor scene from a tcell terminal screen.
//
// One terminal cell is one unit of arbor coordinates. Arrow and navigation
// keys, printable runes, wheel notches and button masks are translated into
// Scene dispatch calls; resize events resize the root view.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/arbor"
)

// DefaultWheelStep is the number of cells one wheel notch scrolls.
const DefaultWheelStep = 3

var keys = map[tcell.Key]arbor.Key{
	tcell.KeyUp:         arbor.KeyUp,
	tcell.KeyDown:       arbor.KeyDown,
	tcell.KeyLeft:       arbor.KeyLeft,
	tcell.KeyRight:      arbor.KeyRight,
	tcell.KeyPgUp:       arbor.KeyPageUp,
	tcell.KeyPgDn:       arbor.KeyPageDown,
	tcell.KeyHome:       arbor.KeyHome,
	tcell.KeyEnd:        arbor.KeyEnd,
	tcell.KeyEnter:      arbor.KeyEnter,
	tcell.KeyEscape:     arbor.KeyEscape,
	tcell.KeyTab:        arbor.KeyTab,
	tcell.KeyBackspace:  arbor.KeyBackspace,
	tcell.KeyBackspace2: arbor.KeyBackspace,
}

// Translator converts tcell events into scene dispatch calls.
type Translator struct {
	// WheelStep is the number of cells per wheel notch. Zero means DefaultWheelStep.
	WheelStep int
}

// Dispatch routes ev into scene and reports whether a view consumed it.
// Pointer samples and resizes always report false.
func (t *Translator) Dispatch(scene *arbor.Scene, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		ke, ok := TranslateKey(ev)
		if !ok {
			return false
		}
		return scene.DispatchKey(ke)
	case *tcell.EventMouse:
		return t.dispatchMouse(scene, ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		scene.Root().SetFrameSize(arbor.Size{W: w, H: h})
	}
	return false
}

func (t *Translator) dispatchMouse(scene *arbor.Scene, ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	pos := arbor.Point{X: x, Y: y}
	mods := translateMods(ev.Modifiers())
	mask := ev.Buttons()

	var handled bool
	if delta := t.wheelDelta(mask); !delta.IsZero() {
		handled = scene.DispatchWheel(arbor.WheelEvent{Pos: pos, Delta: delta, Modifiers: mods})
	}
	scene.DispatchPointer(arbor.PointerEvent{Pos: pos, Buttons: translateButtons(mask), Modifiers: mods})
	return handled
}

func (t *Translator) wheelDelta(mask tcell.ButtonMask) arbor.Point {
	step := t.WheelStep
	if step == 0 {
		step = DefaultWheelStep
	}
	var d arbor.Point
	if mask&tcell.WheelUp != 0 {
		d.Y += step
	}
	if mask&tcell.WheelDown != 0 {
		d.Y -= step
	}
	if mask&tcell.WheelLeft != 0 {
		d.X += step
	}
	if mask&tcell.WheelRight != 0 {
		d.X -= step
	}
	return d
}

// TranslateKey converts a tcell key event. Returns false for keys views do
// not understand.
func TranslateKey(ev *tcell.EventKey) (arbor.KeyEvent, bool) {
	mods := translateMods(ev.Modifiers())
	if ev.Key() == tcell.KeyRune {
		return arbor.KeyEvent{Key: arbor.KeyRune, Rune: ev.Rune(), Modifiers: mods}, true
	}
	k, ok := keys[ev.Key()]
	if !ok {
		return arbor.KeyEvent{}, false
	}
	return arbor.KeyEvent{Key: k, Modifiers: mods}, true
}

func translateButtons(mask tcell.ButtonMask) arbor.MouseButtons {
	var b arbor.MouseButtons
	if mask&tcell.ButtonPrimary != 0 {
		b |= arbor.ButtonMask(arbor.MouseButtonLeft)
	}
	if mask&tcell.ButtonSecondary != 0 {
		b |= arbor.ButtonMask(arbor.MouseButtonRight)
	}
	if mask&tcell.ButtonMiddle != 0 {
		b |= arbor.ButtonMask(arbor.MouseButtonMiddle)
	}
	return b
}

func translateMods(m tcell.ModMask) arbor.KeyModifiers {
	var mods arbor.KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= arbor.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= arbor.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= arbor.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= arbor.ModMeta
	}
	return mods
}
