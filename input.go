package arbor

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const defaultDragDeadZone = 4 // pixels

// EventContext carries event data to scene-level observers.
type EventContext struct {
	Type      EventType
	View      *View // target view; nil when the pointer is over nothing
	EntityID  uint32
	UserData  any
	Pos       Point // window coordinates (zero for key events)
	Local     Point // target view coordinates
	Delta     Point
	Key       Key
	Rune      rune
	Button    MouseButton
	Buttons   MouseButtons
	Modifiers KeyModifiers
	Handled   bool // whether a view consumed the event
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	start    Point
	last     Point
	target   *View
	dragging bool
	button   MouseButton // button captured at press time
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(EventContext)
}

type handlerRegistry struct {
	byType [eventTypeCount][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. It is safe to call
// from inside a callback; observers of the event being fired still run.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.byType[h.event]
	for i := range s {
		if s[i].id == h.id {
			// Fresh backing array: fire may be ranging over the old one.
			h.reg.byType[h.event] = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

func (s *Scene) on(event EventType, fn func(EventContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.byType[event] = append(s.handlers.byType[event], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: event}
}

// --- Scene-level event registration ---

// OnKey registers a scene-level observer for dispatched key presses.
func (s *Scene) OnKey(fn func(EventContext)) CallbackHandle {
	return s.on(EventKeyPress, fn)
}

// OnWheel registers a scene-level observer for dispatched wheel movement.
func (s *Scene) OnWheel(fn func(EventContext)) CallbackHandle {
	return s.on(EventMouseWheel, fn)
}

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(EventContext)) CallbackHandle {
	return s.on(EventPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(EventContext)) CallbackHandle {
	return s.on(EventPointerUp, fn)
}

// OnPointerMove registers a scene-level callback for hover movement.
func (s *Scene) OnPointerMove(fn func(EventContext)) CallbackHandle {
	return s.on(EventPointerMove, fn)
}

// OnDragStart registers a scene-level callback for drag start events.
func (s *Scene) OnDragStart(fn func(EventContext)) CallbackHandle {
	return s.on(EventDragStart, fn)
}

// OnDrag registers a scene-level callback for drag events.
func (s *Scene) OnDrag(fn func(EventContext)) CallbackHandle {
	return s.on(EventDrag, fn)
}

// OnDragEnd registers a scene-level callback for drag end events.
func (s *Scene) OnDragEnd(fn func(EventContext)) CallbackHandle {
	return s.on(EventDragEnd, fn)
}

// --- Dispatch ---

// bubble offers an event to v and then each of its superviews until one
// consumes it. Returns the consuming view, or nil.
func bubble(v *View, try func(*View) bool) *View {
	for ; v != nil; v = v.superview {
		if try(v) {
			return v
		}
	}
	return nil
}

// DispatchKey delivers a key press to the focused view. Unhandled presses
// bubble up through superviews. Returns whether any view consumed it.
func (s *Scene) DispatchKey(ev KeyEvent) bool {
	target := s.Focus()
	by := bubble(target, func(v *View) bool {
		if v.OnKeyPress != nil && v.OnKeyPress(ev) {
			return true
		}
		return v.scroller != nil && v.scroller.HandleKeyPress(ev)
	})
	s.fire(EventContext{
		Type: EventKeyPress, View: target,
		Key: ev.Key, Rune: ev.Rune, Modifiers: ev.Modifiers,
		Handled: by != nil,
	})
	return by != nil
}

// DispatchWheel delivers wheel movement to the view under the pointer,
// bubbling until consumed. Returns whether any view consumed it.
func (s *Scene) DispatchWheel(ev WheelEvent) bool {
	target := s.HitTest(ev.Pos)
	by := bubble(target, func(v *View) bool {
		if v.OnMouseWheel != nil && v.OnMouseWheel(ev) {
			return true
		}
		return v.scroller != nil && v.scroller.HandleMouseWheel(ev)
	})
	s.fire(EventContext{
		Type: EventMouseWheel, View: target,
		Pos: ev.Pos, Delta: ev.Delta, Modifiers: ev.Modifiers,
		Handled: by != nil,
	})
	return by != nil
}

// DispatchPointer runs the pointer state machine for one pointer sample.
// Backends report every position change and every change of held buttons.
func (s *Scene) DispatchPointer(ev PointerEvent) {
	ps := &s.pointer
	pressed := ev.Buttons != 0
	pos := ev.Pos

	switch {
	case pressed && !ps.down:
		// Just pressed: capture button and target for the whole interaction.
		ps.down = true
		ps.button = ev.Buttons.primary()
		ps.start = pos
		ps.last = pos
		ps.target = s.HitTest(pos)
		ps.dragging = false
		if ps.target != nil {
			s.focus = ps.target
		}
		me := MouseEvent{Pos: pos, Button: ps.button, Buttons: ev.Buttons, Modifiers: ev.Modifiers}
		by := s.bubbleMouse(ps.target, me, func(v *View) func(MouseEvent) bool { return v.OnMouseDown })
		s.firePointer(EventPointerDown, ps.target, me, by != nil)

	case !pressed && ps.down:
		me := MouseEvent{Pos: pos, Delta: pos.Sub(ps.last), Button: ps.button, Buttons: ev.Buttons, Modifiers: ev.Modifiers}
		if ps.dragging {
			s.firePointer(EventDragEnd, ps.target, me, false)
		}
		by := s.bubbleMouse(ps.target, me, func(v *View) func(MouseEvent) bool { return v.OnMouseUp })
		s.firePointer(EventPointerUp, ps.target, me, by != nil)
		ps.down = false
		ps.target = nil
		ps.dragging = false
		ps.last = pos

	case pressed && ps.down:
		if pos == ps.last {
			return
		}
		delta := pos.Sub(ps.last)
		if !ps.dragging {
			d := pos.Sub(ps.start)
			if d.X*d.X+d.Y*d.Y <= s.dragDeadZone*s.dragDeadZone {
				ps.last = pos
				return
			}
			// Deliver the movement absorbed by the dead zone with the first drag.
			ps.dragging = true
			delta = d
			s.firePointer(EventDragStart, ps.target, MouseEvent{
				Pos: pos, Delta: delta, Button: ps.button, Buttons: ev.Buttons, Modifiers: ev.Modifiers,
			}, false)
		}
		me := MouseEvent{Pos: pos, Delta: delta, Button: ps.button, Buttons: ev.Buttons, Modifiers: ev.Modifiers}
		by := s.bubbleMouse(ps.target, me, (*View).dragHandler)
		s.firePointer(EventDrag, ps.target, me, by != nil)
		ps.last = pos

	default:
		// Hover move.
		if pos != ps.last {
			s.firePointer(EventPointerMove, s.HitTest(pos), MouseEvent{Pos: pos, Modifiers: ev.Modifiers}, false)
			ps.last = pos
		}
	}
}

// bubbleMouse offers a mouse event to target and its superviews through the
// callback pick selects, localizing the position for each receiver.
func (s *Scene) bubbleMouse(target *View, me MouseEvent, pick func(*View) func(MouseEvent) bool) *View {
	return bubble(target, func(v *View) bool {
		fn := pick(v)
		if fn == nil {
			return false
		}
		me.Local = v.WorldToLocal(me.Pos)
		return fn(me)
	})
}

// dragHandler returns the drag callback for v. On a scroll view the user's
// OnMouseDrag runs first and the drag scrolls only if it was not consumed.
func (v *View) dragHandler() func(MouseEvent) bool {
	if v.scroller == nil {
		return v.OnMouseDrag
	}
	user, sv := v.OnMouseDrag, v.scroller
	return func(me MouseEvent) bool {
		if user != nil && user(me) {
			return true
		}
		return sv.HandleMouseDrag(me)
	}
}

func (s *Scene) firePointer(t EventType, target *View, me MouseEvent, handled bool) {
	s.fire(EventContext{
		Type: t, View: target,
		Pos: me.Pos, Delta: me.Delta,
		Button: me.Button, Buttons: me.Buttons, Modifiers: me.Modifiers,
		Handled: handled,
	})
}

// fire runs scene-level observers and forwards to the ECS bridge.
func (s *Scene) fire(ctx EventContext) {
	if ctx.View != nil {
		ctx.EntityID = ctx.View.EntityID
		ctx.UserData = ctx.View.UserData
		if ctx.Type != EventKeyPress {
			ctx.Local = ctx.View.WorldToLocal(ctx.Pos)
		}
	}
	s.stats.events++
	if ctx.Handled {
		s.stats.handled++
	}
	for _, h := range s.handlers.byType[ctx.Type] {
		h.fn(ctx)
	}
	s.emitInteractionEvent(ctx)
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(ctx EventContext) {
	if s.store == nil || ctx.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:      ctx.Type,
		EntityID:  ctx.EntityID,
		Pos:       ctx.Pos,
		Local:     ctx.Local,
		Delta:     ctx.Delta,
		Key:       ctx.Key,
		Rune:      ctx.Rune,
		Button:    ctx.Button,
		Modifiers: ctx.Modifiers,
		Handled:   ctx.Handled,
	})
}

// --- Live input (Ebitengine) ---

// ebitenKeys maps the keys views understand. Printable keys arrive through
// ebiten.AppendInputChars instead.
var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyPageUp:     KeyPageUp,
	ebiten.KeyPageDown:   KeyPageDown,
	ebiten.KeyHome:       KeyHome,
	ebiten.KeyEnd:        KeyEnd,
	ebiten.KeyEnter:      KeyEnter,
	ebiten.KeyEscape:     KeyEscape,
	ebiten.KeyTab:        KeyTab,
	ebiten.KeyBackspace:  KeyBackspace,
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// readButtons reads the held mouse buttons.
func readButtons() MouseButtons {
	var b MouseButtons
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		b |= ButtonMask(MouseButtonLeft)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		b |= ButtonMask(MouseButtonRight)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		b |= ButtonMask(MouseButtonMiddle)
	}
	return b
}

// processInput polls Ebitengine once per frame and dispatches keys, then
// wheel movement, then the pointer sample, in that order.
func (s *Scene) processInput() {
	mods := readModifiers()

	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		if key, ok := ebitenKeys[k]; ok {
			s.DispatchKey(KeyEvent{Key: key, Modifiers: mods})
		}
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		s.DispatchKey(KeyEvent{Key: KeyRune, Rune: r, Modifiers: mods})
	}

	cx, cy := ebiten.CursorPosition()
	pos := Point{cx, cy}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		s.DispatchWheel(WheelEvent{
			Pos:       pos,
			Delta:     Point{int(math.Round(wx * float64(s.wheelStep))), int(math.Round(wy * float64(s.wheelStep)))},
			Modifiers: mods,
		})
	}

	s.DispatchPointer(PointerEvent{Pos: pos, Buttons: readButtons(), Modifiers: mods})
}
