package arbor

// syntheticEvent is a single injected input event. Exactly one of the kinds
// is set. Coordinates are window coordinates, identical to live input.
type syntheticEvent struct {
	kind    syntheticKind
	pointer PointerEvent
	key     KeyEvent
	wheel   WheelEvent
}

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticKey
	syntheticWheel
)

// InjectPress queues a left-button press at (x, y). The event is consumed on
// the next frame's Update.
func (s *Scene) InjectPress(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind:    syntheticPointer,
		pointer: PointerEvent{Pos: Point{x, y}, Buttons: ButtonMask(MouseButtonLeft)},
	})
}

// InjectMove queues a pointer move to (x, y) with the left button held. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind:    syntheticPointer,
		pointer: PointerEvent{Pos: Point{x, y}, Buttons: ButtonMask(MouseButtonLeft)},
	})
}

// InjectRelease queues a pointer release at (x, y).
func (s *Scene) InjectRelease(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind:    syntheticPointer,
		pointer: PointerEvent{Pos: Point{x, y}},
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y int) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at from, frames-2 held moves
// linearly interpolated so that the last one lands on to, and release at to.
// The total sequence consumes frames frames. Minimum frames is 3.
func (s *Scene) InjectDrag(from, to Point, frames int) {
	if frames < 3 {
		frames = 3
	}
	s.InjectPress(from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := from.X + (to.X-from.X)*i/steps
		y := from.Y + (to.Y-from.Y)*i/steps
		s.InjectMove(x, y)
	}
	s.InjectRelease(to.X, to.Y)
}

// InjectKey queues a key press.
func (s *Scene) InjectKey(key Key) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticKey,
		key:  KeyEvent{Key: key},
	})
}

// InjectWheel queues wheel movement of delta at (x, y).
func (s *Scene) InjectWheel(x, y int, delta Point) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind:  syntheticWheel,
		wheel: WheelEvent{Pos: Point{x, y}, Delta: delta},
	})
}

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (live input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticKey:
		s.DispatchKey(evt.key)
	case syntheticWheel:
		s.DispatchWheel(evt.wheel)
	default:
		s.DispatchPointer(evt.pointer)
	}
	return true
}
