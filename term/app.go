package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/arbor"
)

// App runs a scene against a tcell screen.
type App struct {
	Screen tcell.Screen
	Scene  *arbor.Scene
	Translator

	// Quit reports whether a key ends the loop. nil means Ctrl-C.
	Quit func(*tcell.EventKey) bool
	// Draw paints the screen after every event. Optional.
	Draw func(tcell.Screen, *arbor.Scene)
}

// Run initializes the screen, enables the mouse, and processes events until
// Quit returns true. The screen is finalized on return.
func (a *App) Run() error {
	if err := a.Screen.Init(); err != nil {
		return err
	}
	defer a.Screen.Fini()
	a.Screen.EnableMouse()

	w, h := a.Screen.Size()
	a.Scene.Root().SetFrameSize(arbor.Size{W: w, H: h})

	quit := a.Quit
	if quit == nil {
		quit = func(ev *tcell.EventKey) bool { return ev.Key() == tcell.KeyCtrlC }
	}

	last := time.Now()
	for {
		a.redraw()

		ev := a.Screen.PollEvent()
		if ev == nil {
			return nil
		}
		if key, ok := ev.(*tcell.EventKey); ok && quit(key) {
			return nil
		}
		a.Dispatch(a.Scene, ev)

		now := time.Now()
		a.Scene.Advance(float32(now.Sub(last).Seconds()))
		last = now
	}
}

func (a *App) redraw() {
	if a.Draw == nil {
		return
	}
	a.Screen.Clear()
	a.Draw(a.Screen, a.Scene)
	a.Screen.Show()
}
