package arbor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Config is applied to the scene before the loop starts when non-nil.
	Config *Config
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	w, h  int
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.scene.debug {
		return
	}
	drawOutlines(screen, g.scene.root)
	if f := g.scene.Focus(); f != g.scene.root {
		b := f.VisibleBounds()
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, focusColor, false)
	}
	ebitenutil.DebugPrint(screen, debugHUD(g.scene))
}

// debugHUD is the text drawn in the top-left corner in debug mode.
func debugHUD(s *Scene) string {
	f := s.Focus()
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nfocus: %s %v",
		ebiten.ActualFPS(), ebiten.ActualTPS(), f.Name, f.WorldFrame())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.scene.root.SetFrameSize(Size{outsideWidth, outsideHeight})
	}
	return g.w, g.h
}

// Run opens a resizable window and drives the scene until the window closes.
// The root view tracks the window size.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Config != nil {
		if err := scene.ApplyConfig(cfg.Config); err != nil {
			return err
		}
	}
	scene.root.SetFrameSize(Size{cfg.Width, cfg.Height})
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&game{scene: scene, w: cfg.Width, h: cfg.Height})
}

var (
	outlineColor = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	focusColor   = color.RGBA{0xff, 0xc1, 0x07, 0xff}
)

// drawOutlines strokes the visible bounds of every view. Debug mode only.
func drawOutlines(screen *ebiten.Image, v *View) {
	if !v.IsVisible() {
		return
	}
	b := v.VisibleBounds()
	if !b.IsEmpty() && !v.routing {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, outlineColor, false)
	}
	for _, sub := range v.subviews {
		drawOutlines(screen, sub)
	}
}
