package arbor

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the content offset X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// AnimateScrollTo tweens the content offset to offset over duration seconds.
// Every frame step goes through Scroll, so the offset stays clamped even if
// the target lies outside the scrollable range. Input-driven scrolling cancels
// the animation. A non-positive duration scrolls immediately.
func (sv *ScrollView) AnimateScrollTo(offset Point, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		sv.anim = nil
		sv.ScrollTo(offset)
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	from := sv.content.Origin()
	sv.anim = &scrollAnim{
		tweenX: gween.New(float32(from.X), float32(offset.X), duration, easeFn),
		tweenY: gween.New(float32(from.Y), float32(offset.Y), duration, easeFn),
	}
}

// Animating reports whether an AnimateScrollTo is in progress.
func (sv *ScrollView) Animating() bool {
	return sv.anim != nil
}

// update advances the scroll animation. Installed as the view's OnUpdate.
func (sv *ScrollView) update(dt float32) {
	a := sv.anim
	if a == nil {
		return
	}
	target := sv.content.Origin()
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		target.X = int(math.Round(float64(val)))
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		target.Y = int(math.Round(float64(val)))
		a.doneY = done
	}
	if a.doneX && a.doneY {
		sv.anim = nil
	}
	sv.ScrollTo(target)
}

// easings maps config names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-sine":  ease.InOutSine,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
}

// EaseByName returns the easing function registered under name.
func EaseByName(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}
