package arbor

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOutput receives debug-mode log lines.
var debugOutput io.Writer = os.Stderr

// SetDebugOutput redirects debug-mode logging. nil restores os.Stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOutput = w
}

// debugStats holds per-frame input metrics.
// Only logged when Scene.debug is true.
type debugStats struct {
	events     int
	handled    int
	updateTime time.Duration
}

// debugLog prints per-frame stats when any event was dispatched.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug || stats.events == 0 {
		return
	}
	_, _ = fmt.Fprintf(debugOutput,
		"[arbor] events: %d | handled: %d | update: %v\n",
		stats.events, stats.handled, stats.updateTime)
}

// debugCheckDisposedScroll panics with a descriptive message when a disposed
// scroll view is scrolled. Only called in debug mode.
func debugCheckDisposedScroll(sv *ScrollView, op string) {
	if sv.disposed {
		panic(fmt.Sprintf("arbor debug: %s on disposed scroll view %q (ID %d)", op, sv.Name, sv.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(v *View) {
	depth := 0
	for p := v; p != nil; p = p.superview {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOutput, "[arbor] warning: tree depth %d exceeds %d (view %q)\n",
			depth, debugMaxTreeDepth, v.Name)
	}
}

// debugCheckSubviewCount warns if a view has more than 1000 subviews.
const debugMaxSubviewCount = 1000

func debugCheckSubviewCount(v *View) {
	if len(v.subviews) > debugMaxSubviewCount {
		_, _ = fmt.Fprintf(debugOutput, "[arbor] warning: view %q has %d subviews (threshold %d)\n",
			v.Name, len(v.subviews), debugMaxSubviewCount)
	}
}
