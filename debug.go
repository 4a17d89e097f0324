package tween

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-tick scheduler metrics.
// Only populated when the scheduler is in debug mode.
type debugStats struct {
	tickTime time.Duration
	active   int
	advanced int
	removed  int
}

// debugLog prints tick stats to the scheduler's output.
func (s *Scheduler) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.out,
		"[tween] tick: %v | active: %d | advanced: %d | removed: %d\n",
		stats.tickTime, stats.active, stats.advanced, stats.removed)
}

// globalDebug and globalDebugOut mirror the most recently set Scene debug
// flag and its scheduler's output, so that node operations (which lack a Scene
// pointer) can check and report cheaply.
var (
	globalDebug    bool
	globalDebugOut io.Writer = os.Stderr
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("tween debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(globalDebugOut, "[tween] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckActiveCount warns when the scheduler holds an unusual number of
// animations, which usually means tweens are started every frame without
// being stopped.
const debugMaxActive = 4096

func debugCheckActiveCount(s *Scheduler) {
	if n := len(s.anims); n > debugMaxActive {
		s.warnf("%d active animations (threshold %d)", n, debugMaxActive)
	}
}
