package ph

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing metrics. Only populated when the run
// loop's manager is in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	layerCount int
	consumed   bool
}

// debugStatsInterval is how many ticks pass between two stats lines.
const debugStatsInterval = 120

// debugLog prints timing stats to stderr.
func (m *LayerManager) debugLog(stats debugStats) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[ph] update: %v | draw: %v | layers: %d | tick consumed: %v\n",
		stats.updateTime, stats.drawTime, stats.layerCount, stats.consumed)
}

func (m *LayerManager) debugLayer(what string, l Layer) {
	_, _ = fmt.Fprintf(os.Stderr, "[ph] layer %s: %s\n", what, layerName(l))
}

func (m *LayerManager) debugConsumed(event string, l Layer) {
	_, _ = fmt.Fprintf(os.Stderr, "[ph] %s consumed by %s\n", event, layerName(l))
}

// layerName returns the layer's Name() if it has one, otherwise its type.
func layerName(l Layer) string {
	if n, ok := l.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", l)
}
