package ph

import "slices"

// LayerManager owns the active layers, partitioned into bottom, main and top
// bands, and dispatches per-frame update/draw passes and input events.
//
// The active sequence is always bottom ++ main ++ top. Draw walks it first to
// last; Update and input dispatch walk it last to first so the top-most layer
// gets first refusal.
type LayerManager struct {
	bottom []Layer
	main   []Layer
	top    []Layer
	active []Layer

	pointerX, pointerY float64

	// notifying is set while lifecycle hooks run; band changes made by a hook
	// mark the sequence dirty and are applied once the current hooks finish.
	notifying bool
	dirty     bool

	debug bool
}

// NewLayerManager creates a manager with no layers.
func NewLayerManager() *LayerManager {
	return &LayerManager{}
}

// SetBottomLayers replaces the bottom band.
func (m *LayerManager) SetBottomLayers(layers ...Layer) {
	m.bottom = slices.Clone(layers)
	m.rebuild()
}

// SetMainLayers replaces the main band.
func (m *LayerManager) SetMainLayers(layers ...Layer) {
	m.main = slices.Clone(layers)
	m.rebuild()
}

// SetTopLayers replaces the top band.
func (m *LayerManager) SetTopLayers(layers ...Layer) {
	m.top = slices.Clone(layers)
	m.rebuild()
}

// Layers returns the active sequence, bottom band first. The returned slice
// MUST NOT be mutated.
func (m *LayerManager) Layers() []Layer {
	return m.active
}

// Pointer returns the last pointer position passed to HandleMouseMove.
func (m *LayerManager) Pointer() (x, y float64) {
	return m.pointerX, m.pointerY
}

// rebuild recomputes the active sequence and fires lifecycle hooks. Removed
// notifications fire before added ones. A fresh slice is allocated every time
// so a dispatch pass already iterating the old sequence is unaffected.
//
// A hook that changes a band does not re-enter: the change is picked up by
// another round once every hook of the current one has fired, so each round
// diffs against a sequence whose layers were all notified.
func (m *LayerManager) rebuild() {
	if m.notifying {
		m.dirty = true
		return
	}
	m.notifying = true
	defer func() { m.notifying = false }()

	for {
		m.dirty = false
		prev := m.active
		next := make([]Layer, 0, len(m.bottom)+len(m.main)+len(m.top))
		next = append(next, m.bottom...)
		next = append(next, m.main...)
		next = append(next, m.top...)
		m.active = next
		m.notify(prev, next)
		if !m.dirty {
			return
		}
	}
}

func (m *LayerManager) notify(prev, next []Layer) {
	for i, l := range prev {
		if slices.Contains(next, l) || slices.Contains(prev[:i], l) {
			continue
		}
		if m.debug {
			m.debugLayer("removed", l)
		}
		l.HandleLayerRemoved()
	}
	for i, l := range next {
		if slices.Contains(prev, l) || slices.Contains(next[:i], l) {
			continue
		}
		if m.debug {
			m.debugLayer("added", l)
		}
		l.HandleLayerAdded()
	}
}

// Draw draws every active layer, bottom band first. Draw never short-circuits.
func (m *LayerManager) Draw(s Surface) {
	for _, l := range m.active {
		l.Draw(s)
	}
}

// Update ticks active layers top-most first, stopping at the first layer that
// returns false. It reports whether a layer consumed the tick.
func (m *LayerManager) Update(dt float64) bool {
	layers := m.active
	for i := len(layers) - 1; i >= 0; i-- {
		if !layers[i].Update(dt) {
			return true
		}
	}
	return false
}

// dispatch routes fn through the active layers top-most first. It reports
// whether a layer consumed the event.
func (m *LayerManager) dispatch(event string, fn func(Layer) bool) bool {
	layers := m.active
	for i := len(layers) - 1; i >= 0; i-- {
		if !fn(layers[i]) {
			if m.debug {
				m.debugConsumed(event, layers[i])
			}
			return true
		}
	}
	return false
}

// broadcastPointer hands the current pointer position to every layer, then
// notifies every layer of movement. Neither broadcast short-circuits.
func (m *LayerManager) broadcastPointer() {
	layers := m.active
	for _, l := range layers {
		l.HandleMouseMoveClientCoords(m.pointerX, m.pointerY)
	}
	for _, l := range layers {
		l.HandleMouseMove()
	}
}

// HandleMouseMove records the pointer position (already in simulation space)
// and broadcasts it to every layer. The broadcast cannot be consumed.
func (m *LayerManager) HandleMouseMove(x, y float64) {
	m.pointerX, m.pointerY = x, y
	m.broadcastPointer()
}

// HandleClick dispatches a click and reports whether a layer consumed it.
func (m *LayerManager) HandleClick(button MouseButton) bool {
	m.broadcastPointer()
	return m.dispatch("click", func(l Layer) bool { return l.HandleClick(button) })
}

// HandleDoubleClick dispatches a double click and reports whether a layer
// consumed it.
func (m *LayerManager) HandleDoubleClick() bool {
	m.broadcastPointer()
	return m.dispatch("dblclick", func(l Layer) bool { return l.HandleDoubleClick() })
}

// HandleMouseDown dispatches a button press and reports whether a layer
// consumed it.
func (m *LayerManager) HandleMouseDown(button MouseButton) bool {
	m.broadcastPointer()
	return m.dispatch("mousedown", func(l Layer) bool { return l.HandleMouseDown(button) })
}

// HandleMouseUp dispatches a button release and reports whether a layer
// consumed it.
func (m *LayerManager) HandleMouseUp(button MouseButton) bool {
	m.broadcastPointer()
	return m.dispatch("mouseup", func(l Layer) bool { return l.HandleMouseUp(button) })
}

// HandleKeyDown dispatches a key press and reports whether a layer consumed it.
func (m *LayerManager) HandleKeyDown(e KeyEvent) bool {
	return m.dispatch("keydown", func(l Layer) bool { return l.HandleKeyDown(e) })
}

// HandleKeyUp dispatches a key release and reports whether a layer consumed it.
func (m *LayerManager) HandleKeyUp(e KeyEvent) bool {
	return m.dispatch("keyup", func(l Layer) bool { return l.HandleKeyUp(e) })
}

// SetDebugMode enables or disables lifecycle and dispatch tracing on stderr.
func (m *LayerManager) SetDebugMode(enabled bool) {
	m.debug = enabled
}
