package ph

// Layer is a unit of per-frame behavior managed by a LayerManager.
//
// Update and every input handler return a pass-through flag: true lets the
// tick or event continue to the layers beneath, false consumes it.
//
// Layers are compared by identity with ==. Implementations MUST be pointer
// types (or otherwise comparable): the LayerManager panics with a runtime
// error when a band holds a value whose dynamic type is not comparable, such
// as a struct containing a slice or map. Two distinct pointers are distinct
// layers even when the values they point to are equal.
type Layer interface {
	Draw(s Surface)
	Update(dt float64) bool

	HandleLayerAdded()
	HandleLayerRemoved()

	HandleMouseMoveClientCoords(x, y float64)
	HandleMouseMove() bool
	HandleClick(button MouseButton) bool
	HandleDoubleClick() bool
	HandleMouseDown(button MouseButton) bool
	HandleMouseUp(button MouseButton) bool
	HandleKeyDown(e KeyEvent) bool
	HandleKeyUp(e KeyEvent) bool
}

// BaseLayer implements every Layer method as a pass-through no-op.
// Embed it and override only the capabilities a layer needs.
type BaseLayer struct{}

func (BaseLayer) Draw(Surface)                             {}
func (BaseLayer) Update(float64) bool                      { return true }
func (BaseLayer) HandleLayerAdded()                        {}
func (BaseLayer) HandleLayerRemoved()                      {}
func (BaseLayer) HandleMouseMoveClientCoords(_, _ float64) {}
func (BaseLayer) HandleMouseMove() bool                    { return true }
func (BaseLayer) HandleClick(MouseButton) bool             { return true }
func (BaseLayer) HandleDoubleClick() bool                  { return true }
func (BaseLayer) HandleMouseDown(MouseButton) bool         { return true }
func (BaseLayer) HandleMouseUp(MouseButton) bool           { return true }
func (BaseLayer) HandleKeyDown(KeyEvent) bool              { return true }
func (BaseLayer) HandleKeyUp(KeyEvent) bool                { return true }

var _ Layer = BaseLayer{}
