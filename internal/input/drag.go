package input

// DragState is the horizontal pointer drag shared between input polling
// and the per-frame rotation update.
type DragState struct {
	PointerX float32 // last sampled horizontal pointer position
	ShiftX   float32 // old minus new pointer X since the last move
	Pressed  bool
}

// Press starts a drag at x.
func (d *DragState) Press(x float32) {
	d.PointerX = x
	d.Pressed = true
}

// Move records the horizontal delta while pressed. Moves without a press
// are ignored.
func (d *DragState) Move(x float32) {
	if !d.Pressed {
		return
	}
	d.ShiftX = d.PointerX - x
	d.PointerX = x
}

// Release ends the drag and clears the pending delta.
func (d *DragState) Release() {
	d.ShiftX = 0
	d.Pressed = false
}

// TakeShift returns the pending delta and zeroes it so it is only
// consumed by one frame.
func (d *DragState) TakeShift() float32 {
	s := d.ShiftX
	d.ShiftX = 0
	return s
}
