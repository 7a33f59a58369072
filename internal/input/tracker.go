package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Device is a snapshot source for pointer state. The raylib window is the
// only production implementation; tests substitute their own.
type Device interface {
	MouseDown() bool
	MouseX() float32
	CursorInWindow() bool
	TouchCount() int
	TouchX() float32
}

// Tracker turns per-frame device samples into DragState press, move and
// release transitions.
type Tracker struct {
	// Blocked, when set, vetoes new presses. Drags already under way are
	// not affected.
	Blocked func() bool

	dev          Device
	mouseDown    bool
	mouseDrags   bool
	touchDown    bool
	touchIgnored bool
}

func NewTracker(dev Device) *Tracker {
	if dev == nil {
		dev = RaylibDevice{}
	}
	return &Tracker{dev: dev}
}

// Poll samples the device once and updates d.
func (t *Tracker) Poll(d *DragState) {
	t.pollTouch(d)
	if t.touchDown {
		return
	}
	t.pollMouse(d)
}

func (t *Tracker) pollMouse(d *DragState) {
	down := t.dev.MouseDown()
	x := t.dev.MouseX()

	switch {
	case down && !t.mouseDown:
		// Presses only start a drag inside the scene; moves and releases
		// are tracked everywhere once it has started.
		if t.dev.CursorInWindow() && !t.blocked() {
			d.Press(x)
			t.mouseDrags = true
		}
	case down && t.mouseDrags:
		if x != d.PointerX {
			d.Move(x)
		}
	case !down && t.mouseDown && t.mouseDrags:
		d.Release()
		t.mouseDrags = false
	}
	t.mouseDown = down
}

func (t *Tracker) pollTouch(d *DragState) {
	down := t.dev.TouchCount() > 0

	switch {
	case down && !t.touchDown:
		if t.blocked() {
			// Held on a blocked spot: stay out of the drag until lifted.
			t.touchDown = true
			t.touchIgnored = true
			return
		}
		d.Press(t.dev.TouchX())
	case down && t.touchIgnored:
	case down:
		if x := t.dev.TouchX(); x != d.PointerX {
			d.Move(x)
		}
	case t.touchDown:
		if !t.touchIgnored {
			d.Release()
		}
		t.touchIgnored = false
	}
	t.touchDown = down
}

func (t *Tracker) blocked() bool {
	return t.Blocked != nil && t.Blocked()
}

// RaylibDevice reads pointer state from the active raylib window.
type RaylibDevice struct{}

func (RaylibDevice) MouseDown() bool      { return rl.IsMouseButtonDown(rl.MouseLeftButton) }
func (RaylibDevice) MouseX() float32      { return float32(rl.GetMouseX()) }
func (RaylibDevice) CursorInWindow() bool { return rl.IsCursorOnScreen() }
func (RaylibDevice) TouchCount() int      { return int(rl.GetTouchPointCount()) }
func (RaylibDevice) TouchX() float32      { return float32(rl.GetTouchX()) }
