package components

import (
	"math"
	"testing"

	"cubescene/internal/drift"
	"cubescene/internal/engine"
	"cubescene/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fixedAngle float32

func (f fixedAngle) FrameAngle() float32 { return float32(f) }

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestSpinnerTurnsInPlace(t *testing.T) {
	obj := engine.NewGameObject("Cube")
	obj.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	obj.AddComponent(NewSpinner(fixedAngle(math.Pi / 2)))
	obj.Start()

	obj.Update(0.016)

	if obj.Transform.Position != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Spinner moved the object to %v", obj.Transform.Position)
	}
	if obj.Transform.Orientation == rl.QuaternionIdentity() {
		t.Error("Spinner should change orientation")
	}
}

func TestOrbiterRevolvesAroundOrigin(t *testing.T) {
	obj := engine.NewGameObject("Computer")
	obj.Transform.Position = rl.Vector3{X: 1.45, Y: 0.4, Z: -0.9}
	obj.AddComponent(NewOrbiter(fixedAngle(math.Pi / 2)))
	obj.Start()

	obj.Update(0.016)

	p := obj.Transform.Position
	if !near(p.X, -0.9) || !near(p.Y, 0.4) || !near(p.Z, -1.45) {
		t.Errorf("Expected (-0.9, 0.4, -1.45), got %v", p)
	}
	if obj.Transform.Orientation != rl.QuaternionIdentity() {
		t.Error("Orbiter must not change orientation")
	}
}

func TestZeroAngleLeavesTransform(t *testing.T) {
	obj := engine.NewGameObject("Still")
	obj.Transform.Position = rl.Vector3{X: 1}
	obj.AddComponent(NewSpinner(fixedAngle(0)))
	obj.AddComponent(NewOrbiter(fixedAngle(0)))
	before := obj.Transform

	obj.Update(0.016)

	if obj.Transform != before {
		t.Error("Zero frame angle should not touch the transform")
	}
}

func TestColorCyclerTintsRenderer(t *testing.T) {
	obj := engine.NewGameObject("Cube")
	renderer := NewModelRenderer(rl.Model{}, rl.NewColor(255, 255, 255, 242))
	gen := drift.New(constSource(0))
	gen.State.Current = [3]int{10, 20, 30}
	gen.State.Target = [3]int{20, 10, 30}

	obj.AddComponent(renderer)
	obj.AddComponent(NewColorCycler(gen))
	obj.Start()
	obj.Update(0.016)

	want := rl.NewColor(11, 19, 30, 242)
	if renderer.Color != want {
		t.Errorf("Expected %v, got %v", want, renderer.Color)
	}
}

func TestModelRendererSetPacked(t *testing.T) {
	renderer := NewModelRenderer(rl.Model{}, rl.NewColor(0, 0, 0, 242))

	renderer.SetPacked(0x0bc81e)

	want := rl.NewColor(0x0b, 0xc8, 0x1e, 242)
	if renderer.Color != want {
		t.Errorf("Expected %v, got %v", want, renderer.Color)
	}
}

func TestCameraAutoOrbit(t *testing.T) {
	cam := NewCamera()
	cam.Orbit = true
	obj := engine.NewGameObject("Camera")
	obj.AddComponent(cam)

	var drag input.DragState
	cam.Angle = 89.6
	cam.Advance(&drag)
	obj.Update(0.016)

	p := obj.Transform.Position
	if !near(p.X, 0) || !near(p.Y, 1.5) || !near(p.Z, 6) {
		t.Errorf("Expected (0, 1.5, 6), got %v", p)
	}

	rc := cam.GetRaylibCamera()
	if rc.Target != (rl.Vector3{}) {
		t.Errorf("Camera should look at the origin, got %v", rc.Target)
	}
	if rc.Fovy != 75 {
		t.Errorf("Expected fov 75, got %v", rc.Fovy)
	}
}

func TestCameraDragInvertsShift(t *testing.T) {
	cam := NewCamera()
	drag := input.DragState{Pressed: true, ShiftX: 30}

	cam.Advance(&drag)

	if !near(cam.Angle, -3) {
		t.Errorf("Expected angle -3, got %v", cam.Angle)
	}
	if drag.ShiftX != 0 {
		t.Error("Advance should consume the shift")
	}

	cam.Advance(&drag)
	if !near(cam.Angle, -3) {
		t.Errorf("Holding still while pressed should not move, got %v", cam.Angle)
	}
}

func TestFixedCameraStays(t *testing.T) {
	cam := NewCamera()
	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = rl.Vector3{Y: 1.5, Z: 6}
	obj.AddComponent(cam)

	cam.Advance(nil)
	obj.Update(0.016)

	if obj.Transform.Position != (rl.Vector3{Y: 1.5, Z: 6}) {
		t.Errorf("Fixed camera moved to %v", obj.Transform.Position)
	}
}
