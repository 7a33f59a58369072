package spin

import (
	"math"
	"testing"

	"cubescene/internal/engine"
	"cubescene/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestApplyRotationQuarterTurn(t *testing.T) {
	obj := engine.NewGameObject("Computer")
	obj.Transform.Position = rl.Vector3{X: 1.45, Y: 0.4, Z: -0.9}

	ApplyRotation(engine.WorldUp, math.Pi/2, obj)

	p := obj.Transform.Position
	if !approx(p.X, -0.9, 1e-5) || !approx(p.Y, 0.4, 1e-5) || !approx(p.Z, -1.45, 1e-5) {
		t.Errorf("Expected (-0.9, 0.4, -1.45), got %v", p)
	}
	if obj.Transform.Orientation != rl.QuaternionIdentity() {
		t.Error("Orientation should be unchanged")
	}
}

func TestControllerDrivenFullTurn(t *testing.T) {
	obj := engine.NewGameObject("Computer")
	start := rl.Vector3{X: 1.45, Y: 0.4, Z: -0.9}
	obj.Transform.Position = start

	// 36 drag frames of 10 degrees each add up to one full turn.
	c := NewController()
	drag := input.DragState{Pressed: true}
	for range 36 {
		drag.ShiftX = 10
		ApplyRotation(engine.WorldUp, c.Update(&drag), obj)
	}

	p := obj.Transform.Position
	if !approx(p.X, start.X, 1e-4) || !approx(p.Y, start.Y, 1e-4) || !approx(p.Z, start.Z, 1e-4) {
		t.Errorf("Expected %v after 2π, got %v", start, p)
	}
}
