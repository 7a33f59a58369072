package components

import (
	"cubescene/internal/engine"
	"cubescene/internal/spin"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spinner turns its object in place about Axis by the shared frame angle.
type Spinner struct {
	engine.BaseComponent
	Source engine.AngleSource
	Axis   rl.Vector3
}

func NewSpinner(src engine.AngleSource) *Spinner {
	return &Spinner{Source: src, Axis: engine.WorldUp}
}

func (s *Spinner) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil || s.Source == nil {
		return
	}
	if angle := s.Source.FrameAngle(); angle != 0 {
		g.Spin(s.Axis, angle)
	}
}

// Orbiter revolves its object about Axis through the world origin by the
// shared frame angle. The object's own orientation is not touched.
type Orbiter struct {
	engine.BaseComponent
	Source engine.AngleSource
	Axis   rl.Vector3
}

func NewOrbiter(src engine.AngleSource) *Orbiter {
	return &Orbiter{Source: src, Axis: engine.WorldUp}
}

func (o *Orbiter) Update(deltaTime float32) {
	g := o.GetGameObject()
	if g == nil || o.Source == nil {
		return
	}
	spin.ApplyRotation(o.Axis, o.Source.FrameAngle(), g)
}
