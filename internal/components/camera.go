package components

import (
	"cubescene/internal/engine"
	"cubescene/internal/input"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// AutoOrbitStep is how many degrees the orbiting camera drifts per
	// frame when nobody is dragging.
	AutoOrbitStep float32 = 0.4
	// DragOrbitFactor converts pointer shift into camera degrees.
	DragOrbitFactor float32 = 0.1
)

// Camera looks at the world origin. With Orbit set it circles the origin
// at Multiplier distance, otherwise it stays where its GameObject is.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Height     float32
	Multiplier float32
	Angle      float32 // degrees
	Orbit      bool
	Target     rl.Vector3
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        75,
		Height:     1.5,
		Multiplier: 6,
	}
}

// Advance moves the orbit angle by one frame of input: a fixed drift when
// idle, or the inverted pointer shift while dragging.
func (c *Camera) Advance(drag *input.DragState) {
	if drag == nil || !drag.Pressed {
		c.Angle += AutoOrbitStep
		return
	}
	c.Angle += drag.TakeShift() * DragOrbitFactor * -1
}

func (c *Camera) Update(deltaTime float32) {
	if !c.Orbit {
		return
	}
	g := c.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = c.OrbitPosition()
}

// OrbitPosition is the point on the orbit circle for the current angle.
func (c *Camera) OrbitPosition() rl.Vector3 {
	rad := c.Angle / 360 * 2 * math32.Pi
	return rl.Vector3{
		X: math32.Cos(rad) * c.Multiplier,
		Y: c.Height,
		Z: math32.Sin(rad) * c.Multiplier,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	return rl.Camera3D{
		Position:   g.WorldPosition(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
