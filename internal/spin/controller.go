// Package spin converts horizontal drag input into a per-frame rotation
// angle that coasts back to a default speed once the drag ends.
package spin

import (
	"cubescene/internal/input"

	"github.com/chewxy/math32"
)

const (
	DefaultMaxSpeed       float32 = 10
	DefaultDefaultSpeed   float32 = -0.4
	DefaultCorrectionStep float32 = 0.05
)

// Controller holds the angular speed in degrees per frame.
type Controller struct {
	Speed          float32
	MaxSpeed       float32
	DefaultSpeed   float32
	CorrectionStep float32

	angle float32 // radians produced by the last Update
}

func NewController() *Controller {
	return &Controller{
		Speed:          DefaultDefaultSpeed,
		MaxSpeed:       DefaultMaxSpeed,
		DefaultSpeed:   DefaultDefaultSpeed,
		CorrectionStep: DefaultCorrectionStep,
	}
}

// Update advances the speed by one frame and returns the rotation for
// this frame in radians.
//
// While dragging the raw shift becomes the speed and is consumed. Otherwise
// the speed is clamped to MaxSpeed and nudged one CorrectionStep toward
// DefaultSpeed. The nudge does not snap, so the speed may settle into a
// small oscillation around DefaultSpeed.
func (c *Controller) Update(drag *input.DragState) float32 {
	if drag != nil && drag.Pressed {
		c.Speed = drag.TakeShift()
	} else {
		c.Speed = c.clamped()
		switch {
		case c.Speed < c.DefaultSpeed:
			c.Speed += c.CorrectionStep
		case c.Speed > c.DefaultSpeed:
			c.Speed -= c.CorrectionStep
		}
	}

	c.angle = DegreesToRadians(c.Speed)
	return c.angle
}

func (c *Controller) clamped() float32 {
	dir := math32.Signbit(c.Speed)
	mag := math32.Min(math32.Abs(c.Speed), c.MaxSpeed)
	mag = math32.Round(mag*100) / 100
	if dir {
		return -mag
	}
	return mag
}

// FrameAngle returns the rotation computed by the last Update.
func (c *Controller) FrameAngle() float32 {
	return c.angle
}

// DegreesToRadians maps a full turn of 360 onto 2π.
func DegreesToRadians(deg float32) float32 {
	return deg / 360 * 2 * math32.Pi
}
