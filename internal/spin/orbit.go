package spin

import (
	"cubescene/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ApplyRotation revolves every object about axis through the world origin
// by angle radians. Positions change, orientations do not.
func ApplyRotation(axis rl.Vector3, angle float32, objects ...*engine.GameObject) {
	if angle == 0 {
		return
	}
	for _, obj := range objects {
		obj.Orbit(axis, angle)
	}
}
