package world

import (
	"cubescene/internal/components"
	"cubescene/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	Background rl.Color
}

func NewRenderer() *Renderer {
	return &Renderer{Background: rl.Blank}
}

// Draw renders every ModelRenderer in gameObjects from camera. It must run
// between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, gameObjects []*engine.GameObject) {
	rl.BeginMode3D(camera)
	r.drawScene(gameObjects)
	rl.EndMode3D()
}

func (r *Renderer) drawScene(gameObjects []*engine.GameObject) {
	for _, g := range gameObjects {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
}

type unloader interface {
	Unload()
}

// Unload releases whatever GPU resources the components of gameObjects own.
func (r *Renderer) Unload(gameObjects []*engine.GameObject) {
	for _, g := range gameObjects {
		for _, c := range g.Components() {
			if u, ok := c.(unloader); ok {
				u.Unload()
			}
		}
	}
}
