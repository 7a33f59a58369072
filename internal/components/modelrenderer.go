package components

import (
	"cubescene/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model    rl.Model
	Color    rl.Color
	fromFile bool // true if loaded via asset manager
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

// NewSharedModelRenderer draws a model owned by the asset manager. Clones
// of the same file share GPU data and only differ in transform and tint.
func NewSharedModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model:    model,
		Color:    color,
		fromFile: true,
	}
}

// SetRGB tints the model, keeping the current alpha.
func (m *ModelRenderer) SetRGB(r, g, b uint8) {
	m.Color = rl.NewColor(r, g, b, m.Color.A)
}

// SetPacked tints the model from a 0xRRGGBB value, keeping the current alpha.
func (m *ModelRenderer) SetPacked(rgb uint32) {
	m.SetRGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	m.Model.Transform = g.WorldMatrix()
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, m.Color)
}

func (m *ModelRenderer) Unload() {
	// Only unload if not from asset manager (asset manager handles its own cleanup)
	if !m.fromFile {
		rl.UnloadModel(m.Model)
	}
}
