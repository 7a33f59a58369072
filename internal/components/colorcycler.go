package components

import (
	"cubescene/internal/drift"
	"cubescene/internal/engine"
)

// ColorCycler steps a drift generator every frame and tints the
// object's ModelRenderer with the result.
type ColorCycler struct {
	engine.BaseComponent
	Generator *drift.Generator
	renderer  *ModelRenderer
}

func NewColorCycler(gen *drift.Generator) *ColorCycler {
	return &ColorCycler{Generator: gen}
}

func (c *ColorCycler) Start() {
	if g := c.GetGameObject(); g != nil {
		c.renderer = engine.GetComponent[*ModelRenderer](g)
	}
}

func (c *ColorCycler) Update(deltaTime float32) {
	if c.Generator == nil {
		return
	}
	rgb := c.Generator.Step()
	if c.renderer != nil {
		c.renderer.SetPacked(rgb)
	}
}
