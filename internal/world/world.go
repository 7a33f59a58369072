package world

import (
	"fmt"
	"log"
	"math"

	"cubescene/internal/assets"
	"cubescene/internal/components"
	"cubescene/internal/config"
	"cubescene/internal/drift"
	"cubescene/internal/engine"
	"cubescene/internal/input"
	"cubescene/internal/spin"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	TagTurns = "turns"
	TagOrbit = "orbit"
)

// World owns the scene graph and the per-frame state that drives it.
type World struct {
	Scene      *engine.Scene
	Config     config.Config
	Controller *spin.Controller
	Drift      *drift.Generator
	Camera     *components.Camera
	Renderer   *Renderer
	cube       rl.Model
}

func New(cfg config.Config) *World {
	c := spin.NewController()
	c.MaxSpeed = cfg.Rotation.MaxSpeed
	c.DefaultSpeed = cfg.Rotation.DefaultSpeed
	c.CorrectionStep = cfg.Rotation.CorrectionStep
	c.Speed = c.DefaultSpeed

	r := NewRenderer()
	r.Background = assets.LookupColor(cfg.Render.Background)

	return &World{
		Scene:      engine.NewScene("Main"),
		Config:     cfg,
		Controller: c,
		Drift:      drift.New(nil),
		Renderer:   r,
	}
}

// Initialize uploads the generated cube mesh and assembles the scene from
// already loaded models. Call after the window exists.
func (w *World) Initialize(models map[string]rl.Model) error {
	size := w.Config.Cube.Size
	w.cube = rl.LoadModelFromMesh(rl.GenMeshCube(size, size, size))
	if err := w.Build(w.cube, models); err != nil {
		return err
	}
	w.Scene.Start()
	log.Printf("Scene: %s variant, %d objects", w.Config.Variant, len(w.Scene.GameObjects))
	return nil
}

// Build creates every GameObject for the configured variant. It does not
// touch the GPU, so it can run without a window.
func (w *World) Build(cube rl.Model, models map[string]rl.Model) error {
	cfg := w.Config
	turns := cfg.Variant != config.VariantCamera

	w.createCamera()

	cubeObj := engine.NewGameObject("ColoredCube")
	cubeObj.SetEuler(cfg.Cube.Tilt[0], cfg.Cube.Tilt[1], cfg.Cube.Tilt[2])
	r, g, b := w.Drift.RGB()
	cubeObj.AddComponent(components.NewModelRenderer(cube, rl.NewColor(r, g, b, opacityByte(cfg.Cube.Opacity))))
	cubeObj.AddComponent(components.NewColorCycler(w.Drift))
	if turns {
		cubeObj.Tags = append(cubeObj.Tags, TagTurns)
		cubeObj.AddComponent(components.NewSpinner(w.Controller))
	}
	w.Scene.AddGameObject(cubeObj)

	model, ok := models[cfg.Model.Geometry]
	if !ok {
		return fmt.Errorf("%w: model %s was not loaded", assets.ErrLoadFailed, cfg.Model.Geometry)
	}
	// The frame model rides on the cube and inherits its tilt and spin.
	modelObj := engine.NewGameObject("CubeModel")
	modelObj.AddComponent(components.NewSharedModelRenderer(model, rl.White))
	cubeObj.AddChild(modelObj)
	w.Scene.AddGameObject(modelObj)

	if cfg.Variant == config.VariantOrbit && cfg.Orbit.Count > 0 {
		computer, ok := models[cfg.Orbit.Model.Geometry]
		if !ok {
			return fmt.Errorf("%w: model %s was not loaded", assets.ErrLoadFailed, cfg.Orbit.Model.Geometry)
		}
		w.createOrbit(computer)
	}
	return nil
}

func (w *World) createCamera() {
	cfg := w.Config.Camera

	w.Camera = components.NewCamera()
	w.Camera.FOV = cfg.FOV
	w.Camera.Height = cfg.Position[1]
	w.Camera.Multiplier = cfg.Multiplier
	w.Camera.Orbit = w.Config.Variant == config.VariantCamera

	obj := engine.NewGameObject("Camera")
	obj.Transform.Position = rl.Vector3{
		X: cfg.Position[0],
		Y: cfg.Position[1],
		Z: cfg.Position[2] * cfg.Multiplier,
	}
	obj.AddComponent(w.Camera)
	w.Scene.AddGameObject(obj)
}

// createOrbit places clones of one model evenly on a circle around the
// origin, each facing outward.
func (w *World) createOrbit(model rl.Model) {
	cfg := w.Config.Orbit
	tint := assets.LookupColor(cfg.Tint)

	for i := range cfg.Count {
		angle := float64(i) * 2 * math.Pi / float64(cfg.Count)

		obj := engine.NewGameObject(fmt.Sprintf("Computer_%d", i))
		obj.Tags = []string{TagOrbit}
		obj.Transform.Position = rl.Vector3{
			X: float32(math.Cos(angle)) * cfg.Radius,
			Y: cfg.Height,
			Z: float32(-math.Sin(angle)) * cfg.Radius,
		}
		obj.Transform.Scale = rl.Vector3{X: cfg.Scale, Y: cfg.Scale, Z: cfg.Scale}
		obj.Spin(engine.WorldUp, float32(angle))

		obj.AddComponent(components.NewSharedModelRenderer(model, tint))
		obj.AddComponent(components.NewOrbiter(w.Controller))
		w.Scene.AddGameObject(obj)
	}
}

// Step runs one frame of scene logic from the current drag snapshot.
func (w *World) Step(drag *input.DragState, deltaTime float32) {
	if w.Config.Variant == config.VariantCamera {
		w.Camera.Advance(drag)
	} else {
		w.Controller.Update(drag)
	}
	w.Scene.Update(deltaTime)
}

// RaylibCamera is the viewpoint for this frame.
func (w *World) RaylibCamera() rl.Camera3D {
	if w.Camera == nil {
		return rl.Camera3D{}
	}
	return w.Camera.GetRaylibCamera()
}

func (w *World) Draw() {
	w.Renderer.Draw(w.RaylibCamera(), w.Scene.GameObjects)
}

func (w *World) Unload() {
	w.Renderer.Unload(w.Scene.GameObjects)
	assets.Unload()
	w.Clear()
}

// Clear removes every object from the scene, so nothing is left pointing
// at unloaded models.
func (w *World) Clear() {
	for len(w.Scene.GameObjects) > 0 {
		w.Scene.RemoveGameObject(w.Scene.GameObjects[0])
	}
	w.Camera = nil
}

func opacityByte(opacity float32) uint8 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return uint8(opacity*255 + 0.5)
}
