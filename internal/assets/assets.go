package assets

import (
	"fmt"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

type Manager struct {
	models map[string]rl.Model
}

// Color name mapping for config files
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
	"Blank":     rl.Blank,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

func Init() {
	manager = &Manager{
		models: make(map[string]rl.Model),
	}
}

// ModelSource names the two files that describe one mesh model: the
// material library and the geometry that references it.
type ModelSource struct {
	Material string `yaml:"material"`
	Geometry string `yaml:"geometry"`
}

// Paths lists every file that must be fetched before the model can load.
func (s ModelSource) Paths() []string {
	if s.Material == "" {
		return []string{s.Geometry}
	}
	return []string{s.Material, s.Geometry}
}

// Validate checks the pair before any loading starts.
func (s ModelSource) Validate() error {
	if s.Geometry == "" {
		return fmt.Errorf("%w: no geometry path", ErrLoadFailed)
	}
	if s.Material != "" && filepath.Dir(s.Material) != filepath.Dir(s.Geometry) {
		// The OBJ loader resolves mtllib relative to the geometry file.
		return fmt.Errorf("%w: material %s must sit next to %s", ErrLoadFailed, s.Material, s.Geometry)
	}
	return nil
}

// LoadModel uploads a model to the GPU, caching it by geometry path.
// Must be called on the window thread, after the files were fetched and
// passed Verify.
func LoadModel(src ModelSource) (rl.Model, error) {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[src.Geometry]; exists {
		return model, nil
	}

	if err := src.Validate(); err != nil {
		return rl.Model{}, err
	}
	if !strings.EqualFold(filepath.Ext(src.Geometry), ".obj") && src.Material != "" {
		return rl.Model{}, fmt.Errorf("%w: material libraries need an .obj geometry, got %s", ErrLoadFailed, src.Geometry)
	}

	model := rl.LoadModel(src.Geometry)
	if model.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("%w: %s has no meshes", ErrLoadFailed, src.Geometry)
	}
	manager.models[src.Geometry] = model
	return model, nil
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	manager.models = make(map[string]rl.Model)
}
