package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// WorldUp is the axis every scene rotation in this project uses.
var WorldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

type Transform struct {
	Position    rl.Vector3
	Orientation rl.Quaternion
	Scale       rl.Vector3
}

// Matrix combines scale -> orientation -> translation.
func (t Transform) Matrix() rl.Matrix {
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rot := rl.QuaternionToMatrix(t.Orientation)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
}

type GameObject struct {
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		Active: true,
		Transform: Transform{
			Position:    rl.Vector3{},
			Orientation: rl.QuaternionIdentity(),
			Scale:       rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// SetEuler sets the orientation from XYZ Euler angles in radians.
func (g *GameObject) SetEuler(x, y, z float32) {
	g.Transform.Orientation = rl.QuaternionFromEuler(x, y, z)
}

// Spin rotates the object in place about a world axis through its own
// position. The rotation is applied on top of the current orientation.
func (g *GameObject) Spin(axis rl.Vector3, angle float32) {
	q := rl.QuaternionFromAxisAngle(rl.Vector3Normalize(axis), angle)
	g.Transform.Orientation = rl.QuaternionNormalize(rl.QuaternionMultiply(q, g.Transform.Orientation))
}

// Orbit revolves the object's position about a world axis through the
// origin. Orientation is left as is.
func (g *GameObject) Orbit(axis rl.Vector3, angle float32) {
	rot := rl.MatrixRotate(rl.Vector3Normalize(axis), angle)
	g.Transform.Position = rl.Vector3Transform(g.Transform.Position, rot)
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	ps := g.Parent.WorldScale()
	scaled := rl.Vector3{
		X: g.Transform.Position.X * ps.X,
		Y: g.Transform.Position.Y * ps.Y,
		Z: g.Transform.Position.Z * ps.Z,
	}
	rotated := rl.Vector3RotateByQuaternion(scaled, g.Parent.WorldOrientation())
	return rl.Vector3Add(g.Parent.WorldPosition(), rotated)
}

func (g *GameObject) WorldOrientation() rl.Quaternion {
	if g.Parent == nil {
		return g.Transform.Orientation
	}
	return rl.QuaternionMultiply(g.Parent.WorldOrientation(), g.Transform.Orientation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// WorldMatrix is the model matrix used for drawing.
func (g *GameObject) WorldMatrix() rl.Matrix {
	return Transform{
		Position:    g.WorldPosition(),
		Orientation: g.WorldOrientation(),
		Scale:       g.WorldScale(),
	}.Matrix()
}
