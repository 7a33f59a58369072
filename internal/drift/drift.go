// Package drift produces a slowly changing RGB colour. Each channel walks
// one unit per step toward a random target and picks a new target once it
// gets there.
package drift

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// StepSize is how far a channel moves per Step.
	StepSize = 1

	// OffsetBottom keeps targets away from very dark values.
	OffsetBottom = 50
	// OffsetTop keeps targets away from very light values.
	OffsetTop = 25
)

// StartColor is the colour a new generator starts from (and targets).
var StartColor = [3]int{0, 200, 0}

// Source is the random source used to draw new targets.
type Source interface {
	Float64() float64
}

// ColorState holds the current colour and the per-channel targets.
type ColorState struct {
	Current [3]int
	Target  [3]int
}

type Generator struct {
	State ColorState
	rng   Source
}

// New returns a generator at StartColor. A nil src uses math/rand.
func New(src Source) *Generator {
	if src == nil {
		src = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Generator{
		State: ColorState{Current: StartColor, Target: StartColor},
		rng:   src,
	}
}

// Step advances every channel once and returns the packed 0xRRGGBB colour.
func (g *Generator) Step() uint32 {
	for i := range 3 {
		g.update(i)
	}
	return g.Packed()
}

func (g *Generator) update(i int) {
	cur, tgt := g.State.Current[i], g.State.Target[i]
	switch {
	case cur == tgt:
		g.State.Target[i] = int(g.rng.Float64()*(255-OffsetBottom-OffsetTop)) + OffsetBottom
	case cur > tgt:
		if cur-StepSize >= tgt {
			g.State.Current[i] = cur - StepSize
		} else {
			g.State.Current[i] = tgt
		}
	default:
		if cur+StepSize <= tgt {
			g.State.Current[i] = cur + StepSize
		} else {
			g.State.Current[i] = tgt
		}
	}
}

// Packed returns the current colour as r*65536 + g*256 + b.
func (g *Generator) Packed() uint32 {
	r, gr, b := g.RGB()
	return uint32(r)<<16 | uint32(gr)<<8 | uint32(b)
}

// RGB returns the current colour as bytes.
func (g *Generator) RGB() (r, gr, b uint8) {
	c := g.State.Current
	return clampByte(c[0]), clampByte(c[1]), clampByte(c[2])
}

// Color returns the current colour for display.
func (g *Generator) Color() colorful.Color {
	r, gr, b := g.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(gr) / 255, B: float64(b) / 255}
}

// Hex returns the current colour as "#rrggbb".
func (g *Generator) Hex() string {
	return g.Color().Hex()
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
