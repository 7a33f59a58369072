package drift

import (
	"math/rand"
	"testing"
)

type fixedSource struct {
	values []float64
	i      int
}

func (f *fixedSource) Float64() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}

func TestNewStartsAtStartColor(t *testing.T) {
	g := New(nil)

	if g.State.Current != StartColor {
		t.Errorf("Expected current %v, got %v", StartColor, g.State.Current)
	}
	if g.State.Target != StartColor {
		t.Errorf("Expected target %v, got %v", StartColor, g.State.Target)
	}
	if g.Packed() != 0x00c800 {
		t.Errorf("Expected packed 0x00c800, got %#06x", g.Packed())
	}
}

func TestStepRerollsReachedTarget(t *testing.T) {
	g := New(&fixedSource{values: []float64{0.5}})

	// All channels start on target, so the first step only draws targets.
	packed := g.Step()

	if packed != 0x00c800 {
		t.Errorf("Current should not move while rerolling, got %#06x", packed)
	}
	want := int(0.5*(255-OffsetBottom-OffsetTop)) + OffsetBottom
	for i, tgt := range g.State.Target {
		if tgt != want {
			t.Errorf("Channel %d: expected target %d, got %d", i, want, tgt)
		}
	}
}

func TestStepMovesTowardTarget(t *testing.T) {
	g := New(&fixedSource{values: []float64{0}})
	g.State.Current = [3]int{10, 100, 60}
	g.State.Target = [3]int{12, 99, 60}

	g.Step()
	if g.State.Current != [3]int{11, 99, 60} {
		t.Errorf("After one step expected [11 99 60], got %v", g.State.Current)
	}

	g.Step()
	// Channel 1 reached its target last step and rerolls now; channel 2 rerolled on the first step.
	if g.State.Current[0] != 12 {
		t.Errorf("Expected red to reach 12, got %d", g.State.Current[0])
	}
	if g.State.Target[1] != OffsetBottom {
		t.Errorf("Expected green target reroll to %d, got %d", OffsetBottom, g.State.Target[1])
	}
}

func TestTargetsStayInRange(t *testing.T) {
	edges := &fixedSource{values: []float64{0, 0.999999, 0.25, 0.75}}
	g := New(edges)

	for range 2000 {
		g.Step()
		for i, tgt := range g.State.Target {
			if tgt < OffsetBottom || tgt > 255-OffsetTop {
				t.Fatalf("Channel %d target %d out of range", i, tgt)
			}
		}
	}
}

func TestDriftInvariants(t *testing.T) {
	g := New(rand.New(rand.NewSource(42)))
	g.State.Current = [3]int{0, 255, 128}
	g.State.Target = [3]int{255, 0, 128}

	prev := g.State.Current
	for range 10000 {
		g.Step()
		for i, cur := range g.State.Current {
			if cur < 0 || cur > 255 {
				t.Fatalf("Channel %d left [0,255]: %d", i, cur)
			}
			d := cur - prev[i]
			if d > StepSize || d < -StepSize {
				t.Fatalf("Channel %d moved by %d in one step", i, d)
			}
		}
		prev = g.State.Current
	}
}

func TestPackedMatchesChannels(t *testing.T) {
	g := New(nil)
	g.State.Current = [3]int{0x12, 0x34, 0x56}

	if g.Packed() != 0x123456 {
		t.Errorf("Expected 0x123456, got %#06x", g.Packed())
	}
	if g.Hex() != "#123456" {
		t.Errorf("Expected #123456, got %s", g.Hex())
	}
}
