package colorfield

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestGenerateAtZero(t *testing.T) {
	u := Generate(0, 0)

	if u.Time != 0 {
		t.Errorf("Time = %v, want 0", u.Time)
	}

	wantX := [3]float64{0, 0.479425538604203, 1}
	wantY := [3]float64{1, 0.8775825618903728, 0}
	for i := range wantX {
		if !near(u.RotXOffset[i], wantX[i]) {
			t.Errorf("RotXOffset[%d] = %v, want %v", i, u.RotXOffset[i], wantX[i])
		}
		if !near(u.RotYOffset[i], wantY[i]) {
			t.Errorf("RotYOffset[%d] = %v, want %v", i, u.RotYOffset[i], wantY[i])
		}
	}

	if u.G1FreqMult != 0 {
		t.Errorf("G1FreqMult = %v, want 0", u.G1FreqMult)
	}
}

func TestGenerateTime(t *testing.T) {
	u := Generate(2.5, 1234)
	if u.Time != 3734 {
		t.Errorf("Time = %v, want 3734", u.Time)
	}
}

func TestGenerateRotationPeriod(t *testing.T) {
	for _, s := range []float64{0, 1.5, 17, 59.999, 3600} {
		a := Generate(s, 4321)
		b := Generate(s+RotationPeriod/1000, 4321)

		for i := 0; i < 3; i++ {
			if !near(a.RotXOffset[i], b.RotXOffset[i]) {
				t.Errorf("at %vs RotXOffset[%d] %v != %v one period later", s, i, a.RotXOffset[i], b.RotXOffset[i])
			}
			if !near(a.RotYOffset[i], b.RotYOffset[i]) {
				t.Errorf("at %vs RotYOffset[%d] %v != %v one period later", s, i, a.RotYOffset[i], b.RotYOffset[i])
			}
		}
	}
}

func TestGenerateFreqMultPeriod(t *testing.T) {
	for _, s := range []float64{0, 3, 11.25, 600} {
		a := Generate(s, 100)
		b := Generate(s+FreqMultPeriod/1000, 100)
		if !near(a.G1FreqMult, b.G1FreqMult) {
			t.Errorf("at %vs G1FreqMult %v != %v one period later", s, a.G1FreqMult, b.G1FreqMult)
		}
	}
}

func TestGeneratePhases(t *testing.T) {
	u := Generate(42, 999)
	for i := 0; i < 3; i++ {
		l := u.RotXOffset[i]*u.RotXOffset[i] + u.RotYOffset[i]*u.RotYOffset[i]
		if !near(l, 1) {
			t.Errorf("rotation offset %d is not on the unit circle: %v", i, l)
		}
	}

	// The third angle is a quarter turn ahead of the first.
	if !near(u.RotXOffset[2], u.RotYOffset[0]) || !near(u.RotYOffset[2], -u.RotXOffset[0]) {
		t.Errorf("third offset %v,%v is not a quarter turn from %v,%v",
			u.RotXOffset[2], u.RotYOffset[2], u.RotXOffset[0], u.RotYOffset[0])
	}
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestNewOffsetBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100000; i++ {
		o := NewOffset(r)
		if o < 0 || o >= MaxOffset {
			t.Fatalf("offset %v outside [0, %v)", o, MaxOffset)
		}
	}

	for _, f := range []float64{0, 0.5, math.Nextafter(1, 0), 1} {
		o := NewOffset(fixedSource(f))
		if o < 0 || o >= MaxOffset {
			t.Errorf("offset from %v is %v, outside [0, %v)", f, o, MaxOffset)
		}
	}
}

func TestShaderUniforms(t *testing.T) {
	s := Generate(1, 0).Shader()
	if s.Time != 1000 {
		t.Errorf("Time = %v, want 1000", s.Time)
	}
	if s.RotYOffset[0] <= 0 || s.RotYOffset[0] > 1 {
		t.Errorf("RotYOffset[0] = %v", s.RotYOffset[0])
	}
}
