package colorfield

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestColorAtZero(t *testing.T) {
	c := Color(Generate(0, 0), mgl64.Vec2{0.5, 0.5})

	want := mgl64.Vec3{0.3704115484027889, 0.5755649376809011, 0.3803151553747011}
	for i := range want {
		if math.Abs(c[i]-want[i]) > 1e-9 {
			t.Errorf("channel %d = %v, want %v", i, c[i], want[i])
		}
	}
}

func TestColorDeterministic(t *testing.T) {
	u := Generate(123.456, 31337)
	pos := mgl64.Vec2{0.3, 0.9}

	first := Color(u, pos)
	for i := 0; i < 100; i++ {
		if c := Color(u, pos); c != first {
			t.Fatalf("evaluation %d returned %v, first returned %v", i, c, first)
		}
	}
}

func TestColorRange(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 20000; i++ {
		u := Generate(r.Float64()*1e5, NewOffset(r))
		pos := mgl64.Vec2{r.Float64(), r.Float64()}
		if i%100 == 0 {
			pos = mgl64.Vec2{float64(i / 100 % 2), float64(i / 200 % 2)}
		}

		for name, fn := range map[string]PixelFunc{"Color": Color, "Color32": Color32} {
			c := fn(u, pos)
			for ch, v := range c {
				if v < 0 || v > 1 || math.IsNaN(v) {
					t.Fatalf("%s channel %d = %v at time %v pos %v", name, ch, v, u.Time, pos)
				}
			}
		}
	}
}

func TestColor32Close(t *testing.T) {
	u := Generate(5, 1000)
	for _, pos := range []mgl64.Vec2{{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.8}} {
		a, b := Color(u, pos), Color32(u, pos)
		for i := range a {
			if math.Abs(a[i]-b[i]) > 1e-3 {
				t.Errorf("pos %v channel %d: float64 %v, float32 %v", pos, i, a[i], b[i])
			}
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		terms [3]float64
		want  float64
	}{
		{[3]float64{1, 1, 1}, 1},
		{[3]float64{-1, -1, 1}, 0},
		{[3]float64{1, 1, -1}, 0.5},
		{[3]float64{1, -1, 1}, 0.375},
	}

	for _, test := range tests {
		if got := compose(test.terms); !near(got, test.want) {
			t.Errorf("compose(%v) = %v, want %v", test.terms, got, test.want)
		}
	}
}
