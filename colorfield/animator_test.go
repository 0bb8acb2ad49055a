package colorfield

import (
	"context"
	"errors"
	"testing"
)

type recorder struct {
	draws []Uniforms
}

func (r *recorder) Draw(u Uniforms) {
	r.draws = append(r.draws, u)
}

func TestAnimatorFrame(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator(500, rec)

	u := a.Frame(1)
	if len(rec.draws) != 1 {
		t.Fatalf("Frame issued %d draws, want 1", len(rec.draws))
	}
	if rec.draws[0] != u {
		t.Errorf("drawn uniforms %v differ from returned %v", rec.draws[0], u)
	}
	if u != Generate(1, 500) {
		t.Errorf("Frame(1) = %v, want %v", u, Generate(1, 500))
	}
}

func TestAnimatorMonotonic(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator(0, rec)

	for _, s := range []float64{1, 2, 1.5, 3} {
		a.Frame(s)
	}

	want := []float64{1000, 2000, 2000, 3000}
	for i, u := range rec.draws {
		if u.Time != want[i] {
			t.Errorf("draw %d at time %v, want %v", i, u.Time, want[i])
		}
	}
}

func TestFixedStep(t *testing.T) {
	rec := &recorder{}
	a := NewAnimator(0, rec)

	s := &FixedStep{Start: 2, FPS: 4, Frames: 5}
	a.Attach(s)
	if err := s.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(rec.draws) != 5 {
		t.Fatalf("got %d draws, want 5", len(rec.draws))
	}
	for i, u := range rec.draws {
		want := 2000 + float64(i)*250
		if u.Time != want {
			t.Errorf("frame %d at %v, want %v", i, u.Time, want)
		}
	}
}

func TestFixedStepCancel(t *testing.T) {
	rec := &recorder{}
	s := &FixedStep{FPS: 60, Frames: 10}
	NewAnimator(0, rec).Attach(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run on cancelled context returned %v", err)
	}
	if len(rec.draws) != 0 {
		t.Errorf("%d frames drawn after cancel", len(rec.draws))
	}
}
