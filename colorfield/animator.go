package colorfield

import "context"

// Drawable renders the full screen quad with one frame's uniforms.
type Drawable interface {
	Draw(uniforms Uniforms)
}

// FrameFunc is called once per displayed frame with the seconds elapsed
// since the frame loop started.
type FrameFunc func(elapsedSeconds float64)

// Scheduler invokes a registered FrameFunc once per display refresh.
type Scheduler interface {
	OnFrame(FrameFunc)
}

// Animator turns elapsed time into one draw call per frame.
type Animator struct {
	Offset   Offset
	Drawable Drawable

	last float64
}

func NewAnimator(offset Offset, drawable Drawable) *Animator {
	return &Animator{
		Offset:   offset,
		Drawable: drawable,
	}
}

// Frame draws the frame for elapsedSeconds and returns the uniforms it used.
// Time never runs backwards: an elapsed value below the last one is replaced
// by the last one.
func (a *Animator) Frame(elapsedSeconds float64) Uniforms {
	if elapsedSeconds < a.last {
		elapsedSeconds = a.last
	}
	a.last = elapsedSeconds

	uniforms := Generate(elapsedSeconds, a.Offset)
	a.Drawable.Draw(uniforms)
	return uniforms
}

// Attach registers the animator with a scheduler.
func (a *Animator) Attach(s Scheduler) {
	s.OnFrame(func(elapsedSeconds float64) {
		a.Frame(elapsedSeconds)
	})
}

// FixedStep is a Scheduler for offline rendering. Frames are spaced 1/FPS
// seconds apart, starting Start seconds into the animation.
type FixedStep struct {
	Start  float64
	FPS    float64
	Frames int

	frame FrameFunc
}

func (f *FixedStep) OnFrame(frame FrameFunc) {
	f.frame = frame
}

// Run calls the registered FrameFunc for every frame, stopping early if ctx
// is cancelled.
func (f *FixedStep) Run(ctx context.Context) error {
	if f.frame == nil {
		return nil
	}

	for i := 0; i < f.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		elapsed := f.Start
		if f.FPS > 0 {
			elapsed += float64(i) / f.FPS
		}
		f.frame(elapsed)
	}

	return nil
}
