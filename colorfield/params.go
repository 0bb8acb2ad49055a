package colorfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// RotationPeriod is how long, in ms, the rotation offsets take to turn once.
	RotationPeriod = 120000.0
	// FreqMultPeriod is the period, in ms, of the green frequency multiplier.
	FreqMultPeriod = 24000.0
	// MaxOffset bounds the random startup offset, in ms.
	MaxOffset      = 60000.0

	secondPhase = 0.5
	thirdPhase  = math.Pi / 2
)

// Offset is added to the elapsed time of every frame so separate runs start
// at different points of the animation. It is in milliseconds.
type Offset float64

// Float64Source is satisfied by *rand.Rand from math/rand and math/rand/v2.
type Float64Source interface {
	Float64() float64
}

// NewOffset draws an offset uniformly from [0, MaxOffset).
func NewOffset(src Float64Source) Offset {
	return Offset(math.Mod(src.Float64()*MaxOffset, MaxOffset))
}

// Generate derives the uniforms for a frame drawn elapsedSeconds after the
// animation started.
func Generate(elapsedSeconds float64, offset Offset) Uniforms {
	t := elapsedSeconds*1000 + float64(offset)

	// All three rotation offsets turn together, one revolution every two
	// minutes, at fixed phases from each other.
	angle1 := t / RotationPeriod * math.Pi * 2
	angle2 := angle1 + secondPhase
	angle3 := angle1 + thirdPhase

	return Uniforms{
		Time:       t,
		RotXOffset: mgl64.Vec3{math.Sin(angle1), math.Sin(angle2), math.Sin(angle3)},
		RotYOffset: mgl64.Vec3{math.Cos(angle1), math.Cos(angle2), math.Cos(angle3)},
		G1FreqMult: math.Sin(t / FreqMultPeriod * math.Pi * 2),
	}
}
