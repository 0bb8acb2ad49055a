package colorfield

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/exp/constraints"
)

// Tau matches the constant in the fragment shader rather than 2*math.Pi.
const Tau = 6.2831853072

// Wave tuning. Dividers are in ms of Uniforms.Time.
const (
	red0YScale   = 2.0
	redDivider   = 8000.0
	red2XScale   = 0.4
	red2Divider  = 16000.0
	green0Offset = 2.0
	green0Div    = 4000.0
	green1YScale = 0.8
	green1Div    = 4400.0
	green2XScale = 0.5
	green2Div    = 20000.0
	blue0XScale  = 1.65
	blue0Div     = 2000.0
	blue1XScale  = 0.8
	blue1Div     = 4000.0
	blue2YScale  = 0.4
	blue2Div     = 24000.0
	blue2Phase   = 0.75

	primaryWeight = 0.6
	weightSum     = 1.6
)

// PixelFunc returns the colour of a pixel at pos, where pos is in [0,1] on
// both axes with (0,0) at the bottom left.
type PixelFunc func(uniforms Uniforms, pos mgl64.Vec2) mgl64.Vec3

// Color is the CPU implementation of the fragment shader.
func Color(u Uniforms, pos mgl64.Vec2) mgl64.Vec3 {
	return shade(u.Time, u.RotXOffset, u.RotYOffset, u.G1FreqMult, pos[0], pos[1])
}

// Color32 evaluates the fragment shader in single precision, as the GPU does.
func Color32(u Uniforms, pos mgl64.Vec2) mgl64.Vec3 {
	s := u.Shader()
	c := shade(s.Time, s.RotXOffset, s.RotYOffset, s.G1FreqMult, float32(pos[0]), float32(pos[1]))
	return mgl64.Vec3{float64(c[0]), float64(c[1]), float64(c[2])}
}

var (
	_ PixelFunc = Color
	_ PixelFunc = Color32
)

func shade[F constraints.Float, V ~[3]F](time F, rotX, rotY V, g1FreqMult F, x, y F) [3]F {
	tau := F(Tau)
	cos := func(v F) F { return F(math.Cos(float64(v * tau))) }
	sin := func(v F) F { return F(math.Sin(float64(v * tau))) }

	var xRot, yRot [3]F
	for i := range xRot {
		xRot[i] = rotX[i] * x
		yRot[i] = rotY[i] * y
	}

	r := [3]F{
		cos(xRot[0] + yRot[0]*rotX[2]*red0YScale + time/redDivider),
		cos(xRot[2] + yRot[2]*rotX[2] + time/redDivider),
		sin(x*red2XScale - time/red2Divider),
	}

	g := [3]F{
		-cos((xRot[0]+yRot[0])*(g1FreqMult+green0Offset) + time/green0Div),
		-cos(xRot[1] + yRot[1]*green1YScale - time/green1Div),
		sin(x*green2XScale + time/green2Div),
	}

	b := [3]F{
		-cos(x*rotX[0]*blue0XScale - time/blue0Div),
		-cos(x*blue1XScale + time/blue1Div),
		sin(y*blue2YScale + time/blue2Div + blue2Phase),
	}

	return [3]F{compose(r), compose(g), compose(b)}
}

// compose shifts each wave term from [-1,1] to [0,1] and weights them into
// one channel value, itself in [0,1].
func compose[F constraints.Float](terms [3]F) F {
	for i := range terms {
		terms[i] = (terms[i] + 1) / 2
	}
	return (terms[0]*primaryWeight + terms[1]) / weightSum * (terms[2]*0.5 + 0.5)
}
