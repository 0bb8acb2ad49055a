package colorfield

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Uniforms are the values shared by every pixel of one frame.
// Time is in milliseconds and already includes the startup Offset.
type Uniforms struct {
	Time       float64
	RotXOffset mgl64.Vec3
	RotYOffset mgl64.Vec3
	G1FreqMult float64
}

// ShaderUniforms is the single precision form of Uniforms uploaded to the GPU.
// The uniform tag names the GLSL uniform, the kage tag the Kage one.
type ShaderUniforms struct {
	Time       float32    `uniform:"u_time" kage:"Time"`
	RotXOffset mgl32.Vec3 `uniform:"u_rotXOffset" kage:"RotXOffset"`
	RotYOffset mgl32.Vec3 `uniform:"u_rotYOffset" kage:"RotYOffset"`
	G1FreqMult float32    `uniform:"u_g1FreqMult" kage:"G1FreqMult"`
}

func (u Uniforms) Shader() ShaderUniforms {
	return ShaderUniforms{
		Time:       float32(u.Time),
		RotXOffset: vec3To32(u.RotXOffset),
		RotYOffset: vec3To32(u.RotYOffset),
		G1FreqMult: float32(u.G1FreqMult),
	}
}

func vec3To32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
