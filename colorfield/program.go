package colorfield

import (
	_ "embed"
)

var (
	//go:embed shaders/colorfield.vert
	vertexShader string

	//go:embed shaders/colorfield.frag
	fragmentShader string

	//go:embed shaders/colorfield.kage
	kageShader []byte
)

// Program bundles the GPU sources of a shader with its CPU implementation.
type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
	KageShader     []byte
	GetPixel       PixelFunc
}

// ColorField returns the animated colour field program.
func ColorField() Program {
	return Program{
		Name:           "colorfield",
		VertexShader:   vertexShader,
		FragmentShader: fragmentShader,
		KageShader:     kageShader,
		GetPixel:       Color,
	}
}
