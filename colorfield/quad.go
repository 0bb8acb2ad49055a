package colorfield

import "github.com/go-gl/mathgl/mgl32"

// QuadVertices are two triangles covering clip space.
var QuadVertices = [6]mgl32.Vec2{
	{-1, 1},
	{1, 1},
	{-1, -1},

	{1, -1},
	{-1, -1},
	{1, 1},
}

// QuadVertexCount is the number of vertices drawn per frame.
const QuadVertexCount = len(QuadVertices)

type Triangle [3]mgl32.Vec2

func QuadTriangles() [2]Triangle {
	return [2]Triangle{
		{QuadVertices[0], QuadVertices[1], QuadVertices[2]},
		{QuadVertices[3], QuadVertices[4], QuadVertices[5]},
	}
}

// Area returns the signed area, positive for counter-clockwise winding.
func (t Triangle) Area() float32 {
	ab := t[1].Sub(t[0])
	ac := t[2].Sub(t[0])
	return (ab[0]*ac[1] - ab[1]*ac[0]) / 2
}

// Contains reports whether p lies inside t or on its boundary.
func (t Triangle) Contains(p mgl32.Vec2) bool {
	var pos, neg bool
	for i := range t {
		a, b := t[i], t[(i+1)%3]
		edge := b.Sub(a)
		rel := p.Sub(a)
		cross := edge[0]*rel[1] - edge[1]*rel[0]
		pos = pos || cross > 0
		neg = neg || cross < 0
	}
	return !(pos && neg)
}

// ClipToNormalized maps a clip space position to [0,1] on both axes, as the
// vertex shader does for v_position.
func ClipToNormalized(p mgl32.Vec2) mgl32.Vec2 {
	return p.Add(mgl32.Vec2{1, 1}).Mul(0.5)
}

// QuadData flattens QuadVertices for upload to a vertex buffer.
func QuadData() []float32 {
	data := make([]float32, 0, len(QuadVertices)*2)
	for _, v := range QuadVertices {
		data = append(data, v[0], v[1])
	}
	return data
}
