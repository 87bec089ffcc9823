// Package mesh builds the static geometry drawn by the globe renderer.
package mesh

import "math"

// Default tessellation, the same 40x40 the demos have always used.
const (
	DefaultSlices = 40
	DefaultStacks = 40

	minSlices = 3
	minStacks = 2
)

// Vertex is the interleaved layout uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh is indexed triangle geometry. It is never modified after construction.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Slices   int
	Stacks   int
}

// Sphere builds a unit UV sphere with poles on the Y axis.
//
// Texture coordinates cover [0,1]x[0,1]: v runs from the north pole (0) to
// the south pole (1), u wraps once around the axis and increases eastward.
// At u=0.5 the surface faces +Z. The seam column is duplicated so u reaches 1.
func Sphere(slices, stacks int) *Mesh {
	if slices < minSlices {
		slices = minSlices
	}
	if stacks < minStacks {
		stacks = minStacks
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, (stacks+1)*(slices+1)),
		Indices:  make([]uint32, 0, slices*(stacks-1)*6),
		Slices:   slices,
		Stacks:   stacks,
	}

	for i := 0; i <= stacks; i++ {
		v := float64(i) / float64(stacks)
		sinPhi, cosPhi := math.Sincos(v * math.Pi)

		for j := 0; j <= slices; j++ {
			u := float64(j) / float64(slices)
			sinTheta, cosTheta := math.Sincos(u * 2 * math.Pi)

			p := [3]float32{
				float32(-sinPhi * sinTheta),
				float32(cosPhi),
				float32(-sinPhi * cosTheta),
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: p,
				Normal:   p,
				TexCoord: [2]float32{float32(u), float32(v)},
			})
		}
	}

	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j) // this ring
			b := a + row                   // next ring south
			c := a + 1                     // east neighbour
			d := b + 1

			// Counter-clockwise seen from outside. The pole rows collapse
			// one triangle of each quad, so it is skipped.
			if i != 0 {
				m.Indices = append(m.Indices, a, b, c)
			}
			if i != stacks-1 {
				m.Indices = append(m.Indices, c, b, d)
			}
		}
	}

	return m
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
