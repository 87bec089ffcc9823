// Package overlay draws flat-coloured 2D rectangles over the 3D scene.
package overlay

// Color is straight RGBA in 0..1.
type Color [4]float32

// floatsPerVertex is x, y, r, g, b, a.
const floatsPerVertex = 6

// Batch accumulates quads as two triangles each, in pixel coordinates
// with the origin at the top left.
type Batch struct {
	verts []float32
}

// Reset empties the batch and keeps its storage.
func (b *Batch) Reset() {
	b.verts = b.verts[:0]
}

// Quad appends a w x h rectangle at (x, y). Empty rectangles are skipped.
func (b *Batch) Quad(x, y, w, h float32, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, y1 := x+w, y+h
	b.vertex(x, y, c)
	b.vertex(x1, y, c)
	b.vertex(x1, y1, c)
	b.vertex(x, y, c)
	b.vertex(x1, y1, c)
	b.vertex(x, y1, c)
}

func (b *Batch) vertex(x, y float32, c Color) {
	b.verts = append(b.verts, x, y, c[0], c[1], c[2], c[3])
}

// Len is the number of vertices.
func (b *Batch) Len() int {
	return len(b.verts) / floatsPerVertex
}

// Vertices exposes the interleaved vertex data.
func (b *Batch) Vertices() []float32 {
	return b.verts
}
