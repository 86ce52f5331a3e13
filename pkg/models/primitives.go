package models

// Built-in shapes centered on the origin. Closed shapes wind their faces
// counter-clockwise when seen from outside, which is what the scene's
// facing test keeps.

// NewCube creates a cube with the given edge length (12 triangles).
func NewCube(name string, size float64) *Model {
	m := NewModel(name)
	h := size / 2

	m.AddVertex(-h, -h, -h) // 0: bottom-left-back
	m.AddVertex(h, -h, -h)  // 1: bottom-right-back
	m.AddVertex(h, h, -h)   // 2: top-right-back
	m.AddVertex(-h, h, -h)  // 3: top-left-back
	m.AddVertex(-h, -h, h)  // 4: bottom-left-front
	m.AddVertex(h, -h, h)   // 5: bottom-right-front
	m.AddVertex(h, h, h)    // 6: top-right-front
	m.AddVertex(-h, h, h)   // 7: top-left-front

	faces := [6][4]int{
		{4, 5, 6, 7}, // front  (+Z)
		{1, 0, 3, 2}, // back   (-Z)
		{5, 1, 2, 6}, // right  (+X)
		{0, 4, 7, 3}, // left   (-X)
		{7, 6, 2, 3}, // top    (+Y)
		{0, 1, 5, 4}, // bottom (-Y)
	}
	for _, f := range faces {
		m.AddTriangle(f[0], f[1], f[2])
		m.AddTriangle(f[0], f[2], f[3])
	}
	return m
}

// NewPyramid creates a square pyramid with its base in the XZ plane and the
// apex on +Y (6 triangles).
func NewPyramid(name string, base, height float64) *Model {
	m := NewModel(name)
	b := base / 2
	y0, y1 := -height/2, height/2

	m.AddVertex(-b, y0, -b) // 0
	m.AddVertex(b, y0, -b)  // 1
	m.AddVertex(b, y0, b)   // 2
	m.AddVertex(-b, y0, b)  // 3
	m.AddVertex(0, y1, 0)   // 4: apex

	// Base faces down
	m.AddTriangle(0, 1, 2)
	m.AddTriangle(0, 2, 3)

	m.AddTriangle(3, 2, 4) // +Z
	m.AddTriangle(2, 1, 4) // +X
	m.AddTriangle(1, 0, 4) // -Z
	m.AddTriangle(0, 3, 4) // -X
	return m
}

// NewGrid creates a flat square grid in the XZ plane made of quad polygons.
// Back-face culling is off so the grid is visible from both sides.
// divisions below 1 is treated as 1.
func NewGrid(name string, size float64, divisions int) *Model {
	m := NewModel(name)
	m.SetBackfaceCulling(false)

	divisions = max(divisions, 1)
	step := size / float64(divisions)
	start := -size / 2
	row := divisions + 1

	for iz := range row {
		for ix := range row {
			m.AddVertex(start+float64(ix)*step, 0, start+float64(iz)*step)
		}
	}

	for iz := range divisions {
		for ix := range divisions {
			i := iz*row + ix
			// Cannot fail: always four indices.
			_ = m.AddPolygon(i, i+1, i+row+1, i+row)
		}
	}
	return m
}
