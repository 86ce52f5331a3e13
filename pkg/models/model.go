// Package models provides the object-space geometry drawn by the wirescene
// pipeline: vertex and index buffers plus a per-model world transform.
package models

import (
	"errors"
	"slices"

	"github.com/taigrr/wirescene/pkg/math3d"
)

// ErrPolygonTooSmall is returned when a polygon has fewer than three vertices.
var ErrPolygonTooSmall = errors.New("models: polygon needs at least 3 vertices")

// Model is a named mesh with its own position, rotation and scale.
//
// Triangles are stored as a flat index list (three indices per triangle).
// Polygons are closed n-gon loops whose first three vertices decide facing.
// Indices are not checked against the vertex buffer on insert; the scene
// reports invalid references when it draws.
type Model struct {
	name string

	vertices []math3d.Vec4
	indices  []int
	polygons [][]int

	position math3d.Vec3
	rotation math3d.Vec3 // Euler radians: yaw = Y, pitch = X, roll = Z
	scale    math3d.Vec3
	world    math3d.Mat4

	backfaceCulling bool

	// Local-space bounding box, grown as vertices are added
	boundsMin math3d.Vec3
	boundsMax math3d.Vec3
}

// NewModel creates an empty model at the origin with unit scale and
// back-face culling enabled.
func NewModel(name string) *Model {
	return &Model{
		name:            name,
		vertices:        make([]math3d.Vec4, 0),
		indices:         make([]int, 0),
		scale:           math3d.One3(),
		world:           math3d.Identity(),
		backfaceCulling: true,
	}
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// AddVertex appends a homogeneous point (w=1) and returns its index.
func (m *Model) AddVertex(x, y, z float64) int {
	p := math3d.V3(x, y, z)
	if len(m.vertices) == 0 {
		m.boundsMin, m.boundsMax = p, p
	} else {
		m.boundsMin = m.boundsMin.Min(p)
		m.boundsMax = m.boundsMax.Max(p)
	}
	m.vertices = append(m.vertices, math3d.Point(x, y, z))
	return len(m.vertices) - 1
}

// AddTriangle appends three vertex indices to the index buffer.
func (m *Model) AddTriangle(i1, i2, i3 int) {
	m.indices = append(m.indices, i1, i2, i3)
}

// AddPolygon appends a closed polygon. The index list is copied.
func (m *Model) AddPolygon(indices ...int) error {
	if len(indices) < 3 {
		return ErrPolygonTooSmall
	}
	m.polygons = append(m.polygons, slices.Clone(indices))
	return nil
}

// SetPosition overwrites the translation and recomputes the world matrix.
func (m *Model) SetPosition(x, y, z float64) {
	m.position = math3d.V3(x, y, z)
	m.updateWorld()
}

// SetRotation overwrites the Euler rotation (radians) and recomputes the
// world matrix. y is yaw, x is pitch and z is roll.
func (m *Model) SetRotation(x, y, z float64) {
	m.rotation = math3d.V3(x, y, z)
	m.updateWorld()
}

// SetScale overwrites the per-axis scale and recomputes the world matrix.
func (m *Model) SetScale(x, y, z float64) {
	m.scale = math3d.V3(x, y, z)
	m.updateWorld()
}

// updateWorld rebuilds world = T * S * R, so vertices are rotated, then
// scaled, then translated.
func (m *Model) updateWorld() {
	rot := math3d.FromYawPitchRoll(m.rotation.Y, m.rotation.X, m.rotation.Z)
	m.world = math3d.Translate(m.position).Mul(math3d.Scale(m.scale)).Mul(rot)
}

// SetBackfaceCulling enables or disables the facing test for this model.
func (m *Model) SetBackfaceCulling(enabled bool) {
	m.backfaceCulling = enabled
}

// BackfaceCulling reports whether the facing test applies to this model.
func (m *Model) BackfaceCulling() bool {
	return m.backfaceCulling
}

// Position returns the model translation.
func (m *Model) Position() math3d.Vec3 {
	return m.position
}

// Rotation returns the Euler rotation in radians.
func (m *Model) Rotation() math3d.Vec3 {
	return m.rotation
}

// Scale returns the per-axis scale.
func (m *Model) Scale() math3d.Vec3 {
	return m.scale
}

// World returns the object-to-world matrix.
func (m *Model) World() math3d.Mat4 {
	return m.world
}

// VertexCount returns the number of vertices.
func (m *Model) VertexCount() int {
	return len(m.vertices)
}

// Vertex returns vertex i in object space. It panics if i is out of range.
func (m *Model) Vertex(i int) math3d.Vec4 {
	return m.vertices[i]
}

// AppendWorldVertices transforms every vertex by the world matrix and
// appends the results to dst, preserving order.
func (m *Model) AppendWorldVertices(dst []math3d.Vec4) []math3d.Vec4 {
	for _, v := range m.vertices {
		dst = append(dst, m.world.MulVec4(v))
	}
	return dst
}

// IndexCount returns the length of the flat index buffer.
func (m *Model) IndexCount() int {
	return len(m.indices)
}

// TriangleCount returns the number of complete index triples.
func (m *Model) TriangleCount() int {
	return len(m.indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Model) Triangle(i int) [3]int {
	return [3]int{m.indices[i*3], m.indices[i*3+1], m.indices[i*3+2]}
}

// PolygonCount returns the number of polygons.
func (m *Model) PolygonCount() int {
	return len(m.polygons)
}

// Polygon returns a copy of the vertex indices of polygon i.
func (m *Model) Polygon(i int) []int {
	return slices.Clone(m.polygons[i])
}

// AppendPolygon appends the vertex indices of polygon i to dst and returns
// the extended slice. Reusing dst avoids the copy Polygon allocates.
func (m *Model) AppendPolygon(dst []int, i int) []int {
	return append(dst, m.polygons[i]...)
}

// Bounds returns the local-space axis-aligned bounding box.
// An empty model reports a zero box.
func (m *Model) Bounds() (min, max math3d.Vec3) {
	return m.boundsMin, m.boundsMax
}

// Center returns the center of the local bounding box.
func (m *Model) Center() math3d.Vec3 {
	return m.boundsMin.Add(m.boundsMax).Scale(0.5)
}

// DistanceTo returns the distance from the model position to p.
func (m *Model) DistanceTo(p math3d.Vec3) float64 {
	return m.position.Distance(p)
}

// Clone creates a deep copy of the model.
func (m *Model) Clone() *Model {
	clone := *m
	clone.vertices = slices.Clone(m.vertices)
	clone.indices = slices.Clone(m.indices)
	clone.polygons = make([][]int, len(m.polygons))
	for i, p := range m.polygons {
		clone.polygons[i] = slices.Clone(p)
	}
	return &clone
}
