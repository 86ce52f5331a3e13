// Package ebitensurface draws wirescene frames into ebiten images and runs
// them in a desktop window.
package ebitensurface

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source image for DrawTriangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Surface implements render.Surface on an *ebiten.Image. The path is built
// with vector.Path and turned into triangles on Stroke.
type Surface struct {
	img *ebiten.Image

	Background  color.RGBA
	StrokeColor color.RGBA
	LineWidth   float32
	AntiAlias   bool

	path vector.Path
	// broken is set after a non-finite point; the next finite LineTo starts
	// a new subpath instead of joining across the gap.
	broken bool

	vertices []ebiten.Vertex
	indices  []uint16
}

// New creates a surface drawing into img with a black background and a
// white one-pixel stroke. img may be nil and set later with SetImage.
func New(img *ebiten.Image) *Surface {
	return &Surface{
		img:         img,
		Background:  color.RGBA{0, 0, 0, 255},
		StrokeColor: color.RGBA{255, 255, 255, 255},
		LineWidth:   1,
		AntiAlias:   true,
	}
}

// SetImage changes the target image.
func (s *Surface) SetImage(img *ebiten.Image) {
	s.img = img
}

// Image returns the target image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Size returns the target image size, or zero without an image.
func (s *Surface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the rectangle with Background.
func (s *Surface) Clear(x, y, w, h float64) {
	if s.img == nil {
		return
	}
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Fill(s.Background)
}

// SetStrokeColor sets the color used by the next Stroke.
func (s *Surface) SetStrokeColor(c color.Color) {
	s.StrokeColor = color.RGBAModel.Convert(c).(color.RGBA)
}

// BeginPath discards the current path.
func (s *Surface) BeginPath() {
	s.path = vector.Path{}
	s.broken = false
}

// MoveTo starts a new subpath. Non-finite points are dropped.
func (s *Surface) MoveTo(x, y float64) {
	if !finite(x, y) {
		s.broken = true
		return
	}
	s.path.MoveTo(float32(x), float32(y))
	s.broken = false
}

// LineTo extends the current subpath. Non-finite points are dropped.
func (s *Surface) LineTo(x, y float64) {
	if !finite(x, y) {
		s.broken = true
		return
	}
	if s.broken {
		s.MoveTo(x, y)
		return
	}
	s.path.LineTo(float32(x), float32(y))
}

// ClosePath closes the current subpath.
func (s *Surface) ClosePath() {
	s.path.Close()
}

// Stroke draws the current path with StrokeColor and LineWidth.
func (s *Surface) Stroke() {
	if s.img == nil {
		return
	}
	s.vertices, s.indices = s.appendStroke(s.vertices[:0], s.indices[:0])
	if len(s.indices) == 0 {
		return
	}
	s.img.DrawTriangles(s.vertices, s.indices, white(), &ebiten.DrawTrianglesOptions{
		AntiAlias: s.AntiAlias,
	})
}

// appendStroke tessellates the path and colors the vertices.
func (s *Surface) appendStroke(vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	n := len(vs)
	vs, is = s.path.AppendVerticesAndIndicesForStroke(vs, is, &vector.StrokeOptions{
		Width:    s.LineWidth,
		LineJoin: vector.LineJoinBevel,
	})

	c := s.StrokeColor
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for i := n; i < len(vs); i++ {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	return vs, is
}

func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}
