// Package render turns models into screen-space line segments: camera,
// projection, facing test and the scene draw loop, plus the drawing surfaces
// those segments are emitted to.
package render

import (
	"image/color"
	"math"

	"github.com/taigrr/wirescene/pkg/math3d"
)

// Surface is a 2D drawing target with canvas-style path commands.
// The scene only writes to it and never reads pixels back.
type Surface interface {
	Size() (width, height int)
	Clear(x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke()
}

// Flusher is implemented by surfaces that present a frame after drawing.
type Flusher interface {
	Flush() error
}

// StrokeColorer is implemented by surfaces whose stroke color can change
// between paths.
type StrokeColorer interface {
	SetStrokeColor(c color.Color)
}

// path accumulates canvas-style subpaths for the pixel surfaces.
type path struct {
	subpaths [][]math3d.Vec2
}

// BeginPath discards all subpaths.
func (p *path) BeginPath() {
	p.subpaths = p.subpaths[:0]
}

// MoveTo starts a new subpath at (x, y).
func (p *path) MoveTo(x, y float64) {
	p.subpaths = append(p.subpaths, []math3d.Vec2{math3d.V2(x, y)})
}

// LineTo extends the current subpath. Without one it behaves like MoveTo.
func (p *path) LineTo(x, y float64) {
	if len(p.subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], math3d.V2(x, y))
}

// ClosePath joins the current subpath back to its start and begins a new
// subpath there.
func (p *path) ClosePath() {
	if len(p.subpaths) == 0 {
		return
	}
	cur := p.subpaths[len(p.subpaths)-1]
	start := cur[0]
	if len(cur) > 1 {
		p.LineTo(start.X, start.Y)
	}
	p.MoveTo(start.X, start.Y)
}

// segments calls fn for every line segment in the path.
func (p *path) segments(fn func(a, b math3d.Vec2)) {
	for _, sp := range p.subpaths {
		for i := 1; i < len(sp); i++ {
			fn(sp[i-1], sp[i])
		}
	}
}

// strokeSegment clips a segment to a w x h pixel grid and plots it.
// Segments with non-finite endpoints are dropped.
func strokeSegment(a, b math3d.Vec2, w, h int, plot func(x, y int)) {
	if !a.IsFinite() || !b.IsFinite() {
		return
	}
	x0, y0, x1, y1, ok := clipLine(a.X, a.Y, b.X, b.Y, 0, 0, float64(w-1), float64(h-1))
	if !ok || !math3d.V2(x0, y0).IsFinite() || !math3d.V2(x1, y1).IsFinite() {
		return
	}
	bresenham(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), plot)
}

// clipLine clips a segment to the rectangle [xmin,xmax] x [ymin,ymax]
// (Liang-Barsky). ok is false when nothing remains.
func clipLine(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// bresenham plots the integer line from (x0, y0) to (x1, y1).
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// toRGBA converts any color to 8-bit RGBA.
func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
