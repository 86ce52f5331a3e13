package ebitensurface

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/wirescene/pkg/render"
)

var (
	_ render.Surface       = (*Surface)(nil)
	_ render.StrokeColorer = (*Surface)(nil)
	_ Drawer               = (*render.Scene)(nil)
)

func TestSurfaceWithoutImage(t *testing.T) {
	s := New(nil)
	w, h := s.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	// Drawing without an image is a no-op.
	s.Clear(0, 0, 10, 10)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(5, 5)
	s.Stroke()
}

func TestAppendStrokeColorsVertices(t *testing.T) {
	s := New(nil)
	s.SetStrokeColor(color.RGBA{255, 0, 0, 255})

	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(10, 0)
	s.LineTo(10, 10)
	s.ClosePath()

	vs, is := s.appendStroke(nil, nil)
	require.NotEmpty(t, vs)
	require.NotEmpty(t, is)
	for _, v := range vs {
		assert.Equal(t, float32(1), v.ColorR)
		assert.Equal(t, float32(0), v.ColorG)
		assert.Equal(t, float32(1), v.ColorA)
		assert.Equal(t, float32(1), v.SrcX)
	}
	for _, i := range is {
		assert.Less(t, int(i), len(vs))
	}
}

func TestNonFinitePointsAreDropped(t *testing.T) {
	s := New(nil)

	s.BeginPath()
	s.MoveTo(math.NaN(), 0)
	s.LineTo(math.Inf(1), 3)
	vs, _ := s.appendStroke(nil, nil)
	assert.Empty(t, vs)

	// A finite point after a gap starts a new subpath.
	s.LineTo(1, 1)
	s.LineTo(4, 1)
	vs, _ = s.appendStroke(nil, nil)
	assert.NotEmpty(t, vs)

	s.BeginPath()
	vs, _ = s.appendStroke(nil, nil)
	assert.Empty(t, vs)
}

type failingScene struct{ calls int }

func (f *failingScene) Draw() error {
	f.calls++
	return errors.New("boom")
}

func TestGameStopsAfterDrawError(t *testing.T) {
	scene := &failingScene{}
	g := NewGame(scene, New(nil), 320, 200)

	w, h := g.Layout(1000, 1000)
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)

	g.Draw(nil)
	assert.Equal(t, 1, scene.calls)
	assert.ErrorContains(t, g.Update(), "draw frame: boom")
}
