package render

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/taigrr/wirescene/pkg/math3d"
)

// LabelFont is the bitmap font used by DrawLabel.
var LabelFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// DisplayerSurface is a Surface over a TinyGo display driver.
// Flush calls Display to present the buffer.
type DisplayerSurface struct {
	display drivers.Displayer

	Background  color.RGBA
	StrokeColor color.RGBA

	path
}

// NewDisplayerSurface wraps d with a black background and a white stroke.
func NewDisplayerSurface(d drivers.Displayer) *DisplayerSurface {
	return &DisplayerSurface{
		display:     d,
		Background:  ColorBlack,
		StrokeColor: ColorWhite,
	}
}

// Size returns the display size.
func (s *DisplayerSurface) Size() (int, int) {
	w, h := s.display.Size()
	return int(w), int(h)
}

// Clear fills the rectangle with the background color, clipped to the
// display.
func (s *DisplayerSurface) Clear(x, y, w, h float64) {
	dw, dh := s.Size()
	x0, y0 := max(int(math.Floor(x)), 0), max(int(math.Floor(y)), 0)
	x1, y1 := min(int(math.Ceil(x+w)), dw), min(int(math.Ceil(y+h)), dh)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.display.SetPixel(int16(px), int16(py), s.Background)
		}
	}
}

// SetStrokeColor sets the color used by the next Stroke.
func (s *DisplayerSurface) SetStrokeColor(c color.Color) {
	s.StrokeColor = toRGBA(c)
}

// Stroke rasterizes the current path onto the display buffer.
func (s *DisplayerSurface) Stroke() {
	w, h := s.Size()
	c := s.StrokeColor
	plot := func(x, y int) { s.display.SetPixel(int16(x), int16(y), c) }
	s.segments(func(a, b math3d.Vec2) {
		strokeSegment(a, b, w, h, plot)
	})
}

// Flush presents the display buffer.
func (s *DisplayerSurface) Flush() error {
	return s.display.Display()
}

// Label writes text onto the display with its baseline at y.
func (s *DisplayerSurface) Label(x, y int16, text string) {
	DrawLabel(s.display, x, y, text, s.StrokeColor)
}

// DrawLabel writes a line of text with LabelFont, baseline at y.
func DrawLabel(d drivers.Displayer, x, y int16, text string, c color.RGBA) {
	tinyfont.WriteLine(d, LabelFont, x, y, text, c)
}

// Displayer returns a drivers.Displayer view of the framebuffer so TinyGo
// drawing code (fonts, DisplayerSurface) can target it.
func (fb *Framebuffer) Displayer() drivers.Displayer {
	return &fbDisplay{fb: fb}
}

type fbDisplay struct {
	fb *Framebuffer
}

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width), int16(d.fb.Height)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetPixel(int(x), int(y), c)
}

func (d *fbDisplay) Display() error {
	return nil
}
