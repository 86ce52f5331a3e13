package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/taigrr/wirescene/pkg/math3d"
)

// Framebuffer is a 2D array of pixels that implements Surface.
// Strokes are rasterized with Bresenham lines in StrokeColor; Clear fills
// with Background. For terminal output the height is twice the number of
// rows because each cell shows two pixels with a half-block character.
type Framebuffer struct {
	Width  int          // Width in "pixels" (same as terminal columns)
	Height int          // Height in "pixels" (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data

	Background  color.RGBA
	StrokeColor color.RGBA

	path
}

// NewFramebuffer creates a new framebuffer with the given dimensions,
// a black background and a white stroke.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:       width,
		Height:      height,
		Pixels:      make([]color.RGBA, width*height),
		Background:  ColorBlack,
		StrokeColor: ColorWhite,
	}
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (int, int) {
	return fb.Width, fb.Height
}

// Resize reallocates the pixel buffer. Existing pixels are discarded.
func (fb *Framebuffer) Resize(width, height int) {
	fb.Width, fb.Height = width, height
	fb.Pixels = make([]color.RGBA, width*height)
}

// Clear fills the rectangle (x, y, w, h) with the background color.
// The rectangle is rounded outward to whole pixels.
func (fb *Framebuffer) Clear(x, y, w, h float64) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	fb.DrawRect(x0, y0, x1-x0, y1-y0, fb.Background)
}

// Fill fills the whole framebuffer with a solid color.
func (fb *Framebuffer) Fill(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetStrokeColor sets the color used by the next Stroke.
func (fb *Framebuffer) SetStrokeColor(c color.Color) {
	fb.StrokeColor = toRGBA(c)
}

// Stroke rasterizes every segment of the current path.
func (fb *Framebuffer) Stroke() {
	c := fb.StrokeColor
	plot := func(x, y int) { fb.SetPixel(x, y, c) }
	fb.segments(func(a, b math3d.Vec2) {
		strokeSegment(a, b, fb.Width, fb.Height, plot)
	})
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	bresenham(x0, y0, x1, y1, func(x, y int) { fb.SetPixel(x, y, c) })
}

// DrawRect draws a filled rectangle, clipped to the framebuffer.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.Width), min(y+h, fb.Height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fb.Pixels[py*fb.Width+px] = c
		}
	}
}

// CountPixels returns how many pixels equal c.
func (fb *Framebuffer) CountPixels(c color.RGBA) int {
	n := 0
	for _, p := range fb.Pixels {
		if p == c {
			n++
		}
	}
	return n
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := range fb.Height {
		for x := range fb.Width {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	return f.Close()
}
