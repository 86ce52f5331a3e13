package main

import (
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"github.com/taigrr/wirescene/pkg/render"
)

var (
	hudFPS   = ansi.Style{}.Bold().ForegroundColor(render.ColorGreen).BackgroundColor(render.ColorBlack)
	hudTitle = ansi.Style{}.Bold().ForegroundColor(render.ColorWhite).BackgroundColor(render.ColorBlack)
	hudStats = ansi.Style{}.ForegroundColor(render.RGB(0, 255, 255)).BackgroundColor(render.ColorBlack)
	hudHint  = ansi.Style{}.Faint().ForegroundColor(render.RGB(255, 255, 0)).BackgroundColor(render.ColorBlack)
)

func styled(s ansi.Style, text string) string {
	return s.String() + text + ansi.ResetStyle
}

// HUD is the terminal overlay with frame rate and scene statistics.
type HUD struct {
	model     string
	polyCount int
	visible   bool

	stats     render.FrameStats
	culling   bool
	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

// NewHUD creates a visible HUD.
func NewHUD(model string, polyCount int, culling bool) *HUD {
	return &HUD{
		model:     model,
		polyCount: polyCount,
		visible:   true,
		culling:   culling,
		fpsTime:   time.Now(),
	}
}

// Update records the last frame's statistics and updates the FPS counter.
func (h *HUD) Update(stats render.FrameStats) {
	h.stats = stats
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// TopLine is the first HUD row.
func (h *HUD) TopLine() string {
	return styled(hudFPS, fmt.Sprintf(" %.0f FPS ", h.fps)) +
		styled(hudTitle, fmt.Sprintf(" %s ", h.model)) +
		styled(hudStats, fmt.Sprintf(" %d polys  %d drawn  %d culled ",
			h.polyCount, h.stats.TrianglesDrawn+h.stats.PolygonsDrawn, h.stats.BackfacesCulled))
}

// BottomLine is the last HUD row.
func (h *HUD) BottomLine() string {
	check := "[ ]"
	if h.culling {
		check = "[x]"
	}
	return styled(hudTitle, fmt.Sprintf(" %s back-face culling ", check)) +
		styled(hudHint, " arrows spin  space kick  +/- zoom  b culling  r reset  ? hud  q quit ")
}

// Draw implements uv.Drawable. It writes the top and bottom rows of area.
func (h *HUD) Draw(scr uv.Screen, area uv.Rectangle) {
	if !h.visible || area.Dy() < 1 {
		return
	}
	uv.NewStyledString(h.TopLine()).Draw(scr, uv.Rect(area.Min.X, area.Min.Y, area.Dx(), 1))
	if area.Dy() > 1 {
		uv.NewStyledString(h.BottomLine()).Draw(scr, uv.Rect(area.Min.X, area.Max.Y-1, area.Dx(), 1))
	}
}
