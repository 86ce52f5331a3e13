package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/taigrr/wirescene/internal/config"
	"github.com/taigrr/wirescene/pkg/render"
)

// runPNG renders cfg.Demo.Frames frames into numbered PNG files under
// cfg.Demo.OutDir. Each frame carries a caption with its statistics.
func runPNG(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	fb := render.NewFramebuffer(cfg.Viewport.Width, cfg.Viewport.Height)
	var err error
	if fb.Background, err = cfg.Background(); err != nil {
		return err
	}
	caption, err := cfg.StrokeColor()
	if err != nil {
		return err
	}

	d, err := newDemo(cfg, fb, fb.Width, fb.Height, log)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Demo.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	bar := progressbar.Default(int64(cfg.Demo.Frames), "rendering frames")
	display := fb.Displayer()

	for i := range cfg.Demo.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.step()
		if err := d.scene.Draw(); err != nil {
			return fmt.Errorf("draw frame %d: %w", i, err)
		}
		stats := d.scene.Stats()
		render.DrawLabel(display, 4, 12, fmt.Sprintf("%s  frame %d  %d drawn", cfg.Demo.Model, i,
			stats.TrianglesDrawn+stats.PolygonsDrawn), caption)

		path := filepath.Join(cfg.Demo.OutDir, fmt.Sprintf("frame_%04d.png", i))
		if err := fb.SavePNG(path); err != nil {
			return err
		}
		log.Debug("frame saved", zap.String("path", path), zap.Object("stats", stats))
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	log.Info("frames written", zap.Int("frames", cfg.Demo.Frames), zap.String("dir", cfg.Demo.OutDir))
	return nil
}
