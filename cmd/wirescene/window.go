package main

import (
	"go.uber.org/zap"

	"github.com/taigrr/wirescene/internal/config"
	"github.com/taigrr/wirescene/pkg/ebitensurface"
)

// runWindow renders the demo in a desktop window until it is closed.
func runWindow(cfg *config.Config, log *zap.Logger) error {
	surface := ebitensurface.New(nil)
	var err error
	if surface.Background, err = cfg.Background(); err != nil {
		return err
	}

	d, err := newDemo(cfg, surface, cfg.Viewport.Width, cfg.Viewport.Height, log)
	if err != nil {
		return err
	}

	g := ebitensurface.NewGame(d.scene, surface, cfg.Viewport.Width, cfg.Viewport.Height)
	g.Step = func() error {
		d.step()
		return nil
	}

	log.Info("window output started", zap.Int("width", cfg.Viewport.Width), zap.Int("height", cfg.Viewport.Height))
	return ebitensurface.Run(g, "wirescene - "+cfg.Demo.Model, cfg.Demo.FPS)
}
