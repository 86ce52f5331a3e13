package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/taigrr/wirescene/internal/config"
	"github.com/taigrr/wirescene/pkg/render"
)

const impulse = 0.02 // radians per frame added by a key press

// runTerminal renders the demo in the terminal with half-block pixels until
// the user quits or ctx is cancelled. Events are read on the render loop so
// the scene is only touched from one goroutine.
func runTerminal(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use -output png or -output window")
	}

	t := uv.DefaultTerminal()
	cols, rows, err := t.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	fb := render.NewFramebuffer(render.TerminalSize(cols, rows))
	if fb.Background, err = cfg.Background(); err != nil {
		return err
	}
	d, err := newDemo(cfg, fb, fb.Width, fb.Height, log)
	if err != nil {
		return err
	}

	if err := t.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer func() {
		t.ExitAltScreen()
		t.ShowCursor()
		if err := t.Shutdown(context.Background()); err != nil {
			log.Warn("terminal shutdown", zap.Error(err))
		}
	}()
	t.EnterAltScreen()
	t.HideCursor()
	_ = t.Resize(cols, rows)

	hud := NewHUD(cfg.Demo.Model, d.triangleCount(), cfg.Render.BackfaceCulling)
	log.Info("terminal output started", zap.Int("cols", cols), zap.Int("rows", rows))

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Demo.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-t.Events():
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				cols, rows = ev.Width, ev.Height
				t.Erase()
				_ = t.Resize(cols, rows)
				fb.Resize(render.TerminalSize(cols, rows))
				if err := d.camera.SetViewport(fb.Width, fb.Height); err != nil {
					log.Warn("resize viewport", zap.Error(err))
				}

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "q", "ctrl+c"):
					return nil
				case ev.MatchString("w", "up"):
					d.spin.ApplyImpulse(-impulse, 0)
				case ev.MatchString("s", "down"):
					d.spin.ApplyImpulse(impulse, 0)
				case ev.MatchString("a", "left"):
					d.spin.ApplyImpulse(0, -impulse)
				case ev.MatchString("d", "right"):
					d.spin.ApplyImpulse(0, impulse)
				case ev.MatchString("space"):
					d.spin.ApplyImpulse((rand.Float64()-0.5)*0.2, (rand.Float64()-0.5)*0.2)
				case ev.MatchString("+", "="):
					if err := d.dolly(0.9); err != nil {
						log.Warn("zoom", zap.Error(err))
					}
				case ev.MatchString("-", "_"):
					if err := d.dolly(1 / 0.9); err != nil {
						log.Warn("zoom", zap.Error(err))
					}
				case ev.MatchString("b"):
					hud.culling = d.toggleCulling()
				case ev.MatchString("r"):
					d.spin.Reset()
				case ev.MatchString("?", "shift+/"):
					hud.visible = !hud.visible
				}
			}

		case <-ticker.C:
			d.step()
			if err := d.scene.Draw(); err != nil {
				return fmt.Errorf("draw frame: %w", err)
			}
			hud.Update(d.scene.Stats())

			t.Draw(uv.DrawableFunc(func(scr uv.Screen, area uv.Rectangle) {
				fb.Draw(scr, area)
				hud.Draw(scr, area)
			}))
			if err := t.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
