// wirescene - spinning wireframe primitives
// Renders built-in models through the wirescene pipeline to the terminal,
// to PNG frames, or to a desktop window.
//
// Terminal controls:
//
//	Arrows/WASD - Spin impulse (pitch/yaw)
//	Space       - Random kick
//	+/-         - Zoom
//	B           - Toggle back-face culling
//	R           - Reset spin
//	?           - Toggle HUD
//	Q/Esc       - Quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/taigrr/wirescene/internal/config"
	"github.com/taigrr/wirescene/internal/logger"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wirescene - wireframe 3D scene renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: wirescene [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nTerminal controls:\n")
		fmt.Fprintf(os.Stderr, "  Arrows/WASD - Spin impulse\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random kick\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Zoom\n")
		fmt.Fprintf(os.Stderr, "  B           - Toggle back-face culling\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset spin\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD\n")
		fmt.Fprintf(os.Stderr, "  Q/Esc       - Quit\n")
	}
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	if flags.WriteConfig != "" {
		if err := cfg.SaveTo(flags.WriteConfig); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Config written to %s\n", flags.WriteConfig)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal mode owns the screen, so it logs to the file only.
	if cfg.Demo.Output == "terminal" {
		fileCfg := logger.FileConfig{}
		if cfg.Logging.LogFile != "" {
			fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		}
		err = logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, nil)
	} else {
		err = logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Debug("config loaded",
		zap.String("model", cfg.Demo.Model),
		zap.String("output", cfg.Demo.Output),
		zap.Int("width", cfg.Viewport.Width),
		zap.Int("height", cfg.Viewport.Height),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Named("wirescene")
	err = dispatch(ctx, cfg, log)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("interrupted", zap.String("output", cfg.Demo.Output))
		return nil
	case err != nil:
		logger.Error("render failed", zap.Error(err))
		return err
	}
	logger.Info("done", zap.String("output", cfg.Demo.Output))
	return nil
}

func dispatch(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	switch cfg.Demo.Output {
	case "png":
		return runPNG(ctx, cfg, log)
	case "window":
		return runWindow(cfg, log)
	default:
		return runTerminal(ctx, cfg, log)
	}
}
