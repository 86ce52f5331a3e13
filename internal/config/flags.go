package config

import "flag"

// Flags holds command-line overrides. Zero values mean "not set".
type Flags struct {
	Config      string
	Debug       bool
	Output      string
	Model       string
	Width       int
	Height      int
	Frames      int
	OutDir      string
	FPS         int
	WriteConfig string
}

// RegisterFlags defines the wirescene flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Output, "output", "", "Output mode (terminal, png, window)")
	fs.StringVar(&f.Model, "model", "", "Model to show (cube, pyramid, grid, all)")
	fs.IntVar(&f.Width, "width", 0, "Viewport width in pixels")
	fs.IntVar(&f.Height, "height", 0, "Viewport height in pixels")
	fs.IntVar(&f.Frames, "frames", 0, "Number of frames to export in png mode")
	fs.StringVar(&f.OutDir, "out", "", "Directory for png frames")
	fs.IntVar(&f.FPS, "fps", 0, "Target frames per second")
	fs.StringVar(&f.WriteConfig, "write-config", "", "Write the effective config to this path and exit")
	return f
}

// Apply applies flag overrides to the config.
func (f *Flags) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Output != "" {
		cfg.Demo.Output = f.Output
	}
	if f.Model != "" {
		cfg.Demo.Model = f.Model
	}
	if f.Width > 0 {
		cfg.Viewport.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Viewport.Height = f.Height
	}
	if f.Frames > 0 {
		cfg.Demo.Frames = f.Frames
	}
	if f.OutDir != "" {
		cfg.Demo.OutDir = f.OutDir
	}
	if f.FPS > 0 {
		cfg.Demo.FPS = f.FPS
	}
}
