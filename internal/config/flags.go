package config

import "flag"

// Flags are the command-line overrides. Zero values leave the config untouched.
type Flags struct {
	Config     string
	Debug      bool
	Texture    string
	Width      int
	Height     int
	Fullscreen bool
	Windowed   bool
}

var cliFlags Flags

func init() {
	RegisterFlags(flag.CommandLine, &cliFlags)
}

// RegisterFlags binds f to fs.
func RegisterFlags(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Texture, "texture", "", "Globe texture image")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
}

// ParseFlags parses the process command line. Call it early in main().
func ParseFlags() {
	flag.Parse()
}

// Apply overrides cfg with the flags that were set.
func (f Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Texture != "" {
		cfg.Globe.Texture = f.Texture
	}
	if f.Windowed {
		cfg.Window.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
}
