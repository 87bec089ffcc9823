// Package config loads the demo settings from defaults, a YAML file and flags.
package config

// Config holds every setting of both demos.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Globe      GlobeConfig      `yaml:"globe"`
	Clock      ClockConfig      `yaml:"clock"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`

	// path is the file the config was loaded from; Save writes back to it.
	path string
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"` // empty uses the demo's own title
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// GlobeConfig describes the globe assets and tessellation.
type GlobeConfig struct {
	Texture string `yaml:"texture"`
	Slices  int    `yaml:"slices"`
	Stacks  int    `yaml:"stacks"`
	Font    string `yaml:"font"` // optional, clock demo only
}

// ClockConfig holds clock demo behaviour.
type ClockConfig struct {
	StartRunning bool `yaml:"start_running"`
	DriveGlobe   bool `yaml:"drive_globe"` // feed the clock's minutes into the globe yaw
}

// ScreenshotConfig holds the screenshot output directory.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Globe: GlobeConfig{
			Texture: "earth.png",
			Slices:  40,
			Stacks:  40,
			Font:    "A-Space Regular Demo.otf",
		},
		Clock: ClockConfig{
			StartRunning: true,
		},
		Screenshot: ScreenshotConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
