package config

import (
	"flag"
	"fmt"
)

// Command-line overrides. Zero values leave the loaded setting alone.
var (
	flagConfig     = flag.String("config", "", "config file `path` (default: ./"+configFileName+", then the user config dir)")
	flagDebug      = flag.Bool("debug", false, "debug logging and light markers")
	flagWindowed   = flag.Bool("windowed", false, "force windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "force fullscreen mode")
	flagWidth      = flag.Int("width", 0, "window width in pixels")
	flagHeight     = flag.Int("height", 0, "window height in pixels")
	flagSpheres    = flag.Int("spheres", 0, "number of target spheres")
	flagMute       = flag.Bool("mute", false, "start with audio muted")
)

// ParseFlags parses the command line. Call it before Load.
func ParseFlags() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: aimlab [flags]\n\nSettings are read from %s unless -config is given.\n\n", ConfigFile())
		flag.PrintDefaults()
	}
	flag.Parse()
}

// ConfigPath returns the -config value, or "" to search the usual places.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags overlays command-line overrides on cfg. -fullscreen beats
// -windowed when both are set.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowLightMarkers = true
	}

	switch {
	case *flagFullscreen:
		cfg.Graphics.Fullscreen = true
	case *flagWindowed:
		cfg.Graphics.Fullscreen = false
	}

	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagSpheres > 0 {
		cfg.Game.SphereCount = *flagSpheres
	}
	if *flagMute {
		cfg.Audio.Muted = true
	}
}
