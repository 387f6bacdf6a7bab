// Package config handles aim lab configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Game     GameConfig     `yaml:"game"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
	HitSound     string  `yaml:"hit_sound"` // WAV file; empty plays a generated tone
}

// GameConfig holds target and control settings.
type GameConfig struct {
	SphereCount      int     `yaml:"sphere_count"`
	Sectors          int     `yaml:"sectors"`
	Stacks           int     `yaml:"stacks"`
	RadiusMin        float32 `yaml:"radius_min"`
	RadiusMax        float32 `yaml:"radius_max"`
	SpawnExtent      float32 `yaml:"spawn_extent"` // respawn cube half-size
	HitPadding       float32 `yaml:"hit_padding"`  // added to every radius when testing clicks
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
	ShowLightMarkers bool    `yaml:"show_light_markers"`
	CaptureMouse     bool    `yaml:"capture_mouse"`
}

// AssetsConfig holds asset file paths.
type AssetsConfig struct {
	WeaponModel   string    `yaml:"weapon_model"`
	Skybox        [6]string `yaml:"skybox"` // +X, -X, +Y, -Y, +Z, -Z
	ScreenshotDir string    `yaml:"screenshot_dir"`
	SearchPaths   []string  `yaml:"search_paths"` // searched after the working directory; later entries win
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock aim lab values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  800,
			Height: 600,
			VSync:  true,
			FOV:    45,
			Near:   0.1,
			Far:    100,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
		},
		Game: GameConfig{
			SphereCount:      1,
			Sectors:          36,
			Stacks:           18,
			RadiusMin:        2,
			RadiusMax:        4,
			SpawnExtent:      5,
			MouseSensitivity: 0.1,
			MoveSpeed:        2.5,
			CaptureMouse:     true,
		},
		Assets: AssetsConfig{
			WeaponModel: "Model/M9.obj",
			Skybox: [6]string{
				"skybox/right.jpg",
				"skybox/left.jpg",
				"skybox/top.jpg",
				"skybox/bottom.jpg",
				"skybox/front.jpg",
				"skybox/back.jpg",
			},
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings that would produce broken geometry or spawns.
func (c *Config) Validate() error {
	var errs []error
	g := c.Game
	if g.Sectors < 3 {
		errs = append(errs, fmt.Errorf("game.sectors must be >= 3, got %d", g.Sectors))
	}
	if g.Stacks < 2 {
		errs = append(errs, fmt.Errorf("game.stacks must be >= 2, got %d", g.Stacks))
	}
	if g.RadiusMin <= 0 {
		errs = append(errs, fmt.Errorf("game.radius_min must be > 0, got %g", g.RadiusMin))
	}
	if g.RadiusMax < g.RadiusMin {
		errs = append(errs, fmt.Errorf("game.radius_max %g is below radius_min %g", g.RadiusMax, g.RadiusMin))
	}
	if g.SphereCount < 0 {
		errs = append(errs, fmt.Errorf("game.sphere_count must be >= 0, got %d", g.SphereCount))
	}
	if g.SpawnExtent < 0 {
		errs = append(errs, fmt.Errorf("game.spawn_extent must be >= 0, got %g", g.SpawnExtent))
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d is not positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		errs = append(errs, fmt.Errorf("graphics near/far %g/%g out of order", c.Graphics.Near, c.Graphics.Far))
	}
	return errors.Join(errs...)
}
