// Package game implements the aim lab state, click rules and frame loop.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/aimlab/internal/assets"
	"github.com/Faultbox/aimlab/internal/config"
	"github.com/Faultbox/aimlab/internal/engine/audio"
	"github.com/Faultbox/aimlab/internal/engine/debug"
	"github.com/Faultbox/aimlab/internal/engine/hud"
	"github.com/Faultbox/aimlab/internal/engine/input"
	"github.com/Faultbox/aimlab/internal/engine/lighting"
	"github.com/Faultbox/aimlab/internal/engine/model"
	"github.com/Faultbox/aimlab/internal/engine/picking"
	"github.com/Faultbox/aimlab/internal/engine/renderer"
	"github.com/Faultbox/aimlab/internal/engine/skybox"
	"github.com/Faultbox/aimlab/internal/engine/window"
	"github.com/Faultbox/aimlab/internal/logger"
)

// Weapon placement relative to the camera.
var (
	WeaponOffset = mgl32.Vec3{0.3, -0.2, 0.5} // right, up, forward
	WeaponColor  = mgl32.Vec3{0.15, 0.15, 0.15}
)

const (
	WeaponScale     = 0.08
	WeaponRoll      = 90
	WeaponShininess = 64
	SphereShininess = 32
)

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager

	sky         *skybox.Skybox
	weapon      *model.Model
	crosshair   *hud.Crosshair
	markers     LightMarkers
	screenshots *debug.Screenshots

	state *State

	screenshotPending bool
}

// New opens the window, links shaders and loads assets. Missing assets
// degrade to placeholders; window, GL or shader failures are returned.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("targets", cfg.Game.SphereCount),
	)

	g := &Game{cfg: cfg}

	state, err := NewState(cfg, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)))
	if err != nil {
		return nil, fmt.Errorf("failed to create state: %w", err)
	}
	g.state = state

	g.window, err = window.New(window.Config{
		Title:        Title(0),
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		CaptureMouse: cfg.Game.CaptureMouse,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL context must exist before the renderer.
	w, h := g.window.Size()
	g.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	g.audio = audio.New()
	g.audio.SetMasterVolume(float64(cfg.Audio.MasterVolume))
	g.audio.SetSFXVolume(float64(cfg.Audio.SFXVolume))
	g.audio.SetMuted(cfg.Audio.Muted)
	files := assets.NewManager(append([]string{"."}, cfg.Assets.SearchPaths...)...)
	logger.Debug("asset search paths", zap.Strings("roots", files.Roots()))

	if err := g.audio.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	} else {
		hitSound, _ := files.Resolve(cfg.Audio.HitSound)
		if err := g.audio.LoadHitSound(hitSound); err != nil {
			logger.Warn("hit sound disabled", zap.Error(err))
		}
	}

	faces, missing := files.ResolveAll(cfg.Assets.Skybox[:])
	if missing > 0 {
		logger.Warn("skybox faces not found", zap.Int("missing", missing), zap.Strings("faces", faces))
	}
	var skyPaths [6]string
	copy(skyPaths[:], faces)

	progs := &g.renderer.Programs
	g.sky = skybox.New(progs.Skybox, skybox.LoadCubemap(skyPaths))
	g.crosshair = hud.NewCrosshair(progs.Crosshair)

	weaponPath, _ := files.Resolve(cfg.Assets.WeaponModel)
	g.weapon = model.Load(weaponPath)
	g.weapon.SetScale(mgl32.Vec3{WeaponScale, WeaponScale, WeaponScale})

	if cfg.Game.ShowLightMarkers {
		g.markers = NewLightMarkers(g.state.Rig)
	}

	g.screenshots = debug.NewScreenshots(cfg.Assets.ScreenshotDir, "aimlab")

	logger.Info("game initialized")
	return g, nil
}

// Run drives frames until the window closes or ESC is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	start := lastTime
	frameCount := 0
	fpsTimer := lastTime
	shownScore := -1

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.update(dt, float32(now.Sub(start).Seconds()))
		g.render()
		if g.screenshotPending {
			g.screenshotPending = false
			g.screenshot()
		}
		g.window.SwapBuffers()

		if g.state.Score != shownScore {
			shownScore = g.state.Score
			g.window.SetTitle(Title(shownScore))
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("game loop finished", zap.Int("score", g.state.Score))
	return nil
}

func (g *Game) handleEvents() {
	for _, ev := range g.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			g.renderer.Resize(g.window.Size())
		case input.EventKeyDown:
			switch {
			case ev.Key == sdl.SCANCODE_ESCAPE:
				g.running = false
			case ev.Key == sdl.SCANCODE_F12 && !ev.Repeat:
				g.screenshotPending = true
			}
		case input.EventMouseDown:
			if ev.Button == sdl.BUTTON_LEFT {
				g.shoot(ev.MouseX, ev.MouseY)
			}
		}
	}
}

// shoot fires through the crosshair when the mouse is captured, otherwise
// through the cursor.
func (g *Game) shoot(mouseX, mouseY int) {
	var ray picking.Ray
	if g.window.MouseCaptured() {
		ray = picking.CameraRay(g.state.Camera.Position, g.state.Camera.Front)
	} else {
		w, h := g.renderer.Size()
		proj := g.state.Camera.ProjectionMatrix(g.renderer.Aspect())
		inv := proj.Mul4(g.state.Camera.ViewMatrix()).Inv()
		ray = picking.ScreenToRay(float32(mouseX), float32(mouseY), float32(w), float32(h), inv)
	}

	if _, ok := g.state.ResolveClick(ray); !ok {
		return
	}
	if err := g.audio.PlayHit(); err != nil {
		logger.Debug("hit sound not played", zap.Error(err))
	}
}

// screenshot saves the finished back buffer, so it must run before the swap.
func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.screenshots.SaveBottomUp(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (g *Game) update(dt, elapsed float32) {
	cam := g.state.Camera
	if g.window.MouseCaptured() {
		cam.Look(g.input.MouseDelta())
	}
	cam.Move(g.input.Movement(), dt)

	g.state.Rig.Animate(elapsed)

	g.weapon.SetPosition(cam.HeldOffset(WeaponOffset[0], WeaponOffset[1], WeaponOffset[2]))
	g.weapon.SetRotation(mgl32.Vec3{cam.Pitch, -cam.Yaw, WeaponRoll})
}

func (g *Game) render() {
	cam := g.state.Camera
	progs := &g.renderer.Programs
	proj := cam.ProjectionMatrix(g.renderer.Aspect())
	view := cam.ViewMatrix()

	g.renderer.Begin()

	g.sky.Render(cam.SkyboxViewMatrix(), proj)

	progs.Sphere.Use()
	g.state.Rig.Upload(progs.Sphere, lighting.MaxSphereShaderLights)
	progs.Sphere.SetVec3("viewPos", cam.Position)
	progs.Sphere.SetFloat("shininess", SphereShininess)
	for _, s := range g.state.Spheres {
		s.Render(progs.Sphere, view, proj)
	}

	g.markers.Render(progs.Marker, g.state.Rig, view, proj)

	if !g.weapon.Empty() {
		progs.Model.Use()
		g.state.Rig.Upload(progs.Model, lighting.MaxModelShaderLights)
		progs.Model.SetVec3("viewPos", cam.Position)
		progs.Model.SetVec3("objectColor", WeaponColor)
		progs.Model.SetFloat("shininess", WeaponShininess)
		progs.Model.SetInt("hasTexture", 0)
		g.weapon.Draw(progs.Model, view, proj)
	}

	g.crosshair.Render()

	g.renderer.End()
}

// Close releases every GPU resource, then the window.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.state != nil {
		g.state.Release()
	}
	g.markers.Release()
	if g.weapon != nil {
		g.weapon.Release()
	}
	if g.sky != nil {
		g.sky.Release()
	}
	if g.crosshair != nil {
		g.crosshair.Release()
	}
	if g.audio != nil {
		g.audio.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
