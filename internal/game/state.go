package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aimlab/internal/config"
	"github.com/Faultbox/aimlab/internal/engine/camera"
	"github.com/Faultbox/aimlab/internal/engine/lighting"
	"github.com/Faultbox/aimlab/internal/engine/sphere"
)

// First target, placed in front of the camera.
var (
	TestSpherePosition = mgl32.Vec3{0, 0, -2}
	TestSphereColor    = mgl32.Vec3{1, 0, 0}
)

const TestSphereRadius = 0.5

// CameraStart is where the player stands at startup.
var CameraStart = mgl32.Vec3{0, 0, 3}

// Color channel range for respawned targets.
const (
	ColorMin = 0.2
	ColorMax = 1.0
)

// PointsPerHit is added to the score for every target hit.
const PointsPerHit = 10

// Spawn bounds where and how large respawned targets are.
type Spawn struct {
	Extent    float32 // positions fall in [-Extent, Extent] on each axis
	RadiusMin float32
	RadiusMax float32
}

// State is everything the frame loop mutates.
type State struct {
	Rig     *lighting.Rig
	Spheres []*sphere.Sphere
	Score   int
	Camera  *camera.FlyCamera

	Spawn   Spawn
	Padding float32 // added to every radius in hit tests

	rng *rand.Rand
}

// NewState builds the lights, camera and targets described by cfg.
// The first target is always the fixed test sphere; the rest spawn randomly.
func NewState(cfg *config.Config, rng *rand.Rand) (*State, error) {
	g := cfg.Game
	s := &State{
		Rig:    lighting.DefaultRig(),
		Camera: camera.NewFlyCamera(CameraStart),
		Spawn: Spawn{
			Extent:    g.SpawnExtent,
			RadiusMin: g.RadiusMin,
			RadiusMax: g.RadiusMax,
		},
		Padding: g.HitPadding,
		rng:     rng,
	}
	s.Camera.Sensitivity = g.MouseSensitivity
	s.Camera.Speed = g.MoveSpeed
	s.Camera.FOV = cfg.Graphics.FOV
	s.Camera.Near = cfg.Graphics.Near
	s.Camera.Far = cfg.Graphics.Far

	for i := 0; i < g.SphereCount; i++ {
		sp, err := sphere.New(TestSpherePosition, TestSphereRadius, g.Sectors, g.Stacks)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		if i == 0 {
			sp.SetColor(TestSphereColor)
		} else {
			s.respawn(sp)
		}
		s.Spheres = append(s.Spheres, sp)
	}
	return s, nil
}

// between returns a uniform value in [lo, hi].
func (s *State) between(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}

func (s *State) respawn(sp *sphere.Sphere) {
	e := s.Spawn.Extent
	pos := mgl32.Vec3{s.between(-e, e), s.between(-e, e), s.between(-e, e)}
	col := mgl32.Vec3{
		s.between(ColorMin, ColorMax),
		s.between(ColorMin, ColorMax),
		s.between(ColorMin, ColorMax),
	}
	sp.Set(pos, s.between(s.Spawn.RadiusMin, s.Spawn.RadiusMax), col)
}

// Release frees the GPU buffers of every target.
func (s *State) Release() {
	for _, sp := range s.Spheres {
		sp.Release()
	}
}
