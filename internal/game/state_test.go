package game

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/aimlab/internal/config"
	"github.com/Faultbox/aimlab/internal/engine/lighting"
	"github.com/Faultbox/aimlab/internal/engine/picking"
	"github.com/Faultbox/aimlab/internal/engine/sphere"
)

func newTestState(t *testing.T, spheres int) *State {
	t.Helper()
	cfg := config.Default()
	cfg.Game.SphereCount = spheres
	s, err := NewState(cfg, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

func TestNewStateFirstTargetIsTestSphere(t *testing.T) {
	s := newTestState(t, 3)

	if len(s.Spheres) != 3 {
		t.Fatalf("got %d spheres, want 3", len(s.Spheres))
	}
	first := s.Spheres[0]
	if first.Position() != TestSpherePosition || first.Radius() != TestSphereRadius || first.Color() != TestSphereColor {
		t.Errorf("first target = %v r=%v c=%v", first.Position(), first.Radius(), first.Color())
	}
	for i, sp := range s.Spheres[1:] {
		assertSpawned(t, s, sp)
		if sp.Uploaded() {
			t.Errorf("sphere %d uploaded without a GL context", i+1)
		}
	}
	if s.Rig.Len() != lighting.MaxSceneLights {
		t.Errorf("rig has %d lights, want %d", s.Rig.Len(), lighting.MaxSceneLights)
	}
	if s.Camera.Position != CameraStart {
		t.Errorf("camera at %v, want %v", s.Camera.Position, CameraStart)
	}
	if s.Score != 0 {
		t.Errorf("initial score %d", s.Score)
	}
}

func TestNewStateAppliesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Game.MouseSensitivity = 0.25
	cfg.Game.MoveSpeed = 7
	cfg.Game.HitPadding = 1
	cfg.Graphics.FOV = 60
	s, err := NewState(cfg, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatal(err)
	}
	if s.Camera.Sensitivity != 0.25 || s.Camera.Speed != 7 || s.Camera.FOV != 60 {
		t.Errorf("camera not configured: %+v", s.Camera)
	}
	if s.Padding != 1 {
		t.Errorf("padding = %v, want 1", s.Padding)
	}
}

func TestNewStateRejectsBadTessellation(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Sectors = 2
	if _, err := NewState(cfg, rand.New(rand.NewPCG(1, 1))); err == nil {
		t.Error("expected error for 2 sectors")
	}
}

func assertSpawned(t *testing.T, s *State, sp *sphere.Sphere) {
	t.Helper()
	e := s.Spawn.Extent
	for i, v := range sp.Position() {
		if v < -e || v > e {
			t.Errorf("position[%d] = %v outside [-%v, %v]", i, v, e, e)
		}
	}
	for i, v := range sp.Color() {
		if v < ColorMin || v > ColorMax {
			t.Errorf("color[%d] = %v outside [%v, %v]", i, v, ColorMin, ColorMax)
		}
	}
	if r := sp.Radius(); r < s.Spawn.RadiusMin || r > s.Spawn.RadiusMax {
		t.Errorf("radius %v outside [%v, %v]", r, s.Spawn.RadiusMin, s.Spawn.RadiusMax)
	}
}

func TestRespawnStaysInRange(t *testing.T) {
	s := newTestState(t, 1)
	sp := s.Spheres[0]
	for i := 0; i < 200; i++ {
		s.respawn(sp)
		assertSpawned(t, s, sp)
	}
}

func TestResolveClickNearestWins(t *testing.T) {
	s := newTestState(t, 0)
	far := sphere.MustNew(mgl32.Vec3{0, 0, -3}, 1, 12, 6)
	near := sphere.MustNew(mgl32.Vec3{0, 0, 1}, 1, 12, 6)
	s.Spheres = []*sphere.Sphere{far, near}

	res, ok := s.ResolveClick(picking.NewRay(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}))
	if !ok {
		t.Fatal("expected a hit")
	}
	if res.Hit.Index != 1 {
		t.Errorf("hit index %d, want 1 (nearer sphere)", res.Hit.Index)
	}
	if res.Hit.T < 2.999 || res.Hit.T > 3.001 {
		t.Errorf("t = %v, want 3", res.Hit.T)
	}
	if res.Previous != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("previous = %v", res.Previous)
	}
	if s.Score != PointsPerHit || res.Score != PointsPerHit {
		t.Errorf("score = %d/%d, want %d", s.Score, res.Score, PointsPerHit)
	}
	assertSpawned(t, s, near)
	if far.Position() != (mgl32.Vec3{0, 0, -3}) || far.Radius() != 1 {
		t.Error("farther sphere was modified")
	}
}

func TestResolveClickMiss(t *testing.T) {
	s := newTestState(t, 1)
	before := s.Spheres[0].Position()

	if _, ok := s.ResolveClick(picking.NewRay(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0})); ok {
		t.Fatal("expected a miss")
	}
	if s.Score != 0 {
		t.Errorf("score changed on miss: %d", s.Score)
	}
	if s.Spheres[0].Position() != before {
		t.Error("sphere moved on miss")
	}
}

func TestShootFromStartHitsTestSphere(t *testing.T) {
	s := newTestState(t, 1)
	res, ok := s.Shoot()
	if !ok {
		t.Fatal("looking straight ahead should hit the test sphere")
	}
	if res.Hit.T < 4.499 || res.Hit.T > 4.501 {
		t.Errorf("t = %v, want 4.5", res.Hit.T)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10", s.Score)
	}
}

func TestScoreAccumulates(t *testing.T) {
	s := newTestState(t, 0)
	target := sphere.MustNew(mgl32.Vec3{}, 1, 12, 6)
	s.Spheres = []*sphere.Sphere{target}
	for i := 1; i <= 3; i++ {
		target.SetPosition(mgl32.Vec3{})
		ray := picking.NewRay(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1})
		if _, ok := s.ResolveClick(ray); !ok {
			t.Fatalf("shot %d missed", i)
		}
		if s.Score != i*PointsPerHit {
			t.Errorf("after %d hits score = %d", i, s.Score)
		}
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Aim Lab - Score: 0"},
		{10, "Aim Lab - Score: 10"},
		{1230, "Aim Lab - Score: 1230"},
	}
	for _, tt := range tests {
		if got := Title(tt.score); got != tt.want {
			t.Errorf("Title(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
