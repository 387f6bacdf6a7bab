package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/aimlab/internal/engine/picking"
	"github.com/Faultbox/aimlab/internal/logger"
)

// ClickResult describes a shot that hit a target.
type ClickResult struct {
	Hit      picking.Hit
	Previous mgl32.Vec3 // target center before respawn
	Score    int
}

// ResolveClick hit-tests ray against every target. The nearest target hit is
// scored and respawned. ok is false on a miss, which changes nothing.
func (s *State) ResolveClick(ray picking.Ray) (ClickResult, bool) {
	hit, ok := picking.Nearest(ray, s.Spheres, s.Padding)
	if !ok {
		logger.Debug("shot missed")
		return ClickResult{}, false
	}

	target := s.Spheres[hit.Index]
	res := ClickResult{Hit: hit, Previous: target.Position()}

	s.Score += PointsPerHit
	s.respawn(target)
	res.Score = s.Score

	logger.Debug("target hit",
		zap.Int("index", hit.Index),
		zap.Float32("t", hit.T),
		zap.Int("score", s.Score),
	)
	return res, true
}

// Shoot fires from the camera through the crosshair.
func (s *State) Shoot() (ClickResult, bool) {
	return s.ResolveClick(picking.CameraRay(s.Camera.Position, s.Camera.Front))
}

// Title is the window caption for score.
func Title(score int) string {
	return fmt.Sprintf("Aim Lab - Score: %d", score)
}
