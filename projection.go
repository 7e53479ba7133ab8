package asciicubes

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type ProjectionKind string

const (
	ProjectionOrthographic ProjectionKind = "orthographic"
	ProjectionPerspective  ProjectionKind = "perspective"
)

func ParseProjectionKind(s string) (ProjectionKind, error) {
	switch ProjectionKind(s) {
	case ProjectionOrthographic:
		return ProjectionOrthographic, nil
	case ProjectionPerspective:
		return ProjectionPerspective, nil
	}
	return "", fmt.Errorf("unknown projection %q: %w", s, ErrInvalidConfig)
}

// Orthographic maps the box [left,right]x[bottom,top]x[-near,-far] onto
// [-1,1]^3. W stays 1.
func Orthographic(left, right, bottom, top, near, far float64) Matrix4 {
	return FromMgl(mgl64.Ortho(left, right, bottom, top, near, far))
}

// Perspective builds a frustum looking down -z. The resulting W is the
// distance in front of the eye, so dividing by it foreshortens.
func Perspective(fovY, aspect, near, far float64) Matrix4 {
	return FromMgl(mgl64.Perspective(fovY, aspect, near, far))
}

// ProjectionFor builds the projection matrix described by cfg. cfg must have
// passed Validate.
func ProjectionFor(cfg *Config) Matrix4 {
	aspect := float64(cfg.ScreenWidth) / float64(cfg.ScreenHeight)
	if cfg.Projection == ProjectionPerspective {
		return Perspective(cfg.FovDegrees*math.Pi/180, aspect, cfg.Near, cfg.Far)
	}

	halfH := math.Max(cfg.WorldBounds[1], cfg.WorldBounds[0]/aspect) + float64(cfg.LargestSide())
	halfW := halfH * aspect
	return Orthographic(-halfW, halfW, -halfH, halfH, cfg.Near, cfg.Far)
}
