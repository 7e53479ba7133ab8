package asciicubes

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Duration reads and writes TOML strings such as "30ms".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// CubeSpec places one cube explicitly instead of randomly.
type CubeSpec struct {
	Side            int        `toml:"side"`
	Position        [3]float64 `toml:"position"`
	Velocity        [3]float64 `toml:"velocity"`
	Angle           [3]float64 `toml:"angle"`
	AngularVelocity [3]float64 `toml:"angular_velocity"`
}

func (s CubeSpec) position() Vector3 {
	return NewVector3(s.Position[0], s.Position[1], s.Position[2])
}

// Config is everything the scene needs. Speeds are per millisecond.
type Config struct {
	ScreenWidth     int            `toml:"screen_width"`
	ScreenHeight    int            `toml:"screen_height"`
	Projection      ProjectionKind `toml:"projection"`
	WorldBounds     [3]float64     `toml:"world_bounds"`
	CubeCount       int            `toml:"cube_count"`
	MinSide         int            `toml:"min_side"`
	MaxSide         int            `toml:"max_side"`
	MaxLinearSpeed  float64        `toml:"max_linear_speed"`
	MaxAngularSpeed float64        `toml:"max_angular_speed"`
	CameraDistance  float64        `toml:"camera_distance"`
	FovDegrees      float64        `toml:"fov_degrees"`
	Near            float64        `toml:"near"`
	Far             float64        `toml:"far"`
	ColorEnabled    bool           `toml:"color_enabled"`
	Collisions      bool           `toml:"collisions"`
	Palette         []Color        `toml:"palette"`
	FrameInterval   Duration       `toml:"frame_interval"`
	Seed            int64          `toml:"seed"`
	Cubes           []CubeSpec     `toml:"cube,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:     80,
		ScreenHeight:    40,
		Projection:      ProjectionOrthographic,
		WorldBounds:     [3]float64{45, 45, 45},
		CubeCount:       3,
		MinSide:         8,
		MaxSide:         10,
		MaxLinearSpeed:  0.04,
		MaxAngularSpeed: 0.005,
		CameraDistance:  100,
		FovDegrees:      60,
		Near:            1,
		Far:             1000,
		ColorEnabled:    true,
		Palette:         DefaultPalette(),
		FrameInterval:   Duration{30 * time.Millisecond},
	}
}

// LoadConfig reads a TOML file over the defaults. Unknown keys are an error.
// The result is not validated so callers can apply overrides first.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Bounds returns the world bounds as a vector.
func (c *Config) Bounds() Vector3 {
	return NewVector3(c.WorldBounds[0], c.WorldBounds[1], c.WorldBounds[2])
}

// LargestSide is the biggest cube side the config can produce.
func (c *Config) LargestSide() int {
	largest := c.MaxSide
	for _, s := range c.Cubes {
		if s.Side > largest {
			largest = s.Side
		}
	}
	return largest
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// Validate rejects configs the pipeline cannot render, including degenerate
// projection bounds. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, invalid("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight))
	}
	if _, err := ParseProjectionKind(string(c.Projection)); err != nil {
		errs = append(errs, err)
	}
	for i, b := range c.WorldBounds {
		if !(b > 0) {
			errs = append(errs, invalid("world_bounds[%d] = %v must be positive", i, b))
		}
	}
	if c.CubeCount < 0 {
		errs = append(errs, invalid("cube_count %d is negative", c.CubeCount))
	}
	if c.MinSide < 1 || c.MaxSide < c.MinSide {
		errs = append(errs, invalid("side range [%d, %d] is empty", c.MinSide, c.MaxSide))
	}
	if c.MaxLinearSpeed < 0 || c.MaxAngularSpeed < 0 {
		errs = append(errs, invalid("speeds must not be negative"))
	}
	if !(c.Near > 0) || !(c.Far > c.Near) {
		errs = append(errs, invalid("near %v and far %v must satisfy 0 < near < far", c.Near, c.Far))
	}
	if !(c.CameraDistance > 0) {
		errs = append(errs, invalid("camera_distance %v must be positive", c.CameraDistance))
	}
	if c.Projection == ProjectionPerspective && !(c.FovDegrees > 0 && c.FovDegrees < 180) {
		errs = append(errs, invalid("fov_degrees %v must be in (0, 180)", c.FovDegrees))
	}
	if c.FrameInterval.Duration <= 0 {
		errs = append(errs, invalid("frame_interval %v must be positive", c.FrameInterval))
	}
	for i, s := range c.Cubes {
		if s.Side < 1 {
			errs = append(errs, invalid("cube[%d].side %d must be at least 1", i, s.Side))
		}
		for axis, p := range s.Position {
			if math.Abs(p) > c.WorldBounds[axis] {
				errs = append(errs, invalid("cube[%d].position[%d] = %v is outside world_bounds", i, axis, p))
			}
		}
	}
	if c.Collisions {
		errs = append(errs, c.overlappingCubes()...)
	}
	return errors.Join(errs...)
}

// overlappingCubes reports explicit cubes that would start inside each other's
// bounding spheres. Such pairs bounce in place forever.
func (c *Config) overlappingCubes() []error {
	var errs []error
	for i, a := range c.Cubes {
		for j := i + 1; j < len(c.Cubes); j++ {
			b := c.Cubes[j]
			if a.position().DistanceTo(b.position()) < halfDiagonal(a.Side)+halfDiagonal(b.Side) {
				errs = append(errs, invalid("cube[%d] and cube[%d] overlap", i, j))
			}
		}
	}
	return errs
}
