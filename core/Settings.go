package core

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSettings = errors.New("invalid settings")

const (
	PolicyFlat       = "flat"
	PolicyEscalating = "escalating"
	PolicyRandomWall = "random-wall"
)

// Settings holds every tunable of a game session. Distances are arena pixels, speeds are pixels
// per tick.
type Settings struct {
	ArenaWidth       float64
	ArenaHeight      float64
	BarrierThickness float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64 // distance from each goal line to the paddle center
	PaddleSpeed  float64
	MinPaddleY   float64
	MaxPaddleY   float64

	BallRadius     float64
	InitialSpeed   float64
	SpeedIncrement float64 // 0 disables escalation

	BouncePolicy string
	WallMargin   float64 // random-wall policy only

	TickPeriod   time.Duration
	WinningScore int   // 0 plays forever
	Seed         int64 // 0 seeds from the clock
}

func DefaultSettings() Settings {
	width, height := 800.0, 600.0
	return Settings{
		ArenaWidth:       width,
		ArenaHeight:      height,
		BarrierThickness: 60,

		PaddleWidth:  20,
		PaddleHeight: 150,
		PaddleInset:  150,
		PaddleSpeed:  10,
		MinPaddleY:   80,
		MaxPaddleY:   height - 80,

		BallRadius:     10,
		InitialSpeed:   10,
		SpeedIncrement: 0.5,

		BouncePolicy: PolicyEscalating,
		WallMargin:   20,

		TickPeriod: 16 * time.Millisecond,
	}
}

// Arena derives the fixed playing field.
func (s Settings) Arena() Arena {
	return Arena{
		Width:      s.ArenaWidth,
		Height:     s.ArenaHeight,
		MinPaddleY: s.MinPaddleY,
		MaxPaddleY: s.MaxPaddleY,
	}
}

// TicksPerSecond converts per-tick speeds into per-second speeds.
func (s Settings) TicksPerSecond() float64 {
	return float64(time.Second) / float64(s.TickPeriod)
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.ArenaWidth <= 0 || s.ArenaHeight <= 0:
		return invalid("arena must be positive, got %.1fx%.1f", s.ArenaWidth, s.ArenaHeight)
	case s.PaddleWidth <= 0 || s.PaddleHeight <= 0:
		return invalid("paddle must be positive, got %.1fx%.1f", s.PaddleWidth, s.PaddleHeight)
	case s.PaddleHeight > s.ArenaHeight:
		return invalid("paddle height %.1f exceeds arena height %.1f", s.PaddleHeight, s.ArenaHeight)
	case s.PaddleInset < s.PaddleWidth/2 || s.PaddleInset > s.ArenaWidth/2:
		return invalid("paddle inset %.1f must lie in [%.1f, %.1f]", s.PaddleInset, s.PaddleWidth/2, s.ArenaWidth/2)
	case s.MinPaddleY > s.MaxPaddleY:
		return invalid("min paddle y %.1f is above max paddle y %.1f", s.MinPaddleY, s.MaxPaddleY)
	case s.MinPaddleY-s.PaddleHeight/2 < 0 || s.MaxPaddleY+s.PaddleHeight/2 > s.ArenaHeight:
		return invalid("paddle range [%.1f, %.1f] leaves the arena", s.MinPaddleY, s.MaxPaddleY)
	case s.PaddleSpeed <= 0:
		return invalid("paddle speed must be positive, got %.2f", s.PaddleSpeed)
	case s.BallRadius <= 0:
		return invalid("ball radius must be positive, got %.2f", s.BallRadius)
	case s.InitialSpeed <= 0:
		return invalid("initial speed must be positive, got %.2f", s.InitialSpeed)
	case s.SpeedIncrement < 0:
		return invalid("speed increment must not be negative, got %.2f", s.SpeedIncrement)
	case s.WallMargin < 0 || s.WallMargin > s.ArenaHeight/2:
		return invalid("wall margin %.1f out of range", s.WallMargin)
	case s.BarrierThickness <= 0:
		return invalid("barrier thickness must be positive, got %.1f", s.BarrierThickness)
	case s.TickPeriod <= 0:
		return invalid("tick period must be positive, got %s", s.TickPeriod)
	case s.WinningScore < 0:
		return invalid("winning score must not be negative, got %d", s.WinningScore)
	}

	switch s.BouncePolicy {
	case PolicyFlat, PolicyEscalating, PolicyRandomWall:
	default:
		return invalid("unknown bounce policy %q", s.BouncePolicy)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidSettings, fmt.Sprintf(format, args...))
}
