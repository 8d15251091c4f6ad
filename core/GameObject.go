package core

import "math"

// Vector2 is a position in arena pixels or a velocity in pixels per tick.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Scale(f float64) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
}

func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opponent is the side defending the other goal line.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Intent is the discrete vertical move signal of a paddle.
type Intent int

const (
	Still Intent = iota
	Up
	Down
)

// Sign is the direction along the arena Y axis, which grows downward.
func (i Intent) Sign() float64 {
	switch i {
	case Up:
		return -1
	case Down:
		return 1
	default:
		return 0
	}
}

func (i Intent) String() string {
	switch i {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "still"
	}
}

type Paddle struct {
	Side          Side
	Position      Vector2 // center; X never changes after creation
	Width, Height float64
	Intent        Intent
}

type Ball struct {
	Position    Vector2
	Velocity    Vector2
	Radius      float64
	TargetSpeed float64
}

// Arena is the fixed playing field. The ceiling sits at y=0, the floor at y=Height and the goal
// lines at x=0 and x=Width.
type Arena struct {
	Width, Height          float64
	MinPaddleY, MaxPaddleY float64
}

func (a Arena) Center() Vector2 {
	return Vector2{X: a.Width / 2, Y: a.Height / 2}
}

// Goal reports which side scores when the ball is at x, if any. Both goal lines are inside.
func (a Arena) Goal(x float64) (Side, bool) {
	if x < 0 {
		return Right, true
	}
	if x > a.Width {
		return Left, true
	}
	return Left, false
}

func (a Arena) ClampPaddleY(y float64) float64 {
	return math.Max(a.MinPaddleY, math.Min(a.MaxPaddleY, y))
}
