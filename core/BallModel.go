package core

import (
	"PongSim/logger"
	"fmt"
	"math"
	"math/rand"
)

const (
	speedEpsilon     = 1e-9 // tolerated drift between |velocity| and the target speed
	zeroSpeedEpsilon = 1e-9 // below this the velocity has no usable direction
)

// GoalEvent is raised when the ball crosses a goal line.
type GoalEvent struct {
	Scorer Side
	Exit   Vector2 // ball position when the crossing was detected
}

// BallModel owns the ball state and every rule that rewrites its velocity.
type BallModel struct {
	Ball         Ball
	Arena        Arena
	InitialSpeed float64

	rng          *rand.Rand
	goalHandlers []func(GoalEvent)
}

func NewBallModel(s Settings, rng *rand.Rand) *BallModel {
	b := &BallModel{
		Ball:         Ball{Radius: s.BallRadius},
		Arena:        s.Arena(),
		InitialSpeed: s.InitialSpeed,
		rng:          rng,
	}
	b.Reset()
	return b
}

// OnGoal subscribes fn to goal events. Handlers run after the ball has been reset.
func (b *BallModel) OnGoal(fn func(GoalEvent)) {
	b.goalHandlers = append(b.goalHandlers, fn)
}

// Reset puts the ball back in the center at the initial speed, heading along one of the four
// diagonals picked uniformly at random.
func (b *BallModel) Reset() {
	speed := b.InitialSpeed
	b.Ball.TargetSpeed = speed
	b.Ball.Position = b.Arena.Center()
	b.Ball.Velocity = Vector2{X: b.randomSign() * speed, Y: b.randomSign() * speed}

	logger.Log.Debug(fmt.Sprintf(logger.BallResetMsg,
		b.Ball.Position.X, b.Ball.Position.Y, b.Ball.Velocity.X, b.Ball.Velocity.Y))
}

func (b *BallModel) randomSign() float64 {
	if b.rng.Float64() < 0.5 {
		return 1
	}
	return -1
}

// MaintainSpeed rescales the velocity to the target speed, keeping its direction.
func (b *BallModel) MaintainSpeed() {
	magnitude := b.Ball.Velocity.Length()
	if magnitude < zeroSpeedEpsilon {
		logger.Log.Warn(fmt.Sprintf(logger.DegenerateVelocityMsg, magnitude))
		b.Reset()
		return
	}
	if math.Abs(magnitude-b.Ball.TargetSpeed) > speedEpsilon {
		b.Ball.Velocity = b.Ball.Velocity.Scale(b.Ball.TargetSpeed / magnitude)
	}
}

// CheckOutOfBounds resets the ball and notifies goal subscribers once the ball is strictly
// past a goal line.
func (b *BallModel) CheckOutOfBounds() bool {
	scorer, goal := b.Arena.Goal(b.Ball.Position.X)
	if !goal {
		return false
	}

	event := GoalEvent{Scorer: scorer, Exit: b.Ball.Position}
	logger.Log.Info(fmt.Sprintf(logger.GoalScoredMsg, scorer, event.Exit.X, event.Exit.Y))

	b.Reset()
	for _, handler := range b.goalHandlers {
		handler(event)
	}
	return true
}

// Deflect sends the ball off the paddle at an angle set by where it struck. The hit offset is
// normalized to the paddle half-height and not clamped, so corner hits exceed ±1.
func (b *BallModel) Deflect(p *Paddle) {
	offset := (b.Ball.Position.Y - p.Position.Y) / (p.Height / 2)
	speed := b.Ball.TargetSpeed

	b.Ball.Velocity = Vector2{
		X: b.departureSign(p) * speed,
		Y: offset * speed,
	}

	logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, p.Side, offset, speed))
}

// departureSign keeps the horizontal direction the engine left the ball with after resolving
// the contact. A ball with no horizontal motion is sent away from the paddle.
func (b *BallModel) departureSign(p *Paddle) float64 {
	vx := b.Ball.Velocity.X
	if vx != 0 {
		return math.Copysign(1, vx)
	}
	if b.Ball.Position.X < p.Position.X {
		return -1
	}
	return 1
}

// BounceBall scales each velocity component by an independent factor in [0.9, 1.1) while the
// ball is within margin of the ceiling or the floor.
func (b *BallModel) BounceBall(margin float64) {
	y := b.Ball.Position.Y
	if y > margin && y < b.Arena.Height-margin {
		return
	}
	b.Ball.Velocity.X *= b.jitter()
	b.Ball.Velocity.Y *= b.jitter()
}

func (b *BallModel) jitter() float64 {
	return 0.9 + 0.2*b.rng.Float64()
}
