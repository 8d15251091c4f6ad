package core

// BodyId names the rigid bodies the simulation shares with the physics engine.
type BodyId int

const (
	BodyBall BodyId = iota
	BodyLeftPaddle
	BodyRightPaddle
	BodyCeiling
	BodyFloor
)

func (id BodyId) String() string {
	switch id {
	case BodyBall:
		return "ball"
	case BodyLeftPaddle:
		return "left paddle"
	case BodyRightPaddle:
		return "right paddle"
	case BodyCeiling:
		return "ceiling"
	case BodyFloor:
		return "floor"
	default:
		return "unknown"
	}
}

func PaddleBody(side Side) BodyId {
	if side == Left {
		return BodyLeftPaddle
	}
	return BodyRightPaddle
}

// PaddleSide reports which paddle the body is, if it is one.
func (id BodyId) PaddleSide() (Side, bool) {
	switch id {
	case BodyLeftPaddle:
		return Left, true
	case BodyRightPaddle:
		return Right, true
	default:
		return Left, false
	}
}

// Contact is one body pair from a collision-start notification. Order carries no meaning.
type Contact struct {
	A, B BodyId
}

// BallPaddle reports the paddle side when the pair is the ball and a paddle, in either order.
func (c Contact) BallPaddle() (Side, bool) {
	switch {
	case c.A == BodyBall:
		return c.B.PaddleSide()
	case c.B == BodyBall:
		return c.A.PaddleSide()
	default:
		return Left, false
	}
}

// Engine is the rigid-body world that advances true positions between ticks. Velocities are in
// pixels per tick. Collision starts are delivered by pushing onto the GameState's
// CollisionQueue from inside the engine's own step.
type Engine interface {
	Position(id BodyId) Vector2
	Velocity(id BodyId) Vector2
	SetPosition(id BodyId, p Vector2)
	SetVelocity(id BodyId, v Vector2)
}
