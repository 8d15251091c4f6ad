package core

import "fmt"

// BouncePolicy decides how the ball reacts to paddles and what correction runs every tick.
type BouncePolicy interface {
	Name() string
	// PaddleHit runs once per ball/paddle collision start.
	PaddleHit(b *BallModel, p *Paddle)
	// Periodic runs once per tick after the goal check.
	Periodic(b *BallModel)
}

func NewBouncePolicy(s Settings) (BouncePolicy, error) {
	switch s.BouncePolicy {
	case PolicyFlat:
		return FlatPolicy{}, nil
	case PolicyEscalating:
		return EscalatingPolicy{Increment: s.SpeedIncrement}, nil
	case PolicyRandomWall:
		return RandomWallPolicy{Margin: s.WallMargin}, nil
	default:
		return nil, fmt.Errorf("%w: unknown bounce policy %q", ErrInvalidSettings, s.BouncePolicy)
	}
}

// FlatPolicy angles the ball off paddles at a constant speed.
type FlatPolicy struct{}

func (FlatPolicy) Name() string { return PolicyFlat }

func (FlatPolicy) PaddleHit(b *BallModel, p *Paddle) {
	b.Deflect(p)
}

func (FlatPolicy) Periodic(b *BallModel) {
	b.MaintainSpeed()
}

// EscalatingPolicy is FlatPolicy with the target speed raised on every paddle hit, before the
// new velocity is computed.
type EscalatingPolicy struct {
	Increment float64
}

func (EscalatingPolicy) Name() string { return PolicyEscalating }

func (e EscalatingPolicy) PaddleHit(b *BallModel, p *Paddle) {
	b.Ball.TargetSpeed += e.Increment
	b.Deflect(p)
}

func (EscalatingPolicy) Periodic(b *BallModel) {
	b.MaintainSpeed()
}

// RandomWallPolicy leaves paddle hits to the engine and jitters the ball near the walls.
type RandomWallPolicy struct {
	Margin float64
}

func (RandomWallPolicy) Name() string { return PolicyRandomWall }

func (RandomWallPolicy) PaddleHit(*BallModel, *Paddle) {}

func (r RandomWallPolicy) Periodic(b *BallModel) {
	b.BounceBall(r.Margin)
}
