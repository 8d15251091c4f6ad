package core

import (
	"PongSim/logger"
	"fmt"
)

// StepDriver layers the deterministic per-tick corrections on top of whatever the engine did
// since the previous tick. It never steps the engine itself.
type StepDriver struct {
	State  *GameState
	Engine Engine
}

// NewStepDriver hands the initial ball and paddle state to the engine.
func NewStepDriver(state *GameState, engine Engine) *StepDriver {
	d := &StepDriver{State: state, Engine: engine}

	ball := state.Ball.Ball
	engine.SetPosition(BodyBall, ball.Position)
	engine.SetVelocity(BodyBall, ball.Velocity)
	for _, p := range state.Paddles {
		engine.SetPosition(PaddleBody(p.Side), p.Position)
	}
	return d
}

// Step runs one tick: key events become intents, the goal check runs, queued paddle contacts
// are answered, the bounce policy's periodic correction runs, and paddles advance. Contacts
// queued in a tick that ended in a goal belong to the ball before its reset and are dropped.
func (d *StepDriver) Step() Snapshot {
	st := d.State
	st.Tick++

	d.applyInputs()

	ball := &st.Ball.Ball
	pulledPos := d.Engine.Position(BodyBall)
	pulledVel := d.Engine.Velocity(BodyBall)
	ball.Position, ball.Velocity = pulledPos, pulledVel

	contacts := st.Collisions.Drain()
	if st.Ball.CheckOutOfBounds() {
		if len(contacts) > 0 {
			logger.Log.Debug(fmt.Sprintf(logger.StaleContactsMsg, len(contacts)))
		}
		contacts = nil
	}
	for _, c := range contacts {
		if side, ok := c.BallPaddle(); ok {
			st.Policy.PaddleHit(st.Ball, st.Paddle(side))
		}
	}

	st.Policy.Periodic(st.Ball)

	for _, p := range st.Paddles {
		before := p.Position
		st.Controller.Advance(p)
		if p.Position != before {
			d.Engine.SetPosition(PaddleBody(p.Side), p.Position)
		}
	}

	if ball.Position != pulledPos {
		d.Engine.SetPosition(BodyBall, ball.Position)
	}
	if ball.Velocity != pulledVel {
		d.Engine.SetVelocity(BodyBall, ball.Velocity)
	}

	return st.Snapshot()
}

func (d *StepDriver) applyInputs() {
	st := d.State
	for _, e := range st.Inputs.Drain() {
		side, intent, ok := st.Keys.Apply(e)
		if !ok {
			logger.Log.Trace(fmt.Sprintf(logger.UnknownKeyMsg, e.Key))
			continue
		}
		st.Controller.SetIntent(st.Paddle(side), intent)
	}
}
