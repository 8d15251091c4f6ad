package core

import (
	"math"
	"testing"
)

func newTestDriver(t *testing.T, s Settings) (*StepDriver, *memoryEngine) {
	t.Helper()
	engine := newMemoryEngine()
	return NewStepDriver(newTestState(t, s), engine), engine
}

func TestNewStepDriver_PushesInitialState(t *testing.T) {
	d, engine := newTestDriver(t, testSettings())

	if engine.Position(BodyBall) != (Vector2{X: 400, Y: 300}) {
		t.Errorf("expected ball at center, got %v", engine.Position(BodyBall))
	}
	if engine.Velocity(BodyBall) != d.State.Ball.Ball.Velocity {
		t.Errorf("expected engine velocity %v, got %v", d.State.Ball.Ball.Velocity, engine.Velocity(BodyBall))
	}
	if engine.Position(BodyLeftPaddle) != (Vector2{X: 150, Y: 300}) {
		t.Errorf("expected left paddle at (150, 300), got %v", engine.Position(BodyLeftPaddle))
	}
	if engine.Position(BodyRightPaddle) != (Vector2{X: 650, Y: 300}) {
		t.Errorf("expected right paddle at (650, 300), got %v", engine.Position(BodyRightPaddle))
	}
}

func TestStepDriver_InputsMovePaddles(t *testing.T) {
	d, engine := newTestDriver(t, testSettings())

	d.State.Inputs.Push(KeyEvent{Key: "w", Down: true})
	d.State.Inputs.Push(KeyEvent{Key: "ArrowDown", Down: true})
	d.State.Inputs.Push(KeyEvent{Key: "x", Down: true})
	snap := d.Step()

	if snap.Paddles[Left].Y != 290 || snap.Paddles[Right].Y != 310 {
		t.Errorf("expected paddles at 290 and 310, got %v", snap.Paddles)
	}
	if engine.Position(BodyLeftPaddle).Y != 290 {
		t.Errorf("expected engine left paddle at 290, got %v", engine.Position(BodyLeftPaddle))
	}
	if d.State.Inputs.Len() != 0 {
		t.Errorf("expected input queue drained, %d left", d.State.Inputs.Len())
	}

	d.State.Inputs.Push(KeyEvent{Key: "w", Down: false})
	snap = d.Step()
	if snap.Paddles[Left].Y != 290 {
		t.Errorf("expected released paddle to stop at 290, got %f", snap.Paddles[Left].Y)
	}
	if snap.Paddles[Right].Y != 320 {
		t.Errorf("expected held paddle to keep moving to 320, got %f", snap.Paddles[Right].Y)
	}
}

func TestStepDriver_GoalDropsStaleContacts(t *testing.T) {
	d, engine := newTestDriver(t, testSettings())

	engine.SetPosition(BodyBall, Vector2{X: -5, Y: 300})
	engine.SetVelocity(BodyBall, Vector2{X: -10, Y: 0})
	d.State.Collisions.Push(Contact{A: BodyBall, B: BodyLeftPaddle})

	snap := d.Step()

	if snap.Score != [2]int{0, 1} {
		t.Errorf("expected right to score once, got %v", snap.Score)
	}
	if snap.Ball != (Vector2{X: 400, Y: 300}) {
		t.Errorf("expected ball reset to center, got %v", snap.Ball)
	}
	if engine.Position(BodyBall) != snap.Ball {
		t.Errorf("expected engine ball moved to center, got %v", engine.Position(BodyBall))
	}
	if snap.TargetSpeed != 10 {
		t.Errorf("expected the stale contact to be ignored, target speed %f", snap.TargetSpeed)
	}
	if d.State.Collisions.Len() != 0 {
		t.Errorf("expected collision queue drained, %d left", d.State.Collisions.Len())
	}
}

func TestStepDriver_PaddleContactEscalates(t *testing.T) {
	d, engine := newTestDriver(t, testSettings())

	engine.SetPosition(BodyBall, Vector2{X: 170, Y: 300})
	engine.SetVelocity(BodyBall, Vector2{X: 8, Y: 0})
	d.State.Collisions.Push(Contact{A: BodyLeftPaddle, B: BodyBall})

	snap := d.Step()

	if snap.TargetSpeed != 10.5 {
		t.Errorf("expected target speed 10.5, got %f", snap.TargetSpeed)
	}
	if snap.BallVelocity != (Vector2{X: 10.5, Y: 0}) {
		t.Errorf("expected velocity (10.5, 0), got %v", snap.BallVelocity)
	}
	if engine.Velocity(BodyBall) != snap.BallVelocity {
		t.Errorf("expected engine velocity %v, got %v", snap.BallVelocity, engine.Velocity(BodyBall))
	}
}

func TestStepDriver_IgnoresNonPaddleContacts(t *testing.T) {
	d, engine := newTestDriver(t, testSettings())

	engine.SetPosition(BodyBall, Vector2{X: 400, Y: 15})
	engine.SetVelocity(BodyBall, Vector2{X: 6, Y: 8})
	d.State.Collisions.Push(Contact{A: BodyBall, B: BodyCeiling})
	d.State.Collisions.Push(Contact{A: BodyFloor, B: BodyLeftPaddle})

	snap := d.Step()

	if snap.TargetSpeed != 10 || snap.BallVelocity != (Vector2{X: 6, Y: 8}) {
		t.Errorf("expected ball untouched, got v=%v target=%f", snap.BallVelocity, snap.TargetSpeed)
	}
}

func TestStepDriver_MaintainsSpeed(t *testing.T) {
	d, engine := newTestDriver(t, testSettings())

	engine.SetVelocity(BodyBall, Vector2{X: 3, Y: 4})
	snap := d.Step()

	if !approx(snap.BallVelocity.X, 6) || !approx(snap.BallVelocity.Y, 8) {
		t.Errorf("expected (6, 8), got %v", snap.BallVelocity)
	}
	v := engine.Velocity(BodyBall)
	if math.Abs(v.Length()-10) > testEpsilon {
		t.Errorf("expected engine speed 10, got %f", v.Length())
	}
}

func TestStepDriver_ResetAfterRightGoal(t *testing.T) {
	d, engine := newTestDriver(t, testSettings())

	engine.SetPosition(BodyBall, Vector2{X: 400, Y: 300})
	engine.SetVelocity(BodyBall, Vector2{X: 5, Y: 5})
	d.Step()

	engine.SetPosition(BodyBall, Vector2{X: 810, Y: 305})
	snap := d.Step()

	if snap.Ball != (Vector2{X: 400, Y: 300}) {
		t.Errorf("expected (400, 300), got %v", snap.Ball)
	}
	if snap.Score != [2]int{1, 0} {
		t.Errorf("expected left to score once, got %v", snap.Score)
	}
	if math.Abs(snap.BallVelocity.Length()-10) > testEpsilon {
		t.Errorf("expected speed 10 after reset, got %f", snap.BallVelocity.Length())
	}
	if snap.Tick != 2 {
		t.Errorf("expected tick 2, got %d", snap.Tick)
	}
}

func TestStepDriver_GameOver(t *testing.T) {
	s := testSettings()
	s.WinningScore = 2
	d, engine := newTestDriver(t, s)

	for i := 0; i < 2; i++ {
		engine.SetPosition(BodyBall, Vector2{X: -1, Y: 300})
		snap := d.Step()
		if i == 0 && snap.GameOver {
			t.Fatal("expected the match to continue after one goal")
		}
		if i == 1 && (!snap.GameOver || snap.Winner != Right) {
			t.Errorf("expected right to win, got over=%v winner=%v", snap.GameOver, snap.Winner)
		}
	}
}
