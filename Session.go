package main

import (
	"PongSim/core"
	"PongSim/logger"
	"PongSim/physics"
	"fmt"
)

// session ties one game state to its box2d world. Both hosts call tick once per frame from
// their loop goroutine, so the engine step, the collision callbacks and the driver never overlap.
type session struct {
	state  *core.GameState
	world  *physics.World
	driver *core.StepDriver
}

func newSession(settings core.Settings, keymap core.Keymap) (*session, error) {
	state, err := core.NewGameState(settings, keymap)
	if err != nil {
		return nil, err
	}
	logger.Log.WithSession(state.SessionId)

	world := physics.NewWorld(settings, state.Collisions)
	s := &session{
		state:  state,
		world:  world,
		driver: core.NewStepDriver(state, world),
	}

	logger.Log.Info(fmt.Sprintf(logger.SessionStartMsg,
		settings.ArenaWidth, settings.ArenaHeight, state.Policy.Name(), settings.TickPeriod))
	return s, nil
}

// tick advances the engine by one period, then runs the driver's corrections on its output.
func (s *session) tick() core.Snapshot {
	s.world.Step(s.state.Settings.TickPeriod)
	return s.driver.Step()
}

func (s *session) press(key string, down bool) {
	s.state.Inputs.Push(core.KeyEvent{Key: key, Down: down})
}

func (s *session) snapshot() core.Snapshot {
	return s.state.Snapshot()
}

func (s *session) close() {
	points := s.state.Score.Points
	logger.Log.Info(fmt.Sprintf(logger.SessionStopMsg, s.state.Tick, points[core.Left], points[core.Right]))
}
