package core

import (
	"math"
	"math/rand"
	"testing"
)

const testEpsilon = 1e-9

// memoryEngine stands in for the rigid-body world: it stores what the driver writes and moves
// nothing unless a test says so.
type memoryEngine struct {
	positions  map[BodyId]Vector2
	velocities map[BodyId]Vector2
}

func newMemoryEngine() *memoryEngine {
	return &memoryEngine{
		positions:  make(map[BodyId]Vector2),
		velocities: make(map[BodyId]Vector2),
	}
}

func (e *memoryEngine) Position(id BodyId) Vector2       { return e.positions[id] }
func (e *memoryEngine) Velocity(id BodyId) Vector2       { return e.velocities[id] }
func (e *memoryEngine) SetPosition(id BodyId, p Vector2) { e.positions[id] = p }
func (e *memoryEngine) SetVelocity(id BodyId, v Vector2) { e.velocities[id] = v }

func testSettings() Settings {
	s := DefaultSettings()
	s.Seed = 1
	return s
}

func newTestBall(s Settings) *BallModel {
	return NewBallModel(s, rand.New(rand.NewSource(1)))
}

func newTestState(t *testing.T, s Settings) *GameState {
	t.Helper()
	st, err := NewGameState(s, DefaultKeymap())
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return st
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < testEpsilon
}
