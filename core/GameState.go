package core

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GameState is everything one game session owns. It is confined to the loop goroutine.
type GameState struct {
	SessionId string
	Settings  Settings
	Arena     Arena
	Tick      uint64

	Paddles    [2]*Paddle
	Ball       *BallModel
	Policy     BouncePolicy
	Controller *PaddleController
	Keys       *KeyMapper
	Score      *Scoreboard

	Inputs     *InputQueue
	Collisions *CollisionQueue
}

func NewGameState(s Settings, km Keymap) (*GameState, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	policy, err := NewBouncePolicy(s)
	if err != nil {
		return nil, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	st := &GameState{
		SessionId:  uuid.New().String(),
		Settings:   s,
		Arena:      s.Arena(),
		Paddles:    [2]*Paddle{NewPaddle(Left, s), NewPaddle(Right, s)},
		Ball:       NewBallModel(s, rng),
		Policy:     policy,
		Controller: &PaddleController{Speed: s.PaddleSpeed, Arena: s.Arena()},
		Keys:       NewKeyMapper(km),
		Score:      &Scoreboard{FinalScore: s.WinningScore},
		Inputs:     &InputQueue{},
		Collisions: &CollisionQueue{},
	}
	st.Ball.OnGoal(st.Score.Record)
	return st, nil
}

func (g *GameState) Paddle(side Side) *Paddle {
	return g.Paddles[side]
}

// Snapshot is the read-only view a renderer takes once per frame.
type Snapshot struct {
	SessionId    string
	Tick         uint64
	Ball         Vector2
	BallVelocity Vector2
	BallRadius   float64
	TargetSpeed  float64
	Paddles      [2]Vector2
	Score        [2]int
	GameOver     bool
	Winner       Side
}

func (g *GameState) Snapshot() Snapshot {
	over, winner := g.Score.IsGameOver()
	return Snapshot{
		SessionId:    g.SessionId,
		Tick:         g.Tick,
		Ball:         g.Ball.Ball.Position,
		BallVelocity: g.Ball.Ball.Velocity,
		BallRadius:   g.Ball.Ball.Radius,
		TargetSpeed:  g.Ball.Ball.TargetSpeed,
		Paddles:      [2]Vector2{g.Paddles[Left].Position, g.Paddles[Right].Position},
		Score:        g.Score.Points,
		GameOver:     over,
		Winner:       winner,
	}
}
