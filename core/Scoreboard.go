package core

import (
	"PongSim/logger"
	"fmt"
)

// Scoreboard counts goals in memory. A zero FinalScore never ends the match.
type Scoreboard struct {
	FinalScore int
	Points     [2]int
}

// Record is a goal handler for BallModel.OnGoal.
func (s *Scoreboard) Record(e GoalEvent) {
	s.Points[e.Scorer]++

	if over, winner := s.IsGameOver(); over {
		logger.Log.Info(fmt.Sprintf(logger.MatchOverMsg, winner, s.Points[winner], s.Points[winner.Opponent()]))
	}
}

func (s *Scoreboard) IsGameOver() (bool, Side) {
	if s.FinalScore == 0 {
		return false, Left
	}
	if s.Points[Left] >= s.FinalScore {
		return true, Left
	}
	if s.Points[Right] >= s.FinalScore {
		return true, Right
	}
	return false, Left
}
