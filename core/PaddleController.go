package core

// PaddleController moves paddles along their fixed column.
type PaddleController struct {
	Speed float64
	Arena Arena
}

func NewPaddle(side Side, s Settings) *Paddle {
	x := s.PaddleInset
	if side == Right {
		x = s.ArenaWidth - s.PaddleInset
	}
	return &Paddle{
		Side:     side,
		Position: Vector2{X: x, Y: s.ArenaHeight / 2},
		Width:    s.PaddleWidth,
		Height:   s.PaddleHeight,
		Intent:   Still,
	}
}

// SetIntent overwrites the paddle's intent. The last writer wins.
func (c *PaddleController) SetIntent(p *Paddle, intent Intent) {
	p.Intent = intent
}

// Advance moves the paddle one tick along its intent, pinned to the arena's paddle range.
func (c *PaddleController) Advance(p *Paddle) {
	if p.Intent == Still {
		return
	}
	p.Position.Y = c.Arena.ClampPaddleY(p.Position.Y + p.Intent.Sign()*c.Speed)
}
