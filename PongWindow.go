package main

import (
	"PongSim/core"
	"PongSim/logger"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// windowHost runs a session inside an ebiten window. Ebiten calls Update at a fixed rate on
// one goroutine, which gives the loop real key-down and key-up transitions.
type windowHost struct {
	session *session
	snap    core.Snapshot
	keys    []ebiten.Key
}

func runWindow(s *session) error {
	settings := s.state.Settings

	ebiten.SetWindowSize(int(settings.ArenaWidth), int(settings.ArenaHeight))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(int(math.Round(settings.TicksPerSecond())))

	h := &windowHost{session: s, snap: s.snapshot()}

	logger.Log.Info(fmt.Sprintf(logger.HostStartMsg, FrontendWindow))
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	logger.Log.Info(fmt.Sprintf(logger.HostStopMsg, FrontendWindow))
	return nil
}

func (h *windowHost) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		h.session.press(windowKeyName(k), true)
	}
	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		h.session.press(windowKeyName(k), false)
	}

	if !h.snap.GameOver {
		h.snap = h.session.tick()
	}
	return nil
}

func (h *windowHost) Draw(screen *ebiten.Image) {
	settings := h.session.state.Settings
	snap := h.snap

	ebitenutil.DrawLine(screen, settings.ArenaWidth/2, 0, settings.ArenaWidth/2, settings.ArenaHeight, color.Gray{Y: 96})

	for _, p := range snap.Paddles {
		ebitenutil.DrawRect(screen,
			p.X-settings.PaddleWidth/2, p.Y-settings.PaddleHeight/2,
			settings.PaddleWidth, settings.PaddleHeight,
			color.White)
	}
	ebitenutil.DrawCircle(screen, snap.Ball.X, snap.Ball.Y, snap.BallRadius, color.White)

	ebitenutil.DebugPrintAt(screen, fmt.Sprint(snap.Score[core.Left]), int(settings.ArenaWidth/4), 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(snap.Score[core.Right]), int(settings.ArenaWidth*3/4), 10)
	if snap.GameOver {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s wins, esc to quit", snap.Winner),
			int(settings.ArenaWidth/2)-60, int(settings.ArenaHeight/2))
	}
}

func (h *windowHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	settings := h.session.state.Settings
	return int(settings.ArenaWidth), int(settings.ArenaHeight)
}

// windowKeyName maps ebiten keys onto the identifiers keymaps use: letters in lower case,
// everything else by ebiten's name (ArrowUp, Digit1, ...).
func windowKeyName(k ebiten.Key) string {
	name := k.String()
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	return name
}
