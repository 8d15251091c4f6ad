package main

import (
	"PongSim/core"
	"PongSim/logger"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const NetSymbol = 0x2590

// defaultKeyHold outlasts the usual terminal auto-repeat start delay (500-660ms).
const defaultKeyHold = 600 * time.Millisecond

// terminalHost renders a session on a tcell screen. Terminals report key presses and repeats
// but never releases, so a key counts as released once no repeat arrived for holdTime.
type terminalHost struct {
	screen   tcell.Screen
	session  *session
	holdTime time.Duration
	lastSeen map[string]time.Time
}

func runTerminal(s *session, holdTime time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)

	h := &terminalHost{
		screen:   screen,
		session:  s,
		holdTime: holdTime,
		lastSeen: make(map[string]time.Time),
	}

	logger.Log.Info(fmt.Sprintf(logger.HostStartMsg, FrontendTerminal))
	h.startGameLoop()
	logger.Log.Info(fmt.Sprintf(logger.HostStopMsg, FrontendTerminal))
	return nil
}

func (h *terminalHost) startGameLoop() {
	inputChan := h.initUserInput()

	ticker := time.NewTicker(h.session.state.Settings.TickPeriod)
	defer ticker.Stop()

	snap := h.session.snapshot()
	for {
		select {
		case ev, ok := <-inputChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				h.screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return
				}
				h.keyPressed(terminalKeyName(ev), time.Now())
			}

		case now := <-ticker.C:
			h.releaseStaleKeys(now)
			if !snap.GameOver {
				snap = h.session.tick()
			}
			h.drawView(snap)
		}
	}
}

// initUserInput polls the screen on its own goroutine and hands events to the loop.
func (h *terminalHost) initUserInput() <-chan tcell.Event {
	inputChan := make(chan tcell.Event, 16)

	go func() {
		defer close(inputChan)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			inputChan <- ev
		}
	}()

	return inputChan
}

func (h *terminalHost) keyPressed(key string, now time.Time) {
	if _, held := h.lastSeen[key]; !held {
		h.session.press(key, true)
	}
	h.lastSeen[key] = now
}

func (h *terminalHost) releaseStaleKeys(now time.Time) {
	for key, seen := range h.lastSeen {
		if now.Sub(seen) >= h.holdTime {
			delete(h.lastSeen, key)
			h.session.press(key, false)
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// terminalKeyName maps tcell keys onto the identifiers keymaps use.
func terminalKeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ev.Name()
}

func (h *terminalHost) drawView(snap core.Snapshot) {
	h.screen.Clear()

	windowWidth, windowHeight := h.screen.Size()
	settings := h.session.state.Settings
	sx := float64(windowWidth) / settings.ArenaWidth
	sy := float64(windowHeight) / settings.ArenaHeight

	//中線
	h.Print(0, windowWidth/2, 1, windowHeight, NetSymbol)

	//兩個球拍
	for _, p := range snap.Paddles {
		col := int(math.Floor((p.X - settings.PaddleWidth/2) * sx))
		row := int(math.Floor((p.Y - settings.PaddleHeight/2) * sy))
		width := int(math.Max(1, math.Round(settings.PaddleWidth*sx)))
		height := int(math.Max(1, math.Round(settings.PaddleHeight*sy)))
		h.Print(row, col, width, height, PaddleSymbol)
	}

	//球
	h.Print(int(snap.Ball.Y*sy), int(snap.Ball.X*sx), 1, 1, BallSymbol)

	//分數更新
	h.drawLetters(windowWidth/4, 1, fmt.Sprint(snap.Score[core.Left]))
	h.drawLetters((windowWidth/4)*3, 1, fmt.Sprint(snap.Score[core.Right]))
	if snap.GameOver {
		h.drawLetters(windowWidth/2, windowHeight/2, fmt.Sprintf("%s wins, q to quit", snap.Winner))
	}

	h.screen.Show()
}

func (h *terminalHost) Print(row, col, width, height int, ch rune) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			h.screen.SetContent(col+c, row+r, ch, nil, tcell.StyleDefault)
		}
	}
}

// drawLetters writes word centered on column x.
func (h *terminalHost) drawLetters(x int, y int, word string) {
	startX := x - len([]rune(word))/2
	for i, letter := range []rune(word) {
		h.screen.SetContent(startX+i, y, letter, nil, tcell.StyleDefault)
	}
}
