package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mo-shahab/go-breakout/server/config"
	"github.com/mo-shahab/go-breakout/server/game"
	"github.com/mo-shahab/go-breakout/server/player"
	pb "github.com/mo-shahab/go-breakout/server/proto"
)

// Term plays a local game on one engine and draws it into the terminal.
type Term struct {
	screen   tcell.Screen
	engine   *game.Engine
	playerID string
	cfg      config.Config

	width, height int
}

func NewTerm(cfg config.Config) (*Term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	engine := game.NewEngine(cfg, "local", nil)
	id, err := engine.AddPlayer()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	t := &Term{
		screen:   screen,
		engine:   engine,
		playerID: id,
		cfg:      cfg,
	}
	t.width, t.height = screen.Size()
	return t, nil
}

// scale converts field units to terminal cells
func (t *Term) scale() (float64, float64) {
	return float64(t.width) / t.cfg.FieldWidth, float64(t.height-1) / t.cfg.FieldHeight
}

func (t *Term) handleInput(ev tcell.Event) bool {
	var err error

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyLeft:
			err = t.engine.MovePlayer(t.playerID, player.West)
		case ev.Key() == tcell.KeyRight:
			err = t.engine.MovePlayer(t.playerID, player.East)
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				err = t.engine.MovePlayer(t.playerID, player.West)
			case 'l':
				err = t.engine.MovePlayer(t.playerID, player.East)
			case ' ':
				err = t.engine.FirePlayer(t.playerID)
			}
		}

	case *tcell.EventMouse:
		x, _ := ev.Position()
		sx, _ := t.scale()
		err = t.engine.SetPlayerX(t.playerID, float64(x)/sx-t.cfg.PaddleWidth/2)
		if ev.Buttons()&tcell.Button1 != 0 {
			err = t.engine.FirePlayer(t.playerID)
		}

	case *tcell.EventResize:
		t.width, t.height = t.screen.Size()
		t.screen.Sync()
	}

	if err != nil {
		log.Printf("Command failed: %v", err)
	}
	return true
}

func (t *Term) draw(s *pb.Snapshot) {
	t.screen.Clear()
	sx, sy := t.scale()

	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, p := range s.Paddles {
		y := int(p.Y * sy)
		from := int(math.Floor(p.X * sx))
		to := int(math.Ceil((p.X + p.W) * sx))
		for x := from; x < to && x < t.width; x++ {
			t.screen.SetContent(x, y, '█', nil, paddleStyle)
		}
	}

	for _, b := range s.Balls {
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		if b.Attached {
			style = style.Bold(true)
		}
		t.screen.SetContent(int((b.X+b.W/2)*sx), int((b.Y+b.H/2)*sy), '●', nil, style)
	}

	status := fmt.Sprintf(" tick %d  ←/→ or h/l move  space fire  q quit ", s.Tick)
	for i, r := range status {
		if i >= t.width {
			break
		}
		t.screen.SetContent(i, t.height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}

	t.screen.Show()
}

func (t *Term) run() {
	ticker := time.NewTicker(t.cfg.TickRate())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !t.handleInput(ev) {
				return
			}

		case <-ticker.C:
			t.engine.Tick()
			t.draw(t.engine.Snapshot())
		}
	}
}

// logOutput picks where log lines go while tcell owns the terminal. With no
// path they are dropped.
func logOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	logPath := flag.String("log", "", "file to append log lines to")
	flag.Parse()

	logFile, err := logOutput(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	term, err := NewTerm(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer term.screen.Fini()

	term.run()
}
