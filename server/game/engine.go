// game/engine.go
package game

import (
	"log"
	"sync"
	"time"

	"github.com/mo-shahab/go-breakout/server/ball"
	"github.com/mo-shahab/go-breakout/server/canvas"
	"github.com/mo-shahab/go-breakout/server/config"
	"github.com/mo-shahab/go-breakout/server/paddle"
	"github.com/mo-shahab/go-breakout/server/player"
	pb "github.com/mo-shahab/go-breakout/server/proto"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
)

// Engine runs one field: it owns the players, paddles and balls of a room
// and serialises every command and tick through a single mutex.
type Engine struct {
	cfg         config.Config
	roomID      string
	field       *canvas.Canvas
	seats       map[string]*seat
	order       []string
	tick        uint64
	broadcaster MessageBroadcaster
	ticker      *time.Ticker
	stopChan    chan struct{}
	mu          sync.Mutex
}

// NewEngine creates a new game engine instance. broadcaster may be nil.
func NewEngine(cfg config.Config, roomID string, broadcaster MessageBroadcaster) *Engine {
	return &Engine{
		cfg:         cfg,
		roomID:      roomID,
		field:       canvas.New(cfg.FieldWidth, cfg.FieldHeight),
		seats:       make(map[string]*seat),
		broadcaster: broadcaster,
		stopChan:    make(chan struct{}),
	}
}

func (e *Engine) Field() canvas.Field {
	return e.field
}

// Start begins the game loop
func (e *Engine) Start() {
	e.mu.Lock()
	if e.ticker != nil {
		e.mu.Unlock()
		return // Already running
	}
	e.ticker = time.NewTicker(e.cfg.TickRate())
	ticks, stop := e.ticker.C, e.stopChan
	e.mu.Unlock()

	log.Printf("Starting game engine for room %s", e.roomID)
	go e.gameLoop(ticks, stop)
}

// Stop halts the game loop
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
		close(e.stopChan)
		e.stopChan = make(chan struct{})
		log.Printf("Game engine for room %s stopped", e.roomID)
	}
}

func (e *Engine) gameLoop(ticks <-chan time.Time, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticks:
			e.Tick()
		}
	}
}

// AddPlayer seats a new player with one paddle centred near the bottom of
// the field and a ball resting on it.
func (e *Engine) AddPlayer() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.seats) >= e.cfg.MaxPlayers {
		return "", errors.Wrapf(ErrRoomFull, "room %s has %d players", e.roomID, len(e.seats))
	}

	pos := canvas.Vector{
		X: (e.cfg.FieldWidth - e.cfg.PaddleWidth) / 2,
		Y: e.cfg.FieldHeight - e.cfg.PaddleMargin - e.cfg.PaddleHeight,
	}
	pd := paddle.New(e.field, pos, canvas.Size{Width: e.cfg.PaddleWidth, Height: e.cfg.PaddleHeight})

	b := ball.New(e.field, pos.Add(canvas.Vector{X: (e.cfg.PaddleWidth - e.cfg.BallSize) / 2}),
		canvas.Size{Width: e.cfg.BallSize, Height: e.cfg.BallSize}, e.cfg.BallSpeed)
	if err := pd.AttachBall(b); err != nil {
		return "", err
	}

	pl := player.New(pd)
	e.seats[pl.ID] = &seat{player: pl, balls: []*ball.Ball{b}}
	e.order = append(e.order, pl.ID)

	log.Printf("Player %s joined room %s", pl.ID, e.roomID)
	return pl.ID, nil
}

// RemovePlayer drops a player together with its paddles and balls.
func (e *Engine) RemovePlayer(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.seats[id]; !ok {
		return
	}
	delete(e.seats, id)
	for i, seatID := range e.order {
		if seatID == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	log.Printf("Player %s left room %s", id, e.roomID)
}

// Players returns the number of seated players
func (e *Engine) Players() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.seats)
}

func (e *Engine) withPlayer(id string, fn func(*player.Player)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.seats[id]
	if !ok {
		return errors.Wrapf(ErrUnknownPlayer, "player %s", id)
	}
	fn(s.player)
	return nil
}

// MovePlayer steps every paddle of the player one notch in dir.
func (e *Engine) MovePlayer(id string, dir player.Direction) error {
	return e.withPlayer(id, func(p *player.Player) { p.MovePaddles(dir) })
}

// SetPlayerX places every paddle of the player at x.
func (e *Engine) SetPlayerX(id string, x float64) error {
	return e.withPlayer(id, func(p *player.Player) { p.SetPaddlesPositionX(x) })
}

// FirePlayer launches every ball resting on the player's paddles.
func (e *Engine) FirePlayer(id string) error {
	return e.withPlayer(id, func(p *player.Player) { p.FirePaddles() })
}

// Tick advances the world by one step and broadcasts the resulting snapshot.
func (e *Engine) Tick() {
	e.mu.Lock()
	e.step()
	e.tick++
	snapshot := e.snapshot()
	e.mu.Unlock()

	e.broadcastSnapshot(snapshot)
}

func (e *Engine) step() {
	for _, id := range e.order {
		s := e.seats[id]
		for _, b := range s.balls {
			if !b.Flying() {
				continue
			}
			b.Step()

			if b.Falling() {
				e.bounce(b)
			}

			if b.Lost() {
				e.serve(s, b)
			}
		}
	}
}

// bounce sends a falling ball back up off the first paddle it touches,
// using the same direction rule as a launch.
func (e *Engine) bounce(b *ball.Ball) {
	pos := b.Position()
	size := b.Size()
	for _, id := range e.order {
		for _, pd := range e.seats[id].player.Paddles() {
			if !pd.Hits(pos, size) {
				continue
			}
			b.SetPosition(canvas.Vector{X: pos.X, Y: pd.Position().Y - size.Height})
			b.SetVelocity(pd.ComputeFireVelocity(b))
			return
		}
	}
}

// serve puts a lost ball back on the first paddle of the player who owns it.
func (e *Engine) serve(s *seat, b *ball.Ball) {
	paddles := s.player.Paddles()
	if len(paddles) == 0 {
		b.SetVelocity(canvas.Vector{})
		return
	}

	pd := paddles[0]
	b.SetPosition(canvas.Vector{X: pd.Position().X + (pd.Size().Width-b.Size().Width)/2})
	if err := pd.AttachBall(b); err != nil {
		log.Printf("Failed to serve ball %s: %v", b.ID, err)
	}
}

// Snapshot returns a point-in-time copy of the field
func (e *Engine) Snapshot() *pb.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

func (e *Engine) snapshot() *pb.Snapshot {
	s := &pb.Snapshot{RoomId: e.roomID, Tick: e.tick}
	attached := make(map[paddle.Ball]bool)

	for _, id := range e.order {
		for _, pd := range e.seats[id].player.Paddles() {
			pos, size := pd.Position(), pd.Size()
			s.Paddles = append(s.Paddles, &pb.PaddleState{
				Id:       pd.ID,
				PlayerId: id,
				X:        pos.X,
				Y:        pos.Y,
				W:        size.Width,
				H:        size.Height,
			})
			for _, b := range pd.AttachedBalls() {
				attached[b] = true
			}
		}
	}

	for _, id := range e.order {
		for _, b := range e.seats[id].balls {
			pos, size, v := b.Position(), b.Size(), b.Velocity()
			s.Balls = append(s.Balls, &pb.BallState{
				Id:       b.ID,
				X:        pos.X,
				Y:        pos.Y,
				W:        size.Width,
				H:        size.Height,
				Vx:       v.X,
				Vy:       v.Y,
				Attached: attached[b],
			})
		}
	}
	return s
}

// broadcastSnapshot sends the snapshot to every client in the room
func (e *Engine) broadcastSnapshot(s *pb.Snapshot) {
	if e.broadcaster == nil {
		return
	}

	message, err := proto.Marshal(pb.NewSnapshot(s))
	if err != nil {
		log.Printf("Failed to encode snapshot: %v", err)
		return
	}
	e.broadcaster.BroadcastToRoom(e.roomID, message)
}
