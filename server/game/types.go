package game

import (
	"github.com/mo-shahab/go-breakout/server/ball"
	"github.com/mo-shahab/go-breakout/server/player"
	"github.com/pkg/errors"
)

var (
	ErrUnknownPlayer = errors.New("unknown player")
	ErrRoomFull      = errors.New("room is full")
)

// MessageBroadcaster sends encoded frames to every client of a room
type MessageBroadcaster interface {
	BroadcastToRoom(roomId string, message []byte)
}

// seat is one connected player together with the balls it served
type seat struct {
	player *player.Player
	balls  []*ball.Ball
}
