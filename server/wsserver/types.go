package wsserver

import (
	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-breakout/server/config"
	"github.com/mo-shahab/go-breakout/server/room"
)

type WebSocketHandler struct {
	Upgrader    websocket.Upgrader
	RoomManager *room.RoomManager
	cfg         config.Config
}
