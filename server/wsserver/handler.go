// wsserver/handler.go

package wsserver

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-breakout/server/client"
	"github.com/mo-shahab/go-breakout/server/config"
	"github.com/mo-shahab/go-breakout/server/player"
	pb "github.com/mo-shahab/go-breakout/server/proto"
	"github.com/mo-shahab/go-breakout/server/room"
	"google.golang.org/protobuf/proto"
)

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(cfg config.Config) *WebSocketHandler {
	handler := &WebSocketHandler{
		Upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		cfg:      cfg,
	}

	// engines broadcast their snapshots through this handler
	handler.RoomManager = room.NewRoomManager(cfg, handler)

	return handler
}

// BroadcastToRoom implements game.MessageBroadcaster
func (wsh *WebSocketHandler) BroadcastToRoom(roomId string, message []byte) {
	r, exists := wsh.RoomManager.GetRoom(roomId)
	if !exists {
		return
	}

	for _, c := range r.Members() {
		if !c.Send(message) {
			log.Printf("Dropping message, send queue full for client %s", c.ID)
		}
	}
}

func (wsh *WebSocketHandler) send(c *client.Client, m *pb.Message) {
	encoded, err := proto.Marshal(m)
	if err != nil {
		log.Printf("Failed to marshal %s message: %v", m.Type, err)
		return
	}
	if !c.Send(encoded) {
		log.Printf("Dropping %s message for client %s", m.Type, c.ID)
	}
}

func (wsh *WebSocketHandler) sendError(c *client.Client, text string) {
	wsh.send(c, pb.NewError(text))
}

// handleMessage processes incoming messages
func (wsh *WebSocketHandler) handleMessage(c *client.Client, message *pb.Message) {
	r, exists := wsh.RoomManager.GetRoom(c.RoomId)
	if !exists {
		wsh.sendError(c, "room is closed")
		return
	}
	engine := r.Engine

	var err error
	switch message.Type {
	case pb.MsgType_move:
		direction := message.GetMove().GetDirection()
		dir, ok := player.ParseDirection(direction)
		if !ok {
			wsh.sendError(c, "unknown direction "+direction)
			return
		}
		err = engine.MovePlayer(c.PlayerID, dir)
	case pb.MsgType_set_x:
		if message.GetSetX() == nil {
			wsh.sendError(c, "set_x without a position")
			return
		}
		err = engine.SetPlayerX(c.PlayerID, message.GetSetX().GetX())
	case pb.MsgType_fire:
		err = engine.FirePlayer(c.PlayerID)
	default:
		log.Printf("Unhandled message type %s from client %s", message.Type, c.ID)
		wsh.sendError(c, "unsupported message type "+message.Type.String())
		return
	}

	if err != nil {
		log.Printf("Command %s from client %s failed: %v", message.Type, c.ID, err)
		wsh.sendError(c, err.Error())
	}
}

// disconnectPlayer handles player disconnection
func (wsh *WebSocketHandler) disconnectPlayer(c *client.Client) {
	wsh.RoomManager.RemoveClient(c.RoomId, c.ID)
	c.Close()
	log.Printf("Client %s disconnected", c.ID)
}
