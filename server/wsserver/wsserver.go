package wsserver

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-breakout/server/client"
	pb "github.com/mo-shahab/go-breakout/server/proto"
	"google.golang.org/protobuf/proto"
)

// ServeHTTP handles WebSocket connections. The room query parameter picks
// the room to join; without it a fresh room is opened.
func (wsh *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := wsh.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error %s when connecting to the socket", err)
		return
	}

	c := client.New(conn, wsh.cfg.SendQueueSize)

	roomId := r.URL.Query().Get("room")
	created := false
	if roomId == "" {
		roomId = wsh.RoomManager.CreateRoom()
		created = true
	}

	if err := wsh.RoomManager.JoinRoom(roomId, c); err != nil {
		log.Printf("Client %s could not join room %s: %v", c.ID, roomId, err)
		if created {
			wsh.RoomManager.CloseRoom(roomId)
		}
		if encoded, marshalErr := proto.Marshal(pb.NewError(err.Error())); marshalErr == nil {
			conn.WriteMessage(websocket.BinaryMessage, encoded)
		}
		conn.Close()
		return
	}

	log.Printf("Client %s joined room %s as player %s", c.ID, c.RoomId, c.PlayerID)

	// Message queue goroutine
	go func() {
		if err := c.WritePump(); err != nil {
			wsh.disconnectPlayer(c)
		}
	}()

	wsh.send(c, pb.NewWelcome(c.PlayerID, c.RoomId))

	// Handle incoming messages
	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Error reading message from client %s: %v", c.ID, err)
			wsh.disconnectPlayer(c)
			return
		}

		message := &pb.Message{}
		if err := proto.Unmarshal(p, message); err != nil {
			log.Printf("Error unmarshalling protobuf: %v", err)
			wsh.sendError(c, "Invalid protobuf format")
			continue
		}

		wsh.handleMessage(c, message)
	}
}
