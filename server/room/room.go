package room

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/mo-shahab/go-breakout/server/client"
	"github.com/mo-shahab/go-breakout/server/config"
	"github.com/mo-shahab/go-breakout/server/game"
	"github.com/pkg/errors"
)

var ErrRoomNotFound = errors.New("room not found")

// Room is a group of clients sharing one field
type Room struct {
	ID      string
	Clients map[string]*client.Client
	Engine  *game.Engine
	Mu      sync.Mutex
}

// Members returns the clients currently in the room
func (r *Room) Members() []*client.Client {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	members := make([]*client.Client, 0, len(r.Clients))
	for _, c := range r.Clients {
		members = append(members, c)
	}
	return members
}

// state of all the rooms
type RoomManager struct {
	Rooms       map[string]*Room
	cfg         config.Config
	broadcaster game.MessageBroadcaster
	Mu          sync.Mutex
}

func NewRoomManager(cfg config.Config, broadcaster game.MessageBroadcaster) *RoomManager {
	return &RoomManager{
		Rooms:       make(map[string]*Room),
		cfg:         cfg,
		broadcaster: broadcaster,
	}
}

// helpers
func generateRoomId() string {
	return uuid.New().String()[:6]
}

// CreateRoom opens an empty room with a running engine and returns its id
func (rm *RoomManager) CreateRoom() string {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	roomId := generateRoomId()
	for {
		if _, taken := rm.Rooms[roomId]; !taken {
			break
		}
		roomId = generateRoomId()
	}

	room := &Room{
		ID:      roomId,
		Clients: make(map[string]*client.Client),
		Engine:  game.NewEngine(rm.cfg, roomId, rm.broadcaster),
	}
	rm.Rooms[roomId] = room
	room.Engine.Start()

	log.Printf("Created Room with room id: %s", roomId)
	return roomId
}

// JoinRoom seats the client as a new player in the room's engine
func (rm *RoomManager) JoinRoom(roomId string, c *client.Client) error {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]
	if !exists {
		return errors.Wrapf(ErrRoomNotFound, "join %s", roomId)
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	playerID, err := room.Engine.AddPlayer()
	if err != nil {
		return err
	}

	c.RoomId = roomId
	c.PlayerID = playerID
	room.Clients[c.ID] = c
	log.Printf("Client %s joined the Room with room id: %s", c.ID, roomId)

	return nil
}

// RemoveClient takes the client and its player out of the room. The last
// client to leave closes the room.
func (rm *RoomManager) RemoveClient(roomId string, clientId string) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]
	if !exists {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	c, exists := room.Clients[clientId]
	if !exists {
		return
	}
	room.Engine.RemovePlayer(c.PlayerID)
	delete(room.Clients, clientId)

	if len(room.Clients) == 0 {
		rm.closeRoom(room)
	}
}

// CloseRoom stops and forgets a room nobody has joined. Rooms with clients
// are left alone.
func (rm *RoomManager) CloseRoom(roomId string) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]
	if !exists {
		return
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if len(room.Clients) == 0 {
		rm.closeRoom(room)
	}
}

// closeRoom expects rm.Mu to be held
func (rm *RoomManager) closeRoom(room *Room) {
	room.Engine.Stop()
	delete(rm.Rooms, room.ID)
	log.Printf("Room with %s has been closed", room.ID)
}

func (rm *RoomManager) GetRoom(roomId string) (*Room, bool) {
	rm.Mu.Lock()
	defer rm.Mu.Unlock()

	room, exists := rm.Rooms[roomId]

	return room, exists
}
