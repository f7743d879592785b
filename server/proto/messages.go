package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative breakout.proto

// NewError wraps an error text in a Message
func NewError(text string) *Message {
	return &Message{
		Type:        MsgType_error,
		MessageType: &Message_Error{Error: &ErrorMessage{Error: text}},
	}
}

func NewWelcome(playerID, roomID string) *Message {
	return &Message{
		Type:        MsgType_welcome,
		MessageType: &Message_Welcome{Welcome: &WelcomeMessage{PlayerId: playerID, RoomId: roomID}},
	}
}

func NewSnapshot(s *Snapshot) *Message {
	return &Message{
		Type:        MsgType_snapshot,
		MessageType: &Message_Snapshot{Snapshot: s},
	}
}

func NewMove(direction string) *Message {
	return &Message{
		Type:        MsgType_move,
		MessageType: &Message_Move{Move: &MoveMessage{Direction: direction}},
	}
}

func NewSetX(x float64) *Message {
	return &Message{
		Type:        MsgType_set_x,
		MessageType: &Message_SetX{SetX: &SetXMessage{X: x}},
	}
}

// NewFire has no payload, the type alone is the command
func NewFire() *Message {
	return &Message{Type: MsgType_fire}
}
