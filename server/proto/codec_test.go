package proto

import (
	"bytes"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func TestSnapshotRoundTrip(t *testing.T) {
	in := NewSnapshot(&Snapshot{
		RoomId: "a1b2c3",
		Tick:   42,
		Paddles: []*PaddleState{
			{Id: "p1", PlayerId: "u1", X: 50, Y: 400, W: 100, H: 10},
		},
		Balls: []*BallState{
			{Id: "b1", X: 95, Y: 390, W: 10, H: 10, Attached: true},
			{Id: "b2", X: 12.5, Y: 80.25, W: 10, H: 10, Vx: -3, Vy: -4},
		},
	})

	b, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := &Message{}
	if err := proto.Unmarshal(b, out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", out, in)
	}
	if out.GetSnapshot().GetBalls()[1].GetVy() != -4 {
		t.Fatalf("ball velocity lost: %v", out.GetSnapshot().GetBalls()[1])
	}
}

func TestCommandEncoding(t *testing.T) {
	b, err := proto.Marshal(NewMove("east"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// field 1 varint 1, field 2 bytes { field 1 bytes "east" }
	want := []byte{0x08, 0x01, 0x12, 0x06, 0x0a, 0x04, 'e', 'a', 's', 't'}
	if !bytes.Equal(b, want) {
		t.Fatalf("encoded %x, want %x", b, want)
	}
}

func TestFireHasNoPayload(t *testing.T) {
	b, err := proto.Marshal(NewFire())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	m := &Message{}
	if err := proto.Unmarshal(b, m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m.GetType() != MsgType_fire || m.GetMessageType() != nil {
		t.Fatalf("decoded %v", m)
	}
}

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(MsgType_fire))

	m := &Message{}
	if err := proto.Unmarshal(b, m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m.GetType() != MsgType_fire {
		t.Fatalf("type = %v, want fire", m.GetType())
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	b, _ := proto.Marshal(NewSetX(120))

	m := &Message{}
	if err := proto.Unmarshal(b[:len(b)-3], m); err == nil {
		t.Fatalf("expected error for truncated frame")
	}
}

func TestNilGetters(t *testing.T) {
	var m *Message
	if m.GetSnapshot() != nil || m.GetType() != MsgType_unknown || m.GetError().GetError() != "" {
		t.Fatalf("nil message getters returned values")
	}
	if got := NewError("boom").GetError().GetError(); got != "boom" {
		t.Fatalf("error text = %q", got)
	}
	if MsgType_set_x.String() != "set_x" {
		t.Fatalf("enum name = %q", MsgType_set_x.String())
	}
}
