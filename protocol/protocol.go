package protocol

import (
	"encoding/json"
)

const (
	MsgHello   = "hello"
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgTear    = "tear"
	MsgResize  = "resize"
)

const (
	SimTickHz   = 60 // ~16ms frames
	BroadcastHz = 30
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
