package protocol

import "testing"

func TestMessageConstants(t *testing.T) {
	if MsgHello != "hello" {
		t.Fatalf("MsgHello = %q, want %q", MsgHello, "hello")
	}
	if MsgWelcome != "welcome" {
		t.Fatalf("MsgWelcome = %q, want %q", MsgWelcome, "welcome")
	}
	if MsgState != "state" {
		t.Fatalf("MsgState = %q, want %q", MsgState, "state")
	}
	if MsgTear != "tear" {
		t.Fatalf("MsgTear = %q, want %q", MsgTear, "tear")
	}
	if MsgResize != "resize" {
		t.Fatalf("MsgResize = %q, want %q", MsgResize, "resize")
	}
}

func TestTimingConstants(t *testing.T) {
	if SimTickHz != 60 {
		t.Fatalf("SimTickHz = %d, want %d", SimTickHz, 60)
	}
	if BroadcastHz != 30 {
		t.Fatalf("BroadcastHz = %d, want %d", BroadcastHz, 30)
	}
}

func TestTimingSanity(t *testing.T) {
	if SimTickHz <= 0 || BroadcastHz <= 0 {
		t.Fatalf("timing constants must be > 0")
	}
	if SimTickHz%BroadcastHz != 0 {
		t.Fatalf("SimTickHz %% BroadcastHz != 0 (%d %% %d)", SimTickHz, BroadcastHz)
	}
}
