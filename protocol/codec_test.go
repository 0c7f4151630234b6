package protocol

import "testing"

func TestEncodeRejectsEmptyTypeAndNilPayload(t *testing.T) {
	if _, err := Encode("", Tear{}); err == nil {
		t.Fatalf("expected error for empty type")
	}
	if _, err := Encode(MsgTear, nil); err == nil {
		t.Fatalf("expected error for nil payload")
	}
}

func TestDecodeEnvelopeRejectsEmpty(t *testing.T) {
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error for empty buffer")
	}
	if _, err := DecodeEnvelope([]byte("{")); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}

func TestTearRoundTripThroughEnvelope(t *testing.T) {
	b, err := Encode(MsgTear, Tear{X: 12.5, Y: 40})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgTear {
		t.Fatalf("type = %q, want %q", env.T, MsgTear)
	}
	tear, err := DecodePayload[Tear](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if tear.X != 12.5 || tear.Y != 40 {
		t.Fatalf("tear = %+v", tear)
	}
}

func TestDecodePayloadEmpty(t *testing.T) {
	if _, err := DecodePayload[Resize](Envelope{T: MsgResize}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
