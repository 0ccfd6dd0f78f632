package frame

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}

// S1: KEEPALIVE_ACK (type 72 = 0x48), message_id=0.
func TestEncodeKeepaliveAck(t *testing.T) {
	got := Encode(72, 0, nil)
	want := mustHex(t, "04480000000a00000000")
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

// S2: CLOSE_CONNECTION (type 14), message_id=7.
func TestEncodeCloseConnection(t *testing.T) {
	got := Encode(14, 7, nil)
	want := mustHex(t, "040e0000000a00000007")
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

// S3: ENABLE_ROSPEC (type 24), message_id=3, body = ROSpecID 1234.
func TestEncodeEnableROSpec(t *testing.T) {
	body := []byte{0x00, 0x00, 0x04, 0xd2}
	got := Encode(24, 3, body)
	want := mustHex(t, "04180000000e00000003000004d2")
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	body := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	encoded := Encode(61, 99, body)

	hdr, gotBody, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if hdr.Version != ProtocolVersion {
		t.Errorf("version = %d, want %d", hdr.Version, ProtocolVersion)
	}
	if hdr.Type != 61 {
		t.Errorf("type = %d, want 61", hdr.Type)
	}
	if hdr.MessageID != 99 {
		t.Errorf("message id = %d, want 99", hdr.MessageID)
	}
	if hdr.Length != uint32(len(encoded)) {
		t.Errorf("length = %d, want %d", hdr.Length, len(encoded))
	}
	if !bytes.Equal(gotBody, body) {
		t.Errorf("body = % x, want % x", gotBody, body)
	}
}

func TestDecodeNeedMoreData(t *testing.T) {
	full := Encode(61, 1, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	for k := 0; k < len(full); k++ {
		_, _, err := Decode(full[:k])
		if err == nil {
			t.Fatalf("Decode(full[:%d]) succeeded, want NeedMoreData", k)
		}
		want, ok := IsNeedMoreData(err)
		if !ok {
			if err == ErrShortFrame {
				continue
			}
			t.Fatalf("Decode(full[:%d]) = %v, want NeedMoreData", k, err)
		}
		if want != uint32(len(full)) && want != HeaderSize {
			t.Errorf("Decode(full[:%d]) wants %d, expected %d or %d", k, want, len(full), HeaderSize)
		}
	}
}

func TestDecodeShortFrame(t *testing.T) {
	// Length field claims less than the header size itself.
	bad := []byte{0x04, 0x3D, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x01}
	_, _, err := Decode(bad)
	if err != ErrShortFrame {
		t.Fatalf("expected ErrShortFrame, got %v", err)
	}
}
