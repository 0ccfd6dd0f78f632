package wire

import (
	"bytes"
	"testing"
)

func TestReaderPrimitives(t *testing.T) {
	buf := []byte{0x01, 0xFF, 0x12, 0x34, 0x00, 0x00, 0x00, 0x2A, 0, 0, 0, 0, 0, 0, 0, 9}
	r := NewReader(buf)

	u8, err := r.Uint8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("Uint8: got (%v, %v)", u8, err)
	}

	i8, err := r.Int8()
	if err != nil || i8 != -1 {
		t.Fatalf("Int8: got (%v, %v)", i8, err)
	}

	u16, err := r.Uint16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("Uint16: got (%v, %v)", u16, err)
	}

	u32, err := r.Uint32()
	if err != nil || u32 != 42 {
		t.Fatalf("Uint32: got (%v, %v)", u32, err)
	}

	u64, err := r.Uint64()
	if err != nil || u64 != 9 {
		t.Fatalf("Uint64: got (%v, %v)", u64, err)
	}

	if r.Len() != 0 {
		t.Fatalf("expected buffer exhausted, %d bytes remain", r.Len())
	}
}

func TestReaderTruncated(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.Uint16(); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.PutUint8(0x01)
	w.PutInt8(-1)
	w.PutUint16(0x1234)
	w.PutUint32(42)
	w.PutUint64(9)
	w.PutBytes([]byte{0xAA, 0xBB})

	r := NewReader(w.Bytes())
	if v, _ := r.Uint8(); v != 0x01 {
		t.Fatalf("Uint8 round-trip mismatch: %v", v)
	}
	if v, _ := r.Int8(); v != -1 {
		t.Fatalf("Int8 round-trip mismatch: %v", v)
	}
	if v, _ := r.Uint16(); v != 0x1234 {
		t.Fatalf("Uint16 round-trip mismatch: %v", v)
	}
	if v, _ := r.Uint32(); v != 42 {
		t.Fatalf("Uint32 round-trip mismatch: %v", v)
	}
	if v, _ := r.Uint64(); v != 9 {
		t.Fatalf("Uint64 round-trip mismatch: %v", v)
	}
	b, _ := r.Bytes(2)
	if !bytes.Equal(b, []byte{0xAA, 0xBB}) {
		t.Fatalf("Bytes round-trip mismatch: %x", b)
	}
}

func TestBitField(t *testing.T) {
	// session << 6 | reserved, e.g. session=2 packed at bits 7-6.
	b := byte(2 << 6)
	if got := BitField(b, 7, 6); got != 2 {
		t.Fatalf("BitField(7,6) = %d, want 2", got)
	}
	if !Bit(0x80, 7) {
		t.Fatal("Bit(0x80, 7) should be set")
	}
	if Bit(0x7F, 7) {
		t.Fatal("Bit(0x7F, 7) should be clear")
	}
}

func TestPaddedByteLen(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 8: 1, 9: 2, 16: 2, 17: 3}
	for bits, want := range cases {
		if got := PaddedByteLen(bits); got != want {
			t.Errorf("PaddedByteLen(%d) = %d, want %d", bits, got, want)
		}
	}
}
