package binary

import (
	"bytes"
	"io"
	"testing"
)

func TestSafeReader_ReadAt(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.bin")

	buf := make([]byte, 3)
	if err := sr.ReadAt(buf, 1, "middle bytes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf, []byte{0x02, 0x03, 0x04}) {
		t.Errorf("expected [2 3 4], got %v", buf)
	}
}

func TestSafeReader_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.bin")

	tests := []struct {
		name   string
		offset int64
		length int
	}{
		{"negative offset", -1, 1},
		{"offset past end", 3, 1},
		{"read crosses end", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.length), tt.offset, "test read")
			if err == nil {
				t.Fatal("expected error")
			}
			if _, ok := err.(*OutOfBoundsError); !ok {
				t.Errorf("expected OutOfBoundsError, got %T", err)
			}
		})
	}
}

func TestRead_BigEndian(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.bin")

	u8, err := Read[uint8](sr, 0, "u8")
	if err != nil || u8 != 0x12 {
		t.Errorf("uint8: got 0x%02X, err %v", u8, err)
	}

	u16, err := Read[uint16](sr, 0, "u16")
	if err != nil || u16 != 0x1234 {
		t.Errorf("uint16: got 0x%04X, err %v", u16, err)
	}

	u32, err := Read[uint32](sr, 0, "u32")
	if err != nil || u32 != 0x12345678 {
		t.Errorf("uint32: got 0x%08X, err %v", u32, err)
	}

	u64, err := Read[uint64](sr, 0, "u64")
	if err != nil || u64 != 0x123456789ABCDEF0 {
		t.Errorf("uint64: got 0x%016X, err %v", u64, err)
	}
}

func TestReader_Sequential(t *testing.T) {
	r := NewBytesReader([]byte("ID3\x04\x00abcdef"), "test")

	marker, err := r.ReadString(3, "marker")
	if err != nil || marker != "ID3" {
		t.Fatalf("marker: got %q, err %v", marker, err)
	}
	if r.Offset() != 3 {
		t.Errorf("expected offset 3, got %d", r.Offset())
	}

	r.Skip(2)
	rest, err := r.ReadBytes(6, "rest")
	if err != nil || string(rest) != "abcdef" {
		t.Fatalf("rest: got %q, err %v", rest, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", r.Remaining())
	}
}

func TestReader_Peek(t *testing.T) {
	r := NewBytesReader([]byte{0xFF, 0xFB, 0x90}, "test")

	if got := r.Peek(2); !bytes.Equal(got, []byte{0xFF, 0xFB}) {
		t.Errorf("peek(2): got %v", got)
	}
	if r.Offset() != 0 {
		t.Error("peek must not advance the offset")
	}

	// Near the end the peek is shortened, not failed.
	r.Seek(2, io.SeekStart)
	if got := r.Peek(4); !bytes.Equal(got, []byte{0x90}) {
		t.Errorf("short peek: got %v", got)
	}

	r.Seek(10, io.SeekStart)
	if got := r.Peek(1); got != nil {
		t.Errorf("peek past end: got %v, want nil", got)
	}
}

func TestReader_Seek(t *testing.T) {
	r := NewBytesReader(make([]byte, 100), "test")

	if off := r.Seek(40, io.SeekStart); off != 40 {
		t.Errorf("SeekStart: got %d", off)
	}
	if off := r.Seek(-10, io.SeekCurrent); off != 30 {
		t.Errorf("SeekCurrent: got %d", off)
	}
	if off := r.Seek(-25, io.SeekEnd); off != 75 {
		t.Errorf("SeekEnd: got %d", off)
	}
}

func TestReadValue(t *testing.T) {
	r := NewBytesReader([]byte{0x00, 0x00, 0x01, 0xA4}, "test")

	v, err := ReadValue[uint32](r, "value")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 420 {
		t.Errorf("expected 420, got %d", v)
	}
	if r.Offset() != 4 {
		t.Errorf("expected offset 4, got %d", r.Offset())
	}
}
