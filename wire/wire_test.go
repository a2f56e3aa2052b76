package wire

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(bytes.NewReader(data))

	for i, want := range data {
		if r.Position() != i {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	_, err := r.ReadByte()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestWriteReadU32(t *testing.T) {
	tests := []struct {
		value   uint32
		encoded []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{255, []byte{0xff, 0x01}},
		{624485, []byte{0xe5, 0x8e, 0x26}},
		{0xFFFFFFFF, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, tt := range tests {
		w := NewWriter()
		w.WriteU32(tt.value)
		if !bytes.Equal(w.Bytes(), tt.encoded) {
			t.Errorf("WriteU32(%d): got %v, want %v", tt.value, w.Bytes(), tt.encoded)
		}

		r := NewReader(bytes.NewReader(tt.encoded))
		got, err := r.ReadU32()
		if err != nil {
			t.Errorf("ReadU32(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.value {
			t.Errorf("ReadU32(%v): got %d, want %d", tt.encoded, got, tt.value)
		}
	}
}

func TestReadU32Overflow(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	r := NewReader(bytes.NewReader(data))
	_, err := r.ReadU32()
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestReadU32FinalByteOverflow(t *testing.T) {
	// Five-byte encoding whose final byte carries bits beyond 2^32.
	data := []byte{0xff, 0xff, 0xff, 0xff, 0x1f}
	r := NewReader(bytes.NewReader(data))
	_, err := r.ReadU32()
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestReadU64FinalByteOverflow(t *testing.T) {
	data := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}
	r := NewReader(bytes.NewReader(data))
	_, err := r.ReadU64()
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}

	// The maximum value itself still decodes.
	r = NewReader(bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}))
	got, err := r.ReadU64()
	if err != nil {
		t.Fatalf("ReadU64(max): %v", err)
	}
	if got != math.MaxUint64 {
		t.Errorf("got %d, want MaxUint64", got)
	}
}

func TestWriteReadU64(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 0xFFFFFFFF, 1 << 40, math.MaxUint64}

	for _, v := range values {
		w := NewWriter()
		w.WriteU64(v)
		r := NewReader(bytes.NewReader(w.Bytes()))
		got, err := r.ReadU64()
		if err != nil {
			t.Errorf("ReadU64 of WriteU64(%d): %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
}

func TestWriteReadS64(t *testing.T) {
	values := []int64{0, 1, -1, 63, 64, -64, -65, math.MaxInt64, math.MinInt64}

	for _, v := range values {
		w := NewWriter()
		w.WriteS64(v)
		r := NewReader(bytes.NewReader(w.Bytes()))
		got, err := r.ReadS64()
		if err != nil {
			t.Errorf("ReadS64 of WriteS64(%d): %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
}

func TestWriteReadString(t *testing.T) {
	strings := []string{"", "a", "hello", "héllo wörld", "日本語"}

	for _, s := range strings {
		w := NewWriter()
		w.WriteString(s)
		r := NewReader(bytes.NewReader(w.Bytes()))
		got, err := r.ReadString()
		if err != nil {
			t.Errorf("ReadString of WriteString(%q): %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("round trip %q: got %q", s, got)
		}
	}
}

func TestReadStringInvalidUTF8(t *testing.T) {
	data := []byte{0x02, 0xff, 0xfe}
	r := NewReader(bytes.NewReader(data))
	if _, err := r.ReadString(); err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}

func TestWriteReadF64(t *testing.T) {
	values := []float64{0, 1.5, -2.25, math.Pi, math.Inf(1), math.Inf(-1)}

	for _, v := range values {
		w := NewWriter()
		w.WriteF64(v)
		if w.Len() != 8 {
			t.Errorf("WriteF64(%v): wrote %d bytes, want 8", v, w.Len())
		}
		r := NewReader(bytes.NewReader(w.Bytes()))
		got, err := r.ReadF64()
		if err != nil {
			t.Errorf("ReadF64 of WriteF64(%v): %v", v, err)
			continue
		}
		if got != v {
			t.Errorf("round trip %v: got %v", v, got)
		}
	}
}

func TestWriteReadF64NaN(t *testing.T) {
	w := NewWriter()
	w.WriteF64(math.NaN())
	r := NewReader(bytes.NewReader(w.Bytes()))
	got, err := r.ReadF64()
	if err != nil {
		t.Fatalf("ReadF64: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("round trip NaN: got %v", got)
	}
}

func TestWriteReadBlock(t *testing.T) {
	blocks := [][]byte{{}, {0x01}, {0xde, 0xad, 0xbe, 0xef}}

	for _, b := range blocks {
		w := NewWriter()
		w.WriteBlock(b)
		r := NewReader(bytes.NewReader(w.Bytes()))
		got, err := r.ReadBlock()
		if err != nil {
			t.Errorf("ReadBlock of WriteBlock(%v): %v", b, err)
			continue
		}
		if !bytes.Equal(got, b) {
			t.Errorf("round trip %v: got %v", b, got)
		}
	}
}

func TestReadBlockTruncated(t *testing.T) {
	data := []byte{0x05, 0x01, 0x02}
	r := NewReader(bytes.NewReader(data))
	if _, err := r.ReadBlock(); err == nil {
		t.Error("expected error for truncated block")
	}
}

func TestReadBlockHugeLength(t *testing.T) {
	// A corrupt length prefix claiming 4 GiB must fail at end of stream
	// without allocating the claimed size up front.
	w := NewWriter()
	w.WriteU32(0xFFFFFFFF)
	w.WriteBytes([]byte{0x01, 0x02})

	r := NewReader(bytes.NewReader(w.Bytes()))
	if _, err := r.ReadBlock(); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestPositionTracking(t *testing.T) {
	w := NewWriter()
	w.WriteU32(624485) // 3 bytes
	w.WriteString("ab") // 1 length byte + 2
	w.WriteF64(1.0) // 8 bytes

	r := NewReader(bytes.NewReader(w.Bytes()))
	if _, err := r.ReadU32(); err != nil {
		t.Fatal(err)
	}
	if r.Position() != 3 {
		t.Errorf("position after u32: got %d, want 3", r.Position())
	}
	if _, err := r.ReadString(); err != nil {
		t.Fatal(err)
	}
	if r.Position() != 6 {
		t.Errorf("position after string: got %d, want 6", r.Position())
	}
	if _, err := r.ReadF64(); err != nil {
		t.Fatal(err)
	}
	if r.Position() != 14 {
		t.Errorf("position after f64: got %d, want 14", r.Position())
	}
}
