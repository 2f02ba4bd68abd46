package core

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// fixture assembles little-endian byte fixtures for decoder tests.
type fixture struct {
	bytes.Buffer
}

func (f *fixture) u8(v uint8) *fixture {
	f.WriteByte(v)
	return f
}

func (f *fixture) u16(v uint16) *fixture {
	_ = binary.Write(f, binary.LittleEndian, v)
	return f
}

func (f *fixture) u32(v uint32) *fixture {
	_ = binary.Write(f, binary.LittleEndian, v)
	return f
}

func (f *fixture) i32(v int32) *fixture {
	_ = binary.Write(f, binary.LittleEndian, v)
	return f
}

func (f *fixture) i64(v int64) *fixture {
	_ = binary.Write(f, binary.LittleEndian, v)
	return f
}

func (f *fixture) raw(data []byte) *fixture {
	f.Write(data)
	return f
}

func (f *fixture) str(s string) *fixture {
	f.WriteString(s)
	return f
}

// wstr writes a wide string: code-unit count including the trailing NUL,
// then the UTF-16 LE units, then the NUL.
func (f *fixture) wstr(s string) *fixture {
	units := utf16.Encode([]rune(s))
	f.u32(uint32(len(units)) + 1)
	for _, u := range units {
		f.u16(u)
	}
	return f.u16(0)
}

// chunk writes a chunk with a 4-byte length field (V1..V4 framing).
func (f *fixture) chunk(tc uint32, body func(*fixture)) *fixture {
	var inner fixture
	if body != nil {
		body(&inner)
	}
	f.u32(tc)
	f.u32(uint32(inner.Len()))
	f.raw(inner.Bytes())
	return f
}

// chunk8 writes a chunk with an 8-byte length field (V50+ framing).
func (f *fixture) chunk8(tc uint32, body func(*fixture)) *fixture {
	var inner fixture
	if body != nil {
		body(&inner)
	}
	f.u32(tc)
	f.i64(int64(inner.Len()))
	f.raw(inner.Bytes())
	return f
}

// shortChunk writes an inline chunk: typecode plus a 4-byte value, no payload.
func (f *fixture) shortChunk(tc uint32, value uint32) *fixture {
	f.u32(tc)
	f.u32(value)
	return f
}

// endOfTable writes the table sentinel.
func (f *fixture) endOfTable() *fixture {
	return f.shortChunk(TcodeEndOfTable, 0)
}

func (f *fixture) reader() *bytes.Reader {
	return bytes.NewReader(f.Bytes())
}

func (f *fixture) decoder() *Decoder {
	return NewDecoder(f.reader())
}
