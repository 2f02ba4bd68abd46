package opennurbs

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"

	"github.com/scigolib/opennurbs/internal/core"
)

// fixture assembles little-endian archive fixtures for decoder tests.
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

func (f *fixture) f64(v float64) *fixture {
	_ = binary.Write(f, binary.LittleEndian, v)
	return f
}

func (f *fixture) str(s string) *fixture {
	f.WriteString(s)
	return f
}

// lstr writes a narrow string with its u32 length prefix.
func (f *fixture) lstr(s string) *fixture {
	f.u32(uint32(len(s)))
	return f.str(s)
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

// time writes the eight u32 fields of a Time record.
func (f *fixture) time(t Time) *fixture {
	for _, v := range []uint32{t.Second, t.Minute, t.Hour, t.MonthDay, t.Month, t.Year, t.WeekDay, t.YearDay} {
		f.u32(v)
	}
	return f
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

// shortChunk writes an inline chunk: typecode plus a 4-byte value.
func (f *fixture) shortChunk(tc uint32, value uint32) *fixture {
	f.u32(tc)
	f.u32(value)
	return f
}

func (f *fixture) endOfTable() *fixture {
	return f.shortChunk(core.TcodeEndOfTable, 0)
}

func (f *fixture) raw(data []byte) *fixture {
	f.Write(data)
	return f
}

// fileHeader writes the 24-byte magic and the ASCII version block.
func (f *fixture) fileHeader(version string) *fixture {
	return f.str(fileBegin).str(version)
}

func (f *fixture) reader() *bytes.Reader {
	return bytes.NewReader(f.Bytes())
}

// decoder returns a core decoder over the fixture with the given archive
// version already in effect.
func (f *fixture) decoder(v Version) *core.Decoder {
	d := core.NewDecoder(f.reader())
	d.SetVersion(v)
	return d
}
