package core

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/scigolib/opennurbs/internal/utils"
)

// DecodeString reads a narrow string prefixed by a signed 32-bit length.
func (d *Decoder) DecodeString() (string, error) {
	length, err := d.Int32()
	if err != nil {
		return "", wrap("string length read failed", err)
	}
	if length < 0 {
		return "", fmt.Errorf("%w: negative string length %d", ErrInvalidLength, length)
	}
	return d.stringOf(int64(length))
}

// DecodeStringWithLength reads a narrow string prefixed by an unsigned 32-bit
// length. The stream must supply exactly the declared number of bytes.
func (d *Decoder) DecodeStringWithLength() (string, error) {
	length, err := d.Uint32()
	if err != nil {
		return "", wrap("string length read failed", err)
	}
	return d.stringOf(int64(length))
}

// DecodeWStringWithLength reads a wide string prefixed by an unsigned 32-bit
// count of UTF-16 code units including a trailing NUL. The NUL is consumed
// and dropped.
func (d *Decoder) DecodeWStringWithLength() (string, error) {
	count, err := d.Uint32()
	if err != nil {
		return "", wrap("wide string length read failed", err)
	}
	if count == 0 {
		return "", fmt.Errorf("%w: wide string count must include the trailing NUL", ErrInvalidLength)
	}
	units := make([]uint16, count-1)
	for i := range units {
		units[i], err = d.Uint16()
		if err != nil {
			return "", wrap("wide string read failed", err)
		}
	}
	if _, err := d.Uint16(); err != nil {
		return "", wrap("wide string terminator read failed", err)
	}
	return string(utf16.Decode(units)), nil
}

// DecodeStringWithChunkValue reads a string whose length is the value of the
// current chunk header rather than an explicit length field.
func (d *Decoder) DecodeStringWithChunkValue() (string, error) {
	length := d.st.Chunk.Value
	if length < 0 {
		return "", fmt.Errorf("%w: chunk value %d", ErrInvalidLength, length)
	}
	return d.stringOf(length)
}

// DecodeRemainingString reads the rest of the stream as a narrow string.
func (d *Decoder) DecodeRemainingString() (string, error) {
	data, err := d.readAll()
	if err != nil {
		return "", wrap("string read failed", err)
	}
	return string(data), nil
}

// stringOf reads exactly length narrow bytes.
func (d *Decoder) stringOf(length int64) (string, error) {
	if length == 0 {
		return "", nil
	}
	buf := utils.GetBuffer(int(length))
	defer utils.ReleaseBuffer(buf)
	if err := d.Bytes(buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", fmt.Errorf("%w: declared %d string bytes", ErrInvalidLength, length)
		}
		return "", wrap("string read failed", err)
	}
	return string(buf), nil
}
