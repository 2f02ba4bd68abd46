package core

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/scigolib/opennurbs/internal/utils"
)

// NumberReader decodes fixed-width integers and floats from a stream in a
// fixed byte order. The 3dm format is little-endian throughout; the big-endian
// variant exists for sibling formats sharing this plumbing.
type NumberReader struct {
	r     io.Reader
	order binary.ByteOrder
}

// NewLittleEndianNumberReader returns a reader decoding little-endian values.
func NewLittleEndianNumberReader(r io.Reader) *NumberReader {
	return &NumberReader{r: r, order: binary.LittleEndian}
}

// NewBigEndianNumberReader returns a reader decoding big-endian values.
func NewBigEndianNumberReader(r io.Reader) *NumberReader {
	return &NumberReader{r: r, order: binary.BigEndian}
}

// fill reads exactly len(buf) bytes. I/O errors surface unchanged.
func (n *NumberReader) fill(buf []byte) error {
	_, err := io.ReadFull(n.r, buf)
	return err
}

// Uint8 reads one byte.
func (n *NumberReader) Uint8() (uint8, error) {
	buf := utils.GetBuffer(1)
	defer utils.ReleaseBuffer(buf)
	if err := n.fill(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Int8 reads one signed byte.
func (n *NumberReader) Int8() (int8, error) {
	v, err := n.Uint8()
	return int8(v), err
}

// Uint16 reads a 16-bit unsigned integer.
func (n *NumberReader) Uint16() (uint16, error) {
	buf := utils.GetBuffer(2)
	defer utils.ReleaseBuffer(buf)
	if err := n.fill(buf); err != nil {
		return 0, err
	}
	return n.order.Uint16(buf), nil
}

// Int16 reads a 16-bit signed integer.
func (n *NumberReader) Int16() (int16, error) {
	v, err := n.Uint16()
	return int16(v), err
}

// Uint32 reads a 32-bit unsigned integer.
func (n *NumberReader) Uint32() (uint32, error) {
	buf := utils.GetBuffer(4)
	defer utils.ReleaseBuffer(buf)
	if err := n.fill(buf); err != nil {
		return 0, err
	}
	return n.order.Uint32(buf), nil
}

// Int32 reads a 32-bit signed integer.
func (n *NumberReader) Int32() (int32, error) {
	v, err := n.Uint32()
	return int32(v), err
}

// Uint64 reads a 64-bit unsigned integer.
func (n *NumberReader) Uint64() (uint64, error) {
	buf := utils.GetBuffer(8)
	defer utils.ReleaseBuffer(buf)
	if err := n.fill(buf); err != nil {
		return 0, err
	}
	return n.order.Uint64(buf), nil
}

// Int64 reads a 64-bit signed integer.
func (n *NumberReader) Int64() (int64, error) {
	v, err := n.Uint64()
	return int64(v), err
}

// Float32 reads a 32-bit IEEE 754 float.
func (n *NumberReader) Float32() (float32, error) {
	v, err := n.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Float64 reads a 64-bit IEEE 754 float.
func (n *NumberReader) Float64() (float64, error) {
	v, err := n.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
