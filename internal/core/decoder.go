package core

import (
	"io"

	"github.com/scigolib/opennurbs/internal/utils"
)

// State is the archive context shared by a decoder and every sub-decoder
// spawned from it. The archive version starts at V1 and is fixed by the
// file-version block; the current chunk header is refreshed on every chunk
// header decode so primitive decoders at any depth can consult it.
type State struct {
	Version Version
	Chunk   ChunkHeader
}

// Decoder reads archive primitives from a byte source. Opening a chunk yields
// a child Decoder over the chunk's sub-stream; parent and child share the
// same State.
type Decoder struct {
	r   io.ReadSeeker
	num *NumberReader
	st  *State
}

// NewDecoder creates a decoder over r with a fresh V1 context.
func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{
		r:   r,
		num: NewLittleEndianNumberReader(r),
		st:  &State{Version: V1},
	}
}

// child creates a decoder over r sharing this decoder's context.
func (d *Decoder) child(r io.ReadSeeker) *Decoder {
	return &Decoder{
		r:   r,
		num: NewLittleEndianNumberReader(r),
		st:  d.st,
	}
}

// Version returns the archive version in effect.
func (d *Decoder) Version() Version {
	return d.st.Version
}

// SetVersion fixes the archive version for this decoder and all decoders
// sharing its context.
func (d *Decoder) SetVersion(v Version) {
	d.st.Version = v
}

// ChunkHeader returns the most recently decoded chunk header.
func (d *Decoder) ChunkHeader() ChunkHeader {
	return d.st.Chunk
}

// Position returns the current stream position. Within a chunk the position
// is relative to the chunk payload.
func (d *Decoder) Position() (int64, error) {
	return d.r.Seek(0, io.SeekCurrent)
}

// Seek repositions the stream cursor.
func (d *Decoder) Seek(offset int64, whence int) (int64, error) {
	return d.r.Seek(offset, whence)
}

// Read implements io.Reader over the underlying stream.
func (d *Decoder) Read(p []byte) (int, error) {
	return d.r.Read(p)
}

// Bytes fills buf from the stream. A short read surfaces as an I/O error.
func (d *Decoder) Bytes(buf []byte) error {
	_, err := io.ReadFull(d.r, buf)
	return err
}

// Skip discards exactly n bytes.
func (d *Decoder) Skip(n int64) error {
	_, err := d.r.Seek(n, io.SeekCurrent)
	return err
}

// readAll reads the remainder of the stream. Used for chunk payloads whose
// size is implied by their window.
func (d *Decoder) readAll() ([]byte, error) {
	return io.ReadAll(d.r)
}

// Scalar reads delegate to the little-endian number reader.

func (d *Decoder) Uint8() (uint8, error)     { return d.num.Uint8() }
func (d *Decoder) Int8() (int8, error)       { return d.num.Int8() }
func (d *Decoder) Uint16() (uint16, error)   { return d.num.Uint16() }
func (d *Decoder) Int16() (int16, error)     { return d.num.Int16() }
func (d *Decoder) Uint32() (uint32, error)   { return d.num.Uint32() }
func (d *Decoder) Int32() (int32, error)     { return d.num.Int32() }
func (d *Decoder) Uint64() (uint64, error)   { return d.num.Uint64() }
func (d *Decoder) Int64() (int64, error)     { return d.num.Int64() }
func (d *Decoder) Float32() (float32, error) { return d.num.Float32() }
func (d *Decoder) Float64() (float64, error) { return d.num.Float64() }

// Bool reads an i32 and interprets any non-zero value as true.
func (d *Decoder) Bool() (bool, error) {
	v, err := d.Int32()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// wrap attaches context to a decode error.
func wrap(context string, err error) error {
	return utils.WrapError(context, err)
}
