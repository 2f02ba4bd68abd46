package core

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scigolib/opennurbs/internal/stream"
)

// ChunkHeader is the (typecode, value) preamble of a chunk. Value is the
// payload length in bytes, except for short typecodes where it is an inline
// integer. HeaderEnd is the stream position of the first byte after the
// header, in the coordinates of the stream the header was read from.
type ChunkHeader struct {
	Typecode  uint32
	Value     int64
	HeaderEnd int64
}

// DecodeChunkHeader reads a chunk header at the current position and records
// it in the shared context. The width of the value field follows the archive
// version; for 4-byte fields the signedness follows the typecode.
func (d *Decoder) DecodeChunkHeader() (ChunkHeader, error) {
	tc, err := d.Uint32()
	if err != nil {
		return ChunkHeader{}, wrap("chunk typecode read failed", err)
	}
	value, err := d.DecodeChunkValue(tc)
	if err != nil {
		return ChunkHeader{}, err
	}
	pos, err := d.Position()
	if err != nil {
		return ChunkHeader{}, wrap("chunk position failed", err)
	}
	h := ChunkHeader{Typecode: tc, Value: value, HeaderEnd: pos}
	d.st.Chunk = h
	return h, nil
}

// DecodeChunkValue reads a chunk value field for a typecode that has already
// been consumed, applying the version width and typecode signedness rules.
func (d *Decoder) DecodeChunkValue(tc uint32) (int64, error) {
	if d.Version().LengthWidth() == 8 {
		v, err := d.Int64()
		if err != nil {
			return 0, wrap("chunk value read failed", err)
		}
		return v, nil
	}
	if isUnsignedLength(tc) {
		v, err := d.Uint32()
		if err != nil {
			return 0, wrap("chunk value read failed", err)
		}
		return int64(v), nil
	}
	v, err := d.Int32()
	if err != nil {
		return 0, wrap("chunk value read failed", err)
	}
	return int64(v), nil
}

// Chunk couples a decoded chunk header with a decoder over its payload.
// For regular chunks the payload decoder reads through a sub-stream clamped
// to the chunk window; short (inline) chunks have no payload and their
// decoder is empty. Closing a chunk advances the parent stream to the first
// byte after the chunk, no matter how much of the payload was consumed.
type Chunk struct {
	*Decoder
	Header ChunkHeader

	sub *stream.SubStream // nil for inline chunks
}

// OpenChunk decodes a chunk header and enters the chunk's payload.
func (d *Decoder) OpenChunk() (*Chunk, error) {
	h, err := d.DecodeChunkHeader()
	if err != nil {
		return nil, err
	}
	if IsShort(h.Typecode) {
		// Inline chunk: the value is the data, there is no payload.
		return &Chunk{Decoder: d.child(bytes.NewReader(nil)), Header: h}, nil
	}
	if h.Value < 0 {
		return nil, fmt.Errorf("%w: chunk %08X declares %d payload bytes",
			ErrInvalidLength, h.Typecode, h.Value)
	}
	sub, err := stream.New(d.r, h.HeaderEnd, h.Value)
	if err != nil {
		return nil, err
	}
	return &Chunk{Decoder: d.child(sub), Header: h, sub: sub}, nil
}

// Close advances the parent stream to the byte just past this chunk.
func (c *Chunk) Close() error {
	if c.sub == nil {
		return nil
	}
	_, err := c.sub.Seek(1, io.SeekEnd)
	return err
}
