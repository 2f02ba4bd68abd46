// Package stream provides length-bounded views over seekable byte sources.
//
// A 3dm archive is a tree of length-prefixed chunks. Each chunk's payload is
// exposed to its decoder as a SubStream: a window onto the parent stream that
// clamps reads and seeks to the payload bytes. Sub-streams nest, so a chunk
// inside a chunk decodes through two stacked windows.
package stream

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Sentinel errors for window violations.
var (
	// ErrEmpty is returned when creating a window of zero or negative length.
	ErrEmpty = errors.New("empty chunk")

	// ErrOutOfBounds is returned when a seek target falls outside the window.
	ErrOutOfBounds = errors.New("seek out of bounds")

	// ErrInvalidSeek is returned for negative targets or arithmetic overflow.
	ErrInvalidSeek = errors.New("invalid seek")
)

// SubStream is a bounded view [offset, offset+length) of a parent stream.
//
// The parent's cursor is the only cursor: a SubStream does not buffer or track
// its own position, so abandoning one mid-read leaves the parent exactly where
// the last operation put it. Positions reported by Seek are relative to the
// window start, in [0, length]. The position length (one past the last byte)
// is valid as a seek target only; it is the idiom used to step the parent to
// the next sibling chunk.
type SubStream struct {
	parent io.ReadSeeker
	offset int64
	length int64
}

// New creates a window of `length` bytes starting at `offset` in the parent's
// coordinate space. Windows must be non-empty.
func New(parent io.ReadSeeker, offset, length int64) (*SubStream, error) {
	if length <= 0 {
		return nil, ErrEmpty
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrInvalidSeek, offset)
	}
	if offset > math.MaxInt64-length {
		return nil, fmt.Errorf("%w: window end overflows", ErrInvalidSeek)
	}
	return &SubStream{parent: parent, offset: offset, length: length}, nil
}

// Len returns the window length in bytes.
func (s *SubStream) Len() int64 {
	return s.length
}

// Read reads up to len(p) bytes, clamped to the bytes remaining in the
// window. At the end of the window it returns 0, io.EOF.
func (s *SubStream) Read(p []byte) (int, error) {
	pos, err := s.parent.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	remaining := s.offset + s.length - pos
	if remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}
	return s.parent.Read(p)
}

// Seek positions the parent cursor within the window. The returned position
// is relative to the window start. Whence follows io.Seeker, with the window
// end interpreted as the last payload byte: Seek(1, io.SeekEnd) lands one
// past the window, advancing the parent to the next sibling chunk.
func (s *SubStream) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return 0, fmt.Errorf("%w: negative offset %d from start", ErrInvalidSeek, offset)
		}
		base = s.offset
	case io.SeekEnd:
		base = s.offset + s.length - 1
	case io.SeekCurrent:
		pos, err := s.parent.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, err
		}
		base = pos
	default:
		return 0, fmt.Errorf("%w: unknown whence %d", ErrInvalidSeek, whence)
	}

	target, err := addOffset(base, offset)
	if err != nil {
		return 0, err
	}
	if target < s.offset || target > s.offset+s.length {
		return 0, fmt.Errorf("%w: position %d outside window of %d bytes",
			ErrOutOfBounds, target-s.offset, s.length)
	}
	if _, err := s.parent.Seek(target, io.SeekStart); err != nil {
		return 0, err
	}
	return target - s.offset, nil
}

// addOffset adds a signed offset to a base position, rejecting overflow.
func addOffset(base, offset int64) (int64, error) {
	if offset > 0 && base > math.MaxInt64-offset {
		return 0, fmt.Errorf("%w: position overflow", ErrInvalidSeek)
	}
	if offset < 0 && base < math.MinInt64-offset {
		return 0, fmt.Errorf("%w: position overflow", ErrInvalidSeek)
	}
	return base + offset, nil
}
