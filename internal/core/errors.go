package core

import (
	"errors"

	"github.com/scigolib/opennurbs/internal/stream"
)

// Sentinel errors for the archive format. Decode failures wrap one of these
// so callers can classify with errors.Is.
var (
	// ErrInvalidHeader reports a file that does not start with the 3dm magic.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrInvalidVersion reports an unparseable or unrecognized archive version.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrInvalidLength reports a negative length where a non-negative one is
	// required, or a mismatch between a declared and a read length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidTypecode reports a required typecode that did not appear.
	ErrInvalidTypecode = errors.New("invalid typecode")

	// ErrEmptyChunk reports a chunk with a zero-length payload.
	ErrEmptyChunk = stream.ErrEmpty

	// ErrOutOfBounds reports a sub-stream access outside its window.
	ErrOutOfBounds = stream.ErrOutOfBounds

	// ErrInvalidSeek reports a malformed seek or arithmetic overflow.
	ErrInvalidSeek = stream.ErrInvalidSeek
)
