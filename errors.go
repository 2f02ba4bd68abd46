package opennurbs

import "github.com/scigolib/opennurbs/internal/core"

// Decode error kinds, re-exported for classification with errors.Is.
// ErrInvalidDate lives in date.go and ErrInvalidOpenNURBSVersion in
// onversion.go alongside their constructors.
var (
	ErrInvalidHeader   = core.ErrInvalidHeader
	ErrInvalidVersion  = core.ErrInvalidVersion
	ErrInvalidLength   = core.ErrInvalidLength
	ErrInvalidTypecode = core.ErrInvalidTypecode
	ErrEmptyChunk      = core.ErrEmptyChunk
	ErrOutOfBounds     = core.ErrOutOfBounds
	ErrInvalidSeek     = core.ErrInvalidSeek
)
