package opennurbs

import "github.com/scigolib/opennurbs/internal/core"

// PreviewImage records an embedded preview bitmap. Only presence and payload
// size are decoded; the body is left in place as opaque bytes.
type PreviewImage struct {
	Present bool
	Size    int64
}

func decodePreviewImage(c *core.Chunk) PreviewImage {
	return PreviewImage{Present: true, Size: c.Header.Value}
}
