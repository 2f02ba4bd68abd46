package opennurbs

import (
	"fmt"

	"github.com/scigolib/opennurbs/internal/core"
)

// decodeComment reads the comment block that follows the file version: a
// chunk that must carry the COMMENTBLOCK typecode, whose payload is a narrow
// string of exactly the chunk's length.
func decodeComment(d *core.Decoder) (string, error) {
	h, err := d.DecodeChunkHeader()
	if err != nil {
		return "", err
	}
	if h.Typecode != core.TcodeCommentBlock {
		return "", fmt.Errorf("%w: expected comment block, got %08X", core.ErrInvalidTypecode, h.Typecode)
	}
	return d.DecodeStringWithChunkValue()
}
