package opennurbs

import (
	"fmt"

	"github.com/scigolib/opennurbs/internal/core"
	"github.com/scigolib/opennurbs/internal/utils"
)

// fileBegin is the 24-byte magic every 3dm archive starts with, trailing
// space included.
const fileBegin = "3D Geometry File Format "

// decodeHeader checks the file magic.
func decodeHeader(d *core.Decoder) error {
	buf := make([]byte, len(fileBegin))
	if err := d.Bytes(buf); err != nil {
		return utils.WrapError("header read failed", err)
	}
	if string(buf) != fileBegin {
		return fmt.Errorf("%w: bad file magic", core.ErrInvalidHeader)
	}
	return nil
}

// decodeFileVersion reads the 8-byte ASCII version block: leading spaces,
// then a base-10 integer naming the archive version. The decoded version is
// recorded in the context so chunk framing picks the right length width.
func decodeFileVersion(d *core.Decoder) (Version, error) {
	buf := make([]byte, 8)
	if err := d.Bytes(buf); err != nil {
		return 0, utils.WrapError("version read failed", err)
	}
	i := 0
	for i < len(buf) && buf[i] == ' ' {
		i++
	}
	var value int
	for ; i < len(buf); i++ {
		if buf[i] < '0' || buf[i] > '9' {
			return 0, fmt.Errorf("%w: non-digit %q in version block", core.ErrInvalidVersion, buf[i])
		}
		value = value*10 + int(buf[i]-'0')
	}
	if value > 0xFF {
		return 0, fmt.Errorf("%w: version %d out of range", core.ErrInvalidVersion, value)
	}
	version, err := core.VersionFromByte(uint8(value))
	if err != nil {
		return 0, err
	}
	d.SetVersion(version)
	return version, nil
}
