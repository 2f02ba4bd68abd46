package opennurbs

import (
	"io"

	"github.com/scigolib/opennurbs/internal/core"
)

// v1Preamble is the set of typecodes a V1 archive may emit between the
// comment block and the properties section.
var v1Preamble = map[uint32]bool{
	core.TcodeSummary:            true,
	core.TcodeBitmapPreview:      true,
	core.TcodeUnitAndTolerances:  true,
	core.TcodeViewport:           true,
	core.TcodeLayer:              true,
	core.TcodeRenderMeshParams:   true,
	core.TcodeCurrentLayer:       true,
	core.TcodeAnnotationSettings: true,
	core.TcodeNotes:              true,
	core.TcodeNamedCPlane:        true,
	core.TcodeNamedView:          true,
}

// decodeStartSection scans a V1 archive's preamble chunks. Some files
// announce themselves as V1 but carry a V2 body: when the scan meets a
// table-family typecode, the context is upgraded to V2 and the cursor is left
// where the scan stopped. A genuine V1 archive has its cursor restored to the
// pre-scan position.
func decodeStartSection(d *core.Decoder) error {
	if d.Version() != core.V1 {
		return nil
	}
	backup, err := d.Position()
	if err != nil {
		return err
	}
	for {
		tc, err := d.Uint32()
		if err != nil {
			return err
		}
		if !v1Preamble[tc] {
			if core.IsTable(tc) {
				d.SetVersion(core.V2)
			}
			break
		}
		value, err := d.DecodeChunkValue(tc)
		if err != nil {
			return err
		}
		if err := d.Skip(value); err != nil {
			return err
		}
	}
	if d.Version() == core.V1 {
		if _, err := d.Seek(backup, io.SeekStart); err != nil {
			return err
		}
	}
	return nil
}
