package opennurbs

import "github.com/scigolib/opennurbs/internal/core"

// Notes is the free-form model note attached to the archive properties,
// together with the note window geometry of the editor that wrote it.
type Notes struct {
	Data        string
	Visible     bool
	HTMLEncoded bool

	WindowLeft   int32
	WindowTop    int32
	WindowRight  int32
	WindowBottom int32
}

// decodeNotes reads the layout matching the archive version. V1 stores a
// narrow string after the window fields; V2 and later stamp the record with
// a chunk version and store wide text. A major version other than 1 leaves
// the record at its default.
func decodeNotes(d *core.Decoder) (Notes, error) {
	if d.Version() == core.V1 {
		return decodeNotesV1(d)
	}
	return decodeNotesV2(d)
}

func decodeNotesV1(d *core.Decoder) (Notes, error) {
	var n Notes
	var err error
	if n.Visible, err = d.Bool(); err != nil {
		return Notes{}, err
	}
	if n.WindowLeft, err = d.Int32(); err != nil {
		return Notes{}, err
	}
	if n.WindowTop, err = d.Int32(); err != nil {
		return Notes{}, err
	}
	if n.WindowRight, err = d.Int32(); err != nil {
		return Notes{}, err
	}
	if n.WindowBottom, err = d.Int32(); err != nil {
		return Notes{}, err
	}
	if n.Data, err = d.DecodeStringWithLength(); err != nil {
		return Notes{}, err
	}
	return n, nil
}

func decodeNotesV2(d *core.Decoder) (Notes, error) {
	v, err := d.DecodeBigChunkVersion()
	if err != nil {
		return Notes{}, err
	}
	if v.Major != 1 {
		return Notes{}, nil
	}
	var n Notes
	if n.HTMLEncoded, err = d.Bool(); err != nil {
		return Notes{}, err
	}
	if n.Data, err = d.DecodeWStringWithLength(); err != nil {
		return Notes{}, err
	}
	if n.Visible, err = d.Bool(); err != nil {
		return Notes{}, err
	}
	if n.WindowLeft, err = d.Int32(); err != nil {
		return Notes{}, err
	}
	if n.WindowTop, err = d.Int32(); err != nil {
		return Notes{}, err
	}
	if n.WindowRight, err = d.Int32(); err != nil {
		return Notes{}, err
	}
	if n.WindowBottom, err = d.Int32(); err != nil {
		return Notes{}, err
	}
	return n, nil
}
