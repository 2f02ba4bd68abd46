package opennurbs

import "github.com/scigolib/opennurbs/internal/core"

// RevisionHistory tracks who created and last edited the model and when.
type RevisionHistory struct {
	CreatedBy     string
	LastEditedBy  string
	CreateTime    Time
	LastEditTime  Time
	RevisionCount int32
}

// decodeRevisionHistory reads the layout matching the archive version.
// The V1 layout interleaves discarded i32 padding words left behind by
// legacy writers; V2 stamps the record with a chunk version and stores wide
// names.
func decodeRevisionHistory(d *core.Decoder) (RevisionHistory, error) {
	if d.Version() == core.V1 {
		return decodeRevisionHistoryV1(d)
	}
	return decodeRevisionHistoryV2(d)
}

func decodeRevisionHistoryV1(d *core.Decoder) (RevisionHistory, error) {
	var r RevisionHistory
	var err error
	if r.CreatedBy, err = d.DecodeStringWithLength(); err != nil {
		return RevisionHistory{}, err
	}
	if r.CreateTime, err = decodeTime(d); err != nil {
		return RevisionHistory{}, err
	}
	if _, err = d.Int32(); err != nil { // legacy padding
		return RevisionHistory{}, err
	}
	if r.LastEditedBy, err = d.DecodeStringWithLength(); err != nil {
		return RevisionHistory{}, err
	}
	if r.LastEditTime, err = decodeTime(d); err != nil {
		return RevisionHistory{}, err
	}
	if _, err = d.Int32(); err != nil { // legacy padding
		return RevisionHistory{}, err
	}
	if r.RevisionCount, err = d.Int32(); err != nil {
		return RevisionHistory{}, err
	}
	return r, nil
}

func decodeRevisionHistoryV2(d *core.Decoder) (RevisionHistory, error) {
	v, err := d.DecodeBigChunkVersion()
	if err != nil {
		return RevisionHistory{}, err
	}
	if v.Major != 1 {
		return RevisionHistory{}, nil
	}
	var r RevisionHistory
	if r.CreatedBy, err = d.DecodeWStringWithLength(); err != nil {
		return RevisionHistory{}, err
	}
	if r.CreateTime, err = decodeTime(d); err != nil {
		return RevisionHistory{}, err
	}
	if r.LastEditedBy, err = d.DecodeWStringWithLength(); err != nil {
		return RevisionHistory{}, err
	}
	if r.LastEditTime, err = decodeTime(d); err != nil {
		return RevisionHistory{}, err
	}
	if r.RevisionCount, err = d.Int32(); err != nil {
		return RevisionHistory{}, err
	}
	return r, nil
}
