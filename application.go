package opennurbs

import "github.com/scigolib/opennurbs/internal/core"

// Application identifies the program that wrote the archive.
type Application struct {
	Name    string
	URL     string
	Details string
}

// decodeApplication reads the version stamp without branching on it (all
// known majors share one layout), then three wide strings.
func decodeApplication(d *core.Decoder) (Application, error) {
	if _, err := d.DecodeBigChunkVersion(); err != nil {
		return Application{}, err
	}
	var a Application
	var err error
	if a.Name, err = d.DecodeWStringWithLength(); err != nil {
		return Application{}, err
	}
	if a.URL, err = d.DecodeWStringWithLength(); err != nil {
		return Application{}, err
	}
	if a.Details, err = d.DecodeWStringWithLength(); err != nil {
		return Application{}, err
	}
	return a, nil
}
