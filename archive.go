// Package opennurbs reads the metadata sections of Rhino/openNURBS 3dm
// archives. It decodes the file header, archive version, comment block,
// properties and settings tables into typed records; geometry tables are out
// of scope.
package opennurbs

import (
	"io"

	"github.com/scigolib/opennurbs/internal/core"
)

// Version is the overall archive format version.
type Version = core.Version

// Supported archive versions.
const (
	V1  = core.V1
	V2  = core.V2
	V3  = core.V3
	V4  = core.V4
	V50 = core.V50
	V60 = core.V60
	V70 = core.V70
)

// Archive is the decoded metadata of a 3dm file.
type Archive struct {
	Version    Version
	Comment    string
	Properties Properties
	Settings   Settings
}

// Decode reads an archive's metadata sections from r in document order:
// header, file version, comment, start section, properties, settings. The
// source must support seeking; any random-access byte supplier works.
func Decode(r io.ReadSeeker) (*Archive, error) {
	d := core.NewDecoder(r)

	if err := decodeHeader(d); err != nil {
		return nil, err
	}
	if _, err := decodeFileVersion(d); err != nil {
		return nil, err
	}
	comment, err := decodeComment(d)
	if err != nil {
		return nil, err
	}
	if err := decodeStartSection(d); err != nil {
		return nil, err
	}
	properties, err := decodeProperties(d)
	if err != nil {
		return nil, err
	}
	settings, err := decodeSettings(d)
	if err != nil {
		return nil, err
	}

	return &Archive{
		// The start section may have upgraded a V1 context to V2.
		Version:    d.Version(),
		Comment:    comment,
		Properties: properties,
		Settings:   settings,
	}, nil
}
