package opennurbs

import (
	"io"

	"github.com/scigolib/opennurbs/internal/core"
)

// PropertiesV1 is the metadata table of V1 archives: a bare sequence of
// keyed chunks with no surrounding table chunk and no sentinel.
type PropertiesV1 struct {
	Comment         string
	RevisionHistory RevisionHistory
	Notes           Notes
	PreviewImage    PreviewImage
}

// PropertiesV2 is the metadata table of V2 and later archives, wrapped in a
// PROPERTIES_TABLE chunk and terminated by ENDOFTABLE.
type PropertiesV2 struct {
	FileName        string
	Version         OpenNURBSVersion
	RevisionHistory RevisionHistory
	Notes           Notes
	Application     Application

	PreviewImage           PreviewImage
	CompressedPreviewImage PreviewImage
}

// Properties holds whichever layout the archive carries; exactly one of V1
// and V2 is non-nil after a successful decode.
type Properties struct {
	V1 *PropertiesV1
	V2 *PropertiesV2
}

func decodeProperties(d *core.Decoder) (Properties, error) {
	if d.Version() == core.V1 {
		p, err := decodePropertiesV1(d)
		if err != nil {
			return Properties{}, err
		}
		return Properties{V1: &p}, nil
	}
	p, err := decodePropertiesV2(d)
	if err != nil {
		return Properties{}, err
	}
	return Properties{V2: &p}, nil
}

// decodePropertiesV1 reads the bare table. V1 writers place it at byte 32,
// directly after the header and version blocks.
func decodePropertiesV1(d *core.Decoder) (PropertiesV1, error) {
	if _, err := d.Seek(32, io.SeekStart); err != nil {
		return PropertiesV1{}, err
	}
	var p PropertiesV1
	fields := []core.TableField{
		{Typecode: core.TcodeCommentBlock, Decode: func(c *core.Chunk) (err error) {
			p.Comment, err = c.DecodeRemainingString()
			return err
		}},
		{Typecode: core.TcodeSummary, Decode: func(c *core.Chunk) (err error) {
			p.RevisionHistory, err = decodeRevisionHistory(c.Decoder)
			return err
		}},
		{Typecode: core.TcodeNotes, Decode: func(c *core.Chunk) (err error) {
			p.Notes, err = decodeNotes(c.Decoder)
			return err
		}},
		{Typecode: core.TcodeBitmapPreview, Decode: func(c *core.Chunk) error {
			p.PreviewImage = decodePreviewImage(c)
			return nil
		}},
	}
	if err := d.DecodeBareTable(fields); err != nil {
		return PropertiesV1{}, err
	}
	return p, nil
}

func decodePropertiesV2(d *core.Decoder) (PropertiesV2, error) {
	var p PropertiesV2
	fields := []core.TableField{
		{Typecode: core.TcodePropertiesAsFileName, Decode: func(c *core.Chunk) (err error) {
			p.FileName, err = c.DecodeWStringWithLength()
			return err
		}},
		{Typecode: core.TcodePropertiesOpenNURBSVersion, Decode: func(c *core.Chunk) error {
			p.Version = parseOpenNURBSVersionValue(c.Header.Value)
			return nil
		}},
		{Typecode: core.TcodePropertiesRevisionHistory, Decode: func(c *core.Chunk) (err error) {
			p.RevisionHistory, err = decodeRevisionHistory(c.Decoder)
			return err
		}},
		{Typecode: core.TcodePropertiesNotes, Decode: func(c *core.Chunk) (err error) {
			p.Notes, err = decodeNotes(c.Decoder)
			return err
		}},
		{Typecode: core.TcodePropertiesApplication, Decode: func(c *core.Chunk) (err error) {
			p.Application, err = decodeApplication(c.Decoder)
			return err
		}},
		{Typecode: core.TcodePropertiesPreviewImage, Decode: func(c *core.Chunk) error {
			p.PreviewImage = decodePreviewImage(c)
			return nil
		}},
		{Typecode: core.TcodePropertiesCompressedPreviewImage, Decode: func(c *core.Chunk) error {
			p.CompressedPreviewImage = decodePreviewImage(c)
			return nil
		}},
	}
	if _, err := d.DecodeWrappedTable(core.TcodePropertiesTable, fields); err != nil {
		return PropertiesV2{}, err
	}
	return p, nil
}
