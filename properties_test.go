package opennurbs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/opennurbs/internal/core"
)

func TestDecodePropertiesV2(t *testing.T) {
	var f fixture
	f.chunk(core.TcodePropertiesTable, func(b *fixture) {
		b.chunk(core.TcodePropertiesAsFileName, func(b *fixture) { b.wstr("model.3dm") })
		b.shortChunk(core.TcodePropertiesOpenNURBSVersion, 201906127)
		b.chunk(core.TcodePropertiesRevisionHistory, func(b *fixture) {
			b.u8(0x10)
			b.wstr("ada")
			b.time(Time{Year: 2019})
			b.wstr("grace")
			b.time(Time{Year: 2021})
			b.i32(5)
		})
		b.chunk(core.TcodePropertiesNotes, func(b *fixture) {
			b.u8(0x10).i32(0).wstr("wide notes").i32(1).i32(0).i32(0).i32(0).i32(0)
		})
		b.chunk(core.TcodePropertiesApplication, func(b *fixture) {
			b.u8(0x10).wstr("Rhinoceros").wstr("https://www.rhino3d.com").wstr("testing")
		})
		b.chunk(core.TcodePropertiesPreviewImage, func(b *fixture) {
			b.raw(make([]byte, 64))
		})
		b.chunk(core.TcodePropertiesCompressedPreviewImage, func(b *fixture) {
			b.raw(make([]byte, 16))
		})
		// Unknown record inside the table: skipped, not fatal.
		b.chunk(core.TcodeTableRec|core.TcodeCRC|0x0999, func(b *fixture) { b.str("future record") })
		b.endOfTable()
	})

	p, err := decodeProperties(f.decoder(V2))
	require.NoError(t, err)
	require.Nil(t, p.V1)
	require.NotNil(t, p.V2)

	v2 := p.V2
	require.Equal(t, "model.3dm", v2.FileName)
	require.Equal(t, uint8(7), v2.Version.Major())
	require.Equal(t, uint16(2019), v2.Version.Date().Year())
	require.Equal(t, "ada", v2.RevisionHistory.CreatedBy)
	require.Equal(t, "grace", v2.RevisionHistory.LastEditedBy)
	require.Equal(t, int32(5), v2.RevisionHistory.RevisionCount)
	require.Equal(t, "wide notes", v2.Notes.Data)
	require.True(t, v2.Notes.Visible)
	require.Equal(t, "Rhinoceros", v2.Application.Name)
	require.True(t, v2.PreviewImage.Present)
	require.Equal(t, int64(64), v2.PreviewImage.Size)
	require.True(t, v2.CompressedPreviewImage.Present)
	require.Equal(t, int64(16), v2.CompressedPreviewImage.Size)
}

func TestDecodePropertiesV2MissingTableKeepsDefaults(t *testing.T) {
	var f fixture
	f.chunk(core.TcodeTable|0x0013, func(b *fixture) { b.str("object table") })

	p, err := decodeProperties(f.decoder(V2))
	require.NoError(t, err)
	require.NotNil(t, p.V2)
	require.Equal(t, PropertiesV2{}, *p.V2)
}

func TestDecodePropertiesV1(t *testing.T) {
	var f fixture
	// V1 properties live at byte 32, after the header and version blocks.
	f.fileHeader("       1")
	f.chunk(core.TcodeCommentBlock, func(b *fixture) { b.str("The comment") })
	f.chunk(core.TcodeSummary, func(b *fixture) {
		b.lstr("ada")
		b.time(Time{Year: 1996})
		b.i32(0)
		b.lstr("grace")
		b.time(Time{Year: 1998})
		b.i32(0)
		b.i32(2)
	})
	f.chunk(core.TcodeNotes, func(b *fixture) {
		b.i32(1).i32(0).i32(0).i32(100).i32(100).lstr("v1 notes")
	})
	f.chunk(core.TcodeBitmapPreview, func(b *fixture) { b.raw(make([]byte, 24)) })
	f.chunk(0x00007FFF, func(b *fixture) { b.str("end marker goo") })

	d := f.decoder(V1)
	p, err := decodeProperties(d)
	require.NoError(t, err)
	require.NotNil(t, p.V1)
	require.Nil(t, p.V2)

	v1 := p.V1
	require.Equal(t, "The comment", v1.Comment)
	require.Equal(t, "ada", v1.RevisionHistory.CreatedBy)
	require.Equal(t, "grace", v1.RevisionHistory.LastEditedBy)
	require.Equal(t, int32(2), v1.RevisionHistory.RevisionCount)
	require.Equal(t, "v1 notes", v1.Notes.Data)
	require.True(t, v1.Notes.Visible)
	require.True(t, v1.PreviewImage.Present)
	require.Equal(t, int64(24), v1.PreviewImage.Size)
}
