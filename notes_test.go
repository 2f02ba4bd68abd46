package opennurbs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeNotesV1(t *testing.T) {
	var f fixture
	f.i32(1)                          // visible
	f.i32(10).i32(20).i32(30).i32(40) // window
	f.lstr("model notes")

	n, err := decodeNotes(f.decoder(V1))
	require.NoError(t, err)
	require.Equal(t, Notes{
		Data:         "model notes",
		Visible:      true,
		WindowLeft:   10,
		WindowTop:    20,
		WindowRight:  30,
		WindowBottom: 40,
	}, n)
}

func TestDecodeNotesV2(t *testing.T) {
	var f fixture
	f.u8(0x10) // chunk version 1.0
	f.i32(1)   // html encoded
	f.wstr("wide notes")
	f.i32(0) // visible
	f.i32(-1).i32(-2).i32(3).i32(4)

	n, err := decodeNotes(f.decoder(V2))
	require.NoError(t, err)
	require.Equal(t, Notes{
		Data:         "wide notes",
		HTMLEncoded:  true,
		Visible:      false,
		WindowLeft:   -1,
		WindowTop:    -2,
		WindowRight:  3,
		WindowBottom: 4,
	}, n)
}

func TestDecodeNotesV2MajorMismatchKeepsDefault(t *testing.T) {
	var f fixture
	f.u8(0x20) // major 2: layout unknown, record stays default
	f.i32(1).wstr("ignored")

	n, err := decodeNotes(f.decoder(V2))
	require.NoError(t, err)
	require.Equal(t, Notes{}, n)
}
