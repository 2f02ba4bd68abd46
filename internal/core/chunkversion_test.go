package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBigChunkVersionNibbles(t *testing.T) {
	// Every byte splits into high-nibble major, low-nibble minor.
	for b := 0; b <= 0xFF; b++ {
		var f fixture
		f.u8(uint8(b))

		v, err := f.decoder().DecodeBigChunkVersion()
		require.NoError(t, err)
		require.Equal(t, uint8(b>>4), v.Major)
		require.Equal(t, uint8(b&0x0F), v.Minor)
		require.Equal(t, uint8(b), v.Major<<4|v.Minor)
	}
}

func TestDecodeNormalChunkVersion(t *testing.T) {
	var f fixture
	f.chunk(0x00000042, func(b *fixture) {
		b.u8(0x35).str("ignored trailing bytes")
	})
	f.u8(0x99) // sibling byte after the version chunk

	d := f.decoder()
	v, err := d.DecodeNormalChunkVersion()
	require.NoError(t, err)
	require.Equal(t, uint8(3), v.Major)
	require.Equal(t, uint8(5), v.Minor)

	// The framing chunk was stepped over entirely.
	b, err := d.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x99), b)
}

func TestDecodeNormalChunkVersionEmptyChunk(t *testing.T) {
	var f fixture
	f.u32(0x00000042).u32(0)

	_, err := f.decoder().DecodeNormalChunkVersion()
	require.ErrorIs(t, err, ErrEmptyChunk)
}
