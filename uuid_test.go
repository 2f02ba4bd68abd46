package opennurbs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDecodeUUID(t *testing.T) {
	var f fixture
	f.u32(0x33221100)
	f.u16(0x5544)
	f.u16(0x7766)
	f.raw([]byte{0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF})

	got, err := decodeUUID(f.decoder(V2))
	require.NoError(t, err)
	require.Equal(t, uint32(0x33221100), got.Data1)
	require.Equal(t, uint16(0x5544), got.Data2)
	require.Equal(t, uint16(0x7766), got.Data3)
	require.Equal(t, [8]byte{0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}, got.Data4)

	// The mixed-endian disk layout flattens to the canonical form.
	require.Equal(t, "33221100-5544-7766-8899-aabbccddeeff", got.String())
}

func TestUUIDConversionRoundTrip(t *testing.T) {
	id := uuid.MustParse("60d9423e-ddb3-4a77-9e15-a8eb8e15cd21")
	require.Equal(t, id, UUIDFrom(id).UUID())

	rec := UUID{Data1: 0x01020304, Data2: 0x0506, Data3: 0x0708,
		Data4: [8]byte{9, 10, 11, 12, 13, 14, 15, 16}}
	require.Equal(t, rec, UUIDFrom(rec.UUID()))
}

func TestDecodeUUIDShortStream(t *testing.T) {
	var f fixture
	f.u32(1).u16(2)

	_, err := decodeUUID(f.decoder(V2))
	require.Error(t, err)
}
