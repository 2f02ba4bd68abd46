package opennurbs

import (
	"github.com/google/uuid"

	"github.com/scigolib/opennurbs/internal/core"
)

// UUID is the on-disk GUID record: three little-endian integer fields
// followed by eight raw bytes, 16 bytes total.
type UUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

func decodeUUID(d *core.Decoder) (UUID, error) {
	var u UUID
	var err error
	if u.Data1, err = d.Uint32(); err != nil {
		return UUID{}, err
	}
	if u.Data2, err = d.Uint16(); err != nil {
		return UUID{}, err
	}
	if u.Data3, err = d.Uint16(); err != nil {
		return UUID{}, err
	}
	if err = d.Bytes(u.Data4[:]); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// UUID converts the mixed-endian disk layout to a canonical uuid.UUID.
func (u UUID) UUID() uuid.UUID {
	var id uuid.UUID
	id[0] = byte(u.Data1 >> 24)
	id[1] = byte(u.Data1 >> 16)
	id[2] = byte(u.Data1 >> 8)
	id[3] = byte(u.Data1)
	id[4] = byte(u.Data2 >> 8)
	id[5] = byte(u.Data2)
	id[6] = byte(u.Data3 >> 8)
	id[7] = byte(u.Data3)
	copy(id[8:], u.Data4[:])
	return id
}

// UUIDFrom converts a canonical uuid.UUID to the disk record layout.
func UUIDFrom(id uuid.UUID) UUID {
	var u UUID
	u.Data1 = uint32(id[0])<<24 | uint32(id[1])<<16 | uint32(id[2])<<8 | uint32(id[3])
	u.Data2 = uint16(id[4])<<8 | uint16(id[5])
	u.Data3 = uint16(id[6])<<8 | uint16(id[7])
	copy(u.Data4[:], id[8:])
	return u
}

// String formats the record as a canonical UUID string.
func (u UUID) String() string {
	return u.UUID().String()
}
