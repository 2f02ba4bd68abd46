package core

// ChunkVersion is the nibble-packed (major, minor) version stamp carried by
// versioned records.
type ChunkVersion struct {
	Major uint8
	Minor uint8
}

// DecodeBigChunkVersion reads the bare one-byte version stamp: major in the
// high nibble, minor in the low nibble.
func (d *Decoder) DecodeBigChunkVersion() (ChunkVersion, error) {
	b, err := d.Uint8()
	if err != nil {
		return ChunkVersion{}, wrap("chunk version read failed", err)
	}
	return ChunkVersion{Major: b >> 4, Minor: b & 0x0F}, nil
}

// DecodeNormalChunkVersion reads the same stamp through its own framing
// chunk: the reader opens a chunk, reads the byte inside it, and steps past
// the chunk.
func (d *Decoder) DecodeNormalChunkVersion() (ChunkVersion, error) {
	c, err := d.OpenChunk()
	if err != nil {
		return ChunkVersion{}, err
	}
	v, err := c.DecodeBigChunkVersion()
	if err != nil {
		return ChunkVersion{}, err
	}
	if err := c.Close(); err != nil {
		return ChunkVersion{}, err
	}
	return v, nil
}
