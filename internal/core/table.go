package core

import (
	"errors"
	"io"
)

// TableField binds one table typecode to the decode of a destination field.
// The decode callback receives the sub-chunk carrying the record; for short
// typecodes the payload is empty and the data is the chunk header value.
type TableField struct {
	Typecode uint32
	Decode   func(*Chunk) error
}

// DecodeBareTable iterates sub-chunks directly from the current stream,
// dispatching each typecode to its field. Bare tables carry no sentinel on
// disk: iteration stops at the first typecode outside the dispatch set,
// leaving the cursor just past that chunk's header.
func (d *Decoder) DecodeBareTable(fields []TableField) error {
	for {
		c, err := d.OpenChunk()
		if err != nil {
			return err
		}
		f := lookupField(fields, c.Header.Typecode)
		if f == nil {
			return nil
		}
		if err := f.Decode(c); err != nil {
			return err
		}
		if err := c.Close(); err != nil {
			return err
		}
	}
}

// DecodeWrappedTable opens an outer chunk that must carry the given typecode
// and iterates the table inside it. A mismatched outer typecode is not an
// error: the chunk is stepped over and found is false, so the caller keeps
// its default record.
//
// Unknown sub-chunk typecodes are skipped; iteration ends at ENDOFTABLE or
// when the outer chunk is exhausted.
func (d *Decoder) DecodeWrappedTable(outerTypecode uint32, fields []TableField) (found bool, err error) {
	outer, err := d.OpenChunk()
	if err != nil {
		return false, err
	}
	if outer.Header.Typecode == outerTypecode {
		found = true
		if err := outer.decodeTableBody(fields); err != nil {
			return true, err
		}
	}
	if err := outer.Close(); err != nil {
		return found, err
	}
	return found, nil
}

// decodeTableBody runs the sentinel-terminated iteration inside a table chunk.
func (outer *Chunk) decodeTableBody(fields []TableField) error {
	for {
		c, err := outer.OpenChunk()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil // outer chunk exhausted without a sentinel
			}
			return err
		}
		if c.Header.Typecode == TcodeEndOfTable {
			return nil
		}
		if f := lookupField(fields, c.Header.Typecode); f != nil {
			if err := f.Decode(c); err != nil {
				return err
			}
		}
		if err := c.Close(); err != nil {
			return err
		}
	}
}

func lookupField(fields []TableField, tc uint32) *TableField {
	for i := range fields {
		if fields[i].Typecode == tc {
			return &fields[i]
		}
	}
	return nil
}
