package core

import "fmt"

// DecodeSequence reads a signed 32-bit element count followed by that many
// items. Negative counts are rejected; a stream that runs out before the
// declared count fails with the item decoder's error.
func DecodeSequence[T any](d *Decoder, item func(*Decoder) (T, error)) ([]T, error) {
	length, err := d.Int32()
	if err != nil {
		return nil, wrap("sequence length read failed", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative sequence length %d", ErrInvalidLength, length)
	}
	data := make([]T, 0, length)
	for i := int32(0); i < length; i++ {
		v, err := item(d)
		if err != nil {
			return nil, err
		}
		data = append(data, v)
	}
	return data, nil
}
