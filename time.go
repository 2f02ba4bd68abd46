package opennurbs

import "github.com/scigolib/opennurbs/internal/core"

// Time is a broken-down calendar timestamp as stored in revision history
// records: eight unsigned 32-bit fields in disk order.
type Time struct {
	Second   uint32
	Minute   uint32
	Hour     uint32
	MonthDay uint32
	Month    uint32
	Year     uint32
	WeekDay  uint32
	YearDay  uint32
}

func decodeTime(d *core.Decoder) (Time, error) {
	var t Time
	var err error
	read := func(dst *uint32) {
		if err != nil {
			return
		}
		*dst, err = d.Uint32()
	}
	read(&t.Second)
	read(&t.Minute)
	read(&t.Hour)
	read(&t.MonthDay)
	read(&t.Month)
	read(&t.Year)
	read(&t.WeekDay)
	read(&t.YearDay)
	return t, err
}
