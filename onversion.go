package opennurbs

import (
	"errors"
	"fmt"
)

// ErrInvalidOpenNURBSVersion reports a version stamp rejected by the rules
// of NewOpenNURBSVersion.
var ErrInvalidOpenNURBSVersion = errors.New("invalid opennurbs version")

// OpenNURBSVersion is the full version stamp of the library that wrote the
// archive: major and minor version, build date and platform. Two wire
// encodings exist: the packed bit-field "normal" format used by newer
// writers, and the legacy yyyymmddn decimal "date" format.
type OpenNURBSVersion struct {
	major    uint8
	minor    uint8
	date     GregorianDate
	platform uint8
}

// bitMask extracts and inserts a fixed-width field of a packed word.
type bitMask struct {
	position uint
	size     uint
}

func (m bitMask) maxValue() uint64 {
	return (1 << m.size) - 1
}

func (m bitMask) mask() uint64 {
	return m.maxValue() << m.position
}

func (m bitMask) extract(value uint64) uint64 {
	return (value & m.mask()) >> m.position
}

func (m bitMask) insert(value uint64) uint64 {
	return (value & m.maxValue()) << m.position
}

// Packed field layout, low bits to high: platform, build date, minor, major.
var (
	platformMask     = bitMask{position: 0, size: 2}
	buildDateMask    = bitMask{position: 2, size: 16}
	minorVersionMask = bitMask{position: 18, size: 7}
	majorVersionMask = bitMask{position: 25, size: 6}
)

const (
	majorVersionMax   = 7
	majorVersionDebug = 9

	// Build dates pack as (year-2000)*367 + dayOfYear.
	buildDateMod     = 367
	buildDateRefYear = 2000
)

// mustDate builds a date known valid at compile time.
func mustDate(year uint16, month, day uint8) GregorianDate {
	d, err := NewGregorianDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	minBuildDate = mustDate(2000, 12, 21)
	maxBuildDate = mustDate(2099, 12, 31)
)

// NewOpenNURBSVersion validates and builds a version stamp. Major versions
// run 0..7 with 9 reserved for debug builds; build dates are bounded by the
// packable range and must be consistent with the major version's release
// window.
func NewOpenNURBSVersion(major, minor uint8, date GregorianDate, platform uint8) (OpenNURBSVersion, error) {
	if major > majorVersionMax && major != majorVersionDebug {
		return OpenNURBSVersion{}, fmt.Errorf("%w: major %d", ErrInvalidOpenNURBSVersion, major)
	}
	if uint64(minor) > minorVersionMask.maxValue() {
		return OpenNURBSVersion{}, fmt.Errorf("%w: minor %d", ErrInvalidOpenNURBSVersion, minor)
	}
	if date.Before(minBuildDate) || date.After(maxBuildDate) {
		return OpenNURBSVersion{}, fmt.Errorf("%w: build date outside %d..%d",
			ErrInvalidOpenNURBSVersion, minBuildDate.Year(), maxBuildDate.Year())
	}
	if uint64(platform) > platformMask.maxValue() {
		return OpenNURBSVersion{}, fmt.Errorf("%w: platform %d", ErrInvalidOpenNURBSVersion, platform)
	}
	year := date.Year()
	if (major <= 4 && year > 2011) ||
		(major == 5 && year < 2006) ||
		(major == 6 && year < 2012) ||
		(major == 7 && year < 2018) {
		return OpenNURBSVersion{}, fmt.Errorf("%w: major %d does not match build year %d",
			ErrInvalidOpenNURBSVersion, major, year)
	}
	return OpenNURBSVersion{major: major, minor: minor, date: date, platform: platform}, nil
}

// Major returns the major version.
func (v OpenNURBSVersion) Major() uint8 { return v.major }

// Minor returns the minor version.
func (v OpenNURBSVersion) Minor() uint8 { return v.minor }

// Date returns the build date.
func (v OpenNURBSVersion) Date() GregorianDate { return v.date }

// Platform returns the platform code.
func (v OpenNURBSVersion) Platform() uint8 { return v.platform }

// IsZero reports whether v is the zero stamp (no version recorded).
func (v OpenNURBSVersion) IsZero() bool {
	return v == OpenNURBSVersion{}
}

// OpenNURBSVersionFromPacked decodes the packed bit-field encoding.
func OpenNURBSVersionFromPacked(value uint32) (OpenNURBSVersion, error) {
	wide := uint64(value)
	major := uint8(majorVersionMask.extract(wide))
	minor := uint8(minorVersionMask.extract(wide))
	platform := uint8(platformMask.extract(wide))
	rawDate := uint16(buildDateMask.extract(wide))
	date, err := GregorianDateFromDayOfYear(rawDate/buildDateMod+buildDateRefYear, rawDate%buildDateMod)
	if err != nil {
		return OpenNURBSVersion{}, fmt.Errorf("%w: %v", ErrInvalidOpenNURBSVersion, err)
	}
	return NewOpenNURBSVersion(major, minor, date, platform)
}

// Packed returns the packed bit-field encoding.
func (v OpenNURBSVersion) Packed() uint32 {
	var out uint64
	out |= majorVersionMask.insert(uint64(v.major))
	out |= minorVersionMask.insert(uint64(v.minor))
	out |= platformMask.insert(uint64(v.platform))
	rawDate := uint64(v.date.Year()-buildDateRefYear)*buildDateMod + uint64(v.date.DayOfYear())
	out |= buildDateMask.insert(rawDate)
	return uint32(out)
}

// OpenNURBSVersionFromDateNumber decodes the legacy yyyymmddn encoding.
// The stray value 200612060 identifies major version 5.
func OpenNURBSVersionFromDateNumber(value uint64) (OpenNURBSVersion, error) {
	major := uint8(value % 10)
	if value == 200612060 {
		major = 5
	}
	day := uint8((value / 10) % 100)
	month := uint8((value / (10 * 100)) % 100)
	year := value / (10 * 100 * 100)
	if year > 0xFFFF {
		return OpenNURBSVersion{}, fmt.Errorf("%w: year %d", ErrInvalidOpenNURBSVersion, year)
	}
	date, err := NewGregorianDate(uint16(year), month, day)
	if err != nil {
		return OpenNURBSVersion{}, fmt.Errorf("%w: %v", ErrInvalidOpenNURBSVersion, err)
	}
	return NewOpenNURBSVersion(major, 0, date, 0)
}

// DateNumber returns the legacy yyyymmddn encoding. Minor version and
// platform are not representable and are dropped.
func (v OpenNURBSVersion) DateNumber() uint64 {
	return uint64(v.major) +
		uint64(v.date.DayOfMonth())*10 +
		uint64(v.date.Month())*10*100 +
		uint64(v.date.Year())*10*100*100
}

// parseOpenNURBSVersionValue interprets a properties-table version chunk
// value. The legacy yyyymmddn form is tried first: its month and day digit
// groups reject almost every packed word, while the packed decoder happily
// accepts many date numbers. Unrecognizable values yield the zero stamp.
func parseOpenNURBSVersionValue(value int64) OpenNURBSVersion {
	if value < 0 {
		return OpenNURBSVersion{}
	}
	if v, err := OpenNURBSVersionFromDateNumber(uint64(value)); err == nil {
		return v
	}
	if value <= 0xFFFFFFFF {
		if v, err := OpenNURBSVersionFromPacked(uint32(value)); err == nil {
			return v
		}
	}
	return OpenNURBSVersion{}
}
