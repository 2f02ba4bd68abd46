package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTable(t *testing.T) {
	assert.True(t, IsTable(TcodePropertiesTable))
	assert.True(t, IsTable(TcodeSettingsTable))
	assert.True(t, IsTable(TcodeTable|0x1234))
	assert.False(t, IsTable(TcodeTableRec|0x0021))
	assert.False(t, IsTable(TcodeCommentBlock))
	assert.False(t, IsTable(TcodeEndOfTable))
}

func TestIsShort(t *testing.T) {
	assert.True(t, IsShort(TcodeEndOfTable))
	assert.True(t, IsShort(TcodePropertiesOpenNURBSVersion))
	assert.True(t, IsShort(TcodeRGB))
	assert.False(t, IsShort(TcodePropertiesTable))
	assert.False(t, IsShort(TcodeSummary))
}

func TestIsUnsignedLength(t *testing.T) {
	// Without the short bit the value field is always unsigned.
	assert.True(t, isUnsignedLength(TcodeCommentBlock))
	assert.True(t, isUnsignedLength(TcodePropertiesTable))
	assert.True(t, isUnsignedLength(TcodeSummary))

	// The short bit flips it to signed...
	assert.False(t, isUnsignedLength(TcodeEndOfTable))
	assert.False(t, isUnsignedLength(TcodeShort|0x0042))

	// ...except for the four legacy holdouts.
	assert.True(t, isUnsignedLength(TcodeRGB))
	assert.True(t, isUnsignedLength(TcodeRGBDisplay))
	assert.True(t, isUnsignedLength(TcodePropertiesOpenNURBSVersion))
	assert.True(t, isUnsignedLength(TcodeObjectRecordType))
}
