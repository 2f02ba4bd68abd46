package core

// Typecodes name the kind of a chunk. The 32-bit space is partitioned into
// families by the high half (the low 16 bits index within a family), with two
// flag bits: TcodeCRC marks chunks whose payload carries a trailing checksum,
// and TcodeShort marks chunks whose value field is an inline integer rather
// than a payload length.
const (
	TcodeShort uint32 = 0x80000000
	TcodeCRC   uint32 = 0x00008000

	// Family bases. A typecode tc is a table chunk iff
	// tc&TcodeFamilyMask == TcodeTable.
	TcodeTable      uint32 = 0x00B00000
	TcodeTableRec   uint32 = 0x00900000
	TcodeFamilyMask uint32 = 0xFFFF0000

	// TcodeEndOfTable terminates wrapped tables (bare V1 tables have no
	// sentinel). It carries the short bit, so
	// the sentinel is an inline chunk with no payload.
	TcodeEndOfTable uint32 = 0xFFFFFFFF
)

// Table chunks of V2 and later archives.
const (
	TcodePropertiesTable uint32 = TcodeTable | 0x0014
	TcodeSettingsTable   uint32 = TcodeTable | 0x0015
)

// Properties table records.
const (
	TcodePropertiesRevisionHistory        uint32 = TcodeTableRec | TcodeCRC | 0x0021
	TcodePropertiesNotes                  uint32 = TcodeTableRec | TcodeCRC | 0x0022
	TcodePropertiesPreviewImage           uint32 = TcodeTableRec | TcodeCRC | 0x0023
	TcodePropertiesApplication            uint32 = TcodeTableRec | TcodeCRC | 0x0024
	TcodePropertiesCompressedPreviewImage uint32 = TcodeTableRec | TcodeCRC | 0x0025
	TcodePropertiesOpenNURBSVersion       uint32 = TcodeTableRec | TcodeShort | 0x0026
	TcodePropertiesAsFileName             uint32 = TcodeTableRec | TcodeCRC | 0x0027
)

// Settings table records.
const (
	TcodeSettingsPluginList   uint32 = TcodeTableRec | TcodeCRC | 0x0135
	TcodeSettingsUnitsAndTols uint32 = TcodeTableRec | TcodeCRC | 0x0031
	TcodeSettingsRenderMesh   uint32 = TcodeTableRec | TcodeCRC | 0x0032
	TcodeSettingsAnalysisMesh uint32 = TcodeTableRec | TcodeCRC | 0x0033
	TcodeSettingsAnnotation   uint32 = TcodeTableRec | TcodeCRC | 0x0034
	TcodeSettingsModelURL     uint32 = TcodeTableRec | TcodeCRC | 0x0037
	TcodeSettingsAttributes   uint32 = TcodeTableRec | TcodeCRC | 0x003A
	TcodeSettingsCurrentColor uint32 = TcodeTableRec | TcodeCRC | 0x003B
)

// Object table records. Only the record-type marker matters to the framing
// layer: it is one of the short typecodes whose value stays unsigned.
const (
	TcodeObjectRecordType uint32 = TcodeTableRec | TcodeShort | 0x000B
)

// Legacy typecodes used by V1 archives.
const (
	TcodeCommentBlock       uint32 = 0x00000001
	TcodeViewport           uint32 = 0x00000003
	TcodeNotes              uint32 = 0x0000000C
	TcodeUnitAndTolerances  uint32 = 0x0000000D
	TcodeSummary            uint32 = 0x00000010
	TcodeBitmapPreview      uint32 = 0x00000011
	TcodeRGB                uint32 = TcodeShort | 0x00000016
	TcodeRGBDisplay         uint32 = TcodeShort | 0x0000001B
	TcodeLayer              uint32 = 0x0000001D
	TcodeAnnotationSettings uint32 = 0x00000021
	TcodeCurrentLayer       uint32 = 0x00000025
	TcodeNamedCPlane        uint32 = 0x00000026
	TcodeNamedView          uint32 = 0x00000027
	TcodeRenderMeshParams   uint32 = 0x00000029
)

// IsTable reports whether tc belongs to the table family.
func IsTable(tc uint32) bool {
	return tc&TcodeFamilyMask == TcodeTable
}

// IsShort reports whether tc names an inline chunk: its value field holds a
// small integer instead of a payload length.
func IsShort(tc uint32) bool {
	return tc&TcodeShort != 0
}

// isUnsignedLength reports whether a 4-byte chunk value field is read as
// unsigned. Values are unsigned unless the short bit is set, with four legacy
// exceptions that stay unsigned despite carrying the bit.
func isUnsignedLength(tc uint32) bool {
	if tc&TcodeShort == 0 {
		return true
	}
	switch tc {
	case TcodeRGB, TcodeRGBDisplay, TcodePropertiesOpenNURBSVersion, TcodeObjectRecordType:
		return true
	}
	return false
}
