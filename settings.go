package opennurbs

import "github.com/scigolib/opennurbs/internal/core"

// PlugIn is one entry of the settings plug-in list. Writers newer than
// chunk major version 1 carry no fields the reader understands yet; the
// record exists so the list length and framing are consumed faithfully.
type PlugIn struct{}

// UnitsAndTolerances carries the model unit system. No decoded fields yet;
// the record consumes its framing.
type UnitsAndTolerances struct{}

// MeshParameters holds the analysis/render meshing settings the reader
// understands.
type MeshParameters struct {
	ComputeCurvature bool
}

// Annotation holds dimension and annotation display settings. Fields past
// FaceName were added across chunk minor versions; readers of older archives
// leave them at zero.
type Annotation struct {
	DimScale     float64
	TextHeight   float64
	DimExe       float64
	DimExo       float64
	ArrowLength  float64
	ArrowWidth   float64
	CenterMark   float64
	DimUnits     int32
	ArrowType    int32
	AngularUnits int32
	LengthFormat int32
	AngleFormat  int32
	Resolution   int32
	FaceName     string

	// minor version > 0
	WorldViewTextScale      float64
	EnableAnnotationScaling uint8

	// minor version > 1
	WorldViewHatchScale float64
	EnableHatchScaling  uint8

	// minor version > 2
	EnableModelSpaceAnnotationScaling  uint8
	EnableLayoutSpaceAnnotationScaling uint8
}

// Attributes holds default object attribute settings.
type Attributes struct {
	LineTypeDisplayScale float64
}

// CurrentColor is the active drawing color and its source.
type CurrentColor struct {
	Color  int32
	Source int32
}

// Settings is the archive settings table.
type Settings struct {
	PluginList         []PlugIn
	UnitsAndTolerances UnitsAndTolerances
	RenderMesh         MeshParameters
	AnalysisMesh       MeshParameters
	Annotation         Annotation
	ModelURL           string
	Attributes         Attributes
	CurrentColor       CurrentColor
}

func decodeSettings(d *core.Decoder) (Settings, error) {
	var s Settings
	fields := []core.TableField{
		{Typecode: core.TcodeSettingsPluginList, Decode: func(c *core.Chunk) (err error) {
			s.PluginList, err = core.DecodeSequence(c.Decoder, decodePlugIn)
			return err
		}},
		{Typecode: core.TcodeSettingsUnitsAndTols, Decode: func(c *core.Chunk) error {
			s.UnitsAndTolerances = UnitsAndTolerances{}
			return nil
		}},
		{Typecode: core.TcodeSettingsRenderMesh, Decode: func(c *core.Chunk) (err error) {
			s.RenderMesh, err = decodeMeshParameters(c.Decoder)
			return err
		}},
		{Typecode: core.TcodeSettingsAnalysisMesh, Decode: func(c *core.Chunk) (err error) {
			s.AnalysisMesh, err = decodeMeshParameters(c.Decoder)
			return err
		}},
		{Typecode: core.TcodeSettingsAnnotation, Decode: func(c *core.Chunk) (err error) {
			s.Annotation, err = decodeAnnotation(c.Decoder)
			return err
		}},
		{Typecode: core.TcodeSettingsModelURL, Decode: func(c *core.Chunk) (err error) {
			s.ModelURL, err = c.DecodeWStringWithLength()
			return err
		}},
		{Typecode: core.TcodeSettingsAttributes, Decode: func(c *core.Chunk) (err error) {
			s.Attributes, err = decodeAttributes(c.Decoder)
			return err
		}},
		{Typecode: core.TcodeSettingsCurrentColor, Decode: func(c *core.Chunk) (err error) {
			s.CurrentColor, err = decodeCurrentColor(c.Decoder)
			return err
		}},
	}
	if _, err := d.DecodeWrappedTable(core.TcodeSettingsTable, fields); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// decodePlugIn reads one plug-in entry: its own framing chunk around a
// version stamp. Majors above 1 would carry fields this reader skips; the
// chunk close steps past whatever the entry contains.
func decodePlugIn(d *core.Decoder) (PlugIn, error) {
	c, err := d.OpenChunk()
	if err != nil {
		return PlugIn{}, err
	}
	if _, err := c.DecodeBigChunkVersion(); err != nil {
		return PlugIn{}, err
	}
	if err := c.Close(); err != nil {
		return PlugIn{}, err
	}
	return PlugIn{}, nil
}

func decodeMeshParameters(d *core.Decoder) (MeshParameters, error) {
	v, err := d.DecodeBigChunkVersion()
	if err != nil {
		return MeshParameters{}, err
	}
	if v.Major != 1 {
		return MeshParameters{}, nil
	}
	var m MeshParameters
	if m.ComputeCurvature, err = d.Bool(); err != nil {
		return MeshParameters{}, err
	}
	return m, nil
}

func decodeAnnotation(d *core.Decoder) (Annotation, error) {
	v, err := d.DecodeBigChunkVersion()
	if err != nil {
		return Annotation{}, err
	}
	if v.Major != 1 {
		return Annotation{}, nil
	}

	var a Annotation
	readF64 := func(dst *float64) {
		if err != nil {
			return
		}
		*dst, err = d.Float64()
	}
	readI32 := func(dst *int32) {
		if err != nil {
			return
		}
		*dst, err = d.Int32()
	}
	readU8 := func(dst *uint8) {
		if err != nil {
			return
		}
		*dst, err = d.Uint8()
	}

	readF64(&a.DimScale)
	readF64(&a.TextHeight)
	readF64(&a.DimExe)
	readF64(&a.DimExo)
	readF64(&a.ArrowLength)
	readF64(&a.ArrowWidth)
	readF64(&a.CenterMark)
	readI32(&a.DimUnits)
	readI32(&a.ArrowType)
	readI32(&a.AngularUnits)
	readI32(&a.LengthFormat)
	readI32(&a.AngleFormat)
	var padding int32
	readI32(&padding) // legacy word before resolution
	readI32(&a.Resolution)
	if err != nil {
		return Annotation{}, err
	}
	if a.FaceName, err = d.DecodeWStringWithLength(); err != nil {
		return Annotation{}, err
	}

	if v.Minor > 0 {
		readF64(&a.WorldViewTextScale)
		readU8(&a.EnableAnnotationScaling)
	}
	if v.Minor > 1 {
		readF64(&a.WorldViewHatchScale)
		readU8(&a.EnableHatchScaling)
	}
	if v.Minor > 2 {
		readU8(&a.EnableModelSpaceAnnotationScaling)
		readU8(&a.EnableLayoutSpaceAnnotationScaling)
	}
	if err != nil {
		return Annotation{}, err
	}
	return a, nil
}

func decodeAttributes(d *core.Decoder) (Attributes, error) {
	v, err := d.DecodeBigChunkVersion()
	if err != nil {
		return Attributes{}, err
	}
	if v.Major != 1 {
		return Attributes{}, nil
	}
	var a Attributes
	if a.LineTypeDisplayScale, err = d.Float64(); err != nil {
		return Attributes{}, err
	}
	return a, nil
}

func decodeCurrentColor(d *core.Decoder) (CurrentColor, error) {
	var c CurrentColor
	var err error
	if c.Color, err = d.Int32(); err != nil {
		return CurrentColor{}, err
	}
	if c.Source, err = d.Int32(); err != nil {
		return CurrentColor{}, err
	}
	return c, nil
}
