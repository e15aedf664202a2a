package helix

// Preset is a named helix and ribbon configuration.
type Preset struct {
	Name   string
	Helix  HelixConfig
	Ribbon RibbonConfig
}

// Classic kinks the strands symmetrically and leads the ribbon in by one
// segment.
var Classic = Preset{
	Name: "classic",
	Helix: HelixConfig{
		MinorRadius:  0.8,
		MajorHeight:  6,
		Spacing:      2.5,
		TwistFactor:  0.2,
		SegmentCount: 16,
		EdgeCount:    12,
		Kink:         Range{Min: 0.05, Max: 0.1},
		KinkMode:     KinkSymmetric,
	},
	Ribbon: RibbonConfig{
		CrossSectionWidth:     2,
		CrossSectionThickness: 0.1,
		SamplesPerSegment:     30,
		LeadIn:                true,
	},
}

// Simple uses a smaller single-sided kink and an exact ribbon range.
var Simple = Preset{
	Name: "simple",
	Helix: HelixConfig{
		MinorRadius:  0.8,
		MajorHeight:  6,
		Spacing:      2.5,
		TwistFactor:  0.2,
		SegmentCount: 16,
		EdgeCount:    12,
		Kink:         Range{Min: 0, Max: 0.05},
		KinkMode:     KinkSingleSided,
	},
	Ribbon: RibbonConfig{
		CrossSectionWidth:     2,
		CrossSectionThickness: 0.1,
		SamplesPerSegment:     30,
	},
}

// Presets lists the built-in presets.
func Presets() []Preset { return []Preset{Classic, Simple} }

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
