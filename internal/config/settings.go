package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"helix/helix"
	"helix/quarkgl"
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrBadColor      = errors.New("config: bad color")
	ErrBadSetting    = errors.New("config: bad setting")
)

// Kink noise sources.
const (
	NoiseUniform = "uniform"
	NoiseSimplex = "simplex"
)

// Settings holds all configuration options.
type Settings struct {
	Preset string `json:"preset"`

	// Strands
	Radius    float64 `json:"radius"`
	Height    float64 `json:"height"`
	Spacing   float64 `json:"spacing"`
	Twist     float64 `json:"twist"`
	Segments  int     `json:"segments"`
	Edges     int     `json:"edges"`
	KinkMin   float64 `json:"kink_min"`
	KinkMax   float64 `json:"kink_max"`
	KinkMode  string  `json:"kink_mode"`
	KinkNoise string  `json:"kink_noise"`

	// Ribbons
	SamplesPerSegment int     `json:"samples_per_segment"`
	RibbonLeadIn      bool    `json:"ribbon_lead_in"`
	RibbonWidth       float64 `json:"ribbon_width"`
	RibbonThickness   float64 `json:"ribbon_thickness"`

	// Look
	Palette      []string `json:"palette"`
	RibbonColors []string `json:"ribbon_colors"`
	Background   string   `json:"background"`

	// View
	AutoRotate float64 `json:"auto_rotate"` // radians per tick
	Damping    float64 `json:"damping"`
	Workers    int     `json:"workers"`
}

// Colors is the parsed colour set of a Settings.
type Colors struct {
	Palette    []quarkgl.Color
	Ribbons    [2]quarkgl.Color
	Background quarkgl.Color
}

// FromPreset returns settings reproducing p with the default look.
func FromPreset(p helix.Preset) Settings {
	h, r := p.Helix, p.Ribbon
	return Settings{
		Preset:            p.Name,
		Radius:            h.MinorRadius,
		Height:            h.MajorHeight,
		Spacing:           h.Spacing,
		Twist:             h.TwistFactor,
		Segments:          h.SegmentCount,
		Edges:             h.EdgeCount,
		KinkMin:           h.Kink.Min,
		KinkMax:           h.Kink.Max,
		KinkMode:          h.KinkMode.String(),
		KinkNoise:         NoiseUniform,
		SamplesPerSegment: r.SamplesPerSegment,
		RibbonLeadIn:      r.LeadIn,
		RibbonWidth:       r.CrossSectionWidth,
		RibbonThickness:   r.CrossSectionThickness,
		Palette:           []string{"#5577BB", "#99BB88", "#CCAA77", "#66CCEE"},
		RibbonColors:      []string{"#AACC88", "#66AA88"},
		Background:        "#225566",
		Workers:           1,
	}
}

// Default returns the classic preset settings.
func Default() Settings { return FromPreset(helix.Classic) }

// ForPreset returns the settings of a named preset.
func ForPreset(name string) (Settings, error) {
	p, ok := helix.LookupPreset(name)
	if !ok {
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return FromPreset(p), nil
}

// Load reads a JSON settings file. See Parse.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse overlays JSON onto the preset it names (classic when absent) and
// validates the result.
func Parse(data []byte) (Settings, error) {
	var head struct {
		Preset string `json:"preset"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Settings{}, err
	}
	if head.Preset == "" {
		head.Preset = helix.Classic.Name
	}
	s, err := ForPreset(head.Preset)
	if err != nil {
		return Settings{}, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Helix returns the strand configuration.
func (s Settings) Helix() (helix.HelixConfig, error) {
	var mode helix.KinkMode
	switch strings.ToLower(s.KinkMode) {
	case "", "symmetric":
		mode = helix.KinkSymmetric
	case "single", "single-sided":
		mode = helix.KinkSingleSided
	default:
		return helix.HelixConfig{}, fmt.Errorf("%w: kink_mode %q", ErrBadSetting, s.KinkMode)
	}
	return helix.HelixConfig{
		MinorRadius:  s.Radius,
		MajorHeight:  s.Height,
		Spacing:      s.Spacing,
		TwistFactor:  s.Twist,
		SegmentCount: s.Segments,
		EdgeCount:    s.Edges,
		Kink:         helix.Range{Min: s.KinkMin, Max: s.KinkMax},
		KinkMode:     mode,
	}, nil
}

// Ribbon returns the ribbon configuration.
func (s Settings) Ribbon() helix.RibbonConfig {
	return helix.RibbonConfig{
		CrossSectionWidth:     s.RibbonWidth,
		CrossSectionThickness: s.RibbonThickness,
		SamplesPerSegment:     s.SamplesPerSegment,
		LeadIn:                s.RibbonLeadIn,
	}
}

// Jitter returns the kink source selected by KinkNoise.
func (s Settings) Jitter(seed int64) (helix.Jitter, error) {
	switch strings.ToLower(s.KinkNoise) {
	case "", NoiseUniform:
		return helix.NewUniformJitter(rand.New(rand.NewSource(seed))), nil
	case NoiseSimplex:
		return helix.NewSimplexJitter(seed), nil
	default:
		return nil, fmt.Errorf("%w: kink_noise %q", ErrBadSetting, s.KinkNoise)
	}
}

// Colors parses the palette, ribbon and background colours.
func (s Settings) Colors() (Colors, error) {
	var c Colors
	if len(s.Palette) == 0 {
		return c, fmt.Errorf("%w: empty palette", ErrBadColor)
	}
	for _, p := range s.Palette {
		col, err := ParseColor(p)
		if err != nil {
			return c, err
		}
		c.Palette = append(c.Palette, col)
	}
	if len(s.RibbonColors) != 2 {
		return c, fmt.Errorf("%w: need 2 ribbon colors, got %d", ErrBadColor, len(s.RibbonColors))
	}
	for i, rc := range s.RibbonColors {
		col, err := ParseColor(rc)
		if err != nil {
			return c, err
		}
		c.Ribbons[i] = col
	}
	bg, err := ParseColor(s.Background)
	if err != nil {
		return c, err
	}
	c.Background = bg
	return c, nil
}

// Validate checks every derived configuration.
func (s Settings) Validate() error {
	h, err := s.Helix()
	if err != nil {
		return err
	}
	if err := s.Ribbon().Validate(h); err != nil {
		return err
	}
	if _, err := s.Jitter(0); err != nil {
		return err
	}
	if _, err := s.Colors(); err != nil {
		return err
	}
	if s.Damping < 0 || s.Damping >= 1 {
		return fmt.Errorf("%w: damping %v outside [0,1)", ErrBadSetting, s.Damping)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrBadSetting, s.Workers)
	}
	return nil
}

// ParseColor accepts #rgb, #rrggbb and 0xrrggbb, with or without the #.
func ParseColor(s string) (quarkgl.Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	hex = strings.TrimPrefix(hex, "#")
	if (len(hex) != 3 && len(hex) != 6) || strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
		return quarkgl.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return quarkgl.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	r, g, b := c.RGB255()
	return quarkgl.RGB(r, g, b), nil
}
