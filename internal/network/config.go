package network

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Color is an RGB triplet. Opacity is not stored here: alphas are computed
// per frame as 0.0-1.0 floats and applied when the color reaches the
// drawing surface.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// WithAlpha converts the color to an image/color.RGBA at the given opacity.
// The alpha is clamped to [0, 1] so callers can pass raw pulse math.
func (c Color) WithAlpha(a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// Config holds every tunable the animation reads. All values are fixed at
// startup; nothing here is mutated at runtime.
type Config struct {
	// World dimensions at startup (the window can be resized later).
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NodeCount         int     `json:"nodeCount"`
	AccentProbability float64 `json:"accentProbability"` // chance a node is accent-kind
	MaxSpeed          float64 `json:"maxSpeed"`          // velocity components in [-MaxSpeed, MaxSpeed]
	MinRadius         float64 `json:"minRadius"`
	MaxRadius         float64 `json:"maxRadius"`

	// Proximity linking
	ConnectionDistance   float64 `json:"connectionDistance"`   // pairs closer than this get a line
	SubThresholdFraction float64 `json:"subThresholdFraction"` // fraction of ConnectionDistance that triggers branches
	IntensityFactor      float64 `json:"intensityFactor"`      // scales the distance-derived alpha
	NeutralAlphaScale    float64 `json:"neutralAlphaScale"`    // flattens links between neutral nodes
	LineWidth            float64 `json:"lineWidth"`
	AccentLineWidth      float64 `json:"accentLineWidth"`

	// Pulsing
	PulseSpeed           float64 `json:"pulseSpeed"`
	PulseDepth           float64 `json:"pulseDepth"` // how far the pulse brightens accent links
	NodePulseRadiusBonus float64 `json:"nodePulseRadiusBonus"`

	// Dendrite branches
	BranchAlphaFraction float64 `json:"branchAlphaFraction"` // branch alpha as a fraction of the link's base alpha
	BranchLength        float64 `json:"branchLength"`
	BranchAmplitude     float64 `json:"branchAmplitude"` // breathing amplitude around BranchLength
	BranchPulseSpeed    float64 `json:"branchPulseSpeed"`
	BranchLineWidth     float64 `json:"branchLineWidth"`
	BranchTipRadius     float64 `json:"branchTipRadius"`
	SubBranches         bool    `json:"subBranches"` // fork the spur at its tip
	SubBranchAngle      float64 `json:"subBranchAngle"` // radians off the main spur
	SubBranchFraction   float64 `json:"subBranchFraction"`
	SubBranchAlphaScale float64 `json:"subBranchAlphaScale"`
	SubBranchLineWidth  float64 `json:"subBranchLineWidth"`

	// Node bodies
	NodeAlphaBase   float64 `json:"nodeAlphaBase"`
	NodeAlphaDepth  float64 `json:"nodeAlphaDepth"`
	GlowRadiusScale float64 `json:"glowRadiusScale"`
	GlowAlpha       float64 `json:"glowAlpha"`

	// Colors
	AccentColor     Color `json:"accentColor"`
	NeutralColor    Color `json:"neutralColor"`
	BackgroundColor Color `json:"backgroundColor"`

	// SpatialGrid switches the pair scan to a spatial hash. Output is
	// identical to the plain scan; only worth it well past a hundred nodes.
	SpatialGrid bool `json:"spatialGrid"`
}

// DefaultConfig returns the dense variant's tuning.
func DefaultConfig() *Config {
	return PresetDense()
}

// PresetDense is the richer variant: more nodes, longer reach, forking
// sub-branches on every dendrite spur.
func PresetDense() *Config {
	return &Config{
		WorldWidth:           1280,
		WorldHeight:          800,
		NodeCount:            110,
		AccentProbability:    0.25,
		MaxSpeed:             0.6,
		MinRadius:            1.5,
		MaxRadius:            3.5,
		ConnectionDistance:   150,
		SubThresholdFraction: 0.55,
		IntensityFactor:      0.85,
		NeutralAlphaScale:    0.35,
		LineWidth:            0.8,
		AccentLineWidth:      1.4,
		PulseSpeed:           2.0,
		PulseDepth:           0.45,
		NodePulseRadiusBonus: 1.2,
		BranchAlphaFraction:  0.6,
		BranchLength:         14,
		BranchAmplitude:      4,
		BranchPulseSpeed:     1.5,
		BranchLineWidth:      0.8,
		BranchTipRadius:      1.6,
		SubBranches:          true,
		SubBranchAngle:       0.5,
		SubBranchFraction:    0.45,
		SubBranchAlphaScale:  0.6,
		SubBranchLineWidth:   0.5,
		NodeAlphaBase:        0.55,
		NodeAlphaDepth:       0.45,
		GlowRadiusScale:      2.6,
		GlowAlpha:            0.12,
		AccentColor:          Color{R: 94, G: 234, B: 212},
		NeutralColor:         Color{R: 148, G: 163, B: 184},
		BackgroundColor:      Color{R: 8, G: 12, B: 24},
	}
}

// PresetMinimal is the quieter variant: fewer nodes, shorter reach, plain
// spurs without the forked tips.
func PresetMinimal() *Config {
	cfg := PresetDense()
	cfg.NodeCount = 60
	cfg.MaxSpeed = 0.4
	cfg.ConnectionDistance = 110
	cfg.SubThresholdFraction = 0.5
	cfg.IntensityFactor = 0.7
	cfg.BranchLength = 10
	cfg.BranchAmplitude = 3
	cfg.SubBranches = false
	return cfg
}

var presets = map[string]func() *Config{
	"dense":   PresetDense,
	"minimal": PresetMinimal,
}

// PresetNames lists the built-in presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetByName resolves a preset by its CLI name.
func PresetByName(name string) (*Config, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (have %v)", name, PresetNames())
	}
	return p(), nil
}

// Validate checks the semantic bounds the schema cannot express relative to
// each other.
func (c *Config) Validate() error {
	switch {
	case c.NodeCount <= 0:
		return fmt.Errorf("nodeCount must be positive, got %d", c.NodeCount)
	case c.ConnectionDistance <= 0:
		return fmt.Errorf("connectionDistance must be positive, got %g", c.ConnectionDistance)
	case c.SubThresholdFraction <= 0 || c.SubThresholdFraction > 1:
		return fmt.Errorf("subThresholdFraction must be in (0, 1], got %g", c.SubThresholdFraction)
	case c.AccentProbability < 0 || c.AccentProbability > 1:
		return fmt.Errorf("accentProbability must be in [0, 1], got %g", c.AccentProbability)
	case c.MaxSpeed < 0:
		return fmt.Errorf("maxSpeed must not be negative, got %g", c.MaxSpeed)
	case c.MinRadius <= 0 || c.MaxRadius < c.MinRadius:
		return fmt.Errorf("node radius range [%g, %g] is invalid", c.MinRadius, c.MaxRadius)
	case c.IntensityFactor <= 0:
		return fmt.Errorf("intensityFactor must be positive, got %g", c.IntensityFactor)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against
// the schema before unmarshalling. Fields absent from the file keep their
// default values.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
