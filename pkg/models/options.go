package models

// PowerType selects which consistency-checking and output-building branch a
// deck uses: thrust-producing engines or shaft-power-producing engines.
type PowerType int

const (
	// Turbofan decks are thrust-producing; net thrust is a required variable.
	Turbofan PowerType = iota
	// Turboshaft decks are shaft-power-producing; the configured shaft power
	// variable and tailpipe thrust replace net thrust in the required set.
	Turboshaft
)

func (p PowerType) String() string {
	if p == Turboshaft {
		return "turboshaft"
	}
	return "turbofan"
}

// DeckOptions configures construction of an engine deck. The zero value is
// not usable; start from DefaultDeckOptions.
type DeckOptions struct {
	// Name labels the deck in diagnostics and errors.
	Name string

	PowerType PowerType
	// ShaftPowerVariable is the power variable required by turboshaft decks,
	// either ShaftPower or ShaftPowerCorrected.
	ShaftPowerVariable VariableKind

	ScalePerformance     bool
	IgnoreNegativeThrust bool
	GeopotentialAltitude bool
	GenerateFlightIdle   bool

	IdleThrustFraction float64
	IdleMinFraction    float64
	IdleMaxFraction    float64

	// ScaleFactor, ScaledSLSThrust and ReferenceSLSThrust are nil when not
	// user-supplied; the scaling resolver distinguishes provided values from
	// defaults. Thrust values are in lbf.
	ScaleFactor        *float64
	ScaledSLSThrust    *float64
	ReferenceSLSThrust *float64

	// GlobalThrottle and GlobalHybridThrottle select one normalization scale
	// for the whole deck; when false, one scale per Mach/altitude bin.
	GlobalThrottle       bool
	GlobalHybridThrottle bool

	// Proximity tolerances defining "same point" equivalence.
	MachTol   float64 // unitless
	AltTol    float64 // ft
	ThrustTol float64 // lbf

	// EarthRadius is used by the geopotential altitude conversion, in ft.
	EarthRadius float64

	// RequiredVariables overrides the default required set when non-nil.
	RequiredVariables []VariableKind

	// Quiet suppresses non-fatal diagnostics, for library use.
	Quiet bool
}

// DefaultDeckOptions returns the baseline deck configuration.
func DefaultDeckOptions() DeckOptions {
	return DeckOptions{
		Name:                 "engine_deck",
		PowerType:            Turbofan,
		ShaftPowerVariable:   ShaftPowerCorrected,
		ScalePerformance:     true,
		IgnoreNegativeThrust: false,
		GeopotentialAltitude: false,
		GenerateFlightIdle:   false,
		IdleThrustFraction:   0.0,
		IdleMinFraction:      0.08,
		IdleMaxFraction:      1.0,
		GlobalThrottle:       true,
		GlobalHybridThrottle: true,
		MachTol:              0.01,
		AltTol:               10.0,
		ThrustTol:            1.0,
		EarthRadius:          20.92e6,
	}
}

// Required returns the effective required-variable set for these options,
// accounting for the power type.
func (o DeckOptions) Required() []VariableKind {
	var required []VariableKind
	if o.RequiredVariables != nil {
		required = append(required, o.RequiredVariables...)
	} else {
		required = append(required, DefaultRequiredVariables...)
	}

	if o.PowerType == Turboshaft {
		filtered := required[:0]
		for _, v := range required {
			if v != Thrust {
				filtered = append(filtered, v)
			}
		}
		required = append(filtered, o.ShaftPowerVariable, TailpipeThrust)
	}
	return required
}

// Float64 returns a pointer to v, for populating optional option fields.
func Float64(v float64) *float64 {
	f := v
	return &f
}
