// Package deck builds queryable engine performance decks from raw tabular
// propulsion data. Construction runs a fixed pipeline: ingest, consistency
// checking, grid packing, reference-thrust resolution, throttle
// normalization, and optional flight-idle synthesis. A deck that constructs
// without error is fully processed; a failed construction returns no deck.
package deck

import (
	"github.com/pterm/pterm"

	"enginedeck/pkg/models"
	"enginedeck/pkg/reader"
)

// Deck holds processed engine performance data for one engine type. Decks
// are independent; multiple decks may be built in parallel, but a single
// deck is not safe for concurrent construction.
type Deck struct {
	Name string

	opts     models.DeckOptions
	raw      *models.RawSampleSet
	registry models.Registry

	// data is the working sample set: one equal-length series per variable,
	// rewritten in place by the pipeline stages.
	data        map[models.VariableKind][]float64
	modelLength int

	packed *PackedGrid

	// Capability flags for downstream consumers.
	UseThrust         bool
	UseFuel           bool
	UseElectricity    bool
	UseHybridThrottle bool
	UseNOx            bool
	UseT4             bool
	UseShaftPower     bool

	// Throttle scale metadata. The scalar fields apply in global
	// normalization scope; the per-bin slices apply in local scope, ordered
	// by (Mach bin, altitude bin).
	ThrottleMin           float64
	ThrottleMax           float64
	HybridThrottleMin     float64
	HybridThrottleMax     float64
	ThrottleMinBins       []float64
	ThrottleMaxBins       []float64
	HybridThrottleMinBins []float64
	HybridThrottleMaxBins []float64

	// Scaling metadata, in lbf.
	ReferenceSLSThrust float64
	ScaleFactor        float64
	ScaledSLSThrust    float64

	idlePoints    map[models.VariableKind][]float64
	idleGenerated bool
}

// workingKinds are the variables bookkept in the working sample set. Gross
// thrust, ram drag and tailpipe thrust are folded into net thrust by the
// consistency checker and never carried separately.
var workingKinds = []models.VariableKind{
	models.Mach,
	models.Altitude,
	models.Throttle,
	models.HybridThrottle,
	models.Thrust,
	models.FuelFlow,
	models.ElectricPower,
	models.NOxRate,
	models.ShaftPower,
	models.ShaftPowerCorrected,
	models.Temperature,
}

// NewFromFile reads a delimited engine data file and builds a deck from it.
func NewFromFile(path string, opts models.DeckOptions) (*Deck, error) {
	table, err := reader.ReadDataFile(path)
	if err != nil {
		return nil, err
	}
	return build("<"+path+">", table, opts)
}

// New builds a deck from an in-memory table.
func New(table *models.Table, opts models.DeckOptions) (*Deck, error) {
	return build("engine deck <"+opts.Name+">", table, opts)
}

func build(source string, table *models.Table, opts models.DeckOptions) (*Deck, error) {
	opts = validateOptions(opts)

	raw, registry, err := reader.Decode(source, table, opts.Quiet)
	if err != nil {
		return nil, err
	}

	d := &Deck{
		Name:        opts.Name,
		opts:        opts,
		raw:         raw,
		registry:    registry,
		data:        make(map[models.VariableKind][]float64, len(workingKinds)),
		ScaleFactor: 1.0,
	}

	// Copy recognized raw data into the working set. The raw set is never
	// mutated after this point.
	for _, kind := range workingKinds {
		if values, ok := raw.Variables[kind]; ok {
			d.data[kind] = append([]float64(nil), values...)
		} else {
			d.data[kind] = nil
		}
	}

	if err := d.checkData(source); err != nil {
		return nil, err
	}

	if opts.GeopotentialAltitude {
		d.data[models.Altitude] = geopotentialToGeometric(d.data[models.Altitude], opts.EarthRadius)
	}

	d.setVariableFlags()

	if err := d.packData(); err != nil {
		return nil, err
	}

	if d.UseThrust {
		if err := d.resolveScaling(source); err != nil {
			return nil, err
		}
	}

	if err := d.normalizeThrottle(); err != nil {
		return nil, err
	}

	if opts.GenerateFlightIdle {
		if err := d.generateFlightIdle(); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// validateOptions fixes recoverable option problems, warning about each.
func validateOptions(opts models.DeckOptions) models.DeckOptions {
	if opts.Name == "" {
		opts.Name = "engine_deck"
	}
	if opts.GenerateFlightIdle && opts.IdleMinFraction > opts.IdleMaxFraction {
		if !opts.Quiet {
			pterm.Warning.Printf("engine deck <%s>: minimum flight idle fraction exceeds maximum; "+
				"values will be flipped\n", opts.Name)
		}
		opts.IdleMinFraction, opts.IdleMaxFraction = opts.IdleMaxFraction, opts.IdleMinFraction
	}
	if !opts.ScalePerformance && (opts.ScaleFactor != nil || opts.ScaledSLSThrust != nil) && !opts.Quiet {
		pterm.Warning.Printf("engine deck <%s>: scaling targets are provided, but will be ignored "+
			"because performance scaling is disabled\n", opts.Name)
	}
	return opts
}

// setVariableFlags records which optional variables the deck can supply, so
// consumers can query capabilities without inspecting the registry.
func (d *Deck) setVariableFlags() {
	reg := d.registry
	d.UseThrust = reg.Has(models.Thrust) || reg.Has(models.TailpipeThrust)
	d.UseFuel = reg.Has(models.FuelFlow)
	d.UseElectricity = reg.Has(models.ElectricPower)
	d.UseHybridThrottle = reg.Has(models.HybridThrottle)
	d.UseNOx = reg.Has(models.NOxRate)
	d.UseT4 = reg.Has(models.Temperature)
	d.UseShaftPower = reg.Has(models.ShaftPower) || reg.Has(models.ShaftPowerCorrected)
}

// Options returns the effective options the deck was built with.
func (d *Deck) Options() models.DeckOptions { return d.opts }

// Registry returns the variables observed in the input data with their
// canonical units. Derived quantities folded into net thrust are absent.
func (d *Deck) Registry() models.Registry {
	out := make(models.Registry, len(d.registry))
	for k, v := range d.registry {
		out[k] = v
	}
	return out
}

// ModelLength returns the number of samples in the working data, including
// any synthesized flight-idle points.
func (d *Deck) ModelLength() int { return d.modelLength }

// Samples returns a copy of the flat, sorted, normalized sample series for a
// variable. Together with Mach, Altitude, Throttle and HybridThrottle this
// forms the semi-structured interpolation table handed downstream.
func (d *Deck) Samples(v models.VariableKind) []float64 {
	return append([]float64(nil), d.data[v]...)
}

// Packed returns the dense packed grid for the current working data.
func (d *Deck) Packed() *PackedGrid { return d.packed }

// IdlePoints returns the synthesized flight-idle samples per variable, or
// nil when idle generation was not run.
func (d *Deck) IdlePoints() map[models.VariableKind][]float64 {
	if d.idlePoints == nil {
		return nil
	}
	out := make(map[models.VariableKind][]float64, len(d.idlePoints))
	for k, v := range d.idlePoints {
		out[k] = append([]float64(nil), v...)
	}
	return out
}

// SupportedVariables lists the variables present in the registry in catalog
// order.
func (d *Deck) SupportedVariables() []models.VariableKind {
	var out []models.VariableKind
	for _, kind := range models.AllVariables {
		if d.registry.Has(kind) {
			out = append(out, kind)
		}
	}
	return out
}

// geopotentialToGeometric converts geopotential altitudes to geometric using
// the provided Earth radius (same length unit as the altitudes).
func geopotentialToGeometric(altitudes []float64, earthRadius float64) []float64 {
	out := make([]float64, len(altitudes))
	for i, h := range altitudes {
		out[i] = earthRadius * h / (earthRadius - h)
	}
	return out
}
