// Package units converts engine-deck quantities between the units accepted
// in input data and the canonical units the deck works in. It covers only
// the dimensions the variable catalog needs; it is not a general units
// library.
package units

import "fmt"

type dimension int

const (
	dimensionless dimension = iota
	length
	force
	massFlow
	power
	temperature
)

// linear units are defined by a factor to the dimension's base unit.
// Temperatures are affine and handled separately.
var factors = map[string]struct {
	dim    dimension
	ToBase float64
}{
	"unitless": {dimensionless, 1},
	"":         {dimensionless, 1},

	// length, base ft
	"ft":  {length, 1},
	"kft": {length, 1000},
	"m":   {length, 3.280839895013123},
	"km":  {length, 3280.839895013123},

	// force, base lbf
	"lbf": {force, 1},
	"N":   {force, 0.2248089430997105},
	"kN":  {force, 224.8089430997105},

	// mass flow, base lbm/h
	"lbm/h": {massFlow, 1},
	"lbm/s": {massFlow, 3600},
	"kg/h":  {massFlow, 2.204622621848776},
	"kg/s":  {massFlow, 7936.641438655594},

	// power, base hp
	"hp": {power, 1},
	"W":  {power, 0.001341022089595028},
	"kW": {power, 1.341022089595028},
	"MW": {power, 1341.022089595028},
}

var temperatureUnits = map[string]struct {
	// degR = value*scale + offset
	Scale  float64
	Offset float64
}{
	"degR": {1, 0},
	"K":    {1.8, 0},
	"degC": {1.8, 491.67},
	"degF": {1, 459.67},
}

// Compatible reports whether a value in unit `from` can be converted to
// unit `to`.
func Compatible(from, to string) bool {
	_, fromTemp := temperatureUnits[from]
	_, toTemp := temperatureUnits[to]
	if fromTemp || toTemp {
		return fromTemp && toTemp
	}
	f, okFrom := factors[from]
	t, okTo := factors[to]
	return okFrom && okTo && f.dim == t.dim
}

// Convert converts a single value between compatible units.
func Convert(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}
	if ft, ok := temperatureUnits[from]; ok {
		tt, ok := temperatureUnits[to]
		if !ok {
			return 0, fmt.Errorf("cannot convert temperature unit %q to %q", from, to)
		}
		rankine := value*ft.Scale + ft.Offset
		return (rankine - tt.Offset) / tt.Scale, nil
	}
	f, ok := factors[from]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	t, ok := factors[to]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	if f.dim != t.dim {
		return 0, fmt.Errorf("cannot convert %q to %q", from, to)
	}
	return value * f.ToBase / t.ToBase, nil
}

// ConvertSlice converts every value in a new slice; the input is unchanged.
func ConvertSlice(values []float64, from, to string) ([]float64, error) {
	out := make([]float64, len(values))
	if from == to {
		copy(out, values)
		return out, nil
	}
	for i, v := range values {
		converted, err := Convert(v, from, to)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}
