package models

// VariableKind identifies a physical quantity that can appear as a column in
// engine performance data. It is used as the map key for sample data, packed
// grids and the variable registry.
type VariableKind int

const (
	Mach VariableKind = iota
	Altitude
	Throttle
	HybridThrottle
	Thrust
	GrossThrust
	RamDrag
	TailpipeThrust
	FuelFlow
	ElectricPower
	NOxRate
	ShaftPower
	ShaftPowerCorrected
	Temperature

	numVariableKinds
)

// AllVariables lists every recognized VariableKind in declaration order.
var AllVariables = []VariableKind{
	Mach,
	Altitude,
	Throttle,
	HybridThrottle,
	Thrust,
	GrossThrust,
	RamDrag,
	TailpipeThrust,
	FuelFlow,
	ElectricPower,
	NOxRate,
	ShaftPower,
	ShaftPowerCorrected,
	Temperature,
}

var variableNames = map[VariableKind]string{
	Mach:                "mach",
	Altitude:            "altitude",
	Throttle:            "throttle",
	HybridThrottle:      "hybrid_throttle",
	Thrust:              "thrust",
	GrossThrust:         "gross_thrust",
	RamDrag:             "ram_drag",
	TailpipeThrust:      "tailpipe_thrust",
	FuelFlow:            "fuel_flow",
	ElectricPower:       "electric_power",
	NOxRate:             "nox_rate",
	ShaftPower:          "shaft_power",
	ShaftPowerCorrected: "shaft_power_corrected",
	Temperature:         "t4",
}

func (v VariableKind) String() string {
	if name, ok := variableNames[v]; ok {
		return name
	}
	return "unknown"
}

// Aliases maps each VariableKind to the header spellings accepted for it.
// Headers are lowercased with whitespace replaced by underscores before
// comparison, so only that normalized form needs to be listed.
var Aliases = map[VariableKind][]string{
	Mach:                {"m", "mn", "mach", "mach_number"},
	Altitude:            {"altitude", "alt", "h"},
	Throttle:            {"throttle", "power_code", "pc"},
	HybridThrottle:      {"hybrid_throttle", "hpc", "hybrid_power_code", "electric_throttle"},
	Thrust:              {"thrust", "net_thrust"},
	GrossThrust:         {"gross_thrust"},
	RamDrag:             {"ram_drag"},
	TailpipeThrust:      {"tailpipe_thrust"},
	FuelFlow:            {"fuel", "fuel_flow", "fuel_flow_rate"},
	ElectricPower:       {"electric_power"},
	NOxRate:             {"nox", "nox_rate"},
	ShaftPower:          {"shaft_power", "shp"},
	ShaftPowerCorrected: {"shaft_power_corrected", "shpcor", "corrected_horsepower"},
	Temperature:         {"t4", "temp", "temperature"},
}

// DefaultUnits maps each VariableKind to its canonical unit. All sample data
// is converted to these units on ingest, so tolerances and downstream
// consumers can assume them.
var DefaultUnits = map[VariableKind]string{
	Mach:                "unitless",
	Altitude:            "ft",
	Throttle:            "unitless",
	HybridThrottle:      "unitless",
	Thrust:              "lbf",
	GrossThrust:         "lbf",
	RamDrag:             "lbf",
	TailpipeThrust:      "lbf",
	FuelFlow:            "lbm/h",
	ElectricPower:       "kW",
	NOxRate:             "lbm/h",
	ShaftPower:          "hp",
	ShaftPowerCorrected: "hp",
	Temperature:         "degR",
}

// DefaultRequiredVariables is the set of variables that must be present in
// engine performance data unless the caller overrides the requirement.
var DefaultRequiredVariables = []VariableKind{Mach, Altitude, Throttle, Thrust}

// LookupAlias resolves a normalized header name to its VariableKind.
func LookupAlias(name string) (VariableKind, bool) {
	for kind, names := range Aliases {
		for _, alias := range names {
			if alias == name {
				return kind, true
			}
		}
	}
	return 0, false
}

// Registry records which recognized variables were observed in the input
// data, mapped to their canonical unit. Derived quantities (gross thrust,
// ram drag, tailpipe thrust) are removed once folded into net thrust.
type Registry map[VariableKind]string

// Has reports whether the variable was observed in the input data.
func (r Registry) Has(v VariableKind) bool {
	_, ok := r[v]
	return ok
}
