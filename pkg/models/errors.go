package models

import (
	"fmt"
	"strings"
)

// UnitError reports a column whose declared unit is incompatible with the
// physical dimension expected for its variable.
type UnitError struct {
	Variable VariableKind
	Unit     string
	Expected string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("units %q provided for <%s> are not compatible with expected units of %q",
		e.Unit, e.Variable, e.Expected)
}

// NoValidDataError reports input data in which no column matched any
// recognized variable.
type NoValidDataError struct {
	Source string
}

func (e *NoValidDataError) Error() string {
	return fmt.Sprintf("no valid engine variables found in data for %s", e.Source)
}

// MissingRequiredVariableError reports required variables absent from the
// data after consistency checking.
type MissingRequiredVariableError struct {
	Source  string
	Missing []VariableKind
}

func (e *MissingRequiredVariableError) Error() string {
	names := make([]string, len(e.Missing))
	for i, v := range e.Missing {
		names[i] = v.String()
	}
	return fmt.Sprintf("required variables [%s] are missing from %s",
		strings.Join(names, ", "), e.Source)
}

// DataConsistencyError reports redundant inputs that disagree beyond
// tolerance, or structurally inconsistent sample data.
type DataConsistencyError struct {
	Source string
	Detail string
}

func (e *DataConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent engine data in %s: %s", e.Source, e.Detail)
}

// InsufficientAltitudeError reports a Mach group with too few altitude bins
// for the downstream interpolator.
type InsufficientAltitudeError struct {
	Mach float64
}

func (e *InsufficientAltitudeError) Error() string {
	return fmt.Sprintf("only one altitude provided for Mach number %6.3f in engine data", e.Mach)
}

// NoSeaLevelStaticPointError reports that no sea-level static sample exists
// to derive the reference thrust from, and none was supplied.
type NoSeaLevelStaticPointError struct {
	Source string
}

func (e *NoSeaLevelStaticPointError) Error() string {
	return fmt.Sprintf("could not find sea-level static max thrust point for %s; "+
		"review the data or set ReferenceSLSThrust in deck options", e.Source)
}

// ScalingConflictError reports contradictory user-supplied scale factor and
// target thrust values.
type ScalingConflictError struct {
	ScaleFactor     float64
	ScaledSLSThrust float64
	ReferenceThrust float64
}

func (e *ScalingConflictError) Error() string {
	return fmt.Sprintf("conflicting values provided for scale factor (%g) and scaled SLS thrust "+
		"(%g lbf against reference %g lbf)", e.ScaleFactor, e.ScaledSLSThrust, e.ReferenceThrust)
}

// ParseError reports a malformed row or non-numeric cell in a data file.
type ParseError struct {
	File   string
	Row    int
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d: %s", e.File, e.Row, e.Detail)
}
