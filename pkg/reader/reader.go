// Package reader ingests raw engine performance data from delimited data
// files or in-memory tables, resolves header aliases, and converts all
// recognized columns to canonical units.
package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/pterm/pterm"

	"enginedeck/pkg/models"
	"enginedeck/pkg/units"
)

// ReadDataFile parses a delimited engine data file into a Table. The format
// is comma-separated with optional '#' comment lines, a header row of
// variable names with optional units in parentheses ("Altitude (ft)"), and
// numeric data rows.
func ReadDataFile(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		if parseErr, ok := err.(*csv.ParseError); ok {
			return nil, &models.ParseError{File: path, Row: parseErr.Line, Detail: parseErr.Err.Error()}
		}
		return nil, err
	}
	if len(records) < 2 {
		return nil, &models.ParseError{File: path, Row: len(records), Detail: "no data rows found"}
	}

	header := records[0]
	names := make([]string, len(header))
	unitNames := make([]string, len(header))
	for i, cell := range header {
		names[i], unitNames[i] = splitHeader(cell)
	}

	columns := make([][]float64, len(header))
	for rowIdx, record := range records[1:] {
		if len(record) != len(header) {
			return nil, &models.ParseError{
				File: path, Row: rowIdx + 2,
				Detail: fmt.Sprintf("expected %d fields, found %d", len(header), len(record)),
			}
		}
		for col, cell := range record {
			value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, &models.ParseError{
					File: path, Row: rowIdx + 2,
					Detail: fmt.Sprintf("non-numeric value %q in column %q", cell, names[col]),
				}
			}
			columns[col] = append(columns[col], value)
		}
	}

	table := models.NewTable()
	for i, name := range names {
		table.Set(name, columns[i], unitNames[i])
	}
	return table, nil
}

// splitHeader separates "Thrust (lbf)" into name and unit. A header without
// parentheses is unitless.
func splitHeader(cell string) (name, unit string) {
	cell = strings.TrimSpace(cell)
	open := strings.Index(cell, "(")
	closing := strings.LastIndex(cell, ")")
	if open > 0 && closing > open {
		return strings.TrimSpace(cell[:open]), strings.TrimSpace(cell[open+1 : closing])
	}
	return cell, "unitless"
}

// NormalizeHeader lowercases a header and replaces whitespace with
// underscores, matching how aliases are registered.
func NormalizeHeader(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Decode matches table columns against the variable alias catalog, converts
// recognized columns to canonical units, and reports which variables the
// data provides. Unrecognized headers are kept in the raw sample set but
// excluded from the registry; a diagnostic is emitted unless quiet is set.
func Decode(source string, table *models.Table, quiet bool) (*models.RawSampleSet, models.Registry, error) {
	raw := models.NewRawSampleSet()
	registry := make(models.Registry)

	for _, name := range table.Keys() {
		values, unit, _ := table.Get(name)
		kind, ok := models.LookupAlias(NormalizeHeader(name))
		if !ok {
			if !quiet {
				msg := fmt.Sprintf("%s: header <%s> was not recognized, and will be skipped", source, name)
				if suggestion := SuggestHeader(NormalizeHeader(name)); suggestion != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
				}
				pterm.Warning.Println(msg)
			}
			raw.Unmatched[name] = append([]float64(nil), values...)
			continue
		}

		canonical := models.DefaultUnits[kind]
		if !units.Compatible(unit, canonical) {
			return nil, nil, &models.UnitError{Variable: kind, Unit: unit, Expected: canonical}
		}
		converted, err := units.ConvertSlice(values, unit, canonical)
		if err != nil {
			return nil, nil, &models.UnitError{Variable: kind, Unit: unit, Expected: canonical}
		}

		raw.Variables[kind] = converted
		registry[kind] = canonical
	}

	if len(registry) == 0 {
		return nil, nil, &models.NoValidDataError{Source: source}
	}
	return raw, registry, nil
}

// SuggestHeader returns the closest registered alias to an unrecognized
// header, or "" when nothing is plausibly close.
func SuggestHeader(name string) string {
	best := ""
	bestDist := 3
	for _, aliases := range models.Aliases {
		for _, alias := range aliases {
			if dist := levenshtein.ComputeDistance(name, alias); dist < bestDist {
				best = alias
				bestDist = dist
			}
		}
	}
	return best
}
