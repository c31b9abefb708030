package reader

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"enginedeck/pkg/models"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test data: %v", err)
	}
	return path
}

func TestReadDataFile(t *testing.T) {
	path := writeFile(t, `# turbofan performance data
Mach, Altitude (ft), Throttle, Thrust (kN)
0.0, 0, 1.0, 111.2
0.0, 0, 0.6, 66.7
0.8, 35000, 1.0, 35.6
`)
	table, err := ReadDataFile(path)
	if err != nil {
		t.Fatalf("ReadDataFile: %v", err)
	}

	keys := table.Keys()
	if len(keys) != 4 {
		t.Fatalf("got %d columns, want 4: %v", len(keys), keys)
	}

	values, unit, ok := table.Get("Thrust")
	if !ok {
		t.Fatal("Thrust column missing")
	}
	if unit != "kN" {
		t.Errorf("Thrust unit = %q, want kN", unit)
	}
	if len(values) != 3 || values[0] != 111.2 {
		t.Errorf("Thrust values = %v", values)
	}

	if _, unit, _ := table.Get("Mach"); unit != "unitless" {
		t.Errorf("Mach unit = %q, want unitless", unit)
	}
}

func TestReadDataFileRaggedRow(t *testing.T) {
	path := writeFile(t, "Mach, Altitude (ft)\n0.0, 0, 1.0\n")
	_, err := ReadDataFile(path)
	var parseErr *models.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want ParseError", err)
	}
}

func TestReadDataFileNonNumeric(t *testing.T) {
	path := writeFile(t, "Mach, Altitude (ft)\n0.0, high\n")
	_, err := ReadDataFile(path)
	var parseErr *models.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v, want ParseError", err)
	}
	if parseErr.Row != 2 {
		t.Errorf("ParseError.Row = %d, want 2", parseErr.Row)
	}
}

func TestReadDataFileEmpty(t *testing.T) {
	path := writeFile(t, "# nothing but comments\n")
	if _, err := ReadDataFile(path); err == nil {
		t.Fatal("expected error for file with no data rows")
	}
}

func TestSplitHeader(t *testing.T) {
	tests := []struct {
		in, name, unit string
	}{
		{"Thrust (lbf)", "Thrust", "lbf"},
		{"Altitude ( ft )", "Altitude", "ft"},
		{"Mach", "Mach", "unitless"},
		{" Fuel Flow (lbm/h) ", "Fuel Flow", "lbm/h"},
	}
	for _, tt := range tests {
		name, unit := splitHeader(tt.in)
		if name != tt.name || unit != tt.unit {
			t.Errorf("splitHeader(%q) = %q, %q; want %q, %q", tt.in, name, unit, tt.name, tt.unit)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Mach Number", "mach_number"},
		{"  Fuel  Flow ", "fuel_flow"},
		{"THRUST", "thrust"},
	}
	for _, tt := range tests {
		if got := NormalizeHeader(tt.in); got != tt.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecodeConvertsUnits(t *testing.T) {
	table := models.NewTable()
	table.Set("Mach", []float64{0, 0.8}, "unitless")
	table.Set("Altitude", []float64{0, 10.668}, "km")
	table.Set("Thrust", []float64{10, 5}, "kN")

	raw, registry, err := Decode("test data", table, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !registry.Has(models.Altitude) || registry[models.Altitude] != "ft" {
		t.Errorf("altitude registry unit = %q, want ft", registry[models.Altitude])
	}
	alt := raw.Variables[models.Altitude]
	if math.Abs(alt[1]-35000) > 1 {
		t.Errorf("altitude[1] = %g ft, want ~35000", alt[1])
	}
	thrust := raw.Variables[models.Thrust]
	if math.Abs(thrust[0]-2248.089430997105) > 1e-6 {
		t.Errorf("thrust[0] = %g lbf, want 2248.09", thrust[0])
	}
}

func TestDecodeUnmatchedHeader(t *testing.T) {
	table := models.NewTable()
	table.Set("Mach", []float64{0}, "unitless")
	table.Set("Bypass Ratio", []float64{9.6}, "unitless")

	raw, registry, err := Decode("test data", table, true)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(registry) != 1 {
		t.Errorf("registry = %v, want only mach", registry)
	}
	if _, ok := raw.Unmatched["Bypass Ratio"]; !ok {
		t.Error("unmatched column was not retained")
	}
}

func TestDecodeIncompatibleUnit(t *testing.T) {
	table := models.NewTable()
	table.Set("Thrust", []float64{25000}, "ft")

	_, _, err := Decode("test data", table, true)
	var unitErr *models.UnitError
	if !errors.As(err, &unitErr) {
		t.Fatalf("got %v, want UnitError", err)
	}
	if unitErr.Variable != models.Thrust || unitErr.Expected != "lbf" {
		t.Errorf("UnitError = %+v", unitErr)
	}
}

func TestDecodeNoValidData(t *testing.T) {
	table := models.NewTable()
	table.Set("Bypass Ratio", []float64{9.6}, "unitless")

	_, _, err := Decode("test data", table, true)
	var noData *models.NoValidDataError
	if !errors.As(err, &noData) {
		t.Fatalf("got %v, want NoValidDataError", err)
	}
}

func TestSuggestHeader(t *testing.T) {
	if got := SuggestHeader("thrst"); got != "thrust" {
		t.Errorf("SuggestHeader(thrst) = %q, want thrust", got)
	}
	if got := SuggestHeader("bypass_ratio"); got != "" {
		t.Errorf("SuggestHeader(bypass_ratio) = %q, want no suggestion", got)
	}
}
