package export

import (
	"math"
	"path/filepath"
	"testing"

	"enginedeck/pkg/deck"
	"enginedeck/pkg/models"
	"enginedeck/pkg/reader"
)

func buildTestDeck(t *testing.T) *deck.Deck {
	t.Helper()
	table := models.NewTable()
	table.Set("mach", []float64{0, 0, 0.8, 0.8}, "unitless")
	table.Set("altitude", []float64{0, 0, 35000, 35000}, "ft")
	table.Set("throttle", []float64{0.6, 1, 0.6, 1}, "unitless")
	table.Set("thrust", []float64{15000, 25000, 5000, 8000}, "lbf")
	table.Set("fuel_flow", []float64{5000, 10000, 2000, 4000}, "lbm/h")

	opts := models.DefaultDeckOptions()
	opts.Quiet = true
	opts.ScaleFactor = models.Float64(2)
	d, err := deck.New(table, opts)
	if err != nil {
		t.Fatalf("deck.New: %v", err)
	}
	return d
}

func TestWriteCSVRoundTrip(t *testing.T) {
	d := buildTestDeck(t)
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(d, path, false); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	table, err := reader.ReadDataFile(path)
	if err != nil {
		t.Fatalf("re-reading export: %v", err)
	}
	keys := table.Keys()
	if len(keys) != 5 {
		t.Fatalf("exported %d columns, want 5: %v", len(keys), keys)
	}

	thrust, unit, ok := table.Get("thrust")
	if !ok {
		t.Fatal("thrust column missing from export")
	}
	if unit != "lbf" {
		t.Errorf("thrust unit = %q, want lbf", unit)
	}
	if len(thrust) != d.ModelLength() {
		t.Fatalf("exported %d rows, want %d", len(thrust), d.ModelLength())
	}
	// Unscaled export carries the working samples as-is.
	want := d.Samples(models.Thrust)
	for i := range want {
		if thrust[i] != want[i] {
			t.Errorf("thrust = %v, want %v", thrust, want)
			break
		}
	}
}

func TestWriteCSVScaled(t *testing.T) {
	d := buildTestDeck(t)
	path := filepath.Join(t.TempDir(), "scaled.csv")
	if err := WriteCSV(d, path, true); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	table, err := reader.ReadDataFile(path)
	if err != nil {
		t.Fatalf("re-reading export: %v", err)
	}

	thrust, _, _ := table.Get("thrust")
	unscaled := d.Samples(models.Thrust)
	for i := range unscaled {
		if math.Abs(thrust[i]-unscaled[i]*2) > 1e-6 {
			t.Errorf("scaled thrust[%d] = %g, want %g", i, thrust[i], unscaled[i]*2)
		}
	}

	// Independent axes are never scaled.
	mach, _, _ := table.Get("mach")
	wantMach := d.Samples(models.Mach)
	for i := range wantMach {
		if mach[i] != wantMach[i] {
			t.Errorf("mach = %v, want %v", mach, wantMach)
			break
		}
	}
}
