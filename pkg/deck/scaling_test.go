package deck

import (
	"errors"
	"testing"

	"enginedeck/pkg/models"
)

func scalingTestTable() *models.Table {
	return testTable(map[string][]float64{
		"mach":     {0, 0},
		"altitude": {0, 0},
		"throttle": {0.6, 1},
		"thrust":   {15000, 25000},
	})
}

func TestScalingScaleFactorOnly(t *testing.T) {
	opts := quietOptions()
	opts.ScaleFactor = models.Float64(2)
	d, err := New(scalingTestTable(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.ScaleFactor != 2 || d.ScaledSLSThrust != 50000 {
		t.Errorf("scale = %g / %g, want 2 / 50000", d.ScaleFactor, d.ScaledSLSThrust)
	}
}

func TestScalingTargetThrustOnly(t *testing.T) {
	opts := quietOptions()
	opts.ScaledSLSThrust = models.Float64(50000)
	d, err := New(scalingTestTable(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.ScaleFactor != 1 || d.ScaledSLSThrust != 50000 {
		t.Errorf("scale = %g / %g, want 1 / 50000", d.ScaleFactor, d.ScaledSLSThrust)
	}
}

func TestScalingBothConsistent(t *testing.T) {
	opts := quietOptions()
	opts.ScaleFactor = models.Float64(2)
	opts.ScaledSLSThrust = models.Float64(50000)
	d, err := New(scalingTestTable(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.ScaleFactor != 2 || d.ScaledSLSThrust != 50000 {
		t.Errorf("scale = %g / %g, want 2 / 50000", d.ScaleFactor, d.ScaledSLSThrust)
	}
}

func TestScalingConflict(t *testing.T) {
	opts := quietOptions()
	opts.ScaleFactor = models.Float64(2)
	opts.ScaledSLSThrust = models.Float64(60000)
	_, err := New(scalingTestTable(), opts)
	var conflict *models.ScalingConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("got %v, want ScalingConflictError", err)
	}
	if conflict.ReferenceThrust != 25000 {
		t.Errorf("ReferenceThrust = %g, want 25000", conflict.ReferenceThrust)
	}
}

func TestScalingDisabledOverridesTargets(t *testing.T) {
	opts := quietOptions()
	opts.ScalePerformance = false
	opts.ScaleFactor = models.Float64(2)
	opts.ScaledSLSThrust = models.Float64(60000)
	d, err := New(scalingTestTable(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.ScaledSLSThrust != 25000 {
		t.Errorf("ScaledSLSThrust = %g, want reference 25000 with scaling disabled",
			d.ScaledSLSThrust)
	}
}

func TestScalingNoSLSPoint(t *testing.T) {
	table := testTable(map[string][]float64{
		"mach":     {0.2, 0.2},
		"altitude": {10000, 20000},
		"throttle": {0.6, 1},
		"thrust":   {9000, 14000},
	})
	_, err := New(table, quietOptions())
	var noSLS *models.NoSeaLevelStaticPointError
	if !errors.As(err, &noSLS) {
		t.Fatalf("got %v, want NoSeaLevelStaticPointError", err)
	}
}

func TestScalingUserReferenceThrust(t *testing.T) {
	table := testTable(map[string][]float64{
		"mach":     {0.2, 0.2},
		"altitude": {10000, 20000},
		"throttle": {0.6, 1},
		"thrust":   {9000, 14000},
	})
	opts := quietOptions()
	opts.ReferenceSLSThrust = models.Float64(28000)
	d, err := New(table, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.ReferenceSLSThrust != 28000 || d.ScaledSLSThrust != 28000 {
		t.Errorf("reference = %g, scaled = %g, want 28000 for both",
			d.ReferenceSLSThrust, d.ScaledSLSThrust)
	}
}
