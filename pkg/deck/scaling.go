package deck

import (
	"math"

	"enginedeck/pkg/models"
)

// resolveScaling determines the unscaled sea-level static reference thrust
// and reconciles it against user-supplied scale factor and target thrust.
//
// The reference point is the maximum thrust among samples at sea level
// (|altitude| within tolerance) and static conditions (|Mach| within
// tolerance), unless the options supply it directly for decks without an
// SLS point.
func (d *Deck) resolveScaling(source string) error {
	opts := d.opts

	if opts.ReferenceSLSThrust != nil {
		d.ReferenceSLSThrust = *opts.ReferenceSLSThrust
	} else {
		mach := d.data[models.Mach]
		alt := d.data[models.Altitude]
		thrust := d.data[models.Thrust]

		found := false
		ref := math.Inf(-1)
		for i := 0; i < d.modelLength; i++ {
			if math.Abs(alt[i]) <= opts.AltTol && math.Abs(mach[i]) <= opts.MachTol {
				found = true
				if thrust[i] > ref {
					ref = thrust[i]
				}
			}
		}
		if !found {
			return &models.NoSeaLevelStaticPointError{Source: source}
		}
		d.ReferenceSLSThrust = ref
	}

	scaleFactorProvided := opts.ScaleFactor != nil
	thrustProvided := opts.ScaledSLSThrust != nil
	ref := d.ReferenceSLSThrust

	switch {
	case scaleFactorProvided && thrustProvided:
		d.ScaleFactor = *opts.ScaleFactor
		if opts.ScalePerformance {
			// Both targets supplied and scaling enabled: they must agree.
			if !relClose(*opts.ScaledSLSThrust/ref, *opts.ScaleFactor) {
				return &models.ScalingConflictError{
					ScaleFactor:     *opts.ScaleFactor,
					ScaledSLSThrust: *opts.ScaledSLSThrust,
					ReferenceThrust: ref,
				}
			}
			d.ScaledSLSThrust = *opts.ScaledSLSThrust
		} else {
			// Scaling disabled overrides the user's thrust target.
			d.ScaledSLSThrust = ref
		}

	case scaleFactorProvided:
		d.ScaleFactor = *opts.ScaleFactor
		d.ScaledSLSThrust = ref * *opts.ScaleFactor

	case thrustProvided:
		d.ScaledSLSThrust = *opts.ScaledSLSThrust

	default:
		d.ScaleFactor = 1.0
		d.ScaledSLSThrust = ref
	}

	return nil
}

// relClose matches the comparison used for scaling reconciliation: relative
// tolerance of 1e-9 on the larger magnitude.
func relClose(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= 1e-9*scale
}
