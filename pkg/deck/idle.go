package deck

import "enginedeck/pkg/models"

// Flight idle throttle placeholder. The value re-normalizes to 0 afterwards;
// -0.1 avoids both numerical degeneracy from an arbitrarily small negative
// throttle and artificially stretching the normalized throttle range.
const throttleIdle = -0.1

// Spread between the replicated idle points along the hybrid throttle axis.
const hybridIdleSpread = 1e-4

// generateFlightIdle synthesizes a minimum-throttle operating point for each
// Mach/altitude bin, appends the new samples to the working data, and
// repacks and renormalizes. Thrust and shaft power idle values are a direct
// fraction of the bin's lowest sample; all other dependent variables are
// linearly extrapolated from the two lowest throttle samples using a single
// shared slope parameter, then bounded by the idle min/max fractions.
//
// Idle synthesis runs at most once per deck: a second pass would extrapolate
// from the synthetic points themselves.
func (d *Deck) generateFlightIdle() error {
	if d.idleGenerated {
		return nil
	}

	idleFract := d.opts.IdleThrustFraction
	minFract := d.opts.IdleMinFraction
	maxFract := d.opts.IdleMaxFraction
	grid := d.packed

	// Variables whose idle value is directly the idle thrust fraction.
	var directVars []models.VariableKind
	if d.registry.Has(models.Thrust) {
		directVars = append(directVars, models.Thrust)
	}
	if d.registry.Has(models.ShaftPowerCorrected) {
		directVars = append(directVars, models.ShaftPowerCorrected)
	}
	if d.registry.Has(models.ShaftPower) {
		directVars = append(directVars, models.ShaftPower)
	}

	// The extrapolation slope for dependent variables comes from one direct
	// variable so every idle quantity is consistent with a single assumed
	// throttle position. Precedence: shaft power, then corrected shaft
	// power, then thrust.
	slopeVar := models.Thrust
	if d.registry.Has(models.ShaftPowerCorrected) {
		slopeVar = models.ShaftPowerCorrected
	}
	if d.registry.Has(models.ShaftPower) {
		slopeVar = models.ShaftPower
	}

	// One idle point per bin normally. With a hybrid throttle axis the point
	// is replicated three times, spread around the zero idle anchor, so the
	// downstream interpolator sees enough distinct samples per dimension.
	numPoints := 1
	if d.UseHybridThrottle {
		numPoints = 3
	}

	idle := make(map[models.VariableKind][]float64, len(workingKinds))

	isIndependent := func(kind models.VariableKind) bool {
		switch kind {
		case models.Mach, models.Altitude, models.Throttle, models.HybridThrottle:
			return true
		}
		for _, v := range directVars {
			if kind == v {
				return true
			}
		}
		return false
	}

	for m := 0; m < grid.MachCount; m++ {
		for a := 0; a < grid.AltCount; a++ {
			count := grid.Count(m, a)
			if count == 0 {
				continue
			}
			// Lowest throttle sample already at or below idle thrust: the
			// bin effectively has an idle point.
			if grid.Values[models.Thrust][m][a][0] <= d.opts.ThrustTol {
				continue
			}

			appendN(idle, models.Mach, grid.Values[models.Mach][m][a][0], numPoints)
			appendN(idle, models.Altitude, grid.Values[models.Altitude][m][a][0], numPoints)
			appendN(idle, models.Throttle, throttleIdle, numPoints)
			if d.UseHybridThrottle {
				idle[models.HybridThrottle] = append(idle[models.HybridThrottle],
					-hybridIdleSpread, 0, hybridIdleSpread)
			} else {
				appendN(idle, models.HybridThrottle, 0, numPoints)
			}

			if count == 1 {
				// Extrapolation needs two samples; fall back to the idle
				// fraction for every dependent variable, bounded as usual.
				for _, kind := range workingKinds {
					if isIndependent(kind) {
						continue
					}
					v0 := grid.Values[kind][m][a][0]
					appendN(idle, kind, clampIdle(v0*idleFract, v0, minFract, maxFract), numPoints)
				}
				for _, kind := range directVars {
					appendN(idle, kind, grid.Values[kind][m][a][0]*idleFract, numPoints)
				}
				continue
			}

			// Direct variables scale from the bin's lowest sample. No
			// min/max bounds apply to them.
			for _, kind := range directVars {
				appendN(idle, kind, grid.Values[kind][m][a][0]*idleFract, numPoints)
			}

			// Shared interpolation parameter from the slope variable's two
			// lowest samples. A flat pair would make the slope undefined;
			// treat that as "idle sits at the lowest sample".
			s0 := grid.Values[slopeVar][m][a][0]
			s1 := grid.Values[slopeVar][m][a][1]
			extrapTerm := 0.0
			if s1 != s0 {
				extrapTerm = (s0*idleFract - s0) / (s1 - s0)
			}

			for _, kind := range workingKinds {
				if isIndependent(kind) {
					continue
				}
				y0 := grid.Values[kind][m][a][0]
				y1 := grid.Values[kind][m][a][1]
				idleValue := 0.0
				if y0 != 0 || y1 != 0 {
					idleValue = y0 + (y1-y0)*extrapTerm
				}
				last := grid.Values[kind][m][a][count-1]
				appendN(idle, kind, clampIdle(idleValue, last, minFract, maxFract), numPoints)
			}
		}
	}

	for _, kind := range workingKinds {
		d.data[kind] = append(d.data[kind], idle[kind]...)
	}
	d.modelLength = len(d.data[models.Altitude])
	d.idlePoints = idle
	d.idleGenerated = true

	// Re-sort and re-pack with the idle points in place, then re-normalize
	// since the placeholder throttle widened the observed range.
	if err := d.packData(); err != nil {
		return err
	}
	return d.normalizeThrottle()
}

// clampIdle bounds a synthesized idle value to the idle fraction window
// around a reference sample. The bounds are ordered so a negative reference
// still yields a valid interval.
func clampIdle(value, reference, minFract, maxFract float64) float64 {
	lo := reference * minFract
	hi := reference * maxFract
	if lo > hi {
		lo, hi = hi, lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func appendN(dst map[models.VariableKind][]float64, kind models.VariableKind, value float64, n int) {
	for i := 0; i < n; i++ {
		dst[kind] = append(dst[kind], value)
	}
}
