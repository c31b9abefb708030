package deck

import (
	"gonum.org/v1/gonum/floats"

	"enginedeck/pkg/models"
)

// normalizeThrottle rescales throttle to [0, 1] and hybrid throttle to
// [-1, 1], then repacks. In global scope one scale covers the whole deck; in
// local scope each Mach/altitude bin is scaled independently and the min/max
// metadata becomes per-bin slices.
//
// Normalization is idempotent: rerunning it on already-normalized data with
// no new extreme values reproduces the same output, because the observed
// min/max are then exactly 0/1 (or the prior extremes).
func (d *Deck) normalizeThrottle() error {
	if d.opts.GlobalThrottle {
		normalized := normalizeRange(d.data[models.Throttle])
		d.data[models.Throttle] = normalized
		d.ThrottleMin = floats.Min(normalized)
		d.ThrottleMax = floats.Max(normalized)
		d.ThrottleMinBins, d.ThrottleMaxBins = nil, nil
	} else {
		d.ThrottleMinBins, d.ThrottleMaxBins = d.normalizeLocal(models.Throttle, normalizeRange)
	}

	if d.UseHybridThrottle {
		if d.opts.GlobalHybridThrottle {
			normalized := normalizeHybrid(d.data[models.HybridThrottle])
			d.data[models.HybridThrottle] = normalized
			d.HybridThrottleMin = floats.Min(normalized)
			d.HybridThrottleMax = floats.Max(normalized)
			d.HybridThrottleMinBins, d.HybridThrottleMaxBins = nil, nil
		} else {
			d.HybridThrottleMinBins, d.HybridThrottleMaxBins = d.normalizeLocal(models.HybridThrottle, normalizeHybrid)
		}
	}

	// Keep the packed grid in step with the rewritten working data.
	return d.packData()
}

// normalizeLocal rewrites one variable bin by bin using the packed layout:
// the sorted flat data is contiguous per bin, so each bin is a slice
// [offset, offset+count). Returns per-bin min/max of the normalized values
// in (Mach bin, altitude bin) order.
func (d *Deck) normalizeLocal(kind models.VariableKind, norm func([]float64) []float64) (mins, maxes []float64) {
	series := d.data[kind]
	offset := 0
	for m := 0; m < d.packed.MachCount; m++ {
		for a := 0; a < d.packed.AltCount; a++ {
			count := d.packed.Count(m, a)
			if count == 0 {
				continue
			}
			normalized := norm(series[offset : offset+count])
			copy(series[offset:offset+count], normalized)
			mins = append(mins, floats.Min(normalized))
			maxes = append(maxes, floats.Max(normalized))
			offset += count
		}
	}
	return mins, maxes
}

// normalizeRange maps values linearly onto [0, 1]. A degenerate series with
// no spread maps to all zeros.
func normalizeRange(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	minimum := floats.Min(values)
	maximum := floats.Max(values)
	span := maximum - minimum
	if span == 0 {
		return out
	}
	for i, v := range values {
		out[i] = (v - minimum) / span
	}
	return out
}

// normalizeHybrid maps hybrid throttle onto [-1, 1] with zero as a fixed
// idle anchor: negative values are scaled onto [-1, 0) against their own
// minimum, positive values onto (0, 1] against their own maximum, and zeros
// stay at zero. The two sub-populations are normalized independently so the
// idle anchor survives asymmetric raw ranges.
func normalizeHybrid(values []float64) []float64 {
	out := append([]float64(nil), values...)

	minNeg := 0.0
	maxPos := 0.0
	for _, v := range values {
		if v < minNeg {
			minNeg = v
		}
		if v > maxPos {
			maxPos = v
		}
	}

	for i, v := range out {
		switch {
		case v < 0 && minNeg < 0:
			// (x - min) / (0 - min) - 1 maps [min, 0) onto [-1, 0)
			out[i] = (v-minNeg)/(-minNeg) - 1
		case v > 0 && maxPos > 0:
			out[i] = v / maxPos
		}
	}
	return out
}
