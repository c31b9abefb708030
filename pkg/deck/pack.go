package deck

import (
	"math"
	"sort"

	"enginedeck/pkg/models"
)

// PackedGrid is the dense 3-D layout of the working data: cell (M, A, D)
// holds the D-th sample at the M-th Mach bin and A-th altitude bin within
// that Mach. BinCounts records how many D slots hold real samples for each
// (M, A); slots past the count are zero padding, never data. Zero is a
// legitimate sample value for several variables, so validity must always be
// decided from BinCounts, not from cell values.
type PackedGrid struct {
	MachCount int // number of unique Mach bins
	AltCount  int // max altitude bins across Mach groups
	DataCount int // max samples across bins

	BinCounts [][]int
	Values    map[models.VariableKind][][][]float64
}

// Count returns the number of valid samples at a Mach/altitude bin, or 0
// when the bin is outside the ragged region.
func (g *PackedGrid) Count(m, a int) int {
	if m < 0 || m >= g.MachCount || a < 0 || a >= g.AltCount {
		return 0
	}
	return g.BinCounts[m][a]
}

// packData sorts the working data and rebuilds the packed grid. It is rerun
// whenever the working set's content or ordering changes.
func (d *Deck) packData() error {
	d.sortData()

	counts, _, err := d.countData()
	if err != nil {
		return err
	}

	machCount := len(counts)
	altCount := 0
	dataCount := 0
	for _, group := range counts {
		if len(group) > altCount {
			altCount = len(group)
		}
		for _, n := range group {
			if n > dataCount {
				dataCount = n
			}
		}
	}
	grid := &PackedGrid{
		MachCount: machCount,
		AltCount:  altCount,
		DataCount: dataCount,
		BinCounts: make([][]int, machCount),
		Values:    make(map[models.VariableKind][][][]float64, len(workingKinds)),
	}
	for m := range grid.BinCounts {
		grid.BinCounts[m] = make([]int, altCount)
		copy(grid.BinCounts[m], counts[m])
	}
	for _, kind := range workingKinds {
		values := make([][][]float64, machCount)
		for m := 0; m < machCount; m++ {
			values[m] = make([][]float64, altCount)
			for a := 0; a < altCount; a++ {
				values[m][a] = make([]float64, dataCount)
			}
		}
		grid.Values[kind] = values
	}

	idx := 0
	for m := 0; m < machCount; m++ {
		for a := 0; a < len(counts[m]); a++ {
			for s := 0; s < counts[m][a]; s++ {
				for _, kind := range workingKinds {
					grid.Values[kind][m][a][s] = d.data[kind][idx]
				}
				idx++
			}
		}
	}

	d.packed = grid
	return nil
}

// sortData reorders every working series by (Mach, altitude, throttle,
// hybrid throttle) ascending, as required by downstream interpolators.
func (d *Deck) sortData() {
	mach := d.data[models.Mach]
	alt := d.data[models.Altitude]
	throttle := d.data[models.Throttle]
	hybrid := d.data[models.HybridThrottle]

	perm := make([]int, d.modelLength)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(x, y int) bool {
		i, j := perm[x], perm[y]
		if mach[i] != mach[j] {
			return mach[i] < mach[j]
		}
		if alt[i] != alt[j] {
			return alt[i] < alt[j]
		}
		if throttle[i] != throttle[j] {
			return throttle[i] < throttle[j]
		}
		return hybrid[i] < hybrid[j]
	})

	for _, kind := range workingKinds {
		series := d.data[kind]
		sorted := make([]float64, len(series))
		for pos, i := range perm {
			sorted[pos] = series[i]
		}
		d.data[kind] = sorted
	}
}

// countData walks the sorted data and bins it by Mach and altitude using the
// proximity tolerances. A new value starts a new bin only when it differs
// from the current bin's anchor by more than the tolerance; values within
// tolerance fold into the bin without re-anchoring it. Returns the ragged
// per-bin sample counts and the anchor Mach of each group.
func (d *Deck) countData() (counts [][]int, machAnchors []float64, err error) {
	mach := d.data[models.Mach]
	alt := d.data[models.Altitude]

	currMach := math.Inf(1)
	currAlt := math.Inf(1)

	for i := 0; i < d.modelLength; i++ {
		switch {
		case math.Abs(mach[i]-currMach) > d.opts.MachTol:
			// new Mach group, which also opens a new altitude bin
			currMach = mach[i]
			currAlt = alt[i]
			counts = append(counts, []int{1})
			machAnchors = append(machAnchors, currMach)
		case math.Abs(alt[i]-currAlt) > d.opts.AltTol:
			// new altitude bin within the current Mach group
			currAlt = alt[i]
			group := len(counts) - 1
			counts[group] = append(counts[group], 1)
		default:
			group := len(counts) - 1
			counts[group][len(counts[group])-1]++
		}
	}

	// Downstream interpolation needs at least two altitude bins per Mach.
	// A deck where every Mach group carries exactly one altitude (altitude
	// riding along the Mach axis) stays legal; a mixed deck where some Mach
	// group falls short of the others does not.
	maxAlt := 0
	for _, group := range counts {
		if len(group) > maxAlt {
			maxAlt = len(group)
		}
	}
	if maxAlt >= 2 {
		for g, group := range counts {
			if len(group) < 2 {
				return nil, nil, &models.InsufficientAltitudeError{Mach: machAnchors[g]}
			}
		}
	}

	return counts, machAnchors, nil
}
