// Package compare diffs two processed engine decks variable by variable.
package compare

import (
	"strings"

	"github.com/pterm/pterm"
	"gonum.org/v1/gonum/stat"

	"enginedeck/pkg/deck"
	"enginedeck/pkg/models"
)

// Decks compares every variable both decks provide and prints summary
// statistics plus a difference strip per variable.
func Decks(d1, d2 *deck.Deck) {
	pterm.DefaultHeader.WithFullWidth().Println("Engine Deck Comparison")
	pterm.Info.Printf("%s (%d samples) vs %s (%d samples)\n",
		d1.Name, d1.ModelLength(), d2.Name, d2.ModelLength())

	if d1.UseThrust && d2.UseThrust {
		pterm.Info.Printf("Reference SLS thrust: %.1f vs %.1f lbf\n",
			d1.ReferenceSLSThrust, d2.ReferenceSLSThrust)
	}

	common := commonVariables(d1, d2)
	if len(common) == 0 {
		pterm.Warning.Println("The decks share no variables to compare")
		return
	}

	for _, kind := range common {
		pterm.Println()
		pterm.DefaultSection.Printf("Comparing: %s (%s)\n", kind, d1.Registry()[kind])

		a := d1.Samples(kind)
		b := d2.Samples(kind)
		if len(a) != len(b) {
			pterm.Warning.Printf("sample counts differ (%d vs %d); skipping\n", len(a), len(b))
			continue
		}

		diff := make([]float64, len(a))
		for i := range a {
			diff[i] = b[i] - a[i]
		}
		displayDiff(diff, d1.Registry()[kind])
	}
}

func commonVariables(d1, d2 *deck.Deck) []models.VariableKind {
	var common []models.VariableKind
	r2 := d2.Registry()
	for _, kind := range d1.SupportedVariables() {
		if _, ok := r2[kind]; ok {
			common = append(common, kind)
		}
	}
	return common
}

func displayDiff(diff []float64, unit string) {
	changed := 0
	maxInc, maxDec := 0.0, 0.0
	var changes []float64
	for _, d := range diff {
		if d == 0 {
			continue
		}
		changed++
		changes = append(changes, d)
		if d > maxInc {
			maxInc = d
		}
		if d < maxDec {
			maxDec = d
		}
	}

	pterm.Info.Printf("Changed samples: %d / %d (%.1f%%)\n",
		changed, len(diff), float64(changed)/float64(len(diff))*100)
	if changed > 0 {
		pterm.Info.Printf("Average change: %.3f %s\n", stat.Mean(changes, nil), unit)
		pterm.Info.Printf("Max increase: %.3f %s\n", maxInc, unit)
		pterm.Info.Printf("Max decrease: %.3f %s\n", maxDec, unit)
	}

	visualizeDiff(diff)
}

// visualizeDiff prints one symbol per sample, scaled to the largest absolute
// difference.
func visualizeDiff(diff []float64) {
	maxAbs := 0.0
	for _, d := range diff {
		if d < 0 {
			d = -d
		}
		if d > maxAbs {
			maxAbs = d
		}
	}
	if maxAbs == 0 {
		pterm.Println(pterm.FgGray.Sprint("no differences"))
		return
	}

	var result strings.Builder
	for i, d := range diff {
		if i > 0 && i%40 == 0 {
			result.WriteString("\n")
		}
		result.WriteString(getDiffSymbol(d, maxAbs))
	}

	result.WriteString("\n\nLegend: ")
	result.WriteString(pterm.FgBlue.Sprint("▼▼") + " Large Decrease  ")
	result.WriteString(pterm.FgCyan.Sprint("▼·") + " Small Decrease  ")
	result.WriteString(pterm.FgGray.Sprint("··") + " No Change  ")
	result.WriteString(pterm.FgYellow.Sprint("▲·") + " Small Increase  ")
	result.WriteString(pterm.FgRed.Sprint("▲▲") + " Large Increase")

	pterm.DefaultBox.Println(result.String())
}

func getDiffSymbol(val, maxAbs float64) string {
	if val == 0 {
		return pterm.FgGray.Sprint("··")
	}

	normalized := val / maxAbs

	switch {
	case normalized < -0.5:
		return pterm.FgBlue.Sprint("▼▼")
	case normalized < -0.1:
		return pterm.FgCyan.Sprint("▼·")
	case normalized > 0.5:
		return pterm.FgRed.Sprint("▲▲")
	case normalized > 0.1:
		return pterm.FgYellow.Sprint("▲·")
	default:
		return pterm.FgGray.Sprint("··")
	}
}
