// Package renderer displays packed engine decks in the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"gonum.org/v1/gonum/floats"

	"enginedeck/pkg/deck"
	"enginedeck/pkg/models"
)

// RenderSummary prints the deck's variables, capability flags and scaling
// metadata as tables.
func RenderSummary(d *deck.Deck) {
	pterm.DefaultHeader.WithFullWidth().Printf("Engine Deck: %s", d.Name)
	pterm.Println()

	rows := [][]string{{"Variable", "Unit", "Samples", "Min", "Max"}}
	for _, kind := range d.SupportedVariables() {
		samples := d.Samples(kind)
		rows = append(rows, []string{
			kind.String(),
			d.Registry()[kind],
			fmt.Sprintf("%d", len(samples)),
			fmt.Sprintf("%.4g", floats.Min(samples)),
			fmt.Sprintf("%.4g", floats.Max(samples)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	grid := d.Packed()
	pterm.Info.Printf("Grid: %d Mach bins × up to %d altitude bins × up to %d samples\n",
		grid.MachCount, grid.AltCount, grid.DataCount)
	if d.UseThrust {
		pterm.Info.Printf("Reference SLS thrust: %.1f lbf  (scale factor %.4g → scaled %.1f lbf)\n",
			d.ReferenceSLSThrust, d.ScaleFactor, d.ScaledSLSThrust)
	}

	flags := []string{}
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"thrust", d.UseThrust},
		{"fuel", d.UseFuel},
		{"electricity", d.UseElectricity},
		{"hybrid throttle", d.UseHybridThrottle},
		{"nox", d.UseNOx},
		{"t4", d.UseT4},
		{"shaft power", d.UseShaftPower},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	pterm.Info.Printf("Provides: %s\n", strings.Join(flags, ", "))
}

// RenderVariable prints one block per Mach bin for the given variable:
// altitude bins as rows, sample slots as columns.
func RenderVariable(d *deck.Deck, kind models.VariableKind, displayMode string) {
	grid := d.Packed()
	values, ok := grid.Values[kind]
	if !ok {
		pterm.Error.Printf("variable %s is not part of this deck\n", kind)
		return
	}

	samples := d.Samples(kind)
	min, max := floats.Min(samples), floats.Max(samples)

	for m := 0; m < grid.MachCount; m++ {
		machAnchor := grid.Values[models.Mach][m][0][0]
		title := fmt.Sprintf("%s (%s) | Mach %.3f | Range: %.2f–%.2f",
			kind, d.Registry()[kind], machAnchor, min, max)
		pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().
			Println(buildGridString(grid, values, m, displayMode, min, max))
	}
}

func buildGridString(grid *deck.PackedGrid, values [][][]float64, m int, displayMode string, min, max float64) string {
	var result strings.Builder

	cellWidth := 9
	if displayMode != "values" {
		cellWidth = 4
	}

	result.WriteString("  Sample → |")
	for s := 0; s < grid.DataCount; s++ {
		if displayMode == "values" {
			result.WriteString(fmt.Sprintf("%9d", s))
		} else {
			result.WriteString(fmt.Sprintf("%-4d", s))
		}
	}
	result.WriteString("\n")
	result.WriteString("  Alt (ft) |" + strings.Repeat("-", grid.DataCount*cellWidth) + "\n")

	for a := 0; a < grid.AltCount; a++ {
		count := grid.Count(m, a)
		if count == 0 {
			continue
		}
		altAnchor := grid.Values[models.Altitude][m][a][0]
		result.WriteString(fmt.Sprintf("  %8.0f |", altAnchor))
		for s := 0; s < grid.DataCount; s++ {
			if s >= count {
				// padding slot, not data
				if displayMode == "values" {
					result.WriteString(pterm.FgGray.Sprintf("%9s", "·"))
				} else {
					result.WriteString(pterm.FgGray.Sprint("·   "))
				}
				continue
			}
			value := values[m][a][s]
			switch displayMode {
			case "heatmap":
				result.WriteString(getHeatmapBlock(value, min, max) + "  ")
			case "symbols":
				symbol := getSymbolForValue(value, min, max)
				result.WriteString(symbol + symbol + symbol + " ")
			default:
				color := getColorStyle(value, min, max)
				result.WriteString(color.Sprintf("%9.2f", value))
			}
		}
		result.WriteString("\n")
	}

	if displayMode == "heatmap" {
		result.WriteString("\n" + getHeatmapLegend())
	} else if displayMode == "symbols" {
		result.WriteString("\nLegend: ")
		result.WriteString(pterm.FgCyan.Sprint("░") + " Low  ")
		result.WriteString(pterm.FgGreen.Sprint("▒") + " Med  ")
		result.WriteString(pterm.FgYellow.Sprint("▓") + " High  ")
		result.WriteString(pterm.FgRed.Sprint("█") + " Max")
	}

	return result.String()
}

func getHeatmapBlock(value, min, max float64) string {
	if max == min {
		return pterm.BgGray.Sprint("  ")
	}

	normalized := (value - min) / (max - min)

	switch {
	case normalized < 0.2:
		return pterm.NewStyle(pterm.BgBlue, pterm.FgWhite).Sprint("▄▄")
	case normalized < 0.4:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack).Sprint("▄▄")
	case normalized < 0.6:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack).Sprint("▄▄")
	case normalized < 0.8:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack).Sprint("▄▄")
	default:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite).Sprint("▄▄")
	}
}

func getHeatmapLegend() string {
	var result strings.Builder
	result.WriteString("Heatmap: ")
	result.WriteString(pterm.NewStyle(pterm.BgBlue, pterm.FgWhite).Sprint("▄▄") + " Very Low  ")
	result.WriteString(pterm.NewStyle(pterm.BgCyan, pterm.FgBlack).Sprint("▄▄") + " Low  ")
	result.WriteString(pterm.NewStyle(pterm.BgGreen, pterm.FgBlack).Sprint("▄▄") + " Medium  ")
	result.WriteString(pterm.NewStyle(pterm.BgYellow, pterm.FgBlack).Sprint("▄▄") + " High  ")
	result.WriteString(pterm.NewStyle(pterm.BgRed, pterm.FgWhite).Sprint("▄▄") + " Very High")
	return result.String()
}

func getSymbolForValue(value, min, max float64) string {
	if max == min {
		return pterm.FgGray.Sprint("·")
	}

	normalized := (value - min) / (max - min)

	switch {
	case normalized < 0.25:
		return pterm.FgCyan.Sprint("░")
	case normalized < 0.5:
		return pterm.FgGreen.Sprint("▒")
	case normalized < 0.75:
		return pterm.FgYellow.Sprint("▓")
	default:
		return pterm.FgRed.Sprint("█")
	}
}

func getColorStyle(value, min, max float64) *pterm.Style {
	if max == min {
		return pterm.NewStyle(pterm.FgGray)
	}

	normalized := (value - min) / (max - min)

	switch {
	case normalized < 0.25:
		return pterm.NewStyle(pterm.FgCyan)
	case normalized < 0.5:
		return pterm.NewStyle(pterm.FgGreen)
	case normalized < 0.75:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgRed)
	}
}

// ListVariables displays the recognized variable catalog with aliases and
// canonical units.
func ListVariables() {
	pterm.DefaultHeader.WithFullWidth().Println("Recognized Engine Variables")

	rows := [][]string{{"Variable", "Canonical Unit", "Accepted Headers"}}
	for _, kind := range models.AllVariables {
		rows = append(rows, []string{
			kind.String(),
			models.DefaultUnits[kind],
			strings.Join(models.Aliases[kind], ", "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
