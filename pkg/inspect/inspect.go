// Package inspect examines a raw engine data file before deck construction:
// which headers are recognized, what the columns look like, and what a
// near-miss header was probably meant to be.
package inspect

import (
	"fmt"

	"github.com/pterm/pterm"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"enginedeck/pkg/models"
	"enginedeck/pkg/reader"
)

// DataFile reads and reports on a raw data file.
func DataFile(path string) error {
	spinner, _ := pterm.DefaultSpinner.Start("Reading data file...")

	table, err := reader.ReadDataFile(path)
	if err != nil {
		spinner.Fail("Failed to read data file")
		return err
	}

	keys := table.Keys()
	rowCount := 0
	if len(keys) > 0 {
		values, _, _ := table.Get(keys[0])
		rowCount = len(values)
	}
	spinner.Success(fmt.Sprintf("Loaded %d columns × %d rows", len(keys), rowCount))

	pterm.Println()
	pterm.DefaultSection.Println("Column Report")

	rows := [][]string{{"Header", "Recognized As", "Unit", "Min", "Max", "Mean"}}
	unrecognized := 0
	for _, name := range keys {
		values, unit, _ := table.Get(name)

		recognized := ""
		if kind, ok := models.LookupAlias(reader.NormalizeHeader(name)); ok {
			recognized = fmt.Sprintf("%s → %s", kind, models.DefaultUnits[kind])
		} else {
			unrecognized++
			recognized = pterm.FgRed.Sprint("unrecognized")
			if suggestion := reader.SuggestHeader(reader.NormalizeHeader(name)); suggestion != "" {
				recognized += pterm.FgYellow.Sprintf(" (did you mean %q?)", suggestion)
			}
		}

		rows = append(rows, []string{
			name,
			recognized,
			unit,
			fmt.Sprintf("%.4g", floats.Min(values)),
			fmt.Sprintf("%.4g", floats.Max(values)),
			fmt.Sprintf("%.4g", stat.Mean(values, nil)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	pterm.Println()
	if unrecognized > 0 {
		pterm.Warning.Printf("%d of %d columns will be skipped during deck construction\n",
			unrecognized, len(keys))
	} else {
		pterm.Success.Println("All columns recognized")
	}

	// Check the required set up front so problems surface before a build.
	required := models.DefaultDeckOptions().Required()
	var missing []string
	for _, kind := range required {
		found := false
		for _, name := range keys {
			if k, ok := models.LookupAlias(reader.NormalizeHeader(name)); ok && k == kind {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, kind.String())
		}
	}
	if len(missing) > 0 {
		pterm.Error.Printf("Missing required variables: %v\n", missing)
	}

	return nil
}
