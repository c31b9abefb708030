// Package export writes processed engine decks back out as delimited files,
// either as-is or with the resolved scale factor applied.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"enginedeck/pkg/deck"
	"enginedeck/pkg/models"
)

// scaledKinds are the variables multiplied by the deck scale factor when a
// scaled copy is written. Temperatures and the independent axes stay as-is.
var scaledKinds = map[models.VariableKind]bool{
	models.Thrust:              true,
	models.FuelFlow:            true,
	models.ElectricPower:       true,
	models.NOxRate:             true,
	models.ShaftPower:          true,
	models.ShaftPowerCorrected: true,
}

// WriteCSV writes the deck's flat, sorted, normalized samples to a CSV file.
// When scaled is set, performance variables are multiplied by the deck's
// resolved scale factor.
func WriteCSV(d *deck.Deck, path string, scaled bool) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writeComment := func(format string, args ...any) {
		writer.Write([]string{fmt.Sprintf("# "+format, args...)})
	}
	writeComment("engine deck: %s", d.Name)
	writeComment("samples: %d", d.ModelLength())
	if d.UseThrust {
		writeComment("reference_sls_thrust: %.2f lbf", d.ReferenceSLSThrust)
		writeComment("scale_factor: %g", d.ScaleFactor)
		writeComment("scaled_sls_thrust: %.2f lbf", d.ScaledSLSThrust)
		if scaled {
			writeComment("performance variables scaled by %g", d.ScaleFactor)
		}
	}

	kinds := d.SupportedVariables()
	registry := d.Registry()

	header := make([]string, len(kinds))
	for i, kind := range kinds {
		if unit := registry[kind]; unit != "" && unit != "unitless" {
			header[i] = fmt.Sprintf("%s (%s)", kind, unit)
		} else {
			header[i] = kind.String()
		}
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	columns := make([][]float64, len(kinds))
	for i, kind := range kinds {
		columns[i] = d.Samples(kind)
		if scaled && scaledKinds[kind] {
			for j := range columns[i] {
				columns[i][j] *= d.ScaleFactor
			}
		}
	}

	row := make([]string, len(kinds))
	for j := 0; j < d.ModelLength(); j++ {
		for i := range kinds {
			row[i] = fmt.Sprintf("%g", columns[i][j])
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
