package deck

import (
	"fmt"
	"math"

	"github.com/pterm/pterm"

	"enginedeck/pkg/models"
)

// checkData validates and reconciles the working sample set: thrust
// derivation paths are merged, required variables verified, absent variables
// zero-filled, and negative-thrust samples optionally dropped. The registry
// is updated to reflect removed derived quantities.
func (d *Deck) checkData(source string) error {
	reg := d.registry

	if err := d.checkLengths(source); err != nil {
		return err
	}

	// Redundant thrust inputs are a diagnostic, not a failure, as long as
	// net thrust itself is present.
	if reg.Has(models.Thrust) {
		if reg.Has(models.GrossThrust) && !reg.Has(models.RamDrag) && !d.opts.Quiet {
			pterm.Warning.Printf("%s contains both net and gross thrust; only net thrust will be used\n", source)
		}
		if !reg.Has(models.GrossThrust) && reg.Has(models.RamDrag) && !d.opts.Quiet {
			pterm.Warning.Printf("%s contains both net thrust and ram drag; only net thrust will be used\n", source)
		}
	}

	if reg.Has(models.GrossThrust) && reg.Has(models.RamDrag) {
		// Both series are already in canonical thrust units from ingest, so
		// the subtraction needs no unit reconciliation here.
		gross := d.raw.Variables[models.GrossThrust]
		ram := d.raw.Variables[models.RamDrag]
		netCalc := make([]float64, len(gross))
		for i := range gross {
			netCalc[i] = gross[i] - ram[i]
		}

		if reg.Has(models.Thrust) {
			// Directly provided net thrust wins, but must agree with the
			// derived value within tolerance.
			thrust := d.raw.Variables[models.Thrust]
			for i := range thrust {
				if math.Abs(netCalc[i]-thrust[i]) > d.opts.ThrustTol {
					return &models.DataConsistencyError{
						Source: source,
						Detail: fmt.Sprintf("provided net thrust is not equal to difference between "+
							"gross thrust and ram drag within tolerance at sample %d "+
							"(%g vs %g lbf)", i, thrust[i], netCalc[i]),
					}
				}
			}
		} else {
			d.data[models.Thrust] = netCalc
			reg[models.Thrust] = reg[models.GrossThrust]
		}
	}

	if reg.Has(models.TailpipeThrust) {
		// Tailpipe thrust is not bookkept separately; fold it into net
		// thrust, creating net thrust when absent.
		tailpipe := d.raw.Variables[models.TailpipeThrust]
		if len(d.data[models.Thrust]) > 0 {
			thrust := d.data[models.Thrust]
			for i := range thrust {
				thrust[i] += tailpipe[i]
			}
		} else {
			d.data[models.Thrust] = append([]float64(nil), tailpipe...)
			reg[models.Thrust] = reg[models.TailpipeThrust]
		}
	}

	// Folding removes derived kinds from the registry, but their observed
	// presence still satisfies the required-variable set below.
	folded := map[models.VariableKind]bool{
		models.GrossThrust:    reg.Has(models.GrossThrust),
		models.RamDrag:        reg.Has(models.RamDrag),
		models.TailpipeThrust: reg.Has(models.TailpipeThrust),
	}
	delete(reg, models.GrossThrust)
	delete(reg, models.RamDrag)
	delete(reg, models.TailpipeThrust)

	// Corrected and uncorrected shaft power cannot be cross-validated here;
	// that needs freestream temperature and pressure. Trust the source.
	if reg.Has(models.ShaftPower) && reg.Has(models.ShaftPowerCorrected) && !d.opts.Quiet {
		pterm.Warning.Printf("%s contains both corrected and uncorrected shaft power; "+
			"the two cannot be validated for consistency\n", source)
	}

	// Altitude is always mandatory: it defines the model length.
	required := d.opts.Required()
	hasAltitude := false
	for _, v := range required {
		if v == models.Altitude {
			hasAltitude = true
		}
	}
	if !hasAltitude {
		required = append(required, models.Altitude)
	}
	var missing []models.VariableKind
	for _, v := range required {
		if !reg.Has(v) && !folded[v] {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return &models.MissingRequiredVariableError{Source: source, Missing: missing}
	}

	d.modelLength = len(d.data[models.Altitude])

	// Variables not observed in the input become zero-valued series so that
	// every working variable has the same length.
	for _, kind := range workingKinds {
		if len(d.data[kind]) == 0 {
			d.data[kind] = make([]float64, d.modelLength)
		}
	}

	if d.opts.IgnoreNegativeThrust {
		d.dropNegativeThrust()
	}

	return nil
}

// checkLengths enforces the equal-length invariant on ingested series.
func (d *Deck) checkLengths(source string) error {
	length := -1
	for _, kind := range models.AllVariables {
		values, ok := d.raw.Variables[kind]
		if !ok {
			continue
		}
		if length == -1 {
			length = len(values)
			continue
		}
		if len(values) != length {
			return &models.DataConsistencyError{
				Source: source,
				Detail: fmt.Sprintf("column <%s> has %d samples, expected %d", kind, len(values), length),
			}
		}
	}
	return nil
}

// dropNegativeThrust removes samples with negative thrust from every
// variable simultaneously, preserving index alignment.
func (d *Deck) dropNegativeThrust() {
	thrust := d.data[models.Thrust]
	keep := make([]int, 0, len(thrust))
	for i, t := range thrust {
		if t >= 0 {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(thrust) {
		return
	}
	for _, kind := range workingKinds {
		series := d.data[kind]
		filtered := make([]float64, len(keep))
		for j, i := range keep {
			filtered[j] = series[i]
		}
		d.data[kind] = filtered
	}
	d.modelLength = len(keep)
}
