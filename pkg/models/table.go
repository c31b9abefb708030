package models

// Column holds one named data series with its declared unit.
type Column struct {
	Values []float64
	Unit   string
}

// Table is a generic named-value table. It is the in-memory input contract
// for the reader: callers can build one by hand instead of pointing the deck
// at a data file.
type Table struct {
	order []string
	cols  map[string]Column
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{cols: make(map[string]Column)}
}

// Keys returns the column names in insertion order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}

// Get returns the values and unit for a column.
func (t *Table) Get(name string) ([]float64, string, bool) {
	col, ok := t.cols[name]
	if !ok {
		return nil, "", false
	}
	return col.Values, col.Unit, true
}

// Set adds or replaces a column.
func (t *Table) Set(name string, values []float64, unit string) {
	if _, exists := t.cols[name]; !exists {
		t.order = append(t.order, name)
	}
	t.cols[name] = Column{Values: values, Unit: unit}
}

// Delete removes a column if present.
func (t *Table) Delete(name string) {
	if _, exists := t.cols[name]; !exists {
		return
	}
	delete(t.cols, name)
	for i, key := range t.order {
		if key == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// RawSampleSet is the unmodified ingested data in canonical units. It is
// never mutated after ingestion; the deck derives its working copy from it.
type RawSampleSet struct {
	// Variables holds recognized columns keyed by kind, in canonical units.
	Variables map[VariableKind][]float64
	// Unmatched holds unrecognized columns under their original header,
	// retained for reference but excluded from the registry.
	Unmatched map[string][]float64
}

// NewRawSampleSet returns an empty sample set.
func NewRawSampleSet() *RawSampleSet {
	return &RawSampleSet{
		Variables: make(map[VariableKind][]float64),
		Unmatched: make(map[string][]float64),
	}
}
