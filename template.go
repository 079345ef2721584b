package simoa

import "strconv"

// Axis selects which well coordinate a template's assignments are keyed by.
type Axis int

const (
	RowAxis Axis = iota
	ColumnAxis
)

func (a Axis) String() string {
	if a == ColumnAxis {
		return "Column"
	}

	return "Row"
}

// Unassigned is the annotation for wells a template does not cover.
const Unassigned = "Unassigned"

// Template lays one experimental-design axis (a dilution series, feeder
// conditions, or replicate numbering) across a plate. Assignments are keyed
// by row letter ("A"-"H") or column number ("1"-"12") according to Axis;
// keys the template omits resolve to Unassigned.
type Template struct {
	Axis        Axis
	Assignments map[string]string
}

// NewRowTemplate builds a template keyed by row letter.
func NewRowTemplate(byRow map[byte]string) Template {
	assignments := make(map[string]string, len(byRow))
	for letter, value := range byRow {
		assignments[string(letter)] = value
	}

	return Template{Axis: RowAxis, Assignments: assignments}
}

// NewColumnTemplate builds a template keyed by column number.
func NewColumnTemplate(byColumn map[int]string) Template {
	assignments := make(map[string]string, len(byColumn))
	for column, value := range byColumn {
		assignments[strconv.Itoa(column)] = value
	}

	return Template{Axis: ColumnAxis, Assignments: assignments}
}

// Lookup resolves the template's value for a well coordinate.
func (t Template) Lookup(row byte, column int) string {
	var key string
	switch t.Axis {
	case ColumnAxis:
		key = strconv.Itoa(column)
	default:
		key = string(row)
	}

	if value, ok := t.Assignments[key]; ok {
		return value
	}

	return Unassigned
}

// ApplyTemplates annotates every row of the plate with its dilution, feeder,
// and replicate assignments. The three templates resolve independently, each
// against its own axis, so a plate may key dilutions by row while feeders
// run by column. Only the plate's owned rows are written.
func (p *Plate) ApplyTemplates(dilution, feeder, replicate Template) {
	for i := range p.Rows {
		row := &p.Rows[i]
		row.Dilution = dilution.Lookup(row.Row, row.Column)
		row.Feeder = feeder.Lookup(row.Row, row.Column)
		row.Replicate = replicate.Lookup(row.Row, row.Column)
	}
}
