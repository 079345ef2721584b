package simoa

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"
)

// Batch holds the state of one instrument batch: its exclusive subset of the
// normalized rows and one Plate per distinct plate number found in them.
//
// Date, Lot, QCs, and Standards are not computed at construction. QC-lot
// validation and calibration-curve handling happen elsewhere, so these stay
// in their explicit unset states (invalid null values, nil slices) until a
// caller fills them in.
type Batch struct {
	Name   string
	Rows   []SampleRow
	Plates []*Plate

	// HighestValue is the maximum Concentration (fg/ml) over the batch's
	// rows, absent when no row carries a value.
	HighestValue null.Float

	Date      null.Time
	Lot       null.String
	QCs       []SampleRow
	Standards []SampleRow
}

// PartitionBatches groups the table into one Batch per distinct Batch Name,
// in first-seen order. Each Batch receives its own copy of its rows, so
// mutating one batch can never leak into a sibling or back into the source
// table.
func PartitionBatches(rows []SampleRow) []*Batch {
	var order []string
	groups := make(map[string][]SampleRow)

	for _, row := range rows {
		if _, seen := groups[row.BatchName]; !seen {
			order = append(order, row.BatchName)
		}
		groups[row.BatchName] = append(groups[row.BatchName], row)
	}

	batches := make([]*Batch, 0, len(order))
	for _, name := range order {
		batches = append(batches, NewBatch(name, groups[name]))
	}

	return batches
}

// NewBatch constructs a Batch over rows it takes ownership of, deriving the
// highest fg/ml value and partitioning the rows into plates.
func NewBatch(name string, rows []SampleRow) *Batch {
	return &Batch{
		Name:         name,
		Rows:         rows,
		Plates:       PartitionPlates(name, rows),
		HighestValue: highestConcentration(rows),
	}
}

// batchNameTimeLayout covers instrument batch names that begin with the run
// timestamp, e.g. "2018-06-21_20-37-11_-123".
const batchNameTimeLayout = "2006-01-02 15-04-05"

// ParseDate derives the batch date from a timestamp prefix in the batch
// name. It returns an error and leaves Date unset when the name carries no
// recognizable timestamp.
func (b *Batch) ParseDate() error {
	fields := strings.SplitN(b.Name, "_", 3)

	if len(fields) >= 2 {
		if res, err := time.Parse(batchNameTimeLayout, fields[0]+" "+fields[1]); err == nil {
			b.Date = null.TimeFrom(res)
			return nil
		}
	}

	res, err := dateparse.ParseAny(fields[0])
	if err != nil {
		return fmt.Errorf("batch %q: no recognizable date in name: %w", b.Name, err)
	}
	b.Date = null.TimeFrom(res)

	return nil
}

// SetLot records the QC/standards lot number for the batch.
func (b *Batch) SetLot(lot string) {
	b.Lot = null.StringFrom(lot)
}

func (b *Batch) String() string {
	return fmt.Sprintf("Name: %s (%d rows, %d plates)", b.Name, len(b.Rows), len(b.Plates))
}

func highestConcentration(rows []SampleRow) null.Float {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if row.ConcentrationFgML.Valid {
			values = append(values, row.ConcentrationFgML.Float64)
		}
	}

	// stats.Max errors on an empty input, which is exactly the absent case
	max, err := stats.Max(values)
	if err != nil {
		return null.Float{}
	}

	return null.FloatFrom(max)
}
