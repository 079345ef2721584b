package simoa

import "fmt"

// Plate holds one physical assay plate's subset of a batch's rows. The rows
// are owned copies: applying a template annotates this plate's rows without
// touching the batch's table.
type Plate struct {
	BatchName string
	Number    int
	Rows      []SampleRow
}

// PartitionPlates groups a batch's rows into one Plate per distinct plate
// number, in first-seen order. Each Plate receives its own copy of its rows.
func PartitionPlates(batchName string, rows []SampleRow) []*Plate {
	var order []int
	groups := make(map[int][]SampleRow)

	for _, row := range rows {
		if _, seen := groups[row.Plate]; !seen {
			order = append(order, row.Plate)
		}
		groups[row.Plate] = append(groups[row.Plate], row)
	}

	plates := make([]*Plate, 0, len(order))
	for _, number := range order {
		plates = append(plates, &Plate{
			BatchName: batchName,
			Number:    number,
			Rows:      groups[number],
		})
	}

	return plates
}

func (p *Plate) String() string {
	return fmt.Sprintf("Name: %s Plate Number: %d (%d rows)", p.BatchName, p.Number, len(p.Rows))
}
