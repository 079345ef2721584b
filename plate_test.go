package simoa

import (
	"testing"

	"gopkg.in/guregu/null.v3"
)

func TestPartitionPlates(t *testing.T) {
	rows := []SampleRow{
		testRow("batchA", 2, 'A', 1, null.Float{}),
		testRow("batchA", 1, 'A', 1, null.Float{}),
		testRow("batchA", 2, 'A', 2, null.Float{}),
		testRow("batchA", 1, 'A', 2, null.Float{}),
	}

	plates := PartitionPlates("batchA", rows)
	if len(plates) != 2 {
		t.Fatalf("got %d plates, want 2", len(plates))
	}

	// First-seen order, not numeric order
	if plates[0].Number != 2 || plates[1].Number != 1 {
		t.Errorf("plate order: %d, %d", plates[0].Number, plates[1].Number)
	}

	for _, plate := range plates {
		if plate.BatchName != "batchA" {
			t.Errorf("plate %d carries batch %q", plate.Number, plate.BatchName)
		}
		if len(plate.Rows) != 2 {
			t.Errorf("plate %d has %d rows, want 2", plate.Number, len(plate.Rows))
		}
		for _, row := range plate.Rows {
			if row.Plate != plate.Number {
				t.Errorf("plate %d contains a row for plate %d", plate.Number, row.Plate)
			}
		}
	}
}

func TestPartitionPlatesOwnership(t *testing.T) {
	rows := []SampleRow{testRow("batchA", 1, 'A', 1, null.Float{})}

	plates := PartitionPlates("batchA", rows)
	plates[0].Rows[0].Flags = "mutated"

	if rows[0].Flags != "" {
		t.Error("mutation leaked into the source rows")
	}
}
