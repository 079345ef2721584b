package simoa

import (
	"testing"

	"gopkg.in/guregu/null.v3"
)

// fullPlate builds an 8x12 plate with every well occupied.
func fullPlate() *Plate {
	var rows []SampleRow
	for letter := byte('A'); letter <= 'H'; letter++ {
		for column := 1; column <= 12; column++ {
			rows = append(rows, testRow("batchA", 1, letter, column, null.Float{}))
		}
	}

	plates := PartitionPlates("batchA", rows)
	return plates[0]
}

func TestApplyTemplatesFeederColumns(t *testing.T) {
	feeders := NewColumnTemplate(map[int]string{
		1: "FeederOne", 2: "FeederOne", 3: "FeederOne",
		4: "FeederOne", 5: "FeederOne", 6: "FeederOne",
		7: "FeederTwo", 8: "FeederTwo", 9: "FeederTwo",
		10: "FeederTwo", 11: "FeederTwo", 12: "FeederTwo",
	})

	plate := fullPlate()
	plate.ApplyTemplates(Template{}, feeders, Template{})

	for _, row := range plate.Rows {
		want := "FeederOne"
		if row.Column >= 7 {
			want = "FeederTwo"
		}
		if row.Feeder != want {
			t.Errorf("well %c%d: feeder %q, want %q", row.Row, row.Column, row.Feeder, want)
		}
		if row.Feeder == Unassigned {
			t.Errorf("well %c%d left unassigned", row.Row, row.Column)
		}
	}
}

// Dilutions keyed by row and feeders keyed by column must resolve
// independently in a single application.
func TestApplyTemplatesIndependentAxes(t *testing.T) {
	dilutions := NewRowTemplate(map[byte]string{
		'A': "0.5", 'E': "0.5",
		'B': "0.1", 'F': "0.1",
		'C': "0.05", 'G': "0.05",
		'D': "0.025", 'H': "0.025",
	})

	feeders := NewColumnTemplate(map[int]string{
		1: "FeederOne", 2: "FeederOne", 3: "FeederOne",
		4: "FeederOne", 5: "FeederOne", 6: "FeederOne",
		7: "FeederTwo", 8: "FeederTwo", 9: "FeederTwo",
		10: "FeederTwo", 11: "FeederTwo", 12: "FeederTwo",
	})

	replicates := NewColumnTemplate(map[int]string{
		1: "1", 2: "2", 3: "3", 4: "4", 5: "5", 6: "6",
		7: "1", 8: "2", 9: "3", 10: "4", 11: "5", 12: "6",
	})

	plate := fullPlate()
	plate.ApplyTemplates(dilutions, feeders, replicates)

	for _, row := range plate.Rows {
		switch row.Row {
		case 'A', 'E':
			if row.Dilution != "0.5" {
				t.Errorf("well %c%d: dilution %q", row.Row, row.Column, row.Dilution)
			}
		case 'D', 'H':
			if row.Dilution != "0.025" {
				t.Errorf("well %c%d: dilution %q", row.Row, row.Column, row.Dilution)
			}
		}

		if row.Column == 3 && row.Feeder != "FeederOne" {
			t.Errorf("well %c%d: feeder %q", row.Row, row.Column, row.Feeder)
		}
		if row.Column == 9 && (row.Feeder != "FeederTwo" || row.Replicate != "3") {
			t.Errorf("well %c%d: feeder %q replicate %q", row.Row, row.Column, row.Feeder, row.Replicate)
		}
	}
}

func TestApplyTemplatesUnassigned(t *testing.T) {
	dilutions := NewRowTemplate(map[byte]string{'A': "0.5"})

	plate := fullPlate()
	plate.ApplyTemplates(dilutions, Template{}, Template{})

	for _, row := range plate.Rows {
		if row.Row == 'A' && row.Dilution != "0.5" {
			t.Errorf("well %c%d: dilution %q", row.Row, row.Column, row.Dilution)
		}
		if row.Row != 'A' && row.Dilution != Unassigned {
			t.Errorf("well %c%d: dilution %q, want %q", row.Row, row.Column, row.Dilution, Unassigned)
		}
		// Empty templates cover nothing
		if row.Feeder != Unassigned || row.Replicate != Unassigned {
			t.Errorf("well %c%d: feeder %q replicate %q", row.Row, row.Column, row.Feeder, row.Replicate)
		}
	}
}

// Applying a template to a plate must not write through to the batch's rows.
func TestApplyTemplatesDoesNotTouchBatchRows(t *testing.T) {
	batches := PartitionBatches([]SampleRow{
		testRow("batchA", 1, 'A', 1, null.Float{}),
	})

	batch := batches[0]
	batch.Plates[0].ApplyTemplates(NewRowTemplate(map[byte]string{'A': "0.5"}), Template{}, Template{})

	if batch.Rows[0].Dilution != "" {
		t.Errorf("batch row annotated: %q", batch.Rows[0].Dilution)
	}
	if batch.Plates[0].Rows[0].Dilution != "0.5" {
		t.Errorf("plate row not annotated: %q", batch.Plates[0].Rows[0].Dilution)
	}
}

func TestTemplateLookup(t *testing.T) {
	byColumn := NewColumnTemplate(map[int]string{7: "FeederTwo"})
	if got := byColumn.Lookup('A', 7); got != "FeederTwo" {
		t.Errorf("got %q", got)
	}
	if got := byColumn.Lookup('A', 8); got != Unassigned {
		t.Errorf("got %q", got)
	}

	byRow := NewRowTemplate(map[byte]string{'C': "0.05"})
	// Column value must be ignored on a row-axis template
	if got := byRow.Lookup('C', 12); got != "0.05" {
		t.Errorf("got %q", got)
	}
}
