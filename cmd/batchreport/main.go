// batchreport summarizes a Simoa export by batch and plate: row counts,
// plate counts, the highest fg/ml concentration, and the batch date when it
// can be derived from the batch name.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/devoassay/simoa"
	"github.com/devoassay/simoa/rawdata"
)

func main() {
	var filename string
	var headerRows int
	var lot string

	flag.StringVar(&filename, "file", "", "Path to the Simoa export file (.xls, .csv, or .tsv)")
	flag.IntVar(&headerRows, "headerrows", rawdata.DefaultHeaderRows, "Number of banner rows preceding the column-header row")
	flag.StringVar(&lot, "lot", "", "Optional QC/standards lot number to record on every batch")
	flag.Parse()

	if filename == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	records, err := rawdata.Read(filename, headerRows)
	if err != nil {
		log.Fatalln(err)
	}
	if records == nil {
		log.Println("No data produced from", filename)
		return
	}

	rows, err := simoa.NormalizeTable(records)
	if err != nil {
		log.Fatalln(err)
	}

	batches := simoa.PartitionBatches(rows)
	log.Println("Found", len(batches), "batches in", filename)

	fmt.Printf("batch\tdate\tlot\trows\tplates\thighest_fg_ml\n")
	for _, batch := range batches {
		if lot != "" {
			batch.SetLot(lot)
		}
		if err := batch.ParseDate(); err != nil {
			log.Println(err)
		}

		date := ""
		if batch.Date.Valid {
			date = batch.Date.Time.Format("2006-01-02")
		}

		highest := ""
		if batch.HighestValue.Valid {
			highest = strconv.FormatFloat(batch.HighestValue.Float64, 'g', -1, 64)
		}

		fmt.Printf("%s\t%s\t%s\t%d\t%d\t%s\n",
			batch.Name, date, batch.Lot.ValueOrZero(), len(batch.Rows), len(batch.Plates), highest)

		for _, plate := range batch.Plates {
			fmt.Printf("%s\tplate %d\t\t%d\t\t\n", batch.Name, plate.Number, len(plate.Rows))
		}
	}
}
