package simoa

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedLocation indicates a Location string that does not follow the
// instrument's "Plate <N> - Well <Letter><Column>" format. Since the format
// is emitted by the instrument software, a mismatch means the export is
// corrupt, so this is surfaced rather than skipped.
var ErrMalformedLocation = errors.New("malformed location")

// Map tokens in the Location string to their positions
const (
	locPlateWord int = iota
	locPlateNumber
	locSeparator
	locWellWord
	locWell

	locTokenCount
)

// WellLocation is the decoded form of the instrument's Location string: the
// physical plate number and the well coordinate on the standard 8x12 plate.
type WellLocation struct {
	Plate  int  // 1-based plate number within the batch
	Row    byte // 'A' through 'H'
	Column int  // 1 through 12
}

// ParseLocation decodes a Location string such as "Plate 1 - Well A12". The
// format is a strict contract: exactly five single-space-separated tokens,
// with the well letter directly followed by a 1- or 2-digit column number.
// Any deviation returns an error wrapping ErrMalformedLocation.
func ParseLocation(raw string) (WellLocation, error) {
	tokens := strings.Split(raw, " ")
	if len(tokens) != locTokenCount {
		return WellLocation{}, fmt.Errorf("%w: %q: expected %d space-separated tokens, got %d", ErrMalformedLocation, raw, locTokenCount, len(tokens))
	}

	if tokens[locPlateWord] != "Plate" || tokens[locSeparator] != "-" || tokens[locWellWord] != "Well" {
		return WellLocation{}, fmt.Errorf("%w: %q", ErrMalformedLocation, raw)
	}

	plate, err := strconv.Atoi(tokens[locPlateNumber])
	if err != nil || plate < 1 {
		return WellLocation{}, fmt.Errorf("%w: %q: bad plate number %q", ErrMalformedLocation, raw, tokens[locPlateNumber])
	}

	well := tokens[locWell]
	if len(well) < 2 || len(well) > 3 {
		return WellLocation{}, fmt.Errorf("%w: %q: bad well %q", ErrMalformedLocation, raw, well)
	}

	row := well[0]
	if row < 'A' || row > 'H' {
		return WellLocation{}, fmt.Errorf("%w: %q: well row %q is not A-H", ErrMalformedLocation, raw, string(row))
	}

	column, err := strconv.Atoi(well[1:])
	if err != nil || column < 1 || column > 12 {
		return WellLocation{}, fmt.Errorf("%w: %q: well column %q is not 1-12", ErrMalformedLocation, raw, well[1:])
	}

	return WellLocation{Plate: plate, Row: row, Column: column}, nil
}

func (w WellLocation) String() string {
	return fmt.Sprintf("Plate %d - Well %s%d", w.Plate, string(w.Row), w.Column)
}
