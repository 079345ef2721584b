package simoa

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// CoerceNumeric converts a raw measurement field (AEB, Concentration) to a
// nullable float. The instrument leaves these blank or writes "NaN" for
// wells it could not measure, so anything that does not parse to a real
// number degrades to absent rather than erroring.
func CoerceNumeric(raw string) null.Float {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) {
		return null.Float{}
	}

	return null.FloatFrom(v)
}

// PgToFg converts a concentration from pg/ml to fg/ml. Absent propagates as
// absent.
func PgToFg(pg null.Float) null.Float {
	if !pg.Valid {
		return null.Float{}
	}

	return null.FloatFrom(pg.Float64 * 1000.0)
}
