package v1

import (
	"time"

	"github.com/ppgiii/ViZ/pkg/errors"
)

// DisplayLayout is the wall clock layout quotes carry for presentation.
const DisplayLayout = "2006-01-02 15:04:05"

// Quote represents a single last trade observation for a symbol.
type Quote struct {
	Symbol      string
	Price       float64
	Size        int64
	Timestamp   time.Time
	DisplayTime string
}

// WithDisplayTime returns a copy of the quote with DisplayTime rendered
// from its timestamp in the given location.
func (q Quote) WithDisplayTime(loc *time.Location) Quote {
	q.DisplayTime = q.Timestamp.In(loc).Format(DisplayLayout)
	return q
}

// Columns is the column oriented form of a run of quotes, ordered oldest
// first. Time values are unix milliseconds.
type Columns struct {
	Time        []int64   `json:"time"`
	DisplayTime []string  `json:"display_time"`
	Price       []float64 `json:"price"`
}

// ColumnsFromQuotes reshapes quotes into column form. The result always
// carries allocated slices so it serializes as empty arrays, not null.
func ColumnsFromQuotes(quotes []Quote) Columns {
	cols := Columns{
		Time:        make([]int64, 0, len(quotes)),
		DisplayTime: make([]string, 0, len(quotes)),
		Price:       make([]float64, 0, len(quotes)),
	}

	for _, q := range quotes {
		cols.Time = append(cols.Time, q.Timestamp.UnixMilli())
		cols.DisplayTime = append(cols.DisplayTime, q.DisplayTime)
		cols.Price = append(cols.Price, q.Price)
	}

	return cols
}

// Len returns the number of rows held by the columns.
func (c Columns) Len() int {
	return len(c.Time)
}

// Validate reports whether the three columns carry the same number of rows.
func (c Columns) Validate() error {
	if len(c.DisplayTime) != len(c.Time) || len(c.Price) != len(c.Time) {
		return errors.NewErrorDetails(
			"columns must carry the same number of rows",
			string(errors.GeneralBadRequestError),
			"columns",
		)
	}

	return nil
}
