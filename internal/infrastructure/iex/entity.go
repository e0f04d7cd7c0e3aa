package iex

// LastRow represents one row of the tops/last csv payload.
type LastRow struct {
	Symbol string  `csv:"symbol"`
	Price  float64 `csv:"price"`
	Size   int64   `csv:"size"`
	Time   int64   `csv:"time"`
}
