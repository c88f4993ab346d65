package models

import "time"

// HistoryRow is one step of the portfolio-value series. The series is the
// basis for drawdown and monthly return calculations and can be dumped to
// CSV for inspection.
type HistoryRow struct {
	Timestamp time.Time `csv:"timestamp"`
	Value     float64   `csv:"value"`
	Available float64   `csv:"available"`
	Reserved  float64   `csv:"reserved"`
	Price     float64   `csv:"price"`
}

// MonthlyReturn is the percent change of the month-end portfolio value
// against the previous month.
type MonthlyReturn struct {
	Year   int     `csv:"year" json:"year"`
	Month  int     `csv:"month" json:"month"`
	Return float64 `csv:"return" json:"return"`
}
