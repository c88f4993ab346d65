package models

import (
	"fmt"
	"sort"
	"time"
)

// Schema validation failures are distinct from having too little data:
// callers can retry ErrInsufficientData with a longer history, ErrSchema
// means the upstream feed is broken.
var (
	ErrSchema           = fmt.Errorf("candle schema validation failed")
	ErrInsufficientData = fmt.Errorf("insufficient data")
)

// Candle is one OHLCV period. Timestamps are unix milliseconds.
type Candle struct {
	Timestamp int64   `csv:"timestamp" db:"timestamp" json:"timestamp"`
	Open      float64 `csv:"open" db:"open" json:"open"`
	High      float64 `csv:"high" db:"high" json:"high"`
	Low       float64 `csv:"low" db:"low" json:"low"`
	Close     float64 `csv:"close" db:"close" json:"close"`
	Volume    float64 `csv:"volume" db:"volume" json:"volume"`
}

// Time returns the candle open time in UTC.
func (c Candle) Time() time.Time {
	return time.Unix(c.Timestamp/1000, (c.Timestamp%1000)*int64(time.Millisecond)).UTC()
}

// OHLCV holds a candle series broken down into parallel columns, which is
// the layout the indicator functions operate on.
type OHLCV struct {
	Timestamp []int64
	Open      []float64
	High      []float64
	Low       []float64
	Close     []float64
	Volume    []float64
}

// NewOHLCV splits candles into columns.
func NewOHLCV(candles []Candle) OHLCV {
	n := len(candles)
	o := OHLCV{
		Timestamp: make([]int64, n),
		Open:      make([]float64, n),
		High:      make([]float64, n),
		Low:       make([]float64, n),
		Close:     make([]float64, n),
		Volume:    make([]float64, n),
	}
	for i, c := range candles {
		o.Timestamp[i] = c.Timestamp
		o.Open[i] = c.Open
		o.High[i] = c.High
		o.Low[i] = c.Low
		o.Close[i] = c.Close
		o.Volume[i] = c.Volume
	}
	return o
}

// SortCandles orders candles by timestamp ascending, in place.
func SortCandles(candles []Candle) {
	sort.Slice(candles, func(i, j int) bool { return candles[i].Timestamp < candles[j].Timestamp })
}

// ValidateCandles checks the fixed schema at the ingestion boundary:
// strictly increasing timestamps, positive prices, high >= low and the
// open/close inside the high/low range. An empty series is valid, the
// simulator has defined zero-activity behavior for it.
func ValidateCandles(candles []Candle) error {
	var lastTS int64
	for i, c := range candles {
		if i > 0 && c.Timestamp <= lastTS {
			return fmt.Errorf("%w: candle %d timestamp %d not increasing", ErrSchema, i, c.Timestamp)
		}
		lastTS = c.Timestamp
		if c.Open <= 0 || c.High <= 0 || c.Low <= 0 || c.Close <= 0 {
			return fmt.Errorf("%w: candle %d has non-positive price", ErrSchema, i)
		}
		if c.High < c.Low {
			return fmt.Errorf("%w: candle %d high %f below low %f", ErrSchema, i, c.High, c.Low)
		}
		if c.Open > c.High || c.Open < c.Low || c.Close > c.High || c.Close < c.Low {
			return fmt.Errorf("%w: candle %d open/close outside high/low range", ErrSchema, i)
		}
	}
	return nil
}
