package models

import (
	"errors"
	"testing"
	"time"
)

func goodCandle(ts int64, price float64) Candle {
	return Candle{Timestamp: ts, Open: price, High: price * 1.01, Low: price * 0.99, Close: price, Volume: 10}
}

func TestValidateCandlesEmpty(t *testing.T) {
	if err := ValidateCandles(nil); err != nil {
		t.Error("an empty series is valid:", err)
	}
}

func TestValidateCandlesOK(t *testing.T) {
	candles := []Candle{goodCandle(1000, 100), goodCandle(2000, 101), goodCandle(3000, 99)}
	if err := ValidateCandles(candles); err != nil {
		t.Error("well-formed series rejected:", err)
	}
}

func TestValidateCandlesRejections(t *testing.T) {
	cases := []struct {
		name    string
		candles []Candle
	}{
		{"duplicate timestamp", []Candle{goodCandle(1000, 100), goodCandle(1000, 101)}},
		{"decreasing timestamp", []Candle{goodCandle(2000, 100), goodCandle(1000, 101)}},
		{"zero price", []Candle{{Timestamp: 1000, Open: 0, High: 1, Low: 1, Close: 1, Volume: 1}}},
		{"negative price", []Candle{{Timestamp: 1000, Open: 1, High: 1, Low: -1, Close: 1, Volume: 1}}},
		{"high below low", []Candle{{Timestamp: 1000, Open: 100, High: 99, Low: 101, Close: 100, Volume: 1}}},
		{"close above high", []Candle{{Timestamp: 1000, Open: 100, High: 101, Low: 99, Close: 102, Volume: 1}}},
		{"open below low", []Candle{{Timestamp: 1000, Open: 98, High: 101, Low: 99, Close: 100, Volume: 1}}},
	}
	for _, tc := range cases {
		err := ValidateCandles(tc.candles)
		if err == nil {
			t.Error(tc.name, "should be rejected")
			continue
		}
		if !errors.Is(err, ErrSchema) {
			t.Error(tc.name, "should wrap ErrSchema, got", err)
		}
	}
}

func TestCandleTime(t *testing.T) {
	c := Candle{Timestamp: 1704067200000} // 2024-01-01T00:00:00Z
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !c.Time().Equal(want) {
		t.Error("expected", want, "got", c.Time())
	}
}

func TestSortCandles(t *testing.T) {
	candles := []Candle{goodCandle(3000, 99), goodCandle(1000, 100), goodCandle(2000, 101)}
	SortCandles(candles)
	for i := 1; i < len(candles); i++ {
		if candles[i].Timestamp <= candles[i-1].Timestamp {
			t.Fatal("candles not sorted at index", i)
		}
	}
}

func TestNewOHLCV(t *testing.T) {
	candles := []Candle{goodCandle(1000, 100), goodCandle(2000, 102)}
	o := NewOHLCV(candles)
	if len(o.Close) != 2 || len(o.Timestamp) != 2 {
		t.Fatal("columns must match the candle count")
	}
	if o.Close[1] != 102 || o.Timestamp[0] != 1000 || o.Volume[0] != 10 {
		t.Error("column values do not match the source candles")
	}
}
