// Package ta provides the technical analysis indicators the simulator trades
// on, using github.com/markcheno/go-talib where its semantics match.
package ta

import (
	"math"

	talib "github.com/markcheno/go-talib"
)

// RSI calculates the Relative Strength Index over a simple rolling mean of
// gains and losses. Note this is NOT the Wilder-smoothed RSI talib computes;
// the signal policy was tuned against the simple-mean variant. Indices below
// the period are undefined and returned as NaN.
func RSI(close []float64, period int) []float64 {
	out := make([]float64, len(close))
	for i := range out {
		out[i] = math.NaN()
	}
	if period <= 0 || len(close) <= period {
		return out
	}
	for i := period; i < len(close); i++ {
		var gains, losses float64
		for j := i - period + 1; j <= i; j++ {
			change := close[j] - close[j-1]
			if change > 0 {
				gains += change
			} else {
				losses -= change
			}
		}
		avgGain := gains / float64(period)
		avgLoss := losses / float64(period)
		if avgLoss == 0 {
			out[i] = 100
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100 - 100/(1+rs)
	}
	return out
}

// BBands calculates the upper, middle, and lower Bollinger Bands for a given
// time period and deviation multiplier, using an SMA basis. The leading
// window is undefined and returned as NaN.
func BBands(close []float64, period int, stdDev float64) ([]float64, []float64, []float64) {
	if period <= 0 || len(close) < period {
		upper := nanSlice(len(close))
		middle := nanSlice(len(close))
		lower := nanSlice(len(close))
		return upper, middle, lower
	}
	upper, middle, lower := talib.BBands(close, period, stdDev, stdDev, talib.SMA)
	for i := 0; i < period-1 && i < len(close); i++ {
		upper[i] = math.NaN()
		middle[i] = math.NaN()
		lower[i] = math.NaN()
	}
	return upper, middle, lower
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
