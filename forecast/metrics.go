package forecast

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Descriptive metrics derivable from a trade history without running the
// full estimate. All of them tolerate empty input.

// WinRate is the fraction of trades with positive P&L, in [0, 1].
func WinRate(trades []TradeRecord) float64 {
	if len(trades) == 0 {
		return 0
	}
	var wins int
	for _, trade := range trades {
		if trade.Profit > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(trades))
}

// SharpeRatio is the mean over population stddev of per-trade P&L,
// annualized by a fixed trading-periods-per-year constant. 0 when
// undefined.
func SharpeRatio(trades []TradeRecord, periodsPerYear float64) float64 {
	if len(trades) < 2 {
		return 0
	}
	profits := make([]float64, len(trades))
	for i, trade := range trades {
		profits[i] = trade.Profit
	}
	mean := stat.Mean(profits, nil)
	std := stat.PopStdDev(profits, nil)
	if std == 0 {
		return 0
	}
	return mean / std * math.Sqrt(periodsPerYear)
}

// MaxDrawdown scans the cumulative P&L curve for the worst decline from a
// running peak, returned as a negative percentage. Declines before the
// curve has ever been positive have no meaningful percentage base and are
// skipped.
func MaxDrawdown(trades []TradeRecord) float64 {
	if len(trades) == 0 {
		return 0
	}
	ordered := append([]TradeRecord(nil), trades...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Timestamp.Before(ordered[j].Timestamp) })

	var cumulative, peak, drawdown float64
	for _, trade := range ordered {
		cumulative += trade.Profit
		if cumulative > peak {
			peak = cumulative
		}
		if peak > 0 {
			ddDiff := (cumulative - peak) / peak
			if drawdown > ddDiff {
				drawdown = ddDiff
			}
		}
	}
	return drawdown * 100
}
