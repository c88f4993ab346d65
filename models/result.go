package models

import "time"

// The BacktestResult struct contains everything a single backtest run
// produced. It is read-only once returned; rerunning the same input and
// config yields an identical value (run ids are assigned by the reporting
// layer, not here).
type BacktestResult struct {
	Pair            string          // Traded pair
	Start           time.Time       // First candle time
	End             time.Time       // Last candle time
	InitialCapital  float64         // Capital at the start of the run
	FinalCapital    float64         // Capital after the final forced close
	TotalProfit     float64         // FinalCapital - InitialCapital
	TotalPercentage float64         // TotalProfit relative to InitialCapital, in percent
	TotalTrades     int             // Completed trades
	WinningTrades   int             // Trades with positive profit
	LosingTrades    int             // Trades with non-positive profit
	WinRate         float64         // WinningTrades / TotalTrades, 0 when no trades
	AverageProfit   float64         // Mean profit over completed trades
	MaxDrawdown     float64         // Worst peak-to-trough decline, negative percent
	SharpeRatio     float64         // mean/std of monthly returns, 0 below 2 months
	MonthlyReturns  []MonthlyReturn // Month-end resampled percent changes
	Trades          []Trade         // Full trade ledger, append-only during the run
	History         []HistoryRow    // Per-candle portfolio value series
	Config          BacktestConfig  // Snapshot of the configuration used
}
