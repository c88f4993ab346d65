package models

import "time"

// Side of a position. The simulator only opens longs.
const (
	SideLong = "long"
)

// Reasons a position was closed.
const (
	CloseReasonSignal    = "signal"
	CloseReasonStopLoss  = "stop-loss"
	CloseReasonEndOfData = "end-of-data"
)

// Position is an open trade. At most one exists per pair at any time.
type Position struct {
	Pair        string    `json:"pair"`
	Side        string    `json:"side"`
	EntryTime   time.Time `json:"entry_time"`
	EntryPrice  float64   `json:"entry_price"`
	Quantity    float64   `json:"quantity"`
	EntryValue  float64   `json:"entry_value"`
	StopLoss    float64   `json:"stop_loss"`
	EntryReason string    `json:"entry_reason"`
}

// Trade is a closed position. Immutable once appended to the ledger.
type Trade struct {
	Pair          string    `csv:"pair" json:"pair"`
	Side          string    `csv:"side" json:"side"`
	EntryTime     time.Time `csv:"entry_time" json:"entry_time"`
	EntryPrice    float64   `csv:"entry_price" json:"entry_price"`
	Quantity      float64   `csv:"quantity" json:"quantity"`
	EntryValue    float64   `csv:"entry_value" json:"entry_value"`
	StopLoss      float64   `csv:"stop_loss" json:"stop_loss"`
	EntryReason   string    `csv:"entry_reason" json:"entry_reason"`
	ExitTime      time.Time `csv:"exit_time" json:"exit_time"`
	ExitPrice     float64   `csv:"exit_price" json:"exit_price"`
	ExitValue     float64   `csv:"exit_value" json:"exit_value"`
	Profit        float64   `csv:"profit" json:"profit"`
	ProfitPercent float64   `csv:"profit_percent" json:"profit_percent"`
	CloseReason   string    `csv:"close_reason" json:"close_reason"`
}

// Close converts an open position into a Trade at the given exit.
func (p Position) Close(exitTime time.Time, exitPrice float64, reason string) Trade {
	exitValue := p.Quantity * exitPrice
	profit := exitValue - p.EntryValue
	return Trade{
		Pair:          p.Pair,
		Side:          p.Side,
		EntryTime:     p.EntryTime,
		EntryPrice:    p.EntryPrice,
		Quantity:      p.Quantity,
		EntryValue:    p.EntryValue,
		StopLoss:      p.StopLoss,
		EntryReason:   p.EntryReason,
		ExitTime:      exitTime,
		ExitPrice:     exitPrice,
		ExitValue:     exitValue,
		Profit:        profit,
		ProfitPercent: profit / p.EntryValue * 100,
		CloseReason:   reason,
	}
}
