package models

import (
	"math"
	"testing"
	"time"
)

func TestPositionClose(t *testing.T) {
	entry := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	exit := entry.Add(4 * time.Hour)
	p := Position{
		Pair:       "ETH/ZAR",
		Side:       SideLong,
		EntryTime:  entry,
		EntryPrice: 100,
		Quantity:   5,
		EntryValue: 500,
		StopLoss:   96,
	}

	trade := p.Close(exit, 110, CloseReasonSignal)
	if trade.ExitValue != 550 {
		t.Error("exit value expected 550, got", trade.ExitValue)
	}
	if trade.Profit != 50 {
		t.Error("profit expected 50, got", trade.Profit)
	}
	if math.Abs(trade.ProfitPercent-10) > 1e-9 {
		t.Error("profit percent expected 10, got", trade.ProfitPercent)
	}
	if trade.CloseReason != CloseReasonSignal || trade.ExitTime != exit {
		t.Error("exit metadata not carried over")
	}
	if trade.Pair != p.Pair || trade.EntryPrice != p.EntryPrice || trade.StopLoss != p.StopLoss {
		t.Error("entry fields not carried over")
	}
}

func TestPositionCloseAtLoss(t *testing.T) {
	p := Position{Pair: "ETH/ZAR", Side: SideLong, EntryPrice: 100, Quantity: 2, EntryValue: 200, StopLoss: 96}
	trade := p.Close(time.Now().UTC(), 96, CloseReasonStopLoss)
	if trade.Profit != -8 {
		t.Error("loss expected -8, got", trade.Profit)
	}
	if math.Abs(trade.ProfitPercent-(-4)) > 1e-9 {
		t.Error("loss percent expected -4, got", trade.ProfitPercent)
	}
}
