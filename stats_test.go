package vectra

import (
	"math"
	"testing"
	"time"

	"github.com/altanalabs/vectra/models"
)

func historyAt(values []float64, start time.Time, step time.Duration) []models.HistoryRow {
	rows := make([]models.HistoryRow, len(values))
	for i, v := range values {
		rows[i] = models.HistoryRow{Timestamp: start.Add(time.Duration(i) * step), Value: v}
	}
	return rows
}

func TestMaxDrawdown(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	history := historyAt([]float64{100, 120, 90, 130}, start, time.Hour)
	dd := maxDrawdown(history)
	if math.Abs(dd-(-25)) > 1e-9 {
		t.Error("expected -25 percent drawdown, got", dd)
	}
}

func TestMaxDrawdownMonotonicRise(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	history := historyAt([]float64{100, 110, 120}, start, time.Hour)
	if dd := maxDrawdown(history); dd != 0 {
		t.Error("no decline should mean zero drawdown, got", dd)
	}
}

func TestMonthlyReturnsResampling(t *testing.T) {
	// Two rows in January (month-end 110), one in February (121), one in
	// March (133.1): +10% then +11%.
	rows := []models.HistoryRow{
		{Timestamp: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Value: 100},
		{Timestamp: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), Value: 110},
		{Timestamp: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), Value: 121},
		{Timestamp: time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC), Value: 133.1},
	}
	returns := monthlyReturns(rows)
	if len(returns) != 2 {
		t.Fatal("expected 2 monthly returns, got", len(returns))
	}
	if returns[0].Year != 2024 || returns[0].Month != 2 {
		t.Error("first return should be February, got", returns[0].Year, returns[0].Month)
	}
	if math.Abs(returns[0].Return-10) > 1e-9 {
		t.Error("February return expected 10, got", returns[0].Return)
	}
	if math.Abs(returns[1].Return-10) > 1e-9 {
		t.Error("March return expected 10, got", returns[1].Return)
	}
}

func TestMonthlyReturnsSingleMonth(t *testing.T) {
	rows := historyAt([]float64{100, 105}, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Hour)
	if returns := monthlyReturns(rows); len(returns) != 0 {
		t.Error("a single month cannot produce a return, got", len(returns))
	}
}

func TestSharpeRatio(t *testing.T) {
	if s := sharpeRatio(nil); s != 0 {
		t.Error("no observations should give 0, got", s)
	}
	if s := sharpeRatio([]models.MonthlyReturn{{Return: 5}}); s != 0 {
		t.Error("a single observation should give 0, got", s)
	}
	flat := []models.MonthlyReturn{{Return: 5}, {Return: 5}, {Return: 5}}
	if s := sharpeRatio(flat); s != 0 {
		t.Error("zero variance should give 0, got", s)
	}
	mixed := []models.MonthlyReturn{{Return: 10}, {Return: -10}}
	s := sharpeRatio(mixed)
	if math.Abs(s-0) > 1e-9 {
		t.Error("symmetric returns should give 0 mean hence 0 ratio, got", s)
	}
	rising := []models.MonthlyReturn{{Return: 1}, {Return: 2}, {Return: 3}}
	if s := sharpeRatio(rising); s <= 0 {
		t.Error("positive mean returns should give a positive ratio, got", s)
	}
}
