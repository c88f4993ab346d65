package vectra

import (
	"time"

	"github.com/jinzhu/copier"
	"gonum.org/v1/gonum/stat"

	"github.com/altanalabs/vectra/models"
	"github.com/altanalabs/vectra/utils"
)

// buildResult assembles the read-only result from a finished run. The
// ledger and history slices are deep-copied so the result owns its data.
func buildResult(cfg models.BacktestConfig, state *runState, start time.Time, end time.Time) models.BacktestResult {
	result := models.BacktestResult{
		Pair:           cfg.Pair,
		Start:          start,
		End:            end,
		InitialCapital: cfg.InitialCapital,
		FinalCapital:   state.totalCapital(),
		Config:         cfg,
	}

	result.TotalProfit = result.FinalCapital - result.InitialCapital
	result.TotalPercentage = result.TotalProfit / result.InitialCapital * 100

	result.TotalTrades = len(state.trades)
	profits := make([]float64, len(state.trades))
	for i, trade := range state.trades {
		profits[i] = trade.Profit
		if trade.Profit > 0 {
			result.WinningTrades++
		} else {
			result.LosingTrades++
		}
	}
	if result.TotalTrades > 0 {
		result.WinRate = float64(result.WinningTrades) / float64(result.TotalTrades)
		result.AverageProfit = utils.SumArr(profits) / float64(result.TotalTrades)
	}

	result.MaxDrawdown = maxDrawdown(state.history)
	result.MonthlyReturns = monthlyReturns(state.history)
	result.SharpeRatio = sharpeRatio(result.MonthlyReturns)

	if err := copier.Copy(&result.Trades, &state.trades); err != nil {
		result.Trades = append([]models.Trade(nil), state.trades...)
	}
	if err := copier.Copy(&result.History, &state.history); err != nil {
		result.History = append([]models.HistoryRow(nil), state.history...)
	}
	return result
}

// maxDrawdown scans the portfolio-value series for the worst decline from a
// running peak, returned as a negative percentage.
func maxDrawdown(history []models.HistoryRow) float64 {
	var drawdown float64
	var highestValue float64
	for _, row := range history {
		if row.Value > highestValue {
			highestValue = row.Value
		}
		ddDiff := utils.CalculateDifference(row.Value, highestValue)
		if drawdown > ddDiff {
			drawdown = ddDiff
		}
	}
	return drawdown * 100
}

// monthlyReturns resamples the portfolio-value series to month-end values
// and takes the percent change between consecutive months.
func monthlyReturns(history []models.HistoryRow) []models.MonthlyReturn {
	if len(history) == 0 {
		return nil
	}

	type monthEnd struct {
		year  int
		month time.Month
		value float64
	}
	var ends []monthEnd
	for _, row := range history {
		year, month, _ := row.Timestamp.UTC().Date()
		if len(ends) > 0 && ends[len(ends)-1].year == year && ends[len(ends)-1].month == month {
			ends[len(ends)-1].value = row.Value
		} else {
			ends = append(ends, monthEnd{year: year, month: month, value: row.Value})
		}
	}

	var returns []models.MonthlyReturn
	for i := 1; i < len(ends); i++ {
		returns = append(returns, models.MonthlyReturn{
			Year:   ends[i].year,
			Month:  int(ends[i].month),
			Return: utils.CalculateDifference(ends[i].value, ends[i-1].value) * 100,
		})
	}
	return returns
}

// sharpeRatio is the simplified monthly Sharpe: mean over stddev of monthly
// returns, 0 whenever fewer than 2 observations or zero variance make it
// undefined.
func sharpeRatio(monthly []models.MonthlyReturn) float64 {
	if len(monthly) < 2 {
		return 0
	}
	returns := make([]float64, len(monthly))
	for i, m := range monthly {
		returns[i] = m.Return
	}
	mean, std := stat.MeanStdDev(returns, nil)
	if std == 0 {
		return 0
	}
	return mean / std
}
