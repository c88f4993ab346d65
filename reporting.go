package vectra

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/structs"
	"github.com/google/uuid"
	client "github.com/influxdata/influxdb1-client/v2"

	"github.com/altanalabs/vectra/logger"
	"github.com/altanalabs/vectra/models"
	"github.com/altanalabs/vectra/utils"
)

// LogResult prints the result summary as a key/value block.
func LogResult(result models.BacktestResult) {
	summary := map[string]interface{}{
		"Pair":            result.Pair,
		"InitialCapital":  result.InitialCapital,
		"FinalCapital":    result.FinalCapital,
		"TotalPercentage": utils.ToFixed(result.TotalPercentage, 2),
		"TotalTrades":     result.TotalTrades,
		"WinRate":         utils.ToFixed(result.WinRate, 4),
		"MaxDrawdown":     utils.ToFixed(result.MaxDrawdown, 2),
		"SharpeRatio":     utils.ToFixed(result.SharpeRatio, 3),
	}
	logger.Infof("Backtest result %s", utils.CreateKeyValuePairs(summary, true))
}

// PublishResult writes a backtest result to influx. The run id is assigned
// here, not inside the engine, so engine output stays deterministic. The
// database address and credentials come from the environment
// (VECTRA_BACKTEST_DB_URL, _USER, _PASSWORD).
func PublishResult(name string, result models.BacktestResult) (string, error) {
	influxURL := os.Getenv("VECTRA_BACKTEST_DB_URL")
	if influxURL == "" {
		return "", fmt.Errorf("VECTRA_BACKTEST_DB_URL is not set")
	}

	influx, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     influxURL,
		Username: os.Getenv("VECTRA_BACKTEST_DB_USER"),
		Password: os.Getenv("VECTRA_BACKTEST_DB_PASSWORD"),
		Timeout:  10 * time.Second,
	})
	if err != nil {
		return "", err
	}
	defer influx.Close()

	bp, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  "backtests",
		Precision: "us",
	})
	if err != nil {
		return "", err
	}

	runID := name + "-" + uuid.New().String()
	tags := map[string]string{
		"name":        name,
		"pair":        result.Pair,
		"backtest_id": runID,
	}
	fields := map[string]interface{}{
		"initial_capital":  result.InitialCapital,
		"final_capital":    result.FinalCapital,
		"total_percentage": result.TotalPercentage,
		"total_trades":     result.TotalTrades,
		"win_rate":         result.WinRate,
		"max_drawdown":     result.MaxDrawdown,
		"sharpe_ratio":     result.SharpeRatio,
	}

	pt, err := client.NewPoint("result", tags, fields, time.Now())
	if err != nil {
		return "", err
	}
	bp.AddPoint(pt)

	if err := influx.Write(bp); err != nil {
		return "", err
	}
	logger.Infof("Published backtest %s: %v\n", runID, structs.Map(result.Config))
	return runID, nil
}
