package models

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
)

// BacktestConfig carries every tunable of a single backtest run. All
// business values are explicit here, nothing is compiled in.
type BacktestConfig struct {
	Pair                string  `json:"pair"`
	InitialCapital      float64 `json:"initial_capital"`
	RiskPerTrade        float64 `json:"risk_per_trade"`        // fraction of available capital risked per entry
	MaxPositionFraction float64 `json:"max_position_fraction"` // concentration cap on a single position
	MinTradeAmount      float64 `json:"min_trade_amount"`      // entries below this notional are rejected
	StopLossPercent     float64 `json:"stop_loss_percent"`     // stop = entry * (1 - pct)
	HoldAsset           string  `json:"hold_asset"`            // pair with the reserved allocation and strict signals
	HoldQuantity        float64 `json:"hold_quantity"`         // units reserved at first-seen price
	RSIPeriod           int     `json:"rsi_period"`
	RSIOversold         float64 `json:"rsi_oversold"`
	RSIOverbought       float64 `json:"rsi_overbought"`
	BollingerPeriod     int     `json:"bollinger_period"`
	BollingerStdDev     float64 `json:"bollinger_std_dev"`
}

// ApplyDefaults fills unset indicator and sizing parameters with the
// standard values.
func (c *BacktestConfig) ApplyDefaults() {
	if c.RiskPerTrade == 0 {
		c.RiskPerTrade = 0.04
	}
	if c.MaxPositionFraction == 0 {
		c.MaxPositionFraction = 0.3
	}
	if c.StopLossPercent == 0 {
		c.StopLossPercent = 0.04
	}
	if c.RSIPeriod == 0 {
		c.RSIPeriod = 14
	}
	if c.RSIOversold == 0 {
		c.RSIOversold = 30
	}
	if c.RSIOverbought == 0 {
		c.RSIOverbought = 70
	}
	if c.BollingerPeriod == 0 {
		c.BollingerPeriod = 20
	}
	if c.BollingerStdDev == 0 {
		c.BollingerStdDev = 2
	}
}

// Validate rejects configurations the simulator cannot run with.
func (c BacktestConfig) Validate() error {
	if c.InitialCapital <= 0 {
		return fmt.Errorf("initial capital must be positive, got %f", c.InitialCapital)
	}
	if c.RiskPerTrade <= 0 || c.RiskPerTrade >= 1 {
		return fmt.Errorf("risk per trade must be in (0,1), got %f", c.RiskPerTrade)
	}
	if c.MaxPositionFraction <= 0 || c.MaxPositionFraction > 1 {
		return fmt.Errorf("max position fraction must be in (0,1], got %f", c.MaxPositionFraction)
	}
	if c.StopLossPercent <= 0 || c.StopLossPercent >= 1 {
		return fmt.Errorf("stop loss percent must be in (0,1), got %f", c.StopLossPercent)
	}
	if c.MinTradeAmount < 0 {
		return fmt.Errorf("min trade amount must not be negative, got %f", c.MinTradeAmount)
	}
	return nil
}

// LoadBacktestConfig loads a config from a JSON file.
func LoadBacktestConfig(fileName string) (config BacktestConfig, err error) {
	file, err := ioutil.ReadFile(fileName)
	if err != nil {
		return config, err
	}
	if err = json.Unmarshal(file, &config); err != nil {
		return config, err
	}
	config.ApplyDefaults()
	return config, config.Validate()
}
