// Package vectra is a backtesting and strategy-evaluation engine for a
// single-asset, single-position strategy over OHLCV candles. The simulator
// here and the goal estimator in forecast/ are deterministic batch
// computations: the same candles and config always produce the same result,
// and independent runs share no state.
package vectra

import (
	"github.com/altanalabs/vectra/models"
)

// Engine runs backtests for one configuration. It holds no per-run state;
// each Run owns its own capital bookkeeping and ledger, so a single Engine
// may be reused across runs (or across goroutines on independent inputs).
type Engine struct {
	config models.BacktestConfig
}

// NewEngine validates the config, applies indicator defaults, and returns a
// ready engine.
func NewEngine(config models.BacktestConfig) (*Engine, error) {
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{config: config}, nil
}

// Config returns the engine's configuration snapshot.
func (e *Engine) Config() models.BacktestConfig {
	return e.config
}
