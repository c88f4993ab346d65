package vectra

import (
	"fmt"
	"time"

	"github.com/altanalabs/vectra/logger"
	"github.com/altanalabs/vectra/models"
	"github.com/altanalabs/vectra/ta"
)

// runState is the capital bookkeeping for one backtest run. It is created
// inside Run and never shared, which keeps repeated runs byte-identical.
type runState struct {
	available   float64
	reserved    float64
	reservedSet bool
	position    *models.Position
	trades      []models.Trade
	history     []models.HistoryRow
}

// totalCapital is available + committed entry value + the reserved
// allocation. Realized P&L flows into available on every close, so this
// equals initial capital plus realized profit at all times.
func (s *runState) totalCapital() float64 {
	total := s.available + s.reserved
	if s.position != nil {
		total += s.position.EntryValue
	}
	return total
}

// Run walks the candle series once and produces a BacktestResult. An empty
// series yields a zero-activity result with the same shape, not an error;
// a malformed series yields models.ErrSchema.
func (e *Engine) Run(candles []models.Candle) (models.BacktestResult, error) {
	if err := models.ValidateCandles(candles); err != nil {
		return models.BacktestResult{}, err
	}

	cfg := e.config
	state := &runState{available: cfg.InitialCapital}

	if len(candles) == 0 {
		result := buildResult(cfg, state, time.Time{}, time.Time{})
		return result, nil
	}

	start := time.Now()
	logger.Infof("Running %d candles for %s\n", len(candles), cfg.Pair)

	ohlcv := models.NewOHLCV(candles)
	rsi := ta.RSI(ohlcv.Close, cfg.RSIPeriod)
	upper, _, lower := ta.BBands(ohlcv.Close, cfg.BollingerPeriod, cfg.BollingerStdDev)

	// The hold asset reserves a fixed quantity against trading and only
	// trades its remaining capital on strict two-indicator agreement.
	strict := cfg.Pair == cfg.HoldAsset

	for i, candle := range candles {
		price := candle.Close
		now := candle.Time()

		// Reserve once, at the first price ever seen for the hold asset.
		if strict && cfg.HoldQuantity > 0 && !state.reservedSet {
			reserved := cfg.HoldQuantity * price
			if reserved > state.available {
				reserved = state.available
			}
			state.available -= reserved
			state.reserved = reserved
			state.reservedSet = true
			logger.Debugf("Reserved %f for %f %s at %f\n", reserved, cfg.HoldQuantity, cfg.HoldAsset, price)
		}

		rsiSignal := ta.RSISignal(rsi[i], cfg.RSIOversold, cfg.RSIOverbought)
		bbSignal := ta.BollingerSignal(price, upper[i], lower[i])
		var signal ta.Signal
		if strict {
			signal = ta.CombineStrict(rsiSignal, bbSignal)
		} else {
			signal = ta.Combine(rsiSignal, bbSignal)
		}

		if state.position != nil {
			if price <= state.position.StopLoss {
				e.closePosition(state, now, price, models.CloseReasonStopLoss)
			} else if signal == ta.Sell {
				e.closePosition(state, now, price, models.CloseReasonSignal)
			}
		}

		if state.position == nil && signal == ta.Buy {
			e.openPosition(state, now, price, rsiSignal, bbSignal)
		}

		value := state.available + state.reserved
		if state.position != nil {
			value += state.position.Quantity * price
		}
		state.history = append(state.history, models.HistoryRow{
			Timestamp: now,
			Value:     value,
			Available: state.available,
			Reserved:  state.reserved,
			Price:     price,
		})
	}

	// End of data forces any open position closed at the final price.
	if state.position != nil {
		last := candles[len(candles)-1]
		e.closePosition(state, last.Time(), last.Close, models.CloseReasonEndOfData)
	}

	result := buildResult(cfg, state, candles[0].Time(), candles[len(candles)-1].Time())
	logger.Infof("Completed %d trades, final capital %f, execution %v\n",
		result.TotalTrades, result.FinalCapital, time.Since(start))
	return result, nil
}

// positionSize computes the risk-based position notional. Risking a fixed
// fraction of available capital against the stop distance, then capping at
// the concentration limit.
func (e *Engine) positionSize(available float64, entryPrice float64, stopPrice float64) float64 {
	riskAmount := available * e.config.RiskPerTrade
	priceRisk := entryPrice - stopPrice
	if priceRisk <= 0 {
		return 0
	}
	size := riskAmount / (priceRisk / entryPrice)
	max := available * e.config.MaxPositionFraction
	if size > max {
		size = max
	}
	return size
}

func (e *Engine) openPosition(state *runState, now time.Time, price float64, rsiSignal ta.Signal, bbSignal ta.Signal) {
	stop := price * (1 - e.config.StopLossPercent)
	size := e.positionSize(state.available, price, stop)
	if size < e.config.MinTradeAmount {
		logger.Debugf("Entry rejected: size %f below minimum %f\n", size, e.config.MinTradeAmount)
		return
	}
	state.available -= size
	state.position = &models.Position{
		Pair:        e.config.Pair,
		Side:        models.SideLong,
		EntryTime:   now,
		EntryPrice:  price,
		Quantity:    size / price,
		EntryValue:  size,
		StopLoss:    stop,
		EntryReason: fmt.Sprintf("rsi=%s bollinger=%s", rsiSignal, bbSignal),
	}
	logger.Debugf("Opened %s %f at %f, stop %f\n", e.config.Pair, size, price, stop)
}

func (e *Engine) closePosition(state *runState, now time.Time, price float64, reason string) {
	trade := state.position.Close(now, price, reason)
	state.available += trade.ExitValue
	state.trades = append(state.trades, trade)
	state.position = nil
	logger.Debugf("Closed %s at %f (%s), profit %f\n", trade.Pair, price, reason, trade.Profit)
}
