package ta

import "math"

// Signal is a discrete trading signal.
type Signal string

const (
	Buy  Signal = "BUY"
	Sell Signal = "SELL"
	Hold Signal = "HOLD"
)

// RSISignal maps an RSI value onto a signal. NaN (insufficient look-back)
// is HOLD.
func RSISignal(rsi float64, oversold float64, overbought float64) Signal {
	if math.IsNaN(rsi) {
		return Hold
	}
	if rsi < oversold {
		return Buy
	}
	if rsi > overbought {
		return Sell
	}
	return Hold
}

// BollingerSignal maps a close against the bands onto a signal. NaN bands
// (insufficient look-back) are HOLD.
func BollingerSignal(close float64, upper float64, lower float64) Signal {
	if math.IsNaN(upper) || math.IsNaN(lower) {
		return Hold
	}
	if close <= lower {
		return Buy
	}
	if close >= upper {
		return Sell
	}
	return Hold
}

// Combine merges the RSI and Bollinger signals. When both agree and are not
// HOLD that signal wins; otherwise a single BUY beats a single SELL. The
// BUY-priority on disagreement is intentional and load-bearing: the live
// strategy this engine replays was tuned with it, so it is kept exactly even
// though it is asymmetric.
func Combine(rsiSignal Signal, bollingerSignal Signal) Signal {
	if rsiSignal == bollingerSignal && rsiSignal != Hold {
		return rsiSignal
	}
	if rsiSignal == Buy || bollingerSignal == Buy {
		return Buy
	}
	if rsiSignal == Sell || bollingerSignal == Sell {
		return Sell
	}
	return Hold
}

// CombineStrict merges the two signals without the OR fallback: both must
// independently agree on BUY or on SELL. Used for the reserved hold asset,
// which only trades on full agreement.
func CombineStrict(rsiSignal Signal, bollingerSignal Signal) Signal {
	if rsiSignal == bollingerSignal && rsiSignal != Hold {
		return rsiSignal
	}
	return Hold
}
