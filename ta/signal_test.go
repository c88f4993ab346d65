package ta

import (
	"math"
	"testing"
)

func TestRSISignalPolicy(t *testing.T) {
	if s := RSISignal(25, 30, 70); s != Buy {
		t.Error("rsi 25 should be BUY, got", s)
	}
	if s := RSISignal(75, 30, 70); s != Sell {
		t.Error("rsi 75 should be SELL, got", s)
	}
	if s := RSISignal(50, 30, 70); s != Hold {
		t.Error("rsi 50 should be HOLD, got", s)
	}
	if s := RSISignal(30, 30, 70); s != Hold {
		t.Error("rsi exactly at the oversold bound should be HOLD, got", s)
	}
	if s := RSISignal(math.NaN(), 30, 70); s != Hold {
		t.Error("undefined rsi should be HOLD, got", s)
	}
}

func TestBollingerSignalPolicy(t *testing.T) {
	if s := BollingerSignal(9, 20, 10); s != Buy {
		t.Error("close below lower band should be BUY, got", s)
	}
	if s := BollingerSignal(10, 20, 10); s != Buy {
		t.Error("close at lower band should be BUY, got", s)
	}
	if s := BollingerSignal(21, 20, 10); s != Sell {
		t.Error("close above upper band should be SELL, got", s)
	}
	if s := BollingerSignal(15, 20, 10); s != Hold {
		t.Error("close between bands should be HOLD, got", s)
	}
	if s := BollingerSignal(15, math.NaN(), math.NaN()); s != Hold {
		t.Error("undefined bands should be HOLD, got", s)
	}
}

func TestCombineAgreement(t *testing.T) {
	if s := Combine(Buy, Buy); s != Buy {
		t.Error("agreeing BUY should be BUY, got", s)
	}
	if s := Combine(Sell, Sell); s != Sell {
		t.Error("agreeing SELL should be SELL, got", s)
	}
	if s := Combine(Hold, Hold); s != Hold {
		t.Error("agreeing HOLD should be HOLD, got", s)
	}
}

func TestCombineFallback(t *testing.T) {
	if s := Combine(Buy, Hold); s != Buy {
		t.Error("single BUY should pass through, got", s)
	}
	if s := Combine(Hold, Sell); s != Sell {
		t.Error("single SELL should pass through, got", s)
	}
}

// BUY wins over SELL on disagreement. Asymmetric but intentional, see the
// Combine doc comment.
func TestCombineTieBreak(t *testing.T) {
	if s := Combine(Buy, Sell); s != Buy {
		t.Error("BUY/SELL disagreement should resolve to BUY, got", s)
	}
	if s := Combine(Sell, Buy); s != Buy {
		t.Error("SELL/BUY disagreement should resolve to BUY, got", s)
	}
}

func TestCombineStrict(t *testing.T) {
	if s := CombineStrict(Buy, Buy); s != Buy {
		t.Error("strict agreeing BUY should be BUY, got", s)
	}
	if s := CombineStrict(Sell, Sell); s != Sell {
		t.Error("strict agreeing SELL should be SELL, got", s)
	}
	if s := CombineStrict(Buy, Hold); s != Hold {
		t.Error("strict single BUY should be HOLD, got", s)
	}
	if s := CombineStrict(Buy, Sell); s != Hold {
		t.Error("strict disagreement should be HOLD, got", s)
	}
}
