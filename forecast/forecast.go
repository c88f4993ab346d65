// Package forecast estimates the probability of hitting a profit target
// over a future period, given a history of realized trade P&L. It is a
// deterministic function of its inputs and always answers: every failure
// path degrades to a neutral estimate whose Status says why, instead of an
// error or a silently substituted default.
package forecast

import (
	"fmt"
	"math"
	"sort"
	"time"

	gaussian "github.com/chobie/go-gaussian"
	"gonum.org/v1/gonum/stat"

	"github.com/altanalabs/vectra/utils"
)

// Period is the aggregation granularity for per-period returns.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Status distinguishes a legitimately neutral answer from one substituted
// because the computation could not run.
type Status string

const (
	StatusOK                  Status = "ok"
	StatusInsufficientData    Status = "insufficient_data"
	StatusInsufficientPeriods Status = "insufficient_periods"
	StatusError               Status = "error"
)

// TradeRecord is the minimal trade shape the estimator needs. Backtest
// ledgers and live fills both reduce to it.
type TradeRecord struct {
	Timestamp time.Time `csv:"timestamp" db:"timestamp" json:"timestamp"`
	Profit    float64   `csv:"profit" db:"profit" json:"profit"`
}

// Config carries the estimator tunables. Zero values take the standard
// defaults via ApplyDefaults.
type Config struct {
	MinSamples          int     `json:"min_samples"`           // below this, no statistics are computed
	ReferenceSamples    int     `json:"reference_samples"`     // full-confidence trade count
	TradingDaysPerMonth float64 `json:"trading_days_per_month"`
	PeriodsPerYear      float64 `json:"periods_per_year"` // annualization constant for the Sharpe metric
	MinDailyPeriods     int     `json:"min_daily_periods"`
	MinWeeklyPeriods    int     `json:"min_weekly_periods"`
	MinMonthlyPeriods   int     `json:"min_monthly_periods"`
}

func (c *Config) ApplyDefaults() {
	if c.MinSamples == 0 {
		c.MinSamples = 30
	}
	if c.ReferenceSamples == 0 {
		c.ReferenceSamples = 100
	}
	if c.TradingDaysPerMonth == 0 {
		c.TradingDaysPerMonth = 22
	}
	if c.PeriodsPerYear == 0 {
		c.PeriodsPerYear = 252
	}
	if c.MinDailyPeriods == 0 {
		c.MinDailyPeriods = 5
	}
	if c.MinWeeklyPeriods == 0 {
		c.MinWeeklyPeriods = 4
	}
	if c.MinMonthlyPeriods == 0 {
		c.MinMonthlyPeriods = 3
	}
}

// Estimate is the derived probability value. It has no persisted identity.
type Estimate struct {
	Probability      float64 `json:"probability"` // clipped to [0.01, 0.99]
	Confidence       float64 `json:"confidence"`  // clipped to [0.1, 1.0]
	ConfidenceLabel  string  `json:"confidence_label"`
	Status           Status  `json:"status"`
	Err              string  `json:"err,omitempty"` // only set with StatusError
	Target           float64 `json:"target"`
	Period           Period  `json:"period"`
	Mean             float64 `json:"mean"`    // per-period mean return
	StdDev           float64 `json:"std_dev"` // per-period population stddev
	Periods          int     `json:"periods"` // aggregated periods used
	Samples          int     `json:"samples"` // raw trade records seen
	Scaled           bool    `json:"scaled"`  // monthly stats derived from scaled daily stats
	BaseProbability  float64 `json:"base_probability"`
	TrendFactor      float64 `json:"trend_factor"`
	VolatilityFactor float64 `json:"volatility_factor"`
	Recommendation   string  `json:"recommendation"`
}

// Estimator computes goal probabilities. Stateless across calls.
type Estimator struct {
	config Config
	norm   *gaussian.Gaussian
}

// NewEstimator applies defaults and returns a ready estimator.
func NewEstimator(config Config) *Estimator {
	config.ApplyDefaults()
	return &Estimator{
		config: config,
		norm:   gaussian.NewGaussian(0, 1),
	}
}

// Config returns the estimator's configuration snapshot.
func (e *Estimator) Config() Config {
	return e.config
}

// Estimate computes the adjusted probability that the summed P&L of one
// future period meets or exceeds target. It never panics outward: any
// internal failure produces a neutral estimate with StatusError.
func (e *Estimator) Estimate(trades []TradeRecord, target float64, period Period) (est Estimate) {
	est = e.neutral(trades, target, period)

	defer func() {
		if r := recover(); r != nil {
			est = e.neutral(trades, target, period)
			est.Status = StatusError
			est.Err = fmt.Sprint(r)
			est.Recommendation = "Estimate unavailable: internal computation failed."
		}
	}()

	if len(trades) < e.config.MinSamples {
		est.Status = StatusInsufficientData
		est.ConfidenceLabel = "low"
		est.Recommendation = fmt.Sprintf("Need at least %d trades for an estimate, have %d.",
			e.config.MinSamples, len(trades))
		return est
	}

	returns := groupReturns(trades, period)
	est.Periods = len(returns)

	switch period {
	case PeriodDay:
		if len(returns) < e.config.MinDailyPeriods {
			return e.insufficientPeriods(est, e.config.MinDailyPeriods)
		}
	case PeriodWeek:
		if len(returns) < e.config.MinWeeklyPeriods {
			return e.insufficientPeriods(est, e.config.MinWeeklyPeriods)
		}
	case PeriodMonth:
		if len(returns) < e.config.MinMonthlyPeriods {
			// Too few whole months: scale daily statistics up instead,
			// assuming independence across trading days.
			daily := groupReturns(trades, PeriodDay)
			if len(daily) < e.config.MinDailyPeriods {
				return e.insufficientPeriods(est, e.config.MinDailyPeriods)
			}
			returns = daily
			est.Periods = len(daily)
			est.Scaled = true
		}
	default:
		est.Status = StatusError
		est.Err = fmt.Sprintf("unknown period %q", period)
		est.Recommendation = "Estimate unavailable: unknown aggregation period."
		return est
	}

	mean := stat.Mean(returns, nil)
	std := stat.PopStdDev(returns, nil)
	if est.Scaled {
		mean *= e.config.TradingDaysPerMonth
		std *= math.Sqrt(e.config.TradingDaysPerMonth)
	}
	est.Mean = mean
	est.StdDev = std

	est.BaseProbability = e.baseProbability(mean, std, target)
	est.TrendFactor = trendFactor(returns)
	est.VolatilityFactor = volatilityFactor(returns, mean, std, target)
	est.Probability = utils.Clip(est.BaseProbability*est.TrendFactor*est.VolatilityFactor, 0.01, 0.99)

	est.Confidence = e.confidenceScore(len(trades), mean, std)
	est.ConfidenceLabel = confidenceLabel(est.Confidence)
	est.Status = StatusOK
	est.Recommendation = recommend(est)
	return est
}

// baseProbability is P(X >= target) under a normal approximation. Zero
// variance resolves to a deterministic 0/1 by explicit branch, never a
// division by zero.
func (e *Estimator) baseProbability(mean float64, std float64, target float64) float64 {
	if std == 0 {
		if mean >= target {
			return 1.0
		}
		return 0.0
	}
	return 1 - e.norm.Cdf((target-mean)/std)
}

// trendFactor fits an OLS line through the per-period returns and rewards
// (or penalizes) a slope relative to the mean. Neutral below 5 periods.
func trendFactor(returns []float64) float64 {
	if len(returns) < 5 {
		return 1.0
	}
	mean := stat.Mean(returns, nil)
	if mean == 0 {
		return 1.0
	}
	xs := make([]float64, len(returns))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, returns, nil, false)
	raw := utils.Clip(slope/mean, -0.3, 0.3)
	return utils.Clip(1+raw, 0.5, 1.5)
}

// volatilityFactor adjusts by the coefficient of variation: low relative
// volatility reinforces an already-met target, high volatility is credited
// as upside optionality when below target. Neutral below 3 periods or on
// degenerate statistics. The regime switch at mean == target makes the
// factor discontinuous there (1/(1+cv) on one side, 1+cv/2 on the other),
// so the adjusted probability is monotone in the target only within a
// regime, not across the crossing.
func volatilityFactor(returns []float64, mean float64, std float64, target float64) float64 {
	if len(returns) < 3 || mean == 0 || std == 0 {
		return 1.0
	}
	cv := std / math.Abs(mean)
	if mean >= target {
		return utils.Clip(1/(1+cv), 0.5, 1.5)
	}
	return utils.Clip(1+cv*0.5, 0.5, 1.5)
}

// confidenceScore blends sample adequacy, total volume against a reference
// count, and a consistency term.
func (e *Estimator) confidenceScore(samples int, mean float64, std float64) float64 {
	adequacy := math.Min(1, float64(samples)/float64(e.config.MinSamples))
	volume := math.Min(1, float64(samples)/float64(e.config.ReferenceSamples))
	consistency := 1 / (1 + std/math.Max(math.Abs(mean), 1))
	return utils.Clip((adequacy+volume+consistency)/3, 0.1, 1.0)
}

func confidenceLabel(score float64) string {
	switch {
	case score >= 0.8:
		return "high"
	case score >= 0.6:
		return "medium"
	case score >= 0.4:
		return "low"
	default:
		return "very_low"
	}
}

func recommend(est Estimate) string {
	switch {
	case est.Probability >= 0.7:
		return fmt.Sprintf("Target looks achievable: %.0f%% chance per %s at %s confidence.",
			est.Probability*100, est.Period, est.ConfidenceLabel)
	case est.Probability >= 0.4:
		return fmt.Sprintf("Target is within reach but not likely: %.0f%% chance per %s. Consider a lower target or larger sample.",
			est.Probability*100, est.Period)
	default:
		return fmt.Sprintf("Target is unlikely at %.0f%% per %s. Lower the target or revisit the strategy.",
			est.Probability*100, est.Period)
	}
}

func (e *Estimator) neutral(trades []TradeRecord, target float64, period Period) Estimate {
	return Estimate{
		Probability:      0.5,
		Confidence:       0.1,
		ConfidenceLabel:  "low",
		Status:           StatusInsufficientData,
		Target:           target,
		Period:           period,
		Samples:          len(trades),
		BaseProbability:  0.5,
		TrendFactor:      1.0,
		VolatilityFactor: 1.0,
	}
}

func (e *Estimator) insufficientPeriods(est Estimate, floor int) Estimate {
	est.Status = StatusInsufficientPeriods
	est.Probability = 0.5
	est.BaseProbability = 0.5
	est.TrendFactor = 1.0
	est.VolatilityFactor = 1.0
	est.Confidence = 0.1
	est.ConfidenceLabel = "low"
	est.Recommendation = fmt.Sprintf("Need at least %d aggregated %s periods, have %d.",
		floor, est.Period, est.Periods)
	return est
}

// groupReturns sums trade P&L per period and returns the per-period values
// in chronological order.
func groupReturns(trades []TradeRecord, period Period) []float64 {
	sums := make(map[string]float64)
	for _, trade := range trades {
		sums[periodKey(trade.Timestamp, period)] += trade.Profit
	}
	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	returns := make([]float64, len(keys))
	for i, key := range keys {
		returns[i] = sums[key]
	}
	return returns
}

// periodKey buckets a timestamp by calendar date, ISO week, or calendar
// month. Keys sort chronologically as strings.
func periodKey(t time.Time, period Period) string {
	t = t.UTC()
	switch period {
	case PeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}
