// Package optimize searches strategy parameters against backtest score.
// Each trial runs its own engine over the shared candle slice, which the
// engine never mutates, so trials parallelize without coordination.
package optimize

import (
	"context"
	"math/rand"
	"runtime"

	eaopt "github.com/MaxHalford/eaopt"
	"github.com/c-bata/goptuna"
	"github.com/c-bata/goptuna/tpe"
	"golang.org/x/sync/errgroup"

	vectra "github.com/altanalabs/vectra"
	"github.com/altanalabs/vectra/logger"
	"github.com/altanalabs/vectra/models"
	"github.com/altanalabs/vectra/utils"
)

// Best is the winning parameter set of a search.
type Best struct {
	Score           float64
	RSIOversold     float64
	RSIOverbought   float64
	BollingerPeriod int
	StopLossPercent float64
}

// score is the search objective: risk-adjusted when enough months exist,
// otherwise raw percentage return. Very negative on a failed run so broken
// parameter regions are abandoned.
func score(candles []models.Candle, config models.BacktestConfig) float64 {
	engine, err := vectra.NewEngine(config)
	if err != nil {
		return -100
	}
	result, err := engine.Run(candles)
	if err != nil {
		return -100
	}
	if result.SharpeRatio != 0 {
		return result.SharpeRatio
	}
	return result.TotalPercentage / 100
}

// Search runs a TPE study over the signal and stop parameters, maximizing
// the backtest score. Trials are fanned out across CPUs.
func Search(candles []models.Candle, base models.BacktestConfig, episodes int) (Best, error) {
	study, err := goptuna.CreateStudy(
		"vectra-search",
		goptuna.StudyOptionSampler(tpe.NewSampler()),
		goptuna.StudyOptionDirection(goptuna.StudyDirectionMaximize),
	)
	if err != nil {
		return Best{}, err
	}

	objective := func(trial goptuna.Trial) (float64, error) {
		oversold, err := trial.SuggestFloat("rsi_oversold", 10, 45)
		if err != nil {
			return 0, err
		}
		overbought, err := trial.SuggestFloat("rsi_overbought", 55, 90)
		if err != nil {
			return 0, err
		}
		bbPeriod, err := trial.SuggestInt("bollinger_period", 10, 40)
		if err != nil {
			return 0, err
		}
		stopPct, err := trial.SuggestFloat("stop_loss_percent", 0.01, 0.15)
		if err != nil {
			return 0, err
		}

		config := base
		config.RSIOversold = oversold
		config.RSIOverbought = overbought
		config.BollingerPeriod = bbPeriod
		config.StopLossPercent = stopPct
		return score(candles, config), nil
	}

	eg, ctx := errgroup.WithContext(context.Background())
	study.WithContext(ctx)
	workers := runtime.NumCPU()
	perWorker := episodes / workers
	if perWorker == 0 {
		perWorker = 1
	}
	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			return study.Optimize(objective, perWorker)
		})
	}
	if err := eg.Wait(); err != nil {
		return Best{}, err
	}

	v, err := study.GetBestValue()
	if err != nil {
		return Best{}, err
	}
	params, err := study.GetBestParams()
	if err != nil {
		return Best{}, err
	}
	logger.Infof("Best score %f with params %v\n", v, params)

	best := Best{Score: v}
	if f, ok := params["rsi_oversold"].(float64); ok {
		best.RSIOversold = f
	}
	if f, ok := params["rsi_overbought"].(float64); ok {
		best.RSIOverbought = f
	}
	if n, ok := params["bollinger_period"].(int); ok {
		best.BollingerPeriod = n
	}
	if f, ok := params["stop_loss_percent"].(float64); ok {
		best.StopLossPercent = f
	}
	return best, nil
}

// EASearch runs an evolutionary search over [oversold, overbought, stop]
// with a fixed seed so repeated searches over the same data agree.
func EASearch(candles []models.Candle, base models.BacktestConfig) (Best, error) {
	evaluate := func(x []float64) float64 {
		config := base
		config.RSIOversold = utils.Clip(x[0], 5, 50)
		config.RSIOverbought = utils.Clip(x[1], 50, 95)
		config.StopLossPercent = utils.ConstrainFloat(x[2], 0.01, 0.2, 4)
		return -score(candles, config)
	}

	oes, err := eaopt.NewOES(200, 30, 5, 0.05, false, nil)
	if err != nil {
		return Best{}, err
	}
	oes.GA.RNG = rand.New(rand.NewSource(42))

	x, y, err := oes.Minimize(evaluate, []float64{base.RSIOversold, base.RSIOverbought, base.StopLossPercent})
	if err != nil {
		return Best{}, err
	}
	logger.Infof("EA search minimum %.5f at %v\n", y, x)
	return Best{
		Score:           -y,
		RSIOversold:     utils.Clip(x[0], 5, 50),
		RSIOverbought:   utils.Clip(x[1], 50, 95),
		BollingerPeriod: base.BollingerPeriod,
		StopLossPercent: utils.ConstrainFloat(x[2], 0.01, 0.2, 4),
	}, nil
}
