package database

import (
	"os"

	"github.com/gocarina/gocsv"

	"github.com/altanalabs/vectra/forecast"
	"github.com/altanalabs/vectra/models"
)

// LoadCandlesCSV reads a candle series from a CSV file with columns
// timestamp,open,high,low,close,volume and validates it at the boundary.
func LoadCandlesCSV(csvFile string) ([]models.Candle, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	candles := []models.Candle{}
	if err := gocsv.UnmarshalFile(file, &candles); err != nil {
		return nil, err
	}
	models.SortCandles(candles)
	if err := models.ValidateCandles(candles); err != nil {
		return nil, err
	}
	return candles, nil
}

// LoadTradeRecordsCSV reads trade records (timestamp,profit) for the
// forecast estimator.
func LoadTradeRecordsCSV(csvFile string) ([]forecast.TradeRecord, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records := []forecast.TradeRecord{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// WriteHistoryCSV dumps the portfolio-value series of a result for
// inspection, replacing any previous dump.
func WriteHistoryCSV(result models.BacktestResult, csvFile string) error {
	os.Remove(csvFile)
	file, err := os.OpenFile(csvFile, os.O_RDWR|os.O_CREATE, os.ModePerm)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(&result.History, file)
}

// WriteTradesCSV dumps the trade ledger of a result.
func WriteTradesCSV(result models.BacktestResult, csvFile string) error {
	os.Remove(csvFile)
	file, err := os.OpenFile(csvFile, os.O_RDWR|os.O_CREATE, os.ModePerm)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(&result.Trades, file)
}
