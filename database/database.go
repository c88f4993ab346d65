// Package database loads candle series and trade records from postgres.
// Storage is a substitutable collaborator of the engine: anything that can
// produce ordered []models.Candle or []forecast.TradeRecord works in its
// place (see the CSV loaders in this package).
package database

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/altanalabs/vectra/forecast"
	"github.com/altanalabs/vectra/models"
)

// ConnInfo describes a postgres connection. Values default from the
// VECTRA_DB_* environment so credentials are never compiled in.
type ConnInfo struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ConnInfoFromEnv builds connection info from the environment, falling back
// to a local development database.
func ConnInfoFromEnv() ConnInfo {
	info := ConnInfo{
		Host:     envOr("VECTRA_DB_HOST", "localhost"),
		Port:     5432,
		User:     envOr("VECTRA_DB_USER", "vectra"),
		Password: os.Getenv("VECTRA_DB_PASSWORD"),
		DBName:   envOr("VECTRA_DB_NAME", "vectra"),
	}
	if port := os.Getenv("VECTRA_DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			info.Port = p
		}
	}
	return info
}

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func connect(info ConnInfo) (*sqlx.DB, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		info.Host, info.Port, info.User, info.Password, info.DBName)
	return sqlx.Connect("postgres", psqlInfo)
}

// GetCandlesByTime fetches candles for a pair and interval between two
// times, ordered by timestamp.
func GetCandlesByTime(info ConnInfo, pair string, interval string, startTime time.Time, endTime time.Time) ([]models.Candle, error) {
	db, err := connect(info)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	candles := []models.Candle{}
	err = db.Select(&candles,
		`select timestamp, open, high, low, close, volume from candles
		 where pair = $1 and interval = $2 and timestamp >= $3 and timestamp <= $4
		 order by timestamp asc`,
		pair, interval, startTime.Unix()*1000, endTime.Unix()*1000)
	if err != nil {
		return nil, err
	}
	models.SortCandles(candles)
	return candles, nil
}

// GetTradeRecords fetches the realized P&L history for a pair, ordered by
// time, in the shape the forecast estimator consumes.
func GetTradeRecords(info ConnInfo, pair string, startTime time.Time, endTime time.Time) ([]forecast.TradeRecord, error) {
	db, err := connect(info)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	records := []forecast.TradeRecord{}
	err = db.Select(&records,
		`select exit_time as timestamp, profit from trades
		 where pair = $1 and exit_time >= $2 and exit_time <= $3
		 order by exit_time asc`,
		pair, startTime, endTime)
	if err != nil {
		return nil, err
	}
	return records, nil
}
