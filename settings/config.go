// Package settings loads the application-level configuration file tying the
// engine, estimator, and data source together.
package settings

import (
	"encoding/json"
	"io/ioutil"

	"github.com/altanalabs/vectra/forecast"
	"github.com/altanalabs/vectra/models"
	"github.com/altanalabs/vectra/utils"
)

// Config is the full runtime configuration. Backtest and Forecast carry
// every business constant explicitly; nothing is compiled in.
type Config struct {
	Name     string                `json:"name"`
	LogLevel string                `json:"log_level"`
	Backtest models.BacktestConfig `json:"backtest"`
	Forecast forecast.Config       `json:"forecast"`
	Interval string                `json:"interval"`   // candle interval the data source serves
	CSVFile  string                `json:"csv_file"`   // optional file-based candle source
	Publish  bool                  `json:"publish"`    // publish results to influx
	SecretID string                `json:"secret_id"`  // optional AWS secret with DB credentials
	Region   string                `json:"aws_region"` // region for the secret lookup
}

// Load reads a JSON config file, applies defaults, and validates the
// backtest section.
func Load(fileName string) (Config, error) {
	var config Config
	file, err := ioutil.ReadFile(fileName)
	if err != nil {
		return config, err
	}
	if err := json.Unmarshal(file, &config); err != nil {
		return config, err
	}
	config.Backtest.ApplyDefaults()
	config.Forecast.ApplyDefaults()
	return config, config.Backtest.Validate()
}

// LoadSecrets resolves the optional AWS secret into environment variables,
// where the database and reporting layers pick them up. A config without a
// secret id is a no-op.
func (c Config) LoadSecrets() error {
	if c.SecretID == "" {
		return nil
	}
	return utils.LoadENV(c.SecretID, c.Region)
}
