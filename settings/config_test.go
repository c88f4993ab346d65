package settings

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "vectra-settings")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "settings.json")
	body := []byte(`{
		"name": "eth-hourly",
		"log_level": "debug",
		"interval": "1h",
		"backtest": {"pair": "ETH/ZAR", "initial_capital": 10000},
		"forecast": {"min_samples": 50}
	}`)
	if err := ioutil.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatal("load failed:", err)
	}
	if config.Name != "eth-hourly" || config.Interval != "1h" {
		t.Error("top-level fields not loaded:", config.Name, config.Interval)
	}
	if config.Backtest.Pair != "ETH/ZAR" || config.Backtest.InitialCapital != 10000 {
		t.Error("backtest section not loaded")
	}
	if config.Backtest.RSIPeriod != 14 {
		t.Error("backtest defaults not applied, got", config.Backtest.RSIPeriod)
	}
	if config.Forecast.MinSamples != 50 {
		t.Error("explicit forecast value overridden:", config.Forecast.MinSamples)
	}
	if config.Forecast.ReferenceSamples != 100 {
		t.Error("forecast defaults not applied:", config.Forecast.ReferenceSamples)
	}
}

func TestLoadSecretsWithoutSecretID(t *testing.T) {
	var config Config
	if err := config.LoadSecrets(); err != nil {
		t.Error("no secret id should be a no-op, got", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.json"); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoadInvalidBacktest(t *testing.T) {
	dir, err := ioutil.TempDir("", "vectra-settings")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "settings.json")
	body := []byte(`{"backtest": {"initial_capital": -5}}`)
	if err := ioutil.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid backtest section should fail load")
	}
}
