package cmd

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// RunConfig is the full structure of a run's YAML config file. All
// top-level sections are listed explicitly so strict field checking
// (KnownFields) rejects typos rather than silently ignoring them.
type RunConfig struct {
	GraphSource    string  `yaml:"graph_source"`
	TSPLIBPath     string  `yaml:"tsplib_path"`
	NumNodes       int     `yaml:"num_nodes"`
	NumTrucks      int     `yaml:"num_trucks"`
	NumOrders      int     `yaml:"num_orders"`
	KNeighbors     int     `yaml:"k_neighbors"`
	HorizonMinutes float64 `yaml:"horizon_minutes"`
	Seed           int64   `yaml:"seed"`
	DispatchPolicy string  `yaml:"dispatch_policy"`
	LogLevel       string  `yaml:"log_level"`
	ReportCSVPath  string  `yaml:"report_csv_path"`

	// RestThresholdMinutes/RestDurationMinutes override the reference
	// rest-enforcement constants when non-zero.
	RestThresholdMinutes float64 `yaml:"rest_threshold_minutes"`
	RestDurationMinutes  float64 `yaml:"rest_duration_minutes"`
}

// DefaultRunConfig returns the out-of-the-box run configuration used
// when no --config file is supplied.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		GraphSource:    "random",
		NumNodes:       15,
		NumTrucks:      5,
		NumOrders:      20,
		KNeighbors:     3,
		HorizonMinutes: 1440,
		Seed:           1,
		DispatchPolicy: "first-idle",
		LogLevel:       "warn",
	}
}

// loadRunConfig parses a YAML config file into a RunConfig, using
// strict field checking so an unrecognized key is a load error rather
// than a silently ignored typo.
func loadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, err
	}
	cfg := DefaultRunConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		logrus.Errorf("failed to parse run config %s: %v", path, err)
		return RunConfig{}, err
	}
	return cfg, nil
}
