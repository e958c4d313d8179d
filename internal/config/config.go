// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/joshuaphillips-collab/mortgage-compare/internal/compare"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/constants"
	"github.com/joshuaphillips-collab/mortgage-compare/pkg/quote"
)

// Configuration holds one comparison session: the quotes to compare plus
// the knobs controlling scoring and output.
type Configuration struct {
	HorizonYears int            `yaml:"horizonYears,omitempty"`
	Priority     string         `yaml:"priority,omitempty"`
	Weights      *WeightsConfig `yaml:"weights,omitempty"`
	Quotes       []quote.Quote  `yaml:"quotes"`
	Logging      LoggingConfig  `yaml:"logging,omitempty"`
	Output       OutputConfig   `yaml:"output,omitempty"`
	Server       ServerConfig   `yaml:"server,omitempty"`
}

// WeightsConfig holds explicit dimension weights. When present it overrides
// the named priority preset.
type WeightsConfig struct {
	Cost       float64 `yaml:"cost"`
	Payment    float64 `yaml:"payment"`
	Cash       float64 `yaml:"cash"`
	Reputation float64 `yaml:"reputation"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the HTTP API options used in serve mode.
type ServerConfig struct {
	Address   string `yaml:"address,omitempty"`
	RedisAddr string `yaml:"redisAddr,omitempty"`
}

// priorityPresets maps the named borrower priorities to dimension weights.
var priorityPresets = map[string]compare.Weights{
	"balanced":       {Cost: 5, Payment: 3, Cash: 3, Reputation: 4},
	"lowest_cost":    {Cost: 10, Payment: 0, Cash: 0, Reputation: 2},
	"lowest_payment": {Cost: 2, Payment: 10, Cash: 0, Reputation: 2},
	"least_cash":     {Cost: 2, Payment: 2, Cash: 10, Reputation: 2},
	"trust":          {Cost: 2, Payment: 2, Cash: 2, Reputation: 10},
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from any
// reader. Used by the HTTP API and tests.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// HorizonOrDefault returns the configured comparison horizon, falling back
// to the standard default when unset.
func (conf *Configuration) HorizonOrDefault() int {
	if conf.HorizonYears > 0 {
		return conf.HorizonYears
	}
	return constants.DefaultHorizonYears
}

// ResolveWeights determines the scoring weights for this session. Explicit
// weights win over a named priority preset, which wins over the balanced
// default. An unknown priority name falls back to the default; callers learn
// about it through ValidateConfiguration.
func (conf *Configuration) ResolveWeights() compare.Weights {
	if conf.Weights != nil {
		return compare.Weights{
			Cost:       conf.Weights.Cost,
			Payment:    conf.Weights.Payment,
			Cash:       conf.Weights.Cash,
			Reputation: conf.Weights.Reputation,
		}
	}
	if preset, ok := priorityPresets[strings.ToLower(conf.Priority)]; ok {
		return preset
	}
	return compare.DefaultWeights()
}

// PriorityNames returns the known priority preset names.
func PriorityNames() []string {
	names := make([]string, 0, len(priorityPresets))
	for name := range priorityPresets {
		names = append(names, name)
	}
	return names
}

// ValidateConfiguration checks the configuration for conditions that will
// not stop a run but likely indicate a mistake, and returns one warning
// message per finding.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Quotes) == 0 {
		warnings = append(warnings, "no quotes configured; nothing to compare")
	}
	if len(conf.Quotes) > constants.MaxQuotes {
		warnings = append(warnings, fmt.Sprintf("%d quotes configured; only the first %d are typically comparable side by side", len(conf.Quotes), constants.MaxQuotes))
	}

	valid := 0
	for _, q := range conf.Quotes {
		if q.Valid() {
			valid++
		}
	}
	if len(conf.Quotes) > 0 && valid < constants.MinQuotesForComparison {
		warnings = append(warnings, fmt.Sprintf("only %d quote(s) have both a loan amount and a rate; comparison needs at least %d", valid, constants.MinQuotesForComparison))
	}

	if conf.Priority != "" {
		if _, ok := priorityPresets[strings.ToLower(conf.Priority)]; !ok {
			warnings = append(warnings, fmt.Sprintf("unknown priority %q; using balanced weights", conf.Priority))
		}
	}
	if conf.Weights != nil {
		w := conf.ResolveWeights()
		if w.Cost < 0 || w.Payment < 0 || w.Cash < 0 || w.Reputation < 0 {
			warnings = append(warnings, "weights must not be negative")
		} else if w.Total() == 0 {
			warnings = append(warnings, "all weights are zero; every quote will score neutrally")
		}
	}
	if conf.HorizonYears < 0 {
		warnings = append(warnings, fmt.Sprintf("horizonYears must not be negative; using %d", constants.DefaultHorizonYears))
	}

	return warnings
}
