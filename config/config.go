// Package config loads generation profiles from YAML.
//
// A profile carries the search parameters, the run policy and a list of
// filter specs:
//
//	period: 4
//	max_throw: 7
//	objects: 3
//	jugglers: 2
//	timeout: 30s
//	filters:
//	  - {type: number, value: "5", mode: at_least, threshold: 1}
//	  - {type: pattern, pattern: "5?", mode: exclude}
//
// Missing keys keep the values of Default. Unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/juggle/filter"
	"github.com/katalvlaran/juggle/search"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownFilter indicates a filter spec with an unsupported type.
	ErrUnknownFilter = errors.New("config: unknown filter type")
)

// Filter types accepted in FilterSpec.Type.
const (
	FilterNumber  = "number"
	FilterPattern = "pattern"
)

// Config is a generation profile.
type Config struct {
	Period   int `yaml:"period"`
	MaxThrow int `yaml:"max_throw"`
	MinThrow int `yaml:"min_throw"`
	Objects  int `yaml:"objects"`
	Jugglers int `yaml:"jugglers"`

	MaxResults int           `yaml:"max_results"` // 0 = unlimited
	Timeout    time.Duration `yaml:"timeout"`     // 0 = no deadline (random: default budget)
	Random     bool          `yaml:"random"`
	Seed       int64         `yaml:"seed"`

	// DefaultFilters prepends filter.Defaults for the juggler count.
	DefaultFilters bool         `yaml:"default_filters"`
	Filters        []FilterSpec `yaml:"filters,omitempty"`
}

// FilterSpec describes one filter. Number filters use Value, Mode
// (at_least, at_most, exactly) and Threshold; pattern filters use Pattern
// and Mode (include, exclude).
type FilterSpec struct {
	Type      string `yaml:"type"`
	Value     string `yaml:"value,omitempty"`
	Mode      string `yaml:"mode"`
	Threshold int    `yaml:"threshold,omitempty"`
	Pattern   string `yaml:"pattern,omitempty"`
}

// Default returns the three-ball profile for one juggler.
func Default() *Config {
	return &Config{
		Period:         3,
		MaxThrow:       5,
		MinThrow:       0,
		Objects:        3,
		Jugglers:       1,
		MaxResults:     0,
		Timeout:        search.DefaultTimeout,
		DefaultFilters: true,
	}
}

// Load reads and validates the profile at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default and validates the result. An empty
// document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the parameters and every filter spec.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("%w: max_results must be >= 0 (0 = unlimited), got %d", ErrInvalidConfig, c.MaxResults)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be >= 0 (0 = none), got %s", ErrInvalidConfig, c.Timeout)
	}
	if _, err := c.FilterList(); err != nil {
		return err
	}

	return nil
}

// Params returns the search parameters of c.
func (c *Config) Params() search.Params {
	return search.Params{
		Period:   c.Period,
		MaxThrow: c.MaxThrow,
		MinThrow: c.MinThrow,
		Objects:  c.Objects,
		Jugglers: c.Jugglers,
	}
}

// FilterList builds the filters of c: the defaults if enabled, then every
// spec in order. The result is never nil.
func (c *Config) FilterList() (filter.List, error) {
	list := filter.List{}
	if c.DefaultFilters {
		list = append(list, filter.Defaults(c.Jugglers)...)
	}
	for i, spec := range c.Filters {
		f, err := spec.build(c.Jugglers)
		if err != nil {
			return nil, fmt.Errorf("%w: filters[%d]: %w", ErrInvalidConfig, i, err)
		}
		list = append(list, f)
	}

	return list, nil
}

// Options translates c into generator options.
func (c *Config) Options() ([]search.Option, error) {
	list, err := c.FilterList()
	if err != nil {
		return nil, err
	}
	opts := []search.Option{
		search.WithFilters(list...),
		search.WithMaxResults(c.MaxResults),
		search.WithTimeout(c.Timeout),
	}
	if c.Random {
		opts = append(opts, search.WithRandom(c.Seed))
	}

	return opts, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (s FilterSpec) build(jugglers int) (filter.Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case FilterNumber:
		bound, err := filter.ParseBound(s.Mode)
		if err != nil {
			return nil, err
		}
		v, err := filter.ParseValue(s.Value)
		if err != nil {
			return nil, err
		}
		if s.Threshold < 0 {
			return nil, fmt.Errorf("%w: threshold %d < 0", filter.ErrInvalidFilter, s.Threshold)
		}
		return filter.NewNumberFilter(v, bound, s.Threshold), nil
	case FilterPattern:
		mode, err := filter.ParsePatternMode(s.Mode)
		if err != nil {
			return nil, err
		}
		f, err := filter.ParsePattern(s.Pattern, mode, jugglers)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, s.Type)
}
