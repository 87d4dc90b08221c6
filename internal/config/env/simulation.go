package env

import (
	"errors"
	"fmt"
	"os"

	"plinko_backend/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	defaultTrials    = 10000
	defaultSlot      = "E"
	defaultWorkers   = 1
	defaultMaxTrials = 1000000
	defaultMark      = "P"
	defaultChartPath = "plinko.html"
)

type simulationFile struct {
	Simulation simulationYAML `yaml:"simulation"`
}

type simulationYAML struct {
	Trials    int    `yaml:"trials"`
	Slot      string `yaml:"slot"`
	Workers   int    `yaml:"workers"`
	Seed      int64  `yaml:"seed"`
	MaxTrials int    `yaml:"max_trials"`
	Normalize bool   `yaml:"normalize"`
	Mark      string `yaml:"mark"`
	ChartPath string `yaml:"chart_path"`
}

type simulationConfig struct {
	trials    int
	slot      string
	workers   int
	seed      int64
	maxTrials int
	normalize bool
	mark      byte
	chartPath string
}

// NewSimulationConfigFromYAML читает секцию simulation из yaml.
// Если файла нет, возвращаются значения по умолчанию.
func NewSimulationConfigFromYAML(path string) (config.SimulationConfig, error) {
	raw := simulationFile{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return newSimulationConfig(raw.Simulation)
}

func newSimulationConfig(s simulationYAML) (config.SimulationConfig, error) {
	if s.Trials == 0 {
		s.Trials = defaultTrials
	}
	if s.Slot == "" {
		s.Slot = defaultSlot
	}
	if s.Workers == 0 {
		s.Workers = defaultWorkers
	}
	if s.MaxTrials == 0 {
		s.MaxTrials = defaultMaxTrials
	}
	if s.Mark == "" {
		s.Mark = defaultMark
	}
	if s.ChartPath == "" {
		s.ChartPath = defaultChartPath
	}

	if s.Trials < 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", s.Trials)
	}
	if s.Workers < 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", s.Workers)
	}
	if s.MaxTrials < 0 {
		return nil, fmt.Errorf("max_trials must be positive, got %d", s.MaxTrials)
	}
	if s.Trials > s.MaxTrials {
		return nil, fmt.Errorf("trials (%d) exceed max_trials (%d)", s.Trials, s.MaxTrials)
	}
	if len(s.Mark) != 1 {
		return nil, fmt.Errorf("mark must be a single character, got %q", s.Mark)
	}

	return &simulationConfig{
		trials:    s.Trials,
		slot:      s.Slot,
		workers:   s.Workers,
		seed:      s.Seed,
		maxTrials: s.MaxTrials,
		normalize: s.Normalize,
		mark:      s.Mark[0],
		chartPath: s.ChartPath,
	}, nil
}

func (cfg *simulationConfig) Trials() int {
	return cfg.trials
}

func (cfg *simulationConfig) Slot() string {
	return cfg.slot
}

func (cfg *simulationConfig) Workers() int {
	return cfg.workers
}

func (cfg *simulationConfig) Seed() int64 {
	return cfg.seed
}

func (cfg *simulationConfig) MaxTrials() int {
	return cfg.maxTrials
}

func (cfg *simulationConfig) Normalize() bool {
	return cfg.normalize
}

func (cfg *simulationConfig) Mark() byte {
	return cfg.mark
}

func (cfg *simulationConfig) ChartPath() string {
	return cfg.chartPath
}
