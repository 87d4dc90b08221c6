package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type SimulationConfig interface {
	Trials() int
	Slot() string
	Workers() int
	Seed() int64
	MaxTrials() int
	Normalize() bool
	Mark() byte
	ChartPath() string
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() string
}
