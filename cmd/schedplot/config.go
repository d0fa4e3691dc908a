package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/sched/schedule"
)

// Config describes a schedule to trace. It can be populated from flags or
// loaded from a YAML file; zero-valued fields fall back to the scheduler
// defaults.
type Config struct {
	Policy string `yaml:"policy"` // "onecycle" or "cosine"

	// One-cycle parameters.
	MaxLR          float64 `yaml:"max_lr"`
	TotalSteps     int     `yaml:"total_steps"`
	DivFactor      float64 `yaml:"div_factor"`
	FinalDivFactor float64 `yaml:"final_div_factor"`
	PctStart       float64 `yaml:"pct_start"`
	Anneal         string  `yaml:"anneal"` // "cos" or "linear"
	MaxMomentum    float64 `yaml:"max_momentum"`
	MinMomentum    float64 `yaml:"min_momentum"`

	// Cosine annealing parameters.
	BaseLR      float64 `yaml:"base_lr"`
	MinLR       float64 `yaml:"min_lr"`
	PeriodSteps int     `yaml:"period_steps"`
	Restarts    bool    `yaml:"restarts"`

	// Steps overrides the trace length; defaults to the schedule length
	// (useful with restarts, where the schedule is unbounded).
	Steps int `yaml:"steps"`
}

// loadConfig reads a schedule description from a YAML file.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}

// build constructs the scheduler the config describes.
func (c Config) build() (schedule.Scheduler, error) {
	switch c.Policy {
	case "onecycle", "":
		anneal := schedule.AnnealCos
		switch c.Anneal {
		case "", "cos":
		case "linear":
			anneal = schedule.AnnealLinear
		default:
			return nil, fmt.Errorf("unknown anneal strategy %q (want cos or linear)", c.Anneal)
		}
		return schedule.NewOneCycle(schedule.OneCycleConfig{
			MaxLR:          c.MaxLR,
			TotalSteps:     c.TotalSteps,
			DivFactor:      c.DivFactor,
			FinalDivFactor: c.FinalDivFactor,
			PctStart:       c.PctStart,
			Anneal:         anneal,
			MaxMomentum:    c.MaxMomentum,
			MinMomentum:    c.MinMomentum,
		})
	case "cosine":
		return schedule.NewCosineAnnealing(schedule.CosineAnnealingConfig{
			BaseLR:      c.BaseLR,
			MinLR:       c.MinLR,
			PeriodSteps: c.PeriodSteps,
			Restarts:    c.Restarts,
		})
	default:
		return nil, fmt.Errorf("unknown policy %q (want onecycle or cosine)", c.Policy)
	}
}

// traceSteps returns how many steps to trace.
func (c Config) traceSteps() int {
	if c.Steps > 0 {
		return c.Steps
	}
	if c.Policy == "cosine" {
		return c.PeriodSteps
	}
	return c.TotalSteps
}
