// Package planner implements the greedy repair prioritization and the
// phase bucketing that turn a damaged network into an ordered plan.
package planner

// Config defines the planning parameters.
type Config struct {
	// CrewSize is the number of workers assigned per segment, clamped to 1..4.
	CrewSize int `yaml:"crew_size"`
	// Phase1Fraction is the share of total difficulty allocated to phase 1.
	Phase1Fraction float64 `yaml:"phase1_fraction"`
	// Phase2Fraction and Phase3Fraction each take a further share; the
	// remainder falls to phase 4.
	Phase2Fraction float64 `yaml:"phase2_fraction"`
	Phase3Fraction float64 `yaml:"phase3_fraction"`
	// GeneratorAutonomyH is how long a hospital's backup generator holds.
	GeneratorAutonomyH float64 `yaml:"generator_autonomy_h"`
	// SafetyMargin is the fraction of autonomy that must remain unused.
	SafetyMargin float64 `yaml:"safety_margin"`
}

// DefaultConfig returns the default planning configuration.
func DefaultConfig() *Config {
	return &Config{
		CrewSize:           4,
		Phase1Fraction:     0.40,
		Phase2Fraction:     0.20,
		Phase3Fraction:     0.20,
		GeneratorAutonomyH: 20.0,
		SafetyMargin:       0.20,
	}
}

// EffectiveCrew clamps the configured crew size to the 1..4 cap.
func (c *Config) EffectiveCrew() int {
	crew := c.CrewSize
	if crew < 1 {
		crew = 1
	}
	if crew > 4 {
		crew = 4
	}
	return crew
}

// SafetyCeilingH is the longest repair a hospital can tolerate while
// keeping the required generator margin.
func (c *Config) SafetyCeilingH() float64 {
	return c.GeneratorAutonomyH * (1 - c.SafetyMargin)
}
