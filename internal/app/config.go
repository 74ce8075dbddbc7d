package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the optional per-project settings file name.
const SettingsFile = ".reli.yaml"

// Settings controls which interval statistics an analysis computes.
// Zero config by default: every field has a sensible default and the
// settings file is optional.
type Settings struct {
	Quantile   float64 `yaml:"quantile"`   // quantile to bracket
	Confidence float64 `yaml:"confidence"` // confidence for brackets
	Fraction   float64 `yaml:"fraction"`   // middle fraction for the tolerance band
	Assurance  float64 `yaml:"assurance"`  // level for the self-consistent band
	Tol        float64 `yaml:"tol"`        // root-finding accuracy
}

// DefaultSettings are used wherever the settings file is absent or silent.
func DefaultSettings() Settings {
	return Settings{
		Quantile:   0.5,
		Confidence: 0.95,
		Fraction:   0.8,
		Assurance:  0.8,
		Tol:        0.001,
	}
}

// LoadSettings reads Settings from path, filling unset fields with defaults.
// A missing file is not an error; a malformed one is.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}

	d := DefaultSettings()
	if s.Quantile == 0 {
		s.Quantile = d.Quantile
	}
	if s.Confidence == 0 {
		s.Confidence = d.Confidence
	}
	if s.Fraction == 0 {
		s.Fraction = d.Fraction
	}
	if s.Assurance == 0 {
		s.Assurance = d.Assurance
	}
	if s.Tol == 0 {
		s.Tol = d.Tol
	}
	return s, nil
}
