package models

// RateConfig holds the default hourly rates suggested for new sessions.
// Saved sessions keep their own captured rate, so changing these never
// alters past earnings.
type RateConfig struct {
	Morning float64 `json:"morning" yaml:"morning"`
	Evening float64 `json:"evening" yaml:"evening"`
	Default float64 `json:"default" yaml:"default"`
}

// Default rates used when a user has no rate document yet
const (
	DefaultMorningRate = 150
	DefaultEveningRate = 200
	DefaultCustomRate  = 150
)

// DefaultRateConfig returns the rates a new user starts with
func DefaultRateConfig() *RateConfig {
	return &RateConfig{
		Morning: DefaultMorningRate,
		Evening: DefaultEveningRate,
		Default: DefaultCustomRate,
	}
}
