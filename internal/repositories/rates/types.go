package rates

import "github.com/KirkDiggler/tutortrack/internal/models"

// GetRatesInput contains parameters for retrieving the rate configuration
type GetRatesInput struct {
	UserID string
}

// GetRatesOutput contains the rate configuration
type GetRatesOutput struct {
	Rates *models.RateConfig

	// Created is true when this call wrote the default document
	Created bool
}

// SaveRatesInput contains parameters for saving the rate configuration
type SaveRatesInput struct {
	UserID string
	Rates  *models.RateConfig
}
