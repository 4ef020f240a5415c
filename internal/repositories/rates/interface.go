package rates

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tutortrack/internal/repositories/rates Repository

import (
	"context"
)

// Repository defines the interface for a user's rate configuration document
type Repository interface {
	// GetRates retrieves the rate configuration, creating it with the default
	// rates when the user has none yet
	GetRates(ctx context.Context, input *GetRatesInput) (*GetRatesOutput, error)

	// SaveRates replaces the whole rate configuration
	SaveRates(ctx context.Context, input *SaveRatesInput) error
}
