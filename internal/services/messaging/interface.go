package messaging

import "context"

// Service turns results and failures into the sentences shown to the user
type Service interface {
	// GetErrorMessage returns a user-friendly explanation of a failed operation
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetSavedMessage returns the confirmation shown after a session is saved
	GetSavedMessage(ctx context.Context, input *GetSavedMessageInput) (*GetSavedMessageOutput, error)
}
