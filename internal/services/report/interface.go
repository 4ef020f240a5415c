package report

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/tutortrack/internal/services/report Service

// Service renders reports for sharing and printing
type Service interface {
	// ShareText returns the plain text summary pasted into chats and emails
	ShareText(ctx context.Context, input *ShareTextInput) (*ShareTextOutput, error)

	// PrintView returns the grouped, formatted view behind the printable summary
	PrintView(ctx context.Context, input *PrintViewInput) (*PrintViewOutput, error)
}
