package cli

import (
	"context"
	"log"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/common/clock"
	"github.com/KirkDiggler/tutortrack/internal/services/live"
	"github.com/KirkDiggler/tutortrack/internal/services/messaging"
	"github.com/KirkDiggler/tutortrack/internal/services/report"
	"github.com/KirkDiggler/tutortrack/internal/services/tracker"
	"github.com/spf13/cobra"
)

// Subscriber starts a live change feed for one user
type Subscriber interface {
	Subscribe(ctx context.Context, userID string, listener live.Listener) (*live.Subscription, error)
}

// Runner is a long-running presentation layer such as the Discord bot
type Runner interface {
	Start() error
	Stop() error
}

// App holds references to the services used by CLI commands
type App struct {
	Tracker   tracker.Service
	Report    report.Service
	Messaging messaging.Service

	// Feed and Clock back the watch command
	Feed  Subscriber
	Clock clock.Clock

	// Money formats amounts; defaults to rupees
	Money *accounting.MoneyFormatter

	// UserID scopes every read and write
	UserID string

	// NewBot builds the Discord bot on demand so its credentials are only
	// required by the bot command
	NewBot func() (Runner, error)
}

// NewRootCmd creates the top-level "tutortrack" command and registers all
// subcommands against the provided App
func NewRootCmd(app *App) *cobra.Command {
	if app.Money == nil {
		app.Money = accounting.NewMoneyFormatter(accounting.DefaultCurrencySymbol, accounting.DefaultLocale)
	}

	root := &cobra.Command{
		Use:           "tutortrack",
		Short:         "Track tutoring sessions and earnings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID, "User whose sessions to use")

	root.AddCommand(
		newLogCmd(app),
		newEditCmd(app),
		newHistoryCmd(app),
		newDuplicateCmd(app),
		newDeleteCmd(app),
		newStatsCmd(app),
		newWatchCmd(app),
		newReportCmd(app),
		newRatesCmd(app),
		newBotCmd(app),
	)

	return root
}

// explain replaces a service error with the user-facing message, keeping the
// original in the chain
func (app *App) explain(ctx context.Context, err error) error {
	if err == nil || app.Messaging == nil {
		return err
	}

	msg, msgErr := app.Messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		log.Printf("Error getting error message: %v", msgErr)
		return err
	}

	if msg.Kind == messaging.ErrorKindUnavailable {
		log.Printf("Error: %v", err)
	}

	return &displayError{msg: msg, err: err}
}

// displayError carries the friendly text for an error
type displayError struct {
	msg *messaging.GetErrorMessageOutput
	err error
}

func (e *displayError) Error() string {
	return e.msg.Title + ": " + e.msg.Message
}

func (e *displayError) Unwrap() error {
	return e.err
}

// Kind returns how the user can react to the error
func (e *displayError) Kind() messaging.ErrorKind {
	return e.msg.Kind
}
