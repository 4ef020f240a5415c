package cli

import (
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/KirkDiggler/tutortrack/internal/services/live"
	"github.com/KirkDiggler/tutortrack/internal/services/tracker"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"dashboard"},
		Short:   "Show today, this week and this month",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			out, err := app.Tracker.GetDashboard(ctx, &tracker.GetDashboardInput{UserID: app.UserID})
			if err != nil {
				return app.explain(ctx, err)
			}

			renderDashboard(cmd.OutOrStdout(), out.Dashboard, app.Money)
			return nil
		},
	}
}

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show the dashboard and redraw it whenever sessions or rates change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Feed == nil {
				return errors.New("live updates are not configured")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			ws := live.NewWorkspace(app.Clock)

			var mu sync.Mutex
			ws.OnChange(func(state live.State) {
				mu.Lock()
				defer mu.Unlock()
				renderWorkspace(out, ws, state, app.Money)
			})

			sub, err := app.Feed.Subscribe(ctx, app.UserID, ws)
			if err != nil {
				return app.explain(ctx, err)
			}
			defer sub.Stop()

			<-sub.Done()
			return nil
		},
	}
}
