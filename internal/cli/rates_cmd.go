package cli

import (
	"github.com/KirkDiggler/tutortrack/internal/services/tracker"
	"github.com/spf13/cobra"
)

func newRatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show the default hourly rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			out, err := app.Tracker.GetRates(ctx, &tracker.GetRatesInput{UserID: app.UserID})
			if err != nil {
				return app.explain(ctx, err)
			}

			renderRates(cmd.OutOrStdout(), "Default rates", out.Rates, app.Money)
			return nil
		},
	}

	cmd.AddCommand(newRatesSetCmd(app))

	return cmd
}

func newRatesSetCmd(app *App) *cobra.Command {
	var morning, evening, custom float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the default hourly rates",
		Long:  "Change the default hourly rates. Rates not given keep their current value. Saved sessions are not affected.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			current, err := app.Tracker.GetRates(ctx, &tracker.GetRatesInput{UserID: app.UserID})
			if err != nil {
				return app.explain(ctx, err)
			}

			rates := *current.Rates
			if cmd.Flags().Changed("morning") {
				rates.Morning = morning
			}
			if cmd.Flags().Changed("evening") {
				rates.Evening = evening
			}
			if cmd.Flags().Changed("default") {
				rates.Default = custom
			}

			out, err := app.Tracker.UpdateRates(ctx, &tracker.UpdateRatesInput{
				UserID: app.UserID,
				Rates:  &rates,
			})
			if err != nil {
				return app.explain(ctx, err)
			}

			renderRates(cmd.OutOrStdout(), "Rates updated", out.Rates, app.Money)
			return nil
		},
	}

	cmd.Flags().Float64Var(&morning, "morning", 0, "Morning rate")
	cmd.Flags().Float64Var(&evening, "evening", 0, "Evening rate")
	cmd.Flags().Float64Var(&custom, "default", 0, "Custom batch rate")
	cmd.MarkFlagsOneRequired("morning", "evening", "default")

	return cmd
}
