package cli

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tutortrack/internal/services/report"
	"github.com/KirkDiggler/tutortrack/internal/services/tracker"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var rangeName, from, to, group string
	var share bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build an earnings report for a date range",
		Long: "Build an earnings report. Pick a preset with --range (" + strings.Join(tracker.RangeNames(), ", ") +
			") or give --from and --to. With neither, the report covers this month.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			window, err := tracker.ParseRange(rangeName, from, to)
			if err != nil {
				return app.explain(ctx, err)
			}

			grouping, err := report.ParseGrouping(group)
			if err != nil {
				return err
			}

			out, err := app.Tracker.GenerateReport(ctx, &tracker.GenerateReportInput{
				UserID: app.UserID,
				Window: window,
			})
			if err != nil {
				return app.explain(ctx, err)
			}

			if share {
				text, err := app.Report.ShareText(ctx, &report.ShareTextInput{Report: out.Report})
				if err != nil {
					return fmt.Errorf("failed to build share text: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), text.Text)
				return nil
			}

			view, err := app.Report.PrintView(ctx, &report.PrintViewInput{
				Report:   out.Report,
				Grouping: grouping,
			})
			if err != nil {
				return fmt.Errorf("failed to build report view: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), view.View.PlainText())
			return nil
		},
	}

	cmd.Flags().StringVarP(&rangeName, "range", "r", "", "Preset range")
	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&group, "group", "g", string(report.GroupingMonth), "Group by month, batch or none")
	cmd.Flags().BoolVar(&share, "share", false, "Print the plain share text instead")

	return cmd
}
