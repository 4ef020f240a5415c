package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/KirkDiggler/tutortrack/internal/services/messaging"
	"github.com/KirkDiggler/tutortrack/internal/services/tracker"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

// sessionFlags are the editable session fields shared by log and edit
type sessionFlags struct {
	date, start, end, batch        string
	subject, chapter, pages, notes string
	rate                           float64
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&f.start, "start", "", "Start time (HH:MM, 24h)")
	cmd.Flags().StringVar(&f.end, "end", "", "End time (HH:MM, 24h)")
	cmd.Flags().StringVar(&f.batch, "batch", "", "Batch type: Morning, Evening or Custom")
	cmd.Flags().Float64Var(&f.rate, "rate", 0, "Hourly rate, defaults to the batch rate")
	cmd.Flags().StringVar(&f.subject, "subject", "", "Subject")
	cmd.Flags().StringVar(&f.chapter, "chapter", "", "Chapter or topic")
	cmd.Flags().StringVar(&f.pages, "pages", "", "Pages covered")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Notes")
}

// apply copies the flags that were set onto a copy of the draft. The rate
// follows a batch change only when --rate was not given.
func (f *sessionFlags) apply(ctx context.Context, cmd *cobra.Command, app *App, draft *models.Session, state accounting.DraftState) (*models.Session, error) {
	draft = draft.Clone()
	changed := cmd.Flags().Changed

	state.RateEdited = state.RateEdited || changed("rate")

	if changed("batch") {
		bt, err := models.ParseBatchType(f.batch)
		if err != nil {
			return nil, err
		}
		out, err := app.Tracker.ChangeBatchType(ctx, &tracker.ChangeBatchTypeInput{
			UserID:    app.UserID,
			Draft:     draft,
			BatchType: bt,
			State:     state,
		})
		if err != nil {
			return nil, err
		}
		draft = out.Draft
	}

	if changed("rate") {
		draft.Rate = f.rate
	}

	for name, field := range map[string]struct {
		value  string
		target *string
	}{
		"date":    {f.date, &draft.Date},
		"start":   {f.start, &draft.StartTime},
		"end":     {f.end, &draft.EndTime},
		"subject": {f.subject, &draft.Subject},
		"chapter": {f.chapter, &draft.Chapter},
		"pages":   {f.pages, &draft.Pages},
		"notes":   {f.notes, &draft.Notes},
	} {
		if changed(name) {
			*field.target = strings.TrimSpace(field.value)
		}
	}

	return draft, nil
}

func newLogCmd(app *App) *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a teaching session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			out, err := app.Tracker.NewSessionDraft(ctx, &tracker.NewSessionDraftInput{UserID: app.UserID})
			if err != nil {
				return app.explain(ctx, err)
			}

			draft, err := flags.apply(ctx, cmd, app, out.Draft, accounting.DraftState{})
			if err != nil {
				return app.explain(ctx, err)
			}

			return app.save(cmd, draft)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var flags sessionFlags

	cmd := &cobra.Command{
		Use:   "edit <session-id>",
		Short: "Change fields of a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			existing, err := app.Tracker.GetSession(ctx, &tracker.GetSessionInput{
				UserID:    app.UserID,
				SessionID: args[0],
			})
			if err != nil {
				return app.explain(ctx, err)
			}

			draft, err := flags.apply(ctx, cmd, app, existing.Session, accounting.DraftState{Editing: true})
			if err != nil {
				return app.explain(ctx, err)
			}

			return app.save(cmd, draft)
		},
	}

	flags.register(cmd)

	return cmd
}

// save persists the draft and prints the confirmation
func (app *App) save(cmd *cobra.Command, draft *models.Session) error {
	ctx := cmd.Context()

	saved, err := app.Tracker.SaveSession(ctx, &tracker.SaveSessionInput{
		UserID:  app.UserID,
		Session: draft,
	})
	if err != nil {
		return app.explain(ctx, err)
	}

	msg, err := app.Messaging.GetSavedMessage(ctx, &messaging.GetSavedMessageInput{
		Session: saved.Session,
		Created: saved.Created,
	})
	if err != nil {
		return fmt.Errorf("failed to build saved message: %w", err)
	}

	renderSaved(cmd.OutOrStdout(), msg, saved.Session)
	return nil
}

func newHistoryCmd(app *App) *cobra.Command {
	var search string
	var limit int

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "List sessions, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			out, err := app.Tracker.ListSessions(ctx, &tracker.ListSessionsInput{
				UserID: app.UserID,
				Query:  search,
				Limit:  limit,
			})
			if err != nil {
				return app.explain(ctx, err)
			}

			renderHistory(cmd.OutOrStdout(), out.Sessions, out.Totals, search, app.Money)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match subject, chapter, batch or date")
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "How many sessions to show (0 for all)")

	return cmd
}

func newDuplicateCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "duplicate <session-id>",
		Short: "Copy a session to today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			out, err := app.Tracker.DuplicateSession(ctx, &tracker.DuplicateSessionInput{
				UserID:    app.UserID,
				SessionID: args[0],
			})
			if err != nil {
				return app.explain(ctx, err)
			}

			if !save {
				renderSession(cmd.OutOrStdout(), "Copy (not saved)", out.Draft, app.Money)
				fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render("Run again with --save to keep it."))
				return nil
			}

			return app.save(cmd, out.Draft)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save the copy")

	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <session-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !yes {
				existing, err := app.Tracker.GetSession(ctx, &tracker.GetSessionInput{
					UserID:    app.UserID,
					SessionID: args[0],
				})
				if err != nil {
					return app.explain(ctx, err)
				}
				renderSession(cmd.OutOrStdout(), "Delete this session?", existing.Session, app.Money)
			}

			out, err := app.Tracker.DeleteSession(ctx, &tracker.DeleteSessionInput{
				UserID:    app.UserID,
				SessionID: args[0],
				Confirmed: yes,
			})
			if err != nil {
				return app.explain(ctx, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), styleGreen.Render("✓ Deleted session "+out.SessionID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the delete")

	return cmd
}
