package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/KirkDiggler/tutortrack/internal/services/messaging"
	"github.com/KirkDiggler/tutortrack/internal/services/report"
	"github.com/KirkDiggler/tutortrack/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
)

const tutorCommandName = "tutor"

// Component actions
const (
	actionDelete    = "delete"
	actionDuplicate = "duplicate"
	actionCancel    = "cancel"
)

// defaultHistoryLimit keeps the history embed within Discord's size limits
const defaultHistoryLimit = 10

// TutorCommand handles the /tutor command
type TutorCommand struct {
	BaseCommand
	trackerService   tracker.Service
	reportService    report.Service
	messagingService messaging.Service
	money            *accounting.MoneyFormatter
}

// TutorCommandConfig holds the services the command calls
type TutorCommandConfig struct {
	TrackerService   tracker.Service
	ReportService    report.Service
	MessagingService messaging.Service
	Money            *accounting.MoneyFormatter
}

// NewTutorCommand creates a new tutor command handler
func NewTutorCommand(cfg *TutorCommandConfig) *TutorCommand {
	money := cfg.Money
	if money == nil {
		money = accounting.NewMoneyFormatter(accounting.DefaultCurrencySymbol, accounting.DefaultLocale)
	}

	return &TutorCommand{
		BaseCommand: BaseCommand{
			Name:        tutorCommandName,
			Description: "Track tutoring sessions and earnings",
			Options:     tutorOptions(),
		},
		trackerService:   cfg.TrackerService,
		reportService:    cfg.ReportService,
		messagingService: cfg.MessagingService,
		money:            money,
	}
}

func tutorOptions() []*discordgo.ApplicationCommandOption {
	batchChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.BatchTypes()))
	for _, bt := range models.BatchTypes() {
		batchChoices = append(batchChoices, &discordgo.ApplicationCommandOptionChoice{Name: string(bt), Value: string(bt)})
	}

	rangeChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(tracker.RangeNames()))
	for _, name := range tracker.RangeNames() {
		rangeChoices = append(rangeChoices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
	}

	zero := 0.0
	minLimit := 1.0

	sessionFields := func(timesRequired bool) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "start", Description: "Start time (HH:MM, 24h)", Required: timesRequired},
			{Type: discordgo.ApplicationCommandOptionString, Name: "end", Description: "End time (HH:MM, 24h)", Required: timesRequired},
			{Type: discordgo.ApplicationCommandOptionString, Name: "date", Description: "Date (YYYY-MM-DD), defaults to today"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "batch", Description: "Batch type", Choices: batchChoices},
			{Type: discordgo.ApplicationCommandOptionNumber, Name: "rate", Description: "Hourly rate, defaults to the batch rate", MinValue: &zero},
			{Type: discordgo.ApplicationCommandOptionString, Name: "subject", Description: "Subject"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "chapter", Description: "Chapter or topic"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "pages", Description: "Pages covered"},
			{Type: discordgo.ApplicationCommandOptionString, Name: "notes", Description: "Notes"},
		}
	}

	idOption := &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionString, Name: "id", Description: "Session ID from /tutor history", Required: true,
	}

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "log",
			Description: "Log a teaching session",
			Options:     sessionFields(true),
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "edit",
			Description: "Edit a saved session",
			Options:     append([]*discordgo.ApplicationCommandOption{idOption}, sessionFields(false)...),
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "stats",
			Description: "Show today, this week and this month",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "history",
			Description: "List sessions, newest first",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "search", Description: "Match subject, chapter, batch or date"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "limit", Description: "How many to show", MinValue: &minLimit, MaxValue: 25},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "report",
			Description: "Build an earnings report",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "range", Description: "Preset range", Choices: rangeChoices},
				{Type: discordgo.ApplicationCommandOptionString, Name: "from", Description: "Custom start date (YYYY-MM-DD)"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "to", Description: "Custom end date (YYYY-MM-DD)"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "group", Description: "Group the printable view", Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "month", Value: string(report.GroupingMonth)},
					{Name: "batch", Value: string(report.GroupingBatch)},
					{Name: "none", Value: string(report.GroupingNone)},
				}},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "share", Description: "Post the share text to the channel"},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "rates",
			Description: "Show the default hourly rates",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "setrates",
			Description: "Change the default hourly rates",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionNumber, Name: "morning", Description: "Morning rate", MinValue: &zero},
				{Type: discordgo.ApplicationCommandOptionNumber, Name: "evening", Description: "Evening rate", MinValue: &zero},
				{Type: discordgo.ApplicationCommandOptionNumber, Name: "default", Description: "Custom batch rate", MinValue: &zero},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "duplicate",
			Description: "Copy a session to today",
			Options:     []*discordgo.ApplicationCommandOption{idOption},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "delete",
			Description: "Delete a session",
			Options:     []*discordgo.ApplicationCommandOption{idOption},
		},
	}
}

// Handle processes a Discord interaction for the tutor command
func (c *TutorCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	if len(data.Options) == 0 {
		return errors.New("missing subcommand")
	}

	resp := c.dispatch(context.Background(), interactionUserID(i), data.Options[0])
	return s.InteractionRespond(i.Interaction, resp)
}

// HandleComponent processes the buttons the command posted
func (c *TutorCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	resp := c.dispatchComponent(context.Background(), interactionUserID(i), i.MessageComponentData().CustomID)
	return s.InteractionRespond(i.Interaction, resp)
}

func (c *TutorCommand) dispatch(ctx context.Context, userID string, sub *discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {
	opts := optionsOf(sub)

	switch sub.Name {
	case "log":
		return c.handleLog(ctx, userID, opts)
	case "edit":
		return c.handleEdit(ctx, userID, opts)
	case "stats":
		return c.handleStats(ctx, userID)
	case "history":
		return c.handleHistory(ctx, userID, opts)
	case "report":
		return c.handleReport(ctx, userID, opts)
	case "rates":
		return c.handleRates(ctx, userID)
	case "setrates":
		return c.handleSetRates(ctx, userID, opts)
	case "duplicate":
		return c.handleDuplicate(ctx, userID, opts)
	case "delete":
		return c.handleDelete(ctx, userID, opts)
	}

	return errorResponse("Unknown command", fmt.Sprintf("`/tutor %s` is not a known subcommand.", sub.Name))
}

// handleLog saves a new session built on top of the prefilled draft
func (c *TutorCommand) handleLog(ctx context.Context, userID string, opts options) *discordgo.InteractionResponse {
	draftOut, err := c.trackerService.NewSessionDraft(ctx, &tracker.NewSessionDraftInput{UserID: userID})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	draft, err := c.applyFields(ctx, userID, draftOut.Draft, opts, accounting.DraftState{})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return c.save(ctx, userID, draft)
}

// handleEdit applies the given fields to a stored session and saves it
func (c *TutorCommand) handleEdit(ctx context.Context, userID string, opts options) *discordgo.InteractionResponse {
	existing, err := c.trackerService.GetSession(ctx, &tracker.GetSessionInput{
		UserID:    userID,
		SessionID: opts.string("id"),
	})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	draft, err := c.applyFields(ctx, userID, existing.Session, opts, accounting.DraftState{Editing: true})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return c.save(ctx, userID, draft)
}

// applyFields copies the provided options onto a draft. The rate follows a
// batch change only when the rate option was not given.
func (c *TutorCommand) applyFields(ctx context.Context, userID string, draft *models.Session, opts options, state accounting.DraftState) (*models.Session, error) {
	draft = draft.Clone()

	rate, rateGiven := opts.float("rate")
	state.RateEdited = state.RateEdited || rateGiven

	if batch := opts.string("batch"); batch != "" {
		bt, err := models.ParseBatchType(batch)
		if err != nil {
			return nil, err
		}
		changed, err := c.trackerService.ChangeBatchType(ctx, &tracker.ChangeBatchTypeInput{
			UserID:    userID,
			Draft:     draft,
			BatchType: bt,
			State:     state,
		})
		if err != nil {
			return nil, err
		}
		draft = changed.Draft
	}

	if rateGiven {
		draft.Rate = rate
	}

	for name, target := range map[string]*string{
		"date":    &draft.Date,
		"start":   &draft.StartTime,
		"end":     &draft.EndTime,
		"subject": &draft.Subject,
		"chapter": &draft.Chapter,
		"pages":   &draft.Pages,
		"notes":   &draft.Notes,
	} {
		if _, ok := opts[name]; ok {
			*target = opts.string(name)
		}
	}

	return draft, nil
}

func (c *TutorCommand) save(ctx context.Context, userID string, draft *models.Session) *discordgo.InteractionResponse {
	saved, err := c.trackerService.SaveSession(ctx, &tracker.SaveSessionInput{
		UserID:  userID,
		Session: draft,
	})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return embedResponse(c.savedEmbed(ctx, saved))
}

func (c *TutorCommand) savedEmbed(ctx context.Context, saved *tracker.SaveSessionOutput) *discordgo.MessageEmbed {
	msg, err := c.messagingService.GetSavedMessage(ctx, &messaging.GetSavedMessageInput{
		Session: saved.Session,
		Created: saved.Created,
	})
	if err != nil {
		log.Printf("Error getting saved message: %v", err)
		msg = &messaging.GetSavedMessageOutput{Title: "Session saved"}
	}
	return renderSaved(msg, saved.Session)
}

func (c *TutorCommand) handleStats(ctx context.Context, userID string) *discordgo.InteractionResponse {
	out, err := c.trackerService.GetDashboard(ctx, &tracker.GetDashboardInput{UserID: userID})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return embedResponse(renderDashboard(out.Dashboard, c.money))
}

func (c *TutorCommand) handleHistory(ctx context.Context, userID string, opts options) *discordgo.InteractionResponse {
	limit := defaultHistoryLimit
	if v, ok := opts["limit"]; ok {
		limit = int(v.IntValue())
	}

	query := opts.string("search")
	out, err := c.trackerService.ListSessions(ctx, &tracker.ListSessionsInput{
		UserID: userID,
		Query:  query,
		Limit:  limit,
	})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return embedResponse(renderHistory(out.Sessions, out.Totals, query, c.money))
}

func (c *TutorCommand) handleReport(ctx context.Context, userID string, opts options) *discordgo.InteractionResponse {
	window, err := tracker.ParseRange(opts.string("range"), opts.string("from"), opts.string("to"))
	if err != nil {
		return c.errorFor(ctx, err)
	}

	group := opts.string("group")
	if group == "" {
		group = string(report.GroupingMonth)
	}
	grouping, err := report.ParseGrouping(group)
	if err != nil {
		return errorResponse("Check your report", "Group by month, batch or none.")
	}

	out, err := c.trackerService.GenerateReport(ctx, &tracker.GenerateReportInput{
		UserID: userID,
		Window: window,
	})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	if share, ok := opts["share"]; ok && share.BoolValue() {
		text, err := c.reportService.ShareText(ctx, &report.ShareTextInput{Report: out.Report})
		if err != nil {
			return c.errorFor(ctx, err)
		}
		return renderShareText(text.Text)
	}

	view, err := c.reportService.PrintView(ctx, &report.PrintViewInput{
		Report:   out.Report,
		Grouping: grouping,
	})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return renderPrintView(view.View)
}

func (c *TutorCommand) handleRates(ctx context.Context, userID string) *discordgo.InteractionResponse {
	out, err := c.trackerService.GetRates(ctx, &tracker.GetRatesInput{UserID: userID})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return embedResponse(renderRates(out.Rates, c.money, "💰 Default Rates"))
}

// handleSetRates replaces the rate document, keeping any rate not given
func (c *TutorCommand) handleSetRates(ctx context.Context, userID string, opts options) *discordgo.InteractionResponse {
	current, err := c.trackerService.GetRates(ctx, &tracker.GetRatesInput{UserID: userID})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	rates := *current.Rates
	if v, ok := opts.float("morning"); ok {
		rates.Morning = v
	}
	if v, ok := opts.float("evening"); ok {
		rates.Evening = v
	}
	if v, ok := opts.float("default"); ok {
		rates.Default = v
	}

	out, err := c.trackerService.UpdateRates(ctx, &tracker.UpdateRatesInput{
		UserID: userID,
		Rates:  &rates,
	})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return embedResponse(renderRates(out.Rates, c.money, "✅ Rates updated"))
}

// handleDuplicate previews the copy; nothing is saved until the button is pressed
func (c *TutorCommand) handleDuplicate(ctx context.Context, userID string, opts options) *discordgo.InteractionResponse {
	id := opts.string("id")
	out, err := c.trackerService.DuplicateSession(ctx, &tracker.DuplicateSessionInput{
		UserID:    userID,
		SessionID: id,
	})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return renderSessionPrompt("Duplicate session?", "A copy dated today will be saved.", out.Draft, c.money, discordgo.Button{
		Label:    "Save copy",
		Style:    discordgo.PrimaryButton,
		CustomID: componentID(actionDuplicate, id),
	})
}

// handleDelete asks for confirmation before anything is removed
func (c *TutorCommand) handleDelete(ctx context.Context, userID string, opts options) *discordgo.InteractionResponse {
	id := opts.string("id")
	out, err := c.trackerService.GetSession(ctx, &tracker.GetSessionInput{
		UserID:    userID,
		SessionID: id,
	})
	if err != nil {
		return c.errorFor(ctx, err)
	}

	return renderSessionPrompt("Delete session?", "This cannot be undone.", out.Session, c.money, discordgo.Button{
		Label:    "Delete",
		Style:    discordgo.DangerButton,
		CustomID: componentID(actionDelete, id),
	})
}

func (c *TutorCommand) dispatchComponent(ctx context.Context, userID, customID string) *discordgo.InteractionResponse {
	action, arg := parseComponentID(customID)

	switch action {
	case actionCancel:
		return updateResponse(&discordgo.MessageEmbed{Title: "Cancelled", Description: "Nothing was changed.", Color: colorInfo})

	case actionDelete:
		_, err := c.trackerService.DeleteSession(ctx, &tracker.DeleteSessionInput{
			UserID:    userID,
			SessionID: arg,
			Confirmed: true,
		})
		if err != nil {
			return updateResponse(c.errorEmbed(ctx, err))
		}
		return updateResponse(&discordgo.MessageEmbed{Title: "🗑️ Session deleted", Color: colorSuccess})

	case actionDuplicate:
		dup, err := c.trackerService.DuplicateSession(ctx, &tracker.DuplicateSessionInput{
			UserID:    userID,
			SessionID: arg,
		})
		if err != nil {
			return updateResponse(c.errorEmbed(ctx, err))
		}
		saved, err := c.trackerService.SaveSession(ctx, &tracker.SaveSessionInput{
			UserID:  userID,
			Session: dup.Draft,
		})
		if err != nil {
			return updateResponse(c.errorEmbed(ctx, err))
		}
		return updateResponse(c.savedEmbed(ctx, saved))
	}

	return updateResponse(&discordgo.MessageEmbed{Title: "Unknown button", Description: customID, Color: colorError})
}

func (c *TutorCommand) errorFor(ctx context.Context, err error) *discordgo.InteractionResponse {
	return embedResponse(c.errorEmbed(ctx, err))
}

func (c *TutorCommand) errorEmbed(ctx context.Context, err error) *discordgo.MessageEmbed {
	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		log.Printf("Error getting error message: %v", msgErr)
		msg = &messaging.GetErrorMessageOutput{Title: "Error", Message: err.Error()}
	}

	if msg.Kind == messaging.ErrorKindUnavailable {
		log.Printf("Error handling tutor command: %v", err)
	}

	return renderError(msg)
}

// componentID builds a custom ID routed back to this command
func componentID(action, arg string) string {
	return strings.Join([]string{tutorCommandName, action, arg}, customIDSeparator)
}

func parseComponentID(customID string) (action, arg string) {
	parts := strings.SplitN(customID, customIDSeparator, 3)
	if len(parts) < 2 || parts[0] != tutorCommandName {
		return "", ""
	}
	if len(parts) == 3 {
		arg = parts[2]
	}
	return parts[1], arg
}

// options indexes a subcommand's options by name
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionsOf(sub *discordgo.ApplicationCommandInteractionDataOption) options {
	opts := make(options, len(sub.Options))
	for _, o := range sub.Options {
		opts[o.Name] = o
	}
	return opts
}

func (o options) string(name string) string {
	if v, ok := o[name]; ok {
		return strings.TrimSpace(v.StringValue())
	}
	return ""
}

func (o options) float(name string) (float64, bool) {
	if v, ok := o[name]; ok {
		return v.FloatValue(), true
	}
	return 0, false
}
