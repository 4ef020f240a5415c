package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/KirkDiggler/tutortrack/internal/services/messaging"
	"github.com/KirkDiggler/tutortrack/internal/services/report"
	"github.com/bwmarrin/discordgo"
)

// Discord rejects message content longer than this
const maxContentLength = 2000

// chartWidth is the number of block characters in a full-scale bar
const chartWidth = 12

// renderError turns a messaging error into an embed. Access problems get
// their own look so they are not mistaken for a bad input.
func renderError(msg *messaging.GetErrorMessageOutput) *discordgo.MessageEmbed {
	if msg.Kind == messaging.ErrorKindAccessDenied {
		return &discordgo.MessageEmbed{
			Title:       "🔒 " + msg.Title,
			Description: msg.Message,
			Color:       colorWarning,
			Footer: &discordgo.MessageEmbedFooter{
				Text: "Nothing was shown or changed.",
			},
		}
	}

	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorError,
	}
}

// renderSaved shows the confirmation after a save
func renderSaved(msg *messaging.GetSavedMessageOutput, session *models.Session) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: fmt.Sprintf("%s\n%s", msg.Message, msg.Cheer),
		Color:       colorSuccess,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "ID: " + session.ID,
		},
	}
}

// renderDashboard shows the totals, the seven day chart and recent sessions
func renderDashboard(d *models.Dashboard, money *accounting.MoneyFormatter) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		totalsField("Today", d.Today, money),
		totalsField("This Week", d.Week, money),
		totalsField("This Month", d.Month, money),
	}

	if len(d.Recent) > 0 {
		var lines []string
		for _, s := range d.Recent {
			lines = append(lines, sessionLine(s, money))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Recent Sessions",
			Value: strings.Join(lines, "\n"),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "📊 Earnings Overview",
		Description: "```\n" + chartText(d.Chart, d.ChartScale, money) + "```",
		Color:       colorInfo,
		Fields:      fields,
	}
}

func totalsField(name string, t models.Totals, money *accounting.MoneyFormatter) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   name,
		Value:  fmt.Sprintf("**%s**\n%sh · %d sessions", money.Format(t.Earnings), accounting.FormatHours(t.Hours), t.Count),
		Inline: true,
	}
}

// chartText draws one bar per day, scaled against the top tick
func chartText(buckets []models.DailyBucket, scale []float64, money *accounting.MoneyFormatter) string {
	top := 0.0
	if len(scale) > 0 {
		top = scale[0]
	}

	var b strings.Builder
	for _, bucket := range buckets {
		width := 0
		if top > 0 {
			width = int(bucket.Amount / top * chartWidth)
		}
		if width < 0 {
			width = 0
		}
		fmt.Fprintf(&b, "%-3s %-*s %s\n", bucket.Label, chartWidth, strings.Repeat("█", width), money.Format(bucket.Amount))
	}
	return b.String()
}

// sessionLine is the one-line summary used in lists
func sessionLine(s *models.Session, money *accounting.MoneyFormatter) string {
	subject := s.Subject
	if subject == "" {
		subject = "Session"
	}
	return fmt.Sprintf("%s · %s-%s · %s · %s · **%s**",
		accounting.FormatDate(s.Date), s.StartTime, s.EndTime, s.BatchType, subject, money.Format(s.Earnings))
}

// renderHistory lists sessions newest first with their IDs for edit and delete
func renderHistory(sessions []*models.Session, totals models.Totals, query string, money *accounting.MoneyFormatter) *discordgo.MessageEmbed {
	title := "📚 Session History"
	if query != "" {
		title = fmt.Sprintf("📚 Sessions matching %q", query)
	}

	if len(sessions) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "No sessions found.",
			Color:       colorInfo,
		}
	}

	var lines []string
	for _, s := range sessions {
		lines = append(lines, fmt.Sprintf("%s\n`%s`", sessionLine(s, money), s.ID))
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d sessions · %sh · %s", totals.Count, accounting.FormatHours(totals.Hours), money.Format(totals.Earnings)),
		},
	}
}

// renderRates shows the default rate per batch
func renderRates(rates *models.RateConfig, money *accounting.MoneyFormatter, title string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: title,
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: string(models.BatchTypeMorning), Value: money.Format(rates.Morning) + "/h", Inline: true},
			{Name: string(models.BatchTypeEvening), Value: money.Format(rates.Evening) + "/h", Inline: true},
			{Name: string(models.BatchTypeCustom), Value: money.Format(rates.Default) + "/h", Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Changing rates never alters sessions already saved.",
		},
	}
}

// renderSessionPrompt shows a session with confirm and cancel buttons
func renderSessionPrompt(title, description string, s *models.Session, money *accounting.MoneyFormatter, confirm discordgo.Button) *discordgo.InteractionResponse {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description + "\n\n" + sessionLine(s, money),
		Color:       colorWarning,
	}

	cancel := discordgo.Button{
		Label:    "Cancel",
		Style:    discordgo.SecondaryButton,
		CustomID: componentID(actionCancel, ""),
	}

	return embedResponse(embed, confirm, cancel)
}

// renderPrintView wraps the printable view in a code block, trimmed to fit
func renderPrintView(view *report.View) *discordgo.InteractionResponse {
	return contentResponse(fitContent("```\n", view.PlainText(), "```"), false)
}

// renderShareText posts the share text to the channel
func renderShareText(text string) *discordgo.InteractionResponse {
	return contentResponse(fitContent("", text, ""), true)
}

// fitContent keeps prefix+body+suffix within the message limit, cutting the
// body on a line boundary when it has to
func fitContent(prefix, body, suffix string) string {
	const ellipsis = "…\n"

	budget := maxContentLength - len(prefix) - len(suffix)
	if len(body) <= budget {
		return prefix + body + suffix
	}

	cut := body[:budget-len(ellipsis)]
	if idx := strings.LastIndex(cut, "\n"); idx > 0 {
		cut = cut[:idx+1]
	}
	return prefix + cut + ellipsis + suffix
}
