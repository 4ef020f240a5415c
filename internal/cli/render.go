package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/KirkDiggler/tutortrack/internal/services/live"
	"github.com/KirkDiggler/tutortrack/internal/services/messaging"
	"github.com/charmbracelet/lipgloss"
)

// chartWidth is the number of block characters in a full-scale bar
const chartWidth = 24

// subjectWidth bounds the subject column in session tables
const subjectWidth = 18

func renderSaved(w io.Writer, msg *messaging.GetSavedMessageOutput, s *models.Session) {
	fmt.Fprintln(w, styleGreen.Render("✓ "+msg.Title))
	fmt.Fprintln(w, msg.Message)
	if msg.Cheer != "" {
		fmt.Fprintln(w, styleDim.Render(msg.Cheer))
	}
	fmt.Fprintln(w, styleDim.Render("ID: "+s.ID))
}

func renderDashboard(w io.Writer, d *models.Dashboard, money *accounting.MoneyFormatter) {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		totalsCard("Today", d.Today, money),
		totalsCard("This Week", d.Week, money),
		totalsCard("This Month", d.Month, money),
	)
	fmt.Fprintln(w, cards)

	fmt.Fprintln(w)
	fmt.Fprintln(w, header("Last 7 days"))
	fmt.Fprint(w, chartText(d.Chart, d.ChartScale, money))

	fmt.Fprintln(w)
	fmt.Fprintln(w, header("Recent sessions"))
	if len(d.Recent) == 0 {
		fmt.Fprintln(w, styleDim.Render("No sessions yet."))
		return
	}
	for _, s := range d.Recent {
		fmt.Fprintln(w, sessionRow(s, money))
	}
}

func totalsCard(title string, t models.Totals, money *accounting.MoneyFormatter) string {
	body := fmt.Sprintf("%s\n%sh · %d sessions",
		styleBold.Render(money.Format(t.Earnings)), accounting.FormatHours(t.Hours), t.Count)
	return renderBox(title, body)
}

// chartText draws one bar per day scaled against the top tick
func chartText(buckets []models.DailyBucket, scale []float64, money *accounting.MoneyFormatter) string {
	top := 0.0
	if len(scale) > 0 {
		top = scale[0]
	}

	var b strings.Builder
	for _, bucket := range buckets {
		width := 0
		if top > 0 && bucket.Amount > 0 {
			width = int(bucket.Amount / top * chartWidth)
		}
		bar := styleBar.Render(strings.Repeat("█", width)) + strings.Repeat(" ", chartWidth-width)
		fmt.Fprintf(&b, "%-3s %s %s\n", bucket.Label, bar, money.Format(bucket.Amount))
	}
	return b.String()
}

func sessionRow(s *models.Session, money *accounting.MoneyFormatter) string {
	subject := s.Subject
	if subject == "" {
		subject = "Session"
	}
	return strings.Join([]string{
		column(accounting.FormatDate(s.Date), 12),
		column(s.StartTime+"-"+s.EndTime, 12),
		column(string(s.BatchType), 8),
		column(truncate(subject, subjectWidth), subjectWidth+1),
		column(accounting.FormatHours(s.Duration)+"h", 6),
		styleBold.Render(money.Format(s.Earnings)),
	}, " ")
}

func renderHistory(w io.Writer, sessions []*models.Session, totals models.Totals, query string, money *accounting.MoneyFormatter) {
	title := "Session history"
	if query != "" {
		title = fmt.Sprintf("Sessions matching %q", query)
	}
	fmt.Fprintln(w, header(title))

	if len(sessions) == 0 {
		fmt.Fprintln(w, styleDim.Render("No sessions found."))
		return
	}

	for _, s := range sessions {
		fmt.Fprintln(w, sessionRow(s, money)+"  "+styleDim.Render(s.ID))
	}
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("%d sessions · %sh · %s",
		totals.Count, accounting.FormatHours(totals.Hours), money.Format(totals.Earnings))))
}

func renderSession(w io.Writer, title string, s *models.Session, money *accounting.MoneyFormatter) {
	subject := s.Subject
	if subject == "" {
		subject = "Session"
	}

	lines := []string{
		fmt.Sprintf("Date:     %s (%s)", s.Date, accounting.FormatDate(s.Date)),
		fmt.Sprintf("Time:     %s-%s", s.StartTime, s.EndTime),
		fmt.Sprintf("Batch:    %s at %s/h", s.BatchType, money.Format(s.Rate)),
		fmt.Sprintf("Subject:  %s", subject),
	}
	if s.Chapter != "" {
		lines = append(lines, fmt.Sprintf("Chapter:  %s", s.Chapter))
	}
	if s.Pages != "" {
		lines = append(lines, fmt.Sprintf("Pages:    %s", s.Pages))
	}
	if s.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes:    %s", s.Notes))
	}
	if s.Duration > 0 || s.Earnings > 0 {
		lines = append(lines, fmt.Sprintf("Earned:   %sh = %s", accounting.FormatHours(s.Duration), money.Format(s.Earnings)))
	}

	fmt.Fprintln(w, renderBox(title, strings.Join(lines, "\n")))
}

func renderRates(w io.Writer, title string, rates *models.RateConfig, money *accounting.MoneyFormatter) {
	fmt.Fprintln(w, header(title))
	fmt.Fprintf(w, "%s %s/h\n", column(string(models.BatchTypeMorning), 10), money.Format(rates.Morning))
	fmt.Fprintf(w, "%s %s/h\n", column(string(models.BatchTypeEvening), 10), money.Format(rates.Evening))
	fmt.Fprintf(w, "%s %s/h\n", column(string(models.BatchTypeCustom), 10), money.Format(rates.Default))
	fmt.Fprintln(w, styleDim.Render("Changing rates never alters sessions already saved."))
}

// renderWorkspace draws the live dashboard for the workspace's current state
func renderWorkspace(w io.Writer, ws *live.Workspace, state live.State, money *accounting.MoneyFormatter) {
	switch state {
	case live.StateLoading:
		fmt.Fprintln(w, styleDim.Render("Loading sessions…"))
		return
	case live.StateAccessDenied:
		fmt.Fprintln(w, styleYellow.Render("🔒 Access denied"))
		fmt.Fprintln(w, "Your account is not allowed to read your sessions. Fix the store's access rules; this view updates once access is restored.")
		return
	case live.StateFailed:
		fmt.Fprintln(w, styleRed.Render(fmt.Sprintf("Live updates interrupted: %v", ws.Err())))
	}

	d, err := ws.Dashboard()
	if err != nil {
		fmt.Fprintln(w, styleDim.Render("Waiting for data…"))
		return
	}
	renderDashboard(w, d, money)

	if rates, err := ws.Rates(); err == nil {
		fmt.Fprintln(w)
		renderRates(w, "Default rates", rates, money)
	}
}

// truncate shortens text to n runes, marking the cut with an ellipsis
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
