package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/models"
)

// DefaultTitle heads reports when no title is configured
const DefaultTitle = "TutorTrack"

// EmptyMessage is shown when a report range holds no sessions
const EmptyMessage = "No teaching sessions found in this date range."

// untitled stands in for a session without a subject
const untitled = "Session"

// service implements the Service interface
type service struct {
	title  string
	author string
	money  *accounting.MoneyFormatter
}

// New creates a new report service. A nil config uses the defaults.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	s := &service{
		title:  cfg.Title,
		author: cfg.Author,
		money:  cfg.Money,
	}
	if s.title == "" {
		s.title = DefaultTitle
	}
	if s.money == nil {
		s.money = accounting.NewMoneyFormatter(accounting.DefaultCurrencySymbol, accounting.DefaultLocale)
	}

	return s, nil
}

// ShareText returns the plain text summary pasted into chats and emails
func (s *service) ShareText(ctx context.Context, input *ShareTextInput) (*ShareTextOutput, error) {
	if input == nil || input.Report == nil {
		return nil, errors.New("input and report cannot be nil")
	}

	r := input.Report
	var b strings.Builder

	heading := fmt.Sprintf("📅 *%s Report*", s.title)
	if s.author != "" {
		heading += " - " + s.author
	}
	fmt.Fprintf(&b, "%s\n(%s to %s)\n\n", heading, r.From, r.To)
	fmt.Fprintf(&b, "💰 Total Earnings: %s\n", s.money.Format(r.Totals.Earnings))
	fmt.Fprintf(&b, "⏱ Total Hours: %s hrs\n", accounting.FormatHours(r.Totals.Hours))
	fmt.Fprintf(&b, "📚 Total Sessions: %d\n\n", r.Totals.Count)
	b.WriteString("*Session Details:*\n")

	for _, session := range r.Sessions {
		fmt.Fprintf(&b, "• %s: %s (%sh) - %s\n",
			session.Date,
			subjectOrDefault(session.Subject),
			accounting.FormatHours(session.Duration),
			s.money.Format(session.Earnings),
		)
	}

	return &ShareTextOutput{Text: b.String()}, nil
}

// PrintView returns the grouped, formatted view behind the printable summary
func (s *service) PrintView(ctx context.Context, input *PrintViewInput) (*PrintViewOutput, error) {
	if input == nil || input.Report == nil {
		return nil, errors.New("input and report cannot be nil")
	}

	r := input.Report
	view := &View{
		Title:    s.title,
		Range:    fmt.Sprintf("%s to %s", r.From, r.To),
		Earnings: s.money.Format(r.Totals.Earnings),
		Hours:    accounting.FormatHours(r.Totals.Hours),
		Count:    r.Totals.Count,
		Empty:    len(r.Sessions) == 0,
	}

	var groups []*models.SessionGroup
	switch input.Grouping {
	case GroupingMonth:
		groups = r.ByMonth
	case GroupingBatch:
		groups = r.ByBatch
	case GroupingNone, "":
		if len(r.Sessions) > 0 {
			groups = []*models.SessionGroup{{Sessions: r.Sessions, Totals: r.Totals}}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrouping, input.Grouping)
	}

	for _, g := range groups {
		section := &Section{
			Heading:  g.Label,
			Earnings: s.money.Format(g.Totals.Earnings),
			Hours:    accounting.FormatHours(g.Totals.Hours),
			Count:    g.Totals.Count,
		}
		for _, session := range g.Sessions {
			section.Rows = append(section.Rows, s.row(session))
		}
		view.Sections = append(view.Sections, section)
	}

	return &PrintViewOutput{View: view}, nil
}

func (s *service) row(session *models.Session) *Row {
	return &Row{
		Date:      session.Date,
		Time:      fmt.Sprintf("%s-%s", session.StartTime, session.EndTime),
		BatchType: string(session.BatchType),
		Subject:   subjectOrDefault(session.Subject),
		Chapter:   session.Chapter,
		Notes:     session.Notes,
		Hours:     accounting.FormatHours(session.Duration),
		Amount:    s.money.Format(session.Earnings),
	}
}

func subjectOrDefault(subject string) string {
	if strings.TrimSpace(subject) == "" {
		return untitled
	}
	return subject
}
