package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/common/permission"
	"github.com/KirkDiggler/tutortrack/internal/models"
	"github.com/KirkDiggler/tutortrack/internal/services/messaging"
	"github.com/KirkDiggler/tutortrack/internal/services/report"
	"github.com/KirkDiggler/tutortrack/internal/services/tracker"
	trackerMocks "github.com/KirkDiggler/tutortrack/internal/services/tracker/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "test-user-id"

// testApp wires an App around a mocked tracker and the real presentation
// services
func testApp(t *testing.T) (*App, *trackerMocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockTracker := trackerMocks.NewMockService(ctrl)

	reportSvc, err := report.New(nil)
	require.NoError(t, err)

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	return &App{
		Tracker:   mockTracker,
		Report:    reportSvc,
		Messaging: messagingSvc,
		UserID:    testUserID,
	}, mockTracker
}

// executeCmd runs a cobra command and captures stdout/stderr
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func todayDraft() *models.Session {
	return &models.Session{
		Date:      "2024-06-15",
		StartTime: "18:30",
		EndTime:   "19:30",
		BatchType: models.BatchTypeEvening,
		Rate:      200,
	}
}

func echoSave(created bool) func(context.Context, *tracker.SaveSessionInput) (*tracker.SaveSessionOutput, error) {
	return func(_ context.Context, input *tracker.SaveSessionInput) (*tracker.SaveSessionOutput, error) {
		saved := input.Session.Clone()
		if saved.ID == "" {
			saved.ID = "new-session"
		}
		saved.Duration = accounting.Duration(saved.StartTime, saved.EndTime)
		saved.Earnings = accounting.Earnings(saved.Duration, saved.Rate)
		return &tracker.SaveSessionOutput{Session: saved, Created: created}, nil
	}
}

func TestLogCmd(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		NewSessionDraft(gomock.Any(), &tracker.NewSessionDraftInput{UserID: testUserID}).
		Return(&tracker.NewSessionDraftOutput{Draft: todayDraft()}, nil)

	mockTracker.EXPECT().
		ChangeBatchType(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tracker.ChangeBatchTypeInput) (*tracker.ChangeBatchTypeOutput, error) {
			assert.Equal(t, models.BatchTypeMorning, input.BatchType)
			assert.False(t, input.State.RateEdited)
			d := input.Draft.Clone()
			d.BatchType = input.BatchType
			d.Rate = 150
			return &tracker.ChangeBatchTypeOutput{Draft: d}, nil
		})

	mockTracker.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *tracker.SaveSessionInput) (*tracker.SaveSessionOutput, error) {
			assert.Equal(t, testUserID, input.UserID)
			assert.Equal(t, "07:00", input.Session.StartTime)
			assert.Equal(t, "08:30", input.Session.EndTime)
			assert.Equal(t, "Physics", input.Session.Subject)
			assert.Equal(t, 150.0, input.Session.Rate)
			return echoSave(true)(ctx, input)
		})

	out, err := executeCmd(t, app, "log", "--start", "07:00", "--end", "08:30", "--batch", "Morning", "--subject", "Physics")
	require.NoError(t, err)
	assert.Contains(t, out, "Session logged")
	assert.Contains(t, out, "Physics on Sat, 15 Jun: 1.5h at ₹150/h = ₹225")
	assert.Contains(t, out, "ID: new-session")
}

func TestLogCmd_RateFlagWins(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		NewSessionDraft(gomock.Any(), gomock.Any()).
		Return(&tracker.NewSessionDraftOutput{Draft: todayDraft()}, nil)

	mockTracker.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *tracker.SaveSessionInput) (*tracker.SaveSessionOutput, error) {
			assert.Equal(t, 250.0, input.Session.Rate)
			assert.Equal(t, models.BatchTypeEvening, input.Session.BatchType)
			return echoSave(true)(ctx, input)
		})

	_, err := executeCmd(t, app, "log", "--start", "18:00", "--end", "19:00", "--rate", "250")
	require.NoError(t, err)
}

func TestLogCmd_RequiresTimes(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "log", "--start", "07:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end")
}

func TestLogCmd_ValidationMessage(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		NewSessionDraft(gomock.Any(), gomock.Any()).
		Return(&tracker.NewSessionDraftOutput{Draft: todayDraft()}, nil)

	mockTracker.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		Return(nil, accounting.ErrInvalidTimeRange)

	_, err := executeCmd(t, app, "log", "--start", "10:00", "--end", "09:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, accounting.ErrInvalidTimeRange)
	assert.True(t, strings.HasPrefix(err.Error(), "Check your session: "))
}

func TestEditCmd(t *testing.T) {
	app, mockTracker := testApp(t)

	stored := &models.Session{
		ID:        "s1",
		Date:      "2024-06-10",
		StartTime: "18:00",
		EndTime:   "19:00",
		BatchType: models.BatchTypeEvening,
		Rate:      180,
		Subject:   "Maths",
	}

	mockTracker.EXPECT().
		GetSession(gomock.Any(), &tracker.GetSessionInput{UserID: testUserID, SessionID: "s1"}).
		Return(&tracker.GetSessionOutput{Session: stored}, nil)

	mockTracker.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *tracker.SaveSessionInput) (*tracker.SaveSessionOutput, error) {
			assert.Equal(t, "s1", input.Session.ID)
			assert.Equal(t, "Algebra", input.Session.Chapter)
			assert.Equal(t, "Maths", input.Session.Subject)
			assert.Equal(t, 180.0, input.Session.Rate)
			return echoSave(false)(ctx, input)
		})

	out, err := executeCmd(t, app, "edit", "s1", "--chapter", "Algebra")
	require.NoError(t, err)
	assert.Contains(t, out, "Session updated")
	assert.Empty(t, stored.Chapter)
}

func TestEditCmd_NotFound(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: s9", tracker.ErrSessionNotFound))

	_, err := executeCmd(t, app, "edit", "s9", "--notes", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrSessionNotFound)
	assert.Contains(t, err.Error(), "Session not found")
}

func TestHistoryCmd(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		ListSessions(gomock.Any(), &tracker.ListSessionsInput{UserID: testUserID, Query: "chem", Limit: 5}).
		Return(&tracker.ListSessionsOutput{
			Sessions: []*models.Session{
				{ID: "s2", Date: "2024-06-15", StartTime: "18:00", EndTime: "19:00", BatchType: models.BatchTypeEvening, Subject: "Chemistry", Duration: 1, Earnings: 200},
				{ID: "s1", Date: "2024-06-14", StartTime: "07:00", EndTime: "08:00", BatchType: models.BatchTypeMorning, Subject: "Chemistry", Duration: 1, Earnings: 150},
			},
			Totals: models.Totals{Earnings: 350, Hours: 2, Count: 2},
		}, nil)

	out, err := executeCmd(t, app, "history", "--search", "chem", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, `SESSIONS MATCHING "CHEM"`)
	assert.Less(t, strings.Index(out, "s2"), strings.Index(out, "s1"))
	assert.Contains(t, out, "2 sessions · 2.0h · ₹350")
}

func TestHistoryCmd_DefaultLimit(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		ListSessions(gomock.Any(), &tracker.ListSessionsInput{UserID: testUserID, Limit: defaultHistoryLimit}).
		Return(&tracker.ListSessionsOutput{}, nil)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions found.")
}

func TestUserFlag(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		ListSessions(gomock.Any(), &tracker.ListSessionsInput{UserID: "someone-else", Limit: defaultHistoryLimit}).
		Return(&tracker.ListSessionsOutput{}, nil)

	_, err := executeCmd(t, app, "history", "--user", "someone-else")
	require.NoError(t, err)
}

func TestDuplicateCmd_PreviewDoesNotSave(t *testing.T) {
	app, mockTracker := testApp(t)

	draft := todayDraft()
	draft.Subject = "Biology"
	mockTracker.EXPECT().
		DuplicateSession(gomock.Any(), &tracker.DuplicateSessionInput{UserID: testUserID, SessionID: "s1"}).
		Return(&tracker.DuplicateSessionOutput{Draft: draft}, nil)

	out, err := executeCmd(t, app, "duplicate", "s1")
	require.NoError(t, err)
	assert.Contains(t, out, "Biology")
	assert.Contains(t, out, "--save")
}

func TestDuplicateCmd_Save(t *testing.T) {
	app, mockTracker := testApp(t)

	draft := todayDraft()
	gomock.InOrder(
		mockTracker.EXPECT().
			DuplicateSession(gomock.Any(), gomock.Any()).
			Return(&tracker.DuplicateSessionOutput{Draft: draft}, nil),
		mockTracker.EXPECT().
			SaveSession(gomock.Any(), &tracker.SaveSessionInput{UserID: testUserID, Session: draft}).
			DoAndReturn(echoSave(true)),
	)

	out, err := executeCmd(t, app, "duplicate", "s1", "--save")
	require.NoError(t, err)
	assert.Contains(t, out, "Session logged")
}

func TestDeleteCmd_RequiresYes(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(&tracker.GetSessionOutput{Session: todayDraft()}, nil)

	mockTracker.EXPECT().
		DeleteSession(gomock.Any(), &tracker.DeleteSessionInput{UserID: testUserID, SessionID: "s1", Confirmed: false}).
		Return(nil, tracker.ErrConfirmationRequired)

	out, err := executeCmd(t, app, "delete", "s1")
	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrConfirmationRequired)
	assert.Contains(t, out, "DELETE THIS SESSION?")
}

func TestDeleteCmd_Yes(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		DeleteSession(gomock.Any(), &tracker.DeleteSessionInput{UserID: testUserID, SessionID: "s1", Confirmed: true}).
		Return(&tracker.DeleteSessionOutput{SessionID: "s1"}, nil)

	out, err := executeCmd(t, app, "delete", "s1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted session s1")
}

func TestStatsCmd(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		GetDashboard(gomock.Any(), &tracker.GetDashboardInput{UserID: testUserID}).
		Return(&tracker.GetDashboardOutput{Dashboard: &models.Dashboard{
			Today:      models.Totals{Earnings: 300, Hours: 1.5, Count: 1},
			Week:       models.Totals{Earnings: 450, Hours: 2.5, Count: 2},
			Month:      models.Totals{Earnings: 1250, Hours: 6.5, Count: 5},
			Chart:      []models.DailyBucket{{Date: "2024-06-15", Label: "Sat", Amount: 300}},
			ChartScale: []float64{300, 200, 100, 0},
		}}, nil)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "TODAY")
	assert.Contains(t, out, "₹1,250")
	assert.Contains(t, out, "No sessions yet.")
	assert.Equal(t, chartWidth, strings.Count(out, "█"))
}

func TestStatsCmd_AccessDenied(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		GetDashboard(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("failed to list sessions: %w", permission.Classify(errors.New("NOPERM this user has no permissions"))))

	_, err := executeCmd(t, app, "stats")
	require.Error(t, err)
	assert.True(t, permission.IsDenied(err))

	var display *displayError
	require.ErrorAs(t, err, &display)
	assert.Equal(t, messaging.ErrorKindAccessDenied, display.Kind())
}

func TestReportCmd_Share(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		GenerateReport(gomock.Any(), &tracker.GenerateReportInput{UserID: testUserID, Window: accounting.LastMonth()}).
		Return(&tracker.GenerateReportOutput{Report: &models.Report{
			From: "2024-05-01",
			To:   "2024-05-31",
			Sessions: []*models.Session{
				{Date: "2024-05-03", Subject: "Physics", Duration: 1.5, Earnings: 225},
			},
			Totals: models.Totals{Earnings: 225, Hours: 1.5, Count: 1},
		}}, nil)

	out, err := executeCmd(t, app, "report", "--range", "last-month", "--share")
	require.NoError(t, err)
	assert.Contains(t, out, "📅 *TutorTrack Report*")
	assert.Contains(t, out, "Physics (1.5h) - ₹225")
}

func TestReportCmd_DefaultsToThisMonth(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		GenerateReport(gomock.Any(), &tracker.GenerateReportInput{UserID: testUserID, Window: accounting.ThisMonth()}).
		Return(&tracker.GenerateReportOutput{Report: &models.Report{From: "2024-06-01", To: "2024-06-15"}}, nil)

	out, err := executeCmd(t, app, "report")
	require.NoError(t, err)
	assert.Contains(t, out, report.EmptyMessage)
}

func TestReportCmd_InvalidRange(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "report", "--from", "2024-06-10", "--to", "2024-06-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, accounting.ErrInvalidWindow)
}

func TestReportCmd_UnknownGroup(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "report", "--group", "weekday")
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUnknownGrouping)
}

func TestRatesSetCmd_KeepsOtherRates(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		GetRates(gomock.Any(), &tracker.GetRatesInput{UserID: testUserID}).
		Return(&tracker.GetRatesOutput{Rates: &models.RateConfig{Morning: 150, Evening: 200, Default: 150}}, nil)

	mockTracker.EXPECT().
		UpdateRates(gomock.Any(), &tracker.UpdateRatesInput{
			UserID: testUserID,
			Rates:  &models.RateConfig{Morning: 150, Evening: 225, Default: 150},
		}).
		Return(&tracker.UpdateRatesOutput{Rates: &models.RateConfig{Morning: 150, Evening: 225, Default: 150}}, nil)

	out, err := executeCmd(t, app, "rates", "set", "--evening", "225")
	require.NoError(t, err)
	assert.Contains(t, out, "₹225/h")
}

func TestRatesSetCmd_NeedsAFlag(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "rates", "set")
	require.Error(t, err)
}

func TestRatesSetCmd_Negative(t *testing.T) {
	app, mockTracker := testApp(t)

	mockTracker.EXPECT().
		GetRates(gomock.Any(), gomock.Any()).
		Return(&tracker.GetRatesOutput{Rates: models.DefaultRateConfig()}, nil)

	mockTracker.EXPECT().
		UpdateRates(gomock.Any(), gomock.Any()).
		Return(nil, tracker.ErrInvalidRates)

	_, err := executeCmd(t, app, "rates", "set", "--morning=-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Check your rates")
}

type fakeBot struct {
	started, stopped bool
}

func (b *fakeBot) Start() error {
	b.started = true
	return nil
}

func (b *fakeBot) Stop() error {
	b.stopped = true
	return nil
}

func TestBotCmd_NotConfigured(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "bot")
	require.Error(t, err)
}

func TestBotCmd_StopsOnCancel(t *testing.T) {
	app, _ := testApp(t)
	bot := &fakeBot{}
	app.NewBot = func() (Runner, error) { return bot, nil }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := NewRootCmd(app)
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"bot"})
	require.NoError(t, root.ExecuteContext(ctx))

	assert.True(t, bot.started)
	assert.True(t, bot.stopped)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Physics", truncate("Physics", 10))
	assert.Equal(t, "Phys…", truncate("Physics", 5))
	assert.Equal(t, "गणि…", truncate("गणित का अभ्यास", 4))
}
