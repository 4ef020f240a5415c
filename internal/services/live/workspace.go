package live

import (
	"sync"

	"github.com/KirkDiggler/tutortrack/internal/accounting"
	"github.com/KirkDiggler/tutortrack/internal/common/clock"
	"github.com/KirkDiggler/tutortrack/internal/common/permission"
	"github.com/KirkDiggler/tutortrack/internal/models"
)

// State is the load state of a workspace
type State int

const (
	// StateLoading means no session snapshot has arrived yet
	StateLoading State = iota

	// StateReady means the working set mirrors the last snapshot
	StateReady

	// StateAccessDenied means the store refused access; no data is exposed
	StateAccessDenied

	// StateFailed means the last load failed for another reason
	StateFailed
)

// String returns the display name of the state
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateAccessDenied:
		return "access denied"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Workspace is a Listener that holds the current working set. Dashboards are
// computed on read against the clock.
type Workspace struct {
	clock clock.Clock

	mu           sync.RWMutex
	state        State
	err          error
	sessions     []*models.Session
	haveSessions bool
	rates        *models.RateConfig
	onChange     func(State)
}

// NewWorkspace creates an empty workspace in the loading state. A nil clock
// uses the system clock.
func NewWorkspace(clk clock.Clock) *Workspace {
	if clk == nil {
		clk = clock.New(nil)
	}
	return &Workspace{
		clock: clk,
		state: StateLoading,
	}
}

// OnChange registers a callback run after every snapshot or failure
func (w *Workspace) OnChange(fn func(State)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// ReplaceSessions discards the working set and adopts the snapshot
func (w *Workspace) ReplaceSessions(sessions []*models.Session) {
	working := make([]*models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s != nil {
			working = append(working, s.Clone())
		}
	}

	w.mu.Lock()
	w.sessions = working
	w.haveSessions = true
	w.state = StateReady
	w.err = nil
	w.mu.Unlock()

	w.changed()
}

// ReplaceRates adopts the rate snapshot
func (w *Workspace) ReplaceRates(rates *models.RateConfig) {
	var copied *models.RateConfig
	if rates != nil {
		r := *rates
		copied = &r
	}

	w.mu.Lock()
	w.rates = copied
	w.mu.Unlock()

	w.changed()
}

// Fail records a load failure. A permission failure drops the working set so
// stale data is never shown as current.
func (w *Workspace) Fail(err error) {
	w.mu.Lock()
	w.err = err
	if permission.IsDenied(err) {
		w.state = StateAccessDenied
		w.sessions = nil
		w.haveSessions = false
		w.rates = nil
	} else {
		w.state = StateFailed
	}
	w.mu.Unlock()

	w.changed()
}

// State returns the current load state
func (w *Workspace) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

// Err returns the last load failure, if the workspace is not ready
func (w *Workspace) Err() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.err
}

// Sessions returns the working set in history order
func (w *Workspace) Sessions() ([]*models.Session, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if err := w.unavailable(); err != nil {
		return nil, err
	}
	return accounting.SortForHistory(w.sessions), nil
}

// Dashboard computes the dashboard over the last snapshot as of now
func (w *Workspace) Dashboard() (*models.Dashboard, error) {
	w.mu.RLock()
	err := w.unavailable()
	sessions := w.sessions
	w.mu.RUnlock()

	if err != nil {
		return nil, err
	}
	return accounting.BuildDashboard(sessions, w.clock.Now()), nil
}

// Rates returns the last rate snapshot
func (w *Workspace) Rates() (*models.RateConfig, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.state == StateAccessDenied {
		return nil, w.err
	}
	if w.rates == nil {
		return nil, ErrNotLoaded
	}
	r := *w.rates
	return &r, nil
}

// Report builds a report over the working set
func (w *Workspace) Report(window accounting.Window) (*models.Report, error) {
	w.mu.RLock()
	err := w.unavailable()
	sessions := w.sessions
	w.mu.RUnlock()

	if err != nil {
		return nil, err
	}
	return accounting.BuildReport(sessions, window, w.clock.Now())
}

// unavailable must be called with the lock held
func (w *Workspace) unavailable() error {
	if w.state == StateAccessDenied {
		return w.err
	}
	if !w.haveSessions {
		return ErrNotLoaded
	}
	return nil
}

func (w *Workspace) changed() {
	w.mu.RLock()
	fn := w.onChange
	state := w.state
	w.mu.RUnlock()

	if fn != nil {
		fn(state)
	}
}
