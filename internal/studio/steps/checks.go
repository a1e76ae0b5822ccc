package steps

import (
	"context"
	"sort"
	"time"

	"github.com/baucmind/site/internal/platform/schedule"
)

// Kind is the closed set of outcomes a resolved check can report.
type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Status is the lifecycle position of a check.
type Status string

const (
	StatusPending  Status = "pending"
	StatusChecking Status = "checking"
	StatusSuccess  Status = Status(KindSuccess)
	StatusWarning  Status = Status(KindWarning)
	StatusError    Status = Status(KindError)
)

// Resolved reports whether the status carries a final outcome.
func (s Status) Resolved() bool {
	_, ok := s.Kind()
	return ok
}

// Kind returns the outcome for resolved statuses.
func (s Status) Kind() (Kind, bool) {
	switch s {
	case StatusSuccess:
		return KindSuccess, true
	case StatusWarning:
		return KindWarning, true
	case StatusError:
		return KindError, true
	default:
		return "", false
	}
}

// Overall summarises a board.
type Overall string

const (
	OverallChecking Overall = "checking"
	OverallReady    Overall = "ready"
	OverallWarning  Overall = "warning"
	OverallBlocked  Overall = "blocked"
)

// Check is one line of a scripted validation board. Name, Description and
// Details are catalog keys.
type Check struct {
	ID          string
	Name        string
	Description string
	Details     string
	Status      Status
	Progress    int
}

// Update changes one check At an offset from the start of a run. An empty
// Description keeps the current one.
type Update struct {
	At          time.Duration
	CheckID     string
	Status      Status
	Progress    int
	Description string
}

// Board is a snapshot of every check in a run.
type Board struct {
	Checks []Check
}

// Apply returns a copy of b with u applied.
func (b Board) Apply(u Update) Board {
	out := Board{Checks: make([]Check, len(b.Checks))}
	copy(out.Checks, b.Checks)
	for i := range out.Checks {
		if out.Checks[i].ID != u.CheckID {
			continue
		}
		out.Checks[i].Status = u.Status
		out.Checks[i].Progress = u.Progress
		if u.Description != "" {
			out.Checks[i].Description = u.Description
		}
	}
	return out
}

// Lookup returns the check with id.
func (b Board) Lookup(id string) (Check, bool) {
	for _, check := range b.Checks {
		if check.ID == id {
			return check, true
		}
	}
	return Check{}, false
}

// Overall is blocked on any error, checking while anything is unresolved,
// warning when resolved with warnings and ready otherwise.
func (b Board) Overall() Overall {
	unresolved := false
	warned := false
	for _, check := range b.Checks {
		switch check.Status {
		case StatusError:
			return OverallBlocked
		case StatusWarning:
			warned = true
		case StatusSuccess:
		default:
			unresolved = true
		}
	}
	switch {
	case unresolved:
		return OverallChecking
	case warned:
		return OverallWarning
	default:
		return OverallReady
	}
}

// Passed reports whether every check resolved without an error.
func (b Board) Passed() bool {
	overall := b.Overall()
	return overall == OverallReady || overall == OverallWarning
}

// Count returns how many checks are in status.
func (b Board) Count(status Status) int {
	n := 0
	for _, check := range b.Checks {
		if check.Status == status {
			n++
		}
	}
	return n
}

// Script is a deterministic timed sequence of check updates.
type Script struct {
	Checks  []Check
	Updates []Update
}

// Initial returns the board before any update fires.
func (s Script) Initial() Board {
	checks := make([]Check, len(s.Checks))
	copy(checks, s.Checks)
	return Board{Checks: checks}
}

// Final returns the board after every update.
func (s Script) Final() Board {
	board := s.Initial()
	for _, u := range s.ordered() {
		board = board.Apply(u)
	}
	return board
}

// Scaled returns a copy with every offset multiplied by factor. Non-positive
// factors leave the script unchanged.
func (s Script) Scaled(factor float64) Script {
	if factor <= 0 || factor == 1 {
		return s
	}
	out := Script{Checks: s.Checks, Updates: make([]Update, len(s.Updates))}
	for i, u := range s.Updates {
		u.At = time.Duration(float64(u.At) * factor)
		out.Updates[i] = u
	}
	return out
}

// Duration is the offset of the last update.
func (s Script) Duration() time.Duration {
	var last time.Duration
	for _, u := range s.Updates {
		if u.At > last {
			last = u.At
		}
	}
	return last
}

// Run schedules the updates on sched in offset order and calls emit with the
// board after each one. Each update is scheduled by the one before it, so
// emits never overtake each other. Stopping sched drops the rest.
func (s Script) Run(sched *schedule.Scheduler, emit func(context.Context, Board, Update)) {
	updates := s.ordered()
	if len(updates) == 0 {
		return
	}
	board := s.Initial()
	var step func(i int) schedule.Task
	step = func(i int) schedule.Task {
		return func(ctx context.Context) {
			u := updates[i]
			board = board.Apply(u)
			if emit != nil {
				emit(ctx, board, u)
			}
			if next := i + 1; next < len(updates) {
				sched.After(updates[next].At-u.At, step(next))
			}
		}
	}
	sched.After(updates[0].At, step(0))
}

func (s Script) ordered() []Update {
	updates := make([]Update, len(s.Updates))
	copy(updates, s.Updates)
	sort.SliceStable(updates, func(i, j int) bool { return updates[i].At < updates[j].At })
	return updates
}
