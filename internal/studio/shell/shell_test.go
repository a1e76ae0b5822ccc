package shell

import (
	"errors"
	"testing"

	"github.com/baucmind/site/internal/studio/registry"
)

func newStudioShell(t *testing.T, step string) (*Shell, *MemoryHistory) {
	t.Helper()
	initial := StudioEntry(step)
	history := NewMemoryHistory(initial)
	return New(registry.Default(), history, initial), history
}

func TestAdvanceWalksEveryStep(t *testing.T) {
	t.Parallel()

	s, history := newStudioShell(t, registry.StepBriefing)
	for _, want := range []string{registry.StepIdeas, registry.StepScript, registry.StepThumbnail, registry.StepAssembly, registry.StepPreflight, registry.StepPerformance} {
		s.Advance()
		if got := s.Current().Step; got != want {
			t.Fatalf("Advance() step = %q, want %q", got, want)
		}
	}
	if history.Len() != 7 {
		t.Fatalf("history.Len() = %d, want %d", history.Len(), 7)
	}
}

func TestAdvanceOnLastStepIsNoop(t *testing.T) {
	t.Parallel()

	s, history := newStudioShell(t, registry.StepPerformance)
	s.Advance()
	if got := s.Current().Step; got != registry.StepPerformance {
		t.Fatalf("step = %q, want %q", got, registry.StepPerformance)
	}
	if history.Len() != 1 {
		t.Fatalf("history.Len() = %d, want 1", history.Len())
	}
}

func TestAdvanceFromHomeEntersFirstStep(t *testing.T) {
	t.Parallel()

	s, _ := newStudioShell(t, Home)
	s.Advance()
	if got := s.Current().Step; got != registry.StepBriefing {
		t.Fatalf("step = %q, want %q", got, registry.StepBriefing)
	}
}

func TestRetreat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from string
		want string
		push bool
	}{
		{from: registry.StepIdeas, want: registry.StepBriefing, push: true},
		{from: registry.StepBriefing, want: Home, push: true},
		{from: Home, want: Home},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.from, func(t *testing.T) {
			t.Parallel()
			s, history := newStudioShell(t, tc.from)
			s.Retreat()
			if got := s.Current().Step; got != tc.want {
				t.Fatalf("Retreat() from %q = %q, want %q", tc.from, got, tc.want)
			}
			wantLen := 1
			if tc.push {
				wantLen = 2
			}
			if history.Len() != wantLen {
				t.Fatalf("history.Len() = %d, want %d", history.Len(), wantLen)
			}
		})
	}
}

func TestRetreatFromEveryStepFollowsRegistry(t *testing.T) {
	t.Parallel()

	reg := registry.Default()
	for _, step := range reg.Steps()[1:] {
		s, history := newStudioShell(t, step.ID)
		s.Retreat()
		prev, ok := reg.PreviousOf(step.ID)
		if !ok {
			t.Fatalf("PreviousOf(%q) ok = false", step.ID)
		}
		if got := s.Current().Step; got != prev.ID {
			t.Fatalf("Retreat() from %q = %q, want %q", step.ID, got, prev.ID)
		}
		if history.Len() != 2 {
			t.Fatalf("Retreat() from %q history.Len() = %d, want 2", step.ID, history.Len())
		}
	}
}

func TestJumpThenRetreatWalksBackHome(t *testing.T) {
	t.Parallel()

	s, history := newStudioShell(t, Home)
	if err := s.JumpTo(registry.StepScript); err != nil {
		t.Fatalf("JumpTo(%q) error = %v", registry.StepScript, err)
	}
	if got := s.Current().Step; got != registry.StepScript {
		t.Fatalf("JumpTo() step = %q, want %q", got, registry.StepScript)
	}
	var visited []string
	for range 3 {
		s.Retreat()
		visited = append(visited, s.Current().Step)
	}
	want := []string{registry.StepIdeas, registry.StepBriefing, Home}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("Retreat() sequence = %v, want %v", visited, want)
		}
	}
	if history.Len() != 5 {
		t.Fatalf("history.Len() = %d, want 5", history.Len())
	}
}

func TestJumpToIgnoresAdjacency(t *testing.T) {
	t.Parallel()

	s, _ := newStudioShell(t, Home)
	if err := s.JumpTo(registry.StepPreflight); err != nil {
		t.Fatalf("JumpTo() error = %v", err)
	}
	if got := s.Current().Step; got != registry.StepPreflight {
		t.Fatalf("step = %q, want %q", got, registry.StepPreflight)
	}
}

func TestJumpToUnknownStepLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	s, history := newStudioShell(t, registry.StepScript)
	err := s.JumpTo("storyboard")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("JumpTo() error = %v, want *ConfigurationError", err)
	}
	if cfgErr.StepID != "storyboard" {
		t.Fatalf("StepID = %q, want %q", cfgErr.StepID, "storyboard")
	}
	if got := s.Current().Step; got != registry.StepScript {
		t.Fatalf("step = %q, want %q", got, registry.StepScript)
	}
	if history.Len() != 1 {
		t.Fatalf("history.Len() = %d, want 1", history.Len())
	}
}

func TestGoHome(t *testing.T) {
	t.Parallel()

	s, history := newStudioShell(t, registry.StepAssembly)
	s.GoHome()
	s.GoHome()
	if !s.Current().IsHome() {
		t.Fatalf("step = %q, want home", s.Current().Step)
	}
	if history.Len() != 2 {
		t.Fatalf("history.Len() = %d, want 2", history.Len())
	}
}

func TestToStudioIsIdempotent(t *testing.T) {
	t.Parallel()

	history := NewMemoryHistory(LandingEntry())
	s := New(registry.Default(), history, LandingEntry())
	s.ToStudio()
	s.ToStudio()
	if history.Len() != 2 {
		t.Fatalf("history.Len() = %d, want 2", history.Len())
	}
	if got := s.Current(); got != StudioEntry(Home) {
		t.Fatalf("Current() = %+v, want studio home", got)
	}

	s.ToLanding()
	s.ToLanding()
	if history.Len() != 3 {
		t.Fatalf("history.Len() = %d, want 3", history.Len())
	}
	if s.Current().IsStudio() {
		t.Fatal("Current().IsStudio() = true, want false")
	}
}

func TestStepOperationsIgnoredOnLanding(t *testing.T) {
	t.Parallel()

	history := NewMemoryHistory(LandingEntry())
	s := New(registry.Default(), history, LandingEntry())
	s.Advance()
	s.Retreat()
	s.GoHome()
	if err := s.JumpTo(registry.StepIdeas); err != nil {
		t.Fatalf("JumpTo() error = %v", err)
	}
	if s.Current() != LandingEntry() {
		t.Fatalf("Current() = %+v, want landing", s.Current())
	}
	if history.Len() != 1 {
		t.Fatalf("history.Len() = %d, want 1", history.Len())
	}
}

func TestRestoreRoundTripWritesNoHistory(t *testing.T) {
	t.Parallel()

	history := NewMemoryHistory(LandingEntry())
	s := New(registry.Default(), history, LandingEntry())
	s.ToStudio()
	s.Advance()

	back, ok := history.Back()
	if !ok {
		t.Fatal("Back() ok = false")
	}
	s.Restore(back)
	if got := s.Current(); got != StudioEntry(Home) {
		t.Fatalf("after back Current() = %+v, want studio home", got)
	}

	back, _ = history.Back()
	s.Restore(back)
	if s.Current() != LandingEntry() {
		t.Fatalf("after second back Current() = %+v, want landing", s.Current())
	}

	forward, _ := history.Forward()
	s.Restore(forward)
	if got := s.Current(); got != StudioEntry(Home) {
		t.Fatalf("after forward Current() = %+v, want studio home", got)
	}
	if history.Len() != 3 {
		t.Fatalf("history.Len() = %d, want 3", history.Len())
	}
}

func TestRestoreNormalizesUnknownStep(t *testing.T) {
	t.Parallel()

	s, _ := newStudioShell(t, registry.StepIdeas)
	s.Restore(StudioEntry("gone"))
	if got := s.Current(); got != StudioEntry(Home) {
		t.Fatalf("Current() = %+v, want studio home", got)
	}
}

func TestNewWithNilHistoryDiscards(t *testing.T) {
	t.Parallel()

	s := New(nil, nil, StudioEntry(registry.StepBriefing))
	s.Advance()
	if got := s.Current().Step; got != registry.StepIdeas {
		t.Fatalf("step = %q, want %q", got, registry.StepIdeas)
	}
}
