// Package shell owns studio navigation state and its history entries.
package shell

import (
	"github.com/baucmind/site/internal/studio/registry"
)

// Shell tracks the current mode and step and records every state change as
// exactly one history entry. Operations that leave the state unchanged write
// nothing.
type Shell struct {
	steps   *registry.Registry
	history History
	current Entry
}

// New builds a shell positioned at initial. A nil history discards entries.
func New(steps *registry.Registry, history History, initial Entry) *Shell {
	if steps == nil {
		steps = registry.Default()
	}
	if history == nil {
		history = discardHistory{}
	}
	return &Shell{
		steps:   steps,
		history: history,
		current: initial.Normalize(steps),
	}
}

// Current returns the active entry.
func (s *Shell) Current() Entry {
	return s.current
}

// Steps returns the registry the shell navigates.
func (s *Shell) Steps() *registry.Registry {
	return s.steps
}

// ToStudio enters the studio at its home grid.
func (s *Shell) ToStudio() {
	if s.current.IsStudio() {
		return
	}
	s.transition(StudioEntry(Home))
}

// ToLanding leaves the studio.
func (s *Shell) ToLanding() {
	if !s.current.IsStudio() {
		return
	}
	s.transition(LandingEntry())
}

// Advance moves to the next step. It stays put on the last step and enters
// the first step from home.
func (s *Shell) Advance() {
	if !s.current.IsStudio() {
		return
	}
	if s.current.IsHome() {
		s.transition(StudioEntry(s.steps.First().ID))
		return
	}
	next, ok := s.steps.NextOf(s.current.Step)
	if !ok {
		return
	}
	s.transition(StudioEntry(next.ID))
}

// Retreat moves to the previous step, or home from the first step.
func (s *Shell) Retreat() {
	if !s.current.IsStudio() || s.current.IsHome() {
		return
	}
	prev, ok := s.steps.PreviousOf(s.current.Step)
	if !ok {
		s.transition(StudioEntry(Home))
		return
	}
	s.transition(StudioEntry(prev.ID))
}

// JumpTo moves directly to id. Unknown ids leave the state unchanged and
// return a *ConfigurationError.
func (s *Shell) JumpTo(id string) error {
	if id != Home && !s.steps.Contains(id) {
		return &ConfigurationError{StepID: id}
	}
	if !s.current.IsStudio() {
		return nil
	}
	s.transition(StudioEntry(id))
	return nil
}

// GoHome returns to the studio grid.
func (s *Shell) GoHome() {
	if !s.current.IsStudio() {
		return
	}
	s.transition(StudioEntry(Home))
}

// Restore applies an entry delivered by browser back/forward navigation. The
// entry already exists in history, so nothing is written.
func (s *Shell) Restore(e Entry) {
	s.current = e.Normalize(s.steps)
}

func (s *Shell) transition(next Entry) {
	if next == s.current {
		return
	}
	s.current = next
	s.history.Push(next)
}
