// Package registry holds the ordered set of studio steps.
//
// The registry is built once and never mutated. Neighbour lookups go through a
// precomputed id index so every query is O(1).
package registry

import (
	"fmt"
	"strings"
)

// Home is the reserved screen id for the studio landing grid. It is never a
// registered step.
const Home = "home"

// NotFound is returned by IndexOf for ids outside the registry.
const NotFound = -1

// Step ids in workflow order.
const (
	StepBriefing    = "briefing"
	StepIdeas       = "ideas"
	StepScript      = "script"
	StepThumbnail   = "thumbnail"
	StepAssembly    = "assembly"
	StepPreflight   = "preflight"
	StepPerformance = "performance"
)

// Step is one stage of the studio workflow.
//
// Label and Description are message catalog keys; handlers resolve them with
// the request printer.
type Step struct {
	ID          string
	Label       string
	Description string
}

// Registry is an immutable ordered list of steps.
type Registry struct {
	steps []Step
	index map[string]int
}

// New validates steps and builds a registry.
func New(steps ...Step) (*Registry, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("at least one step is required")
	}
	r := &Registry{
		steps: make([]Step, 0, len(steps)),
		index: make(map[string]int, len(steps)),
	}
	for _, step := range steps {
		id := strings.TrimSpace(step.ID)
		if id == "" {
			return nil, fmt.Errorf("step id is required")
		}
		if id == Home {
			return nil, fmt.Errorf("step id %q is reserved", Home)
		}
		if _, exists := r.index[id]; exists {
			return nil, fmt.Errorf("duplicate step id %q", id)
		}
		step.ID = id
		r.index[id] = len(r.steps)
		r.steps = append(r.steps, step)
	}
	return r, nil
}

// MustNew is New for package-level registries; it panics on invalid input.
func MustNew(steps ...Step) *Registry {
	r, err := New(steps...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = MustNew(
	Step{ID: StepBriefing, Label: "studio.step.briefing.label", Description: "studio.step.briefing.description"},
	Step{ID: StepIdeas, Label: "studio.step.ideas.label", Description: "studio.step.ideas.description"},
	Step{ID: StepScript, Label: "studio.step.script.label", Description: "studio.step.script.description"},
	Step{ID: StepThumbnail, Label: "studio.step.thumbnail.label", Description: "studio.step.thumbnail.description"},
	Step{ID: StepAssembly, Label: "studio.step.assembly.label", Description: "studio.step.assembly.description"},
	Step{ID: StepPreflight, Label: "studio.step.preflight.label", Description: "studio.step.preflight.description"},
	Step{ID: StepPerformance, Label: "studio.step.performance.label", Description: "studio.step.performance.description"},
)

// Default returns the seven-step campaign workflow.
func Default() *Registry {
	return defaultRegistry
}

// Steps returns a copy of the ordered steps.
func (r *Registry) Steps() []Step {
	if r == nil {
		return nil
	}
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Len returns the number of steps.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.steps)
}

// IndexOf returns the position of id, or NotFound.
func (r *Registry) IndexOf(id string) int {
	if r == nil {
		return NotFound
	}
	idx, ok := r.index[id]
	if !ok {
		return NotFound
	}
	return idx
}

// Contains reports whether id is a registered step.
func (r *Registry) Contains(id string) bool {
	return r.IndexOf(id) != NotFound
}

// Lookup returns the step registered under id.
func (r *Registry) Lookup(id string) (Step, bool) {
	idx := r.IndexOf(id)
	if idx == NotFound {
		return Step{}, false
	}
	return r.steps[idx], true
}

// At returns the step at position idx.
func (r *Registry) At(idx int) (Step, bool) {
	if r == nil || idx < 0 || idx >= len(r.steps) {
		return Step{}, false
	}
	return r.steps[idx], true
}

// NextOf returns the successor of id. The last step has none.
func (r *Registry) NextOf(id string) (Step, bool) {
	idx := r.IndexOf(id)
	if idx == NotFound {
		return Step{}, false
	}
	return r.At(idx + 1)
}

// PreviousOf returns the predecessor of id. The first step has none.
func (r *Registry) PreviousOf(id string) (Step, bool) {
	idx := r.IndexOf(id)
	if idx == NotFound {
		return Step{}, false
	}
	return r.At(idx - 1)
}

// First returns the first step.
func (r *Registry) First() Step {
	step, _ := r.At(0)
	return step
}

// Last returns the last step.
func (r *Registry) Last() Step {
	step, _ := r.At(r.Len() - 1)
	return step
}
