// Package module defines the feature contract used by site composition.
package module

import (
	"log"
	"net/http"
	"time"

	"github.com/baucmind/site/internal/lead"
	"github.com/baucmind/site/internal/studio/registry"
)

// ResolveLanguage returns a forced request language, or "" to negotiate.
type ResolveLanguage func(*http.Request) string

// Dependencies carries the shared collaborators every module may use.
type Dependencies struct {
	Steps *registry.Registry
	Leads lead.Submitter
	// SchedulingURL is the external booking page behind "schedule demo".
	SchedulingURL string
	// DevMode makes configuration errors visible instead of silently
	// re-rendering the current screen.
	DevMode bool
	// CheckTimeScale multiplies scripted check offsets. Zero means 1.
	CheckTimeScale float64
	// LeadSubmitTimeout bounds one demo request submission.
	LeadSubmitTimeout time.Duration
	// SocketLinger keeps a check stream open after its script finishes.
	SocketLinger    time.Duration
	ResolveLanguage ResolveLanguage
	Logger          *log.Logger
}

// Logf logs through the configured logger or the default one.
func (d Dependencies) Logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// StepRegistry returns the configured steps or the default workflow.
func (d Dependencies) StepRegistry() *registry.Registry {
	if d.Steps != nil {
		return d.Steps
	}
	return registry.Default()
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by site composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
