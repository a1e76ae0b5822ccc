package shell

import (
	"net/url"
	"strings"

	"github.com/baucmind/site/internal/studio/registry"
)

// Mode is the top-level surface shown to the visitor.
type Mode string

const (
	ModeLanding Mode = "landing"
	ModeStudio  Mode = "studio"
)

// Query parameters that carry shell state in the address.
const (
	ModeParam = "mode"
	StepParam = "step"
)

// Home is the studio grid screen.
const Home = registry.Home

// Entry is one navigable history entry.
type Entry struct {
	Mode Mode
	Step string
}

// LandingEntry is the entry for the marketing page.
func LandingEntry() Entry {
	return Entry{Mode: ModeLanding, Step: Home}
}

// StudioEntry is the entry for a studio screen.
func StudioEntry(step string) Entry {
	return Entry{Mode: ModeStudio, Step: step}
}

// IsStudio reports whether the entry shows the studio.
func (e Entry) IsStudio() bool {
	return e.Mode == ModeStudio
}

// IsHome reports whether the entry shows the studio grid or the landing page.
func (e Entry) IsHome() bool {
	return e.Step == Home
}

// Normalize coerces the entry onto a valid state for steps: unknown modes fall
// back to landing and unknown step ids fall back to home.
func (e Entry) Normalize(steps *registry.Registry) Entry {
	if e.Mode != ModeStudio {
		return LandingEntry()
	}
	if e.Step == Home || !steps.Contains(e.Step) {
		return StudioEntry(Home)
	}
	return e
}

// Query renders the entry as address query parameters.
func (e Entry) Query() url.Values {
	values := url.Values{}
	if e.Mode != ModeStudio {
		return values
	}
	values.Set(ModeParam, string(ModeStudio))
	if e.Step != "" && e.Step != Home {
		values.Set(StepParam, e.Step)
	}
	return values
}

// URL returns the canonical address for the entry.
func (e Entry) URL() string {
	query := e.Query()
	if len(query) == 0 {
		return "/"
	}
	return (&url.URL{Path: "/", RawQuery: query.Encode()}).String()
}

// ParseEntry derives an entry from address query parameters. Only
// mode=studio selects the studio; step is honoured inside the studio when it
// names a registered step.
func ParseEntry(query url.Values, steps *registry.Registry) Entry {
	if strings.TrimSpace(query.Get(ModeParam)) != string(ModeStudio) {
		return LandingEntry()
	}
	return StudioEntry(strings.TrimSpace(query.Get(StepParam))).Normalize(steps)
}
