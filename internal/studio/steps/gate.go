package steps

import (
	"net/url"

	"github.com/baucmind/site/internal/studio/registry"
)

// Ready evaluates the gate of step id against the local state posted by its
// view. Steps without a gate are always ready.
func Ready(id string, form url.Values) bool {
	switch id {
	case registry.StepBriefing:
		return BriefingFromForm(form).Ready()
	case registry.StepIdeas:
		return IdeaSelectionFromForm(form).Ready()
	case registry.StepScript:
		return ChoiceFromForm(form, KnownScript).Ready()
	case registry.StepThumbnail:
		return ChoiceFromForm(form, KnownThumbnail).Ready()
	case registry.StepAssembly:
		return AssemblyReady()
	case registry.StepPreflight:
		// The board lives on the client; the server trusts only the script.
		return PreflightReady(PreflightScript().Final())
	default:
		return true
	}
}
