package icons

import "strings"

// ID names an icon by what it stands for.
type ID string

const (
	Generic   ID = "generic"
	Alert     ID = "alert"
	Brain     ID = "brain"
	Bulb      ID = "bulb"
	Camera    ID = "camera"
	Chart     ID = "chart"
	Check     ID = "check"
	Crown     ID = "crown"
	Heart     ID = "heart"
	Lightbulb ID = "lightbulb"
	Message   ID = "message"
	Pause     ID = "pause"
	Play      ID = "play"
	Shield    ID = "shield"
	Target    ID = "target"
	Zap       ID = "zap"
)

// Definition describes a catalog entry.
type Definition struct {
	ID          ID
	Description string
}

var catalog = []Definition{
	{ID: Generic, Description: "Fallback for unknown ids."},
	{ID: Alert, Description: "Disconnects and warnings."},
	{ID: Brain, Description: "AI features and automation."},
	{ID: Bulb, Description: "Idea generation."},
	{ID: Camera, Description: "Content creation."},
	{ID: Chart, Description: "Traffic management and results."},
	{ID: Check, Description: "Preflight validation."},
	{ID: Crown, Description: "Premium strategy."},
	{ID: Heart, Description: "Emotional appeal ideas."},
	{ID: Lightbulb, Description: "Authority and social proof ideas."},
	{ID: Message, Description: "Narrative reports."},
	{ID: Pause, Description: "Pause live data."},
	{ID: Play, Description: "Video playback and live data."},
	{ID: Shield, Description: "BrandGuard checks."},
	{ID: Target, Description: "Focused benefit ideas."},
	{ID: Zap, Description: "Urgency and quick tips."},
}

// Catalog returns every known icon definition.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Parse resolves a raw id, falling back to Generic for unknown values.
func Parse(raw string) (ID, bool) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := lucideIconNames[id]; ok {
		return id, true
	}
	return Generic, false
}
