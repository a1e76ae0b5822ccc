package steps

import (
	"math"
	"net/url"
	"strings"
)

// Briefing form field names.
const (
	FieldObjective   = "objective"
	FieldAudience    = "audience"
	FieldCoreMessage = "core_message"
	FieldBudget      = "budget"
	FieldDeadline    = "deadline"
	FieldNotes       = "notes"
)

// BriefingFields lists the briefing inputs in form order.
var BriefingFields = []string{FieldObjective, FieldAudience, FieldCoreMessage, FieldBudget, FieldDeadline, FieldNotes}

const (
	// BriefingCeiling is the completeness of a fully filled briefing. The
	// last tenth is reserved for refinement the mock never performs.
	BriefingCeiling = 90
	// BriefingThreshold gates the ideas step.
	BriefingThreshold = 60
)

// BriefingStage labels the completeness gauge.
type BriefingStage string

const (
	BriefingStarting   BriefingStage = "starting"
	BriefingInProgress BriefingStage = "in_progress"
	BriefingAlmost     BriefingStage = "almost_ready"
	BriefingOptimized  BriefingStage = "optimized"
)

// Briefing is the campaign brief being typed in.
type Briefing struct {
	Objective   string
	Audience    string
	CoreMessage string
	Budget      string
	Deadline    string
	Notes       string
}

// BriefingFromForm reads a briefing from posted form values.
func BriefingFromForm(form url.Values) Briefing {
	return Briefing{
		Objective:   form.Get(FieldObjective),
		Audience:    form.Get(FieldAudience),
		CoreMessage: form.Get(FieldCoreMessage),
		Budget:      form.Get(FieldBudget),
		Deadline:    form.Get(FieldDeadline),
		Notes:       form.Get(FieldNotes),
	}
}

// Values returns field values keyed by form name.
func (b Briefing) Values() map[string]string {
	return map[string]string{
		FieldObjective:   b.Objective,
		FieldAudience:    b.Audience,
		FieldCoreMessage: b.CoreMessage,
		FieldBudget:      b.Budget,
		FieldDeadline:    b.Deadline,
		FieldNotes:       b.Notes,
	}
}

// Filled counts fields with non-blank content.
func (b Briefing) Filled() int {
	n := 0
	for _, value := range b.Values() {
		if strings.TrimSpace(value) != "" {
			n++
		}
	}
	return n
}

// Completeness is round(filled/total × 90), rounding halves up.
func (b Briefing) Completeness() int {
	ratio := float64(b.Filled()) / float64(len(BriefingFields))
	return int(math.Floor(ratio*BriefingCeiling + 0.5))
}

// Ready is the briefing gate.
func (b Briefing) Ready() bool {
	return b.Completeness() >= BriefingThreshold
}

// Remaining is how many points are missing to pass the gate.
func (b Briefing) Remaining() int {
	if b.Ready() {
		return 0
	}
	return BriefingThreshold - b.Completeness()
}

// Stage buckets the completeness for the gauge label.
func (b Briefing) Stage() BriefingStage {
	switch c := b.Completeness(); {
	case c < 30:
		return BriefingStarting
	case c < BriefingThreshold:
		return BriefingInProgress
	case c < BriefingCeiling:
		return BriefingAlmost
	default:
		return BriefingOptimized
	}
}
