// Package routepath holds the site's route constants and builders.
package routepath

import "net/url"

const (
	Root         = "/"
	Health       = "/up"
	StaticPrefix = "/static/"

	StudioPrefix       = "/studio/"
	StudioNav          = "/studio/nav"
	StudioStepsPrefix  = "/studio/steps/"
	StudioChecksPrefix = "/studio/checks/"

	DemoPrefix  = "/demo/"
	DemoRequest = "/demo/request"
)

// StudioStep is the local update endpoint of a step view.
func StudioStep(stepID string) string {
	return StudioStepsPrefix + escapeSegment(stepID)
}

// StudioStepNext is the gated advance endpoint of a step view.
func StudioStepNext(stepID string) string {
	return StudioStep(stepID) + "/next"
}

// StudioChecks is the WebSocket endpoint streaming a scripted check run.
func StudioChecks(run string) string {
	return StudioChecksPrefix + escapeSegment(run)
}

func escapeSegment(raw string) string {
	return url.PathEscape(raw)
}
