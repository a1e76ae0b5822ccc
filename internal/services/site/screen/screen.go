// Package screen maps shell entries onto the markup that shows them.
//
// The landing page, the studio home and every step view are rendered here so
// the root page, navigation posts and step updates agree on what a given
// entry looks like.
package screen

import (
	"net/http"
	"net/url"

	module "github.com/baucmind/site/internal/services/site/module"
	"github.com/baucmind/site/internal/services/site/platform/httpx"
	"github.com/baucmind/site/internal/services/site/platform/pagerender"
	sitetemplates "github.com/baucmind/site/internal/services/site/templates"
	"github.com/baucmind/site/internal/studio/registry"
	"github.com/baucmind/site/internal/studio/shell"
	"github.com/baucmind/site/internal/studio/steps"
	g "maragu.dev/gomponents"
)

// Options tunes one screen response.
type Options struct {
	// Form is the posted local state of the current step view.
	Form url.Values
	// NoticeKey is a catalog key shown above the studio body.
	NoticeKey  string
	StatusCode int
	// Modal opens a dialog over the screen on full-page renders.
	Modal func(sitetemplates.PageContext) g.Node
}

// Write renders entry as the whole screen.
func Write(w http.ResponseWriter, r *http.Request, deps module.Dependencies, entry shell.Entry, opts Options) error {
	page := pagerender.PageContext(w, r, deps, entry)
	var modal g.Node
	if opts.Modal != nil {
		modal = opts.Modal(page)
	}
	return pagerender.WriteModulePage(w, r, page, pagerender.ModulePage{
		Title:      Title(page, deps.StepRegistry()),
		StatusCode: opts.StatusCode,
		Fragment:   sitetemplates.Component(Node(page, deps, opts)),
		Modal:      modal,
	})
}

// WriteStep answers a view-local update. htmx swaps only the step view;
// plain posts get the whole page back.
func WriteStep(w http.ResponseWriter, r *http.Request, deps module.Dependencies, entry shell.Entry, form url.Values) error {
	if !httpx.WantsFragment(r) {
		return Write(w, r, deps, entry, Options{Form: form})
	}
	page := pagerender.PageContext(w, r, deps, entry)
	return pagerender.WriteModulePage(w, r, page, pagerender.ModulePage{
		Fragment: sitetemplates.Component(StepBody(page, deps.StepRegistry(), entry.Step, form)),
	})
}

// Node builds the screen for page.Entry.
func Node(page sitetemplates.PageContext, deps module.Dependencies, opts Options) g.Node {
	entry := page.Entry
	if !entry.IsStudio() {
		return sitetemplates.Landing(page, sitetemplates.LandingParams{SchedulingURL: deps.SchedulingURL})
	}
	reg := deps.StepRegistry()
	var body g.Node
	if entry.IsHome() {
		body = sitetemplates.StudioHome(page, reg)
	} else {
		body = StepBody(page, reg, entry.Step, opts.Form)
	}
	var notice string
	if opts.NoticeKey != "" {
		notice = sitetemplates.T(page.Loc, opts.NoticeKey)
	}
	return sitetemplates.Studio(page, sitetemplates.StudioView{Steps: reg, Body: body, Notice: notice})
}

// StepBody renders the view of step id with its local state rebuilt from
// form. Each view starts fresh when form is empty.
func StepBody(page sitetemplates.PageContext, reg *registry.Registry, id string, form url.Values) g.Node {
	chrome, ok := sitetemplates.NewStepChrome(reg, id)
	if !ok {
		return nil
	}
	if form == nil {
		form = url.Values{}
	}
	switch id {
	case registry.StepBriefing:
		return sitetemplates.BriefingStep(page, chrome, steps.BriefingFromForm(form))
	case registry.StepIdeas:
		return sitetemplates.IdeasStep(page, chrome, steps.IdeaSelectionFromForm(form))
	case registry.StepScript:
		return sitetemplates.ScriptStep(page, chrome, steps.ChoiceFromForm(form, steps.KnownScript))
	case registry.StepThumbnail:
		return sitetemplates.ThumbnailStep(page, chrome, steps.ChoiceFromForm(form, steps.KnownThumbnail))
	case registry.StepAssembly:
		return sitetemplates.AssemblyStep(page, chrome, steps.BrandGuardScript().Initial())
	case registry.StepPreflight:
		return sitetemplates.PreflightStep(page, chrome, steps.PreflightScript().Initial())
	case registry.StepPerformance:
		return sitetemplates.PerformanceStep(page, chrome, steps.CampaignObservatory(), steps.ObservatoryViewFromForm(form))
	default:
		return sitetemplates.StepPlaceholder(page, chrome)
	}
}

// Title is the document title for page.Entry.
func Title(page sitetemplates.PageContext, reg *registry.Registry) string {
	site := sitetemplates.T(page.Loc, "core.site.name")
	entry := page.Entry
	if !entry.IsStudio() {
		return site
	}
	if entry.IsHome() {
		return sitetemplates.T(page.Loc, "studio.home.title") + " · " + site
	}
	if step, ok := reg.Lookup(entry.Step); ok {
		return sitetemplates.T(page.Loc, step.Label) + " · " + site
	}
	return site
}
