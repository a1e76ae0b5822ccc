package templates

import (
	"github.com/baucmind/site/internal/services/site/routepath"
	"github.com/baucmind/site/internal/studio/registry"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// StudioView is one studio screen: the chrome plus a home grid or step view.
type StudioView struct {
	Steps *registry.Registry
	Body  g.Node
	// Notice is a localized message shown above the body.
	Notice string
}

// StepChrome locates a step view in the workflow.
type StepChrome struct {
	Step  registry.Step
	Index int
	Total int
}

// NewStepChrome resolves chrome for id. ok is false for unknown ids.
func NewStepChrome(steps *registry.Registry, id string) (StepChrome, bool) {
	step, ok := steps.Lookup(id)
	if !ok {
		return StepChrome{}, false
	}
	return StepChrome{Step: step, Index: steps.IndexOf(id), Total: steps.Len()}, true
}

// Studio renders the studio screen.
func Studio(page PageContext, view StudioView) g.Node {
	return Div(ID(screenID), Class("screen screen-studio"),
		g.Attr("data-mode", "studio"),
		g.Attr("data-step", page.Entry.Step),
		studioBar(page, view.Steps),
		g.If(view.Notice != "", P(Class("notice notice-error"), Role("alert"), g.Text(view.Notice))),
		Main(Class("studio-main"), view.Body),
	)
}

func studioBar(page PageContext, steps *registry.Registry) g.Node {
	current := steps.IndexOf(page.Entry.Step)
	return Header(Class("studio-bar"),
		navForm(page, OpLanding, "", "",
			submitButton("btn-ghost", g.Text(T(page.Loc, "studio.nav.back_to_site"))),
		),
		navForm(page, OpHome, "", "",
			submitButton("btn-link brand", g.Text(T(page.Loc, "core.site.name"))),
		),
		Ol(Class("progress-dots"), g.Attr("aria-label", T(page.Loc, "studio.nav.progress")),
			g.Map(steps.Steps(), func(step registry.Step) g.Node {
				idx := steps.IndexOf(step.ID)
				state := "upcoming"
				switch {
				case current == registry.NotFound:
				case idx < current:
					state = "done"
				case idx == current:
					state = "current"
				}
				return Li(Class("dot dot-"+state),
					g.If(state == "current", g.Attr("aria-current", "step")),
					navForm(page, OpJump, step.ID, "",
						Button(Type("submit"), Class("dot-button"),
							g.Attr("title", T(page.Loc, step.Label)),
							Span(Class("sr-only"), g.Text(T(page.Loc, step.Label))),
						),
					),
				)
			}),
		),
		languageSwitcher(page),
	)
}

// StudioHome renders the studio grid of step cards.
func StudioHome(page PageContext, steps *registry.Registry) g.Node {
	first := steps.First()
	return Section(Class("studio-home"),
		H1(g.Text(T(page.Loc, "studio.home.title"))),
		P(Class("lead"), g.Text(T(page.Loc, "studio.home.intro"))),
		Div(Class("grid grid-4"),
			g.Map(steps.Steps(), func(step registry.Step) g.Node {
				return navForm(page, OpJump, step.ID, "card step-card",
					Button(Type("submit"), Class("card-button"),
						Span(Class("step-number"), g.Text(itoa(steps.IndexOf(step.ID)+1))),
						H3(g.Text(T(page.Loc, step.Label))),
						P(g.Text(T(page.Loc, step.Description))),
					),
				)
			}),
		),
		navForm(page, OpJump, first.ID, "centered",
			submitButton("btn-primary btn-large", g.Text(T(page.Loc, "studio.home.start"))),
		),
		P(Class("muted centered"), g.Text(T(page.Loc, "studio.home.powered_by"))),
	)
}

// stepView wraps a step body with its header. The back button posts a
// retreat on its own form so step forms never nest.
func stepView(page PageContext, chrome StepChrome, body ...g.Node) g.Node {
	id := chrome.Step.ID
	return Section(ID(stepViewID), Class("step step-"+id),
		Header(Class("step-header"),
			navForm(page, OpRetreat, "", "",
				submitButton("btn-outline", g.Text(T(page.Loc, "studio.nav.back"))),
			),
			H1(g.Text(T(page.Loc, "studio."+id+".title"))),
			Span(Class("phase"), g.Text(T(page.Loc, "studio.nav.phase", chrome.Index+1, chrome.Total, T(page.Loc, chrome.Step.Label)))),
		),
		g.Group(body),
	)
}

// StepPlaceholder renders a registered step that has no dedicated view.
func StepPlaceholder(page PageContext, chrome StepChrome) g.Node {
	return stepView(page, chrome,
		Form(Method("post"), Action(routepath.StudioStepNext(chrome.Step.ID)), Class("step-actions"),
			entryFields(page.Entry),
			nextButton(chrome, "step-next", true, T(page.Loc, "studio.nav.next")),
		),
	)
}

// stepForm posts view-local state back to the step. A nil swap replaces the
// whole step view with the response.
func stepForm(page PageContext, chrome StepChrome, swap g.Node, children ...g.Node) g.Node {
	path := routepath.StudioStep(chrome.Step.ID)
	if swap == nil {
		swap = g.Attr("hx-target", "#"+stepViewID)
	}
	return Form(ID("step-form"), Method("post"), Action(path),
		g.Attr("hx-post", path),
		g.Attr("hx-swap", "outerHTML"),
		swap,
		entryFields(page.Entry),
		g.Group(children),
	)
}

// nextButton submits the enclosing form to the gated advance endpoint.
func nextButton(chrome StepChrome, id string, ready bool, label string) g.Node {
	path := routepath.StudioStepNext(chrome.Step.ID)
	return Button(ID(id), Type("submit"), Class(classes("btn btn-primary btn-large", readyClass(ready))),
		g.Attr("formaction", path),
		swapScreen(path),
		g.If(!ready, Disabled()),
		g.Text(label),
	)
}

func readyClass(ready bool) string {
	if ready {
		return "is-ready"
	}
	return "is-gated"
}

func progressBar(percent int, class string) g.Node {
	return Div(Class(classes("bar", class)), Role("progressbar"),
		g.Attr("aria-valuemin", "0"),
		g.Attr("aria-valuemax", "100"),
		g.Attr("aria-valuenow", itoa(percent)),
		Div(Class("bar-fill"), Style(percentWidth(percent))),
	)
}
