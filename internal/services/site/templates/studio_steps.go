package templates

import (
	"github.com/baucmind/site/internal/studio/steps"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Element ids refreshed while the briefing is typed.
const (
	BriefingMeterID = "briefing-meter"
	BriefingNextID  = "briefing-next"
)

type briefingInput struct {
	Name        string
	Kind        string
	Placeholder bool
}

var briefingInputs = []briefingInput{
	{Name: steps.FieldObjective, Kind: "textarea", Placeholder: true},
	{Name: steps.FieldAudience, Kind: "textarea", Placeholder: true},
	{Name: steps.FieldCoreMessage, Kind: "textarea", Placeholder: true},
	{Name: steps.FieldBudget, Kind: "text", Placeholder: true},
	{Name: steps.FieldDeadline, Kind: "date"},
	{Name: steps.FieldNotes, Kind: "textarea", Placeholder: true},
}

// BriefingStep renders the campaign brief form and its completeness gauge.
func BriefingStep(page PageContext, chrome StepChrome, brief steps.Briefing) g.Node {
	values := brief.Values()
	// Typing refreshes only the gauge and the next button so inputs keep
	// their focus.
	swap := g.Group([]g.Node{
		g.Attr("hx-trigger", "input delay:300ms, submit"),
		g.Attr("hx-target", "#"+BriefingMeterID),
		g.Attr("hx-select", "#"+BriefingMeterID),
		g.Attr("hx-select-oob", "#"+BriefingNextID),
		// The next button swaps the whole screen.
		g.Attr("hx-disinherit", "hx-select hx-select-oob"),
	})
	return stepView(page, chrome,
		stepForm(page, chrome, swap,
			Div(Class("briefing-layout"),
				Div(Class("briefing-fields"),
					g.Map(briefingInputs, func(in briefingInput) g.Node {
						return briefingField(page, in, values[in.Name])
					}),
				),
				briefingMeter(page, brief),
			),
			Div(Class("step-actions"),
				nextButton(chrome, BriefingNextID, brief.Ready(), briefingNextLabel(page, brief)),
			),
		),
	)
}

func briefingField(page PageContext, in briefingInput, value string) g.Node {
	id := "briefing-" + in.Name
	key := "studio.briefing.field." + in.Name
	var placeholder g.Node
	if in.Placeholder {
		placeholder = Placeholder(T(page.Loc, key+".placeholder"))
	}
	var control g.Node
	if in.Kind == "textarea" {
		control = Textarea(ID(id), Name(in.Name), g.Attr("rows", "3"), placeholder, g.Text(value))
	} else {
		control = Input(ID(id), Type(in.Kind), Name(in.Name), Value(value), placeholder)
	}
	return Div(Class("field"),
		Label(For(id), g.Text(T(page.Loc, key))),
		control,
	)
}

func briefingMeter(page PageContext, brief steps.Briefing) g.Node {
	completeness := brief.Completeness()
	return Aside(ID(BriefingMeterID), Class("card briefing-meter stage-"+string(brief.Stage())),
		H2(g.Text(T(page.Loc, "studio.briefing.meter.title"))),
		Div(Class("gauge"),
			Strong(Class("gauge-value"), g.Text(itoa(completeness)+"%")),
			Span(Class("gauge-stage"), g.Text(T(page.Loc, "studio.briefing.stage."+string(brief.Stage())))),
		),
		progressBar(completeness, "gauge-bar"),
		Ul(Class("indicators"),
			indicator(T(page.Loc, "studio.briefing.indicator.brand_data"), completeness >= 30),
			indicator(T(page.Loc, "studio.briefing.indicator.persona"), brief.Ready()),
		),
	)
}

func indicator(label string, on bool) g.Node {
	state := "off"
	if on {
		state = "on"
	}
	return Li(Class("indicator indicator-"+state), Span(Class("light")), g.Text(label))
}

func briefingNextLabel(page PageContext, brief steps.Briefing) string {
	if brief.Ready() {
		return T(page.Loc, "studio.briefing.next.ready")
	}
	return T(page.Loc, "studio.briefing.next.gated", brief.Remaining())
}

// IdeasStep renders the idea room.
func IdeasStep(page PageContext, chrome StepChrome, sel steps.IdeaSelection) g.Node {
	return stepView(page, chrome,
		stepForm(page, chrome, nil,
			g.Map(sel.IDs(), func(id int) g.Node {
				return hidden(steps.IdeaSelectedField, itoa(id))
			}),
			Div(Class("step-intro"),
				P(g.Text(T(page.Loc, "studio.ideas.prompt"))),
				Span(Class("badge"), g.Text(T(page.Loc, "studio.ideas.count", sel.Count(), steps.IdeaTarget))),
				progressBar(sel.Progress(), ""),
			),
			Div(Class("grid grid-3"),
				g.Map(steps.Ideas(), func(idea steps.Idea) g.Node {
					return ideaCard(page, idea, sel.Selected(idea.ID))
				}),
			),
			Div(Class("step-actions"),
				nextButton(chrome, "ideas-next", sel.Ready(), ideasNextLabel(page, sel)),
			),
		),
	)
}

func ideaCard(page PageContext, idea steps.Idea, selected bool) g.Node {
	action, label := steps.IdeaSelectAction, T(page.Loc, "studio.ideas.select")
	if selected {
		action, label = steps.IdeaDropAction, T(page.Loc, "studio.ideas.selected")
	}
	return Article(Class(classes("card idea", selectedClass(selected))),
		icon(idea.Icon),
		Span(Class("badge"), g.Text(T(page.Loc, idea.Category))),
		H3(g.Text(T(page.Loc, idea.Title))),
		P(g.Text(T(page.Loc, idea.Description))),
		Button(Type("submit"), Name(action), Value(itoa(idea.ID)), Class(classes("btn", selectedButtonClass(selected))),
			g.If(selected, g.Attr("aria-pressed", "true")),
			g.Text(label),
		),
	)
}

func ideasNextLabel(page PageContext, sel steps.IdeaSelection) string {
	switch n := sel.Count(); n {
	case 0:
		return T(page.Loc, "studio.ideas.next.gated")
	case 1:
		return T(page.Loc, "studio.ideas.next.one")
	default:
		return T(page.Loc, "studio.ideas.next.other", n)
	}
}

// ScriptStep renders the script studio and, once a script is approved, its
// storyboard.
func ScriptStep(page PageContext, chrome StepChrome, choice steps.Choice) g.Node {
	return stepView(page, chrome,
		stepForm(page, chrome, nil,
			g.If(choice.Ready(), hidden(steps.ChoiceField, itoa(choice.ID))),
			P(Class("step-intro"), g.Text(T(page.Loc, "studio.script.prompt"))),
			Div(Class("grid grid-2"),
				Div(Class("scripts"),
					H2(g.Text(T(page.Loc, "studio.script.suggested"))),
					g.Map(steps.Scripts(), func(draft steps.ScriptDraft) g.Node {
						return scriptCard(page, draft, choice.Chosen(draft.ID))
					}),
				),
				Div(Class("storyboard"),
					H2(g.Text(T(page.Loc, "studio.script.storyboard"))),
					g.Iff(choice.Ready(), func() g.Node {
						return g.Group([]g.Node{
							Ol(Class("frames"),
								g.Map(steps.Storyboard(), func(frame steps.Frame) g.Node {
									return Li(Class("card frame"),
										icon("play"),
										H4(g.Text(T(page.Loc, frame.Title))),
										P(g.Text(T(page.Loc, frame.Description))),
									)
								}),
							),
							P(Class("notice notice-success"), g.Text(T(page.Loc, "studio.script.storyboard_ready"))),
						})
					}),
					g.If(!choice.Ready(), P(Class("card empty"), icon("play"), g.Text(T(page.Loc, "studio.script.storyboard_empty")))),
				),
			),
			Div(Class("step-actions"),
				nextButton(chrome, "script-next", choice.Ready(), choiceNextLabel(page, "script", choice)),
			),
		),
	)
}

func scriptCard(page PageContext, draft steps.ScriptDraft, approved bool) g.Node {
	return Article(Class(classes("card script", selectedClass(approved))),
		H3(g.Text(T(page.Loc, draft.Title))),
		Div(Class("badges"),
			Span(Class("badge"), g.Text(T(page.Loc, draft.Type))),
			Span(Class("badge"), g.Text(draft.Duration)),
		),
		Ol(Class("scenes"),
			g.Map(draft.Scenes, func(scene string) g.Node { return Li(g.Text(T(page.Loc, scene))) }),
		),
		Div(Class("cta-box"),
			Strong(g.Text(T(page.Loc, "studio.script.cta_label"))),
			P(g.Text(T(page.Loc, draft.CTA))),
		),
		Button(Type("submit"), Name(steps.ChooseAction), Value(itoa(draft.ID)), Class(classes("btn", selectedButtonClass(approved))),
			g.If(approved, g.Attr("aria-pressed", "true")),
			g.Text(T(page.Loc, "studio.script.approve")),
		),
	)
}

// ThumbnailStep renders the thumbnail lab.
func ThumbnailStep(page PageContext, chrome StepChrome, choice steps.Choice) g.Node {
	chosen, hasChosen := steps.LookupThumbnail(choice.ID)
	return stepView(page, chrome,
		stepForm(page, chrome, nil,
			g.If(choice.Ready(), hidden(steps.ChoiceField, itoa(choice.ID))),
			Div(Class("step-intro"),
				P(g.Text(T(page.Loc, "studio.thumbnail.prompt"))),
				P(Class("tip"), icon("zap"), g.Text(T(page.Loc, "studio.thumbnail.tip"))),
			),
			Div(Class("grid grid-4"),
				g.Map(steps.Thumbnails(), func(thumb steps.Thumbnail) g.Node {
					return thumbnailCard(page, thumb, choice.Chosen(thumb.ID))
				}),
			),
			g.Iff(hasChosen, func() g.Node { return thumbnailPreview(page, chosen) }),
			Div(Class("step-actions"),
				nextButton(chrome, "thumbnail-next", choice.Ready(), choiceNextLabel(page, "thumbnail", choice)),
			),
		),
	)
}

func thumbnailCard(page PageContext, thumb steps.Thumbnail, selected bool) g.Node {
	label := T(page.Loc, "studio.thumbnail.choose")
	if selected {
		label = T(page.Loc, "studio.thumbnail.selected")
	}
	return Article(Class(classes("card thumbnail", selectedClass(selected))),
		Div(Class("thumbnail-image"),
			Img(Src(thumb.ImageURL), Alt(T(page.Loc, thumb.Title)), g.Attr("loading", "lazy")),
			contrastBadge(page, thumb.Contrast),
		),
		H3(g.Text(T(page.Loc, thumb.Title))),
		Span(Class("badge"), g.Text(T(page.Loc, thumb.Focus))),
		P(g.Text(T(page.Loc, thumb.Description))),
		Button(Type("submit"), Name(steps.ChooseAction), Value(itoa(thumb.ID)), Class(classes("btn btn-block", selectedButtonClass(selected))),
			g.If(selected, g.Attr("aria-pressed", "true")),
			g.Text(label),
		),
	)
}

func contrastBadge(page PageContext, contrast steps.Contrast) g.Node {
	return Span(Class("contrast contrast-"+string(contrast)), g.Text(T(page.Loc, "studio.thumbnail.contrast."+string(contrast))))
}

func thumbnailPreview(page PageContext, thumb steps.Thumbnail) g.Node {
	return Div(Class("card preview"),
		H3(g.Text(T(page.Loc, "studio.thumbnail.preview"))),
		Div(Class("grid grid-2"),
			Img(Src(thumb.ImageURL), Alt(T(page.Loc, thumb.Title))),
			Dl(Class("analysis"),
				Dt(g.Text(T(page.Loc, "studio.thumbnail.contrast_label"))),
				Dd(contrastBadge(page, thumb.Contrast)),
				Dt(g.Text(T(page.Loc, "studio.thumbnail.scroll_stop"))),
				Dd(g.Text("85%")),
				Dt(g.Text(T(page.Loc, "studio.thumbnail.ctr"))),
				Dd(g.Text("3.2%")),
			),
		),
	)
}

func choiceNextLabel(page PageContext, step string, choice steps.Choice) string {
	if choice.Ready() {
		return T(page.Loc, "studio."+step+".next.ready")
	}
	return T(page.Loc, "studio."+step+".next.gated")
}

func selectedClass(selected bool) string {
	if selected {
		return "is-selected"
	}
	return ""
}

func selectedButtonClass(selected bool) string {
	if selected {
		return "btn-selected"
	}
	return "btn-muted"
}
