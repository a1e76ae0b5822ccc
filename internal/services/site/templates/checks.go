package templates

import (
	"github.com/baucmind/site/internal/services/site/routepath"
	"github.com/baucmind/site/internal/studio/registry"
	"github.com/baucmind/site/internal/studio/steps"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Scripted check runs streamed over WebSocket.
const (
	CheckRunPreflight  = "preflight"
	CheckRunBrandGuard = "brandguard"
)

func checkRowID(run, checkID string) string {
	return "check-" + run + "-" + checkID
}

func checkSummaryID(run string) string {
	return "check-summary-" + run
}

func checkNextID(run string) string {
	return "check-next-" + run
}

func oob(on bool) g.Node {
	return g.If(on, g.Attr("hx-swap-oob", "true"))
}

// CheckUpdate renders the out-of-band fragments that reflect board after
// one scripted update: the changed row, the summary and, when the run gates
// the step, the next control.
func CheckUpdate(page PageContext, run string, board steps.Board, u steps.Update) g.Node {
	check, ok := board.Lookup(u.CheckID)
	return g.Group([]g.Node{
		g.If(ok, checkRow(page, run, check, true)),
		checkSummary(page, run, board, true),
		g.If(run == CheckRunPreflight, preflightNext(page, board, true)),
	})
}

func checkBoard(page PageContext, run string, board steps.Board) g.Node {
	return Div(Class("check-board check-board-"+run),
		g.Attr("hx-ext", "ws"),
		g.Attr("ws-connect", routepath.StudioChecks(run)),
		checkSummary(page, run, board, false),
		Ul(Class("checks"),
			g.Map(board.Checks, func(check steps.Check) g.Node {
				return checkRow(page, run, check, false)
			}),
		),
	)
}

func checkRow(page PageContext, run string, check steps.Check, swapOOB bool) g.Node {
	return Li(ID(checkRowID(run, check.ID)), Class("check check-"+string(check.Status)), oob(swapOOB),
		Span(Class("status-light"), g.Attr("aria-hidden", "true")),
		Div(Class("check-body"),
			Div(Class("check-head"),
				Strong(g.Text(T(page.Loc, check.Name))),
				Span(Class("check-status"), g.Text(T(page.Loc, "studio.check.status."+string(check.Status)))),
			),
			P(g.Text(T(page.Loc, check.Description))),
			g.If(check.Details != "", Code(Class("check-details"), g.Text(T(page.Loc, check.Details)))),
			g.If(check.Status == steps.StatusChecking && check.Progress > 0, progressBar(check.Progress, "check-progress")),
		),
	)
}

func checkSummary(page PageContext, run string, board steps.Board, swapOOB bool) g.Node {
	overall := board.Overall()
	if run == CheckRunBrandGuard {
		return Div(ID(checkSummaryID(run)), Class("check-summary overall-"+string(overall)), oob(swapOOB),
			Span(Class("seal"), icon("shield"), g.Text(T(page.Loc, "studio.assembly.seal."+string(overall)))),
			g.If(overall == steps.OverallWarning, P(Class("notice notice-warning"), g.Text(T(page.Loc, "studio.assembly.summary.warning")))),
			g.If(overall == steps.OverallReady, P(Class("notice notice-success"), g.Text(T(page.Loc, "studio.assembly.summary.ready")))),
		)
	}
	passed := board.Count(steps.StatusSuccess) + board.Count(steps.StatusWarning)
	return Div(ID(checkSummaryID(run)), Class("check-summary cockpit overall-"+string(overall)), oob(swapOOB),
		Div(Class("cockpit-light"), g.Attr("aria-hidden", "true")),
		H2(g.Text(T(page.Loc, "studio.preflight.overall."+string(overall)))),
		P(g.Text(T(page.Loc, "studio.preflight.approved", passed, len(board.Checks)))),
		g.If(overall == steps.OverallBlocked, Div(Class("notice notice-error"), Role("alert"),
			H3(g.Text(T(page.Loc, "studio.preflight.blocked.title"))),
			P(g.Text(T(page.Loc, "studio.preflight.blocked.body"))),
			Button(Type("button"), Class("btn btn-danger"), Disabled(), g.Text(T(page.Loc, "studio.preflight.blocked.action"))),
		)),
		g.If(overall == steps.OverallReady, P(Class("notice notice-success"), g.Text(T(page.Loc, "studio.preflight.ready.body")))),
	)
}

// AssemblyStep renders the automatic assembly panel with its brand guard run.
func AssemblyStep(page PageContext, chrome StepChrome, board steps.Board) g.Node {
	scenes := steps.AssemblyTimeline()
	seconds := int(steps.AssemblyDuration.Seconds())
	return stepView(page, chrome,
		Div(Class("grid grid-2 assembly"),
			Div(Class("player card"),
				Div(Class("player-screen"),
					icon("play"),
					P(g.Text(T(page.Loc, "studio.assembly.preview"))),
					P(Class("muted"), g.Text(T(page.Loc, "studio.assembly.length", seconds))),
				),
				Div(Class("timeline-bar"),
					g.Map(scenes, func(scene steps.Scene) g.Node {
						return Span(Class("scene tone-"+scene.Tone), Style(percentWidth(scene.Share())), g.Text(T(page.Loc, scene.Name)))
					}),
				),
				H3(g.Text(T(page.Loc, "studio.assembly.timeline"))),
				Ul(Class("timeline"),
					g.Map(scenes, func(scene steps.Scene) g.Node {
						return Li(Class("tone-"+scene.Tone),
							Strong(g.Text(T(page.Loc, scene.Name))),
							Span(g.Text(T(page.Loc, "studio.assembly.range", int(scene.Start.Seconds()), int(scene.End.Seconds())))),
						)
					}),
				),
			),
			Div(Class("card brandguard"),
				H2(icon("shield"), g.Text(T(page.Loc, "studio.assembly.brandguard"))),
				checkBoard(page, CheckRunBrandGuard, board),
			),
		),
		Div(Class("step-actions"),
			navForm(page, OpJump, chrome.Step.ID, "inline",
				submitButton("btn-outline", g.Text(T(page.Loc, "studio.assembly.rerun"))),
			),
			Form(Method("post"), Action(routepath.StudioStepNext(chrome.Step.ID)), Class("inline"),
				entryFields(page.Entry),
				nextButton(chrome, "assembly-next", steps.AssemblyReady(), T(page.Loc, "studio.assembly.next")),
			),
		),
	)
}

// PreflightStep renders the launch cockpit with its live check run.
func PreflightStep(page PageContext, chrome StepChrome, board steps.Board) g.Node {
	return stepView(page, chrome,
		P(Class("step-intro"), g.Text(T(page.Loc, "studio.preflight.prompt"))),
		Div(Class("card preflight"),
			checkBoard(page, CheckRunPreflight, board),
		),
		Div(Class("step-actions"),
			navForm(page, OpJump, chrome.Step.ID, "inline",
				submitButton("btn-outline", g.Text(T(page.Loc, "studio.preflight.rerun"))),
			),
			preflightNext(page, board, false),
		),
	)
}

func preflightNext(page PageContext, board steps.Board, swapOOB bool) g.Node {
	chrome := StepChrome{Step: registry.Step{ID: registry.StepPreflight}}
	ready := steps.PreflightReady(board)
	label := T(page.Loc, "studio.preflight.next.gated")
	if ready {
		label = T(page.Loc, "studio.preflight.next.ready")
	}
	return Form(ID(checkNextID(CheckRunPreflight)), Method("post"), Action(routepath.StudioStepNext(chrome.Step.ID)), Class("inline"), oob(swapOOB),
		entryFields(page.Entry),
		nextButton(chrome, "preflight-next", ready, label),
	)
}
