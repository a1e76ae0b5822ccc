package templates

import (
	"strconv"

	"github.com/baucmind/site/internal/studio/steps"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PerformanceStep renders the performance observatory. It is the last step
// and has no next control.
func PerformanceStep(page PageContext, chrome StepChrome, obs steps.Observatory, view steps.ObservatoryView) g.Node {
	return stepView(page, chrome,
		stepForm(page, chrome, nil,
			hidden(steps.LiveField, strconv.FormatBool(view.Live)),
			hidden(steps.PeriodField, view.Period),
			hidden(steps.TabField, view.Tab),
			Div(Class("observatory-toolbar"),
				Button(Type("submit"), Name(steps.ToggleLive), Value("1"), Class(classes("btn live-toggle", liveClass(view.Live))),
					g.Attr("aria-pressed", strconv.FormatBool(view.Live)),
					icon(liveIcon(view.Live)),
					g.Text(T(page.Loc, liveKey(view.Live))),
				),
			),
			Div(Class("grid grid-4 metrics"),
				g.Map(obs.Metrics, func(m steps.Metric) g.Node { return metricCard(page, m) }),
			),
			anomalyList(page, obs.Anomalies),
			observatoryTabs(page, obs, view),
			Section(Class("card report"),
				H2(g.Text(T(page.Loc, "studio.performance.report"))),
				g.Map(obs.Report, func(section steps.ReportSection) g.Node {
					return Div(Class("report-section"),
						H3(g.Text(T(page.Loc, section.Heading))),
						P(g.Text(T(page.Loc, section.Body))),
					)
				}),
			),
		),
	)
}

func metricCard(page PageContext, m steps.Metric) g.Node {
	tone := "bad"
	if m.Favourable() {
		tone = "good"
	}
	change := strconv.Itoa(m.Change) + "%"
	if m.Change > 0 {
		change = "+" + change
	}
	return Div(Class("card metric"),
		Span(Class("metric-name"), g.Text(T(page.Loc, m.Name))),
		Strong(Class("metric-value"), g.Text(m.Value)),
		Span(Class("metric-change trend-"+string(m.Trend)+" change-"+tone), g.Text(change)),
	)
}

func anomalyList(page PageContext, anomalies []steps.Anomaly) g.Node {
	countKey := "studio.performance.anomalies.count.other"
	if len(anomalies) == 1 {
		countKey = "studio.performance.anomalies.count.one"
	}
	return Section(Class("anomalies"),
		Div(Class("section-head"),
			H2(g.Text(T(page.Loc, "studio.performance.anomalies"))),
			Span(Class("badge"), g.Text(T(page.Loc, countKey, len(anomalies)))),
		),
		g.Map(anomalies, func(a steps.Anomaly) g.Node {
			return Article(Class("card anomaly anomaly-"+string(a.Kind)),
				H3(g.Text(T(page.Loc, a.Title))),
				P(g.Text(T(page.Loc, a.Description))),
				P(Strong(g.Text(T(page.Loc, "studio.performance.impact"))), g.Text(" "+T(page.Loc, a.Impact))),
				P(Strong(g.Text(T(page.Loc, "studio.performance.suggestion"))), g.Text(" "+T(page.Loc, a.Suggestion))),
				Button(Type("button"), Class("btn btn-outline"), g.Text(T(page.Loc, "studio.performance.apply"))),
			)
		}),
	)
}

func observatoryTabs(page PageContext, obs steps.Observatory, view steps.ObservatoryView) g.Node {
	return Section(Class("card tabs"),
		Div(Class("tab-list"), Role("tablist"),
			tabButton(page, steps.TabTimeline, view.Tab),
			tabButton(page, steps.TabSegments, view.Tab),
		),
		g.If(view.Tab == steps.TabTimeline, timelinePanel(page, obs, view)),
		g.If(view.Tab == steps.TabSegments, segmentsPanel(page, obs)),
	)
}

func tabButton(page PageContext, tab, active string) g.Node {
	return Button(Type("submit"), Name(steps.TabField), Value(tab), Role("tab"),
		Class(classes("tab", activeClass(tab == active))),
		g.Attr("aria-selected", strconv.FormatBool(tab == active)),
		g.Text(T(page.Loc, "studio.performance.tab."+tab)),
	)
}

func timelinePanel(page PageContext, obs steps.Observatory, view steps.ObservatoryView) g.Node {
	peak := obs.PeakImpressions()
	return Div(Class("tab-panel"), Role("tabpanel"),
		Div(Class("section-head"),
			H3(g.Text(T(page.Loc, "studio.performance.realtime"))),
			Div(Class("periods"),
				g.Map(steps.Periods, func(period string) g.Node {
					return Button(Type("submit"), Name(steps.PeriodField), Value(period),
						Class(classes("chip", activeClass(period == view.Period))),
						g.Attr("aria-pressed", strconv.FormatBool(period == view.Period)),
						g.Text(period),
					)
				}),
			),
		),
		Table(Class("series"),
			THead(Tr(
				Th(g.Text(T(page.Loc, "studio.performance.column.time"))),
				Th(g.Text("CPA")),
				Th(g.Text("CVR")),
				Th(g.Text("CTR")),
				Th(g.Text(T(page.Loc, "studio.performance.column.impressions"))),
			)),
			TBody(g.Map(obs.Series, func(s steps.Sample) g.Node {
				share := 0
				if peak > 0 {
					share = s.Impressions * 100 / peak
				}
				return Tr(
					Td(g.Text(s.Time)),
					Td(g.Text(formatFloat(s.CPA))),
					Td(g.Text(formatFloat(s.CVR)+"%")),
					Td(g.Text(formatFloat(s.CTR)+"%")),
					Td(progressBar(share, "impressions"), Small(g.Text(strconv.Itoa(s.Impressions)))),
				)
			})),
		),
	)
}

func segmentsPanel(page PageContext, obs steps.Observatory) g.Node {
	return Div(Class("tab-panel"), Role("tabpanel"),
		H3(g.Text(T(page.Loc, "studio.performance.segments"))),
		Ul(Class("segments"),
			g.Map(obs.Segments, func(seg steps.Segment) g.Node {
				return Li(Class("segment"),
					Strong(g.Text(T(page.Loc, seg.Name))),
					progressBar(seg.Performance, "segment-bar"),
					Small(g.Text(T(page.Loc, "studio.performance.segment_detail", seg.Performance, seg.CPA, seg.Volume))),
				)
			}),
		),
	)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func liveClass(live bool) string {
	if live {
		return "is-live"
	}
	return "is-paused"
}

func liveIcon(live bool) string {
	if live {
		return "pause"
	}
	return "play"
}

func liveKey(live bool) string {
	if live {
		return "studio.performance.live"
	}
	return "studio.performance.paused"
}
