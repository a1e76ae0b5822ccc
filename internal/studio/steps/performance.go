package steps

import (
	"net/url"
	"strings"
)

// Trend is the direction a metric moved.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Metric is one headline number. Name is a catalog key; Value is shown as
// is.
type Metric struct {
	Name   string
	Value  string
	Change int
	Trend  Trend
	// LowerIsBetter flips the colour of the change, as for cost metrics.
	LowerIsBetter bool
}

// Favourable reports whether the change is good news.
func (m Metric) Favourable() bool {
	if m.LowerIsBetter {
		return m.Change <= 0
	}
	return m.Change >= 0
}

// AnomalyKind classifies an observatory alert.
type AnomalyKind string

const (
	AnomalyWarning     AnomalyKind = "warning"
	AnomalyCritical    AnomalyKind = "critical"
	AnomalyOpportunity AnomalyKind = "opportunity"
)

// Anomaly is a detected deviation with a suggested fix. Text fields are
// catalog keys.
type Anomaly struct {
	ID          string
	Kind        AnomalyKind
	Title       string
	Description string
	Impact      string
	Suggestion  string
}

// Sample is one point of the intraday series.
type Sample struct {
	Time        string
	CPA         float64
	CVR         float64
	CTR         float64
	Impressions int
}

// Segment is audience-level performance.
type Segment struct {
	Name        string
	Performance int
	CPA         int
	Volume      int
}

// ReportSection is one block of the narrative report.
type ReportSection struct {
	Heading string
	Body    string
}

// Observatory is the static campaign readout.
type Observatory struct {
	Metrics   []Metric
	Anomalies []Anomaly
	Series    []Sample
	Segments  []Segment
	Report    []ReportSection
}

// CampaignObservatory returns the scripted readout for the demo campaign.
func CampaignObservatory() Observatory {
	return Observatory{
		Metrics: []Metric{
			{Name: "content.metric.cpa", Value: "R$ 42,50", Change: 15, Trend: TrendUp, LowerIsBetter: true},
			{Name: "content.metric.cvr", Value: "3.2%", Change: -5, Trend: TrendDown},
			{Name: "content.metric.ctr", Value: "2.8%", Change: -12, Trend: TrendDown},
			{Name: "content.metric.impressions", Value: "125.4K", Change: 8, Trend: TrendUp},
		},
		Anomalies: []Anomaly{
			anomaly("1", AnomalyWarning),
			anomaly("2", AnomalyCritical),
		},
		Series: []Sample{
			{Time: "00:00", CPA: 35, CVR: 3.8, CTR: 3.2, Impressions: 8500},
			{Time: "04:00", CPA: 38, CVR: 3.6, CTR: 3.0, Impressions: 9200},
			{Time: "08:00", CPA: 42, CVR: 3.4, CTR: 2.9, Impressions: 12000},
			{Time: "12:00", CPA: 45, CVR: 3.2, CTR: 2.8, Impressions: 15200},
			{Time: "16:00", CPA: 43, CVR: 3.1, CTR: 2.7, Impressions: 18500},
			{Time: "20:00", CPA: 41, CVR: 3.3, CTR: 2.9, Impressions: 16800},
			{Time: "24:00", CPA: 42.5, CVR: 3.2, CTR: 2.8, Impressions: 14200},
		},
		Segments: []Segment{
			{Name: "content.segment.1", Performance: 85, CPA: 38, Volume: 45},
			{Name: "content.segment.2", Performance: 92, CPA: 35, Volume: 38},
			{Name: "content.segment.3", Performance: 78, CPA: 48, Volume: 17},
		},
		Report: []ReportSection{
			{Heading: "content.report.what.heading", Body: "content.report.what.body"},
			{Heading: "content.report.why.heading", Body: "content.report.why.body"},
			{Heading: "content.report.next.heading", Body: "content.report.next.body"},
		},
	}
}

func anomaly(id string, kind AnomalyKind) Anomaly {
	key := "content.anomaly." + id
	return Anomaly{
		ID:          id,
		Kind:        kind,
		Title:       key + ".title",
		Description: key + ".description",
		Impact:      key + ".impact",
		Suggestion:  key + ".suggestion",
	}
}

// PeakImpressions is the largest sample, used to scale bars.
func (o Observatory) PeakImpressions() int {
	peak := 0
	for _, s := range o.Series {
		peak = max(peak, s.Impressions)
	}
	return peak
}

// Observatory periods and tabs.
const (
	Period1h  = "1h"
	Period24h = "24h"
	Period7d  = "7d"

	TabTimeline = "timeline"
	TabSegments = "segments"
)

// Periods lists the selectable windows.
var Periods = []string{Period1h, Period24h, Period7d}

// Form names used by the performance view.
const (
	LiveField   = "live"
	PeriodField = "period"
	TabField    = "tab"
	ToggleLive  = "toggle_live"
)

// ObservatoryView is the local state of the performance view.
type ObservatoryView struct {
	Live   bool
	Period string
	Tab    string
}

// DefaultObservatoryView starts live on the 24h window.
func DefaultObservatoryView() ObservatoryView {
	return ObservatoryView{Live: true, Period: Period24h, Tab: TabTimeline}
}

// ObservatoryViewFromForm reads the view state and applies a pending live
// toggle. An empty form yields the default view. For period and tab the last
// valid value wins, so a pressed button overrides the carried hidden field.
func ObservatoryViewFromForm(form url.Values) ObservatoryView {
	view := DefaultObservatoryView()
	if len(form) == 0 {
		return view
	}
	if raw, ok := form[LiveField]; ok && len(raw) > 0 {
		view.Live = raw[0] == "true"
	}
	for _, raw := range form[PeriodField] {
		if period := strings.TrimSpace(raw); validPeriod(period) {
			view.Period = period
		}
	}
	for _, raw := range form[TabField] {
		if tab := strings.TrimSpace(raw); tab == TabTimeline || tab == TabSegments {
			view.Tab = tab
		}
	}
	if form.Get(ToggleLive) != "" {
		view.Live = !view.Live
	}
	return view
}

func validPeriod(period string) bool {
	for _, p := range Periods {
		if p == period {
			return true
		}
	}
	return false
}
