package templates

import (
	"github.com/baucmind/site/internal/platform/icons"
	"github.com/baucmind/site/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingParams configures the marketing page.
type LandingParams struct {
	SchedulingURL string
}

type landingFeature struct {
	Key  string
	Icon string
}

var landingFeatures = []landingFeature{
	{Key: "brandguard", Icon: "shield"},
	{Key: "preflight", Icon: "check"},
	{Key: "automation", Icon: "brain"},
	{Key: "report", Icon: "message"},
}

type landingStat struct {
	Value string
	Key   string
}

var landingStats = []landingStat{
	{Value: "90%", Key: "landing.cta.stat.production"},
	{Value: "3x", Key: "landing.cta.stat.campaigns"},
	{Value: "100+", Key: "landing.cta.stat.waitlist"},
}

// Landing renders the marketing page screen.
func Landing(page PageContext, params LandingParams) g.Node {
	return Div(ID(screenID), Class("screen screen-landing"), g.Attr("data-mode", "landing"),
		Header(Class("landing-bar"),
			Span(Class("brand"), g.Text(T(page.Loc, "core.site.name"))),
			languageSwitcher(page),
		),
		heroSection(page, params),
		challengeSection(page),
		solutionSection(page),
		productSection(page),
		featuresSection(page),
		ctaSection(page, params),
		siteFooter(page),
	)
}

func heroSection(page PageContext, params LandingParams) g.Node {
	return Section(ID("hero"), Class("section hero"),
		Div(Class("hero-icons"), g.Attr("aria-hidden", "true"),
			icon("camera"), icon("chart"), icon("shield"),
		),
		H1(Class("hero-title"), g.Text(T(page.Loc, "landing.hero.title"))),
		P(Class("hero-text"), g.Text(T(page.Loc, "landing.hero.text"))),
		Div(Class("actions"),
			requestDemoLink(page, "btn-primary"),
			navForm(page, OpStudio, "", "inline",
				submitButton("btn-outline", g.Text(T(page.Loc, "landing.hero.open_studio"))),
			),
			scheduleDemoLink(page, params, "btn-ghost"),
		),
	)
}

func challengeSection(page PageContext) g.Node {
	return Section(ID("challenge"), Class("section challenge"),
		H2(g.Text(T(page.Loc, "landing.challenge.title"))),
		P(g.Text(T(page.Loc, "landing.challenge.question"))),
		P(g.Text(T(page.Loc, "landing.challenge.body"))),
		Div(Class("challenge-diagram"), g.Attr("aria-hidden", "true"),
			pill("camera", T(page.Loc, "landing.challenge.creation")),
			pill("alert", T(page.Loc, "landing.challenge.disconnect")),
			pill("chart", T(page.Loc, "landing.challenge.management")),
		),
	)
}

func solutionSection(page PageContext) g.Node {
	return Section(ID("solution"), Class("section solution"),
		H2(g.Text(T(page.Loc, "landing.solution.title"))),
		P(g.Text(T(page.Loc, "landing.solution.origin"))),
		P(g.Text(T(page.Loc, "landing.solution.funnel"))),
		Div(Class("flow"),
			pill("bulb", T(page.Loc, "landing.solution.flow.ideas")),
			Span(Class("flow-arrow"), g.Text("→")),
			pill("shield", T(page.Loc, "landing.solution.flow.brandguard")),
			Span(Class("flow-arrow"), g.Text("→")),
			pill("chart", T(page.Loc, "landing.solution.flow.optimization")),
		),
		H3(g.Text(T(page.Loc, "landing.solution.dual.title"))),
		P(g.Text(T(page.Loc, "landing.solution.dual.body"))),
	)
}

func productSection(page PageContext) g.Node {
	return Section(ID("product"), Class("section product"),
		H2(g.Text(T(page.Loc, "landing.product.title"))),
		P(g.Text(T(page.Loc, "landing.product.mission"))),
		P(g.Text(T(page.Loc, "landing.product.saas"))),
		Div(Class("card"),
			icon("crown"),
			H3(g.Text(T(page.Loc, "landing.product.frontier.title"))),
			P(g.Text(T(page.Loc, "landing.product.frontier.body"))),
		),
		Div(Class("product-badge"),
			icon("brain"),
			H3(g.Text(T(page.Loc, "landing.product.badge.name"))),
			Span(g.Text(T(page.Loc, "landing.product.badge.tagline"))),
		),
		H3(g.Text(T(page.Loc, "landing.product.independent.title"))),
		P(g.Text(T(page.Loc, "landing.product.independent.body"))),
	)
}

func featuresSection(page PageContext) g.Node {
	return Section(ID("features"), Class("section features"),
		H2(g.Text(T(page.Loc, "landing.features.title"))),
		Div(Class("grid grid-4"),
			g.Map(landingFeatures, func(f landingFeature) g.Node {
				prefix := "landing.features." + f.Key
				return Article(Class("card feature"),
					icon(f.Icon),
					H3(g.Text(T(page.Loc, prefix+".title"))),
					Span(Class("badge"), g.Text(T(page.Loc, prefix+".subtitle"))),
					P(g.Text(T(page.Loc, prefix+".description"))),
				)
			}),
		),
		Div(Class("card"),
			H3(g.Text(T(page.Loc, "landing.features.closing.title"))),
			P(g.Text(T(page.Loc, "landing.features.closing.body"))),
		),
	)
}

func ctaSection(page PageContext, params LandingParams) g.Node {
	return Section(ID("cta"), Class("section cta"),
		H2(g.Text(T(page.Loc, "landing.cta.title"))),
		P(g.Text(T(page.Loc, "landing.cta.subtitle"))),
		Div(Class("grid grid-3"),
			g.Map(landingStats, func(s landingStat) g.Node {
				return Div(Class("stat"),
					Strong(g.Text(s.Value)),
					P(g.Text(T(page.Loc, s.Key))),
				)
			}),
		),
		Div(Class("actions"),
			requestDemoLink(page, "btn-primary"),
			scheduleDemoLink(page, params, "btn-outline"),
		),
		P(Class("muted"), g.Text(T(page.Loc, "landing.cta.byline"))),
	)
}

func siteFooter(page PageContext) g.Node {
	return Footer(Class("site-footer"),
		Div(Class("footer-brand"),
			Span(Class("brand-mark"), g.Text("B")),
			Span(Class("brand"), g.Text(T(page.Loc, "core.site.name"))),
			P(g.Text(T(page.Loc, "landing.footer.tagline"))),
		),
		Div(Class("footer-links"),
			footerGroup(T(page.Loc, "landing.footer.product"), T(page.Loc, "landing.footer.features")),
			footerGroup(T(page.Loc, "landing.footer.company"), T(page.Loc, "landing.footer.blog")),
			footerGroup(T(page.Loc, "landing.footer.support"), T(page.Loc, "landing.footer.help")),
		),
		Div(Class("footer-legal"),
			Span(g.Text(T(page.Loc, "landing.footer.copyright"))),
			A(Href("#"), g.Text(T(page.Loc, "landing.footer.privacy"))),
			A(Href("#"), g.Text(T(page.Loc, "landing.footer.terms"))),
			A(Href("#"), g.Text(T(page.Loc, "landing.footer.cookies"))),
		),
	)
}

func footerGroup(title, link string) g.Node {
	return Div(Class("footer-group"),
		H4(g.Text(title)),
		A(Href("#"), g.Text(link)),
	)
}

// requestDemoLink opens the demo dialog in place, or as its own page
// without scripts.
func requestDemoLink(page PageContext, class string) g.Node {
	return A(Href(routepath.DemoRequest), Class(classes("btn", class)),
		g.Attr("hx-get", routepath.DemoRequest),
		g.Attr("hx-target", "#modal"),
		g.Attr("hx-swap", "outerHTML"),
		g.Text(T(page.Loc, "landing.cta.request_demo")),
	)
}

func scheduleDemoLink(page PageContext, params LandingParams, class string) g.Node {
	if params.SchedulingURL == "" {
		return nil
	}
	return A(Href(params.SchedulingURL), Target("_blank"), Rel("noopener noreferrer"), Class(classes("btn", class)),
		g.Text(T(page.Loc, "landing.cta.schedule_demo")),
	)
}

// icon references a glyph from the sprite inlined by the layout. Unknown
// names render the generic glyph.
func icon(name string) g.Node {
	id, _ := icons.Parse(name)
	glyph := icons.LucideNameOrDefault(id)
	return g.El("svg", Class("icon icon-"+string(id)), g.Attr("aria-hidden", "true"),
		g.El("use", g.Attr("href", "#"+icons.LucideSymbolID(glyph))),
	)
}

func pill(iconName, label string) g.Node {
	return Span(Class("pill"), icon(iconName), Span(g.Text(label)))
}
