package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/baucmind/site/internal/platform/icons"
	"github.com/baucmind/site/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	htmxScriptURL   = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSScriptURL = "https://unpkg.com/htmx-ext-ws@2.0.2"
	// 204 keeps the page; every other answer is swapped so validation
	// failures and error pages reach the visitor.
	htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[2345]..","swap":true}]}`
)

// LayoutOptions tunes the document chrome.
type LayoutOptions struct {
	Title string
	// Modal is rendered open in place of the empty modal slot.
	Modal g.Node
}

// Layout renders the full document around the templ children.
func Layout(page PageContext, opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(page, opts, childrenOf(ctx)).Render(w)
	})
}

func document(page PageContext, opts LayoutOptions, content g.Node) g.Node {
	title := opts.Title
	if title == "" {
		title = T(page.Loc, "core.site.name")
	}
	modal := opts.Modal
	if modal == nil {
		modal = ModalSlot()
	}
	return Doctype(
		HTML(Lang(page.Lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("htmx-config"), Content(htmxConfig)),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href(routepath.StaticPrefix+"site.css")),
				Script(Src(htmxScriptURL), Defer()),
				Script(Src(htmxWSScriptURL), Defer()),
				Script(Src(routepath.StaticPrefix+"site.js"), Defer()),
			),
			Body(Class("site"),
				g.Raw(icons.LucideSprite()),
				content,
				modal,
			),
		),
	)
}

// ModalSlot is the empty container demo dialogs are swapped into.
func ModalSlot() g.Node {
	return Div(ID("modal"))
}

func languageSwitcher(page PageContext) g.Node {
	if len(page.Languages) < 2 {
		return nil
	}
	return Nav(Class("language-switcher"), g.Attr("aria-label", T(page.Loc, "core.language.label")),
		g.Map(page.Languages, func(option languageOption) g.Node {
			return A(
				Href(languageURL(page.Entry, option.Tag)),
				g.If(option.Active, g.Attr("aria-current", "true")),
				Class(classes("language-option", activeClass(option.Active))),
				g.Text(T(page.Loc, "core.language."+option.Tag)),
			)
		}),
	)
}

func activeClass(active bool) string {
	if active {
		return "is-active"
	}
	return ""
}
