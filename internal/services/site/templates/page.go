// Package templates renders the site's markup.
//
// Markup is built from gomponents nodes. Handlers receive templ components so
// full pages and htmx fragments share one rendering contract.
package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	sitei18n "github.com/baucmind/site/internal/services/site/platform/i18n"
	"github.com/baucmind/site/internal/studio/shell"
	"golang.org/x/text/message"
	g "maragu.dev/gomponents"
)

// Localizer formats catalog messages.
type Localizer = sitei18n.Localizer

type languageOption = sitei18n.LanguageOption

// PageContext is the per-request chrome shared by every template.
type PageContext struct {
	Lang      string
	Loc       Localizer
	Entry     shell.Entry
	Languages []sitei18n.LanguageOption
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// Component adapts a gomponents node into a templ component.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// childrenOf renders the templ children attached to ctx.
func childrenOf(ctx context.Context) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return templ.GetChildren(ctx).Render(ctx, w)
	})
}

// languageURL is the current address with lang set to tag.
func languageURL(entry shell.Entry, tag string) string {
	query := entry.Query()
	query.Set(sitei18n.LangParam, tag)
	return (&url.URL{Path: "/", RawQuery: query.Encode()}).String()
}

func classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return strings.Join(out, " ")
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func percentWidth(n int) string {
	n = max(0, min(n, 100))
	return "width: " + strconv.Itoa(n) + "%"
}
