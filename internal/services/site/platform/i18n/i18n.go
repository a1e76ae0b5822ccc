// Package i18n resolves the visitor language and its message printer.
package i18n

import (
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/baucmind/site/internal/platform/i18n"
	_ "github.com/baucmind/site/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "bauc_lang"
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Active bool
}

// ResolveTag picks the request language from the lang parameter, then the
// cookie, then Accept-Language. The bool reports whether the choice came from
// the parameter and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := platformi18n.ParseTag(value); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists tag for a year.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer returns the printer for the request language and persists
// an explicit choice. resolveLanguage, when set, overrides negotiation.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (*message.Printer, language.Tag) {
	tag, persist := ResolveTag(r)
	if resolveLanguage != nil {
		if forced, ok := platformi18n.ParseTag(resolveLanguage(r)); ok {
			tag, persist = forced, false
		}
	}
	if persist {
		SetLanguageCookie(w, tag)
	}
	return message.NewPrinter(tag), tag
}

// LanguageOptions lists supported languages with active marking.
func LanguageOptions(active language.Tag) []LanguageOption {
	supported := platformi18n.SupportedTags()
	out := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		out = append(out, LanguageOption{Tag: tag.String(), Active: tag == active})
	}
	return out
}
