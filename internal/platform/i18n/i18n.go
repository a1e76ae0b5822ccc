// Package i18n declares the languages the site speaks.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	defaultTag    = language.MustParse("pt-BR")
	supportedTags = []language.Tag{defaultTag, language.MustParse("en-US")}
	matcher       = language.NewMatcher(supportedTags)
)

// DefaultTag is the language used when nothing better matches.
func DefaultTag() language.Tag {
	return defaultTag
}

// SupportedTags returns the supported languages, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag parses value and reports whether it names a supported language.
// Region-less tags match their regional variant, so "en" yields en-US.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultTag, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return defaultTag, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return defaultTag, false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported language for a preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return defaultTag
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return defaultTag
	}
	return supportedTags[index]
}
