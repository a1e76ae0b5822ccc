package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "pt-BR", want: "pt-BR", ok: true},
		{in: "en-US", want: "en-US", ok: true},
		{in: "en", want: "en-US", ok: true},
		{in: "pt", want: "pt-BR", ok: true},
		{in: "", want: "pt-BR", ok: false},
		{in: "not a tag!", want: "pt-BR", ok: false},
		{in: "ja-JP", want: "pt-BR", ok: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.in)
		if got.String() != tc.want || ok != tc.ok {
			t.Fatalf("ParseTag(%q) = (%s, %t), want (%s, %t)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %s, want %s", got, DefaultTag())
	}
	got := MatchTags([]language.Tag{language.MustParse("fr-FR"), language.MustParse("en-GB")})
	if got.String() != "en-US" {
		t.Fatalf("MatchTags(fr-FR, en-GB) = %s, want en-US", got)
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.Japanese
	if SupportedTags()[0] != DefaultTag() {
		t.Fatal("SupportedTags() exposed internal slice")
	}
}
