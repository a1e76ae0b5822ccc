package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		cookie  string
		accept  string
		want    string
		persist bool
	}{
		{name: "default", target: "/", want: "pt-BR"},
		{name: "accept language", target: "/", accept: "en-GB,en;q=0.8", want: "en-US"},
		{name: "cookie beats accept", target: "/", cookie: "pt-BR", accept: "en-US", want: "pt-BR"},
		{name: "param beats cookie", target: "/?lang=en", cookie: "pt-BR", want: "en-US", persist: true},
		{name: "unsupported param ignored", target: "/?lang=ja", accept: "en-US", want: "en-US"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got, persist := ResolveTag(req)
			if got.String() != tc.want || persist != tc.persist {
				t.Fatalf("ResolveTag() = (%s, %t), want (%s, %t)", got, persist, tc.want, tc.persist)
			}
		})
	}
}

func TestResolveLocalizerPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	printer, tag := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=en-US", nil), nil)
	if tag.String() != "en-US" {
		t.Fatalf("tag = %s, want en-US", tag)
	}
	if got := printer.Sprintf("core.site.name"); got != "Bauc Mind" {
		t.Fatalf("Sprintf(core.site.name) = %q, want %q", got, "Bauc Mind")
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "en-US" {
		t.Fatalf("cookies = %+v, want %s=en-US", cookies, LangCookieName)
	}
}

func TestResolveLocalizerHonoursOverride(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	_, tag := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/?lang=en", nil), func(*http.Request) string { return "pt-BR" })
	if tag.String() != "pt-BR" {
		t.Fatalf("tag = %s, want pt-BR", tag)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("override should not persist a cookie")
	}
}

func TestLanguageOptionsMarksActive(t *testing.T) {
	t.Parallel()

	_, tag := ResolveLocalizer(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?lang=en", nil), nil)
	options := LanguageOptions(tag)
	if len(options) != 2 {
		t.Fatalf("options = %d, want 2", len(options))
	}
	if options[0].Tag != "pt-BR" || options[0].Active || !options[1].Active {
		t.Fatalf("options = %+v, want en-US active", options)
	}
}
