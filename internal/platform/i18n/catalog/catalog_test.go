package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{"pt-BR", "en-US"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
		if len(bundle.Keys(locale)) == 0 {
			t.Fatalf("expected %s messages", locale)
		}
	}
}

func TestEmbeddedLocalesHaveNoDrift(t *testing.T) {
	t.Parallel()

	bundle := Default()
	for _, locale := range bundle.Locales() {
		missing, extra := bundle.Drift(locale)
		if len(missing) > 0 || len(extra) > 0 {
			t.Fatalf("locale %s drift: missing=%v extra=%v", locale, missing, extra)
		}
	}
}

func TestDefaultRegistersPrinters(t *testing.T) {
	t.Parallel()

	Default()
	want, ok := Default().Message("en-US", "core.site.name")
	if !ok {
		t.Fatal("expected core.site.name in en-US")
	}
	if got := message.NewPrinter(language.MustParse("en-US")).Sprintf("core.site.name"); got != want {
		t.Fatalf("Sprintf(core.site.name) = %q, want %q", got, want)
	}
	if got := message.NewPrinter(language.English).Sprintf("core.site.name"); got != want {
		t.Fatalf("base language Sprintf(core.site.name) = %q, want %q", got, want)
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	base, ok := Default().Message(BaseLocale, "core.site.name")
	if !ok {
		t.Fatal("expected base message")
	}
	got, ok := Default().Message("fr-FR", "core.site.name")
	if !ok || got != base {
		t.Fatalf("Message(fr-FR) = (%q, %t), want (%q, true)", got, ok, base)
	}
	if _, ok := Default().Message(BaseLocale, "core.nope"); ok {
		t.Fatal("Message(core.nope) found, want missing")
	}
}

func TestLoadFromFSRejectsKeyOutsideNamespace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "locales/pt-BR/studio.yaml"), `locale: pt-BR
namespace: studio
messages:
  core.bad: "não"
`)

	if _, err := LoadFromFS(os.DirFS(dir)); err == nil {
		t.Fatal("expected namespace error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "locales/pt-BR/core.yaml"), `locale: en-US
namespace: core
messages:
  core.ok: "ok"
`)

	if _, err := LoadFromFS(os.DirFS(dir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "locales/en-US/core.yaml"), `locale: en-US
namespace: core
messages:
  core.ok: "ok"
`)

	if _, err := LoadFromFS(os.DirFS(dir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "locales/pt-BR/core.yaml"), "locale: [pt-BR\n")

	if _, err := LoadFromFS(os.DirFS(dir)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDriftReportsBothDirections(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "locales/pt-BR/core.yaml"), `locale: pt-BR
namespace: core
messages:
  core.a: "a"
  core.b: "b"
`)
	mustWriteFile(t, filepath.Join(dir, "locales/en-US/core.yaml"), `locale: en-US
namespace: core
messages:
  core.a: "a"
  core.c: "c"
`)

	bundle, err := LoadFromFS(os.DirFS(dir))
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	missing, extra := bundle.Drift("en-US")
	if len(missing) != 1 || missing[0] != "core.b" {
		t.Fatalf("missing = %v, want [core.b]", missing)
	}
	if len(extra) != 1 || extra[0] != "core.c" {
		t.Fatalf("extra = %v, want [core.c]", extra)
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestNamespacesListEmbeddedFiles(t *testing.T) {
	t.Parallel()

	got := Default().Namespaces("en-US")
	want := []string{"content", "core", "landing", "leads", "studio"}
	if len(got) != len(want) {
		t.Fatalf("Namespaces(en-US) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Namespaces(en-US) = %v, want %v", got, want)
		}
	}
	keys := Default().NamespaceKeys("en-US", "core")
	if len(keys) == 0 {
		t.Fatal("NamespaceKeys(en-US, core) is empty")
	}
	for _, key := range keys {
		if len(key) < 5 || key[:5] != "core." {
			t.Fatalf("NamespaceKeys(en-US, core) includes %q", key)
		}
	}
	if got := Default().Namespaces("fr-FR"); got != nil {
		t.Fatalf("Namespaces(fr-FR) = %v, want nil", got)
	}
}
