// Package main prints translation coverage for the embedded catalogs.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/baucmind/site/internal/platform/config"
	i18ncatalog "github.com/baucmind/site/internal/platform/i18n/catalog"
)

type localeStatus struct {
	Locale     string
	BaseKeys   int
	Translated int
	Missing    []string
	Extra      []string
	Namespaces []namespaceStatus
}

type namespaceStatus struct {
	Namespace  string
	BaseKeys   int
	Translated int
}

func main() {
	if err := run(os.Args[1:], os.Stdout, i18ncatalog.Default()); err != nil {
		config.Exitf("i18n status: %v", err)
	}
}

// run writes the markdown report to -out, or stdout when empty. -strict
// fails when any locale drifts from the base catalog.
func run(args []string, stdout io.Writer, bundle *i18ncatalog.Bundle) error {
	flags := flag.NewFlagSet("i18nstatus", flag.ContinueOnError)
	out := flags.String("out", "", "markdown output path")
	strict := flags.Bool("strict", false, "fail on missing or extra keys")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if bundle == nil {
		return fmt.Errorf("catalog bundle is required")
	}

	statuses := buildReport(bundle)
	report := renderMarkdown(statuses)
	if path := strings.TrimSpace(*out); path != "" {
		if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	} else if _, err := io.WriteString(stdout, report); err != nil {
		return err
	}

	if *strict {
		for _, status := range statuses {
			if len(status.Missing) > 0 || len(status.Extra) > 0 {
				return fmt.Errorf("locale %s drifts: %d missing, %d extra", status.Locale, len(status.Missing), len(status.Extra))
			}
		}
	}
	return nil
}

func buildReport(bundle *i18ncatalog.Bundle) []localeStatus {
	base := i18ncatalog.BaseLocale
	baseKeys := len(bundle.Keys(base))
	statuses := make([]localeStatus, 0)
	for _, locale := range bundle.Locales() {
		missing, extra := bundle.Drift(locale)
		status := localeStatus{
			Locale:     locale,
			BaseKeys:   baseKeys,
			Translated: baseKeys - len(missing),
			Missing:    missing,
			Extra:      extra,
		}
		for _, namespace := range bundle.Namespaces(base) {
			have := map[string]bool{}
			for _, key := range bundle.NamespaceKeys(locale, namespace) {
				have[key] = true
			}
			ns := namespaceStatus{Namespace: namespace}
			for _, key := range bundle.NamespaceKeys(base, namespace) {
				ns.BaseKeys++
				if have[key] {
					ns.Translated++
				}
			}
			status.Namespaces = append(status.Namespaces, ns)
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func renderMarkdown(statuses []localeStatus) string {
	var b strings.Builder
	b.WriteString("# I18n Status\n\n")
	fmt.Fprintf(&b, "Base locale: `%s`.\n\n", i18ncatalog.BaseLocale)
	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, s := range statuses {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n", s.Locale, s.BaseKeys, s.Translated, len(s.Missing), len(s.Extra), percent(s.Translated, s.BaseKeys))
	}
	for _, s := range statuses {
		fmt.Fprintf(&b, "\n## `%s`\n\n", s.Locale)
		b.WriteString("| Namespace | Base Keys | Translated | Completion |\n")
		b.WriteString("| --- | ---: | ---: | ---: |\n")
		for _, ns := range s.Namespaces {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %.1f%% |\n", ns.Namespace, ns.BaseKeys, ns.Translated, percent(ns.Translated, ns.BaseKeys))
		}
		writeKeyList(&b, "Missing Keys", s.Missing)
		writeKeyList(&b, "Extra Keys", s.Extra)
	}
	return b.String()
}

func writeKeyList(b *strings.Builder, title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "\n### %s\n\n", title)
	for _, key := range keys {
		fmt.Fprintf(b, "- `%s`\n", key)
	}
}

func percent(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
