package module

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/baucmind/site/internal/studio/registry"
)

func TestStepRegistryDefaultsToWorkflow(t *testing.T) {
	t.Parallel()

	if got := (Dependencies{}).StepRegistry(); got != registry.Default() {
		t.Fatalf("StepRegistry() = %p, want default registry", got)
	}
	custom := registry.MustNew(registry.Step{ID: "only", Label: "studio.step.briefing.label"})
	if got := (Dependencies{Steps: custom}).StepRegistry(); got != custom {
		t.Fatalf("StepRegistry() = %p, want configured registry", got)
	}
}

func TestLogfUsesConfiguredLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	deps := Dependencies{Logger: log.New(&buf, "", 0)}
	deps.Logf("render %s: %d", "briefing", 3)
	if got := strings.TrimSpace(buf.String()); got != "render briefing: 3" {
		t.Fatalf("Logf() wrote %q, want %q", got, "render briefing: 3")
	}
}
