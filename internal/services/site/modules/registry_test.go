package modules

import (
	"testing"

	module "github.com/baucmind/site/internal/services/site/module"
)

func TestDefaultModulesHaveUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, m := range DefaultModules() {
		if m == nil {
			t.Fatal("DefaultModules() contains nil module")
		}
		if seen[m.ID()] {
			t.Fatalf("duplicate module id %q", m.ID())
		}
		seen[m.ID()] = true
	}
	for _, id := range []string{"public", "studio", "leads"} {
		if !seen[id] {
			t.Fatalf("DefaultModules() missing %q", id)
		}
	}
}

func TestDefaultModulesMount(t *testing.T) {
	t.Parallel()

	for _, m := range DefaultModules() {
		mount, err := m.Mount(module.Dependencies{})
		if err != nil {
			t.Fatalf("%s Mount() error = %v", m.ID(), err)
		}
		if mount.Handler == nil || mount.Prefix == "" {
			t.Fatalf("%s Mount() = %+v, want prefix and handler", m.ID(), mount)
		}
	}
}
