// Package modules lists the site modules and their mount order.
package modules

import (
	module "github.com/baucmind/site/internal/services/site/module"
	"github.com/baucmind/site/internal/services/site/modules/leads"
	"github.com/baucmind/site/internal/services/site/modules/public"
	"github.com/baucmind/site/internal/services/site/modules/studio"
)

// DefaultModules returns the landing, studio and demo request modules.
// Public owns the root catch-all, so the more specific prefixes win by
// pattern length regardless of order.
func DefaultModules() []module.Module {
	return []module.Module{
		public.New(),
		studio.New(),
		leads.New(),
	}
}
