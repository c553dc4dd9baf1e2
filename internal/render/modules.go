package render

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwellhq/inkwell/internal/document"
)

// Module descriptor statuses. Only active modules trigger component loading.
const (
	ModuleStatusActive   = "active"
	ModuleStatusDisabled = "disabled"
)

// ModuleDescriptor identifies one installed feature module.
type ModuleDescriptor struct {
	ModuleID string `json:"moduleId"`
	Status   string `json:"status"`
}

// ModuleLoader fetches a feature module's component implementations into the
// registry. Implementations must respect the context deadline.
type ModuleLoader interface {
	LoadComponents(ctx context.Context, moduleID string) error
}

// loadModules resolves component implementations for active modules, bounded
// by a hard timeout. On timeout or failure the pass proceeds without the
// module's components; a slow integration never blocks the page.
func loadModules(ctx context.Context, modules []ModuleDescriptor, opts Options, diags *document.Diagnostics, log zerolog.Logger) {
	if opts.Loader == nil {
		return
	}
	active := make([]ModuleDescriptor, 0, len(modules))
	for _, m := range modules {
		if m.Status == ModuleStatusActive {
			active = append(active, m)
		}
	}
	if len(active) == 0 {
		return
	}

	timeout := opts.ModuleTimeout
	if timeout <= 0 {
		timeout = DefaultModuleTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		moduleID string
		err      error
	}
	results := make(chan result, len(active))
	for _, m := range active {
		go func(m ModuleDescriptor) {
			results <- result{moduleID: m.ModuleID, err: opts.Loader.LoadComponents(ctx, m.ModuleID)}
		}(m)
	}

	pending := len(active)
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for pending > 0 {
		select {
		case r := <-results:
			pending--
			if r.err != nil {
				diags.Warnf(document.CodeModuleFailure, "", "module %q failed to load components: %v", r.moduleID, r.err)
				log.Warn().Str("module", r.moduleID).Err(r.err).Msg("module component load failed")
			}
		case <-deadline.C:
			diags.Warnf(document.CodeModuleTimeout, "", "%d module(s) did not load within %s, rendering without them", pending, timeout)
			log.Warn().Int("pending", pending).Dur("timeout", timeout).Msg("module load timed out")
			return
		}
	}
}
