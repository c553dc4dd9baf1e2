package document

// Breakpoint names, mobile-first. Mobile is the base value every responsive
// prop must resolve to; larger breakpoints are sparse overrides.
const (
	BreakpointMobile  = "mobile"
	BreakpointTablet  = "tablet"
	BreakpointDesktop = "desktop"
)

// Breakpoints returns the known breakpoint names in mobile-first order.
func Breakpoints() []string {
	return []string{BreakpointMobile, BreakpointTablet, BreakpointDesktop}
}

var breakpointSet = map[string]bool{
	BreakpointMobile:  true,
	BreakpointTablet:  true,
	BreakpointDesktop: true,
}

// IsResponsive reports whether v is a per-breakpoint value map.
func IsResponsive(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return false
	}
	for k := range m {
		if !breakpointSet[k] {
			return false
		}
	}
	return true
}

// BaseValue resolves v to its base ("mobile") value. Non-responsive values
// resolve to themselves.
func BaseValue(v any) any {
	if m, ok := v.(map[string]any); ok && IsResponsive(v) {
		return m[BreakpointMobile]
	}
	return v
}

// ValueAt resolves v at a breakpoint, inheriting the base value when the
// breakpoint carries no override.
func ValueAt(v any, breakpoint string) any {
	m, ok := v.(map[string]any)
	if !ok || !IsResponsive(v) {
		return v
	}
	if override, ok := m[breakpoint]; ok {
		return override
	}
	return m[BreakpointMobile]
}

// Override returns the raw override for a breakpoint, without base
// inheritance. The second result is false when the breakpoint has no entry.
func Override(v any, breakpoint string) (any, bool) {
	m, ok := v.(map[string]any)
	if !ok || !IsResponsive(v) {
		return nil, false
	}
	override, ok := m[breakpoint]
	return override, ok
}

// WrapResponsive wraps a bare scalar into the responsive shape with the
// scalar as the base value. Already-responsive values pass through.
func WrapResponsive(v any) map[string]any {
	if m, ok := v.(map[string]any); ok && IsResponsive(v) {
		return m
	}
	return map[string]any{BreakpointMobile: v}
}
