package registry

// builtins are the component kinds every installation ships with. Module
// kinds at the end stand in for third-party feature modules and carry a
// module id so the renderer applies its containment wrapper.
var builtins = []Kind{
	{Name: "Root", AcceptsChildren: true},
	{Name: "Heading", Tag: "h2"},
	{Name: "Text", Tag: "p"},
	{Name: "RichText"},
	{Name: "Button", Tag: "a"},
	{Name: "Link", Tag: "a"},
	{Name: "Image", Tag: "img", Void: true},
	{Name: "Container", AcceptsChildren: true},
	{Name: "Section", AcceptsChildren: true, Tag: "section"},
	{Name: "Columns", AcceptsChildren: true},
	{Name: "Column", AcceptsChildren: true},
	{Name: "Spacer"},
	{Name: "Divider", Tag: "hr", Void: true},
	{Name: "Form", AcceptsChildren: true, Tag: "form"},
	{Name: "Input", Tag: "input", Void: true},
	{Name: "Video", Tag: "video"},
	{Name: "Navbar", AcceptsChildren: true, Tag: "nav"},
	{Name: "Footer", AcceptsChildren: true, Tag: "footer"},

	{Name: "BookingWidget", Module: "booking"},
	{Name: "StorefrontGrid", Module: "storefront"},
	{Name: "EventCalendar", Module: "events"},
}

// EnsureBuiltins registers the built-in kinds. It is idempotent and safe to
// call from concurrent render passes; repeat calls are cheap no-ops.
func (r *Registry) EnsureBuiltins() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready {
		return
	}
	for _, k := range builtins {
		if _, exists := r.kinds[k.Name]; !exists {
			r.kinds[k.Name] = k
		}
	}
	r.ready = true
}
