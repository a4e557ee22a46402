package dispatch

// Group registers a batch of routes under a shared path prefix. The builder
// receives a fresh, temporary router and may register routes, middleware,
// resources, and nested groups on it exactly as on a top-level router. Once
// the builder returns, every route it collected is re-registered here with
// prefix prepended to its template and with the temporary router's own
// middleware put in front of its handlers, so group-local middleware runs
// only for routes declared inside the group.
//
// The prefix is joined to child templates by plain string concatenation;
// missing or doubled slashes are the caller's to get right. Groups nest to
// any depth, with the outermost prefix and middleware applied first.
// Returns the router for chaining.
func (r *Router) Group(prefix string, builder func(*Router)) *Router {
	if builder == nil {
		panic("dispatch: nil builder passed to Group")
	}

	sub := New()
	builder(sub)

	for _, rt := range sub.routes {
		handlers := make([]HandlerFunc, 0, len(sub.middleware)+len(rt.handlers))
		handlers = append(handlers, sub.middleware...)
		handlers = append(handlers, rt.handlers...)
		r.Add(rt.method, prefix+rt.template, handlers...)
	}
	return r
}
