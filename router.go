package dispatch

import (
	"fmt"
	"net/http"

	"github.com/douglasgreyling/dispatch/internal/pattern"
)

// MethodAny is the wildcard method token. Routes registered under it match
// requests of every method.
const MethodAny = "*"

// notFoundBody is the body of the default not-found response.
const notFoundBody = "404 page not found"

// route is one registered (method, template, handlers) entry. Routes are
// immutable once registered.
type route struct {
	method   string
	template string
	pattern  *pattern.Pattern
	handlers []HandlerFunc
}

// Router is an ordered route registry plus the global middleware applied to
// every dispatched request. Registration order is match priority: the first
// registered route whose method and pattern both match wins, regardless of
// specificity.
//
// Build the router fully before serving; the registry defines no locking,
// so once dispatching starts it must be treated as read-only shared state.
type Router struct {
	routes     []*route
	middleware []HandlerFunc

	// NotFound, when set, handles requests no route matched. When nil the
	// dispatcher answers with a fixed plain-text 404.
	NotFound HandlerFunc
}

// New creates an empty Router.
func New() *Router {
	return &Router{}
}

// Use appends global middleware, run before every matched route's handlers
// in the order added. Returns the router for chaining.
func (r *Router) Use(middleware ...HandlerFunc) *Router {
	for _, m := range middleware {
		if m == nil {
			panic("dispatch: nil middleware passed to Use")
		}
	}
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Add registers a route for the given method token. The last handler is the
// terminal handler; any before it act as route-local middleware. Returns the
// router for chaining.
func (r *Router) Add(method, path string, handlers ...HandlerFunc) *Router {
	if len(handlers) == 0 {
		panic("dispatch: no handler passed to Add")
	}
	for _, h := range handlers {
		if h == nil {
			panic("dispatch: nil handler passed to Add")
		}
	}

	p, err := pattern.Compile(path)
	if err != nil {
		panic(fmt.Sprintf("dispatch: cannot compile route path %q: %v", path, err))
	}

	r.routes = append(r.routes, &route{
		method:   method,
		template: path,
		pattern:  p,
		handlers: handlers,
	})
	return r
}

// HTTP method helpers. Each registers a route for one verb and returns the
// router for chaining.

func (r *Router) Get(path string, handlers ...HandlerFunc) *Router {
	return r.Add(http.MethodGet, path, handlers...)
}

func (r *Router) Post(path string, handlers ...HandlerFunc) *Router {
	return r.Add(http.MethodPost, path, handlers...)
}

func (r *Router) Put(path string, handlers ...HandlerFunc) *Router {
	return r.Add(http.MethodPut, path, handlers...)
}

func (r *Router) Patch(path string, handlers ...HandlerFunc) *Router {
	return r.Add(http.MethodPatch, path, handlers...)
}

func (r *Router) Delete(path string, handlers ...HandlerFunc) *Router {
	return r.Add(http.MethodDelete, path, handlers...)
}

func (r *Router) Head(path string, handlers ...HandlerFunc) *Router {
	return r.Add(http.MethodHead, path, handlers...)
}

func (r *Router) Options(path string, handlers ...HandlerFunc) *Router {
	return r.Add(http.MethodOptions, path, handlers...)
}

// Any registers a route matching every request method.
func (r *Router) Any(path string, handlers ...HandlerFunc) *Router {
	return r.Add(MethodAny, path, handlers...)
}

// match scans routes in registration order and returns the first whose
// method token and pattern both accept the request. A static route with no
// captures matches with an empty, non-nil params map.
func (r *Router) match(method, path string) (*route, Params, bool) {
	for _, rt := range r.routes {
		if rt.method != method && rt.method != MethodAny {
			continue
		}
		if captured, ok := rt.pattern.Match(path); ok {
			return rt, Params(captured), true
		}
	}
	return nil, nil, false
}

// Dispatch matches the request against the registry and runs the matched
// route's chain: global middleware first, in registration order, then the
// route's own handlers. When nothing matches it returns the not-found
// response instead. Panics raised by a stage are not intercepted; they
// propagate to the caller.
func (r *Router) Dispatch(req *Request) *Response {
	rt, params, ok := r.match(req.Method, req.Path)
	if !ok {
		if r.NotFound != nil {
			return runChain([]HandlerFunc{r.NotFound}, req)
		}
		return Text(http.StatusNotFound, notFoundBody)
	}

	// Params are attached exactly once, before the first stage runs, and
	// replace whatever the request carried before.
	req.Params = params

	stages := make([]HandlerFunc, 0, len(r.middleware)+len(rt.handlers))
	stages = append(stages, r.middleware...)
	stages = append(stages, rt.handlers...)
	return runChain(stages, req)
}

// Handler returns the dispatch entry point as a plain function, for handing
// off to a transport.
func (r *Router) Handler() func(*Request) *Response {
	return r.Dispatch
}

// RouteInfo describes one registered route.
type RouteInfo struct {
	Method   string
	Path     string
	Handlers int
}

// Routes lists the registered routes in registration order.
func (r *Router) Routes() []RouteInfo {
	infos := make([]RouteInfo, len(r.routes))
	for i, rt := range r.routes {
		infos[i] = RouteInfo{
			Method:   rt.method,
			Path:     rt.template,
			Handlers: len(rt.handlers),
		}
	}
	return infos
}
