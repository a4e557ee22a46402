// Package dispatch matches requests against an ordered set of route
// templates and runs each matched request through a middleware chain ending
// in a terminal handler. It is transport-agnostic: a transport hands in a
// Request, the dispatcher hands back a Response.
//
// Routes are registered fluently and matched strictly in registration
// order; the first route whose method and pattern both accept the request
// wins, with no specificity ranking:
//
//	r := dispatch.New().
//		Get("/users/:id", showUser).
//		Get("/files/*path", serveFile)
//
//	res := r.Dispatch(&dispatch.Request{Method: "GET", Path: "/users/42"})
//
// Path templates capture parameters with :name (one non-empty segment) and
// *name (the greedy remainder of the path, slashes included). Captures are
// attached to the request before the first stage runs:
//
//	func showUser(req *dispatch.Request, next dispatch.Next) *dispatch.Response {
//		return dispatch.Text(200, req.Param("id"))
//	}
//
// Middleware shares the handler shape. A stage may call next() and pass the
// response through, inspect or decorate what next() returned, or never call
// next() at all and short-circuit the chain:
//
//	r.Use(func(req *dispatch.Request, next dispatch.Next) *dispatch.Response {
//		if req.HeaderValue("Authorization") == "" {
//			return dispatch.Text(401, "unauthorized")
//		}
//		return next()
//	})
//
// Group batches registrations under a shared prefix with group-local
// middleware, and Resources generates the conventional RESTful route set
// for whichever actions a controller implements:
//
//	r.Group("/api", func(api *dispatch.Router) {
//		api.Use(requireToken)
//		api.Resources("users", &UserController{})
//	})
//
// For plain net/http integration the Router is itself an http.Handler.
package dispatch
