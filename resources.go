package dispatch

import "net/http"

// ControllerFunc is the shape of a controller action: it receives the
// request and produces the response directly, with no continuation. The
// generated route wraps it as the terminal handler.
type ControllerFunc func(*Request) *Response

// ResourceController documents the full set of RESTful actions a controller
// may expose. Controllers implement any subset; Resources registers routes
// only for the actions present.
type ResourceController interface {
	Index(*Request) *Response   // GET    /resources
	New(*Request) *Response     // GET    /resources/new
	Create(*Request) *Response  // POST   /resources
	Show(*Request) *Response    // GET    /resources/:id
	Edit(*Request) *Response    // GET    /resources/:id/edit
	Update(*Request) *Response  // PUT    /resources/:id
	Destroy(*Request) *Response // DELETE /resources/:id
}

// ResourceAction names one RESTful action.
type ResourceAction string

const (
	IndexAction   ResourceAction = "index"
	NewAction     ResourceAction = "new"
	CreateAction  ResourceAction = "create"
	ShowAction    ResourceAction = "show"
	EditAction    ResourceAction = "edit"
	UpdateAction  ResourceAction = "update"
	DestroyAction ResourceAction = "destroy"
)

// ResourceOptions configures which actions Resources generates and what
// extra middleware the generated routes carry.
type ResourceOptions struct {
	// Only limits generation to the listed actions.
	Only []ResourceAction

	// Except skips the listed actions.
	Except []ResourceAction

	// Middleware is prepended to every generated route's handler list.
	Middleware []HandlerFunc
}

// ResourceOption is a functional option for configuring Resources.
type ResourceOption func(*ResourceOptions)

// Only limits the resource to only the specified actions.
func Only(actions ...ResourceAction) ResourceOption {
	return func(opts *ResourceOptions) {
		opts.Only = actions
	}
}

// Except excludes the specified actions from the resource.
func Except(actions ...ResourceAction) ResourceOption {
	return func(opts *ResourceOptions) {
		opts.Except = actions
	}
}

// WithMiddleware adds middleware to all generated resource routes.
func WithMiddleware(middleware ...HandlerFunc) ResourceOption {
	return func(opts *ResourceOptions) {
		opts.Middleware = middleware
	}
}

func (opts *ResourceOptions) includes(action ResourceAction) bool {
	if len(opts.Only) > 0 {
		for _, a := range opts.Only {
			if a == action {
				return true
			}
		}
		return false
	}

	for _, a := range opts.Except {
		if a == action {
			return false
		}
	}
	return true
}

// actionRoute is one row of the conventional resource route table.
type actionRoute struct {
	method string
	path   string
	action ResourceAction
}

func resourceRoutes(base string) []actionRoute {
	return []actionRoute{
		{http.MethodGet, base, IndexAction},
		{http.MethodGet, base + "/new", NewAction},
		{http.MethodPost, base, CreateAction},
		{http.MethodGet, base + "/:id", ShowAction},
		{http.MethodGet, base + "/:id/edit", EditAction},
		{http.MethodPut, base + "/:id", UpdateAction},
		{http.MethodDelete, base + "/:id", DestroyAction},
	}
}

// Resources registers the conventional RESTful route set for a named
// resource under "/name". Each row of the table is registered only when the
// controller exposes the matching action; a controller implementing just
// Index and Show yields exactly two routes. Returns the router for chaining.
//
// Example:
//
//	r.Resources("users", &UserController{})
//	r.Resources("posts", &PostController{}, Only(IndexAction, ShowAction))
//	r.Resources("comments", &CommentController{}, Except(NewAction, EditAction))
func (r *Router) Resources(name string, controller interface{}, opts ...ResourceOption) *Router {
	if controller == nil {
		panic("dispatch: nil controller passed to Resources")
	}

	options := &ResourceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	for _, ar := range resourceRoutes("/" + name) {
		if !options.includes(ar.action) {
			continue
		}

		action := controllerAction(controller, ar.action)
		if action == nil {
			continue
		}

		terminal := func(req *Request, _ Next) *Response {
			return action(req)
		}

		handlers := make([]HandlerFunc, 0, len(options.Middleware)+1)
		handlers = append(handlers, options.Middleware...)
		handlers = append(handlers, terminal)
		r.Add(ar.method, ar.path, handlers...)
	}
	return r
}

// controllerAction looks up one action on the controller by capability: the
// controller has the action exactly when it implements the single-method
// interface for it.
func controllerAction(controller interface{}, action ResourceAction) ControllerFunc {
	switch action {
	case IndexAction:
		if c, ok := controller.(interface {
			Index(*Request) *Response
		}); ok {
			return c.Index
		}
	case NewAction:
		if c, ok := controller.(interface {
			New(*Request) *Response
		}); ok {
			return c.New
		}
	case CreateAction:
		if c, ok := controller.(interface {
			Create(*Request) *Response
		}); ok {
			return c.Create
		}
	case ShowAction:
		if c, ok := controller.(interface {
			Show(*Request) *Response
		}); ok {
			return c.Show
		}
	case EditAction:
		if c, ok := controller.(interface {
			Edit(*Request) *Response
		}); ok {
			return c.Edit
		}
	case UpdateAction:
		if c, ok := controller.(interface {
			Update(*Request) *Response
		}); ok {
			return c.Update
		}
	case DestroyAction:
		if c, ok := controller.(interface {
			Destroy(*Request) *Response
		}); ok {
			return c.Destroy
		}
	}
	return nil
}
