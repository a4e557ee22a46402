package dispatch

import "net/textproto"

// Params holds route parameters extracted from the request path.
type Params map[string]string

// Request describes one incoming request. The transport constructs it and
// hands it to Dispatch; the dispatcher reads Method and Path and replaces
// Params with the matched route's captures. Everything else is carried
// through untouched for handlers to interpret.
type Request struct {
	Method string
	Path   string

	// Header carries transport-supplied request headers.
	Header map[string]string

	// Body carries the raw request body, if the transport read one.
	Body []byte

	// Params is set by the dispatcher before the first stage runs and is
	// replaced, not merged, on every dispatch.
	Params Params

	store map[string]interface{}
}

// Param returns a route parameter by name.
func (r *Request) Param(name string) string {
	return r.Params[name]
}

// Set stores a value on the request for later stages to pick up.
func (r *Request) Set(key string, value interface{}) {
	if r.store == nil {
		r.store = make(map[string]interface{})
	}
	r.store[key] = value
}

// Get retrieves a value previously stored with Set.
func (r *Request) Get(key string) interface{} {
	return r.store[key]
}

// GetString retrieves a string value from the request store.
func (r *Request) GetString(key string) string {
	if v, ok := r.store[key].(string); ok {
		return v
	}
	return ""
}

// HeaderValue returns a request header by name, or "" when absent. Lookup
// tries the name as given first, then its canonical MIME form, so headers
// stored under Go's canonical keys (as ServeHTTP does) are found whatever
// casing the caller asks with.
func (r *Request) HeaderValue(name string) string {
	if v, ok := r.Header[name]; ok {
		return v
	}
	return r.Header[textproto.CanonicalMIMEHeaderKey(name)]
}
