package dispatch

import (
	"io"
	"net/http"
	"net/textproto"
)

// ServeHTTP makes the Router usable directly as an http.Handler. It builds
// a Request from the incoming method, path, headers, and body, dispatches
// it, and writes the resulting status, headers, and body back. Multi-valued
// request headers are collapsed to their first value; richer transports
// should construct the Request themselves and call Dispatch.
func (r *Router) ServeHTTP(w http.ResponseWriter, hr *http.Request) {
	req := &Request{
		Method: hr.Method,
		Path:   hr.URL.Path,
		Header: make(map[string]string, len(hr.Header)),
	}
	for name, values := range hr.Header {
		if len(values) > 0 {
			req.Header[textproto.CanonicalMIMEHeaderKey(name)] = values[0]
		}
	}
	if hr.Body != nil {
		if body, err := io.ReadAll(hr.Body); err == nil {
			req.Body = body
		}
	}

	res := r.Dispatch(req)

	for name, value := range res.Header {
		w.Header().Set(name, value)
	}
	w.WriteHeader(res.Status)
	if len(res.Body) > 0 {
		w.Write(res.Body)
	}
}
