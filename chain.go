package dispatch

import "net/http"

// HandlerFunc is the shape shared by middleware and terminal handlers. A
// stage receives the request and a continuation; calling next runs the rest
// of the chain and returns its response. A stage may return next()
// unchanged, modify the returned response before returning it, or skip next
// entirely and answer on its own.
type HandlerFunc func(r *Request, next Next) *Response

// Next runs the remaining stages of the chain and returns their response.
type Next func() *Response

// runChain executes stages in order, starting at index 0, threading the
// continuation through each stage. Advancing past the last stage yields an
// empty 200 response; a matched route always contributes at least one
// handler, so that terminal case only fires when a final handler calls its
// continuation anyway.
func runChain(stages []HandlerFunc, r *Request) *Response {
	var call func(i int) *Response
	call = func(i int) *Response {
		if i >= len(stages) {
			return NewResponse(http.StatusOK)
		}
		return stages[i](r, func() *Response {
			return call(i + 1)
		})
	}
	return call(0)
}
