package dispatch

import (
	"encoding/json"
	"net/http"
)

// Response is the result of dispatching a request. A stage produces it and
// the transport writes it out.
type Response struct {
	Status int
	Header map[string]string
	Body   []byte
}

// NewResponse returns an empty response with the given status code.
func NewResponse(status int) *Response {
	return &Response{
		Status: status,
		Header: make(map[string]string),
	}
}

// SetHeader sets a response header and returns the response for chaining.
func (r *Response) SetHeader(name, value string) *Response {
	if r.Header == nil {
		r.Header = make(map[string]string)
	}
	r.Header[name] = value
	return r
}

// Text builds a plain-text response.
func Text(status int, body string) *Response {
	r := NewResponse(status)
	r.Header["Content-Type"] = "text/plain; charset=utf-8"
	r.Body = []byte(body)
	return r
}

// JSON builds a response by marshalling data as JSON. Values that cannot be
// marshalled produce a 500 response carrying the marshal error.
func JSON(status int, data interface{}) *Response {
	body, err := json.Marshal(data)
	if err != nil {
		return Text(http.StatusInternalServerError, err.Error())
	}

	r := NewResponse(status)
	r.Header["Content-Type"] = "application/json"
	r.Body = body
	return r
}
