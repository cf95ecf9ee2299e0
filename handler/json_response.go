package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/progressdash/pkg/status"
)

// Envelope is the body of every API response.
// Data is null for outcomes that carry no payload.
type Envelope struct {
	Status status.Code `json:"status"`
	Data   any         `json:"data"`
}

// envelopeResponse implements Response for the status envelope
type envelopeResponse struct {
	httpStatus int
	body       Envelope
}

func (e envelopeResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.httpStatus)
	return json.NewEncoder(w).Encode(e.body)
}

// EnvelopeOption configures an envelope response
type EnvelopeOption func(*envelopeResponse)

// WithHTTPStatus overrides the HTTP status derived from the status code.
func WithHTTPStatus(code int) EnvelopeOption {
	return func(r *envelopeResponse) {
		r.httpStatus = code
	}
}

// Status creates an envelope response for the outcome code with an optional payload.
// The HTTP status is code.HTTPStatus() unless overridden.
//
// Example:
//
//	return handler.Status(status.Success, payload)
//	return handler.Status(status.Error, nil, handler.WithHTTPStatus(http.StatusBadRequest))
func Status(code status.Code, data any, opts ...EnvelopeOption) Response {
	r := &envelopeResponse{
		httpStatus: code.HTTPStatus(),
		body:       Envelope{Status: code, Data: data},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Failure is the Error envelope with no payload and HTTP 500.
func Failure() Response {
	return Status(status.Error, nil)
}
