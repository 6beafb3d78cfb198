package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform JSON shape wrapping every response of this
// service, success or failure.  Success responses carry data, a count for
// multi-row results and an id for creations; failures always carry a
// human-readable message and, for storage failures, the underlying error
// text for diagnostics.
type Envelope struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	Error        string `json:"error,omitempty"`
	Data         any    `json:"data,omitempty"`
	Count        *int   `json:"count,omitempty"`
	ID           int64  `json:"id,omitempty"`
	SearchParams any    `json:"searchParams,omitempty"`
}

// ok writes a success envelope with the given status code.
func ok(c echo.Context, status int, env Envelope) error {
	env.Success = true
	return c.JSON(status, env)
}

// fail writes a failure envelope.  err may be nil for validation and
// not-found responses where there is no underlying error to expose.
func fail(c echo.Context, status int, msg string, err error) error {
	env := Envelope{Success: false, Message: msg}
	if err != nil {
		env.Error = err.Error()
	}
	return c.JSON(status, env)
}

// countOf returns a pointer to a result-set length so the envelope
// serializes count even when it is zero.
func countOf(n int) *int {
	return &n
}
