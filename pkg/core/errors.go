package core

import (
	"fmt"
	"net/http"
)

// HTTPError is returned by handlers to choose the status and the "detail"
// member of the JSON error body.
type HTTPError struct {
	Status int
	Detail any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %v", e.Status, http.StatusText(e.Status), e.Detail)
}

func NewHTTPError(status int, detail any) *HTTPError {
	return &HTTPError{Status: status, Detail: detail}
}
