package activities

import (
	"errors"
	"net/http"

	"github.com/joeydtaylor/steeze-activities/pkg/core"
	"github.com/joeydtaylor/steeze-activities/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-activities/pkg/registry"
)

// toHTTPError maps a registry error to its status and detail. The second
// result is the metrics outcome label.
func toHTTPError(err error) (*core.HTTPError, string) {
	var re *registry.Error
	if !errors.As(err, &re) {
		return nil, ""
	}
	switch re.Code {
	case registry.ErrCodeActivityNotFound:
		return core.NewHTTPError(http.StatusNotFound, re.Message), metrics.OutcomeNotFound
	case registry.ErrCodeAlreadySignedUp:
		return core.NewHTTPError(http.StatusBadRequest, re.Message), metrics.OutcomeConflict
	case registry.ErrCodeNotSignedUp:
		return core.NewHTTPError(http.StatusNotFound, re.Message), metrics.OutcomeNotEnrolled
	}
	return nil, ""
}
