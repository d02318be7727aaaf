package activities

import (
	"net/http"
	"strings"

	"github.com/joeydtaylor/steeze-activities/pkg/core"
)

// ValidationIssue mirrors one entry of a FastAPI 422 "detail" array.
type ValidationIssue struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input any      `json:"input"`
}

type rosterRequest struct {
	Activity string
	Email    string
}

// parseRosterRequest extracts the activity path segment and the required
// email query parameter. A blank email counts as missing; any other value is
// used exactly as sent.
func parseRosterRequest(in core.Request) (rosterRequest, *core.HTTPError) {
	var issues []ValidationIssue

	name, ok := in.Params["activity_name"]
	if !ok {
		issues = append(issues, ValidationIssue{Type: "missing", Loc: []string{"path", "activity_name"}, Msg: "Field required"})
	}

	email := in.Query.Get("email")
	if strings.TrimSpace(email) == "" {
		issues = append(issues, ValidationIssue{Type: "missing", Loc: []string{"query", "email"}, Msg: "Field required"})
	}

	if len(issues) > 0 {
		return rosterRequest{}, core.NewHTTPError(http.StatusUnprocessableEntity, issues)
	}
	return rosterRequest{Activity: name, Email: email}, nil
}
