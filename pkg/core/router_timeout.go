package core

import (
	"context"
	"net/http"
	"time"

	manifest "github.com/joeydtaylor/steeze-activities/pkg/manifest"
)

// applyPolicy bounds the request context by the route's timeout.
// A zero timeout leaves the handler untouched.
func applyPolicy(next http.HandlerFunc, p manifest.Policy) http.HandlerFunc {
	if p.TimeoutMS <= 0 {
		return next
	}
	d := time.Duration(p.TimeoutMS) * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}
