package metrics

// Roster operations and outcomes used as label values.
const (
	OpSignup     = "signup"
	OpUnregister = "unregister"

	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeConflict    = "conflict"
	OutcomeNotEnrolled = "not_signed_up"
	OutcomeInvalid     = "invalid"
)

// ObserveRosterChange counts one signup/unregister attempt. Unknown activity
// names are folded into a single label value to bound cardinality.
func ObserveRosterChange(activity, op, outcome string) {
	if outcome == OutcomeNotFound || outcome == OutcomeInvalid {
		activity = "_unknown"
	}
	rosterChanges.WithLabelValues(activity, op, outcome).Inc()
}

// SetParticipants records the roster size of an activity.
func SetParticipants(activity string, n int) {
	participants.WithLabelValues(activity).Set(float64(n))
}
