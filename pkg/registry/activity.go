package registry

import "slices"

// Activity is a named extracurricular offering and its roster.
// MaxParticipants is informational; signups past it are accepted.
type Activity struct {
	Name            string   `json:"-" toml:"name"`
	Description     string   `json:"description" toml:"description"`
	Schedule        string   `json:"schedule" toml:"schedule"`
	MaxParticipants int      `json:"max_participants" toml:"max_participants"`
	Participants    []string `json:"participants" toml:"participants"`
}

// SpotsLeft reports remaining capacity. It goes negative when the roster
// has outgrown MaxParticipants.
func (a Activity) SpotsLeft() int { return a.MaxParticipants - len(a.Participants) }

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

func (a Activity) clone() Activity {
	out := a
	out.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
	return out
}
