package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Registry is the in-memory store of activities. Activity names are fixed at
// construction; only rosters change afterwards. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*Activity
}

// New builds a registry from seed. Seed order is kept for listing.
func New(seed []Activity) (*Registry, error) {
	r := &Registry{
		order:      make([]string, 0, len(seed)),
		activities: make(map[string]*Activity, len(seed)),
	}
	for i, a := range seed {
		if err := validateSeed(a); err != nil {
			return nil, fmt.Errorf("seed activity %d: %w", i, err)
		}
		if _, dup := r.activities[a.Name]; dup {
			return nil, fmt.Errorf("seed activity %d: duplicate name %q", i, a.Name)
		}
		c := a.clone()
		r.activities[a.Name] = &c
		r.order = append(r.order, a.Name)
	}
	return r, nil
}

// NewDefault builds a registry from DefaultSeed.
func NewDefault() *Registry {
	r, err := New(DefaultSeed())
	if err != nil {
		panic(err)
	}
	return r
}

func validateSeed(a Activity) error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("name is required")
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("%q: max_participants must be > 0", a.Name)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%q: empty participant", a.Name)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%q: duplicate participant %q", a.Name, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// List returns a copy of every activity in seed order.
func (r *Registry) List() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Snapshot{
		order:  append([]string(nil), r.order...),
		byName: make(map[string]Activity, len(r.activities)),
	}
	for name, a := range r.activities {
		s.byName[name] = a.clone()
	}
	return s
}

// Get returns a copy of one activity.
func (r *Registry) Get(name string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, newError(ErrActivityNotFound, name)
	}
	return a.clone(), nil
}

// Receipt confirms a roster change.
type Receipt struct {
	Message      string
	Activity     string
	Email        string
	Participants int // roster size after the change
}

// Signup appends email to the activity's roster.
func (r *Registry) Signup(name, email string) (Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return Receipt{}, newError(ErrActivityNotFound, name)
	}
	if a.HasParticipant(email) {
		return Receipt{}, newError(ErrAlreadySignedUp, name)
	}
	a.Participants = append(a.Participants, email)
	return Receipt{
		Message:      fmt.Sprintf("Signed up %s for %s", email, name),
		Activity:     name,
		Email:        email,
		Participants: len(a.Participants),
	}, nil
}

// Unregister removes email from the activity's roster. The remaining
// participants keep their order.
func (r *Registry) Unregister(name, email string) (Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return Receipt{}, newError(ErrActivityNotFound, name)
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i:i], a.Participants[i+1:]...)
			return Receipt{
				Message:      fmt.Sprintf("Unregistered %s from %s", email, name),
				Activity:     name,
				Email:        email,
				Participants: len(a.Participants),
			}, nil
		}
	}
	return Receipt{}, newError(ErrNotSignedUp, name)
}
