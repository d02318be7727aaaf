package registry

import "github.com/joeydtaylor/steeze-activities/pkg/codec"

// Snapshot is a point-in-time copy of the registry. It encodes as a JSON
// object keyed by activity name, in seed order.
type Snapshot struct {
	order  []string
	byName map[string]Activity
}

func (s Snapshot) Len() int { return len(s.order) }

// Names returns activity names in seed order.
func (s Snapshot) Names() []string { return append([]string(nil), s.order...) }

func (s Snapshot) Get(name string) (Activity, bool) {
	a, ok := s.byName[name]
	return a, ok
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	return codec.OrderedObject(s.order, func(name string) any {
		a := s.byName[name]
		if a.Participants == nil {
			a.Participants = []string{}
		}
		return a
	})
}
