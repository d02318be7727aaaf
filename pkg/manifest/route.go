package manifest

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
)

// Route describes a single HTTP route.
type Route struct {
	Path    string `toml:"path"`
	Method  string `toml:"method"`
	Policy  Policy `toml:"policy"`
	Handler HSpec  `toml:"handler"`
}

type Policy struct {
	TimeoutMS int `toml:"timeout_ms"`
}

type HSpec struct {
	Type   HandlerType `toml:"type"`
	Name   string      `toml:"name"`   // inproc
	Target string      `toml:"target"` // redirect
}

var allowedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// normalize path/method
func (r *Route) normalize() error {
	if r.Path == "" {
		return errors.New("path is required")
	}
	if !strings.HasPrefix(r.Path, "/") {
		r.Path = "/" + r.Path
	}
	if r.Path != "/" {
		r.Path = path.Clean(r.Path)
	}
	r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
	if r.Method == "" {
		r.Method = http.MethodGet
	}
	r.Handler.Name = strings.TrimSpace(r.Handler.Name)
	r.Handler.Target = strings.TrimSpace(r.Handler.Target)
	return nil
}

func (r *Route) validate() error {
	if _, ok := allowedMethods[r.Method]; !ok {
		return fmt.Errorf("method %q not supported", r.Method)
	}
	switch r.Handler.Type {
	case HandlerInproc:
		if r.Handler.Name == "" {
			return errors.New("handler.name required for inproc")
		}
	case HandlerRedirect:
		if r.Handler.Target == "" {
			return errors.New("handler.target required for redirect")
		}
		if r.Method != http.MethodGet {
			return errors.New("redirect routes must be GET")
		}
	default:
		return fmt.Errorf("unknown handler type %q", r.Handler.Type)
	}
	if r.Policy.TimeoutMS < 0 {
		return errors.New("policy.timeout_ms must be >= 0")
	}
	return nil
}
