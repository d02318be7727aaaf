package core

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"sync"
)

// Request is what an in-process handler sees of the HTTP call.
type Request struct {
	Params map[string]string // decoded path parameters
	Query  url.Values
	Body   []byte
}

// InprocHandler is the signature for in-process handlers referenced by name
// in the manifest. 'status' is the HTTP status code to send; 0 means default.
type InprocHandler func(ctx context.Context, in Request) (out []byte, status int, err error)

// Handlers maps manifest handler names to implementations.
type Handlers struct {
	mu sync.RWMutex
	m  map[string]InprocHandler
}

func NewHandlers() *Handlers {
	return &Handlers{m: map[string]InprocHandler{}}
}

// Register makes a handler available under a name referenced in manifest.toml.
func (h *Handlers) Register(name string, fn InprocHandler) error {
	if name == "" || fn == nil {
		return fmt.Errorf("handler name and func required")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.m[name]; ok {
		return fmt.Errorf("handler %q already registered", name)
	}
	h.m[name] = fn
	return nil
}

func (h *Handlers) MustRegister(name string, fn InprocHandler) {
	if err := h.Register(name, fn); err != nil {
		panic(err)
	}
}

// Lookup retrieves a registered in-proc handler by name.
func (h *Handlers) Lookup(name string) (InprocHandler, bool) {
	if h == nil {
		return nil, false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn, ok := h.m[name]
	return fn, ok
}

// Names lists registered handler names, sorted.
func (h *Handlers) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.m))
	for n := range h.m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
