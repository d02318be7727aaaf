package manifest

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/joeydtaylor/steeze-activities/pkg/registry"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the top-level manifest.
type Config struct {
	Service    string              `toml:"service"`
	Routes     []Route             `toml:"route"`
	Activities []registry.Activity `toml:"activity"`
	Events     Events              `toml:"events"`
	Static     Static              `toml:"static"`
}

// Events controls roster change publishing over the relay.
type Events struct {
	Enable bool   `toml:"enable"`
	Topic  string `toml:"topic"`
}

// Static controls the embedded browser UI.
type Static struct {
	Enable bool   `toml:"enable"`
	Mount  string `toml:"mount"`
}

// Parse decodes and validates a TOML manifest.
func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes routes and fills defaults. It does not check handler
// names against a handler table; the router reports those.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Service) == "" {
		c.Service = "activities"
	}
	if len(c.Routes) == 0 {
		return errors.New("manifest: at least one [[route]] is required")
	}
	seen := map[string]int{}
	for i := range c.Routes {
		if err := c.Routes[i].normalize(); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
		if err := c.Routes[i].validate(); err != nil {
			return fmt.Errorf("route %d (%s %s): %w", i, c.Routes[i].Method, c.Routes[i].Path, err)
		}
		key := c.Routes[i].Method + " " + c.Routes[i].Path
		if j, dup := seen[key]; dup {
			return fmt.Errorf("route %d: %s duplicates route %d", i, key, j)
		}
		seen[key] = i
	}
	if c.Events.Topic = strings.TrimSpace(c.Events.Topic); c.Events.Topic == "" {
		c.Events.Topic = DefaultEventsTopic
	}
	if c.Static.Mount = strings.TrimSpace(c.Static.Mount); c.Static.Mount == "" {
		c.Static.Mount = "/static"
	}
	c.Static.Mount = path.Clean("/" + c.Static.Mount)
	return nil
}

// Seed returns the activities to boot the registry with, falling back to the
// built-in roster when the manifest declares none.
func (c Config) Seed() []registry.Activity {
	if len(c.Activities) == 0 {
		return registry.DefaultSeed()
	}
	return c.Activities
}
