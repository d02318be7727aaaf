package manifest

// DefaultTOML is served when no manifest file is present.
const DefaultTOML = `
service = "activities"

[events]
enable = true
topic = "activities.roster"

[static]
enable = true
mount = "/static"

[[route]]
path = "/"
method = "GET"
handler = { type = "redirect", target = "/static/index.html" }

[[route]]
path = "/activities"
method = "GET"
handler = { type = "inproc", name = "activities.list" }

[[route]]
path = "/activities/{activity_name}/signup"
method = "POST"
handler = { type = "inproc", name = "activities.signup" }
policy = { timeout_ms = 5000 }

[[route]]
path = "/activities/{activity_name}/signup"
method = "DELETE"
handler = { type = "inproc", name = "activities.unregister" }
policy = { timeout_ms = 5000 }
`

// Default returns the parsed built-in manifest.
func Default() Config {
	cfg, err := Parse([]byte(DefaultTOML))
	if err != nil {
		panic(err)
	}
	return cfg
}
