package manifest

// HandlerType enumerates the supported handler kinds.
type HandlerType string

const (
	HandlerInproc   HandlerType = "inproc"
	HandlerRedirect HandlerType = "redirect"
)

// DefaultEventsTopic carries roster change events when [events] omits a topic.
const DefaultEventsTopic = "activities.roster"
