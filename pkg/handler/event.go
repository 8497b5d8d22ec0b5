package handler

// Event is an inbound invocation. Every field is optional; the gateway payloads carry
// many more fields which are ignored.
type Event struct {
	HTTPMethod *string           `json:"httpMethod,omitempty" yaml:"httpMethod,omitempty"`
	RawPath    *string           `json:"rawPath,omitempty" yaml:"rawPath,omitempty"`
	Headers    map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// EventEcho is the part of the inbound event echoed back in the response body.
type EventEcho struct {
	HTTPMethod *string           `json:"httpMethod"`
	Path       *string           `json:"path"`
	Headers    map[string]string `json:"headers"`
}

// Body is serialized into the response body.
type Body struct {
	Message   string    `json:"message"`
	Service   string    `json:"service"`
	Timestamp string    `json:"timestamp"`
	Event     EventEcho `json:"event"`
}

// String returns a pointer to s, handy when building events.
func String(s string) *string {
	return &s
}
