package providers

// Capabilities holds the environment probes that decide between the HTTP API
// path and the CLI fallback for the local-model backend. The probes are
// called fresh on every Execute so the decision always reflects the current
// environment; nothing is cached.
type Capabilities struct {
	// HTTPClient reports whether an HTTP client is usable.
	HTTPClient func() bool
	// Interpreter reports whether JSON encoding/decoding is usable.
	Interpreter func() bool
}

// DefaultCapabilities returns the probes for the running process. The HTTP
// client and JSON support ship with the runtime, so both probes report true;
// callers substitute their own probes to force the CLI path or to simulate a
// constrained environment in tests.
func DefaultCapabilities() Capabilities {
	always := func() bool { return true }
	return Capabilities{HTTPClient: always, Interpreter: always}
}

func (c Capabilities) apiUsable() bool {
	return c.HTTPClient != nil && c.Interpreter != nil && c.HTTPClient() && c.Interpreter()
}
