package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/facet/internal/ansi"
)

// DefaultTimeout bounds a single backend call. Local models can be slow on
// large diffs, so this is generous.
const DefaultTimeout = 300 * time.Second

// Options configures a Router. Zero fields take defaults; in particular the
// endpoint defaults to DefaultEndpoint, so callers only set Endpoint when an
// override (such as OLLAMA_HOST) is in play.
type Options struct {
	Endpoint     string
	Timeout      time.Duration
	Capabilities Capabilities
	Logger       *zerolog.Logger // nil disables logging
}

// Router dispatches review prompts to the backend named by a provider spec.
// A Router holds no per-call state and is safe to reuse; each Execute makes
// at most one outbound call and never retries.
type Router struct {
	endpoint string
	timeout  time.Duration
	caps     Capabilities
	log      zerolog.Logger
	client   *http.Client
	run      runner
}

// NewRouter builds a Router from opts, applying defaults for unset fields.
func NewRouter(opts Options) *Router {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	caps := opts.Capabilities
	if caps.HTTPClient == nil || caps.Interpreter == nil {
		caps = DefaultCapabilities()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Router{
		endpoint: endpoint,
		timeout:  timeout,
		caps:     caps,
		log:      log,
		client:   &http.Client{Timeout: timeout},
		run:      runCommand,
	}
}

// Execute sends prompt to the backend named by spec and returns its output
// with terminal escape sequences stripped. All failures are classified; see
// KindOf.
func (r *Router) Execute(ctx context.Context, spec, prompt string) (string, error) {
	// The endpoint is the one externally influenced input besides the prompt;
	// it is checked before any transport, even for providers that never use it.
	if !ValidateHost(r.endpoint) {
		return "", newError(KindInvalidHost, "Invalid OLLAMA_HOST: "+r.endpoint)
	}

	s := ParseSpec(spec)
	ex, err := r.executor(s)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.log.Debug().
		Str("provider", s.Base).
		Str("model", s.Model).
		Str("transport", ex.Name()).
		Msg("dispatching prompt")

	out, err := ex.Execute(ctx, prompt)
	if err != nil {
		r.log.Debug().Str("provider", s.Base).Stringer("kind", KindOf(err)).Err(err).Msg("backend call failed")
		return "", err
	}
	return ansi.Strip(out), nil
}

// executor picks the transport for one call. Capability probes run here, on
// every call, so the API/CLI decision tracks the current environment.
func (r *Router) executor(s Spec) (Executor, error) {
	switch s.Base {
	case ProviderOllama:
		if r.caps.apiUsable() {
			return &apiExecutor{model: s.Model, endpoint: r.endpoint, client: r.client}, nil
		}
		r.log.Debug().Str("endpoint", r.endpoint).Msg("API path unavailable, falling back to ollama binary")
		return &cliExecutor{model: s.Model, run: r.run}, nil
	case ProviderClaude, ProviderGemini, ProviderCodex:
		return newAssistant(s, r.run), nil
	default:
		return nil, newError(KindUnknownProvider, "unknown provider: "+s.Base)
	}
}
