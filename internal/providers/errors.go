package providers

import "errors"

// Kind classifies a provider failure.
type Kind int

const (
	// KindNone means the error carries no provider classification.
	KindNone Kind = iota
	// KindInvalidHost: the endpoint failed validation; no transport was attempted.
	KindInvalidHost
	// KindUnknownProvider: the spec's base is not a supported provider.
	KindUnknownProvider
	// KindConnectionFailure: DNS, connect, or timeout at the transport level.
	KindConnectionFailure
	// KindMalformedResponse: the backend returned an unparsable payload.
	KindMalformedResponse
	// KindBackendError: the backend responded but reported a semantic problem.
	KindBackendError
	// KindSubprocessFailure: a backend CLI exited non-zero.
	KindSubprocessFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidHost:
		return "invalid_host"
	case KindUnknownProvider:
		return "unknown_provider"
	case KindConnectionFailure:
		return "connection_failure"
	case KindMalformedResponse:
		return "malformed_response"
	case KindBackendError:
		return "backend_error"
	case KindSubprocessFailure:
		return "subprocess_failure"
	default:
		return "none"
	}
}

// Error is a classified provider failure returned to callers.
type Error struct {
	Kind     Kind
	Message  string
	ExitCode int // subprocess exit status when Kind is KindSubprocessFailure
	Err      error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the classification of err, or KindNone if err carries none.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindNone
}
