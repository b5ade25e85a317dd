package providers

import (
	"context"
	"strings"
)

// Supported provider base names.
const (
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
	ProviderCodex  = "codex"
	ProviderOllama = "ollama"
)

// Spec is a parsed provider specification: a base provider name and an
// optional model qualifier.
type Spec struct {
	Base  string
	Model string
}

// ParseSpec splits a specification of the form "name" or "name:model[:tag]"
// on the first colon. Any further colons stay in the model verbatim, so
// "ollama:codellama:7b" parses to base "ollama", model "codellama:7b".
func ParseSpec(s string) Spec {
	base, model, _ := strings.Cut(s, ":")
	return Spec{Base: base, Model: model}
}

func (s Spec) String() string {
	if s.Model == "" {
		return s.Base
	}
	return s.Base + ":" + s.Model
}

// Known reports whether base names a supported provider.
func Known(base string) bool {
	switch base {
	case ProviderClaude, ProviderGemini, ProviderCodex, ProviderOllama:
		return true
	}
	return false
}

var displayNames = map[string]string{
	ProviderClaude: "Claude",
	ProviderGemini: "Gemini",
	ProviderCodex:  "Codex",
	ProviderOllama: "Ollama",
}

// Describe returns human-readable text for a provider specification. For
// Ollama specs that carry a model the model name is included. Describe never
// fails; unrecognized bases get a generic description.
func Describe(spec string) string {
	s := ParseSpec(spec)
	name, ok := displayNames[s.Base]
	if !ok {
		return "Unknown provider"
	}
	if s.Base == ProviderOllama && s.Model != "" {
		return name + " (" + s.Model + ")"
	}
	return name
}

// Executor performs a single backend call. Implementations make at most one
// outbound request or subprocess invocation and never retry.
type Executor interface {
	Execute(ctx context.Context, prompt string) (string, error)
	Name() string
}
