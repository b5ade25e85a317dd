// Package config loads and merges facet configuration.
//
// Effective config is built by layering: compiled-in defaults, then the JSON
// config file under the platform config directory, then environment
// variables (FACET_PROVIDER, FACET_MODEL, FACET_FORMAT, FACET_TIMEOUT, and
// OLLAMA_HOST for the local endpoint override), then CLI flag overrides.
// The endpoint is only resolved here; validation happens in the providers
// router so misconfigured hosts fail fast with a classified error.
package config
