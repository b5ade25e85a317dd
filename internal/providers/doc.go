// Package providers routes review prompts to interchangeable AI backends.
//
// Supported backends: the hosted assistant CLIs (claude, gemini, codex),
// invoked as subprocesses, and a local Ollama server reached over its HTTP
// API or through the ollama binary when the API path is unavailable.
//
// A [Router] owns the dispatch decision. Endpoints are checked by
// [ValidateHost] before any transport runs, prompts are passed only as JSON
// string values or single argv elements, and every failure is classified by
// [Kind] so callers can tell connectivity problems from backend-reported
// ones. Transport output is normalized with the ansi package before it is
// returned.
package providers
