// Facet is a CLI that routes a code-review prompt to an interchangeable AI
// backend and reports a PASSED/FAILED verdict with a matching exit code.
//
// Supported backends: the claude, gemini, and codex assistant CLIs, and a
// local Ollama server (HTTP API with a CLI fallback). The Ollama endpoint
// can be overridden with OLLAMA_HOST; overrides are validated before use.
//
// Usage:
//
//	facet review unstaged             # review working tree changes
//	facet review staged               # review staged changes
//	facet review commit <sha>         # review a specific commit
//	facet providers list              # list supported backends
//	facet doctor                      # check backend connectivity
//
// Exit codes: 0 review passed, 1 review failed, 2 usage error, 4 runtime
// error.
package main
