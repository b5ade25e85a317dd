package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
)

// DefaultEndpoint is the local model server address used when no override is
// configured.
const DefaultEndpoint = "http://localhost:11434"

// runner executes a subprocess and returns its combined output. Arguments are
// always passed as discrete argv elements, never through a shell, so prompts
// containing quotes, newlines, or $VAR-looking text reach the child verbatim.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// apiExecutor contacts the Ollama server over HTTP. The endpoint must have
// passed ValidateHost before it reaches this struct.
type apiExecutor struct {
	model    string
	endpoint string
	client   *http.Client
}

func (e *apiExecutor) Name() string { return "api" }

func (e *apiExecutor) Execute(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{Model: e.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", e.endpoint+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := e.client.Do(httpReq)
	if err != nil {
		return "", wrapError(KindConnectionFailure, "Failed to connect to Ollama at "+e.endpoint, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", wrapError(KindConnectionFailure, "Failed to connect to Ollama at "+e.endpoint, err)
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", wrapError(KindMalformedResponse, "Invalid JSON in Ollama response", err)
	}
	if result.Error != "" {
		return "", newError(KindBackendError, result.Error)
	}
	return result.Response, nil
}

// cliExecutor invokes the ollama binary directly. Used when the API path is
// unavailable.
type cliExecutor struct {
	model string
	run   runner
}

func (e *cliExecutor) Name() string { return "cli" }

func (e *cliExecutor) Execute(ctx context.Context, prompt string) (string, error) {
	out, err := e.run(ctx, "ollama", "run", e.model, prompt)
	if err != nil {
		return "", subprocessError("ollama", out, err)
	}
	return string(out), nil
}

// subprocessError classifies a failed subprocess invocation, propagating the
// exit status when the process ran at all.
func subprocessError(binary string, out []byte, err error) *Error {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	msg := fmt.Sprintf("%s exited with status %d", binary, code)
	if len(bytes.TrimSpace(out)) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, bytes.TrimSpace(out))
	}
	return &Error{Kind: KindSubprocessFailure, Message: msg, ExitCode: code, Err: err}
}
