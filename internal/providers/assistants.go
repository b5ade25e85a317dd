package providers

import "context"

type assistantExecutor struct {
	name  string
	model string
	run   runner
}

func newAssistant(s Spec, run runner) *assistantExecutor {
	return &assistantExecutor{name: s.Base, model: s.Model, run: run}
}

func (a *assistantExecutor) Name() string { return a.name }

// args builds the argv for one hosted assistant invocation. The prompt is
// always a single element; it is never joined into a shell string.
func (a *assistantExecutor) args(prompt string) []string {
	var args []string
	switch a.name {
	case ProviderCodex:
		args = []string{"exec"}
	default:
		args = []string{"-p"}
	}
	args = append(args, prompt)
	if a.model != "" {
		args = append(args, "--model", a.model)
	}
	return args
}

func (a *assistantExecutor) Execute(ctx context.Context, prompt string) (string, error) {
	out, err := a.run(ctx, a.name, a.args(prompt)...)
	if err != nil {
		return "", subprocessError(a.name, out, err)
	}
	return string(out), nil
}
