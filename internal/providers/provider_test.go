package providers

import "testing"

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		wantBase  string
		wantModel string
	}{
		{"bare provider", "claude", "claude", ""},
		{"provider with model", "ollama:llama3", "ollama", "llama3"},
		{"model with tag", "ollama:codellama:7b", "ollama", "codellama:7b"},
		{"many colons", "ollama:a:b:c", "ollama", "a:b:c"},
		{"empty", "", "", ""},
		{"trailing colon", "ollama:", "ollama", ""},
		{"leading colon", ":llama3", "", "llama3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ParseSpec(tt.spec)
			if s.Base != tt.wantBase || s.Model != tt.wantModel {
				t.Errorf("ParseSpec(%q) = (%q, %q), want (%q, %q)",
					tt.spec, s.Base, s.Model, tt.wantBase, tt.wantModel)
			}
		})
	}
}

func TestSpec_RoundTrip(t *testing.T) {
	for _, spec := range []string{"claude", "gemini", "ollama:llama3", "ollama:codellama:7b"} {
		if got := ParseSpec(spec).String(); got != spec {
			t.Errorf("ParseSpec(%q).String() = %q", spec, got)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"claude", "Claude"},
		{"gemini", "Gemini"},
		{"codex", "Codex"},
		{"ollama", "Ollama"},
		{"ollama:codellama:7b", "Ollama (codellama:7b)"},
		{"claude:opus", "Claude"},
		{"mystery", "Unknown provider"},
		{"", "Unknown provider"},
	}

	for _, tt := range tests {
		if got := Describe(tt.spec); got != tt.want {
			t.Errorf("Describe(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestKnown(t *testing.T) {
	for _, base := range []string{"claude", "gemini", "codex", "ollama"} {
		if !Known(base) {
			t.Errorf("Known(%q) = false", base)
		}
	}
	for _, base := range []string{"", "anthropic", "CLAUDE", "ollama:llama3"} {
		if Known(base) {
			t.Errorf("Known(%q) = true", base)
		}
	}
}
