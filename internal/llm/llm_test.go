package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/leonardotrapani/chromagen/internal/harmony"
)

func TestBuildSystemPrompt(t *testing.T) {
	result := BuildSystemPrompt()
	for _, expected := range []string{
		"baseColor",
		"Split-Complementary",
		"Monochromatic",
		"Cyberpunk",
		"Pastel",
		"near-black background",
		"deep blues",
	} {
		if !strings.Contains(result, expected) {
			t.Errorf("expected prompt to contain %q, got: %s", expected, result)
		}
	}
}

func TestBuildUserMessage(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantParts []openai.ChatMessagePartType
		wantText  string
	}{
		{
			name:      "text only",
			req:       Request{Prompt: "forest at dawn"},
			wantParts: []openai.ChatMessagePartType{openai.ChatMessagePartTypeText},
			wantText:  "Create a palette for: forest at dawn",
		},
		{
			name:      "image only",
			req:       Request{Image: &Image{MIMEType: "image/png", Data: []byte{1, 2, 3}}},
			wantParts: []openai.ChatMessagePartType{openai.ChatMessagePartTypeText, openai.ChatMessagePartTypeImageURL},
			wantText:  "Extract a palette seed from this image:",
		},
		{
			name:      "text and image",
			req:       Request{Prompt: "retro", Image: &Image{MIMEType: "image/jpeg", Data: []byte{9}}},
			wantParts: []openai.ChatMessagePartType{openai.ChatMessagePartTypeText, openai.ChatMessagePartTypeImageURL},
			wantText:  "Create a palette for: retro",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := BuildUserMessage(tc.req)
			if msg.Role != openai.ChatMessageRoleUser {
				t.Errorf("expected user role, got %s", msg.Role)
			}
			if len(msg.MultiContent) != len(tc.wantParts) {
				t.Fatalf("expected %d parts, got %d", len(tc.wantParts), len(msg.MultiContent))
			}
			for i, typ := range tc.wantParts {
				if msg.MultiContent[i].Type != typ {
					t.Errorf("part %d: expected %s, got %s", i, typ, msg.MultiContent[i].Type)
				}
			}
			if msg.MultiContent[0].Text != tc.wantText {
				t.Errorf("expected text %q, got %q", tc.wantText, msg.MultiContent[0].Text)
			}
		})
	}
}

func TestDataURI(t *testing.T) {
	got := DataURI(Image{MIMEType: "image/png", Data: []byte("hi")})
	if got != "data:image/png;base64,aGk=" {
		t.Errorf("unexpected data URI %q", got)
	}
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		want         harmony.Spec
		wantWarnings int
	}{
		{
			name:    "complete object",
			content: `{"baseColor": "#00FF9D", "harmony": "split-complementary", "mood": "Cyberpunk"}`,
			want:    harmony.Spec{BaseColor: "#00ff9d", Harmony: harmony.SplitComplementary, Mood: harmony.Cyberpunk},
		},
		{
			name:         "not json",
			content:      "Here is your palette!",
			want:         harmony.DefaultSpec(),
			wantWarnings: 1,
		},
		{
			name:         "array is not accepted",
			content:      `[{"hex": "#ff0000", "role": "Primary"}]`,
			want:         harmony.DefaultSpec(),
			wantWarnings: 1,
		},
		{
			name:         "null",
			content:      "null",
			want:         harmony.DefaultSpec(),
			wantWarnings: 1,
		},
		{
			name:         "invalid base color",
			content:      `{"baseColor": "teal", "harmony": "Triadic", "mood": "Dark"}`,
			want:         harmony.Spec{BaseColor: "#3b82f6", Harmony: harmony.Triadic, Mood: harmony.Dark},
			wantWarnings: 1,
		},
		{
			name:         "non-string base color",
			content:      `{"baseColor": 123, "harmony": "Triadic", "mood": "Dark"}`,
			want:         harmony.Spec{BaseColor: "#3b82f6", Harmony: harmony.Triadic, Mood: harmony.Dark},
			wantWarnings: 1,
		},
		{
			name:         "missing harmony and mood",
			content:      `{"baseColor": "#1e3a8a"}`,
			want:         harmony.Spec{BaseColor: "#1e3a8a", Harmony: harmony.Analogous, Mood: harmony.Standard},
			wantWarnings: 2,
		},
		{
			name:         "unrecognized names are kept",
			content:      `{"baseColor": "#1e3a8a", "harmony": "Tetradic", "mood": "Gloomy"}`,
			want:         harmony.Spec{BaseColor: "#1e3a8a", Harmony: harmony.Rule("Tetradic"), Mood: harmony.Mood("Gloomy")},
			wantWarnings: 2,
		},
		{
			name:    "surrounding whitespace",
			content: "\n  {\"baseColor\": \"1e3a8a\", \"harmony\": \"Monochromatic\", \"mood\": \"Standard\"}\n",
			want:    harmony.Spec{BaseColor: "#1e3a8a", Harmony: harmony.Monochromatic, Mood: harmony.Standard},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, warnings := ParseSpec(tc.content)
			if got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
			if len(warnings) != tc.wantWarnings {
				t.Errorf("expected %d warnings, got %d: %v", tc.wantWarnings, len(warnings), warnings)
			}
		})
	}
}

func TestNewResolver(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "openai", cfg: Config{Provider: "openai", APIKey: "sk-test"}},
		{name: "groq", cfg: Config{Provider: "groq", APIKey: "gsk_test"}},
		{name: "openai without key", cfg: Config{Provider: "openai"}, wantErr: true},
		{name: "groq without key", cfg: Config{Provider: "groq"}, wantErr: true},
		{name: "unknown provider", cfg: Config{Provider: "mistral", APIKey: "x"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewResolver(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error, got resolver %T", r)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r == nil {
				t.Fatal("expected resolver")
			}
		})
	}
}

func TestAdapterDefaults(t *testing.T) {
	openaiAdapter := NewOpenAIAdapter(Config{Provider: "openai", APIKey: "sk-test"})
	if openaiAdapter.model != DefaultOpenAIModel {
		t.Errorf("expected %s, got %s", DefaultOpenAIModel, openaiAdapter.model)
	}

	groqAdapter := NewGroqAdapter(Config{Provider: "groq", APIKey: "gsk_test", Model: "llama-3.3-70b-versatile"})
	if groqAdapter.model != "llama-3.3-70b-versatile" {
		t.Errorf("expected configured model, got %s", groqAdapter.model)
	}
}

// chatServer fakes the chat completions endpoint and records the request.
func chatServer(t *testing.T, status int, content string, got *openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if got != nil {
			if err := json.Unmarshal(body, got); err != nil {
				t.Errorf("invalid request body: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []map[string]any{{"index": 0, "message": map[string]string{"role": "assistant", "content": content}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolve(t *testing.T) {
	var sent openai.ChatCompletionRequest
	srv := chatServer(t, http.StatusOK, `{"baseColor": "#00ff9d", "harmony": "Split-Complementary", "mood": "Cyberpunk"}`, &sent)

	r := NewGroqAdapter(Config{Provider: "groq", APIKey: "gsk_test", BaseURL: srv.URL + "/v1"})
	spec, err := r.Resolve(context.Background(), Request{Prompt: "cyberpunk city"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := harmony.Spec{BaseColor: "#00ff9d", Harmony: harmony.SplitComplementary, Mood: harmony.Cyberpunk}
	if spec != want {
		t.Errorf("expected %+v, got %+v", want, spec)
	}

	if sent.Model != DefaultGroqModel {
		t.Errorf("expected model %s, got %s", DefaultGroqModel, sent.Model)
	}
	if sent.Temperature != DefaultTemperature || sent.MaxTokens != DefaultMaxTokens {
		t.Errorf("expected temperature %v and max tokens %d, got %v and %d", DefaultTemperature, DefaultMaxTokens, sent.Temperature, sent.MaxTokens)
	}
	if sent.ResponseFormat == nil || sent.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
		t.Errorf("expected JSON object response format, got %+v", sent.ResponseFormat)
	}
	if len(sent.Messages) != 2 || sent.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("expected system and user messages, got %+v", sent.Messages)
	}
}

func TestResolveAPIError(t *testing.T) {
	srv := chatServer(t, http.StatusTooManyRequests, "", nil)

	r := NewOpenAIAdapter(Config{Provider: "openai", APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	if _, err := r.Resolve(context.Background(), Request{Prompt: "sunset"}); err == nil {
		t.Fatal("expected error from failing API")
	}
}

func TestResolveEmptyRequest(t *testing.T) {
	r := NewOpenAIAdapter(Config{Provider: "openai", APIKey: "sk-test", BaseURL: "http://127.0.0.1:0"})
	if _, err := r.Resolve(context.Background(), Request{}); !errors.Is(err, ErrEmptyRequest) {
		t.Errorf("expected ErrEmptyRequest, got %v", err)
	}
}

func TestParseDataURI(t *testing.T) {
	img, err := ParseDataURI("data:image/png;base64,aGk=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.MIMEType != "image/png" || string(img.Data) != "hi" {
		t.Errorf("unexpected image %+v", img)
	}
	if DataURI(*img) != "data:image/png;base64,aGk=" {
		t.Errorf("expected DataURI to reproduce the input, got %q", DataURI(*img))
	}

	for _, bad := range []string{
		"image/png;base64,aGk=",
		"data:image/png;base64",
		"data:image/png,hi",
		"data:text/plain;base64,aGk=",
		"data:image/png;base64,!!!",
		"data:image/png;base64,",
	} {
		if _, err := ParseDataURI(bad); !errors.Is(err, ErrInvalidDataURI) {
			t.Errorf("ParseDataURI(%q): expected ErrInvalidDataURI, got %v", bad, err)
		}
	}
}
