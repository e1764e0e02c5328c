package service

import (
	"context"
	"encoding/json"
	"errors"
	"lms_backend/internal/config"
	"lms_backend/internal/util"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fakeCompletionServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func completionReply(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := ChatCompletionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message AIChatMessage `json:"message"`
		}{Message: AIChatMessage{Role: "assistant", Content: content}})
		json.NewEncoder(w).Encode(resp)
	}
}

func newAITest(srv *httptest.Server) *AIService {
	return NewAIService(config.AIConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
	}, nil)
}

func TestGenerateText(t *testing.T) {
	var gotAuth string
	var gotReq ChatCompletionRequest
	srv := fakeCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		completionReply("A lesson outline.")(w, r)
	})

	svc := newAITest(srv)
	text, err := svc.GenerateText(context.Background(), "Outline a Go course")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if text != "A lesson outline." {
		t.Fatalf("text = %q", text)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotReq.Model != "test-model" || len(gotReq.Messages) != 2 || gotReq.Messages[1].Content != "Outline a Go course" {
		t.Fatalf("request = %+v", gotReq)
	}
}

func TestGenerateTextNotConfigured(t *testing.T) {
	svc := NewAIService(config.AIConfig{}, nil)
	if _, err := svc.GenerateText(context.Background(), "anything"); !errors.Is(err, util.ErrAINotConfigured) {
		t.Fatalf("err = %v, want ErrAINotConfigured", err)
	}
}

func TestGenerateTextUpstreamFailure(t *testing.T) {
	srv := fakeCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"overloaded"}}`, http.StatusServiceUnavailable)
	})
	svc := newAITest(srv)
	if _, err := svc.GenerateText(context.Background(), "x"); !errors.Is(err, util.ErrAIRequestFailed) {
		t.Fatalf("non-200: err = %v, want ErrAIRequestFailed", err)
	}

	srv2 := fakeCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "invalid key"},
		})
	})
	svc2 := newAITest(srv2)
	if _, err := svc2.GenerateText(context.Background(), "x"); !errors.Is(err, util.ErrAIRequestFailed) {
		t.Fatalf("error body: err = %v, want ErrAIRequestFailed", err)
	}
}

func TestGenerateStructured(t *testing.T) {
	cases := map[string]string{
		"plain":  `["Variables", "Functions", "Interfaces"]`,
		"fenced": "```json\n[\"Variables\", \"Functions\", \"Interfaces\"]\n```",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := fakeCompletionServer(t, completionReply(body))
			svc := newAITest(srv)
			items, err := svc.GenerateStructured(context.Background(), "Suggest topics")
			if err != nil {
				t.Fatalf("generate structured: %v", err)
			}
			if len(items) != 3 || items[0] != "Variables" || items[2] != "Interfaces" {
				t.Fatalf("items = %v", items)
			}
		})
	}
}

func TestGenerateStructuredParseFailure(t *testing.T) {
	srv := fakeCompletionServer(t, completionReply("Here are some topics: variables, functions."))
	svc := newAITest(srv)
	if _, err := svc.GenerateStructured(context.Background(), "Suggest topics"); !errors.Is(err, util.ErrAIParseFailed) {
		t.Fatalf("err = %v, want ErrAIParseFailed", err)
	}

	srv2 := fakeCompletionServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatCompletionResponse{})
	})
	svc2 := newAITest(srv2)
	if _, err := svc2.GenerateText(context.Background(), "x"); !errors.Is(err, util.ErrAIParseFailed) {
		t.Fatalf("no choices: err = %v, want ErrAIParseFailed", err)
	}
}
