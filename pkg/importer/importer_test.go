package importer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableflip.dev/vita/pkg/record"
)

func geminiResponse(t *testing.T, payload string) string {
	t.Helper()
	body := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": payload},
					},
				},
			},
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func TestProcessExtractsPeerReview(t *testing.T) {
	payload := `{"type":"peer-review","data":{"journal":"J. Systems","manuscriptTitle":"On Things","dueDate":"2025-01-10","status":"pending"}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-1.5-flash:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key missing from query")
		}
		w.Write([]byte(geminiResponse(t, payload)))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	got, err := c.Process(context.Background(), "Dear Professor ...", ProviderGemini, "test-key")
	if err != nil {
		t.Fatal(err)
	}

	if got.Kind != KindPeerReview {
		t.Fatalf("expected peer-review, got %s", got.Kind)
	}
	if got.Review == nil || got.Review.Journal != "J. Systems" {
		t.Fatalf("unexpected review: %+v", got.Review)
	}
	if got.Review.DueDate != "2025-01-10" {
		t.Fatalf("unexpected due date: %s", got.Review.DueDate)
	}
}

func TestProcessExtractsGrantViaOpenAI(t *testing.T) {
	payload := `{"type":"grant","data":{"title":"CAREER: Systems","agency":"NSF","amount":500000,"status":"planning"}}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", r.Header.Get("Authorization"))
		}
		body := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": payload}},
			},
		}
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	got, err := c.Process(context.Background(), "Funding opportunity ...", ProviderOpenAI, "test-key")
	if err != nil {
		t.Fatal(err)
	}

	if got.Kind != KindGrant {
		t.Fatalf("expected grant, got %s", got.Kind)
	}
	if got.Grant == nil || got.Grant.Amount != 500000 {
		t.Fatalf("unexpected grant: %+v", got.Grant)
	}
	if got.Grant.Status != record.GrantPlanning {
		t.Fatalf("unexpected status: %s", got.Grant.Status)
	}
}

func TestProcessUnknownCarriesReason(t *testing.T) {
	payload := `{"type":"unknown","error":"this looks like a newsletter"}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiResponse(t, payload)))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	got, err := c.Process(context.Background(), "weekly digest", ProviderGemini, "test-key")
	if err != nil {
		t.Fatal(err)
	}

	if got.Kind != KindUnknown {
		t.Fatalf("expected unknown, got %s", got.Kind)
	}
	if got.Reason != "this looks like a newsletter" {
		t.Fatalf("unexpected reason: %q", got.Reason)
	}
}

func TestProcessProviderErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.Process(context.Background(), "text", ProviderGemini, "test-key")
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "quota exceeded"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected %q in error, got %q", want, err)
	}
}

func TestProcessRequiresKeyAndText(t *testing.T) {
	c := &Client{}
	if _, err := c.Process(context.Background(), "", ProviderGemini, "key"); err == nil {
		t.Fatalf("empty text must fail")
	}
	if _, err := c.Process(context.Background(), "text", ProviderGemini, ""); err == nil {
		t.Fatalf("missing key must fail")
	}
}

func TestParseProvider(t *testing.T) {
	if p, err := ParseProvider(""); err != nil || p != ProviderGemini {
		t.Fatalf("empty provider defaults to gemini, got %s err=%v", p, err)
	}
	if p, err := ParseProvider("openai"); err != nil || p != ProviderOpenAI {
		t.Fatalf("expected openai, got %s err=%v", p, err)
	}
	if _, err := ParseProvider("llama"); err == nil {
		t.Fatalf("unknown provider must fail")
	}
}
