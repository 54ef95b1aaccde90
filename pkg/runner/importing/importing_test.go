package importing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/backing"
	"tableflip.dev/vita/pkg/importer"
	"tableflip.dev/vita/pkg/record"
	"tableflip.dev/vita/pkg/settings"
)

func geminiServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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
		json.NewEncoder(w).Encode(body)
	}))
}

func testApp() *app.App {
	a := app.New(backing.NewMemory())
	a.Hydrate(context.Background())
	a.Settings.Update(func(s *settings.Settings) {
		s.APIKey = "test-key"
	})
	return a
}

func TestImportAddsExtractedReview(t *testing.T) {
	srv := geminiServer(t, `{"type":"peer-review","data":{"journal":"J. Systems","dueDate":"2025-01-10"}}`)
	defer srv.Close()

	a := testApp()
	n := Import{
		Text:   "Dear Professor, we invite you to review ...",
		App:    a,
		Client: &importer.Client{BaseURL: srv.URL},
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	reviews := a.Reviews.List()
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review added, got %d", len(reviews))
	}
	if reviews[0].ID == "" {
		t.Fatalf("imported record must get an id")
	}
	if reviews[0].Status != record.ReviewPending {
		t.Fatalf("missing status must default to pending, got %s", reviews[0].Status)
	}
}

func TestImportBackfillsMissingTitle(t *testing.T) {
	srv := geminiServer(t, `{"type":"grant","data":{"agency":"NSF","amount":100000}}`)
	defer srv.Close()

	a := testApp()
	n := Import{
		Text:   "Funding opportunity ...",
		App:    a,
		Client: &importer.Client{BaseURL: srv.URL},
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	grants := a.Grants.List()
	if len(grants) != 1 {
		t.Fatalf("expected 1 grant, got %d", len(grants))
	}
	if grants[0].Title != "Untitled grant" {
		t.Fatalf("expected backfilled title, got %q", grants[0].Title)
	}
	if grants[0].Status != record.GrantPlanning {
		t.Fatalf("missing status must default to planning, got %s", grants[0].Status)
	}
}

func TestImportUnknownAddsNothing(t *testing.T) {
	srv := geminiServer(t, `{"type":"unknown","error":"newsletter, not actionable"}`)
	defer srv.Close()

	a := testApp()
	n := Import{
		Text:   "weekly digest",
		App:    a,
		Client: &importer.Client{BaseURL: srv.URL},
	}
	err := n.Do(context.Background())
	if err == nil {
		t.Fatalf("unclassifiable text must surface an error")
	}
	if !strings.Contains(err.Error(), "newsletter, not actionable") {
		t.Fatalf("error must carry the provider reason, got %q", err)
	}
	if a.Reviews.Len()+a.Grants.Len()+a.Papers.Len() != 0 {
		t.Fatalf("a failed import must add nothing")
	}
}

func TestImportProviderFromSettings(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": `{"type":"paper","data":{"title":"T"}}`}},
			},
		}
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	a := testApp()
	a.Settings.Update(func(s *settings.Settings) {
		s.AIProvider = "openai"
	})

	n := Import{
		Text:   "cfp text",
		App:    a,
		Client: &importer.Client{BaseURL: srv.URL},
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	if path != "/v1/chat/completions" {
		t.Fatalf("settings provider must pick the endpoint, got %s", path)
	}
	if a.Papers.Len() != 1 {
		t.Fatalf("expected the paper added")
	}
}
