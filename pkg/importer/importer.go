// Package importer implements the magic import collaborator: free-form
// text (usually a pasted email) goes to an external extraction provider
// and comes back as a tagged partial record. A failed or malformed
// extraction yields no record at all; it can never corrupt a collection.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tableflip.dev/vita/pkg/record"
)

// Provider selects the extraction backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

func ParseProvider(raw string) (Provider, error) {
	switch Provider(strings.ToLower(strings.TrimSpace(raw))) {
	case ProviderGemini, "":
		return ProviderGemini, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	}
	return "", fmt.Errorf("importer: unknown provider %q", raw)
}

// Kind tags the extracted record shape.
type Kind string

const (
	KindPeerReview Kind = "peer-review"
	KindGrant      Kind = "grant"
	KindPaper      Kind = "paper"
	KindUnknown    Kind = "unknown"
)

// Result carries exactly one partially-filled record, or KindUnknown with
// the provider's reason. Callers backfill missing fields with sane
// defaults before calling Add.
type Result struct {
	Kind   Kind
	Review *record.PeerReview
	Grant  *record.Grant
	Paper  *record.Paper
	Reason string
}

// Client calls the extraction provider. The zero value uses
// http.DefaultClient.
type Client struct {
	HTTPClient *http.Client

	// BaseURL overrides the provider endpoint; tests point it at a local
	// server.
	BaseURL string
}

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"
	openAIBaseURL = "https://api.openai.com"
)

// Process sends text to the selected provider and returns the tagged
// result. Transport and provider failures return as errors, surfaced to
// the user verbatim and never retried; only a successful call that cannot
// classify the text yields KindUnknown.
func (c *Client) Process(ctx context.Context, text string, provider Provider, apiKey string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, errors.New("importer: no text to import")
	}
	if apiKey == "" {
		return Result{}, errors.New("importer: no API key configured")
	}

	var payload string
	var err error
	switch provider {
	case ProviderOpenAI:
		payload, err = c.callOpenAI(ctx, text, apiKey)
	default:
		payload, err = c.callGemini(ctx, text, apiKey)
	}
	if err != nil {
		return Result{}, err
	}
	return decodeResult(payload)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) post(ctx context.Context, endpoint string, headers map[string]string, body interface{}) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("importer: encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("importer: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("importer: provider request failed: %w", err)
	}
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("importer: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("importer: provider error %d: %s", resp.StatusCode, providerMessage(out))
	}
	return out, nil
}

// providerMessage pulls the human-readable message out of a provider error
// body, falling back to the raw body.
func providerMessage(body []byte) string {
	var wrapped struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error.Message != "" {
		return wrapped.Error.Message
	}
	return strings.TrimSpace(string(body))
}

func (c *Client) callGemini(ctx context.Context, text, apiKey string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = geminiBaseURL
	}
	endpoint := fmt.Sprintf("%s/v1beta/models/gemini-1.5-flash:generateContent?key=%s",
		base, url.QueryEscape(apiKey))

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": importPrompt(text)}}},
		},
		"generationConfig": map[string]string{
			"response_mime_type": "application/json",
		},
	}

	out, err := c.post(ctx, endpoint, nil, body)
	if err != nil {
		return "", err
	}

	var resp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		return "", fmt.Errorf("importer: decoding gemini response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("importer: gemini returned no candidates")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (c *Client) callOpenAI(ctx context.Context, text, apiKey string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = openAIBaseURL
	}
	endpoint := base + "/v1/chat/completions"

	body := map[string]interface{}{
		"model": "gpt-4o-mini",
		"messages": []map[string]string{
			{"role": "user", "content": importPrompt(text)},
		},
		"response_format": map[string]string{"type": "json_object"},
	}
	headers := map[string]string{"Authorization": "Bearer " + apiKey}

	out, err := c.post(ctx, endpoint, headers, body)
	if err != nil {
		return "", err
	}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		return "", fmt.Errorf("importer: decoding openai response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("importer: openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// decodeResult parses the provider's JSON classification into exactly one
// record shape.
func decodeResult(payload string) (Result, error) {
	var tagged struct {
		Type  Kind            `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}
	if err := json.Unmarshal([]byte(payload), &tagged); err != nil {
		return Result{}, fmt.Errorf("importer: unparseable extraction: %w", err)
	}

	switch tagged.Type {
	case KindPeerReview:
		review := &record.PeerReview{}
		if err := json.Unmarshal(tagged.Data, review); err != nil {
			return Result{}, fmt.Errorf("importer: bad peer-review fields: %w", err)
		}
		return Result{Kind: KindPeerReview, Review: review}, nil
	case KindGrant:
		grant := &record.Grant{}
		if err := json.Unmarshal(tagged.Data, grant); err != nil {
			return Result{}, fmt.Errorf("importer: bad grant fields: %w", err)
		}
		return Result{Kind: KindGrant, Grant: grant}, nil
	case KindPaper:
		paper := &record.Paper{}
		if err := json.Unmarshal(tagged.Data, paper); err != nil {
			return Result{}, fmt.Errorf("importer: bad paper fields: %w", err)
		}
		return Result{Kind: KindPaper, Paper: paper}, nil
	case KindUnknown:
		reason := tagged.Error
		if reason == "" {
			reason = "could not identify the content type"
		}
		return Result{Kind: KindUnknown, Reason: reason}, nil
	}
	return Result{}, fmt.Errorf("importer: unexpected result type %q", tagged.Type)
}

func importPrompt(text string) string {
	return fmt.Sprintf(`You are an academic dashboard assistant. Analyze the following text (likely an email) and extract information for an academic dashboard.
Determine if it is a Peer Review Request, a Grant/Funding opportunity/update, or a Paper/Manuscript update.

Return a JSON object in this format:
{
  "type": "peer-review" | "grant" | "paper",
  "data": { ... relevant fields ... }
}

Fields for peer-review: journal, manuscriptTitle, dueDate (YYYY-MM-DD), status ("pending")
Fields for grant: title, agency, submissionDeadline (YYYY-MM-DD), status ("planning")
Fields for paper: title, targetJournal, stage ("submitted" | "under-review" | "revise-resubmit" | "accepted")

Only return the JSON. If you cannot determine the type, return {"type": "unknown", "error": "Could not identify the content type"}.

Input Text:
"""
%s
"""
`, text)
}
