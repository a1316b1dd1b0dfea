// README: Generation orchestrator; probes Gemini endpoint candidates, parses, falls back.
package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// keyPlaceholder is the unfilled template value shipped in .env.example. A key
// equal to it counts as not configured.
const keyPlaceholder = "your_gemini_api_key_here"

// Doer abstracts the HTTP transport so tests can fake the upstream.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Generator is the public entry point of the itinerary pipeline. It holds no
// mutable state between calls; concurrent Generate calls are independent.
type Generator struct {
	apiKey  string
	baseURL string
	client  Doer
}

// NewGenerator creates a Generator for the given Gemini API key. An empty or
// placeholder key is a valid, expected state: Generate then serves the
// deterministic fallback without touching the network.
func NewGenerator(apiKey string) *Generator {
	return &Generator{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		// 30s guards against stalled connections; context cancellation is
		// still honoured via NewRequestWithContext.
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured reports whether a usable API key is present. Exposed so the UI
// can skip the round trip; Generate self-checks regardless.
func (g *Generator) IsConfigured() bool {
	return g.apiKey != "" && g.apiKey != keyPlaceholder
}

// Generate produces an itinerary for the request. It never returns an error
// and never panics under normal operation: every upstream failure is absorbed
// into either "try the next candidate" or "use the fallback". The caller
// always gets a populated itinerary.
func (g *Generator) Generate(ctx context.Context, req Request) Itinerary {
	if !g.IsConfigured() {
		log.Printf("itinerary: gemini api key not configured, serving fallback itinerary")
		return Fallback(req)
	}

	prompt := buildPrompt(req)

	var lastErr error
	attempts := 0
	for _, c := range candidates() {
		attempts++
		text, err := g.call(ctx, c, prompt)
		if err != nil {
			// All failure classes are handled the same way: keep the message
			// for diagnostics and move on to the next candidate.
			lastErr = err
			continue
		}
		log.Printf("itinerary: %s/%s responded after %d attempt(s)", c.version, c.model, attempts)
		return Parse(text, req)
	}

	log.Printf("itinerary: all %d model candidates failed (last error: %v), serving fallback itinerary", attempts, lastErr)
	return Fallback(req)
}

// Wire types for the generateContent call. The response nesting
// (candidates[0].content.parts[0].text) is dictated by the upstream API.
type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// call performs one generateContent request against a single candidate
// endpoint and returns the generated text.
func (g *Generator) call(ctx context.Context, c candidate, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("itinerary: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s",
		g.baseURL, c.version, c.model, url.QueryEscape(g.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("itinerary: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("itinerary: %s/%s: %w", c.version, c.model, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("itinerary: %s/%s: read response: %w", c.version, c.model, err)
	}

	var gr generateResponse
	decodeErr := json.Unmarshal(raw, &gr)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && gr.Error != nil && gr.Error.Message != "" {
			return "", fmt.Errorf("itinerary: %s/%s: api error: %s", c.version, c.model, gr.Error.Message)
		}
		return "", fmt.Errorf("itinerary: %s/%s: status %d", c.version, c.model, resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("itinerary: %s/%s: unmarshal response: %w", c.version, c.model, decodeErr)
	}
	if gr.Error != nil && gr.Error.Message != "" {
		return "", fmt.Errorf("itinerary: %s/%s: api error: %s", c.version, c.model, gr.Error.Message)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("itinerary: %s/%s: empty candidates", c.version, c.model)
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("itinerary: %s/%s: empty generated text", c.version, c.model)
	}
	return text, nil
}
