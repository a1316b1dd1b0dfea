// README: Orchestrator tests against a scripted fake transport.
package itinerary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"
)

// fakeDoer scripts the upstream: respond returns the response for the n-th
// call (0-based). Requested URLs are recorded for order assertions.
type fakeDoer struct {
	urls    []string
	respond func(n int, req *http.Request) (*http.Response, error)
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	n := len(f.urls)
	f.urls = append(f.urls, req.URL.String())
	return f.respond(n, req)
}

func jsonResponse(status int, body string) (*http.Response, error) {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}, nil
}

func generatedText(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func newTestGenerator(d Doer) *Generator {
	g := NewGenerator("test-key")
	g.client = d
	return g
}

const validPayload = `{"destination":"Arequipa","days":1,"dayItineraries":[{"day":1,"title":"Colca","activities":[{"time":"07:00","name":"Cruz del Cóndor","category":"Nature","description":"Condor lookout","estimatedCost":35,"duration":120,"location":"Colca"}],"totalEstimatedCost":35}],"totalEstimatedCost":35}`

var genReq = Request{Destination: "Arequipa", Days: 1, Budget: BudgetLow}

func TestGenerateUnconfiguredServesFallback(t *testing.T) {
	for _, key := range []string{"", keyPlaceholder} {
		fake := &fakeDoer{respond: func(int, *http.Request) (*http.Response, error) {
			t.Fatal("unconfigured generator must not call upstream")
			return nil, nil
		}}
		g := NewGenerator(key)
		g.client = fake

		got := g.Generate(context.Background(), genReq)
		if !reflect.DeepEqual(got, Fallback(genReq)) {
			t.Errorf("key=%q: expected fallback itinerary", key)
		}
	}
}

func TestIsConfigured(t *testing.T) {
	if NewGenerator("").IsConfigured() {
		t.Error("empty key should not be configured")
	}
	if NewGenerator(keyPlaceholder).IsConfigured() {
		t.Error("placeholder key should not be configured")
	}
	if !NewGenerator("AIzaSy-real").IsConfigured() {
		t.Error("real key should be configured")
	}
}

// TestGenerateShortCircuit verifies first-success-wins: two failing candidates
// then a good one means exactly three calls and the parsed third response.
func TestGenerateShortCircuit(t *testing.T) {
	fake := &fakeDoer{respond: func(n int, _ *http.Request) (*http.Response, error) {
		if n < 2 {
			return jsonResponse(http.StatusNotFound, `{"error":{"message":"models/gemini-1.5-pro-latest is not found"}}`)
		}
		return jsonResponse(http.StatusOK, generatedText(validPayload))
	}}
	g := newTestGenerator(fake)

	got := g.Generate(context.Background(), genReq)

	if len(fake.urls) != 3 {
		t.Fatalf("expected exactly 3 calls, got %d", len(fake.urls))
	}
	if got.Destination != "Arequipa" || len(got.DayItineraries) != 1 ||
		got.DayItineraries[0].Activities[0].Name != "Cruz del Cóndor" {
		t.Errorf("expected parsed upstream itinerary, got %+v", got)
	}
}

func TestGenerateCandidateOrder(t *testing.T) {
	fake := &fakeDoer{respond: func(int, *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusServiceUnavailable, `{"error":{"message":"overloaded"}}`)
	}}
	g := newTestGenerator(fake)
	g.Generate(context.Background(), genReq)

	want := len(apiVersions) * len(geminiModels)
	if len(fake.urls) != want {
		t.Fatalf("expected %d attempts, got %d", want, len(fake.urls))
	}

	i := 0
	for _, v := range apiVersions {
		for _, m := range geminiModels {
			prefix := fmt.Sprintf("%s/%s/models/%s:generateContent", defaultBaseURL, v, m)
			if !strings.HasPrefix(fake.urls[i], prefix) {
				t.Errorf("attempt %d hit %q, want prefix %q", i, fake.urls[i], prefix)
			}
			i++
		}
	}
}

// TestGenerateExhaustionServesFallback covers configured-but-unreachable: a
// transport that always errors must yield the exact fallback itinerary.
func TestGenerateExhaustionServesFallback(t *testing.T) {
	tests := []struct {
		name    string
		respond func(int, *http.Request) (*http.Response, error)
	}{
		{"transport error", func(int, *http.Request) (*http.Response, error) {
			return nil, fmt.Errorf("dial tcp: connection refused")
		}},
		{"http error with payload", func(int, *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusForbidden, `{"error":{"message":"API key not valid"}}`)
		}},
		{"http error without payload", func(int, *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusBadGateway, "<html>bad gateway</html>")
		}},
		{"success with empty text", func(int, *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, generatedText(""))
		}},
		{"success with no candidates", func(int, *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"candidates":[]}`)
		}},
		{"success with unparseable body", func(int, *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, "not json at all")
		}},
	}

	want := Fallback(genReq)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDoer{respond: tt.respond}
			g := newTestGenerator(fake)

			got := g.Generate(context.Background(), genReq)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("expected fallback itinerary, got %+v", got)
			}
			if len(fake.urls) != len(apiVersions)*len(geminiModels) {
				t.Errorf("expected full exhaustion, got %d calls", len(fake.urls))
			}
		})
	}
}

// TestGenerateGarbageTextStopsIterating: a success status with non-empty text
// ends the candidate loop even when the text does not parse; the parser then
// degrades on its own.
func TestGenerateGarbageTextStopsIterating(t *testing.T) {
	fake := &fakeDoer{respond: func(int, *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, generatedText("sorry, no JSON today"))
	}}
	g := newTestGenerator(fake)

	got := g.Generate(context.Background(), genReq)

	if len(fake.urls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fake.urls))
	}
	if !reflect.DeepEqual(got, Fallback(genReq)) {
		t.Errorf("expected parser to degrade to fallback, got %+v", got)
	}
}

func TestGenerateRequestBodyCarriesPrompt(t *testing.T) {
	var captured string
	fake := &fakeDoer{respond: func(_ int, req *http.Request) (*http.Response, error) {
		b, _ := io.ReadAll(req.Body)
		captured = string(b)
		return jsonResponse(http.StatusOK, generatedText(validPayload))
	}}
	g := newTestGenerator(fake)
	g.Generate(context.Background(), Request{Destination: "Trujillo", Days: 2})

	if !strings.Contains(captured, `"contents"`) || !strings.Contains(captured, `"parts"`) {
		t.Errorf("request body missing contents/parts wrapping: %s", captured)
	}
	if !strings.Contains(captured, "Trujillo") {
		t.Errorf("request body does not carry the prompt: %s", captured)
	}
}

func TestGenerateCredentialInQuery(t *testing.T) {
	fake := &fakeDoer{respond: func(int, *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, generatedText(validPayload))
	}}
	g := newTestGenerator(fake)
	g.Generate(context.Background(), genReq)

	if !strings.Contains(fake.urls[0], "key=test-key") {
		t.Errorf("credential parameter missing from endpoint URL: %s", fake.urls[0])
	}
}
