// README: Google Translate v2 client for the in-app phrasebook/translator.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const translateEndpoint = "https://translation.googleapis.com/language/translate/v2"

var (
	// ErrNotConfigured is returned when no Translate API key is set. Unlike
	// itinerary generation there is no offline fallback for translation, so
	// this surfaces to the caller.
	ErrNotConfigured = errors.New("translate: api key not configured")

	ErrEmptyText = errors.New("translate: text must not be empty")
)

// languageCodes maps the UI's language names (the app ships in Spanish) to
// Google Translate codes.
var languageCodes = map[string]string{
	"Español":   "es",
	"Inglés":    "en",
	"Francés":   "fr",
	"Alemán":    "de",
	"Italiano":  "it",
	"Portugués": "pt",
}

// Result is one completed translation.
type Result struct {
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

// Doer abstracts the HTTP transport so tests can fake the upstream.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Service struct {
	apiKey string
	client Doer
}

func NewService(apiKey string) *Service {
	return &Service{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// IsConfigured reports whether a Translate API key is present.
func (s *Service) IsConfigured() bool {
	return strings.TrimSpace(s.apiKey) != ""
}

// Languages lists the supported language names, sorted for stable output.
func Languages() []string {
	out := make([]string, 0, len(languageCodes))
	for name := range languageCodes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LanguageCode resolves a language name to its Translate code, defaulting to
// Spanish for unknown names.
func LanguageCode(name string) string {
	if code, ok := languageCodes[name]; ok {
		return code
	}
	return "es"
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Translate translates text between two named languages. Unknown source names
// default to Spanish, unknown targets to English, mirroring the app's UI.
func (s *Service) Translate(ctx context.Context, text, sourceLang, targetLang string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyText
	}
	if !s.IsConfigured() {
		return Result{}, ErrNotConfigured
	}

	sourceCode := LanguageCode(sourceLang)
	targetCode := "en"
	if code, ok := languageCodes[targetLang]; ok {
		targetCode = code
	}

	body, err := json.Marshal(translateRequest{Q: text, Source: sourceCode, Target: targetCode})
	if err != nil {
		return Result{}, fmt.Errorf("translate: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s?key=%s", translateEndpoint, url.QueryEscape(s.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("translate: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("translate: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("translate: read response: %w", err)
	}

	var tr translateResponse
	decodeErr := json.Unmarshal(raw, &tr)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && tr.Error != nil && tr.Error.Message != "" {
			return Result{}, fmt.Errorf("translate: api error: %s", tr.Error.Message)
		}
		return Result{}, fmt.Errorf("translate: status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return Result{}, fmt.Errorf("translate: unmarshal response: %w", decodeErr)
	}
	if len(tr.Data.Translations) == 0 {
		return Result{}, fmt.Errorf("translate: empty translations in response")
	}

	return Result{
		TranslatedText: tr.Data.Translations[0].TranslatedText,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
	}, nil
}
