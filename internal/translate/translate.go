// Package translate is a client for a LibreTranslate compatible service.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DefaultURL is the translate endpoint of a locally running LibreTranslate
const DefaultURL = "http://localhost:5000/translate"

// ErrNoTranslation is returned when the response has no translatedText
var ErrNoTranslation = errors.New("translatedText missing from response")

type request struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type response struct {
	TranslatedText *string `json:"translatedText"`
}

// Client translates text between languages
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a translation client. A nil httpClient uses http.DefaultClient.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: url, httpClient: httpClient}
}

// Translate renders plain text from source into target language
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	body, err := json.Marshal(request{Q: text, Source: source, Target: target, Format: "text"})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call translate api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("translate api returned status: %s", resp.Status)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if out.TranslatedText == nil {
		return "", ErrNoTranslation
	}

	return *out.TranslatedText, nil
}

// ToTurkish translates English text into Turkish
func (c *Client) ToTurkish(ctx context.Context, text string) (string, error) {
	return c.Translate(ctx, text, "en", "tr")
}
