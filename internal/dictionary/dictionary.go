// Package dictionary is a client for the public Free Dictionary API
// (https://dictionaryapi.dev).
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the English entries endpoint of the Free Dictionary API
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// ErrNoEntries is returned when the API answers with an empty result
var ErrNoEntries = errors.New("dictionary returned no entries")

// Entry is one lexical entry for a term
type Entry struct {
	Word     string    `json:"word"`
	Meanings []Meaning `json:"meanings"`
}

// Meaning groups the definitions of one part of speech
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single definition with an optional example sentence
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// Client looks up English terms
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a dictionary client. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Lookup fetches the lexical entries for term
func (c *Client) Lookup(ctx context.Context, term string) ([]Entry, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(term)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call dictionary api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dictionary api returned status: %s", resp.Status)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode dictionary response: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	return entries, nil
}

// FirstDefinition returns the first definition of the first meaning group of
// the first entry, or nil when any level is empty
func FirstDefinition(entries []Entry) *Definition {
	if len(entries) == 0 || len(entries[0].Meanings) == 0 || len(entries[0].Meanings[0].Definitions) == 0 {
		return nil
	}
	return &entries[0].Meanings[0].Definitions[0]
}

// FullMeaning renders every definition of the first entry, numbered within
// each meaning group. Each definition is followed by ". " and groups are
// separated by one more space, so the result keeps a trailing space.
func FullMeaning(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	meanings := entries[0].Meanings
	for i, m := range meanings {
		for j, d := range m.Definitions {
			fmt.Fprintf(&b, "%d. %s. ", j+1, d.Definition)
		}
		if i < len(meanings)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
