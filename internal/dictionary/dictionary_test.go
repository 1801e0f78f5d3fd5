package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appleResponse = `[{
	"word": "apple",
	"meanings": [
		{"partOfSpeech": "noun", "definitions": [
			{"definition": "A common, round fruit.", "example": "She ate an apple."},
			{"definition": "The tree of this fruit."}
		]},
		{"partOfSpeech": "verb", "definitions": [
			{"definition": "To pick apples."}
		]}
	]
}]`

func TestClient_Lookup(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedError bool
		expectedLen   int
	}{
		{
			name:        "entries found",
			status:      http.StatusOK,
			body:        appleResponse,
			expectedLen: 1,
		},
		{
			name:          "not found status",
			status:        http.StatusNotFound,
			body:          `{"title":"No Definitions Found"}`,
			expectedError: true,
		},
		{
			name:          "empty array",
			status:        http.StatusOK,
			body:          `[]`,
			expectedError: true,
		},
		{
			name:          "empty body",
			status:        http.StatusOK,
			body:          ``,
			expectedError: true,
		},
		{
			name:          "malformed body",
			status:        http.StatusOK,
			body:          `{"word":`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL+"/api/v2/entries/en/", srv.Client())

			entries, err := client.Lookup(context.Background(), "apple")

			assert.Equal(t, "/api/v2/entries/en/apple", gotPath)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, entries)
			} else {
				require.NoError(t, err)
				assert.Len(t, entries, tt.expectedLen)
			}
		})
	}
}

func TestClient_Lookup_EmptyArrayIsNoEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).Lookup(context.Background(), "zzz")

	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestClient_Lookup_EscapesTerm(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(appleResponse))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).Lookup(context.Background(), "ice cream")

	assert.NoError(t, err)
	assert.Equal(t, "/ice%20cream", gotPath)
}

func TestFirstDefinition(t *testing.T) {
	tests := []struct {
		name     string
		entries  []Entry
		expected *Definition
	}{
		{
			name:     "no entries",
			entries:  nil,
			expected: nil,
		},
		{
			name:     "no meanings",
			entries:  []Entry{{Word: "x"}},
			expected: nil,
		},
		{
			name:     "no definitions",
			entries:  []Entry{{Word: "x", Meanings: []Meaning{{PartOfSpeech: "noun"}}}},
			expected: nil,
		},
		{
			name: "first of many",
			entries: []Entry{
				{Meanings: []Meaning{{Definitions: []Definition{{Definition: "first", Example: "ex"}, {Definition: "second"}}}}},
				{Meanings: []Meaning{{Definitions: []Definition{{Definition: "other entry"}}}}},
			},
			expected: &Definition{Definition: "first", Example: "ex"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstDefinition(tt.entries))
		})
	}
}

func TestFullMeaning(t *testing.T) {
	entries := []Entry{{Meanings: []Meaning{
		{Definitions: []Definition{{Definition: "A common, round fruit."}, {Definition: "The tree of this fruit."}}},
		{Definitions: []Definition{{Definition: "To pick apples."}}},
	}}}

	assert.Equal(t, "1. A common, round fruit.. 2. The tree of this fruit..  1. To pick apples.. ", FullMeaning(entries))
	assert.Equal(t, "1. bare. ", FullMeaning([]Entry{{Meanings: []Meaning{{Definitions: []Definition{{Definition: "bare"}}}}}}))
	assert.Equal(t, "", FullMeaning(nil))
	assert.Equal(t, "", FullMeaning([]Entry{{Word: "x"}}))
}
