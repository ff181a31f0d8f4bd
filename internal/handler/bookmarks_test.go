package handler

import (
	"testing"

	"lexibook/internal/domain"
	"lexibook/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestFindDefinition(t *testing.T) {
	words := []domain.Word{
		testutil.NewTestWord("run", "verb"),
		{
			Word: "run",
			Meanings: []domain.Meaning{
				{PartOfSpeech: "noun", Definitions: []domain.Definition{{Definition: "an act of running"}}},
			},
		},
	}

	tests := []struct {
		name          string
		word          string
		partOfSpeech  string
		expectedDef   string
		expectedFound bool
	}{
		{
			name:          "first matching meaning wins",
			word:          "run",
			partOfSpeech:  "verb",
			expectedDef:   "a definition of run",
			expectedFound: true,
		},
		{
			name:          "later entry matches",
			word:          "run",
			partOfSpeech:  "noun",
			expectedDef:   "an act of running",
			expectedFound: true,
		},
		{
			name:         "unknown part of speech",
			word:         "run",
			partOfSpeech: "adverb",
		},
		{
			name:         "unknown word",
			word:         "walk",
			partOfSpeech: "verb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, found := findDefinition(words, tt.word, tt.partOfSpeech)
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedDef, def)
		})
	}
}

func TestFindDefinition_EmptyResults(t *testing.T) {
	def, found := findDefinition(nil, "run", "verb")
	assert.False(t, found)
	assert.Empty(t, def)
}
