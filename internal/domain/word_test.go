package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_Synonyms(t *testing.T) {
	tests := []struct {
		name     string
		word     Word
		expected []string
	}{
		{
			name: "flattens all meanings in order",
			word: Word{
				Meanings: []Meaning{
					{PartOfSpeech: "adjective", Synonyms: []string{"glad", "cheerful"}},
					{PartOfSpeech: "noun", Synonyms: []string{"joy"}},
				},
			},
			expected: []string{"glad", "cheerful", "joy"},
		},
		{
			name: "no synonyms",
			word: Word{
				Meanings: []Meaning{
					{PartOfSpeech: "adjective", Synonyms: []string{}},
				},
			},
			expected: nil,
		},
		{
			name:     "no meanings",
			word:     Word{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.word.Synonyms())
		})
	}
}

func TestWord_PhoneticText(t *testing.T) {
	word := Word{
		Phonetics: []Phonetic{
			{Text: "", Audio: "https://example.org/run-au.mp3"},
			{Text: "/ɹʌn/"},
		},
	}
	assert.Equal(t, "/ɹʌn/", word.PhoneticText())

	assert.Equal(t, "", Word{}.PhoneticText())
}

func TestUser_PersistedShape(t *testing.T) {
	// The stored JSON must keep the field names of the original data format
	user := User{
		ID:       "abc-123",
		Email:    "a@b.com",
		Password: "secret",
		Bookmarks: []Bookmark{
			{Word: "run", PartOfSpeech: "verb", Definition: "to move fast"},
		},
	}

	data, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"id":"abc-123"`)
	assert.Contains(t, string(data), `"partOfSpeech":"verb"`)
	assert.Contains(t, string(data), `"dateCreated"`)
}
