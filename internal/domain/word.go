package domain

// Word is one dictionary entry returned by the lookup API.
// A single lookup may return several entries for the same spelling
// (different etymologies), hence the API responds with a list.
type Word struct {
	Word       string     `json:"word"`
	Phonetics  []Phonetic `json:"phonetics"`
	Meanings   []Meaning  `json:"meanings"`
	License    License    `json:"license"`
	SourceURLs []string   `json:"sourceUrls"`
}

// Phonetic holds pronunciation data for a word entry
type Phonetic struct {
	Text      string  `json:"text"`
	Audio     string  `json:"audio"`
	SourceURL string  `json:"sourceUrl"`
	License   License `json:"license"`
}

// Meaning groups definitions under one part of speech
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

// Definition is a single sense within a meaning
type Definition struct {
	Definition string   `json:"definition"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
	Example    string   `json:"example,omitempty"`
}

// License identifies the licensing of entry data
type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Synonyms returns the synonym lists of all meanings, flattened in order
func (w Word) Synonyms() []string {
	var out []string
	for _, m := range w.Meanings {
		out = append(out, m.Synonyms...)
	}
	return out
}

// PhoneticText returns the first non-empty phonetic transcription
func (w Word) PhoneticText() string {
	for _, p := range w.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// LookupError is the normalized error shape for the search path.
// It carries the payload the lookup API returns on failure and is also
// used for locally synthesized conditions such as an empty synonym list.
type LookupError struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}

func (e *LookupError) Error() string {
	if e.Message == "" {
		return e.Title
	}
	return e.Title + ": " + e.Message
}
