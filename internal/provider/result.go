// Package provider defines the adapter-neutral shapes returned by external
// dictionary providers. Services consume these types without depending on a
// concrete HTTP client.
package provider

// LexicalEntry is one raw upstream record for a word. The upstream API
// returns an array of entries, one per etymology.
type LexicalEntry struct {
	Word      string     `json:"word"`
	Phonetics []Phonetic `json:"phonetics"`
	Meanings  []Meaning  `json:"meanings"`
}

// Phonetic is a transcription with an optional audio recording URL.
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single definition with an optional example and synonyms.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
}
