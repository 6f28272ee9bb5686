package domain

// WordDefinition is the canonical, merged view of all upstream lexical
// entries for one word. It is derived on demand and never persisted.
//
// PartsOfSpeech preserves first-seen order across the merged entries, and
// every key present in Definitions, Examples or Synonyms also appears in
// PartsOfSpeech. Phonetics contains no duplicate transcriptions.
type WordDefinition struct {
	Word          string              `json:"word"`
	Phonetics     []string            `json:"phonetics"`
	PartsOfSpeech []string            `json:"partOfSpeech"`
	Definitions   map[string][]string `json:"definitions"`
	Examples      map[string][]string `json:"examples"`
	Synonyms      map[string][]string `json:"synonyms"`
}
