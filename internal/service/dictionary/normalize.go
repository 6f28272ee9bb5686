package dictionary

import (
	"github.com/mydictionary/backend/internal/domain"
	"github.com/mydictionary/backend/internal/provider"
)

// Normalize merges one or more raw lexical entries for a single word into a
// canonical domain.WordDefinition.
//
// Rules:
//   - A phonetic transcription is kept only if both its text and audio are
//     non-empty, and only the first occurrence of each text survives.
//     Transcriptions without audio are unusable for the client player and
//     are dropped outright.
//   - A part of speech is recorded in first-seen order across all entries,
//     but only when the meaning actually carries definitions.
//   - Definitions, examples and synonyms are grouped per part of speech.
//     When several entries share a part of speech the values are
//     concatenated in entry order; duplicates are preserved.
//
// Entries must be non-empty: callers resolve the upstream "not found" shape
// before normalizing.
func Normalize(entries []provider.LexicalEntry) domain.WordDefinition {
	def := domain.WordDefinition{
		Phonetics:     []string{},
		PartsOfSpeech: []string{},
		Definitions:   map[string][]string{},
		Examples:      map[string][]string{},
		Synonyms:      map[string][]string{},
	}

	if len(entries) == 0 {
		return def
	}
	def.Word = entries[0].Word

	seenPhonetics := make(map[string]bool)
	seenPOS := make(map[string]bool)

	for _, entry := range entries {
		for _, ph := range entry.Phonetics {
			if ph.Text == "" || ph.Audio == "" || seenPhonetics[ph.Text] {
				continue
			}
			seenPhonetics[ph.Text] = true
			def.Phonetics = append(def.Phonetics, ph.Text)
		}

		for _, meaning := range entry.Meanings {
			pos := meaning.PartOfSpeech
			if pos == "" || len(meaning.Definitions) == 0 {
				continue
			}

			if !seenPOS[pos] {
				seenPOS[pos] = true
				def.PartsOfSpeech = append(def.PartsOfSpeech, pos)
			}

			for _, d := range meaning.Definitions {
				def.Definitions[pos] = append(def.Definitions[pos], d.Definition)
				if d.Example != "" {
					def.Examples[pos] = append(def.Examples[pos], d.Example)
				}
				if len(d.Synonyms) > 0 {
					def.Synonyms[pos] = append(def.Synonyms[pos], d.Synonyms...)
				}
			}
		}
	}

	return def
}
