package usecase

import (
	"strings"

	"github.com/satriahrh/moodpulse/domain/entities"
)

// ExtractExpression picks one emotion label out of free model text.
//
// It tries, in order: the first token (split on period, comma or whitespace)
// being exactly a vocabulary word; the first vocabulary word contained in the
// first sentence; the first vocabulary word contained anywhere in the text.
// Otherwise it returns neutral. Matching is case-insensitive and substring
// based, so a word like "contented" matches "content".
func ExtractExpression(text string) entities.Emotion {
	lower := strings.ToLower(strings.TrimSpace(text))

	first := strings.FieldsFunc(lower, func(r rune) bool {
		return r == '.' || r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(first) > 0 && entities.IsEmotion(first[0]) {
		return entities.Emotion(first[0])
	}

	sentence, _, _ := strings.Cut(lower, ".")
	if e, ok := findEmotion(sentence); ok {
		return e
	}

	if e, ok := findEmotion(lower); ok {
		return e
	}

	return entities.EmotionNeutral
}

func findEmotion(text string) (entities.Emotion, bool) {
	for _, e := range entities.EmotionVocabulary {
		if strings.Contains(text, string(e)) {
			return e, true
		}
	}
	return "", false
}
