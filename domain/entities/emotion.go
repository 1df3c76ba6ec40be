package entities

// Emotion is one word of the closed vocabulary the model is asked to answer with
type Emotion string

const (
	EmotionHappy      Emotion = "happy"
	EmotionSad        Emotion = "sad"
	EmotionAngry      Emotion = "angry"
	EmotionAnxious    Emotion = "anxious"
	EmotionWorried    Emotion = "worried"
	EmotionConfused   Emotion = "confused"
	EmotionNeutral    Emotion = "neutral"
	EmotionCalm       Emotion = "calm"
	EmotionStressed   Emotion = "stressed"
	EmotionSurprised  Emotion = "surprised"
	EmotionFearful    Emotion = "fearful"
	EmotionDisgusted  Emotion = "disgusted"
	EmotionContent    Emotion = "content"
	EmotionFrustrated Emotion = "frustrated"
	EmotionConcerned  Emotion = "concerned"
	EmotionExcited    Emotion = "excited"
)

// EmotionVocabulary lists every recognized emotion. Order is significant: lookups
// return the first entry that matches.
var EmotionVocabulary = []Emotion{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionAnxious,
	EmotionWorried,
	EmotionConfused,
	EmotionNeutral,
	EmotionCalm,
	EmotionStressed,
	EmotionSurprised,
	EmotionFearful,
	EmotionDisgusted,
	EmotionContent,
	EmotionFrustrated,
	EmotionConcerned,
	EmotionExcited,
}

// IsEmotion reports whether word is exactly one of the vocabulary entries
func IsEmotion(word string) bool {
	for _, e := range EmotionVocabulary {
		if string(e) == word {
			return true
		}
	}
	return false
}
