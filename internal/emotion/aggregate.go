package emotion

// EmotionResult es la clasificación transitoria de un único mensaje.
type EmotionResult struct {
	Emotion        string   `json:"emotion"`
	Confidence     float64  `json:"confidence"`
	SentimentScore float64  `json:"sentiment_score"`
	IsCrisis       bool     `json:"is_crisis"`
	ContextTags    []string `json:"context_tags,omitempty"`
}

// Signals junta la salida cruda de cada detector.
// Un string vacío significa ausencia de señal.
type Signals struct {
	Crisis     bool
	Phrase     string
	PhraseTags []string
	Emoji      string
	Keyword    string
	Negated    bool
}

// Aggregate aplica la precedencia fija: crisis, frase, emoji+keyword,
// emoji, keyword, negación sola, neutral.
func Aggregate(lex *Lexicon, s Signals) EmotionResult {
	t := lex.tunables
	if s.Crisis {
		return EmotionResult{
			Emotion:        LabelCrisis,
			Confidence:     t.CrisisConfidence,
			SentimentScore: t.CrisisSentiment,
			IsCrisis:       true,
			ContextTags:    append([]string(nil), lex.crisisTags...),
		}
	}

	var (
		emotion    string
		confidence float64
		tags       []string
	)
	switch {
	case s.Phrase != "":
		emotion, confidence = s.Phrase, t.PhraseConfidence
		tags = append([]string(nil), s.PhraseTags...)
	case s.Emoji != "" && s.Keyword != "":
		// Un emoji positivo bajo negación no es confiable.
		emotion = s.Keyword
		if s.Negated && s.Emoji != LabelHappy {
			emotion = s.Emoji
		}
		confidence = t.CombinedConfidence
	case s.Emoji != "":
		emotion, confidence = s.Emoji, t.SingleSignalConfidence
	case s.Keyword != "":
		emotion, confidence = s.Keyword, t.SingleSignalConfidence
	case s.Negated:
		emotion, confidence = LabelSad, t.NegationOnlyConfidence
	default:
		emotion, confidence = LabelNeutral, t.NeutralConfidence
	}

	return EmotionResult{
		Emotion:        emotion,
		Confidence:     confidence,
		SentimentScore: lex.Sentiment(emotion),
		ContextTags:    tags,
	}
}
