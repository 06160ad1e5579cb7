package emotion

import "strings"

// KeywordMatcher es el fallback por palabras sueltas con manejo de negación.
type KeywordMatcher struct {
	lex *Lexicon
}

func NewKeywordMatcher(lex *Lexicon) *KeywordMatcher {
	return &KeywordMatcher{lex: lex}
}

// Negated indica si una palabra positiva aparece negada ("not good",
// "not feeling well"). Se evalúa aunque no haya keywords.
func (m *KeywordMatcher) Negated(text string) bool {
	if m.lex.negation == nil {
		return false
	}
	return m.lex.negation.MatchString(strings.ToLower(text))
}

// Match cuenta keywords distintos por emoción. Con negación, descarta "happy"
// y suma NegationBonus a "sad".
func (m *KeywordMatcher) Match(text string) (string, bool) {
	lower := strings.ToLower(text)
	var counts scoreboard
	for _, k := range m.lex.keywords {
		for _, re := range k.words {
			if re.MatchString(lower) {
				counts.add(k.emotion, 1)
			}
		}
	}
	if counts.empty() {
		return "", false
	}
	if m.Negated(lower) {
		counts.remove(LabelHappy)
		counts.add(LabelSad, m.lex.tunables.NegationBonus)
	}
	return counts.best()
}
