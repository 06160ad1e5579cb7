package emotion

import "strings"

// EmojiAnalyzer cuenta ocurrencias de glifos por emoción.
type EmojiAnalyzer struct {
	lex *Lexicon
}

func NewEmojiAnalyzer(lex *Lexicon) *EmojiAnalyzer {
	return &EmojiAnalyzer{lex: lex}
}

// Analyze suma ocurrencias (no presencia): "😢😢" cuenta 2.
func (a *EmojiAnalyzer) Analyze(text string) (string, bool) {
	var counts scoreboard
	for _, e := range a.lex.emoji {
		total := 0
		for _, glyph := range e.glyphs {
			if glyph == "" {
				continue
			}
			total += strings.Count(text, glyph)
		}
		if total > 0 {
			counts.add(e.emotion, total)
		}
	}
	return counts.best()
}
