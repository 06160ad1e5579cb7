// Package emotion clasifica un mensaje de texto libre (emoción, confianza,
// sentimiento, crisis) y genera una respuesta empática con un tip de
// afrontamiento. Es puro: no hace I/O ni guarda estado entre llamadas.
package emotion

// Analysis expone el detalle intermedio además de la respuesta final.
type Analysis struct {
	Result EmotionResult `json:"result"`
	Topic  TopicContext  `json:"topic"`
	Reply  Reply         `json:"reply"`
}

// Engine es el punto de entrada del pipeline. Es seguro para uso concurrente.
type Engine struct {
	lex       *Lexicon
	crisis    *CrisisDetector
	phrases   *PhraseMatcher
	emoji     *EmojiAnalyzer
	keywords  *KeywordMatcher
	topics    *TopicExtractor
	responder *Responder
}

// NewEngine arma el pipeline sobre lex; nil usa DefaultLexicon.
func NewEngine(lex *Lexicon) *Engine {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Engine{
		lex:       lex,
		crisis:    NewCrisisDetector(lex),
		phrases:   NewPhraseMatcher(lex),
		emoji:     NewEmojiAnalyzer(lex),
		keywords:  NewKeywordMatcher(lex),
		topics:    NewTopicExtractor(lex),
		responder: NewResponder(lex),
	}
}

func (e *Engine) Lexicon() *Lexicon {
	return e.lex
}

// Signals corre cada detector. Una crisis corta el resto.
func (e *Engine) Signals(text string) Signals {
	if e.crisis.Detect(text) {
		return Signals{Crisis: true}
	}
	var s Signals
	if emotion, tags, ok := e.phrases.Match(text); ok {
		s.Phrase, s.PhraseTags = emotion, tags
	}
	s.Emoji, _ = e.emoji.Analyze(text)
	s.Keyword, _ = e.keywords.Match(text)
	s.Negated = e.keywords.Negated(text)
	return s
}

// Detect devuelve la clasificación estructural; es totalmente determinística.
func (e *Engine) Detect(text string) EmotionResult {
	return Aggregate(e.lex, e.Signals(text))
}

func (e *Engine) Topic(text string) TopicContext {
	return e.topics.Extract(text)
}

// Analyze corre el pipeline completo. Solo la elección de frase/tip depende de p.
func (e *Engine) Analyze(text string, p Picker) Analysis {
	result := e.Detect(text)
	if result.IsCrisis {
		return Analysis{Result: result, Reply: e.responder.BuildCrisis(p)}
	}
	topic := e.topics.Extract(text)
	return Analysis{
		Result: result,
		Topic:  topic,
		Reply:  e.responder.Build(result, topic, p),
	}
}

// Respond devuelve solo el registro de salida.
func (e *Engine) Respond(text string, p Picker) Reply {
	return e.Analyze(text, p).Reply
}
