package emotion

import "strings"

// TopicContext es el tema conversacional detectado; campos vacíos = ausente.
type TopicContext struct {
	Topic  string `json:"topic,omitempty"`
	Person string `json:"person,omitempty"`
}

// Key devuelve el tema o "default" si no hubo match.
func (c TopicContext) Key() string {
	if c.Topic == "" {
		return TopicDefault
	}
	return c.Topic
}

type TopicExtractor struct {
	lex *Lexicon
}

func NewTopicExtractor(lex *Lexicon) *TopicExtractor {
	return &TopicExtractor{lex: lex}
}

// Extract evalúa los detectores en orden; el primero que matchea gana.
func (e *TopicExtractor) Extract(text string) TopicContext {
	lower := strings.ToLower(text)
	for _, t := range e.lex.topics {
		if !t.pattern.MatchString(lower) {
			continue
		}
		ctx := TopicContext{Topic: t.topic}
		for _, p := range t.persons {
			if p.pattern.MatchString(lower) {
				ctx.Person = p.person
				break
			}
		}
		return ctx
	}
	return TopicContext{}
}

// ExtractTopic usa las tablas integradas.
func ExtractTopic(text string) TopicContext {
	return NewTopicExtractor(DefaultLexicon()).Extract(text)
}
