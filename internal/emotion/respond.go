package emotion

import "math"

// Reply es el registro de salida del pipeline.
type Reply struct {
	Emotion        string  `json:"emotion"`
	Confidence     float64 `json:"confidence"`
	SentimentScore float64 `json:"sentiment_score"`
	Response       string  `json:"response"`
	CopingTip      string  `json:"coping_tip"`
	IsCrisis       bool    `json:"is_crisis"`
}

// Responder elige la frase y el tip a partir de la emoción final y el tema.
type Responder struct {
	lex *Lexicon
}

func NewResponder(lex *Lexicon) *Responder {
	return &Responder{lex: lex}
}

// Build arma la respuesta; las crisis se desvían a BuildCrisis.
func (r *Responder) Build(result EmotionResult, topic TopicContext, p Picker) Reply {
	if result.IsCrisis {
		return r.BuildCrisis(p)
	}
	response := pick(p, r.lex.responsePool(result.Emotion, topic.Key()))
	tip := pick(p, r.lex.tipPool(result.Emotion))
	return Reply{
		Emotion:        r.lex.DisplayLabel(result.Emotion),
		Confidence:     round2(result.Confidence),
		SentimentScore: round2(result.SentimentScore),
		Response:       response,
		CopingTip:      tip,
	}
}

// BuildCrisis ignora el tema y siempre devuelve el tip canónico de línea de ayuda.
func (r *Responder) BuildCrisis(p Picker) Reply {
	t := r.lex.tunables
	return Reply{
		Emotion:        r.lex.DisplayLabel(LabelCrisis),
		Confidence:     round2(t.CrisisConfidence),
		SentimentScore: round2(t.CrisisSentiment),
		Response:       pick(p, r.lex.crisisResponses),
		CopingTip:      r.lex.crisisTip,
		IsCrisis:       true,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
