package emotion

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Etiquetas con semántica propia dentro del pipeline.
const (
	LabelCrisis  = "crisis"
	LabelNeutral = "neutral"
	LabelSad     = "sad"
	LabelHappy   = "happy"

	TopicDefault = "default"
)

var ErrInvalidLexicon = errors.New("invalid lexicon")

// LexiconSpec es la forma cruda (serializable) de las tablas de referencia.
// El orden de los slices es parte del contrato: define los desempates.
type LexiconSpec struct {
	CrisisPatterns  []string                       `yaml:"crisis_patterns"`
	CrisisTags      []string                       `yaml:"crisis_tags"`
	PhraseGroups    []PhraseGroupSpec              `yaml:"phrase_groups"`
	Emoji           []EmojiSpec                    `yaml:"emoji"`
	Keywords        []KeywordSpec                  `yaml:"keywords"`
	Negations       []string                       `yaml:"negations"`
	PositiveWords   []string                       `yaml:"positive_words"`
	Sentiment       map[string]float64             `yaml:"sentiment"`
	Topics          []TopicSpec                    `yaml:"topics"`
	Responses       map[string]map[string][]string `yaml:"responses"`
	Tips            map[string][]string            `yaml:"tips"`
	CrisisResponses []string                       `yaml:"crisis_responses"`
	CrisisTip       string                         `yaml:"crisis_tip"`
	DisplayLabels   map[string]string              `yaml:"display_labels"`
	Tunables        Tunables                       `yaml:"tunables"`
}

type PhraseGroupSpec struct {
	Name     string   `yaml:"name"`
	Emotion  string   `yaml:"emotion"`
	Patterns []string `yaml:"patterns"`
}

type EmojiSpec struct {
	Emotion string   `yaml:"emotion"`
	Glyphs  []string `yaml:"glyphs"`
}

type KeywordSpec struct {
	Emotion string   `yaml:"emotion"`
	Words   []string `yaml:"words"`
}

// TopicSpec describe un detector de tema; Persons resuelve el rol (solo primer match).
type TopicSpec struct {
	Topic   string       `yaml:"topic"`
	Pattern string       `yaml:"pattern"`
	Persons []PersonSpec `yaml:"persons,omitempty"`
}

type PersonSpec struct {
	Person  string `yaml:"person"`
	Pattern string `yaml:"pattern"`
}

// Tunables agrupa las constantes heurísticas del agregador.
// Un valor cero se reemplaza por el default al compilar.
type Tunables struct {
	NegationBonus          int     `yaml:"negation_bonus"`
	NegationWindow         int     `yaml:"negation_window"`
	CrisisConfidence       float64 `yaml:"crisis_confidence"`
	PhraseConfidence       float64 `yaml:"phrase_confidence"`
	CombinedConfidence     float64 `yaml:"combined_confidence"`
	SingleSignalConfidence float64 `yaml:"single_signal_confidence"`
	NegationOnlyConfidence float64 `yaml:"negation_only_confidence"`
	NeutralConfidence      float64 `yaml:"neutral_confidence"`
	CrisisSentiment        float64 `yaml:"crisis_sentiment"`
	UnknownSentiment       float64 `yaml:"unknown_sentiment"`
}

// DefaultTunables devuelve las constantes históricas del clasificador.
func DefaultTunables() Tunables {
	return Tunables{
		NegationBonus:          2,
		NegationWindow:         1,
		CrisisConfidence:       1.0,
		PhraseConfidence:       0.9,
		CombinedConfidence:     0.8,
		SingleSignalConfidence: 0.7,
		NegationOnlyConfidence: 0.6,
		NeutralConfidence:      0.3,
		CrisisSentiment:        -1.0,
		UnknownSentiment:       -0.3,
	}
}

func (t Tunables) withDefaults() Tunables {
	d := DefaultTunables()
	if t.NegationBonus == 0 {
		t.NegationBonus = d.NegationBonus
	}
	if t.NegationWindow == 0 {
		t.NegationWindow = d.NegationWindow
	}
	if t.CrisisConfidence == 0 {
		t.CrisisConfidence = d.CrisisConfidence
	}
	if t.PhraseConfidence == 0 {
		t.PhraseConfidence = d.PhraseConfidence
	}
	if t.CombinedConfidence == 0 {
		t.CombinedConfidence = d.CombinedConfidence
	}
	if t.SingleSignalConfidence == 0 {
		t.SingleSignalConfidence = d.SingleSignalConfidence
	}
	if t.NegationOnlyConfidence == 0 {
		t.NegationOnlyConfidence = d.NegationOnlyConfidence
	}
	if t.NeutralConfidence == 0 {
		t.NeutralConfidence = d.NeutralConfidence
	}
	if t.CrisisSentiment == 0 {
		t.CrisisSentiment = d.CrisisSentiment
	}
	if t.UnknownSentiment == 0 {
		t.UnknownSentiment = d.UnknownSentiment
	}
	return t
}

type compiledGroup struct {
	name     string
	emotion  string
	patterns []*regexp.Regexp
}

type compiledEmoji struct {
	emotion string
	glyphs  []string
}

type compiledKeywords struct {
	emotion string
	words   []*regexp.Regexp
}

type compiledPerson struct {
	person  string
	pattern *regexp.Regexp
}

type compiledTopic struct {
	topic   string
	pattern *regexp.Regexp
	persons []compiledPerson
}

// Lexicon es la versión compilada e inmutable de LexiconSpec.
// Es seguro compartirlo entre goroutines sin locks.
type Lexicon struct {
	crisis          []*regexp.Regexp
	crisisTags      []string
	groups          []compiledGroup
	emoji           []compiledEmoji
	keywords        []compiledKeywords
	negation        *regexp.Regexp
	sentiment       map[string]float64
	topics          []compiledTopic
	responses       map[string]map[string][]string
	tips            map[string][]string
	crisisResponses []string
	crisisTip       string
	display         map[string]string
	tunables        Tunables
}

// Compile valida y compila las tablas. Cualquier regex inválida o tabla
// incompleta devuelve un error que envuelve ErrInvalidLexicon.
func Compile(spec LexiconSpec) (*Lexicon, error) {
	var errs []error
	compile := func(where, expr string) *regexp.Regexp {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
			return nil
		}
		return re
	}

	lex := &Lexicon{
		crisisTags:      append([]string(nil), spec.CrisisTags...),
		sentiment:       copyFloatMap(spec.Sentiment),
		responses:       copyCorpus(spec.Responses),
		tips:            copyTips(spec.Tips),
		crisisResponses: append([]string(nil), spec.CrisisResponses...),
		crisisTip:       spec.CrisisTip,
		display:         copyStringMap(spec.DisplayLabels),
		tunables:        spec.Tunables.withDefaults(),
	}

	for i, expr := range spec.CrisisPatterns {
		if re := compile(fmt.Sprintf("crisis pattern %d", i), expr); re != nil {
			lex.crisis = append(lex.crisis, re)
		}
	}

	for _, g := range spec.PhraseGroups {
		cg := compiledGroup{name: g.Name, emotion: g.Emotion}
		for i, expr := range g.Patterns {
			if re := compile(fmt.Sprintf("phrase group %q pattern %d", g.Name, i), expr); re != nil {
				cg.patterns = append(cg.patterns, re)
			}
		}
		lex.groups = append(lex.groups, cg)
	}

	for _, e := range spec.Emoji {
		lex.emoji = append(lex.emoji, compiledEmoji{emotion: e.Emotion, glyphs: append([]string(nil), e.Glyphs...)})
	}

	for _, k := range spec.Keywords {
		ck := compiledKeywords{emotion: k.Emotion}
		for _, w := range k.Words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			if re := compile(fmt.Sprintf("keyword %q", w), `\b`+regexp.QuoteMeta(w)+`\b`); re != nil {
				ck.words = append(ck.words, re)
			}
		}
		lex.keywords = append(lex.keywords, ck)
	}

	if len(spec.Negations) > 0 && len(spec.PositiveWords) > 0 {
		lex.negation = compile("negation", negationExpr(spec.Negations, spec.PositiveWords, lex.tunables.NegationWindow))
	}

	for _, t := range spec.Topics {
		ct := compiledTopic{topic: t.Topic, pattern: compile(fmt.Sprintf("topic %q", t.Topic), t.Pattern)}
		for _, p := range t.Persons {
			if re := compile(fmt.Sprintf("topic %q person %q", t.Topic, p.Person), p.Pattern); re != nil {
				ct.persons = append(ct.persons, compiledPerson{person: p.Person, pattern: re})
			}
		}
		if ct.pattern != nil {
			lex.topics = append(lex.topics, ct)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLexicon, errors.Join(errs...))
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return lex, nil
}

// negationExpr arma una única alternancia: negación, hasta window palabras
// intermedias y luego una palabra positiva.
func negationExpr(negations, positives []string, window int) string {
	quote := func(words []string) string {
		out := make([]string, 0, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				out = append(out, regexp.QuoteMeta(w))
			}
		}
		return strings.Join(out, "|")
	}
	gap := ""
	if window > 0 {
		gap = fmt.Sprintf(`(?:\w+\s+){0,%d}`, window)
	}
	return `\b(?:` + quote(negations) + `)\b\s+` + gap + `(?:` + quote(positives) + `)\b`
}

// Validate es el chequeo de integridad de configuración: toda etiqueta que el
// agregador puede producir debe resolver un pool de respuestas y de tips.
func (l *Lexicon) Validate() error {
	var errs []error

	if len(l.responses[LabelNeutral][TopicDefault]) == 0 {
		errs = append(errs, errors.New("missing neutral/default response pool"))
	}
	if len(l.tips[LabelNeutral]) == 0 {
		errs = append(errs, errors.New("missing neutral tip pool"))
	}
	if len(l.crisisResponses) == 0 {
		errs = append(errs, errors.New("missing crisis responses"))
	}
	if strings.TrimSpace(l.crisisTip) == "" {
		errs = append(errs, errors.New("missing crisis tip"))
	}
	if len(l.crisis) == 0 {
		errs = append(errs, errors.New("no crisis patterns"))
	}

	seen := map[string]struct{}{}
	for _, g := range l.groups {
		if g.name == "" || g.emotion == "" {
			errs = append(errs, fmt.Errorf("phrase group %q has empty name or emotion", g.name))
		}
		if _, dup := seen[g.name]; dup {
			errs = append(errs, fmt.Errorf("duplicate phrase group %q", g.name))
		}
		seen[g.name] = struct{}{}
	}
	if dup := firstDuplicate(emojiLabels(l.emoji)); dup != "" {
		errs = append(errs, fmt.Errorf("duplicate emoji emotion %q", dup))
	}
	if dup := firstDuplicate(keywordLabels(l.keywords)); dup != "" {
		errs = append(errs, fmt.Errorf("duplicate keyword emotion %q", dup))
	}
	topics := make([]string, 0, len(l.topics))
	for _, t := range l.topics {
		topics = append(topics, t.topic)
	}
	if dup := firstDuplicate(topics); dup != "" {
		errs = append(errs, fmt.Errorf("duplicate topic %q", dup))
	}

	for _, label := range l.ProducibleLabels() {
		for _, topic := range append([]string{TopicDefault}, topics...) {
			if len(l.responsePool(label, topic)) == 0 {
				errs = append(errs, fmt.Errorf("no response pool for %q/%q", label, topic))
			}
		}
		if len(l.tipPool(label)) == 0 {
			errs = append(errs, fmt.Errorf("no tip pool for %q", label))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidLexicon, errors.Join(errs...))
	}
	return nil
}

// ProducibleLabels lista, ordenadas, las etiquetas no-crisis que el agregador puede emitir.
func (l *Lexicon) ProducibleLabels() []string {
	set := map[string]struct{}{LabelSad: {}, LabelNeutral: {}}
	for _, g := range l.groups {
		set[g.emotion] = struct{}{}
	}
	for _, e := range l.emoji {
		set[e.emotion] = struct{}{}
	}
	for _, k := range l.keywords {
		set[k.emotion] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for label := range set {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Sentiment devuelve el puntaje estático para la etiqueta.
func (l *Lexicon) Sentiment(label string) float64 {
	if label == LabelCrisis {
		return l.tunables.CrisisSentiment
	}
	if v, ok := l.sentiment[label]; ok {
		return v
	}
	return l.tunables.UnknownSentiment
}

// DisplayLabel traduce la etiqueta interna al vocabulario externo (identidad por defecto).
func (l *Lexicon) DisplayLabel(label string) string {
	if v, ok := l.display[label]; ok && v != "" {
		return v
	}
	return label
}

func (l *Lexicon) Tunables() Tunables {
	return l.tunables
}

// responsePool aplica la cadena de fallback: tema, default de la emoción,
// luego el pool neutral.
func (l *Lexicon) responsePool(label, topic string) []string {
	pool, ok := l.responses[label]
	if !ok {
		pool = l.responses[LabelNeutral]
	}
	if topic == "" {
		topic = TopicDefault
	}
	if out := pool[topic]; len(out) > 0 {
		return out
	}
	if out := pool[TopicDefault]; len(out) > 0 {
		return out
	}
	return l.responses[LabelNeutral][TopicDefault]
}

func (l *Lexicon) tipPool(label string) []string {
	if out := l.tips[label]; len(out) > 0 {
		return out
	}
	return l.tips[LabelNeutral]
}

func emojiLabels(in []compiledEmoji) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		out = append(out, e.emotion)
	}
	return out
}

func keywordLabels(in []compiledKeywords) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		out = append(out, k.emotion)
	}
	return out
}

func firstDuplicate(labels []string) string {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			return l
		}
		seen[l] = struct{}{}
	}
	return ""
}

func copyFloatMap(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyTips(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func copyCorpus(in map[string]map[string][]string) map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(in))
	for emotion, byTopic := range in {
		out[emotion] = copyTips(byTopic)
	}
	return out
}
