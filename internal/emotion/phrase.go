package emotion

import "sort"

// PhraseMatcher evalúa los grupos de frases multi-palabra.
type PhraseMatcher struct {
	lex *Lexicon
}

func NewPhraseMatcher(lex *Lexicon) *PhraseMatcher {
	return &PhraseMatcher{lex: lex}
}

// Match devuelve la emoción con más patrones matcheados y los grupos disparados
// (ordenados, sin duplicados). En empate gana la emoción que sumó primero
// según el orden de los grupos. ok=false si ningún patrón matchea.
func (m *PhraseMatcher) Match(text string) (emotion string, tags []string, ok bool) {
	var counts scoreboard
	triggered := map[string]struct{}{}
	for _, g := range m.lex.groups {
		for _, re := range g.patterns {
			if re.MatchString(text) {
				counts.add(g.emotion, 1)
				triggered[g.name] = struct{}{}
			}
		}
	}
	emotion, ok = counts.best()
	if !ok {
		return "", nil, false
	}
	tags = make([]string, 0, len(triggered))
	for name := range triggered {
		tags = append(tags, name)
	}
	sort.Strings(tags)
	return emotion, tags, true
}

// scoreboard acumula puntajes preservando el orden de primera inserción.
type scoreboard struct {
	labels []string
	scores []int
}

func (s *scoreboard) index(label string) int {
	for i, l := range s.labels {
		if l == label {
			return i
		}
	}
	return -1
}

func (s *scoreboard) add(label string, n int) {
	if i := s.index(label); i >= 0 {
		s.scores[i] += n
		return
	}
	s.labels = append(s.labels, label)
	s.scores = append(s.scores, n)
}

func (s *scoreboard) remove(label string) {
	i := s.index(label)
	if i < 0 {
		return
	}
	s.labels = append(s.labels[:i], s.labels[i+1:]...)
	s.scores = append(s.scores[:i], s.scores[i+1:]...)
}

func (s *scoreboard) has(label string) bool {
	return s.index(label) >= 0
}

func (s *scoreboard) empty() bool {
	return len(s.labels) == 0
}

// best devuelve el primer label con el puntaje máximo estrictamente positivo.
func (s *scoreboard) best() (string, bool) {
	bestIdx := -1
	for i, score := range s.scores {
		if score <= 0 {
			continue
		}
		if bestIdx < 0 || score > s.scores[bestIdx] {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return "", false
	}
	return s.labels[bestIdx], true
}
