package emotion

// CrisisDetector busca indicadores de autolesión o ideación suicida.
type CrisisDetector struct {
	lex *Lexicon
}

func NewCrisisDetector(lex *Lexicon) *CrisisDetector {
	return &CrisisDetector{lex: lex}
}

// Detect corta en el primer patrón que matchea.
func (d *CrisisDetector) Detect(text string) bool {
	for _, re := range d.lex.crisis {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
