package emotion

import (
	"fmt"
	"io"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// LoadLexiconFile lee un lexicón YAML. Las secciones ausentes en el archivo
// se completan con las tablas integradas.
func LoadLexiconFile(path string) (*Lexicon, error) {
	spec, err := ReadLexiconSpec(path)
	if err != nil {
		return nil, err
	}
	return Compile(spec)
}

// ReadLexiconSpec parsea el archivo sin compilarlo.
func ReadLexiconSpec(path string) (LexiconSpec, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return LexiconSpec{}, fmt.Errorf("load lexicon %s: %w", path, err)
	}

	var spec LexiconSpec
	if err := k.UnmarshalWithConf("", &spec, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return LexiconSpec{}, fmt.Errorf("decode lexicon %s: %w", path, err)
	}
	return spec.WithDefaults(DefaultSpec()), nil
}

// WithDefaults completa cada sección vacía con la de base.
func (s LexiconSpec) WithDefaults(base LexiconSpec) LexiconSpec {
	if len(s.CrisisPatterns) == 0 {
		s.CrisisPatterns = base.CrisisPatterns
	}
	if len(s.CrisisTags) == 0 {
		s.CrisisTags = base.CrisisTags
	}
	if len(s.PhraseGroups) == 0 {
		s.PhraseGroups = base.PhraseGroups
	}
	if len(s.Emoji) == 0 {
		s.Emoji = base.Emoji
	}
	if len(s.Keywords) == 0 {
		s.Keywords = base.Keywords
	}
	if len(s.Negations) == 0 {
		s.Negations = base.Negations
	}
	if len(s.PositiveWords) == 0 {
		s.PositiveWords = base.PositiveWords
	}
	if len(s.Sentiment) == 0 {
		s.Sentiment = base.Sentiment
	}
	if len(s.Topics) == 0 {
		s.Topics = base.Topics
	}
	if len(s.Responses) == 0 {
		s.Responses = base.Responses
	}
	if len(s.Tips) == 0 {
		s.Tips = base.Tips
	}
	if len(s.CrisisResponses) == 0 {
		s.CrisisResponses = base.CrisisResponses
	}
	if s.CrisisTip == "" {
		s.CrisisTip = base.CrisisTip
	}
	if len(s.DisplayLabels) == 0 {
		s.DisplayLabels = base.DisplayLabels
	}
	s.Tunables = s.Tunables.withDefaults()
	return s
}

// DumpLexicon escribe spec como YAML, listo para usarse como archivo de override.
func DumpLexicon(w io.Writer, spec LexiconSpec) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("encode lexicon: %w", err)
	}
	return enc.Close()
}
