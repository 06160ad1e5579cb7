package emotion

// fixtureSpec es un lexicón mínimo que pasa Validate.
func fixtureSpec() LexiconSpec {
	return LexiconSpec{
		CrisisPatterns: []string{`\bwant\s*to\s*die\b`},
		CrisisTags:     []string{"crisis", "safety"},
		Sentiment:      map[string]float64{"neutral": 0, "sad": -0.7},
		Responses: map[string]map[string][]string{
			"neutral": {"default": {"neutral reply"}},
		},
		Tips:            map[string][]string{"neutral": {"neutral tip"}},
		CrisisResponses: []string{"crisis reply"},
		CrisisTip:       "call 988",
	}
}

func mustCompile(spec LexiconSpec) *Lexicon {
	lex, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return lex
}
