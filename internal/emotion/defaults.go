package emotion

import "sync"

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	lex, err := Compile(DefaultSpec())
	if err != nil {
		panic(err)
	}
	return lex
})

// DefaultLexicon devuelve las tablas integradas, compiladas una sola vez.
func DefaultLexicon() *Lexicon {
	return defaultLexicon()
}

// DefaultSpec devuelve una copia nueva de las tablas integradas; el caller puede modificarla.
func DefaultSpec() LexiconSpec {
	return LexiconSpec{
		CrisisPatterns:  defaultCrisisPatterns(),
		CrisisTags:      []string{"crisis", "safety"},
		PhraseGroups:    defaultPhraseGroups(),
		Emoji:           defaultEmoji(),
		Keywords:        defaultKeywords(),
		Negations:       defaultNegations(),
		PositiveWords:   []string{"good", "fine", "well", "okay", "ok", "great", "happy", "right", "better"},
		Sentiment:       defaultSentiment(),
		Topics:          defaultTopics(),
		Responses:       defaultResponses(),
		Tips:            defaultTips(),
		CrisisResponses: defaultCrisisResponses(),
		CrisisTip:       "Please reach out to a crisis helpline right now. You deserve support. Call/text 988 or text HOME to 741741.",
		DisplayLabels:   map[string]string{},
		Tunables:        DefaultTunables(),
	}
}

func defaultCrisisPatterns() []string {
	return []string{
		`\bsuicid`,
		`\bkill\s*(my|him|her|them)?self`,
		`\bwant\s*to\s*die\b`,
		`\bwanna\s*die\b`,
		`\bdon.?t\s*want\s*to\s*(live|be alive|exist)`,
		`\bend\s*(my|it\s*all|this)\s*(life)?`,
		`\bi\s*will\s*die\b`,
		`\bi.?m\s*going\s*to\s*die\b`,
		`\bno\s*reason\s*to\s*live`,
		`\bself\s*harm`,
		`\bcut(ting)?\s*(my)?self`,
		`\bhurt(ing)?\s*(my)?self`,
		`\bjump\s*off`,
		`\boverdose`,
		`\bpill`,
		`\bnoose`,
		`\bhang(ing)?\s*myself`,
		`\blife\s*is\s*(not\s*)?worth`,
		`\bgive\s*up\s*on\s*(life|everything|living)`,
		`\bno\s*point\s*(in\s*living|anymore)`,
		`\bbetter\s*off\s*(dead|without\s*me)`,
		`\bnobody\s*(would\s*)?(care|miss|notice)\s*if\s*i`,
		`\bworld\s*(is|would\s*be)\s*better\s*without\s*me`,
	}
}

// El orden de los grupos decide los empates del PhraseMatcher.
func defaultPhraseGroups() []PhraseGroupSpec {
	return []PhraseGroupSpec{
		{Name: "heartbreak", Emotion: "heartbreak", Patterns: []string{
			`\bbroke\s*up`,
			`\bbreak\s*up`,
			`\bbreakup`,
			`\bbroken\s*up`,
			`\bdumped\s*me`,
			`\bleft\s*me`,
			`\bcheated\s*on`,
			`\bdivorce`,
			`\bseparation`,
			`\bex\s*(boy|girl)friend`,
			`\bmiss(ing)?\s*(him|her|them|my\s*(ex|bf|gf|partner|husband|wife))`,
			`\bher\s*memories`,
			`\bhis\s*memories`,
			`\bmoved?\s*on`,
			`\brelationship\s*(ended|over|failed)`,
			`\bheart\s*broken`,
			`\blove\s*(lost|gone|ended|hurts)`,
		}},
		{Name: "grief", Emotion: "grief", Patterns: []string{
			`\b(passed|died|death|funeral|mourn|griev|gone\s*forever)`,
			`\blost\s*(my|a)\s*(mom|dad|mother|father|parent|friend|brother|sister|son|daughter|baby|pet|dog|cat)`,
			`\bmiss(ing)?\s*(my\s*)?(mom|dad|mother|father|friend|brother|sister)`,
		}},
		{Name: "loneliness", Emotion: "sad", Patterns: []string{
			`\bno\s*(one|body)\s*(cares|loves|understands|listens|is\s*there)`,
			`\ball\s*alone`,
			`\bso\s*lonely`,
			`\bfeel(ing)?\s*alone`,
			`\bhave\s*no\s*(friends|one)`,
			`\bnobody\s*(likes|loves|cares)`,
			`\bno\s*friends`,
			`\bisolat`,
		}},
		{Name: "depression", Emotion: "depressed", Patterns: []string{
			`\bnot\s*feeling\s*(good|well|okay|ok|fine|great|right)`,
			`\bfeel(ing)?\s*(terrible|awful|horrible|worthless|hopeless|useless|empty|numb|nothing)`,
			`\bcan.?t\s*(go\s*on|take\s*(it|this)|do\s*this\s*anymore|cope|handle)`,
			`\bwhat.?s\s*the\s*point`,
			`\bnothing\s*matters`,
			`\bi\s*hate\s*(my\s*)?life`,
			`\blife\s*(is\s*)?(hard|tough|meaningless|pointless|terrible)`,
			`\bwish\s*i\s*(wasn.?t|weren.?t|could\s*disappear)`,
			`\bi\s*don.?t\s*care\s*anymore`,
			`\bcrying\s*(all|every)`,
			`\bcan.?t\s*stop\s*crying`,
		}},
		{Name: "anxiety", Emotion: "anxious", Patterns: []string{
			`\bpanic\s*(attack|ing)`,
			`\bcan.?t\s*(breathe|sleep|relax|stop\s*(worrying|thinking))`,
			`\bheart\s*(racing|pounding)`,
			`\bracing\s*thoughts`,
			`\bwhat\s*if\s`,
			`\bscared\s*(of|to|about)`,
			`\bworr(y|ied|ying)\s*(about|that|so\s*much)`,
			`\bfeel(ing)?\s*(anxious|nervous|panick|restless|on\s*edge)`,
			`\bstress(ed|ing|ful)`,
		}},
		{Name: "anger", Emotion: "angry", Patterns: []string{
			`\bpiss(ed|es|ing)`,
			`\bso\s*(angry|mad|frustrated|furious)`,
			`\bsick\s*(of|and\s*tired)`,
			`\bfed\s*up`,
			`\bhate\s*(this|it|everyone|everything|him|her|them|my)`,
			`\bcan.?t\s*stand`,
			`\bwant\s*to\s*(scream|punch|hit|break)`,
		}},
		{Name: "positive", Emotion: "happy", Patterns: []string{
			`\bfeeling\s*(good|great|better|amazing|wonderful|happy|blessed|grateful|fantastic)`,
			`\bgood\s*day`,
			`\bgreat\s*day`,
			`\bhappy\s*(today|right\s*now|lately)`,
			`\bthank\s*(you|u)\s*(so\s*much|for)`,
			`\byou\s*(helped|make|made)\s*(me)?\s*(feel)?\s*(better|good)`,
			`\bi\s*feel\s*(so\s*)?(much\s*)?better`,
		}},
	}
}

func defaultEmoji() []EmojiSpec {
	return []EmojiSpec{
		{Emotion: "sad", Glyphs: []string{"😢", "😭", "😿", "😞", "😔", "😥", "🥺", "💔", "😩", "😪", "🥲"}},
		{Emotion: "angry", Glyphs: []string{"😠", "😡", "🤬", "💢", "👿", "😤"}},
		{Emotion: "anxious", Glyphs: []string{"😰", "😨", "😱", "😬", "🫣", "😳"}},
		{Emotion: "happy", Glyphs: []string{"😊", "😃", "😄", "🥰", "😁", "🎉", "❤️", "💖", "✨", "🥳", "😍", "🤗"}},
		{Emotion: "tired", Glyphs: []string{"😴", "😪", "🥱", "💤"}},
		{Emotion: "confused", Glyphs: []string{"😕", "😟", "🤔", "😵", "🫤"}},
		{Emotion: "grateful", Glyphs: []string{"🙏", "💛", "🤝", "💕"}},
	}
}

func defaultKeywords() []KeywordSpec {
	return []KeywordSpec{
		{Emotion: "sad", Words: []string{
			"sad", "unhappy", "depressed", "down", "miserable", "hopeless",
			"lonely", "heartbroken", "grief", "crying", "tears", "lost",
			"empty", "numb", "broken", "hurt", "pain", "suffering", "sorrow",
			"despair", "melancholy", "gloomy", "blue", "upset", "devastated",
			"terrible", "awful", "horrible", "worst", "ruined", "shattered",
			"worthless", "useless", "pathetic", "failure", "disappointed",
			"regret", "miss", "missing", "ache", "aching", "wounded",
		}},
		{Emotion: "anxious", Words: []string{
			"anxious", "worried", "nervous", "scared", "fear", "panic",
			"stressed", "overwhelmed", "terrified", "uneasy", "restless",
			"tense", "dread", "apprehensive", "insecure", "paranoid",
			"frightened", "shaking", "trembling", "uncertain", "overthinking",
		}},
		{Emotion: "angry", Words: []string{
			"angry", "mad", "furious", "irritated", "frustrated", "annoyed",
			"rage", "hostile", "bitter", "resentful", "outraged", "livid",
			"infuriated", "agitated", "enraged", "disgusted", "betrayed",
		}},
		{Emotion: "happy", Words: []string{
			"happy", "joy", "grateful", "thankful", "excited", "wonderful",
			"amazing", "great", "fantastic", "blessed", "cheerful", "delighted",
			"elated", "thrilled", "content", "pleased", "optimistic",
			"peaceful", "calm", "serene", "hopeful", "proud", "confident",
			"awesome", "good", "fine", "well", "better", "beautiful",
		}},
		{Emotion: "confused", Words: []string{
			"confused", "uncertain", "unsure", "stuck", "helpless",
			"conflicted", "torn", "indecisive", "puzzled", "bewildered",
		}},
		{Emotion: "tired", Words: []string{
			"tired", "exhausted", "drained", "burnout", "fatigued",
			"depleted", "weary", "sluggish", "lethargic",
		}},
	}
}

func defaultNegations() []string {
	return []string{
		"not", "no", "don't", "dont", "doesn't", "doesnt", "didn't", "didnt",
		"won't", "wont", "can't", "cant", "cannot", "never", "isn't", "isnt",
		"aren't", "arent", "wasn't", "wasnt", "hardly", "barely", "neither",
	}
}

func defaultSentiment() map[string]float64 {
	return map[string]float64{
		"happy":      0.8,
		"grateful":   0.9,
		"sad":        -0.7,
		"heartbreak": -0.85,
		"grief":      -0.9,
		"depressed":  -0.85,
		"anxious":    -0.5,
		"angry":      -0.6,
		"confused":   -0.2,
		"tired":      -0.3,
		"neutral":    0.0,
		"crisis":     -1.0,
	}
}

// Prioridad fija: el primer tema que matchea gana.
func defaultTopics() []TopicSpec {
	return []TopicSpec{
		{
			Topic:   "relationship",
			Pattern: `\b(gf|girlfriend|bf|boyfriend|partner|wife|husband|ex)\b|\b(she|he)\s+(left|dumped|cheated|broke\s+up)`,
			Persons: []PersonSpec{
				{Person: "girlfriend", Pattern: `\b(gf|girlfriend)\b`},
				{Person: "boyfriend", Pattern: `\b(bf|boyfriend)\b`},
				{Person: "partner", Pattern: `\b(partner|wife|husband)\b`},
				{Person: "ex", Pattern: `\bex\b`},
			},
		},
		{Topic: "family", Pattern: `\b(mom|dad|mother|father|parent|family|brother|sister|son|daughter)\b`},
		{Topic: "work_school", Pattern: `\b(work|job|boss|office|career|school|college|exam|class|study|grades|teacher|professor)\b`},
		{Topic: "health", Pattern: `\b(sick|health|hospital|doctor|illness|disease|surgery|diagnosed)\b`},
		{Topic: "friendship", Pattern: `\b(friend|buddy|bestie|bff)\b`},
	}
}
