package service

import (
	"strings"

	"ai-listener/internal/emotion"
)

type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

type EmergencyResource struct {
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ExtrasService sirve contenido estático: frases, recursos de emergencia y el asistente de navegación.
type ExtrasService struct {
	picker emotion.Picker
}

func NewExtrasService(picker emotion.Picker) *ExtrasService {
	if picker == nil {
		picker = emotion.SharedPicker
	}
	return &ExtrasService{picker: picker}
}

func (s *ExtrasService) RandomQuote() Quote {
	return motivationalQuotes[s.picker.IntN(len(motivationalQuotes))]
}

func (s *ExtrasService) EmergencyResources() []EmergencyResource {
	return append([]EmergencyResource(nil), emergencyResources...)
}

// Assist responde preguntas de navegación. Las reglas se evalúan en orden y
// matchean por subcadena sobre el texto en minúsculas.
func (s *ExtrasService) Assist(message string) string {
	text := strings.ToLower(message)
	for _, rule := range assistantRules {
		for _, w := range rule.words {
			if strings.Contains(text, w) {
				return assistantAnswers[rule.answer]
			}
		}
	}
	return assistantAnswers["default"]
}

var motivationalQuotes = []Quote{
	{Quote: "You are stronger than you think, braver than you believe, and more loved than you know.", Author: "A.A. Milne"},
	{Quote: "Every day may not be good, but there is something good in every day.", Author: "Alice Morse Earle"},
	{Quote: "You don't have to control your thoughts. You just have to stop letting them control you.", Author: "Dan Millman"},
	{Quote: "The only way out is through.", Author: "Robert Frost"},
	{Quote: "Be gentle with yourself. You're doing the best you can.", Author: "Unknown"},
	{Quote: "Healing is not linear. Be patient with yourself.", Author: "Unknown"},
	{Quote: "Your feelings are valid. Your story matters. You matter.", Author: "Unknown"},
	{Quote: "It's okay to not be okay. It's okay to ask for help.", Author: "Unknown"},
	{Quote: "Self-care is not selfish. You cannot serve from an empty vessel.", Author: "Eleanor Brownn"},
	{Quote: "The sun will rise and we will try again.", Author: "Unknown"},
	{Quote: "You are not your anxiety. You are not your depression. You are not your thoughts.", Author: "Unknown"},
	{Quote: "One small positive thought can change your whole day.", Author: "Zig Ziglar"},
	{Quote: "Breathe. It's just a bad day, not a bad life.", Author: "Unknown"},
	{Quote: "You have survived 100% of your worst days. You're doing great.", Author: "Unknown"},
	{Quote: "Stars can't shine without darkness.", Author: "D.H. Sidebottom"},
	{Quote: "Sometimes the bravest thing you can do is ask for help.", Author: "Unknown"},
	{Quote: "Progress, not perfection.", Author: "Unknown"},
	{Quote: "You are allowed to be a masterpiece and a work in progress simultaneously.", Author: "Sophia Bush"},
	{Quote: "Tough times never last, but tough people do.", Author: "Robert H. Schuller"},
	{Quote: "What lies behind us and what lies before us are tiny matters compared to what lies within us.", Author: "Ralph Waldo Emerson"},
}

var emergencyResources = []EmergencyResource{
	{
		Name:        "National Suicide Prevention Lifeline",
		Contact:     "988",
		Description: "24/7 free and confidential support for people in distress",
		URL:         "https://988lifeline.org",
	},
	{
		Name:        "Crisis Text Line",
		Contact:     "Text HOME to 741741",
		Description: "Free 24/7 crisis support via text message",
		URL:         "https://www.crisistextline.org",
	},
	{
		Name:        "SAMHSA National Helpline",
		Contact:     "1-800-662-4357",
		Description: "Free referral and information service for mental health and substance abuse",
		URL:         "https://www.samhsa.gov/find-help/national-helpline",
	},
	{
		Name:        "NAMI Helpline",
		Contact:     "1-800-950-6264",
		Description: "Information and support for mental health conditions",
		URL:         "https://www.nami.org/help",
	},
	{
		Name:        "International Association for Suicide Prevention",
		Contact:     "Visit website for local resources",
		Description: "Global network of crisis centers",
		URL:         "https://www.iasp.info/resources/Crisis_Centres/",
	},
}

type assistantRule struct {
	answer string
	words  []string
}

var assistantRules = []assistantRule{
	{answer: "greeting", words: []string{"hello", "hi", "hey", "greet"}},
	{answer: "how_to_use", words: []string{"how", "use", "start", "begin", "guide"}},
	{answer: "features", words: []string{"feature", "what can", "do", "offer"}},
	{answer: "voice", words: []string{"voice", "speak", "microphone", "listen", "audio"}},
	{answer: "mood_tracking", words: []string{"mood", "track", "chart", "graph", "emotion log"}},
	{answer: "connections", words: []string{"connect", "match", "friend", "people", "user"}},
	{answer: "emergency", words: []string{"emergency", "crisis", "help", "suicide", "danger"}},
}

var assistantAnswers = map[string]string{
	"greeting":      "Hi there! I'm SAL, your friendly guide to AI Listener. I'm here to help you navigate the platform and make the most of your experience.",
	"how_to_use":    "Here's how to use AI Listener:\n\n1. **Share your feelings** - Type or speak how you're feeling in the chat\n2. **Get support** - Our AI will respond with empathy and helpful tips\n3. **Listen** - Use the voice playback to hear comforting responses\n4. **Connect** - Find others who understand what you're going through\n5. **Track** - Monitor your emotional journey over time",
	"features":      "AI Listener offers:\n- Emotional AI chat with empathetic responses\n- Voice input and output for a more personal experience\n- Mood tracking to visualize your emotional journey\n- Connection with understanding users\n- Daily motivational quotes\n- Emergency support resources",
	"voice":         "You can use voice features by clicking the microphone button to speak your feelings, and the speaker button to hear AI responses in a calming voice. You can choose different voice styles in your profile settings!",
	"mood_tracking": "Your mood is automatically tracked when you chat. Visit your profile to see your emotional journey over time displayed as a beautiful chart.",
	"connections":   "You can connect with other users who share similar feelings. Go to the Connections page to discover and match with others. You can chat via text, share images, and even send voice notes!",
	"emergency":     "If you or someone you know is in crisis, please use the Emergency Resources section in the app. You can find numbers for suicide prevention hotlines and crisis support services.",
	"default":       "I'm not sure I understand that question, but I'm here to help! You can ask me about:\n- How to use the platform\n- Voice features\n- Mood tracking\n- Connecting with others\n- Emergency resources",
}
