// Package insights derives streaks, values, category tone and reflection patterns
// from a user's reflection history.
package insights

// ValueDef is one entry of the value taxonomy
type ValueDef struct {
	Key         string
	Indicators  []string
	Description string
}

// valueTaxonomy is ordered; the order breaks ties between equal scores.
var valueTaxonomy = []ValueDef{
	{
		Key:         "personal_growth",
		Indicators:  []string{"grow", "learn", "improve", "develop", "progress", "better", "challenge"},
		Description: "You are committed to learning and becoming a better version of yourself.",
	},
	{
		Key:         "family",
		Indicators:  []string{"family", "mom", "dad", "parent", "sister", "brother", "children", "kids"},
		Description: "The people closest to you shape what matters most in your life.",
	},
	{
		Key:         "gratitude",
		Indicators:  []string{"grateful", "thankful", "appreciate", "blessed", "gratitude"},
		Description: "You notice and honor the good things in your life.",
	},
	{
		Key:         "creativity",
		Indicators:  []string{"create", "creative", "art", "write", "music", "imagine", "design"},
		Description: "You find meaning in making things and expressing ideas.",
	},
	{
		Key:         "adventure",
		Indicators:  []string{"adventure", "travel", "explore", "discover", "journey", "new"},
		Description: "You are energized by new experiences and the unknown.",
	},
	{
		Key:         "connection",
		Indicators:  []string{"friend", "together", "connect", "relationship", "community", "love"},
		Description: "Relationships and belonging are central to who you are.",
	},
	{
		Key:         "authenticity",
		Indicators:  []string{"honest", "real", "authentic", "genuine", "myself", "true"},
		Description: "Being true to yourself guides how you live.",
	},
	{
		Key:         "inner_peace",
		Indicators:  []string{"peace", "calm", "quiet", "balance", "mindful", "rest"},
		Description: "You seek calm, balance and a settled mind.",
	},
}

// Emotion vocabularies for per-category tone
var (
	positiveWords    = []string{"happy", "joy", "excited", "grateful", "love", "proud", "peaceful", "hopeful", "content"}
	challengingWords = []string{"sad", "angry", "frustrated", "anxious", "worried", "hard", "difficult", "stress", "afraid", "lonely"}
	reflectiveWords  = []string{"realize", "learn", "understand", "think", "reflect", "wonder", "notice"}
)

// Pattern engine signals
var (
	storyPhrases    = []string{"when i", "i remember", "there was"}
	metaphorPhrases = []string{"like", "as if", "feels like"}

	gratitudeWords = []string{"grateful", "thankful", "appreciate", "blessed"}
	worryWords     = []string{"worry", "anxious", "afraid", "nervous", "fear"}
	hopeWords      = []string{"hope", "wish", "dream", "looking forward"}

	shouldPhrases         = []string{"should", "need to", "must"}
	selfCompassionPhrases = []string{"i'm learning", "it's okay", "i forgive"}

	changeWords = []string{"change", "grow", "learn", "try", "new", "different"}
	stuckWords  = []string{"stuck", "same", "always", "never", "can't"}

	othersWords      = []string{"they", "them", "friend", "family", "others", "people"}
	selfFocusPhrases = []string{"i feel", "i think", "myself", "i am"}
)

// Taxonomy returns a copy of the value taxonomy in declaration order.
func Taxonomy() []ValueDef {
	out := make([]ValueDef, len(valueTaxonomy))
	copy(out, valueTaxonomy)
	return out
}
