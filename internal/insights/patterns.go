package insights

import "strings"

const maxDNAEntries = 6

// Signals is the corpus-level input shared by every pattern classifier.
type Signals struct {
	Corpus      string // lower-cased concatenation of all reflection texts
	Reflections int
	Categories  []CategoryDepth // first-appearance order
}

// CategoryDepth is a category's average word count.
type CategoryDepth struct {
	Category string
	AvgDepth float64
}

// Classifier inspects the signals and emits at most one label.
type Classifier func(Signals) (string, bool)

// classifiers run in this order; output keeps it.
var classifiers = []Classifier{
	EnergyDetection,
	ProcessingStyle,
	EmotionalProcessing,
	SelfReference,
	GrowthEdge,
	ConnectionStyle,
}

// ReflectionDNA evaluates every classifier in order and collects their labels.
func ReflectionDNA(sig Signals) []string {
	dna := make([]string, 0, len(classifiers))
	for _, c := range classifiers {
		if label, ok := c(sig); ok {
			dna = append(dna, label)
		}
		if len(dna) == maxDNAEntries {
			break
		}
	}
	return dna
}

// EnergyDetection picks the category with the highest average depth.
func EnergyDetection(sig Signals) (string, bool) {
	best := -1
	for i, c := range sig.Categories {
		if best < 0 || c.AvgDepth > sig.Categories[best].AvgDepth {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return "⚡ Your energy peaks when discussing " + sig.Categories[best].Category, true
}

// ProcessingStyle compares questioning, storytelling and metaphor markers
// against thresholds scaled by the number of reflections.
func ProcessingStyle(sig Signals) (string, bool) {
	n := float64(sig.Reflections)
	questions := strings.Count(sig.Corpus, "?")
	stories := CountPhrases(sig.Corpus, storyPhrases)
	metaphors := CountPhrases(sig.Corpus, metaphorPhrases)

	switch {
	case float64(questions) > 0.8*n:
		return "❓ You process life through questions and curiosity", true
	case float64(stories) > 0.5*n:
		return "📖 You process life through storytelling", true
	case float64(metaphors) > 0.3*n:
		return "🎨 You think in metaphors and imagery", true
	}
	return "", false
}

// EmotionalProcessing compares gratitude, worry and hope vocabulary.
func EmotionalProcessing(sig Signals) (string, bool) {
	gratitude := CountWords(sig.Corpus, gratitudeWords)
	worry := CountWords(sig.Corpus, worryWords)
	hope := CountWords(sig.Corpus, hopeWords)

	switch {
	case gratitude > worry && gratitude > hope:
		return "🙏 You process emotions through gratitude", true
	case hope > gratitude && hope > worry:
		return "🌅 You process emotions by looking toward hope", true
	case worry > gratitude:
		return "🌊 You process emotions by naming your worries", true
	}
	return "", false
}

// SelfReference weighs "should" language against self-compassion.
func SelfReference(sig Signals) (string, bool) {
	should := CountPhrases(sig.Corpus, shouldPhrases)
	compassion := CountPhrases(sig.Corpus, selfCompassionPhrases)

	switch {
	case should > 2*compassion:
		return "🗣️ Your inner critic speaks up often with what you should do", true
	case compassion > should:
		return "💗 You meet yourself with self-compassion", true
	}
	return "", false
}

// GrowthEdge compares change vocabulary with stuck vocabulary; ties emit nothing.
func GrowthEdge(sig Signals) (string, bool) {
	change := CountWords(sig.Corpus, changeWords)
	stuck := CountWords(sig.Corpus, stuckWords)

	switch {
	case change > stuck:
		return "🌱 Your growth edge: you are actively embracing change", true
	case stuck > change:
		return "🪨 Your growth edge: noticing where you feel stuck", true
	}
	return "", false
}

// ConnectionStyle always emits: relational when others dominate, otherwise introspective.
func ConnectionStyle(sig Signals) (string, bool) {
	others := CountWords(sig.Corpus, othersWords)
	self := CountPhrases(sig.Corpus, selfFocusPhrases)

	if others > self {
		return "🤝 You are relational: you reflect through your connections with others", true
	}
	return "🔍 You are introspective: you reflect by looking inward", true
}
