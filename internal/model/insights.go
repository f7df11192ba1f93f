package model

// InsightsResponse is returned by GET /v1/insights
type InsightsResponse struct {
	TotalReflections int      `json:"total_reflections"`
	Insights         Insights `json:"insights"`
}

// Insights is the derived view of a user's reflection history
type Insights struct {
	PersonalSummary  string                     `json:"personal_summary"`
	CoreValues       []ValueScore               `json:"core_values"`
	ReflectionDNA    []string                   `json:"reflection_dna"`
	StreakCalendar   StreakStats                `json:"streak_calendar"`
	GrowthJourney    GrowthJourney              `json:"growth_journey"`
	CategoryInsights map[string]CategoryInsight `json:"category_insights"`
	ReflectionStyle  ReflectionStyle            `json:"reflection_style"`
}

// ValueScore is a personal value ranked by indicator hits
type ValueScore struct {
	Value       string `json:"value"`
	Strength    int    `json:"strength"`
	Description string `json:"description"`
}

// CalendarDay is one cell of the activity calendar
type CalendarDay struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Intensity int    `json:"intensity"` // min(count, 4)
}

// StreakStats holds streak counters and the trailing-year calendar
type StreakStats struct {
	CurrentStreak   int           `json:"current_streak"`
	LongestStreak   int           `json:"longest_streak"`
	TotalActiveDays int           `json:"total_active_days"`
	CalendarData    []CalendarDay `json:"calendar_data"`
}

// EmotionalTone classifies a category's positivity ratio
type EmotionalTone string

const (
	TonePositive    EmotionalTone = "positive"
	ToneChallenging EmotionalTone = "challenging"
	ToneBalanced    EmotionalTone = "balanced"
)

// CategoryInsight aggregates reflections sharing a question category
type CategoryInsight struct {
	Count           int           `json:"count"`
	AvgDepth        float64       `json:"avg_depth"`
	TotalInvestment int           `json:"total_investment"`
	EmotionalTone   EmotionalTone `json:"emotional_tone"`
	ReflectionLevel int           `json:"reflection_level"`
	Percentage      float64       `json:"percentage"`
}

type GrowthJourney struct {
	ReflectionDepthChange string `json:"reflection_depth_change"`
	FocusEvolution        string `json:"focus_evolution"`
	EmotionalGrowth       string `json:"emotional_growth"`
}

type ReflectionStyle struct {
	DepthLevel            string `json:"depth_level"`
	Consistency           string `json:"consistency"`
	TotalWords            int    `json:"total_words"`
	AvgWordsPerReflection int    `json:"avg_words_per_reflection"`
}
