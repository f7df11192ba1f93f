package insights

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorycompanion/internal/model"
)

func TestAnalyzeEmpty(t *testing.T) {
	drafts := []model.Reflection{
		{ResponseText: "unfinished", IsDraft: true, CreatedAt: testToday},
		{ResponseText: "", CreatedAt: testToday},
	}

	for _, input := range [][]model.Reflection{nil, drafts} {
		resp := Analyze(input, testToday)
		assert.Equal(t, 0, resp.TotalReflections)
		assert.Equal(t, emptySummary, resp.Insights.PersonalSummary)
		assert.Empty(t, resp.Insights.CoreValues)
		assert.NotNil(t, resp.Insights.CoreValues)
		assert.Empty(t, resp.Insights.ReflectionDNA)
		assert.Empty(t, resp.Insights.CategoryInsights)
		assert.Zero(t, resp.Insights.StreakCalendar.CurrentStreak)
		require.Len(t, resp.Insights.StreakCalendar.CalendarData, 365)
		for _, d := range resp.Insights.StreakCalendar.CalendarData {
			assert.Zero(t, d.Count)
		}
	}

	raw, err := json.Marshal(Analyze(nil, testToday))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"core_values":[]`)
	assert.Contains(t, string(raw), `"category_insights":{}`)
}

func TestAnalyzeSingleReflection(t *testing.T) {
	resp := Analyze([]model.Reflection{{
		ID:           "r1",
		ResponseText: "I am grateful for my family today",
		WordCount:    7,
		CreatedAt:    testToday.Add(-2 * time.Hour),
		Category:     "gratitude",
	}}, testToday)

	assert.Equal(t, 1, resp.TotalReflections)

	strengths := map[string]int{}
	for _, v := range resp.Insights.CoreValues {
		strengths[v.Value] = v.Strength
	}
	assert.GreaterOrEqual(t, strengths["Gratitude"], 1)
	assert.GreaterOrEqual(t, strengths["Family"], 1)

	assert.Equal(t, 1, resp.Insights.CategoryInsights["gratitude"].Count)
	assert.Equal(t, 100.0, resp.Insights.CategoryInsights["gratitude"].Percentage)
	assert.Equal(t, 1, resp.Insights.StreakCalendar.CurrentStreak)
	assert.Equal(t, "Your reflections reveal someone who deeply values family. You invest the most thought in gratitude.",
		resp.Insights.PersonalSummary)

	style := resp.Insights.ReflectionStyle
	assert.Equal(t, 7, style.TotalWords)
	assert.Equal(t, 7, style.AvgWordsPerReflection)
	assert.Equal(t, "Concise and focused", style.DepthLevel)
	assert.Equal(t, "Developing consistency", style.Consistency)
	assert.LessOrEqual(t, len(resp.Insights.ReflectionDNA), 6)
	assert.Contains(t, resp.Insights.ReflectionDNA[0], "gratitude")
}

func TestAnalyzeExcludesDraftsAndCountsUncategorized(t *testing.T) {
	reflections := []model.Reflection{
		{ResponseText: "calm morning", WordCount: 2, CreatedAt: testToday, Category: "mornings"},
		{ResponseText: "no prompt category", WordCount: 3, CreatedAt: testToday},
		{ResponseText: "draft text", WordCount: 2, CreatedAt: testToday, IsDraft: true, Category: "mornings"},
	}

	resp := Analyze(reflections, testToday)
	assert.Equal(t, 2, resp.TotalReflections)
	assert.Equal(t, 1, resp.Insights.CategoryInsights["mornings"].Count)
	assert.Equal(t, 50.0, resp.Insights.CategoryInsights["mornings"].Percentage)
	assert.Equal(t, 5, resp.Insights.ReflectionStyle.TotalWords)
}

func TestAnalyzeStorytellingScenario(t *testing.T) {
	var reflections []model.Reflection
	for i := 0; i < 10; i++ {
		text := "Today was calm."
		if i < 6 {
			text = "When I was young, there was a storm"
		}
		reflections = append(reflections, model.Reflection{
			ResponseText: text,
			CreatedAt:    testToday.AddDate(0, 0, -i),
		})
	}

	resp := Analyze(reflections, testToday)
	found := false
	for _, label := range resp.Insights.ReflectionDNA {
		if strings.Contains(label, "storytelling") {
			found = true
		}
	}
	assert.True(t, found, "dna: %v", resp.Insights.ReflectionDNA)
	assert.Equal(t, 10, resp.Insights.StreakCalendar.CurrentStreak)
	assert.Empty(t, resp.Insights.CategoryInsights)
}

func TestAnalyzeReflectionStyleThresholds(t *testing.T) {
	long := strings.Repeat("word ", 160)
	var reflections []model.Reflection
	for i := 0; i < 60; i++ {
		reflections = append(reflections, model.Reflection{ResponseText: long, CreatedAt: testToday.AddDate(0, 0, -i)})
	}

	resp := Analyze(reflections, testToday)
	assert.Equal(t, "Deeply reflective", resp.Insights.ReflectionStyle.DepthLevel)
	assert.Equal(t, "Moderately consistent", resp.Insights.ReflectionStyle.Consistency)
	assert.Equal(t, 160, resp.Insights.ReflectionStyle.AvgWordsPerReflection)
	assert.Equal(t, 60, resp.Insights.StreakCalendar.LongestStreak)
}

func TestAnalyzeIdempotent(t *testing.T) {
	reflections := []model.Reflection{
		{ResponseText: "I hope my friends and family are well", WordCount: 8, CreatedAt: testToday, Category: "connection"},
		{ResponseText: "Work felt hard but I learn every day", WordCount: 8, CreatedAt: testToday.AddDate(0, 0, -1), Category: "work"},
		{ResponseText: "Peaceful walk, it feels like home", WordCount: 6, CreatedAt: testToday.AddDate(0, 0, -3), Category: "nature"},
	}

	first, err := json.Marshal(Analyze(reflections, testToday))
	require.NoError(t, err)
	second, err := json.Marshal(Analyze(reflections, testToday))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}
