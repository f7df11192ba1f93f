package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorycompanion/internal/model"
	"memorycompanion/internal/service"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reflections.json")
	content := `[
		{"response_text": "I am grateful for my family today", "word_count": 7, "created_at": "2026-10-19T08:00:00Z", "category": "gratitude"},
		{"response_text": "Yesterday I felt calm", "word_count": 4, "created_at": "2026-10-18T21:00:00Z", "category": "mood"},
		{"response_text": "draft", "word_count": 1, "created_at": "2026-10-18T21:00:00Z", "is_draft": true},
		{"response_text": "ancient history", "word_count": 2, "created_at": "2020-01-01T00:00:00Z"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := runCmd(t, "analyze", "--file", path, "--today", "2026-10-19")
	require.NoError(t, err)

	var resp model.InsightsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 2, resp.TotalReflections)
	assert.Equal(t, 2, resp.Insights.StreakCalendar.CurrentStreak)
	assert.Equal(t, "2026-10-19", resp.Insights.StreakCalendar.CalendarData[364].Date)
}

func TestAnalyzeCommandErrors(t *testing.T) {
	_, err := runCmd(t, "analyze")
	assert.Error(t, err)

	_, err = runCmd(t, "analyze", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "r.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))
	_, err = runCmd(t, "analyze", "--file", path, "--today", "19/10/2026")
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	userID := uuid.NewString()

	out, err := runCmd(t, "token", "--user", userID)
	require.NoError(t, err)

	identity, err := service.NewAuthService("cli-secret", "authenticated").VerifyToken(string(bytes.TrimSpace([]byte(out))))
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
}
