package model

import (
	"strings"
	"time"
)

// Reflection is a submitted answer to a prompt, joined with its question
type Reflection struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	UserKey      int64     `json:"user_key,omitempty" bson:"user_id"`
	ResponseText string    `json:"response_text" bson:"response_text"`
	WordCount    int       `json:"word_count" bson:"word_count"`
	IsDraft      bool      `json:"is_draft,omitempty" bson:"is_draft"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	Category     string    `json:"category,omitempty" bson:"category,omitempty"`           // From joined question
	QuestionText string    `json:"question_text,omitempty" bson:"question_text,omitempty"` // From joined question
}

// Eligible reports whether the reflection takes part in analysis
func (r *Reflection) Eligible() bool {
	return !r.IsDraft && r.ResponseText != ""
}

// Words returns the stored word count, falling back to a whitespace token count
func (r *Reflection) Words() int {
	if r.WordCount > 0 {
		return r.WordCount
	}
	return len(strings.Fields(r.ResponseText))
}

// Question is a reflection prompt
type Question struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	QuestionText string `json:"question_text" bson:"question_text"`
	Category     string `json:"category,omitempty" bson:"category,omitempty"`
}
