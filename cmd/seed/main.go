package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memorycompanion/internal/config"
	"memorycompanion/internal/model"
	"memorycompanion/internal/repository"
	"memorycompanion/internal/service"
)

var questions = []model.Question{
	{ID: "q_gratitude", QuestionText: "What are you grateful for today?", Category: "gratitude"},
	{ID: "q_relationships", QuestionText: "Who made a difference in your week, and how?", Category: "relationships"},
	{ID: "q_growth", QuestionText: "What is something you are learning about yourself?", Category: "growth"},
	{ID: "q_memories", QuestionText: "What memory has been on your mind lately?", Category: "memories"},
}

var answers = []string{
	"I am grateful for my family and the quiet morning we shared together.",
	"My friend called when I needed it most. They always seem to know.",
	"I'm learning that it's okay to rest. I used to think I should always be busy.",
	"I remember when I was young, there was a storm and we watched it from the porch.",
	"Feeling thankful for small things like coffee and music.",
	"I want to change how I react when work gets hard. I keep trying new approaches.",
	"There was a time I felt stuck, but I hope this year is different.",
}

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to YAML config file")
	userKey := flag.Int64("key", 1, "internal user key to seed")
	days := flag.Int("days", 30, "number of days of reflections to create")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.Mongo.Database)
	questionRepo := repository.NewQuestionRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	reflectionRepo := repository.NewReflectionRepo(db)

	for i := range questions {
		if err := questionRepo.Upsert(ctx, &questions[i]); err != nil {
			log.Fatalf("Failed to upsert question %s: %v", questions[i].ID, err)
		}
	}

	profile, err := profileRepo.GetByUserKey(ctx, *userKey)
	if err != nil {
		log.Fatalf("Failed to look up profile: %v", err)
	}
	if profile == nil {
		profile = &model.Profile{AuthUserID: uuid.NewString(), UserKey: *userKey}
		if err := profileRepo.Upsert(ctx, profile); err != nil {
			log.Fatalf("Failed to create profile: %v", err)
		}
	}

	// Skip every fifth day so streaks have gaps
	now := time.Now().UTC()
	created := 0
	for d := 0; d < *days; d++ {
		if d%5 == 4 {
			continue
		}
		q := questions[d%len(questions)]
		r := &model.Reflection{
			UserKey:      *userKey,
			ResponseText: answers[d%len(answers)],
			CreatedAt:    now.AddDate(0, 0, -d).Add(-time.Duration(d%3) * time.Hour),
		}
		if err := reflectionRepo.Create(ctx, r, q.ID); err != nil {
			log.Fatalf("Failed to insert reflection: %v", err)
		}
		created++
	}

	token, err := service.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.Audience).IssueToken(profile.AuthUserID, "", 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Printf("Seeded %d questions and %d reflections for user key %d (auth user %s)\n", len(questions), created, *userKey, profile.AuthUserID)
	fmt.Printf("Bearer token (24h): %s\n", token)
}
