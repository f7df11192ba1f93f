package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"memorycompanion/internal/config"
	"memorycompanion/internal/logging"
	"memorycompanion/internal/repository"
	"memorycompanion/internal/service"
)

func newUserCmd() *cobra.Command {
	var userKey int64

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Generate insights for a stored user key",
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := resolveToday(cmd)
			if err != nil {
				return err
			}
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
			if err != nil {
				return fmt.Errorf("failed to connect to MongoDB: %w", err)
			}
			defer client.Disconnect(context.Background())
			db := client.Database(cfg.Mongo.Database)

			svc := service.NewInsightService(
				repository.NewProfileRepo(db), nil, repository.NewReflectionRepo(db),
				cfg.Insight.WindowDays, logger,
			)
			resp, err := svc.Generate(ctx, userKey, today)
			if err != nil {
				logger.Error("insight generation failed", zap.Int64("user_key", userKey), zap.Error(err))
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().Int64Var(&userKey, "key", 0, "internal user key")
	cmd.MarkFlagRequired("key")
	return cmd
}
