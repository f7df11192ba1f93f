package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"memorycompanion/internal/cache"
	"memorycompanion/internal/insights"
	"memorycompanion/internal/metrics"
	"memorycompanion/internal/model"
	"memorycompanion/internal/repository"
)

// InsightService resolves a caller to a user key, loads their reflections and
// runs the insights pipeline
type InsightService struct {
	profiles     repository.ProfileRepo
	profileCache cache.ProfileCache
	reflections  repository.ReflectionRepo
	windowDays   int
	now          func() time.Time
	logger       *zap.Logger
}

// NewInsightService creates a new insight service. profileCache may be nil.
func NewInsightService(
	profiles repository.ProfileRepo,
	profileCache cache.ProfileCache,
	reflections repository.ReflectionRepo,
	windowDays int,
	logger *zap.Logger,
) *InsightService {
	return &InsightService{
		profiles:     profiles,
		profileCache: profileCache,
		reflections:  reflections,
		windowDays:   windowDays,
		now:          time.Now,
		logger:       logger,
	}
}

// SetClock replaces the source of "today"
func (s *InsightService) SetClock(now func() time.Time) {
	s.now = now
}

// GenerateForIdentity builds insights for a verified caller
func (s *InsightService) GenerateForIdentity(ctx context.Context, identity *model.Identity) (*model.InsightsResponse, error) {
	today := insights.Day(s.now())

	userKey, err := s.ResolveUserKey(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, userKey, today)
}

// Generate builds insights for a user key as of today
func (s *InsightService) Generate(ctx context.Context, userKey int64, today time.Time) (*model.InsightsResponse, error) {
	today = insights.Day(today)
	since := today.AddDate(0, 0, -s.windowDays)

	reflections, err := s.reflections.ListSince(ctx, userKey, since)
	if err != nil {
		return nil, &UpstreamError{Op: "list reflections", Err: err}
	}

	resp := insights.Analyze(reflections, today)
	metrics.ReflectionsAnalyzed.Observe(float64(resp.TotalReflections))

	s.logger.Debug("insights generated",
		zap.Int64("user_key", userKey),
		zap.Int("fetched", len(reflections)),
		zap.Int("analyzed", resp.TotalReflections),
		zap.String("today", today.Format("2006-01-02")),
	)
	return resp, nil
}

// ResolveUserKey maps an identity to its internal user key, consulting the
// cache first. Cache failures fall back to the profile store.
func (s *InsightService) ResolveUserKey(ctx context.Context, authUserID string) (int64, error) {
	if s.profileCache != nil {
		userKey, found, err := s.profileCache.GetUserKey(ctx, authUserID)
		switch {
		case err != nil:
			metrics.ProfileCacheLookups.WithLabelValues("error").Inc()
			s.logger.Warn("profile cache lookup failed", zap.String("auth_user_id", authUserID), zap.Error(err))
		case found:
			metrics.ProfileCacheLookups.WithLabelValues("hit").Inc()
			return userKey, nil
		default:
			metrics.ProfileCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	profile, err := s.profiles.GetByAuthUserID(ctx, authUserID)
	if err != nil {
		return 0, &UpstreamError{Op: "get profile", Err: err}
	}
	if profile == nil {
		return 0, ErrProfileNotFound
	}

	if s.profileCache != nil {
		if err := s.profileCache.SetUserKey(ctx, authUserID, profile.UserKey); err != nil {
			s.logger.Warn("profile cache store failed", zap.String("auth_user_id", authUserID), zap.Error(err))
		}
	}
	return profile.UserKey, nil
}
