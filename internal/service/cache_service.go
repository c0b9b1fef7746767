package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hospital-backend/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	settingsCacheKey = "settings:current"
	settingsCacheTTL = 10 * time.Minute
)

// CacheService is a read-through Redis cache for the settings singleton.
// Cache misses and Redis failures fall back to the database; writes
// invalidate the cached copy.
type CacheService struct {
	log         *logrus.Logger
	redisClient *redis.Client
}

func NewCacheService(log *logrus.Logger, redisClient *redis.Client) *CacheService {
	return &CacheService{
		log:         log,
		redisClient: redisClient,
	}
}

// GetSettings returns the cached settings row, or nil on miss.
func (s *CacheService) GetSettings(ctx context.Context) *entity.Setting {
	data, err := s.redisClient.Get(ctx, settingsCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read settings cache: %+v", err)
		}
		return nil
	}

	var setting entity.Setting
	if err := json.Unmarshal(data, &setting); err != nil {
		s.log.Warnf("Failed to decode cached settings, dropping key: %+v", err)
		s.InvalidateSettings(ctx)
		return nil
	}
	return &setting
}

// SetSettings stores the settings row with a TTL.
func (s *CacheService) SetSettings(ctx context.Context, setting *entity.Setting) {
	data, err := json.Marshal(setting)
	if err != nil {
		s.log.Warnf("Failed to encode settings for cache: %+v", err)
		return
	}
	if err := s.redisClient.Set(ctx, settingsCacheKey, data, settingsCacheTTL).Err(); err != nil {
		s.log.Warnf("Failed to write settings cache: %+v", err)
	}
}

// InvalidateSettings drops the cached settings row after an update.
func (s *CacheService) InvalidateSettings(ctx context.Context) {
	if err := s.redisClient.Del(ctx, settingsCacheKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate settings cache: %+v", err)
	}
}
