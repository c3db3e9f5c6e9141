package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"AutoPartsBot/internal/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SessionTTL bounds how long an idle session survives in the store.
const SessionTTL = 24 * time.Hour

type ISessionStore interface {
	Get(ctx context.Context, sessionID string) (*entity.SessionContext, error)
	Save(ctx context.Context, session *entity.SessionContext) error
	Delete(ctx context.Context, sessionID string) error
}

type sessionStore struct {
	client *redis.Client
}

func New() ISessionStore {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &sessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Get returns the stored session, or a fresh one when the key is missing or
// the stored blob no longer unmarshals. A corrupt blob must never surface as
// an error to the conversation.
func (s *sessionStore) Get(ctx context.Context, sessionID string) (*entity.SessionContext, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Session %s not found, creating new", sessionID))
		return entity.NewSessionContext(sessionID), nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting session %s: %v", sessionID, err))
		return nil, err
	}

	session := new(entity.SessionContext)
	if err := json.Unmarshal([]byte(val), session); err != nil {
		logrus.Warn(fmt.Sprintf("Session %s blob is corrupt, replacing: %v", sessionID, err))
		return entity.NewSessionContext(sessionID), nil
	}

	return session, nil
}

func (s *sessionStore) Save(ctx context.Context, session *entity.SessionContext) error {
	session.UpdatedAt = time.Now()

	blob, err := json.Marshal(session)
	if err != nil {
		logrus.Error(fmt.Sprintf("Error marshaling session %s: %v", session.ID, err))
		return err
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), blob, SessionTTL).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error saving session %s: %v", session.ID, err))
		return err
	}
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.client.Del(ctx, sessionKey(sessionID)).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting session %s: %v", sessionID, err))
		return err
	}
	return nil
}
