// Package session holds the per-browser session state the gateway keeps on
// behalf of the client: the backend bearer token, the signed-in user and the
// saved-job identifiers. Records live in Redis with a TTL; nothing here is
// business persistence.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobquest-web/internal/config"
	"jobquest-web/internal/logging"
	"jobquest-web/pkg/models"
	"jobquest-web/pkg/utils"
)

// ErrNotFound is returned when no session exists for an ID.
var ErrNotFound = errors.New("session not found")

// Session is one browser session. TokenKey records which storage key the
// bearer token lives under so the contract with the backend stays explicit.
type Session struct {
	ID          string       `json:"id"`
	TokenKey    string       `json:"token_key"`
	Token       string       `json:"token,omitempty"`
	User        *models.User `json:"user,omitempty"`
	SavedJobIDs []string     `json:"saved_job_ids"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Authenticated reports whether a user is signed in on this session.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil && s.Token != ""
}

// Store wraps the Redis client with session record management
type Store struct {
	client *redis.Client
	cfg    *config.Config
	logger logging.Logger
}

// NewStore creates a new session store instance
func NewStore(cfg *config.Config) *Store {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &Store{
		client: redis.NewClient(opts),
		cfg:    cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Create creates and persists a fresh guest session.
func (s *Store) Create(ctx context.Context) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:          utils.GenerateSessionID(),
		TokenKey:    s.cfg.Session.TokenKey,
		SavedJobIDs: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get retrieves a session by ID.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Save persists a session record, refreshing its TTL.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = time.Now()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.sessionKey(sess.ID), data, s.cfg.Session.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SaveBookmarks overwrites only the saved-job IDs of a stored session. Used
// by the fire-and-forget bookmark persistence path.
func (s *Store) SaveBookmarks(ctx context.Context, id string, jobIDs []string) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.SavedJobIDs = jobIDs
	return s.Save(ctx, sess)
}

// Delete removes a session record.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.sessionKey(id)).Err()
}

// Ping tests the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// IsHealthy checks if Redis is connected and healthy
func (s *Store) IsHealthy(ctx context.Context) error {
	return s.Ping(ctx)
}

func (s *Store) sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
