package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"careercompass/internal/model"
)

// SessionCache handles Redis persistence of in-flight assessment sessions:
// the session envelope and the conversation snapshot, so a user can navigate
// away and resume where they left off.
type SessionCache interface {
	SetSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	SetState(ctx context.Context, sessionID string, state *model.ConversationState) error
	GetState(ctx context.Context, sessionID string) (*model.ConversationState, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new session cache
func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *sessionCache) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s:meta", sessionID)
}

func (c *sessionCache) stateKey(sessionID string) string {
	return fmt.Sprintf("session:%s:state", sessionID)
}

func (c *sessionCache) SetSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.sessionKey(session.ID), data, c.ttl).Err()
}

func (c *sessionCache) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	data, err := c.client.Get(ctx, c.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionCache) SetState(ctx context.Context, sessionID string, state *model.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.stateKey(sessionID), data, c.ttl).Err()
}

func (c *sessionCache) GetState(ctx context.Context, sessionID string) (*model.ConversationState, error) {
	data, err := c.client.Get(ctx, c.stateKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state model.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *sessionCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.sessionKey(sessionID), c.stateKey(sessionID)).Err()
}
