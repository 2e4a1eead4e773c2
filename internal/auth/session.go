// Package auth tracks the signed-in user and their API token for one client
// install. Token and user are mirrored into the kv store so a restart keeps
// the session.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/kv"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

const (
	tokenKey = "auth_token"
	userKey  = "current_user"
)

// Authenticator is the login surface of the user service the session needs.
type Authenticator interface {
	Login(ctx context.Context, req models.UserLogin) (*models.LoginResponse, error)
}

type Session struct {
	mu     sync.RWMutex
	store  kv.Store
	users  Authenticator
	logger *log.Logger

	token string
	user  *models.User
}

func NewSession(store kv.Store, users Authenticator, logger *log.Logger) *Session {
	return &Session{store: store, users: users, logger: logger}
}

// Restore rehydrates the session from persisted state. A malformed persisted
// user simply leaves the session signed out.
func (s *Session) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.store.Get(ctx, tokenKey)
	if err != nil {
		return
	}

	raw, err := s.store.Get(ctx, userKey)
	if err != nil {
		return
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.logger.Printf("auth: discarding malformed persisted user: %v", err)
		return
	}

	s.token = token
	s.user = &u
}

// Login authenticates against the user service and persists the session.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.users.Login(ctx, models.UserLogin{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" {
		return nil, errors.New("login: backend returned no token")
	}

	s.mu.Lock()
	s.token = resp.Token
	user := resp.User
	s.user = &user
	s.mu.Unlock()

	if err := s.store.Set(ctx, tokenKey, resp.Token); err != nil {
		s.logger.Printf("auth: persist token failed: %v", err)
	}
	if data, err := json.Marshal(resp.User); err == nil {
		if err := s.store.Set(ctx, userKey, string(data)); err != nil {
			s.logger.Printf("auth: persist user failed: %v", err)
		}
	}

	return &resp.User, nil
}

// Logout drops the in-memory session and blanks the persisted copy.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Set(ctx, tokenKey, ""); err != nil {
		s.logger.Printf("auth: clear token failed: %v", err)
	}
	if err := s.store.Set(ctx, userKey, ""); err != nil {
		s.logger.Printf("auth: clear user failed: %v", err)
	}
}

// CurrentUser returns the signed-in user, or nil.
func (s *Session) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token implements clients.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
