package auth

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/kv"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

type fakeAuthenticator struct {
	loginFunc func(ctx context.Context, req models.UserLogin) (*models.LoginResponse, error)
}

func (f *fakeAuthenticator) Login(ctx context.Context, req models.UserLogin) (*models.LoginResponse, error) {
	if f.loginFunc != nil {
		return f.loginFunc(ctx, req)
	}
	return &models.LoginResponse{
		Token: "tok-1",
		User:  models.User{ID: 42, Email: req.Email},
	}, nil
}

func newSession(store kv.Store) *Session {
	return NewSession(store, &fakeAuthenticator{}, log.New(io.Discard, "", 0))
}

func TestLogin_PersistsSession(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := newSession(store)

	user, err := s.Login(ctx, "jo@example.com", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok-1", s.Token())

	tok, err := store.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
}

func TestLogin_BackendError(t *testing.T) {
	s := NewSession(kv.NewMemory(), &fakeAuthenticator{
		loginFunc: func(ctx context.Context, req models.UserLogin) (*models.LoginResponse, error) {
			return nil, errors.New("bad credentials")
		},
	}, log.New(io.Discard, "", 0))

	_, err := s.Login(context.Background(), "jo@example.com", "wrong")

	require.Error(t, err)
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.CurrentUser())
}

func TestRestore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	first := newSession(store)
	_, err := first.Login(ctx, "jo@example.com", "hunter2")
	require.NoError(t, err)

	second := newSession(store)
	second.Restore(ctx)

	assert.True(t, second.Authenticated())
	require.NotNil(t, second.CurrentUser())
	assert.Equal(t, int64(42), second.CurrentUser().ID)
}

func TestRestore_MalformedUserStaysSignedOut(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, "auth_token", "tok-1"))
	require.NoError(t, store.Set(ctx, "current_user", "{not json"))

	s := newSession(store)
	s.Restore(ctx)

	assert.False(t, s.Authenticated())
	assert.Nil(t, s.CurrentUser())
}

func TestLogout_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	s := newSession(store)
	_, err := s.Login(ctx, "jo@example.com", "hunter2")
	require.NoError(t, err)

	s.Logout(ctx)

	assert.False(t, s.Authenticated())
	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, s.Token())

	restored := newSession(store)
	restored.Restore(ctx)
	assert.False(t, restored.Authenticated())
}
