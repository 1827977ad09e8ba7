package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bloghub/internal/domain"
)

// MockCacheClient é uma implementação mock de cache.Client.
type MockCacheClient struct {
	mock.Mock
}

func (m *MockCacheClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCacheClient) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCacheClient) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return m.Called(ctx, key, expiration).Error(0)
}

func (m *MockCacheClient) HSet(ctx context.Context, key string, values map[string]interface{}) error {
	return m.Called(ctx, key, values).Error(0)
}

func (m *MockCacheClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockCacheClient) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCacheClient) Close() error {
	return m.Called().Error(0)
}

// --- RedisStore ---

func TestRedisStore_Lookup_Success(t *testing.T) {
	client := new(MockCacheClient)
	store := NewRedisStore(client, time.Minute)

	client.On("HGetAll", mock.Anything, "session:abc").
		Return(map[string]string{"userId": "7", "role": "ADMIN"}, nil)

	p, err := store.Lookup(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, domain.Principal{UserID: 7, Role: domain.RoleAdmin}, p)
	client.AssertExpectations(t)
}

func TestRedisStore_Lookup_Unknown(t *testing.T) {
	client := new(MockCacheClient)
	store := NewRedisStore(client, time.Minute)

	client.On("HGetAll", mock.Anything, "session:missing").Return(map[string]string{}, nil)

	_, err := store.Lookup(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Lookup_EmptyIDSkipsCache(t *testing.T) {
	client := new(MockCacheClient)
	store := NewRedisStore(client, time.Minute)

	_, err := store.Lookup(context.Background(), "")

	assert.ErrorIs(t, err, ErrSessionNotFound)
	client.AssertNotCalled(t, "HGetAll")
}

func TestRedisStore_Lookup_NoIdentity(t *testing.T) {
	client := new(MockCacheClient)
	store := NewRedisStore(client, time.Minute)

	client.On("HGetAll", mock.Anything, "session:anon").Return(map[string]string{"role": "USER"}, nil)

	_, err := store.Lookup(context.Background(), "anon")

	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestRedisStore_Lookup_CacheFailure(t *testing.T) {
	client := new(MockCacheClient)
	store := NewRedisStore(client, time.Minute)

	client.On("HGetAll", mock.Anything, "session:x").Return(map[string]string(nil), errors.New("connection refused"))

	_, err := store.Lookup(context.Background(), "x")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRedisStore_Create(t *testing.T) {
	client := new(MockCacheClient)
	store := NewRedisStore(client, 30*time.Minute)

	client.On("HSet", mock.Anything, mock.AnythingOfType("string"), map[string]interface{}{
		"userId": "42",
		"role":   "USER",
	}).Return(nil)
	client.On("Expire", mock.Anything, mock.AnythingOfType("string"), 30*time.Minute).Return(nil)

	id, err := store.Create(context.Background(), domain.Principal{UserID: 42, Role: domain.RoleUser})

	require.NoError(t, err)
	assert.Len(t, id, 36)
	client.AssertCalled(t, "HSet", mock.Anything, "session:"+id, mock.Anything)
	client.AssertCalled(t, "Expire", mock.Anything, "session:"+id, 30*time.Minute)
}

func TestRedisStore_Create_ExpireFailureRemovesKey(t *testing.T) {
	client := new(MockCacheClient)
	store := NewRedisStore(client, time.Minute)

	client.On("HSet", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	client.On("Expire", mock.Anything, mock.Anything, time.Minute).Return(errors.New("boom"))
	client.On("Delete", mock.Anything, mock.Anything).Return(nil)

	id, err := store.Create(context.Background(), domain.Principal{UserID: 1, Role: domain.RoleUser})

	assert.Error(t, err)
	assert.Empty(t, id)
	client.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRedisStore_Delete(t *testing.T) {
	client := new(MockCacheClient)
	store := NewRedisStore(client, time.Minute)

	client.On("Delete", mock.Anything, "session:abc").Return(nil)

	assert.NoError(t, store.Delete(context.Background(), "abc"))
	client.AssertExpectations(t)
}

// --- MemoryStore ---

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	want := domain.Principal{UserID: 3, Role: domain.RoleAdmin}

	id, err := store.Create(ctx, want)
	require.NoError(t, err)

	got, err := store.Lookup(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Lookup(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expired(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	id, err := store.Create(context.Background(), domain.Principal{UserID: 1, Role: domain.RoleUser})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Lookup(context.Background(), id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_NoIdentity(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	id, err := store.Create(context.Background(), domain.Principal{})
	require.NoError(t, err)

	_, err = store.Lookup(context.Background(), id)
	assert.ErrorIs(t, err, ErrNoIdentity)
}
