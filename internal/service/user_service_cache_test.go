package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/core/cache"
	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
)

func newCachedUserService(t *testing.T, repo *mockUserRepo) *UserService {
	t.Helper()
	mr := miniredis.RunT(t)
	c := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	svc := newUserService(repo, &mockOrderClient{})
	svc.EnableCache(c, time.Minute)
	return svc
}

func TestUserGetByID_CachedReadSkipsStore(t *testing.T) {
	repo := newMockUserRepo(domain.User{ID: 1, Name: "Ann", Email: "a@x.com"})
	svc := newCachedUserService(t, repo)

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Ann", got.UserName)

	got, err = svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Ann", got.UserName)
	require.Equal(t, 1, repo.findByIDCalls)
}

func TestUserUpdate_InvalidatesCachedRead(t *testing.T) {
	repo := newMockUserRepo(domain.User{ID: 1, Name: "Ann", Email: "a@x.com"})
	svc := newCachedUserService(t, repo)

	_, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 1, &domain.UserDTO{UserName: "Anna", Email: "a@x.com"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Anna", got.UserName)
}

func TestUserDelete_InvalidatesCachedRead(t *testing.T) {
	repo := newMockUserRepo(domain.User{ID: 1, Name: "Ann", Email: "a@x.com"})
	svc := newCachedUserService(t, repo)

	_, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1))

	_, err = svc.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserGetByID_MissingUserNotCached(t *testing.T) {
	repo := newMockUserRepo()
	svc := newCachedUserService(t, repo)

	_, err := svc.GetByID(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrNotFound)

	repo.users[7] = domain.User{ID: 7, Name: "Bea", Email: "b@x.com"}
	got, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Bea", got.UserName)
	require.Equal(t, 2, repo.findByIDCalls)
}
