package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
	"github.com/yigit/schoolregistry/internal/pkg/cache"
)

func TestLookupRepository_GetKey(t *testing.T) {
	mock, repos := newMockRepos(t, nil)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT pk_id FROM StudentStatus WHERE status`).
		WithArgs("GRADUATED").
		WillReturnRows(keyRow("pk_id", 3))

	key, err := repos.StudentStatusRepository.GetKey(ctx, mock, "GRADUATED")
	require.NoError(t, err)
	assert.Equal(t, int64(3), key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRepository_GetKey_NotFound(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	mock.ExpectQuery(`SELECT pk_id FROM EmployeeRole WHERE name`).
		WithArgs("JANITOR").
		WillReturnRows(noRows("pk_id"))

	key, err := repos.EmployeeRoleRepository.GetKey(context.Background(), mock, "JANITOR")
	assert.Equal(t, NotFoundKey, key)
	assert.ErrorIs(t, err, ErrLookupNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRepository_GetKey_StoreFailure(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	mock.ExpectQuery(`SELECT pk_id FROM PhoneType`).
		WithArgs("MOBILE").
		WillReturnError(errors.New("connection reset"))

	key, err := repos.PhoneTypeRepository.GetKey(context.Background(), mock, "MOBILE")
	assert.Equal(t, NotFoundKey, key)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrLookupNotFound)
}

func TestLookupRepository_GetKey_ReadThroughCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	mock, repos := newMockRepos(t, cache.NewLookupCache(client, time.Minute))
	ctx := context.Background()

	// Only the first call reaches the database
	mock.ExpectQuery(`SELECT pk_id FROM PhoneType`).
		WithArgs("WORK").
		WillReturnRows(keyRow("pk_id", 3))

	for i := 0; i < 3; i++ {
		key, err := repos.PhoneTypeRepository.GetKey(ctx, mock, "WORK")
		require.NoError(t, err)
		assert.Equal(t, int64(3), key)
	}
	assert.NoError(t, mock.ExpectationsWereMet())

	cached, err := mr.Get("lookup:PhoneType:WORK")
	require.NoError(t, err)
	assert.Equal(t, "3", cached)
}
