package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres/cartrepo"
	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// newTestDB opens an in-memory SQLite database. Cart persistence uses no
// PostgreSQL-specific SQL, so tests run without a container.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&cartrepo.CartDTO{}, &cartrepo.CartItemDTO{}))
	return db
}

func newTestCart(t *testing.T, userID kernel.UUID, bookIDs ...kernel.UUID) *cart.Cart {
	t.Helper()

	c, err := cart.NewCart(kernel.NewUUID(), userID, time.Now())
	require.NoError(t, err)
	for _, bookID := range bookIDs {
		require.NoError(t, c.AddBook(bookID))
	}
	return c
}

func TestCartRepository_AddAndGetByUser(t *testing.T) {
	ctx := context.Background()
	tracker := new(MockAggregateTracker)
	repository := cartrepo.NewGormCartRepository(newTestDB(t), tracker)

	userID := kernel.NewUUID()
	bookID := kernel.NewUUID()
	original := newTestCart(t, userID, bookID)
	tracker.On("TrackAggregate", original.ID(), original).Once()

	require.NoError(t, repository.Add(ctx, original))

	retrieved, err := repository.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, original.ID(), retrieved.ID())
	assert.Equal(t, userID, retrieved.UserID())
	assert.True(t, retrieved.Contains(bookID))

	tracker.AssertExpectations(t)
}

func TestCartRepository_GetByUser_NoCart(t *testing.T) {
	ctx := context.Background()
	tracker := new(MockAggregateTracker)
	repository := cartrepo.NewGormCartRepository(newTestDB(t), tracker)

	retrieved, err := repository.GetByUser(ctx, kernel.NewUUID())

	assert.Nil(t, retrieved)
	require.Error(t, err)

	var notFoundErr *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestCartRepository_Update_RewritesItems(t *testing.T) {
	ctx := context.Background()
	tracker := new(MockAggregateTracker)
	repository := cartrepo.NewGormCartRepository(newTestDB(t), tracker)

	userID := kernel.NewUUID()
	keep := kernel.NewUUID()
	drop := kernel.NewUUID()
	testCart := newTestCart(t, userID, keep, drop)
	tracker.On("TrackAggregate", testCart.ID(), testCart).Twice()

	require.NoError(t, repository.Add(ctx, testCart))

	require.NoError(t, testCart.RemoveBook(drop))
	added := kernel.NewUUID()
	require.NoError(t, testCart.AddBook(added))

	require.NoError(t, repository.Update(ctx, testCart))

	retrieved, err := repository.GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.True(t, retrieved.Contains(keep))
	assert.True(t, retrieved.Contains(added))
	assert.False(t, retrieved.Contains(drop))

	tracker.AssertExpectations(t)
}

func TestCartRepository_Update_NonExistentCart(t *testing.T) {
	ctx := context.Background()
	tracker := new(MockAggregateTracker)
	repository := cartrepo.NewGormCartRepository(newTestDB(t), tracker)

	missing := newTestCart(t, kernel.NewUUID(), kernel.NewUUID())

	require.Error(t, repository.Update(ctx, missing))
	tracker.AssertExpectations(t)
}

func TestCartRepository_Delete(t *testing.T) {
	ctx := context.Background()
	tracker := new(MockAggregateTracker)
	repository := cartrepo.NewGormCartRepository(newTestDB(t), tracker)

	userID := kernel.NewUUID()
	testCart := newTestCart(t, userID, kernel.NewUUID())
	tracker.On("TrackAggregate", testCart.ID(), testCart).Once()

	require.NoError(t, repository.Add(ctx, testCart))
	require.NoError(t, repository.Delete(ctx, testCart.ID()))

	_, err := repository.GetByUser(ctx, userID)
	require.Error(t, err)

	tracker.AssertExpectations(t)
}

func TestCartRepository_Delete_NonExistentCart(t *testing.T) {
	ctx := context.Background()
	tracker := new(MockAggregateTracker)
	repository := cartrepo.NewGormCartRepository(newTestDB(t), tracker)

	err := repository.Delete(ctx, kernel.NewUUID())
	require.Error(t, err)

	var notFoundErr *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}
