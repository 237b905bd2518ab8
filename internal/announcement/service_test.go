package announcement

import (
	"context"
	"testing"

	"soyhub-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActive(ctx context.Context) ([]Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Announcement), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Announcement), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, title, message string) (Announcement, error) {
	args := m.Called(ctx, title, message)
	return args.Get(0).(Announcement), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, params UpdateParams) error {
	args := m.Called(ctx, id, params)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func adminCtx() context.Context {
	return utils.SetUserContext(context.Background(), 9, "admin", "ADMIN")
}

func shopperCtx() context.Context {
	return utils.SetUserContext(context.Background(), 1, "maria", "USER")
}

func TestService_ListActive(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	feed := []Announcement{{ID: "ann-1", Title: "New flavor", Active: true}}
	repo.On("GetActive", mock.Anything).Return(feed, nil)

	// No auth required for the shopper feed
	list, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, feed, list)
}

func TestService_AdminGating(t *testing.T) {
	t.Run("ListAll", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetAll", mock.Anything).Return([]Announcement{}, nil)

		_, err := svc.ListAll(adminCtx())
		assert.NoError(t, err)

		_, err = svc.ListAll(shopperCtx())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Create", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, "New flavor", "Ube is back").
			Return(Announcement{ID: "ann-1", Active: true}, nil)

		a, err := svc.Create(adminCtx(), "New flavor", "Ube is back")
		require.NoError(t, err)
		assert.True(t, a.Active)

		_, err = svc.Create(shopperCtx(), "t", "m")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Create empty title", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(adminCtx(), "   ", "m")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Update", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		params := UpdateParams{Title: utils.StrPtr("Edited")}
		repo.On("Update", mock.Anything, "ann-1", params).Return(nil)

		assert.NoError(t, svc.Update(adminCtx(), "ann-1", params))
		assert.ErrorIs(t, svc.Update(shopperCtx(), "ann-1", params), ErrUnauthorized)
	})

	t.Run("Update with nothing to do", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		err := svc.Update(adminCtx(), "ann-1", UpdateParams{})
		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("Delete", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Delete", mock.Anything, "ann-1").Return(nil)

		assert.NoError(t, svc.Delete(adminCtx(), "ann-1"))
		assert.ErrorIs(t, svc.Delete(shopperCtx(), "ann-1"), ErrUnauthorized)
	})
}
