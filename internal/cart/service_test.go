package cart

import (
	"context"
	"testing"

	"soyhub-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock for the product repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func newTestService(t *testing.T) (Service, *MockProductRepository) {
	t.Helper()
	repo := new(MockProductRepository)
	return NewService(NewStore(), repo), repo
}

func classic() *product.Product {
	return &product.Product{ID: "prod-1", Name: "Classic", Price: 20, Available: true}
}

func mango() *product.Product {
	return &product.Product{ID: "prod-2", Name: "Mango Soya", Price: 25, Available: true}
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("New line gets quantity 1", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetByID", ctx, "prod-1").Return(classic(), nil)

		line, err := svc.Add(ctx, 1, "prod-1")
		require.NoError(t, err)
		assert.Equal(t, 1, line.Quantity)
		assert.Equal(t, 20.0, line.UnitPrice)
		assert.Len(t, svc.Items(1), 1)
	})

	t.Run("Repeated adds merge into one line", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetByID", ctx, "prod-1").Return(classic(), nil)

		for i := 0; i < 5; i++ {
			_, err := svc.Add(ctx, 1, "prod-1")
			require.NoError(t, err)
		}

		items := svc.Items(1)
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("Unavailable product is a no-op", func(t *testing.T) {
		svc, repo := newTestService(t)
		p := classic()
		p.Available = false
		repo.On("GetByID", ctx, "prod-1").Return(p, nil)

		_, err := svc.Add(ctx, 1, "prod-1")
		assert.ErrorIs(t, err, ErrProductUnavailable)
		assert.Empty(t, svc.Items(1))
		assert.Equal(t, 0, svc.Count(1))
	})

	t.Run("Unknown product propagates not found", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetByID", ctx, "ghost").Return(nil, product.ErrProductNotFound)

		_, err := svc.Add(ctx, 1, "ghost")
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("Carts are isolated per user", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetByID", ctx, "prod-1").Return(classic(), nil)

		_, err := svc.Add(ctx, 1, "prod-1")
		require.NoError(t, err)

		assert.Len(t, svc.Items(1), 1)
		assert.Empty(t, svc.Items(2))
	})
}

func TestService_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Clamps below one", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetByID", ctx, "prod-1").Return(classic(), nil)
		_, err := svc.Add(ctx, 1, "prod-1")
		require.NoError(t, err)

		for _, qty := range []int{0, -3} {
			require.NoError(t, svc.SetQuantity(ctx, 1, "prod-1", qty))
			assert.Equal(t, 1, svc.Items(1)[0].Quantity)
		}
	})

	t.Run("Stores explicit quantity", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetByID", ctx, "prod-1").Return(classic(), nil)
		_, err := svc.Add(ctx, 1, "prod-1")
		require.NoError(t, err)

		require.NoError(t, svc.SetQuantity(ctx, 1, "prod-1", 7))
		assert.Equal(t, 7, svc.Items(1)[0].Quantity)
	})

	t.Run("Missing line", func(t *testing.T) {
		svc, _ := newTestService(t)
		err := svc.SetQuantity(ctx, 1, "ghost", 3)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes the line", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.On("GetByID", ctx, "prod-1").Return(classic(), nil)
		repo.On("GetByID", ctx, "prod-2").Return(mango(), nil)

		_, err := svc.Add(ctx, 1, "prod-1")
		require.NoError(t, err)
		_, err = svc.Add(ctx, 1, "prod-2")
		require.NoError(t, err)

		require.NoError(t, svc.Remove(ctx, 1, "prod-1"))

		items := svc.Items(1)
		require.Len(t, items, 1)
		assert.Equal(t, "prod-2", items[0].ProductID)
	})

	t.Run("Missing line", func(t *testing.T) {
		svc, _ := newTestService(t)
		err := svc.Remove(ctx, 1, "ghost")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestService_Total(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) Service {
		svc, repo := newTestService(t)
		repo.On("GetByID", ctx, "prod-1").Return(classic(), nil)
		repo.On("GetByID", ctx, "prod-2").Return(mango(), nil)

		// 2 x Classic(20) + 3 x Mango(25)
		_, err := svc.Add(ctx, 1, "prod-1")
		require.NoError(t, err)
		_, err = svc.Add(ctx, 1, "prod-1")
		require.NoError(t, err)
		_, err = svc.Add(ctx, 1, "prod-2")
		require.NoError(t, err)
		require.NoError(t, svc.SetQuantity(ctx, 1, "prod-2", 3))
		return svc
	}

	t.Run("Pickup has no surcharge", func(t *testing.T) {
		svc := setup(t)
		assert.Equal(t, 2*20.0+3*25.0, svc.Total(1, 0))
	})

	t.Run("Delivery fee applies per unit", func(t *testing.T) {
		svc := setup(t)
		assert.Equal(t, 2*(20.0+10)+3*(25.0+10), svc.Total(1, 10))
	})

	t.Run("Total is order independent", func(t *testing.T) {
		ctx := context.Background()
		svc, repo := newTestService(t)
		repo.On("GetByID", ctx, "prod-1").Return(classic(), nil)
		repo.On("GetByID", ctx, "prod-2").Return(mango(), nil)

		// Same multiset as setup() but built in a different order.
		_, err := svc.Add(ctx, 1, "prod-2")
		require.NoError(t, err)
		require.NoError(t, svc.SetQuantity(ctx, 1, "prod-2", 3))
		_, err = svc.Add(ctx, 1, "prod-1")
		require.NoError(t, err)
		require.NoError(t, svc.SetQuantity(ctx, 1, "prod-1", 2))

		assert.Equal(t, setup(t).Total(1, 10), svc.Total(1, 10))
	})

	t.Run("Count sums units", func(t *testing.T) {
		svc := setup(t)
		assert.Equal(t, 5, svc.Count(1))
	})
}

func TestService_Clear(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	repo.On("GetByID", ctx, "prod-1").Return(classic(), nil)

	_, err := svc.Add(ctx, 1, "prod-1")
	require.NoError(t, err)

	svc.Clear(1)
	assert.Empty(t, svc.Items(1))
	assert.Equal(t, 0.0, svc.Total(1, 10))
}
