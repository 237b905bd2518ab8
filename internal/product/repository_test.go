package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumns() []string {
	return []string{"id", "name", "price", "available", "stock", "image_url", "created_at"}
}

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns()).
			AddRow("prod-1", "Classic", 20.0, true, 50, nil, time.Now()).
			AddRow("prod-2", "Mango Soya", 25.0, false, 30, "https://img/mango.png", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnRows(rows)

		products, err := repo.GetAll(context.Background())
		assert.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Classic", products[0].Name)
		assert.True(t, products[0].Available)
		assert.False(t, products[1].Available)
		require.NotNil(t, products[1].ImageURL)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetAll(context.Background())
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns()).
			AddRow("prod-1", "Classic", 20.0, true, 50, nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM products").
			WithArgs("prod-1").
			WillReturnRows(rows)

		p, err := repo.GetByID(context.Background(), "prod-1")
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, 20.0, p.Price)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(productColumns()))

		_, err := repo.GetByID(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_SetAvailability(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE products SET available").
			WithArgs(false, "prod-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetAvailability(context.Background(), "prod-1", false)
		assert.NoError(t, err)
	})

	t.Run("Idempotent re-toggle", func(t *testing.T) {
		// Same value again still matches the row; still a no-error update.
		mock.ExpectExec("UPDATE products SET available").
			WithArgs(false, "prod-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetAvailability(context.Background(), "prod-1", false)
		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectExec("UPDATE products SET available").
			WithArgs(true, "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetAvailability(context.Background(), "ghost", true)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("UPDATE products SET available").
			WillReturnError(errors.New("db error"))

		err := repo.SetAvailability(context.Background(), "prod-1", true)
		assert.Error(t, err)
	})
}
