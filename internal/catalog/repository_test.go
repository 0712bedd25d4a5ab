package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository(DefaultProducts())
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 10)

	p, err := repo.Get(ctx, "fr-001")
	require.NoError(t, err)
	assert.Equal(t, "Fresh Bananas", p.Name)

	_, err = repo.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestPostgresRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)
	cols := []string{"id", "name", "price", "image_url", "category"}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, price, image_url, category FROM products").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("fr-001", "Fresh Bananas", "12.50", "/images/bananas.jpg", "Fruits").
				AddRow("st-001", "Jasmine Rice (5kg)", "95.00", "/images/rice.jpg", "Staples"))

		list, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "12.50", list[0].Price.StringFixed(2))
		assert.Equal(t, "Staples", list[1].Category)
	})

	t.Run("Bad price", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, price").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("x", "X", "twelve", "", ""))

		_, err := repo.List(context.Background())
		assert.Error(t, err)
	})

	t.Run("Query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, price").WillReturnError(errors.New("db down"))

		_, err := repo.List(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, name, price, image_url, category FROM products WHERE id").
		WithArgs("dr-001").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image_url", "category"}).
			AddRow("dr-001", "Fresh Milk (1L)", "16.00", "/images/milk.jpg", "Dairy"))

	p, err := repo.Get(context.Background(), "dr-001")
	require.NoError(t, err)
	assert.Equal(t, "Fresh Milk (1L)", p.Name)

	mock.ExpectQuery("SELECT id, name, price").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image_url", "category"}))

	_, err = repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilter(t *testing.T) {
	products := DefaultProducts()

	assert.Len(t, Filter(products, ""), len(products))
	assert.Len(t, Filter(products, "   "), len(products))

	got := Filter(products, "EGG")
	require.Len(t, got, 2)
	assert.Equal(t, "Garden Eggs", got[0].Name)
	assert.Equal(t, "Farm Eggs (crate)", got[1].Name)

	assert.Empty(t, Filter(products, "chocolate"))
}

func TestProduct_LineItem(t *testing.T) {
	p := DefaultProducts()[0]
	li := p.LineItem()
	assert.Equal(t, p.ID, li.ID)
	assert.Equal(t, 1, li.Quantity)
	assert.True(t, p.Price.Equal(li.Price))
}
