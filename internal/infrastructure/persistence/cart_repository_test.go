package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walkout/backend/internal/domain/checkout"
	"github.com/walkout/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCartRepo creates a repository backed by a mocked database
func newMockCartRepo(t *testing.T) (*GormCartRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCartRepository(gormDB), mock, mockDB
}

func TestCartRepository_UpdateQuantity(t *testing.T) {
	t.Run("updates when expected quantity matches", func(t *testing.T) {
		repo, mock, mockDB := newMockCartRepo(t)
		defer mockDB.Close()

		itemID := uuid.New()
		mock.ExpectExec(`UPDATE "cart_items" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateQuantity(context.Background(), itemID, 2, 3)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports conflict when another writer got there first", func(t *testing.T) {
		repo, mock, mockDB := newMockCartRepo(t)
		defer mockDB.Close()

		itemID := uuid.New()
		mock.ExpectExec(`UPDATE "cart_items" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateQuantity(context.Background(), itemID, 2, 3)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartRepository_DeleteItem(t *testing.T) {
	t.Run("deletes when expected quantity matches", func(t *testing.T) {
		repo, mock, mockDB := newMockCartRepo(t)
		defer mockDB.Close()

		itemID := uuid.New()
		mock.ExpectExec(`DELETE FROM "cart_items"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteItem(context.Background(), itemID, 1)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports conflict when quantity changed underneath", func(t *testing.T) {
		repo, mock, mockDB := newMockCartRepo(t)
		defer mockDB.Close()

		itemID := uuid.New()
		mock.ExpectExec(`DELETE FROM "cart_items"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteItem(context.Background(), itemID, 1)

		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartRepository_CreateItem(t *testing.T) {
	t.Run("maps unique constraint violation to already exists", func(t *testing.T) {
		repo, mock, mockDB := newMockCartRepo(t)
		defer mockDB.Close()

		item, err := checkout.NewCartItem(uuid.New(), uuid.New(), 1, decimal.NewFromFloat(3.50))
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "cart_items"`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "idx_cart_session_product"`))

		err = repo.CreateItem(context.Background(), item)

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("passes through other database errors", func(t *testing.T) {
		repo, mock, mockDB := newMockCartRepo(t)
		defer mockDB.Close()

		item, err := checkout.NewCartItem(uuid.New(), uuid.New(), 1, decimal.NewFromFloat(3.50))
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "cart_items"`).
			WillReturnError(errors.New("pq: connection refused"))

		err = repo.CreateItem(context.Background(), item)

		require.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestCartRepository_FindItem(t *testing.T) {
	t.Run("maps missing row to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockCartRepo(t)
		defer mockDB.Close()

		sessionID := uuid.New()
		productID := uuid.New()
		mock.ExpectQuery(`SELECT .* FROM "cart_items"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindItem(context.Background(), sessionID, productID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns the stored line item", func(t *testing.T) {
		repo, mock, mockDB := newMockCartRepo(t)
		defer mockDB.Close()

		itemID := uuid.New()
		sessionID := uuid.New()
		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "session_id", "product_id", "quantity", "price_at_pickup"}).
			AddRow(itemID, sessionID, productID, 2, "3.50")
		mock.ExpectQuery(`SELECT .* FROM "cart_items"`).
			WillReturnRows(rows)

		item, err := repo.FindItem(context.Background(), sessionID, productID)

		require.NoError(t, err)
		assert.Equal(t, itemID, item.ID)
		assert.Equal(t, 2, item.Quantity)
		assert.True(t, item.PriceAtPickup.Equal(decimal.NewFromFloat(3.50)))
	})
}

func TestCartRepository_Snapshot(t *testing.T) {
	repo, mock, mockDB := newMockCartRepo(t)
	defer mockDB.Close()

	sessionID := uuid.New()
	productA := uuid.New()
	productB := uuid.New()

	rows := sqlmock.NewRows([]string{"product_id", "name", "quantity", "price_at_pickup"}).
		AddRow(productA, "Trail Mix 200g", 2, "3.50").
		AddRow(productB, "Protein Bar", 1, "2.25")
	mock.ExpectQuery(`SELECT .* FROM "cart_items" JOIN products`).
		WillReturnRows(rows)

	snapshot, err := repo.Snapshot(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Equal(t, sessionID, snapshot.SessionID)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, "Trail Mix 200g", snapshot.Items[0].Name)
	assert.True(t, snapshot.CurrentTotal.Equal(decimal.NewFromFloat(9.25)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_Snapshot_EmptyCart(t *testing.T) {
	repo, mock, mockDB := newMockCartRepo(t)
	defer mockDB.Close()

	sessionID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "cart_items" JOIN products`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity", "price_at_pickup"}))

	snapshot, err := repo.Snapshot(context.Background(), sessionID)

	require.NoError(t, err)
	assert.NotNil(t, snapshot.Items)
	assert.Empty(t, snapshot.Items)
	assert.True(t, snapshot.CurrentTotal.IsZero())
}
