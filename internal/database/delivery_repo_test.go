package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teheiw192/kcjqr/internal/domain/contract"
	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

func testDelivery(userID string, period int, firedOn string) *entity.Delivery {
	return &entity.Delivery{
		UserID:  userID,
		Week:    1,
		Weekday: 1,
		Period:  period,
		FiredOn: firedOn,
	}
}

func TestDeliveryRepo_RecordAndExists(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	delivery := testDelivery("42", 1, "2024-09-02")
	err := dm.Delivery().Record(delivery)

	require.NoError(t, err)
	assert.Positive(t, delivery.ID)

	exists, err := dm.Delivery().Exists("42", 1, 1, 1, "2024-09-02")
	require.NoError(t, err)
	assert.True(t, exists)

	tests := []struct {
		name    string
		userID  string
		week    int
		weekday int
		period  int
		firedOn string
	}{
		{name: "Should not match a different user", userID: "43", week: 1, weekday: 1, period: 1, firedOn: "2024-09-02"},
		{name: "Should not match a different week", userID: "42", week: 2, weekday: 1, period: 1, firedOn: "2024-09-02"},
		{name: "Should not match a different weekday", userID: "42", week: 1, weekday: 2, period: 1, firedOn: "2024-09-02"},
		{name: "Should not match a different period", userID: "42", week: 1, weekday: 1, period: 2, firedOn: "2024-09-02"},
		{name: "Should not match a different date", userID: "42", week: 1, weekday: 1, period: 1, firedOn: "2024-09-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := dm.Delivery().Exists(tt.userID, tt.week, tt.weekday, tt.period, tt.firedOn)

			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestDeliveryRepo_DuplicateSlotRejected(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	require.NoError(t, dm.Delivery().Record(testDelivery("42", 1, "2024-09-02")))

	// same user, slot and date violates the unique index
	err := dm.Delivery().Record(testDelivery("42", 1, "2024-09-02"))
	assert.Error(t, err)

	// the same slot on another date is a fresh delivery
	assert.NoError(t, dm.Delivery().Record(testDelivery("42", 1, "2024-09-09")))
}

func TestDeliveryRepo_ListByUser(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	require.NoError(t, dm.Delivery().Record(testDelivery("42", 1, "2024-09-02")))
	require.NoError(t, dm.Delivery().Record(testDelivery("42", 2, "2024-09-02")))
	require.NoError(t, dm.Delivery().Record(testDelivery("42", 3, "2024-09-03")))
	require.NoError(t, dm.Delivery().Record(testDelivery("99", 1, "2024-09-02")))

	deliveries, err := dm.Delivery().ListByUser("42", 10)

	require.NoError(t, err)
	require.Len(t, deliveries, 3)
	// newest first
	assert.Equal(t, 3, deliveries[0].Period)
	for _, d := range deliveries {
		assert.Equal(t, "42", d.UserID)
		assert.False(t, d.CreatedAt.IsZero())
	}

	limited, err := dm.Delivery().ListByUser("42", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := dm.Delivery().ListByUser("nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeliveryRepo_PurgeBefore(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	require.NoError(t, dm.Delivery().Record(testDelivery("42", 1, "2024-08-20")))
	require.NoError(t, dm.Delivery().Record(testDelivery("42", 2, "2024-08-25")))
	require.NoError(t, dm.Delivery().Record(testDelivery("42", 3, "2024-09-02")))

	removed, err := dm.Delivery().PurgeBefore("2024-09-01")

	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	remaining, err := dm.Delivery().ListByUser("42", 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "2024-09-02", remaining[0].FiredOn)

	// nothing older than the cutoff is left
	removed, err = dm.Delivery().PurgeBefore("2024-09-01")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	ctx := context.Background()

	t.Run("Should commit on success", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Delivery().Record(testDelivery("tx-ok", 1, "2024-09-02")); err != nil {
				return err
			}
			return tx.Delivery().Record(testDelivery("tx-ok", 2, "2024-09-02"))
		})
		require.NoError(t, err)

		deliveries, err := dm.Delivery().ListByUser("tx-ok", 10)
		require.NoError(t, err)
		assert.Len(t, deliveries, 2)
	})

	t.Run("Should roll back on error", func(t *testing.T) {
		txErr := errors.New("abort")
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Delivery().Record(testDelivery("tx-fail", 1, "2024-09-02")); err != nil {
				return err
			}
			return txErr
		})
		assert.ErrorIs(t, err, txErr)

		deliveries, err := dm.Delivery().ListByUser("tx-fail", 10)
		require.NoError(t, err)
		assert.Empty(t, deliveries)
	})
}
