package contract

import (
	"context"

	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// DataManager aggregates all repository interfaces of the delivery ledger
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Delivery() DeliveryRepo
}

// DeliveryRepo defines the contract for the reminder delivery ledger
type DeliveryRepo interface {
	// Record stores a delivery. Recording the same (user, slot, date) twice
	// returns an error from the unique constraint.
	Record(delivery *entity.Delivery) error

	// Exists reports whether a reminder for the slot already fired on the
	// given calendar date (YYYY-MM-DD).
	Exists(userID string, week, weekday, period int, firedOn string) (bool, error)

	// ListByUser returns the user's deliveries, newest first, up to limit.
	ListByUser(userID string, limit int) ([]*entity.Delivery, error)

	// PurgeBefore removes ledger rows fired before the given date and
	// returns the number of rows removed.
	PurgeBefore(firedOn string) (int64, error)
}
