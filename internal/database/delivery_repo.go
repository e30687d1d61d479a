package database

import (
	"fmt"

	"github.com/teheiw192/kcjqr/internal/domain/contract"
	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

type deliveryRepo struct {
	db dbConn
}

func newDeliveryRepo(db dbConn) contract.DeliveryRepo {
	return &deliveryRepo{db: db}
}

func (r *deliveryRepo) Record(delivery *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (user_id, week, weekday, period, fired_on)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		delivery.UserID,
		delivery.Week,
		delivery.Weekday,
		delivery.Period,
		delivery.FiredOn,
	)
	if err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	delivery.ID = id
	return nil
}

func (r *deliveryRepo) Exists(userID string, week, weekday, period int, firedOn string) (bool, error) {
	query := `
		SELECT COUNT(1)
		FROM deliveries
		WHERE user_id = ? AND week = ? AND weekday = ? AND period = ? AND fired_on = ?
	`

	var count int
	err := r.db.QueryRow(query, userID, week, weekday, period, firedOn).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check delivery: %w", err)
	}

	return count > 0, nil
}

func (r *deliveryRepo) ListByUser(userID string, limit int) ([]*entity.Delivery, error) {
	query := `
		SELECT id, user_id, week, weekday, period, fired_on, created_at
		FROM deliveries
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []*entity.Delivery
	for rows.Next() {
		delivery := &entity.Delivery{}
		err := rows.Scan(
			&delivery.ID,
			&delivery.UserID,
			&delivery.Week,
			&delivery.Weekday,
			&delivery.Period,
			&delivery.FiredOn,
			&delivery.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, delivery)
	}

	return deliveries, nil
}

func (r *deliveryRepo) PurgeBefore(firedOn string) (int64, error) {
	query := `DELETE FROM deliveries WHERE fired_on < ?`

	result, err := r.db.Exec(query, firedOn)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deliveries: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get purged row count: %w", err)
	}

	return removed, nil
}
