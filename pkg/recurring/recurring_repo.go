package recurring

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/centsible/centsible/pkg/money"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	GetAll(ctx context.Context, userId int) ([]RecurringItem, error)
	Get(ctx context.Context, userId int, id string) (RecurringItem, error)
	Store(ctx context.Context, userId int, item RecurringItem) error
	Delete(ctx context.Context, userId int, id string) (bool, error)
	// UpdateLastGenerated advances the idempotency marker after the produced
	// transactions were stored.
	UpdateLastGenerated(ctx context.Context, userId int, id string, lastGenerated string) error
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]RecurringItem, error) {
	query := `SELECT id, label, amount_cents, tx_type, category, frequency, start_date, duration_months, last_generated
			FROM recurring_items WHERE user_id = $1 ORDER BY start_date, label`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query recurring items: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var items []RecurringItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return items, nil
}

func (r *RepoImpl) Get(ctx context.Context, userId int, id string) (RecurringItem, error) {
	query := `SELECT id, label, amount_cents, tx_type, category, frequency, start_date, duration_months, last_generated
			FROM recurring_items WHERE user_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, userId, id)
	item, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return RecurringItem{}, ErrNotFound
		}
		err := fmt.Errorf("could not get recurring item: %w", err)
		log.Error(err)
		return RecurringItem{}, err
	}
	return item, nil
}

func (r *RepoImpl) Store(ctx context.Context, userId int, item RecurringItem) error {
	query := `INSERT INTO recurring_items (id, user_id, label, amount_cents, tx_type, category, frequency, start_date, duration_months, last_generated)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	var lastGenerated sql.NullString
	if item.LastGenerated != "" {
		lastGenerated = sql.NullString{String: item.LastGenerated, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		userId,
		item.Label,
		item.Amount.Cents,
		item.Type,
		item.Category,
		item.Frequency,
		item.StartDate,
		item.DurationMonths,
		lastGenerated,
	)
	if err != nil {
		err := fmt.Errorf("could not store recurring item: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, id string) (bool, error) {
	query := `DELETE FROM recurring_items WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete recurring item: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *RepoImpl) UpdateLastGenerated(ctx context.Context, userId int, id string, lastGenerated string) error {
	query := `UPDATE recurring_items SET last_generated = $1 WHERE id = $2 AND user_id = $3`
	_, err := r.db.ExecContext(ctx, query, lastGenerated, id, userId)
	if err != nil {
		err := fmt.Errorf("could not update last generated date: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (RecurringItem, error) {
	var item RecurringItem
	var cents int64
	var lastGenerated sql.NullString
	err := row.Scan(
		&item.ID,
		&item.Label,
		&cents,
		&item.Type,
		&item.Category,
		&item.Frequency,
		&item.StartDate,
		&item.DurationMonths,
		&lastGenerated,
	)
	if err != nil {
		return RecurringItem{}, err
	}
	item.Amount = money.FromCents(cents)
	if lastGenerated.Valid {
		item.LastGenerated = lastGenerated.String
	}
	return item, nil
}
