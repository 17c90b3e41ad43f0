package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/centsible/centsible/pkg/money"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	// GetAll returns the user's transactions newest-first.
	GetAll(ctx context.Context, userId int) ([]Transaction, error)
	Store(ctx context.Context, userId int, tx Transaction) error
	Delete(ctx context.Context, userId int, id string) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Transaction, error) {
	query := `SELECT id, tx_date, label, amount_cents, tx_type, category
			FROM transactions WHERE user_id = $1 ORDER BY tx_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		var tx Transaction
		var cents int64
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Label, &cents, &tx.Type, &tx.Category); err != nil {
			err := fmt.Errorf("could not scan transaction: %w", err)
			log.Error(err)
			return nil, err
		}
		tx.Amount = money.FromCents(cents)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return txs, nil
}

func (r *RepoImpl) Store(ctx context.Context, userId int, tx Transaction) error {
	query := `INSERT INTO transactions (id, user_id, tx_date, label, amount_cents, tx_type, category)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		userId,
		tx.Date,
		tx.Label,
		tx.Amount.Cents,
		tx.Type,
		tx.Category,
	)
	if err != nil {
		err := fmt.Errorf("could not store transaction: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, id string) (bool, error) {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not delete transaction: %w", err)
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
