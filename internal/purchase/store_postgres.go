package purchase

import (
	"context"
	"database/sql"
	"fmt"

	id "coursebay/pkg/domain"
	txcontext "coursebay/pkg/platform/tx"
)

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func execer(ctx context.Context, db *sql.DB) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return db
}

// PostgresStore implements Store over the purchases table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore builds the production purchase store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, p *Purchase) error {
	query := `
		INSERT INTO purchases (id, purchaser_id, course_id, purchased_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := execer(ctx, s.db).ExecContext(ctx, query,
		p.ID.String(),
		p.PurchaserID.String(),
		p.CourseID.String(),
		p.Date,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByPurchaser(ctx context.Context, userID id.UserID) ([]Purchase, error) {
	query := `
		SELECT id, purchaser_id, course_id, purchased_at
		FROM purchases
		WHERE purchaser_id = $1
		ORDER BY purchased_at, id
	`
	rows, err := execer(ctx, s.db).QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []Purchase
	for rows.Next() {
		var p Purchase
		var rawID, rawPurchaser, rawCourse string
		if err := rows.Scan(&rawID, &rawPurchaser, &rawCourse, &p.Date); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		p.ID = id.PurchaseID(rawID)
		p.PurchaserID = id.UserID(rawPurchaser)
		p.CourseID = id.CourseID(rawCourse)
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchases: %w", err)
	}
	return purchases, nil
}
