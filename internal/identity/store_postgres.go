package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	id "coursebay/pkg/domain"
	"coursebay/pkg/platform/sentinel"
	txcontext "coursebay/pkg/platform/tx"
)

const pgUniqueViolation = "23505"

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func execer(ctx context.Context, db *sql.DB) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return db
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// PostgresAdminStore implements AdminStore over the admins and admin_courses
// tables.
type PostgresAdminStore struct {
	db *sql.DB
}

// NewPostgresAdminStore builds the production admin store.
func NewPostgresAdminStore(db *sql.DB) *PostgresAdminStore {
	return &PostgresAdminStore{db: db}
}

func (s *PostgresAdminStore) Create(ctx context.Context, admin *Admin) error {
	query := `
		INSERT INTO admins (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
	`
	_, err := execer(ctx, s.db).ExecContext(ctx, query,
		admin.ID.String(),
		admin.Name,
		admin.Email,
		admin.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("admin email taken: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (s *PostgresAdminStore) FindByID(ctx context.Context, adminID id.AdminID) (*Admin, error) {
	query := `SELECT id, name, email, password_hash FROM admins WHERE id = $1`
	admin, err := s.scanAdmin(execer(ctx, s.db).QueryRowContext(ctx, query, adminID.String()))
	if err != nil {
		return nil, err
	}
	if admin.CreatedCourseIDs, err = s.createdCourseIDs(ctx, adminID); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *PostgresAdminStore) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	query := `SELECT id, name, email, password_hash FROM admins WHERE lower(email) = lower($1)`
	admin, err := s.scanAdmin(execer(ctx, s.db).QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, err
	}
	if admin.CreatedCourseIDs, err = s.createdCourseIDs(ctx, admin.ID); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *PostgresAdminStore) scanAdmin(row *sql.Row) (*Admin, error) {
	var admin Admin
	var rawID string
	if err := row.Scan(&rawID, &admin.Name, &admin.Email, &admin.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}
	admin.ID = id.AdminID(rawID)
	return &admin, nil
}

func (s *PostgresAdminStore) createdCourseIDs(ctx context.Context, adminID id.AdminID) ([]id.CourseID, error) {
	query := `SELECT course_id FROM admin_courses WHERE admin_id = $1 ORDER BY position`
	rows, err := execer(ctx, s.db).QueryContext(ctx, query, adminID.String())
	if err != nil {
		return nil, fmt.Errorf("query admin courses: %w", err)
	}
	defer rows.Close()

	var courseIDs []id.CourseID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan admin course: %w", err)
		}
		courseIDs = append(courseIDs, id.CourseID(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin courses: %w", err)
	}
	return courseIDs, nil
}

func (s *PostgresAdminStore) AppendCreatedCourse(ctx context.Context, adminID id.AdminID, courseID id.CourseID) error {
	query := `INSERT INTO admin_courses (admin_id, course_id) VALUES ($1, $2)`
	if _, err := execer(ctx, s.db).ExecContext(ctx, query, adminID.String(), courseID.String()); err != nil {
		return fmt.Errorf("append admin course: %w", err)
	}
	return nil
}

func (s *PostgresAdminStore) RemoveCreatedCourse(ctx context.Context, adminID id.AdminID, courseID id.CourseID) error {
	query := `DELETE FROM admin_courses WHERE admin_id = $1 AND course_id = $2`
	if _, err := execer(ctx, s.db).ExecContext(ctx, query, adminID.String(), courseID.String()); err != nil {
		return fmt.Errorf("remove admin course: %w", err)
	}
	return nil
}

// PostgresUserStore implements UserStore over the users and user_courses
// tables.
type PostgresUserStore struct {
	db *sql.DB
}

// NewPostgresUserStore builds the production user store.
func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
	`
	_, err := execer(ctx, s.db).ExecContext(ctx, query,
		user.ID.String(),
		user.Name,
		user.Email,
		user.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user email taken: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) FindByID(ctx context.Context, userID id.UserID) (*User, error) {
	query := `SELECT id, name, email, password_hash FROM users WHERE id = $1`
	user, err := s.scanUser(execer(ctx, s.db).QueryRowContext(ctx, query, userID.String()))
	if err != nil {
		return nil, err
	}
	if user.PurchasedCourseIDs, err = s.purchasedCourseIDs(ctx, userID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, name, email, password_hash FROM users WHERE lower(email) = lower($1)`
	user, err := s.scanUser(execer(ctx, s.db).QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, err
	}
	if user.PurchasedCourseIDs, err = s.purchasedCourseIDs(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *PostgresUserStore) scanUser(row *sql.Row) (*User, error) {
	var user User
	var rawID string
	if err := row.Scan(&rawID, &user.Name, &user.Email, &user.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.ID = id.UserID(rawID)
	return &user, nil
}

func (s *PostgresUserStore) purchasedCourseIDs(ctx context.Context, userID id.UserID) ([]id.CourseID, error) {
	query := `SELECT course_id FROM user_courses WHERE user_id = $1 ORDER BY position`
	rows, err := execer(ctx, s.db).QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("query user courses: %w", err)
	}
	defer rows.Close()

	var courseIDs []id.CourseID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan user course: %w", err)
		}
		courseIDs = append(courseIDs, id.CourseID(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user courses: %w", err)
	}
	return courseIDs, nil
}

func (s *PostgresUserStore) AppendPurchasedCourse(ctx context.Context, userID id.UserID, courseID id.CourseID) error {
	query := `INSERT INTO user_courses (user_id, course_id) VALUES ($1, $2)`
	if _, err := execer(ctx, s.db).ExecContext(ctx, query, userID.String(), courseID.String()); err != nil {
		return fmt.Errorf("append user course: %w", err)
	}
	return nil
}
