package course

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	id "coursebay/pkg/domain"
	"coursebay/pkg/platform/sentinel"
	txcontext "coursebay/pkg/platform/tx"
)

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore implements Store over the courses table. Content lives in a
// JSONB column as one ordered array, matching the read-modify-write shape of
// content edits.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore builds the production course store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Create(ctx context.Context, course *Course) error {
	content, err := json.Marshal(course.Content)
	if err != nil {
		return fmt.Errorf("marshal course content: %w", err)
	}
	query := `
		INSERT INTO courses (id, name, description, author, cost, creator_id, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.execer(ctx).ExecContext(ctx, query,
		course.ID.String(),
		course.Name,
		course.Description,
		course.Author,
		course.Cost,
		course.CreatorID.String(),
		content,
	)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, courseID id.CourseID) (*Course, error) {
	query := `
		SELECT id, name, description, author, cost, creator_id, content
		FROM courses
		WHERE id = $1
	`
	row := s.execer(ctx).QueryRowContext(ctx, query, courseID.String())
	course, err := scanCourse(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course not found: %w", sentinel.ErrNotFound)
		}
		return nil, err
	}
	return course, nil
}

func (s *PostgresStore) Delete(ctx context.Context, courseID id.CourseID) error {
	query := `DELETE FROM courses WHERE id = $1`
	res, err := s.execer(ctx).ExecContext(ctx, query, courseID.String())
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete course rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("course not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) ReplaceContent(ctx context.Context, courseID id.CourseID, content []ContentItem) error {
	if content == nil {
		content = []ContentItem{}
	}
	encoded, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("marshal course content: %w", err)
	}
	query := `UPDATE courses SET content = $2 WHERE id = $1`
	res, err := s.execer(ctx).ExecContext(ctx, query, courseID.String(), encoded)
	if err != nil {
		return fmt.Errorf("update course content: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update course content rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("course not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Course, error) {
	query := `
		SELECT id, name, description, author, cost, creator_id, content
		FROM courses
		ORDER BY created_at
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		course, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return courses, nil
}

func scanCourse(scan func(dest ...any) error) (*Course, error) {
	var course Course
	var rawID, rawCreator string
	var rawContent []byte
	if err := scan(&rawID, &course.Name, &course.Description, &course.Author, &course.Cost, &rawCreator, &rawContent); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan course: %w", err)
	}
	course.ID = id.CourseID(rawID)
	course.CreatorID = id.AdminID(rawCreator)
	if err := json.Unmarshal(rawContent, &course.Content); err != nil {
		return nil, fmt.Errorf("unmarshal course content: %w", err)
	}
	return &course, nil
}
