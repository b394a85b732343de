package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/logger"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository    *CollegeRepository
	CatalogRepository    *CatalogRepository
	SubjectRepository    *SubjectRepository
	FacultyRepository    *FacultyRepository
	StudentRepository    *StudentRepository
	AssignmentRepository *AssignmentRepository
	AttendanceRepository *AttendanceRepository
	LegacyRepository     *LegacyRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn db.DBTX) *Repositories {
	return &Repositories{
		CollegeRepository:    NewCollegeRepository(conn),
		CatalogRepository:    NewCatalogRepository(conn),
		SubjectRepository:    NewSubjectRepository(conn),
		FacultyRepository:    NewFacultyRepository(conn),
		StudentRepository:    NewStudentRepository(conn),
		AssignmentRepository: NewAssignmentRepository(conn),
		AttendanceRepository: NewAttendanceRepository(conn),
		LegacyRepository:     NewLegacyRepository(conn),
	}
}

// scanner is satisfied by pgx.Row and pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

// baseRepository carries the connection and the dollar-placeholder builder
type baseRepository struct {
	conn db.DBTX
	sb   squirrel.StatementBuilderType
}

func newBaseRepository(conn db.DBTX) baseRepository {
	return baseRepository{
		conn: conn,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// q returns the transaction bound to ctx, or the pool
func (b baseRepository) q(ctx context.Context) db.DBTX {
	return db.Conn(ctx, b.conn)
}

// findOrCreate inserts a row guarded by a unique constraint and returns its id.
// When the row already exists the lookup query supplies the id and created is false.
func (b baseRepository) findOrCreate(ctx context.Context, what string, insert squirrel.InsertBuilder, lookup squirrel.SelectBuilder) (id int64, created bool, err error) {
	sql, args, err := insert.Suffix("ON CONFLICT DO NOTHING RETURNING id").ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("failed to build insert %s query: %w", what, err)
	}

	err = b.q(ctx).QueryRow(ctx, sql, args...).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("entity", what).Msg("Error inserting row")
		return 0, false, fmt.Errorf("error creating %s: %w", what, err)
	}

	sql, args, err = lookup.Limit(1).ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("failed to build lookup %s query: %w", what, err)
	}
	if err := b.q(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("entity", what).Msg("Error looking up existing row")
		return 0, false, fmt.Errorf("error finding %s: %w", what, err)
	}
	return id, false, nil
}

// exists runs SELECT EXISTS over the given builder
func (b baseRepository) exists(ctx context.Context, sel squirrel.SelectBuilder) (bool, error) {
	sql, args, err := sel.Prefix("SELECT EXISTS (").Suffix(")").Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var found bool
	if err := b.q(ctx).QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("error checking existence: %w", err)
	}
	return found, nil
}

// mapNoRows converts pgx.ErrNoRows into notFound
func mapNoRows(err, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return err
}
