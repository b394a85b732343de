package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/dberrors"
	"github.com/yigit/ams/internal/pkg/logger"
)

// CollegeRepository handles college database operations
type CollegeRepository struct {
	baseRepository
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(conn db.DBTX) *CollegeRepository {
	return &CollegeRepository{baseRepository: newBaseRepository(conn)}
}

var collegeColumns = []string{"id", "college_name", "email", "password", "college_type", "created_at"}

func scanCollege(row scanner) (*models.College, error) {
	c := &models.College{}
	if err := row.Scan(&c.ID, &c.CollegeName, &c.Email, &c.Password, &c.CollegeType, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a college and returns its id
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) (int64, error) {
	sql, args, err := r.sb.Insert("colleges").
		Columns("college_name", "email", "password", "college_type").
		Values(college.CollegeName, college.Email, college.Password, college.CollegeType).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create college query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&college.ID, &college.CreatedAt); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "colleges_college_name_key"):
			return 0, apperrors.ErrCollegeNameExists
		case dberrors.IsDuplicateConstraintError(err, "colleges_email_key"):
			return 0, apperrors.ErrCollegeEmailExists
		}
		logger.Error().Err(err).Str("email", college.Email).Msg("Error executing create college query")
		return 0, fmt.Errorf("error creating college: %w", err)
	}

	return college.ID, nil
}

func (r *CollegeRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.College, error) {
	sql, args, err := r.sb.Select(collegeColumns...).From("colleges").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get college query: %w", err)
	}

	college, err := scanCollege(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err, apperrors.ErrCollegeNotFound)
	}
	return college, nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a college by login email
func (r *CollegeRepository) GetByEmail(ctx context.Context, email string) (*models.College, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// ExistsByName reports whether a college name is taken
func (r *CollegeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.exists(ctx, r.sb.Select("1").From("colleges").Where(squirrel.Eq{"college_name": name}))
}

// ExistsByEmail reports whether a college email is taken
func (r *CollegeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, r.sb.Select("1").From("colleges").Where(squirrel.Eq{"email": email}))
}
