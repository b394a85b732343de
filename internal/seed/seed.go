// Package seed inserts the reference data every installation needs.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/repositories"
)

// Course is a seeded course and its length
type Course struct {
	Name           string
	TotalSemesters int
}

// DefaultCourses are offered to every college
var DefaultCourses = []Course{
	{Name: "B.Tech", TotalSemesters: 8},
	{Name: "M.Tech", TotalSemesters: 4},
	{Name: "BCA", TotalSemesters: 6},
	{Name: "MCA", TotalSemesters: 4},
	{Name: "B.Sc", TotalSemesters: 6},
	{Name: "MBA", TotalSemesters: 4},
}

// MaxSemester is the highest seeded semester number
const MaxSemester = 10

// CreateDefaultData upserts courses, semesters 1..MaxSemester and the "none"
// department. It is idempotent and keeps going after individual failures.
func CreateDefaultData(ctx context.Context, catalog repositories.ICatalogRepository, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (courses, semesters, departments)...")
	var finalErr error

	for _, c := range DefaultCourses {
		if _, err := catalog.UpsertCourse(ctx, c.Name, c.TotalSemesters); err != nil {
			lgr.Error().Err(err).Str("course", c.Name).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, fmt.Errorf("course %s: %w", c.Name, err))
		}
	}

	for n := 1; n <= MaxSemester; n++ {
		if _, err := catalog.EnsureSemester(ctx, n); err != nil {
			lgr.Error().Err(err).Int("semester", n).Msg("Error seeding semester")
			finalErr = errors.Join(finalErr, fmt.Errorf("semester %d: %w", n, err))
		}
	}

	if _, err := catalog.FindOrCreateDepartment(ctx, models.NoneDepartment); err != nil {
		lgr.Error().Err(err).Msg("Error seeding placeholder department")
		finalErr = errors.Join(finalErr, fmt.Errorf("department %s: %w", models.NoneDepartment, err))
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data is in place")
	}
	return finalErr
}
