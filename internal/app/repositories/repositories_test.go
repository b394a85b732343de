package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/pkg/apperrors"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestFindOrCreateSubject_InsertsNewRow(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subjects (name) VALUES ($1) ON CONFLICT DO NOTHING RETURNING id")).
		WithArgs("Mathematics").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	id, created, err := NewSubjectRepository(mock).FindOrCreateSubject(context.Background(), "Mathematics")

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateSubject_ReturnsExistingRow(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subjects (name) VALUES ($1) ON CONFLICT DO NOTHING RETURNING id")).
		WithArgs("Mathematics").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM subjects WHERE name = $1 LIMIT 1")).
		WithArgs("Mathematics").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, created, err := NewSubjectRepository(mock).FindOrCreateSubject(context.Background(), "Mathematics")

	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateSubject_InsertFailure(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery("INSERT INTO subjects").
		WithArgs("Mathematics").
		WillReturnError(errors.New("connection reset"))

	_, created, err := NewSubjectRepository(mock).FindOrCreateSubject(context.Background(), "Mathematics")

	assert.Error(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeExistsByName(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT EXISTS \(\s*SELECT 1 FROM colleges WHERE college_name = \$1 LIMIT 1\s*\)`).
		WithArgs("Springfield College").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	found, err := NewCollegeRepository(mock).ExistsByName(context.Background(), "Springfield College")

	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentExists_NotFound(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(`SELECT EXISTS \(\s*SELECT 1 FROM faculty_assignments WHERE ccdss_id = \$1 AND faculty_id = \$2 LIMIT 1\s*\)`).
		WithArgs(int64(11), int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	found, err := NewAssignmentRepository(mock).Exists(context.Background(), 3, 11)

	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceUpsert(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendance (student_enrollment_id,subject_id,faculty_id,attendance_date,status) "+
		"VALUES ($1,$2,$3,$4::date,$5) ON CONFLICT (student_enrollment_id, subject_id, attendance_date) "+
		"DO UPDATE SET status = EXCLUDED.status, faculty_id = EXCLUDED.faculty_id RETURNING id")).
		WithArgs(int64(7), int64(2), int64(4), "2024-03-05", "PRESENT").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(31)))

	a := &models.Attendance{
		StudentEnrollmentID: 7,
		SubjectID:           2,
		FacultyID:           4,
		Date:                time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC),
		Status:              models.AttendancePresent,
	}
	err := NewAttendanceRepository(mock).Upsert(context.Background(), a)

	require.NoError(t, err)
	assert.Equal(t, int64(31), a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceListByEnrollment_FiltersByCalendarDay(t *testing.T) {
	mock := newMockPool(t)
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.student_enrollment_id = $1 AND a.attendance_date >= $2::date AND a.attendance_date <= $3::date")).
		WithArgs(int64(7), "2024-03-01", "2024-03-31").
		WillReturnRows(pgxmock.NewRows([]string{"id", "student_enrollment_id", "subject_id", "faculty_id",
			"attendance_date", "status", "name", "faculty_name"}).
			AddRow(int64(31), int64(7), int64(2), int64(4), day, "ABSENT", "Mathematics", "Dr. Rao"))

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	list, err := NewAttendanceRepository(mock).ListByEnrollment(context.Background(), 7, &from, &to)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.AttendanceAbsent, list[0].Status)
	assert.Equal(t, "Mathematics", list[0].SubjectName)
	assert.Equal(t, day, list[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCollegeCourseDepartment_MapsForeignKeyViolation(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM college_course_departments WHERE college_course_id = $1 AND department_id = $2")).
		WithArgs(int64(1), int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "faculty_ccd_id_fkey"})

	removed, err := NewCatalogRepository(mock).DeleteCollegeCourseDepartment(context.Background(), 1, 2)

	assert.ErrorIs(t, err, apperrors.ErrDepartmentHasStaff)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCollegeCourseDepartment(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "removed", affected: 1, want: true},
		{name: "no mapping", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			mock.ExpectExec("DELETE FROM college_course_departments").
				WithArgs(int64(1), int64(2)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			removed, err := NewCatalogRepository(mock).DeleteCollegeCourseDepartment(context.Background(), 1, 2)

			require.NoError(t, err)
			assert.Equal(t, tt.want, removed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
