package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories/mocks"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/mail"
)

type attendanceFixture struct {
	catalog     *mocks.CatalogRepository
	subjects    *mocks.SubjectRepository
	students    *mocks.StudentRepository
	assignments *mocks.AssignmentRepository
	attendance  *mocks.AttendanceRepository
	faculty     *mocks.FacultyRepository
	mailer      *recordingMailer
	svc         *attendanceServiceImpl
}

var markDay = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func newAttendanceFixture() *attendanceFixture {
	f := &attendanceFixture{
		catalog:     &mocks.CatalogRepository{},
		subjects:    &mocks.SubjectRepository{},
		students:    &mocks.StudentRepository{},
		assignments: &mocks.AssignmentRepository{},
		attendance:  &mocks.AttendanceRepository{},
		faculty:     &mocks.FacultyRepository{},
		mailer:      &recordingMailer{},
	}
	f.faculty.On("GetByID", anyCtx, int64(21)).
		Return(&models.Faculty{ID: 21, Name: "Meera Iyer", Designation: "Lecturer", CollegeID: testCollegeID, CollegeCourseDepartmentID: testCCDID}, nil).Maybe()
	svc := NewAttendanceService(f.catalog, f.subjects, f.students, f.assignments, f.attendance,
		db.NoopTransactor{}, authzWithHOD(f.faculty), f.mailer, nopLogger)
	f.svc = svc.(*attendanceServiceImpl)
	f.svc.clock = func() time.Time { return markDay }
	return f
}

func facultyPrincipal() auth.Principal {
	return auth.Principal{UserID: 21, Email: "meera@gec.edu", RoleType: models.RoleFaculty, CollegeID: testCollegeID}
}

func TestMarkAttendance(t *testing.T) {
	f := newAttendanceFixture()
	f.students.On("GetEnrollmentByStudentID", anyCtx, int64(42)).Return(enrolledStudent(42, testCCDID), nil)
	f.students.On("GetEnrollmentByStudentID", anyCtx, int64(43)).Return(enrolledStudent(43, testCCDID), nil)
	f.subjects.On("GetSubjectByName", anyCtx, "Operating Systems").Return(&models.Subject{ID: 5, Name: "Operating Systems"}, nil).Once()
	f.attendance.On("Upsert", anyCtx, mock.MatchedBy(func(a *models.Attendance) bool {
		return a.SubjectID == 5 && a.FacultyID == 21 && a.Date.Equal(markDay)
	})).Return(nil)

	resp, err := f.svc.MarkAttendance(context.Background(), facultyPrincipal(), dto.MarkAttendanceRequest{Records: []dto.AttendanceEntry{
		{StudentID: 42, Subject: "Operating Systems", Status: "PRESENT"},
		{StudentID: 43, Subject: "Operating Systems", Status: "absent"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", resp.Date)
	assert.Equal(t, 2, resp.Saved)
	f.attendance.AssertNumberOfCalls(t, "Upsert", 2)

	sent := f.mailer.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, mail.SubjectAttendanceStatus, sent[0].Subject)
	assert.Contains(t, sent[1].Body, "Status: ABSENT")
	assert.Contains(t, sent[0].Body, "Marked by: Meera Iyer")
}

func TestMarkAttendance_UnknownStudentWritesNothing(t *testing.T) {
	f := newAttendanceFixture()
	f.students.On("GetEnrollmentByStudentID", anyCtx, int64(404)).
		Return(nil, apperrors.NotFoundf(apperrors.ErrEnrollmentNotFound, "student enrollment not found for student id: %d", 404))

	_, err := f.svc.MarkAttendance(context.Background(), facultyPrincipal(), dto.MarkAttendanceRequest{Records: []dto.AttendanceEntry{
		{StudentID: 404, Subject: "Operating Systems", Status: "PRESENT"},
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "student enrollment not found for student id: 404", apperrors.Message(err))
	f.attendance.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	assert.Empty(t, f.mailer.messages())
}

func TestMarkAttendance_FailureAfterFirstRowSendsNoMail(t *testing.T) {
	f := newAttendanceFixture()
	f.students.On("GetEnrollmentByStudentID", anyCtx, int64(42)).Return(enrolledStudent(42, testCCDID), nil)
	f.subjects.On("GetSubjectByName", anyCtx, "Operating Systems").Return(&models.Subject{ID: 5, Name: "Operating Systems"}, nil)
	f.subjects.On("GetSubjectByName", anyCtx, "Alchemy").Return(nil, apperrors.ErrSubjectNotFound)
	f.attendance.On("Upsert", anyCtx, mock.Anything).Return(nil)

	_, err := f.svc.MarkAttendance(context.Background(), facultyPrincipal(), dto.MarkAttendanceRequest{Records: []dto.AttendanceEntry{
		{StudentID: 42, Subject: "Operating Systems", Status: "PRESENT"},
		{StudentID: 42, Subject: "Alchemy", Status: "PRESENT"},
	}})
	assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
	assert.Empty(t, f.mailer.messages())
}

func TestMarkAttendance_StudentRoleRejected(t *testing.T) {
	f := newAttendanceFixture()
	p := auth.Principal{UserID: 42, RoleType: models.RoleStudent, CollegeID: testCollegeID}

	_, err := f.svc.MarkAttendance(context.Background(), p, dto.MarkAttendanceRequest{Records: []dto.AttendanceEntry{
		{StudentID: 42, Subject: "Operating Systems", Status: "PRESENT"},
	}})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestListStudents_RequiresAssignment(t *testing.T) {
	setup := func(assigned bool) *attendanceFixture {
		f := newAttendanceFixture()
		f.subjects.On("GetSubjectByName", anyCtx, "Operating Systems").Return(&models.Subject{ID: 5, Name: "Operating Systems"}, nil)
		f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(&models.Semester{ID: 13, SemesterNumber: 3}, nil)
		f.subjects.On("FindCCDSS", anyCtx, testCCDID, int64(13), int64(5)).Return(&models.CollegeCourseDepartmentSemesterSubject{ID: 305}, nil)
		f.assignments.On("Exists", anyCtx, int64(21), int64(305)).Return(assigned, nil)
		return f
	}

	t.Run("assigned", func(t *testing.T) {
		f := setup(true)
		f.students.On("ListEnrollmentsByCCDAndSemester", anyCtx, testCCDID, int64(13)).
			Return([]*models.StudentEnrollment{enrolledStudent(42, testCCDID)}, nil)

		out, err := f.svc.ListStudents(context.Background(), facultyPrincipal(), 3, "Operating Systems")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, int64(42), out[0].ID)
	})

	t.Run("not assigned", func(t *testing.T) {
		f := setup(false)
		_, err := f.svc.ListStudents(context.Background(), facultyPrincipal(), 3, "Operating Systems")
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestStudentAttendance_Summary(t *testing.T) {
	f := newAttendanceFixture()
	f.students.On("GetEnrollmentByStudentID", anyCtx, int64(42)).Return(enrolledStudent(42, testCCDID), nil)
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	f.attendance.On("ListByEnrollment", anyCtx, int64(1042), (*time.Time)(nil), (*time.Time)(nil)).Return([]*models.Attendance{
		{Date: day(14), SubjectName: "Physics", Status: models.AttendanceAbsent},
		{Date: day(14), SubjectName: "Mathematics", Status: models.AttendancePresent},
		{Date: day(13), SubjectName: "Physics", Status: models.AttendancePresent},
		{Date: day(12), SubjectName: "Physics", Status: models.AttendancePresent},
	}, nil)

	p := auth.Principal{UserID: 42, RoleType: models.RoleStudent, CollegeID: testCollegeID}
	resp, err := f.svc.StudentAttendance(context.Background(), p, nil, nil)
	require.NoError(t, err)
	require.Len(t, resp.Records, 4)
	assert.Equal(t, "2025-03-14", resp.Records[0].Date)

	require.Len(t, resp.Summary, 2)
	assert.Equal(t, dto.SubjectAttendanceSummary{Subject: "Mathematics", Present: 1, Total: 1, Percentage: 100}, resp.Summary[0])
	assert.Equal(t, dto.SubjectAttendanceSummary{Subject: "Physics", Present: 2, Total: 3, Percentage: 66.67}, resp.Summary[1])
}

func TestStudentAttendance_Errors(t *testing.T) {
	f := newAttendanceFixture()

	_, err := f.svc.StudentAttendance(context.Background(), facultyPrincipal(), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	from := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	p := auth.Principal{UserID: 42, RoleType: models.RoleStudent, CollegeID: testCollegeID}
	_, err = f.svc.StudentAttendance(context.Background(), p, &from, &to)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
