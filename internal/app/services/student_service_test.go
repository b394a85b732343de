package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories/mocks"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/mail"
)

type studentFixture struct {
	colleges *mocks.CollegeRepository
	catalog  *mocks.CatalogRepository
	students *mocks.StudentRepository
	faculty  *mocks.FacultyRepository
	mailer   *recordingMailer
	svc      StudentService
}

func newStudentFixture() *studentFixture {
	f := &studentFixture{
		colleges: &mocks.CollegeRepository{},
		catalog:  &mocks.CatalogRepository{},
		students: &mocks.StudentRepository{},
		faculty:  &mocks.FacultyRepository{},
		mailer:   &recordingMailer{},
	}
	f.svc = NewStudentService(f.colleges, f.catalog, f.students, db.NoopTransactor{}, authzWithHOD(f.faculty), f.mailer, "", nopLogger)
	f.colleges.On("GetByID", anyCtx, testCollegeID).Return(testCollege(), nil).Maybe()
	return f
}

func registerStudentRequest() dto.RegisterStudentRequest {
	return dto.RegisterStudentRequest{
		Name:          "Ravi Kumar",
		Email:         "ravi@gec.edu",
		Number:        "9876500000",
		ParentsNumber: "9876511111",
		Course:        "B.Tech",
		Department:    "Computer Science",
		Semester:      3,
	}
}

func enrolledStudent(id int64, ccdID int64) *models.StudentEnrollment {
	return &models.StudentEnrollment{
		ID:                        id + 1000,
		StudentID:                 id,
		CollegeCourseDepartmentID: ccdID,
		SemesterID:                13,
		SemesterNumber:            3,
		CollegeID:                 testCollegeID,
		CollegeName:               "Government Engineering College",
		CollegeEmail:              "office@gec.edu",
		CourseName:                "B.Tech",
		DepartmentName:            "Computer Science",
		Student:                   &models.Student{ID: id, Name: "Ravi Kumar", Email: "ravi@gec.edu"},
	}
}

func TestRegisterStudent(t *testing.T) {
	f := newStudentFixture()
	f.catalog.On("FindCollegeCourseDepartment", anyCtx, testCollegeID, "B.Tech", "Computer Science").
		Return(&models.CollegeCourseDepartment{ID: testCCDID, CourseName: "B.Tech", DepartmentName: "Computer Science"}, nil)
	f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(&models.Semester{ID: 13, SemesterNumber: 3}, nil)
	f.students.On("EmailExists", anyCtx, "ravi@gec.edu").Return(false, nil)
	f.students.On("Create", anyCtx, mock.AnythingOfType("*models.Student")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Student).ID = 42 }).
		Return(int64(42), nil)
	f.students.On("CreateEnrollment", anyCtx, mock.MatchedBy(func(e *models.StudentEnrollment) bool {
		return e.StudentID == 42 && e.CollegeCourseDepartmentID == testCCDID && e.SemesterID == 13
	})).Return(int64(1042), nil)

	resp, err := f.svc.Register(context.Background(), hodPrincipal(), testCollegeID, registerStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 3, resp.Semester)

	sent := f.mailer.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, mail.SubjectStudentRegistered, sent[0].Subject)
	assert.Equal(t, "office@gec.edu", sent[0].ReplyTo)
}

func TestRegisterStudent_EnrollmentFailureSendsNothing(t *testing.T) {
	f := newStudentFixture()
	f.catalog.On("FindCollegeCourseDepartment", anyCtx, testCollegeID, "B.Tech", "Computer Science").
		Return(&models.CollegeCourseDepartment{ID: testCCDID}, nil)
	f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(&models.Semester{ID: 13, SemesterNumber: 3}, nil)
	f.students.On("EmailExists", anyCtx, "ravi@gec.edu").Return(false, nil)
	f.students.On("Create", anyCtx, mock.Anything).Return(int64(42), nil)
	f.students.On("CreateEnrollment", anyCtx, mock.Anything).Return(int64(0), errors.New("connection reset"))

	_, err := f.svc.Register(context.Background(), hodPrincipal(), testCollegeID, registerStudentRequest())
	require.Error(t, err)
	assert.Empty(t, f.mailer.messages())
}

func TestRegisterStudent_Errors(t *testing.T) {
	t.Run("unknown semester", func(t *testing.T) {
		f := newStudentFixture()
		f.catalog.On("FindCollegeCourseDepartment", anyCtx, testCollegeID, "B.Tech", "Computer Science").
			Return(&models.CollegeCourseDepartment{ID: testCCDID}, nil)
		f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(nil, apperrors.ErrSemesterNotFound)

		_, err := f.svc.Register(context.Background(), hodPrincipal(), testCollegeID, registerStudentRequest())
		assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newStudentFixture()
		f.catalog.On("FindCollegeCourseDepartment", anyCtx, testCollegeID, "B.Tech", "Computer Science").
			Return(&models.CollegeCourseDepartment{ID: testCCDID}, nil)
		f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(&models.Semester{ID: 13, SemesterNumber: 3}, nil)
		f.students.On("EmailExists", anyCtx, "ravi@gec.edu").Return(true, nil)

		_, err := f.svc.Register(context.Background(), hodPrincipal(), testCollegeID, registerStudentRequest())
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("college token", func(t *testing.T) {
		f := newStudentFixture()
		_, err := f.svc.Register(context.Background(), collegePrincipal(), testCollegeID, registerStudentRequest())
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestListStudents_Paginates(t *testing.T) {
	f := newStudentFixture()
	f.students.On("ListEnrollmentsByCCD", anyCtx, testCCDID, 10, 10).
		Return([]*models.StudentEnrollment{enrolledStudent(42, testCCDID)}, int64(11), nil)

	page, err := f.svc.List(context.Background(), hodPrincipal(), testCollegeID, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, int64(11), page.Pagination.TotalItems)
	items := page.Items.([]dto.StudentResponse)
	require.Len(t, items, 1)
	assert.Equal(t, "Ravi Kumar", items[0].Name)
}

func TestUpdateStudent_MovesSemester(t *testing.T) {
	f := newStudentFixture()
	f.students.On("GetEnrollmentByStudentID", anyCtx, int64(42)).Return(enrolledStudent(42, testCCDID), nil)
	f.catalog.On("GetSemesterByNumber", anyCtx, 4).Return(&models.Semester{ID: 14, SemesterNumber: 4}, nil)
	f.students.On("Update", anyCtx, mock.AnythingOfType("*models.Student")).Return(nil)
	f.students.On("UpdateEnrollmentSemester", anyCtx, int64(42), int64(14)).Return(nil)

	resp, err := f.svc.Update(context.Background(), hodPrincipal(), 42, dto.UpdateStudentRequest{
		Name: "Ravi K", Email: "ravi@gec.edu", Semester: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Semester)
	assert.Equal(t, "Ravi K", resp.Name)
	f.students.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)

	sent := f.mailer.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, mail.SubjectStudentUpdated, sent[0].Subject)
}

func TestDeleteStudent(t *testing.T) {
	t.Run("own department", func(t *testing.T) {
		f := newStudentFixture()
		f.students.On("GetEnrollmentByStudentID", anyCtx, int64(42)).Return(enrolledStudent(42, testCCDID), nil)
		f.students.On("Delete", anyCtx, int64(42)).Return(nil)

		require.NoError(t, f.svc.Delete(context.Background(), hodPrincipal(), 42))
	})

	t.Run("other department", func(t *testing.T) {
		f := newStudentFixture()
		f.students.On("GetEnrollmentByStudentID", anyCtx, int64(43)).Return(enrolledStudent(43, 3), nil)

		err := f.svc.Delete(context.Background(), hodPrincipal(), 43)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		f.students.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
