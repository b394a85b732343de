package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories/mocks"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
)

type assignmentFixture struct {
	catalog     *mocks.CatalogRepository
	subjects    *mocks.SubjectRepository
	faculty     *mocks.FacultyRepository
	assignments *mocks.AssignmentRepository
	svc         AssignmentService
}

func newAssignmentFixture() *assignmentFixture {
	f := &assignmentFixture{
		catalog:     &mocks.CatalogRepository{},
		subjects:    &mocks.SubjectRepository{},
		faculty:     &mocks.FacultyRepository{},
		assignments: &mocks.AssignmentRepository{},
	}
	f.svc = NewAssignmentService(f.catalog, f.subjects, f.faculty, f.assignments, authzWithHOD(f.faculty), nopLogger)
	f.faculty.On("GetByID", anyCtx, int64(21)).
		Return(&models.Faculty{ID: 21, Name: "Meera", Designation: "Lecturer", CollegeID: testCollegeID, CollegeCourseDepartmentID: testCCDID}, nil).Maybe()
	return f
}

var assignRequest = dto.AssignSubjectRequest{FacultyID: 21, Subject: "Operating Systems", Semester: 3}

func TestAssign(t *testing.T) {
	f := newAssignmentFixture()
	f.subjects.On("GetSubjectByName", anyCtx, "Operating Systems").Return(&models.Subject{ID: 5, Name: "Operating Systems"}, nil)
	f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(&models.Semester{ID: 13, SemesterNumber: 3}, nil)
	f.subjects.On("FindCCDSS", anyCtx, testCCDID, int64(13), int64(5)).
		Return(&models.CollegeCourseDepartmentSemesterSubject{ID: 305}, nil)
	f.assignments.On("Create", anyCtx, mock.MatchedBy(func(a *models.FacultyAssignment) bool {
		return a.FacultyID == 21 && a.CCDSSID == 305
	})).Run(func(args mock.Arguments) { args.Get(1).(*models.FacultyAssignment).ID = 77 }).Return(int64(77), nil)

	resp, err := f.svc.Assign(context.Background(), hodPrincipal(), assignRequest)
	require.NoError(t, err)
	assert.Equal(t, dto.AssignmentResponse{ID: 77, FacultyID: 21, Semester: 3, Subject: "Operating Systems"}, *resp)
}

func TestAssign_DistinctNotFounds(t *testing.T) {
	t.Run("faculty", func(t *testing.T) {
		f := newAssignmentFixture()
		f.faculty.On("GetByID", anyCtx, int64(99)).Return(nil, apperrors.ErrFacultyNotFound)
		req := assignRequest
		req.FacultyID = 99

		_, err := f.svc.Assign(context.Background(), hodPrincipal(), req)
		assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	})

	t.Run("subject", func(t *testing.T) {
		f := newAssignmentFixture()
		f.subjects.On("GetSubjectByName", anyCtx, "Operating Systems").Return(nil, apperrors.ErrSubjectNotFound)

		_, err := f.svc.Assign(context.Background(), hodPrincipal(), assignRequest)
		assert.ErrorIs(t, err, apperrors.ErrSubjectNotFound)
	})

	t.Run("semester", func(t *testing.T) {
		f := newAssignmentFixture()
		f.subjects.On("GetSubjectByName", anyCtx, "Operating Systems").Return(&models.Subject{ID: 5}, nil)
		f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(nil, apperrors.ErrSemesterNotFound)

		_, err := f.svc.Assign(context.Background(), hodPrincipal(), assignRequest)
		assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
	})

	t.Run("not offered", func(t *testing.T) {
		f := newAssignmentFixture()
		f.subjects.On("GetSubjectByName", anyCtx, "Operating Systems").Return(&models.Subject{ID: 5}, nil)
		f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(&models.Semester{ID: 13, SemesterNumber: 3}, nil)
		f.subjects.On("FindCCDSS", anyCtx, testCCDID, int64(13), int64(5)).Return(nil, apperrors.ErrSubjectNotOffered)

		_, err := f.svc.Assign(context.Background(), hodPrincipal(), assignRequest)
		assert.ErrorIs(t, err, apperrors.ErrSubjectNotOffered)
	})
}

func TestAssign_Duplicate(t *testing.T) {
	f := newAssignmentFixture()
	f.subjects.On("GetSubjectByName", anyCtx, "Operating Systems").Return(&models.Subject{ID: 5}, nil)
	f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(&models.Semester{ID: 13, SemesterNumber: 3}, nil)
	f.subjects.On("FindCCDSS", anyCtx, testCCDID, int64(13), int64(5)).Return(&models.CollegeCourseDepartmentSemesterSubject{ID: 305}, nil)
	f.assignments.On("Create", anyCtx, mock.Anything).Return(int64(0), apperrors.ErrAssignmentExists)

	_, err := f.svc.Assign(context.Background(), hodPrincipal(), assignRequest)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestListForFaculty(t *testing.T) {
	f := newAssignmentFixture()
	f.assignments.On("ListByFaculty", anyCtx, int64(21)).Return([]*models.FacultyAssignment{
		{ID: 77, FacultyID: 21, CCDSSID: 305, SemesterNumber: 3, SubjectName: "Operating Systems"},
	}, nil)

	p := auth.Principal{UserID: 21, RoleType: models.RoleFaculty, CollegeID: testCollegeID}
	out, err := f.svc.ListForFaculty(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Operating Systems", out[0].Subject)
}
