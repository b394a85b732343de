package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories/mocks"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/filestorage"
)

type subjectFixture struct {
	catalog  *mocks.CatalogRepository
	subjects *mocks.SubjectRepository
	faculty  *mocks.FacultyRepository
	storage  *filestorage.LocalStorage
	svc      SubjectService
}

func newSubjectFixture(t *testing.T) *subjectFixture {
	t.Helper()
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	f := &subjectFixture{
		catalog:  &mocks.CatalogRepository{},
		subjects: &mocks.SubjectRepository{},
		faculty:  &mocks.FacultyRepository{},
		storage:  storage,
	}
	f.svc = NewSubjectService(f.catalog, f.subjects, db.NoopTransactor{}, authzWithHOD(f.faculty), storage, nopLogger)
	f.catalog.On("GetCollegeCourseDepartmentByID", anyCtx, testCCDID).
		Return(&models.CollegeCourseDepartment{ID: testCCDID, CollegeCourseID: 30, DepartmentID: 4, CollegeID: testCollegeID}, nil).Maybe()
	return f
}

// expectChain registers the find-or-create chain for one subject
func (f *subjectFixture) expectChain(semID, subjectID int64, name string, subjectCreated, mappingCreated bool) {
	f.subjects.On("FindOrCreateSubject", anyCtx, name).Return(subjectID, subjectCreated, nil)
	f.subjects.On("FindOrCreateSemesterSubject", anyCtx, semID, subjectID).Return(int64(100)+subjectID, subjectCreated, nil)
	f.subjects.On("FindOrCreateDepartmentSemesterSubject", anyCtx, int64(4), semID, subjectID).Return(int64(200)+subjectID, subjectCreated, nil)
	f.subjects.On("FindOrCreateCCDSS", anyCtx, testCCDID, semID, subjectID).Return(int64(300)+subjectID, mappingCreated, nil)
}

func subjectWorkbook(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]interface{}{" Semester", "SUBJECT NAME "}))
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		row := r
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestImportSubjects(t *testing.T) {
	f := newSubjectFixture(t)
	f.catalog.On("GetSemesterByNumber", anyCtx, 1).Return(&models.Semester{ID: 11, SemesterNumber: 1}, nil).Once()
	f.catalog.On("GetSemesterByNumber", anyCtx, 2).Return(&models.Semester{ID: 12, SemesterNumber: 2}, nil).Once()
	f.expectChain(11, 1, "Mathematics I", true, true)
	f.expectChain(11, 2, "Physics", false, true)
	f.expectChain(12, 3, "Data Structures", true, true)

	content := subjectWorkbook(t,
		[]interface{}{1, "Mathematics I"},
		[]interface{}{"", ""},
		[]interface{}{1, "Physics"},
		[]interface{}{2, "Data Structures"},
	)

	resp, err := f.svc.ImportSubjects(context.Background(), hodPrincipal(), Upload{Filename: "subjects.xlsx", Content: content})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.RowsProcessed)
	assert.Equal(t, 2, resp.SubjectsCreated)
	assert.Equal(t, 3, resp.MappingsCreated)
	assert.NotEmpty(t, resp.ArchivedAs)
	f.catalog.AssertNumberOfCalls(t, "GetSemesterByNumber", 2)
}

func TestImportSubjects_ReimportCreatesNothing(t *testing.T) {
	f := newSubjectFixture(t)
	f.catalog.On("GetSemesterByNumber", anyCtx, 3).Return(&models.Semester{ID: 13, SemesterNumber: 3}, nil)
	f.expectChain(13, 5, "Operating Systems", false, false)

	resp, err := f.svc.AddSubjects(context.Background(), hodPrincipal(), []dto.SubjectRow{{Semester: 3, SubjectName: "Operating Systems"}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.RowsProcessed)
	assert.Zero(t, resp.SubjectsCreated)
	assert.Zero(t, resp.MappingsCreated)
}

func TestImportSubjects_UnknownSemesterAborts(t *testing.T) {
	f := newSubjectFixture(t)
	f.catalog.On("GetSemesterByNumber", anyCtx, 1).Return(&models.Semester{ID: 11, SemesterNumber: 1}, nil)
	f.catalog.On("GetSemesterByNumber", anyCtx, 12).Return(nil, apperrors.ErrSemesterNotFound)
	f.expectChain(11, 1, "Mathematics I", true, true)

	_, err := f.svc.AddSubjects(context.Background(), hodPrincipal(), []dto.SubjectRow{
		{Semester: 1, SubjectName: "Mathematics I"},
		{Semester: 12, SubjectName: "Thesis"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
	assert.Contains(t, apperrors.Message(err), "semester 12 not found (row 2)")
	f.subjects.AssertNotCalled(t, "FindOrCreateSubject", mock.Anything, "Thesis")
}

func TestImportSubjects_RejectsBadFiles(t *testing.T) {
	f := newSubjectFixture(t)

	_, err := f.svc.ImportSubjects(context.Background(), hodPrincipal(), Upload{Filename: "subjects.csv", Content: []byte("semester,subject name")})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.svc.ImportSubjects(context.Background(), hodPrincipal(), Upload{Filename: "subjects.xlsx"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	content := subjectWorkbook(t, []interface{}{"three", "Algebra"})
	_, err = f.svc.ImportSubjects(context.Background(), hodPrincipal(), Upload{Filename: "subjects.xlsx", Content: content})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAddSubjects_RequiresHOD(t *testing.T) {
	f := newSubjectFixture(t)
	_, err := f.svc.AddSubjects(context.Background(), collegePrincipal(), []dto.SubjectRow{{Semester: 1, SubjectName: "Physics"}})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestListSemesterSubjects(t *testing.T) {
	f := newSubjectFixture(t)
	f.subjects.On("ListSemesterSubjects", anyCtx, testCCDID).Return([]*models.SemesterSubjectView{
		{SemesterNumber: 1, SubjectID: 1, SubjectName: "Mathematics I"},
		{SemesterNumber: 2, SubjectID: 3, SubjectName: "Data Structures"},
	}, nil)

	out, err := f.svc.ListSemesterSubjects(context.Background(), hodPrincipal())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Data Structures", out[1].SubjectName)
}
