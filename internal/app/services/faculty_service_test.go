package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories/mocks"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/mail"
)

type facultyFixture struct {
	colleges *mocks.CollegeRepository
	catalog  *mocks.CatalogRepository
	faculty  *mocks.FacultyRepository
	mailer   *recordingMailer
	svc      FacultyService
}

func newFacultyFixture() *facultyFixture {
	f := &facultyFixture{
		colleges: &mocks.CollegeRepository{},
		catalog:  &mocks.CatalogRepository{},
		faculty:  &mocks.FacultyRepository{},
		mailer:   &recordingMailer{},
	}
	f.svc = NewFacultyService(f.colleges, f.catalog, f.faculty, authzWithHOD(f.faculty), f.mailer, "https://ams.example/login", nopLogger)
	f.colleges.On("GetByID", anyCtx, testCollegeID).Return(testCollege(), nil).Maybe()
	return f
}

func (f *facultyFixture) expectOffering(course, department string, ccdID int64) {
	f.catalog.On("FindCollegeCourseDepartment", anyCtx, testCollegeID, course, department).
		Return(&models.CollegeCourseDepartment{ID: ccdID, CollegeID: testCollegeID, CourseName: course, DepartmentName: department}, nil)
}

func registerFacultyRequest() dto.RegisterFacultyRequest {
	return dto.RegisterFacultyRequest{
		Name:        "Meera Iyer",
		Email:       "Meera@GEC.edu",
		Number:      "9876543210",
		Designation: "Assistant Professor",
		Course:      "B.Tech",
		Department:  "Computer Science",
	}
}

func TestRegisterFaculty(t *testing.T) {
	f := newFacultyFixture()
	f.expectOffering("B.Tech", "Computer Science", testCCDID)
	f.faculty.On("EmailExists", anyCtx, "meera@gec.edu").Return(false, nil)

	var stored *models.Faculty
	f.faculty.On("Create", anyCtx, mock.AnythingOfType("*models.Faculty")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Faculty)
			stored.ID = 21
		}).
		Return(int64(21), nil)

	resp, err := f.svc.Register(context.Background(), collegePrincipal(), testCollegeID, registerFacultyRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(21), resp.ID)
	assert.Equal(t, "meera@gec.edu", resp.Email)
	assert.Equal(t, testCCDID, stored.CollegeCourseDepartmentID)

	sent := f.mailer.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, mail.SubjectFacultyRegistered, sent[0].Subject)
	assert.Equal(t, "office@gec.edu", sent[0].ReplyTo)
	assert.Equal(t, "meera@gec.edu", sent[0].To)
}

func TestRegisterFaculty_GeneratedPasswordIsHashed(t *testing.T) {
	f := newFacultyFixture()
	f.expectOffering("B.Tech", "Computer Science", testCCDID)
	f.faculty.On("EmailExists", anyCtx, "meera@gec.edu").Return(false, nil)
	f.faculty.On("Create", anyCtx, mock.AnythingOfType("*models.Faculty")).Return(int64(21), nil)

	_, err := f.svc.Register(context.Background(), collegePrincipal(), testCollegeID, registerFacultyRequest())
	require.NoError(t, err)

	stored := f.faculty.Calls[len(f.faculty.Calls)-1].Arguments.Get(1).(*models.Faculty)
	body := f.mailer.messages()[0].Body
	start := strings.Index(body, "Password: ")
	require.GreaterOrEqual(t, start, 0)
	password := strings.SplitN(body[start+len("Password: "):], "\n", 2)[0]

	assert.True(t, auth.CheckPassword(stored.Password, password))
	assert.Len(t, password, auth.FacultyPasswordLength)
}

func TestRegisterFaculty_Errors(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		f := newFacultyFixture()
		f.expectOffering("B.Tech", "Computer Science", testCCDID)
		f.faculty.On("EmailExists", anyCtx, "meera@gec.edu").Return(true, nil)

		_, err := f.svc.Register(context.Background(), collegePrincipal(), testCollegeID, registerFacultyRequest())
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		assert.Empty(t, f.mailer.messages())
	})

	t.Run("department not offered", func(t *testing.T) {
		f := newFacultyFixture()
		f.catalog.On("FindCollegeCourseDepartment", anyCtx, testCollegeID, "B.Tech", "Computer Science").
			Return(nil, apperrors.ErrOfferingNotFound)

		_, err := f.svc.Register(context.Background(), collegePrincipal(), testCollegeID, registerFacultyRequest())
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("hod registering into another department", func(t *testing.T) {
		f := newFacultyFixture()
		f.expectOffering("B.Tech", "Computer Science", 77)

		_, err := f.svc.Register(context.Background(), hodPrincipal(), testCollegeID, registerFacultyRequest())
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("other college", func(t *testing.T) {
		f := newFacultyFixture()
		_, err := f.svc.Register(context.Background(), collegePrincipal(), 2, registerFacultyRequest())
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestListDepartmentFaculty(t *testing.T) {
	f := newFacultyFixture()
	f.faculty.On("ListByCollegeCourseDepartment", anyCtx, testCCDID).Return([]*models.Faculty{
		{ID: 21, Name: "Meera Iyer", Designation: "Assistant Professor"},
	}, nil)

	out, err := f.svc.ListDepartmentFaculty(context.Background(), hodPrincipal())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Meera Iyer", out[0].Name)
}

func TestUpdateFaculty(t *testing.T) {
	f := newFacultyFixture()
	f.faculty.On("GetByID", anyCtx, int64(21)).Return(&models.Faculty{
		ID: 21, Name: "Meera", Email: "meera@gec.edu", Designation: "Lecturer",
		CollegeID: testCollegeID, CollegeCourseDepartmentID: testCCDID,
	}, nil)
	f.faculty.On("EmailExists", anyCtx, "meera.iyer@gec.edu").Return(false, nil)
	f.faculty.On("Update", anyCtx, mock.AnythingOfType("*models.Faculty")).Return(nil)

	resp, err := f.svc.Update(context.Background(), hodPrincipal(), 21, dto.UpdateFacultyRequest{
		Name: "Meera Iyer", Email: "meera.iyer@gec.edu", Designation: "Professor",
	})
	require.NoError(t, err)
	assert.Equal(t, "Professor", resp.Designation)

	sent := f.mailer.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, mail.SubjectFacultyUpdated, sent[0].Subject)
}

func TestDeleteFaculty(t *testing.T) {
	t.Run("college deletes its faculty", func(t *testing.T) {
		f := newFacultyFixture()
		f.faculty.On("GetByID", anyCtx, int64(21)).Return(&models.Faculty{ID: 21, CollegeID: testCollegeID, CollegeCourseDepartmentID: 3}, nil)
		f.faculty.On("Delete", anyCtx, int64(21)).Return(nil)

		require.NoError(t, f.svc.Delete(context.Background(), collegePrincipal(), 21))
		f.faculty.AssertCalled(t, "Delete", anyCtx, int64(21))
	})

	t.Run("hod cannot delete other departments", func(t *testing.T) {
		f := newFacultyFixture()
		f.faculty.On("GetByID", anyCtx, int64(22)).Return(&models.Faculty{ID: 22, CollegeID: testCollegeID, CollegeCourseDepartmentID: 3}, nil)

		err := f.svc.Delete(context.Background(), hodPrincipal(), 22)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		f.faculty.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestImportFaculty_CollectsRowErrors(t *testing.T) {
	f := newFacultyFixture()
	f.expectOffering("B.Tech", "Computer Science", testCCDID)
	f.faculty.On("EmailExists", anyCtx, "meera@gec.edu").Return(false, nil)
	f.faculty.On("EmailExists", anyCtx, "taken@gec.edu").Return(true, nil)
	f.faculty.On("Create", anyCtx, mock.AnythingOfType("*models.Faculty")).Return(int64(21), nil)

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]interface{}{"Name", "Email", "Number", "Designation", "Course", "Department"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]interface{}{"Meera Iyer", "meera@gec.edu", "9876543210", "Lecturer", "B.Tech", "Computer Science"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A3", &[]interface{}{"Taken", "taken@gec.edu", "", "Lecturer", "B.Tech", "Computer Science"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A4", &[]interface{}{"No Email", "", "", "Lecturer", "B.Tech", "Computer Science"}))
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)

	resp, err := f.svc.Import(context.Background(), collegePrincipal(), testCollegeID, Upload{Filename: "faculty.xlsx", Content: buf.Bytes()})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Created)
	require.Len(t, resp.Failed, 2)
	assert.Equal(t, 3, resp.Failed[0].Row)
	assert.Equal(t, "email already exists", resp.Failed[0].Error)
	assert.Equal(t, 4, resp.Failed[1].Row)
}
