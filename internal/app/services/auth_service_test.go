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
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/mail"
)

type authFixture struct {
	colleges *mocks.CollegeRepository
	faculty  *mocks.FacultyRepository
	students *mocks.StudentRepository
	mailer   *recordingMailer
	jwt      *auth.JWTService
	svc      AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		colleges: &mocks.CollegeRepository{},
		faculty:  &mocks.FacultyRepository{},
		students: &mocks.StudentRepository{},
		mailer:   &recordingMailer{},
		jwt:      auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "ams-test"}),
	}
	f.svc = NewAuthService(f.colleges, f.faculty, f.students, f.jwt, f.mailer, nopLogger)
	return f
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLogin_College(t *testing.T) {
	f := newAuthFixture()
	college := testCollege()
	college.Password = mustHash(t, "secret1")
	f.colleges.On("GetByEmail", anyCtx, "office@gec.edu").Return(college, nil)

	resp, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: " Office@GEC.edu ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "COLLEGE", resp.Role)
	assert.Equal(t, testCollegeID, resp.CollegeID)
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := f.jwt.ValidateAndExtractClaims(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCollege, claims.Principal().RoleType)
	f.faculty.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestLogin_FacultyRoleFollowsDesignation(t *testing.T) {
	f := newAuthFixture()
	hod := hodFaculty()
	hod.Password = mustHash(t, "abcd1234")
	f.colleges.On("GetByEmail", anyCtx, "hod@gec.edu").Return(nil, apperrors.ErrCollegeNotFound)
	f.faculty.On("GetByEmail", anyCtx, "hod@gec.edu").Return(hod, nil)

	resp, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: "hod@gec.edu", Password: "abcd1234"})
	require.NoError(t, err)
	assert.Equal(t, "HOD", resp.Role)
	assert.Equal(t, testCollegeID, resp.CollegeID)
	assert.Equal(t, "Asha Rao", resp.Name)
}

func TestLogin_StudentCarriesEnrollmentCollege(t *testing.T) {
	f := newAuthFixture()
	student := &models.Student{ID: 42, Name: "Ravi", Email: "ravi@gec.edu", Password: mustHash(t, "abc123")}
	f.colleges.On("GetByEmail", anyCtx, "ravi@gec.edu").Return(nil, apperrors.ErrCollegeNotFound)
	f.faculty.On("GetByEmail", anyCtx, "ravi@gec.edu").Return(nil, apperrors.ErrFacultyNotFound)
	f.students.On("GetByEmail", anyCtx, "ravi@gec.edu").Return(student, nil)
	f.students.On("GetEnrollmentByStudentID", anyCtx, int64(42)).Return(&models.StudentEnrollment{ID: 3, StudentID: 42, CollegeID: 7}, nil)

	resp, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: "ravi@gec.edu", Password: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "STUDENT", resp.Role)
	assert.Equal(t, int64(7), resp.CollegeID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture()
		f.colleges.On("GetByEmail", anyCtx, "nobody@gec.edu").Return(nil, apperrors.ErrCollegeNotFound)
		f.faculty.On("GetByEmail", anyCtx, "nobody@gec.edu").Return(nil, apperrors.ErrFacultyNotFound)
		f.students.On("GetByEmail", anyCtx, "nobody@gec.edu").Return(nil, apperrors.ErrStudentNotFound)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@gec.edu", Password: "x"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture()
		college := testCollege()
		college.Password = mustHash(t, "secret1")
		f.colleges.On("GetByEmail", anyCtx, "office@gec.edu").Return(college, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: "office@gec.edu", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestRegisterCollege(t *testing.T) {
	req := dto.RegisterCollegeRequest{CollegeName: "Government Engineering College", Email: "Office@gec.edu", Password: "secret1", Type: "Engineering"}

	t.Run("creates and sends welcome email", func(t *testing.T) {
		f := newAuthFixture()
		f.colleges.On("ExistsByName", anyCtx, "Government Engineering College").Return(false, nil)
		f.colleges.On("ExistsByEmail", anyCtx, "office@gec.edu").Return(false, nil)
		f.colleges.On("Create", anyCtx, mock.AnythingOfType("*models.College")).
			Run(func(args mock.Arguments) { args.Get(1).(*models.College).ID = 11 }).
			Return(int64(11), nil)

		resp, err := f.svc.RegisterCollege(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		assert.Equal(t, "office@gec.edu", resp.Email)

		created := f.colleges.Calls[2].Arguments.Get(1).(*models.College)
		assert.True(t, auth.CheckPassword(created.Password, "secret1"))

		sent := f.mailer.messages()
		require.Len(t, sent, 1)
		assert.Equal(t, mail.SubjectCollegeWelcome, sent[0].Subject)
		assert.Equal(t, "office@gec.edu", sent[0].To)
	})

	t.Run("duplicate name is checked before email", func(t *testing.T) {
		f := newAuthFixture()
		f.colleges.On("ExistsByName", anyCtx, "Government Engineering College").Return(true, nil)

		_, err := f.svc.RegisterCollege(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrCollegeNameExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		f.colleges.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture()
		f.colleges.On("ExistsByName", anyCtx, "Government Engineering College").Return(false, nil)
		f.colleges.On("ExistsByEmail", anyCtx, "office@gec.edu").Return(true, nil)

		_, err := f.svc.RegisterCollege(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrCollegeEmailExists)
		assert.Empty(t, f.mailer.messages())
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newAuthFixture()
		bad := req
		bad.Email = "not-an-email"
		_, err := f.svc.RegisterCollege(context.Background(), bad)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}
