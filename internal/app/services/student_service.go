package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/ams/internal/app/auth"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/helpers"
	"github.com/yigit/ams/internal/pkg/mail"
	"github.com/yigit/ams/internal/pkg/validation"
)

// ColumnParentsNumber is the extra column of a student import
const ColumnParentsNumber = "parents number"

// StudentService defines the interface for student account operations
type StudentService interface {
	Register(ctx context.Context, p auth.Principal, collegeID int64, req dto.RegisterStudentRequest) (*dto.StudentResponse, error)
	List(ctx context.Context, p auth.Principal, collegeID int64, page, size int) (*dto.PaginatedResponse, error)
	Update(ctx context.Context, p auth.Principal, studentID int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, p auth.Principal, studentID int64) error
	Import(ctx context.Context, p auth.Principal, collegeID int64, upload Upload) (*dto.BulkImportResponse, error)
}

type studentServiceImpl struct {
	collegeRepo repositories.ICollegeRepository
	catalogRepo repositories.ICatalogRepository
	studentRepo repositories.IStudentRepository
	tx          db.Transactor
	authz       *appauth.AuthorizationService
	mailer      Mailer
	loginURL    string
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	collegeRepo repositories.ICollegeRepository,
	catalogRepo repositories.ICatalogRepository,
	studentRepo repositories.IStudentRepository,
	tx db.Transactor,
	authz *appauth.AuthorizationService,
	mailer Mailer,
	loginURL string,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		collegeRepo: collegeRepo,
		catalogRepo: catalogRepo,
		studentRepo: studentRepo,
		tx:          tx,
		authz:       authz,
		mailer:      mailer,
		loginURL:    loginURL,
		logger:      logger,
	}
}

func studentDetails(e *models.StudentEnrollment) mail.StudentDetails {
	return mail.StudentDetails{
		Name:          e.Student.Name,
		Email:         e.Student.Email,
		Number:        e.Student.PhoneNumber,
		ParentsNumber: e.Student.ParentsNumber,
		Course:        e.CourseName,
		Department:    e.DepartmentName,
		Semester:      e.SemesterNumber,
	}
}

func validateStudentProfile(s *models.Student) error {
	if !validation.ValidName(s.Name) {
		return validationErrorf("name must be between %d and %d characters", validation.NameMinLength, validation.NameMaxLength)
	}
	if !validation.ValidEmail(s.Email) {
		return validationErrorf("invalid email format")
	}
	if !validation.ValidPhone(s.PhoneNumber) {
		return validationErrorf("invalid phone number")
	}
	if !validation.ValidPhone(s.ParentsNumber) {
		return validationErrorf("invalid parents number")
	}
	return nil
}

func (s *studentServiceImpl) semester(ctx context.Context, number int) (*models.Semester, error) {
	if !validation.ValidSemester(number) {
		return nil, validationErrorf("semester must be between 1 and %d", validation.MaxSemester)
	}
	return s.catalogRepo.GetSemesterByNumber(ctx, number)
}

// Register creates a student with a generated password and enrolls them in
// the HOD's department. Student and enrollment are written together.
func (s *studentServiceImpl) Register(ctx context.Context, p auth.Principal, collegeID int64, req dto.RegisterStudentRequest) (*dto.StudentResponse, error) {
	if err := s.authz.EnsureCollege(p, collegeID); err != nil {
		return nil, err
	}
	hod, err := s.authz.HOD(ctx, p)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:          strings.TrimSpace(req.Name),
		Email:         normalizeEmail(req.Email),
		PhoneNumber:   strings.TrimSpace(req.Number),
		ParentsNumber: strings.TrimSpace(req.ParentsNumber),
	}
	if err := validateStudentProfile(student); err != nil {
		return nil, err
	}

	ccd, err := s.catalogRepo.FindCollegeCourseDepartment(ctx, collegeID, strings.TrimSpace(req.Course), strings.TrimSpace(req.Department))
	if err != nil {
		return nil, err
	}
	if ccd.ID != hod.CollegeCourseDepartmentID {
		return nil, apperrors.NewForbiddenError("students can only be registered in your own department")
	}
	sem, err := s.semester(ctx, req.Semester)
	if err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.EmailExists(ctx, student.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	college, err := s.collegeRepo.GetByID(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	password := auth.GeneratePassword(auth.StudentPasswordLength)
	student.Password, err = auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	enrollment := &models.StudentEnrollment{
		CollegeCourseDepartmentID: ccd.ID,
		SemesterID:                sem.ID,
		Student:                   student,
		SemesterNumber:            sem.SemesterNumber,
		CollegeID:                 collegeID,
		CollegeName:               college.CollegeName,
		CollegeEmail:              college.Email,
		CourseName:                ccd.CourseName,
		DepartmentName:            ccd.DepartmentName,
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		studentID, err := s.studentRepo.Create(ctx, student)
		if err != nil {
			return err
		}
		enrollment.StudentID = studentID
		_, err = s.studentRepo.CreateEnrollment(ctx, enrollment)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.mailer.Enqueue(mail.StudentCredentials(
		studentDetails(enrollment),
		mail.College{Name: college.CollegeName, Email: college.Email},
		password,
		s.loginURL,
	))
	s.logger.Info().
		Int64("studentID", student.ID).
		Int64("ccdID", ccd.ID).
		Int("semester", sem.SemesterNumber).
		Msg("Student registered")

	resp := dto.NewStudentResponse(enrollment)
	return &resp, nil
}

// List returns one page of the HOD's enrolled students
func (s *studentServiceImpl) List(ctx context.Context, p auth.Principal, collegeID int64, page, size int) (*dto.PaginatedResponse, error) {
	if err := s.authz.EnsureCollege(p, collegeID); err != nil {
		return nil, err
	}
	hod, err := s.authz.HOD(ctx, p)
	if err != nil {
		return nil, err
	}

	pg := helpers.NewPage(page, size)
	enrollments, total, err := s.studentRepo.ListEnrollmentsByCCD(ctx, hod.CollegeCourseDepartmentID, pg.Offset(), pg.Size)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StudentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		items = append(items, dto.NewStudentResponse(e))
	}
	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: pg.Info(total),
	}, nil
}

// Update changes a student's profile and semester and mails the new details
func (s *studentServiceImpl) Update(ctx context.Context, p auth.Principal, studentID int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	enrollment, err := s.studentRepo.GetEnrollmentByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanManageStudent(ctx, p, enrollment); err != nil {
		return nil, err
	}

	student := enrollment.Student
	updated := &models.Student{
		ID:            student.ID,
		Name:          strings.TrimSpace(req.Name),
		Email:         normalizeEmail(req.Email),
		PhoneNumber:   strings.TrimSpace(req.Number),
		ParentsNumber: strings.TrimSpace(req.ParentsNumber),
	}
	if err := validateStudentProfile(updated); err != nil {
		return nil, err
	}
	if updated.Email != student.Email {
		exists, err := s.studentRepo.EmailExists(ctx, updated.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}
	sem, err := s.semester(ctx, req.Semester)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.studentRepo.Update(ctx, updated); err != nil {
			return err
		}
		if sem.ID == enrollment.SemesterID {
			return nil
		}
		return s.studentRepo.UpdateEnrollmentSemester(ctx, updated.ID, sem.ID)
	})
	if err != nil {
		return nil, err
	}

	enrollment.Student = updated
	enrollment.SemesterID = sem.ID
	enrollment.SemesterNumber = sem.SemesterNumber
	s.mailer.Enqueue(mail.StudentUpdated(studentDetails(enrollment), mail.College{Name: enrollment.CollegeName, Email: enrollment.CollegeEmail}))
	s.logger.Info().Int64("studentID", updated.ID).Int64("by", p.UserID).Msg("Student updated")

	resp := dto.NewStudentResponse(enrollment)
	return &resp, nil
}

// Delete removes a student together with the enrollment and attendance
func (s *studentServiceImpl) Delete(ctx context.Context, p auth.Principal, studentID int64) error {
	enrollment, err := s.studentRepo.GetEnrollmentByStudentID(ctx, studentID)
	if err != nil {
		return err
	}
	if err := s.authz.CanManageStudent(ctx, p, enrollment); err != nil {
		return err
	}
	if err := s.studentRepo.Delete(ctx, studentID); err != nil {
		return err
	}
	s.logger.Info().Int64("studentID", studentID).Int64("by", p.UserID).Msg("Student deleted")
	return nil
}

// Import registers every row of a student spreadsheet. Rows fail independently.
func (s *studentServiceImpl) Import(ctx context.Context, p auth.Principal, collegeID int64, upload Upload) (*dto.BulkImportResponse, error) {
	if err := s.authz.EnsureCollege(p, collegeID); err != nil {
		return nil, err
	}
	if _, err := s.authz.HOD(ctx, p); err != nil {
		return nil, err
	}
	rows, err := readSpreadsheet(upload, ColumnName, ColumnEmail, ColumnCourse, ColumnDepartment, ColumnSemester)
	if err != nil {
		return nil, err
	}

	resp := &dto.BulkImportResponse{Failed: []dto.RowError{}}
	for _, r := range rows {
		semText := r.Get(ColumnSemester)
		sem, err := strconv.ParseFloat(semText, 64)
		if err != nil || sem != float64(int(sem)) {
			resp.Failed = append(resp.Failed, rowError(r.Number, validationErrorf("invalid semester %q", semText)))
			continue
		}

		req := dto.RegisterStudentRequest{
			Name:          r.Get(ColumnName),
			Email:         r.Get(ColumnEmail),
			Number:        r.Get(ColumnNumber),
			ParentsNumber: r.Get(ColumnParentsNumber),
			Course:        r.Get(ColumnCourse),
			Department:    r.Get(ColumnDepartment),
			Semester:      int(sem),
		}
		if _, err := s.Register(ctx, p, collegeID, req); err != nil {
			if !isRowError(err) {
				return nil, err
			}
			resp.Failed = append(resp.Failed, rowError(r.Number, err))
			continue
		}
		resp.Created++
	}

	s.logger.Info().
		Int64("collegeID", collegeID).
		Int("created", resp.Created).
		Int("failed", len(resp.Failed)).
		Msg("Student import finished")
	return resp, nil
}
