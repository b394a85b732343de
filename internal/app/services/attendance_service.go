package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

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
)

// AttendanceService records and reports day-level attendance
type AttendanceService interface {
	ListStudents(ctx context.Context, p auth.Principal, semester int, subject string) ([]dto.StudentResponse, error)
	MarkAttendance(ctx context.Context, p auth.Principal, req dto.MarkAttendanceRequest) (*dto.MarkAttendanceResponse, error)
	StudentAttendance(ctx context.Context, p auth.Principal, from, to *time.Time) (*dto.StudentAttendanceResponse, error)
}

type attendanceServiceImpl struct {
	catalogRepo    repositories.ICatalogRepository
	subjectRepo    repositories.ISubjectRepository
	studentRepo    repositories.IStudentRepository
	assignmentRepo repositories.IAssignmentRepository
	attendanceRepo repositories.IAttendanceRepository
	tx             db.Transactor
	authz          *appauth.AuthorizationService
	mailer         Mailer
	clock          func() time.Time
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	catalogRepo repositories.ICatalogRepository,
	subjectRepo repositories.ISubjectRepository,
	studentRepo repositories.IStudentRepository,
	assignmentRepo repositories.IAssignmentRepository,
	attendanceRepo repositories.IAttendanceRepository,
	tx db.Transactor,
	authz *appauth.AuthorizationService,
	mailer Mailer,
	logger zerolog.Logger,
) AttendanceService {
	return &attendanceServiceImpl{
		catalogRepo:    catalogRepo,
		subjectRepo:    subjectRepo,
		studentRepo:    studentRepo,
		assignmentRepo: assignmentRepo,
		attendanceRepo: attendanceRepo,
		tx:             tx,
		authz:          authz,
		mailer:         mailer,
		clock:          helpers.Today,
		logger:         logger,
	}
}

// ListStudents returns the students a faculty member may mark for a subject.
// The faculty member must be assigned to the subject in that semester.
func (s *attendanceServiceImpl) ListStudents(ctx context.Context, p auth.Principal, semester int, subject string) ([]dto.StudentResponse, error) {
	faculty, err := s.authz.Faculty(ctx, p)
	if err != nil {
		return nil, err
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, validationErrorf("subject is required")
	}

	subj, err := s.subjectRepo.GetSubjectByName(ctx, subject)
	if err != nil {
		return nil, err
	}
	sem, err := s.catalogRepo.GetSemesterByNumber(ctx, semester)
	if err != nil {
		return nil, err
	}
	ccdss, err := s.subjectRepo.FindCCDSS(ctx, faculty.CollegeCourseDepartmentID, sem.ID, subj.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.NewForbiddenError("you are not assigned to this subject")
		}
		return nil, err
	}
	assigned, err := s.assignmentRepo.Exists(ctx, faculty.ID, ccdss.ID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, apperrors.NewForbiddenError("you are not assigned to this subject")
	}

	enrollments, err := s.studentRepo.ListEnrollmentsByCCDAndSemester(ctx, faculty.CollegeCourseDepartmentID, sem.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StudentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, dto.NewStudentResponse(e))
	}
	return out, nil
}

// MarkAttendance stores today's status for every entry in one transaction.
// Re-marking a student for the same subject and day overwrites the status.
// One notification per entry is queued after commit.
func (s *attendanceServiceImpl) MarkAttendance(ctx context.Context, p auth.Principal, req dto.MarkAttendanceRequest) (*dto.MarkAttendanceResponse, error) {
	if len(req.Records) == 0 {
		return nil, validationErrorf("at least one attendance record is required")
	}
	faculty, err := s.authz.Faculty(ctx, p)
	if err != nil {
		return nil, err
	}

	today := s.clock()
	date := today.Format(helpers.DateLayout)
	notices := make([]mail.Message, 0, len(req.Records))

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		subjects := make(map[string]*models.Subject)
		for _, rec := range req.Records {
			status := models.AttendanceStatus(strings.ToUpper(strings.TrimSpace(rec.Status)))
			if !status.Valid() {
				return validationErrorf("invalid status %q for student id: %d", rec.Status, rec.StudentID)
			}

			enrollment, err := s.studentRepo.GetEnrollmentByStudentID(ctx, rec.StudentID)
			if err != nil {
				return err
			}
			if enrollment.CollegeID != faculty.CollegeID {
				return apperrors.NewForbiddenError("student belongs to another college")
			}

			name := strings.TrimSpace(rec.Subject)
			subj, ok := subjects[name]
			if !ok {
				subj, err = s.subjectRepo.GetSubjectByName(ctx, name)
				if err != nil {
					return err
				}
				subjects[name] = subj
			}

			err = s.attendanceRepo.Upsert(ctx, &models.Attendance{
				StudentEnrollmentID: enrollment.ID,
				SubjectID:           subj.ID,
				FacultyID:           faculty.ID,
				Date:                today,
				Status:              status,
			})
			if err != nil {
				return err
			}

			notices = append(notices, mail.AttendanceStatus(mail.AttendanceNotice{
				StudentName:  enrollment.Student.Name,
				StudentEmail: enrollment.Student.Email,
				Subject:      subj.Name,
				Department:   enrollment.DepartmentName,
				Date:         date,
				Status:       string(status),
				FacultyName:  faculty.Name,
			}, mail.College{Name: enrollment.CollegeName, Email: enrollment.CollegeEmail}))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, msg := range notices {
		s.mailer.Enqueue(msg)
	}
	s.logger.Info().
		Int64("facultyID", faculty.ID).
		Str("date", date).
		Int("records", len(req.Records)).
		Msg("Attendance marked")

	return &dto.MarkAttendanceResponse{Date: date, Saved: len(req.Records)}, nil
}

// StudentAttendance returns the caller's attendance newest first with a per-subject summary
func (s *attendanceServiceImpl) StudentAttendance(ctx context.Context, p auth.Principal, from, to *time.Time) (*dto.StudentAttendanceResponse, error) {
	if p.RoleType != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("student access required")
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, validationErrorf("from must not be after to")
	}

	enrollment, err := s.studentRepo.GetEnrollmentByStudentID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListByEnrollment(ctx, enrollment.ID, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.StudentAttendanceResponse{
		From:    from,
		To:      to,
		Records: toAttendanceRecords(records),
		Summary: summarizeAttendance(records),
	}, nil
}

func toAttendanceRecords(records []*models.Attendance) []dto.AttendanceRecordResponse {
	out := make([]dto.AttendanceRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.AttendanceRecordResponse{
			Date:    r.Date.Format(helpers.DateLayout),
			Subject: r.SubjectName,
			Status:  string(r.Status),
			Faculty: r.FacultyName,
		})
	}
	return out
}

// summarizeAttendance counts present days per subject, ordered by subject name
func summarizeAttendance(records []*models.Attendance) []dto.SubjectAttendanceSummary {
	bySubject := make(map[string]*dto.SubjectAttendanceSummary)
	for _, r := range records {
		sum, ok := bySubject[r.SubjectName]
		if !ok {
			sum = &dto.SubjectAttendanceSummary{Subject: r.SubjectName}
			bySubject[r.SubjectName] = sum
		}
		sum.Total++
		if r.Status == models.AttendancePresent {
			sum.Present++
		}
	}

	out := make([]dto.SubjectAttendanceSummary, 0, len(bySubject))
	for _, sum := range bySubject {
		sum.Percentage = math.Round(float64(sum.Present)*10000/float64(sum.Total)) / 100
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out
}
