package services

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/ams/internal/app/auth"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/filestorage"
	"github.com/yigit/ams/internal/pkg/spreadsheet"
)

// Spreadsheet columns of a subject import
const (
	ColumnSemester    = "semester"
	ColumnSubjectName = "subject name"
)

// SubjectArchiveDir is where uploaded subject spreadsheets are kept
const SubjectArchiveDir = "imports/subjects"

// SubjectService maintains the subject catalog of a head of department's offering
type SubjectService interface {
	ImportSubjects(ctx context.Context, p auth.Principal, upload Upload) (*dto.SubjectImportResponse, error)
	AddSubjects(ctx context.Context, p auth.Principal, rows []dto.SubjectRow) (*dto.SubjectImportResponse, error)
	ListSemesterSubjects(ctx context.Context, p auth.Principal) ([]dto.SemesterSubjectResponse, error)
}

type subjectServiceImpl struct {
	catalogRepo repositories.ICatalogRepository
	subjectRepo repositories.ISubjectRepository
	tx          db.Transactor
	authz       *appauth.AuthorizationService
	storage     filestorage.FileStorage
	logger      zerolog.Logger
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(
	catalogRepo repositories.ICatalogRepository,
	subjectRepo repositories.ISubjectRepository,
	tx db.Transactor,
	authz *appauth.AuthorizationService,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) SubjectService {
	return &subjectServiceImpl{
		catalogRepo: catalogRepo,
		subjectRepo: subjectRepo,
		tx:          tx,
		authz:       authz,
		storage:     storage,
		logger:      logger,
	}
}

// subjectLine is a normalised catalog row with its origin for error messages
type subjectLine struct {
	row      int
	semester int
	subject  string
}

// parseSubjectRows converts spreadsheet rows into catalog lines
func parseSubjectRows(rows []spreadsheet.Row) ([]subjectLine, error) {
	lines := make([]subjectLine, 0, len(rows))
	for _, r := range rows {
		semText := r.Get(ColumnSemester)
		subject := r.Get(ColumnSubjectName)
		if semText == "" && subject == "" {
			continue
		}

		// spreadsheet tools often render integers as "3.0"
		sem, err := strconv.ParseFloat(semText, 64)
		if err != nil || sem != float64(int(sem)) || sem < 1 {
			return nil, validationErrorf("row %d: invalid semester %q", r.Number, semText)
		}
		if subject == "" {
			return nil, validationErrorf("row %d: subject name is required", r.Number)
		}
		lines = append(lines, subjectLine{row: r.Number, semester: int(sem), subject: subject})
	}
	return lines, nil
}

func (s *subjectServiceImpl) ImportSubjects(ctx context.Context, p auth.Principal, upload Upload) (*dto.SubjectImportResponse, error) {
	rows, err := readSpreadsheet(upload, ColumnSemester, ColumnSubjectName)
	if err != nil {
		return nil, err
	}
	lines, err := parseSubjectRows(rows)
	if err != nil {
		return nil, err
	}

	resp, err := s.apply(ctx, p, lines)
	if err != nil {
		return nil, err
	}

	archived, err := s.storage.Save(bytes.NewReader(upload.Content), upload.Filename, SubjectArchiveDir)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", upload.Filename).Msg("Failed to archive subject spreadsheet")
	} else {
		resp.ArchivedAs = archived
	}
	return resp, nil
}

func (s *subjectServiceImpl) AddSubjects(ctx context.Context, p auth.Principal, rows []dto.SubjectRow) (*dto.SubjectImportResponse, error) {
	if len(rows) == 0 {
		return nil, validationErrorf("at least one subject is required")
	}

	lines := make([]subjectLine, 0, len(rows))
	for i, r := range rows {
		name := strings.TrimSpace(r.SubjectName)
		if name == "" {
			return nil, validationErrorf("subject %d: name is required", i+1)
		}
		if r.Semester < 1 {
			return nil, validationErrorf("subject %d: invalid semester %d", i+1, r.Semester)
		}
		lines = append(lines, subjectLine{row: i + 1, semester: r.Semester, subject: name})
	}
	return s.apply(ctx, p, lines)
}

// apply runs the find-or-create chain for every line in one transaction
func (s *subjectServiceImpl) apply(ctx context.Context, p auth.Principal, lines []subjectLine) (*dto.SubjectImportResponse, error) {
	hod, err := s.authz.HOD(ctx, p)
	if err != nil {
		return nil, err
	}
	ccd, err := s.catalogRepo.GetCollegeCourseDepartmentByID(ctx, hod.CollegeCourseDepartmentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SubjectImportResponse{}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		semesters := make(map[int]int64)
		for _, line := range lines {
			semID, ok := semesters[line.semester]
			if !ok {
				sem, err := s.catalogRepo.GetSemesterByNumber(ctx, line.semester)
				if err != nil {
					if errors.Is(err, apperrors.ErrResourceNotFound) {
						return apperrors.NotFoundf(apperrors.ErrSemesterNotFound, "semester %d not found (row %d)", line.semester, line.row)
					}
					return err
				}
				semID = sem.ID
				semesters[line.semester] = semID
			}

			subjectID, created, err := s.subjectRepo.FindOrCreateSubject(ctx, line.subject)
			if err != nil {
				return err
			}
			if created {
				resp.SubjectsCreated++
			}
			if _, _, err := s.subjectRepo.FindOrCreateSemesterSubject(ctx, semID, subjectID); err != nil {
				return err
			}
			if _, _, err := s.subjectRepo.FindOrCreateDepartmentSemesterSubject(ctx, ccd.DepartmentID, semID, subjectID); err != nil {
				return err
			}
			_, created, err = s.subjectRepo.FindOrCreateCCDSS(ctx, ccd.ID, semID, subjectID)
			if err != nil {
				return err
			}
			if created {
				resp.MappingsCreated++
			}
			resp.RowsProcessed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("hodID", hod.ID).
		Int64("ccdID", ccd.ID).
		Int("rows", resp.RowsProcessed).
		Int("subjectsCreated", resp.SubjectsCreated).
		Int("mappingsCreated", resp.MappingsCreated).
		Msg("Subject catalog updated")
	return resp, nil
}

func (s *subjectServiceImpl) ListSemesterSubjects(ctx context.Context, p auth.Principal) ([]dto.SemesterSubjectResponse, error) {
	hod, err := s.authz.HOD(ctx, p)
	if err != nil {
		return nil, err
	}
	views, err := s.subjectRepo.ListSemesterSubjects(ctx, hod.CollegeCourseDepartmentID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SemesterSubjectResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.SemesterSubjectResponse{Semester: v.SemesterNumber, SubjectID: v.SubjectID, SubjectName: v.SubjectName})
	}
	return out, nil
}
