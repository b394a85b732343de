package services

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/mail"
	"github.com/yigit/ams/internal/pkg/spreadsheet"
)

// Services defined in this package:
// - AuthService: login and college sign-up
// - CatalogService: courses, semesters and college course departments
// - SubjectService: the subject catalog of a department
// - FacultyService: faculty accounts
// - StudentService: student accounts and enrollments
// - AssignmentService: faculty to subject assignments
// - AttendanceService: marking and reading attendance
// - LegacyRegistrationService: flat registration records for older clients

// Mailer queues notification emails
type Mailer interface {
	Enqueue(msg mail.Message) bool
}

// validationErrorf builds an error that maps to 400
func validationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{apperrors.ErrValidationFailed}, args...)...)
}

// normalizeEmail trims and lower-cases an address so lookups are case-insensitive
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Upload is a file received from a multipart form
type Upload struct {
	Filename string
	Content  []byte
}

// readSpreadsheet validates an uploaded workbook and returns its data rows
func readSpreadsheet(upload Upload, required ...string) ([]spreadsheet.Row, error) {
	if len(upload.Content) == 0 {
		return nil, validationErrorf("uploaded file is empty")
	}
	if !strings.EqualFold(filepath.Ext(upload.Filename), ".xlsx") {
		return nil, validationErrorf("only .xlsx files are supported")
	}

	rows, err := spreadsheet.Read(bytes.NewReader(upload.Content), required...)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrMissingColumn) || errors.Is(err, spreadsheet.ErrEmptyWorkbook) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
		}
		return nil, validationErrorf("file is not a readable spreadsheet")
	}
	return rows, nil
}

// rowError converts a per-row failure into its response entry
func rowError(row int, err error) dto.RowError {
	return dto.RowError{Row: row, Error: apperrors.Message(err)}
}
