package services

import (
	"os"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	appauth "github.com/yigit/ams/internal/app/auth"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/repositories/mocks"
	"github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/mail"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// recordingMailer keeps every queued message
type recordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (r *recordingMailer) Enqueue(msg mail.Message) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return true
}

func (r *recordingMailer) messages() []mail.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mail.Message(nil), r.sent...)
}

var nopLogger = zerolog.Nop()

const anyCtx = mock.Anything

const (
	testCollegeID = int64(1)
	testCCDID     = int64(9)
	testHODID     = int64(5)
)

func collegePrincipal() auth.Principal {
	return auth.Principal{UserID: testCollegeID, Email: "office@gec.edu", RoleType: models.RoleCollege, CollegeID: testCollegeID}
}

func hodPrincipal() auth.Principal {
	return auth.Principal{UserID: testHODID, Email: "hod@gec.edu", RoleType: models.RoleHOD, CollegeID: testCollegeID}
}

func hodFaculty() *models.Faculty {
	return &models.Faculty{
		ID:                        testHODID,
		Name:                      "Asha Rao",
		Email:                     "hod@gec.edu",
		Designation:               models.DesignationHOD,
		CollegeCourseDepartmentID: testCCDID,
		CollegeID:                 testCollegeID,
		CourseName:                "B.Tech",
		DepartmentName:            "Computer Science",
	}
}

func testCollege() *models.College {
	return &models.College{ID: testCollegeID, CollegeName: "Government Engineering College", Email: "office@gec.edu"}
}

// authzWithHOD returns an authorization service whose faculty lookup knows the test HOD
func authzWithHOD(facultyRepo *mocks.FacultyRepository) *appauth.AuthorizationService {
	facultyRepo.On("GetByID", anyCtx, testHODID).Return(hodFaculty(), nil).Maybe()
	return appauth.NewAuthorizationService(facultyRepo)
}
