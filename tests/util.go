package testutil

import (
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/examdesk/core"
	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/fixture"
	"github.com/trezcool/examdesk/core/user"
	inmemdb "github.com/trezcool/examdesk/storage/database/inmem"
)

// Fixture user IDs
const (
	TeacherID = "1"
	StudentID = "2"
	AdminID   = "4"
)

// FixtureNow is a moment in the "Mathematics Midterm Exam" window, before the physics quiz opens.
var FixtureNow = time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)

func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	exam.InitValidators(validate, translator)
	return validate, translator
}

// PrepareDB opens a fresh in-memory database seeded with the fixtures.
func PrepareDB(t *testing.T) *inmemdb.DB {
	set, err := fixture.Load()
	if err != nil {
		t.Fatalf("fixture.Load() failed: %v", err)
	}
	db, err := inmemdb.Open(set)
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	return db
}

func NewSession(t *testing.T, db *inmemdb.DB) *user.Session {
	sess, err := user.NewSession(inmemdb.NewUserRepository(db), inmemdb.NewSessionStore())
	if err != nil {
		t.Fatalf("user.NewSession() failed: %v", err)
	}
	return sess
}

// NewExamService builds the exam service on validate, which must come from NewValidator.
func NewExamService(db *inmemdb.DB, validate *validator.Validate) *exam.Service {
	return exam.NewService(inmemdb.NewExamRepository(db), validate)
}

func GetUser(t *testing.T, db *inmemdb.DB, id string) user.User {
	usr, err := inmemdb.NewUserRepository(db).GetUserByID(id)
	if err != nil {
		t.Fatalf("GetUserByID(%q) failed: %v", id, err)
	}
	return usr
}

func NewExam(title, subject string) exam.NewExam {
	return exam.NewExam{
		Title:     title,
		Subject:   subject,
		StartTime: "2025-01-10T09:00",
		EndTime:   "2025-01-10T10:30",
	}
}

// MockNow freezes exam.NowFunc at now for the duration of the test.
func MockNow(t *testing.T, now time.Time) {
	orig := exam.NowFunc
	exam.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { exam.NowFunc = orig })
}
