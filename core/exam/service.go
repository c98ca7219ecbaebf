package exam

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/trezcool/examdesk/core"
	"github.com/trezcool/examdesk/core/user"
)

var (
	NowFunc = time.Now // mockable

	copySuffix = " (Copy)"

	// NewExam defaults
	defaultDuration       = 60
	defaultTotalQuestions = 10
	defaultTotalMarks     = 100
	defaultAttempts       = Attempts(1)

	// errors
	ErrNotFound   = errors.New("exam not found")
	errNotTeacher = errors.New("only teachers can author exams")
)

type (
	// Repository owns the exam collection, most recent first.
	Repository interface {
		// CreateExam prepends exam to the collection.
		CreateExam(exam Exam) (Exam, error)
		QueryAllExams() ([]Exam, error)
		GetExamByID(id string) (Exam, error)
		UpdateExam(exam Exam) (Exam, error)
		// DeleteExamsByID ignores unknown IDs.
		DeleteExamsByID(ids ...string) error
		QueryQuestions(examID string) ([]Question, error)
		QuerySubmissions(filter SubmissionFilter) ([]Submission, error)
	}

	Service struct {
		repo     Repository
		validate *validator.Validate
	}
)

func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{repo: repo, validate: validate}
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Create validates ne and prepends a new draft Exam authored by author to the collection.
// Nothing is inserted when validation fails.
func (svc *Service) Create(ne NewExam, author user.User) (Exam, error) {
	if err := ne.Validate(svc.validate); err != nil {
		return Exam{}, err
	}
	if !author.IsTeacher() {
		return Exam{}, core.NewValidationError(errNotTeacher, core.FieldError{Field: "teacher_id", Error: errNotTeacher.Error()})
	}

	start, err := core.ParseTimestamp(ne.StartTime)
	if err != nil {
		return Exam{}, timestampError("start_time")
	}
	end, err := core.ParseTimestamp(ne.EndTime)
	if err != nil {
		return Exam{}, timestampError("end_time")
	}

	exam := Exam{
		ID:                 newID(),
		Title:              ne.Title,
		Description:        ne.Description,
		Subject:            ne.Subject,
		TeacherID:          author.ID,
		TeacherName:        author.Name,
		Duration:           ne.Duration,
		TotalQuestions:     ne.TotalQuestions,
		TotalMarks:         ne.TotalMarks,
		Status:             StatusDraft,
		StartTime:          start,
		EndTime:            end,
		CreatedAt:          NowFunc().UTC(),
		Instructions:       ne.Instructions,
		Attempts:           ne.Attempts,
		RandomizeQuestions: ne.RandomizeQuestions,
	}
	if err = svc.validate.Struct(exam); err != nil {
		return Exam{}, err
	}
	return svc.repo.CreateExam(exam)
}

func (svc *Service) QueryAll() ([]Exam, error) {
	return svc.repo.QueryAllExams()
}

// Query filters then orders the collection.
func (svc *Service) Query(filter QueryFilter, orderings ...core.Ordering) ([]Exam, error) {
	exams, err := svc.repo.QueryAllExams()
	if err != nil {
		return nil, err
	}
	if !filter.IsEmpty() {
		exams = Filter(exams, filter)
	}
	Sort(exams, orderings...)
	return exams, nil
}

func (svc *Service) GetByID(id string) (Exam, error) {
	return svc.repo.GetExamByID(id)
}

// Available lists the exams students get to see at now.
func (svc *Service) Available(now time.Time) ([]StudentExam, error) {
	exams, err := svc.repo.QueryAllExams()
	if err != nil {
		return nil, err
	}
	return Available(exams, now), nil
}

// Update merges ue over the Exam identified by id. ID, TeacherID, TeacherName and CreatedAt are preserved.
// ErrNotFound is returned, and nothing changes, when there is no such Exam.
func (svc *Service) Update(id string, ue UpdateExam) (Exam, error) {
	orig, err := svc.repo.GetExamByID(id)
	if err != nil {
		return Exam{}, err
	}
	exam, err := ue.Validate(orig, svc.validate)
	if err != nil {
		return Exam{}, err
	}
	return svc.repo.UpdateExam(exam)
}

// Remove deletes the Exam identified by id. Removing an unknown Exam is a no-op.
func (svc *Service) Remove(id string) error {
	return svc.repo.DeleteExamsByID(id)
}

// Duplicate prepends a draft copy of the Exam identified by id to the collection.
func (svc *Service) Duplicate(id string) (Exam, error) {
	orig, err := svc.repo.GetExamByID(id)
	if err != nil {
		return Exam{}, err
	}
	cp := orig
	cp.ID = newID()
	cp.Title = orig.Title + copySuffix
	cp.Status = StatusDraft
	cp.CreatedAt = NowFunc().UTC()
	return svc.repo.CreateExam(cp)
}

// Questions returns the question bank of the Exam identified by examID.
func (svc *Service) Questions(examID string) ([]Question, error) {
	if _, err := svc.repo.GetExamByID(examID); err != nil {
		return nil, err
	}
	return svc.repo.QueryQuestions(examID)
}

func (svc *Service) Submissions(filter SubmissionFilter) ([]Submission, error) {
	return svc.repo.QuerySubmissions(filter)
}
