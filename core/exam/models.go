package exam

import (
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/trezcool/examdesk/core"
)

// AuthoringStatus is the lifecycle stage an Exam's author sets. It is the only status that is stored;
// what students see is the DerivedStatus computed from the clock (see Status).
type AuthoringStatus string

// Authoring statuses
const (
	StatusDraft     AuthoringStatus = "draft"
	StatusScheduled AuthoringStatus = "scheduled"
	StatusActive    AuthoringStatus = "active"
	StatusCompleted AuthoringStatus = "completed"
)

func (s AuthoringStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// StatusAll disables status filtering in a QueryFilter.
const StatusAll = "all"

// Attempts is the number of attempts allowed on an Exam: a positive number or AttemptsUnlimited.
type Attempts int

const AttemptsUnlimited Attempts = -1

const attemptsUnlimitedText = "unlimited"

func (a Attempts) IsValid() bool {
	return a == AttemptsUnlimited || a > 0
}

func (a Attempts) String() string {
	if a == AttemptsUnlimited {
		return attemptsUnlimitedText
	}
	return strconv.Itoa(int(a))
}

func (a Attempts) MarshalJSON() ([]byte, error) {
	if a == AttemptsUnlimited {
		return []byte(strconv.Quote(attemptsUnlimitedText)), nil
	}
	return []byte(strconv.Itoa(int(a))), nil
}

func (a *Attempts) UnmarshalJSON(data []byte) error {
	return a.parse(string(data))
}

func (a *Attempts) UnmarshalYAML(value *yaml.Node) error {
	return a.parse(value.Value)
}

func (a *Attempts) parse(s string) error {
	if s == "null" || s == "" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if s == attemptsUnlimitedText {
		*a = AttemptsUnlimited
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	// AttemptsUnlimited is only reachable through its text form
	if n < 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "attempts", Error: attemptsText})
	}
	*a = Attempts(n)
	return nil
}

type Exam struct {
	ID                 string          `json:"id" yaml:"id"`
	Title              string          `json:"title" yaml:"title" validate:"notblank"`
	Description        string          `json:"description" yaml:"description"`
	Subject            string          `json:"subject" yaml:"subject" validate:"notblank"`
	TeacherID          string          `json:"teacher_id" yaml:"teacher_id" validate:"required"`
	TeacherName        string          `json:"teacher_name" yaml:"teacher_name"`
	Duration           int             `json:"duration" yaml:"duration" validate:"gt=0"` // minutes
	TotalQuestions     int             `json:"total_questions" yaml:"total_questions" validate:"gt=0"`
	TotalMarks         int             `json:"total_marks" yaml:"total_marks" validate:"gt=0"`
	Status             AuthoringStatus `json:"status" yaml:"status" validate:"oneof=draft scheduled active completed"`
	StartTime          time.Time       `json:"start_time" yaml:"start_time" validate:"required"`               // UTC
	EndTime            time.Time       `json:"end_time" yaml:"end_time" validate:"required,gtfield=StartTime"` // UTC
	CreatedAt          time.Time       `json:"created_at" yaml:"created_at"`                                   // UTC
	Instructions       string          `json:"instructions" yaml:"instructions"`
	Attempts           Attempts        `json:"attempts" yaml:"attempts" validate:"attempts"`
	RandomizeQuestions bool            `json:"randomize_questions" yaml:"randomize_questions"`
}

// NewExam contains information needed to create a new Exam.
// StartTime and EndTime accept RFC 3339 or datetime-local ("2006-01-02T15:04") values.
type NewExam struct {
	Title              string   `json:"title" validate:"notblank"`
	Description        string   `json:"description"`
	Subject            string   `json:"subject" validate:"notblank"`
	Duration           int      `json:"duration"`
	TotalQuestions     int      `json:"total_questions"`
	TotalMarks         int      `json:"total_marks"`
	Instructions       string   `json:"instructions"`
	StartTime          string   `json:"start_time" validate:"required,timestamp"`
	EndTime            string   `json:"end_time" validate:"required,timestamp"`
	Attempts           Attempts `json:"attempts"`
	RandomizeQuestions bool     `json:"randomize_questions"`
}

// UpdateExam defines what information may be provided to modify an existing Exam.
// nil fields are left untouched.
type UpdateExam struct {
	Title              *string          `json:"title"`
	Description        *string          `json:"description"`
	Subject            *string          `json:"subject"`
	Duration           *int             `json:"duration"`
	TotalQuestions     *int             `json:"total_questions"`
	TotalMarks         *int             `json:"total_marks"`
	Status             *AuthoringStatus `json:"status"`
	Instructions       *string          `json:"instructions"`
	StartTime          *string          `json:"start_time" validate:"omitempty,timestamp"`
	EndTime            *string          `json:"end_time" validate:"omitempty,timestamp"`
	Attempts           *Attempts        `json:"attempts"`
	RandomizeQuestions *bool            `json:"randomize_questions"`
}

type QueryFilter struct {
	Search string `query:"search"`
	Status string `query:"status"` // an AuthoringStatus or StatusAll
}

// QuestionType
const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionTrueFalse      = "true-false"
	QuestionShortAnswer    = "short-answer"
)

func ValidQuestionType(typ string) bool {
	return typ == QuestionMultipleChoice || typ == QuestionTrueFalse || typ == QuestionShortAnswer
}

type Question struct {
	ID      string   `json:"id" yaml:"id"`
	ExamID  string   `json:"exam_id" yaml:"exam_id"`
	Type    string   `json:"type" yaml:"type"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Options []string `json:"options,omitempty" yaml:"options"`
	// CorrectAnswer is an option index (multiple-choice), a bool (true-false) or a text (short-answer).
	CorrectAnswer interface{} `json:"correct_answer" yaml:"correct_answer"`
	Marks         int         `json:"marks" yaml:"marks"`
	Explanation   string      `json:"explanation" yaml:"explanation"`
}

// Submission statuses
const (
	SubmissionGraded  = "graded"
	SubmissionPending = "pending"
)

func ValidSubmissionStatus(status string) bool {
	return status == SubmissionGraded || status == SubmissionPending
}

type Submission struct {
	ID          string                 `json:"id" yaml:"id"`
	ExamID      string                 `json:"exam_id" yaml:"exam_id"`
	StudentID   string                 `json:"student_id" yaml:"student_id"`
	StudentName string                 `json:"student_name" yaml:"student_name"`
	Answers     map[string]interface{} `json:"answers" yaml:"answers"` // {questionID: response}
	Score       float64                `json:"score" yaml:"score"`
	TotalMarks  float64                `json:"total_marks" yaml:"total_marks"`
	TimeSpent   int                    `json:"time_spent" yaml:"time_spent"` // minutes
	SubmittedAt time.Time              `json:"submitted_at" yaml:"submitted_at"`
	Status      string                 `json:"status" yaml:"status"`
}

// Percentage is always computed from Score and TotalMarks, rounded to 2 decimals.
func (s Submission) Percentage() float64 {
	if s.TotalMarks == 0 {
		return 0
	}
	return math.Round(10000*s.Score/s.TotalMarks) / 100
}

// SubmissionView is a Submission as presented, with its computed percentage.
type SubmissionView struct {
	Submission
	Percentage float64 `json:"percentage"`
}

func (s Submission) View() SubmissionView {
	return SubmissionView{Submission: s, Percentage: s.Percentage()}
}

type SubmissionFilter struct {
	ExamID    string
	StudentID string
}
