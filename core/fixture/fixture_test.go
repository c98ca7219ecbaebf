package fixture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/user"
)

func TestLoad(t *testing.T) {
	set, err := Load()
	require.NoError(t, err)

	assert.Len(t, set.Users, 4)
	assert.Len(t, set.Exams, 3)
	assert.Len(t, set.Questions, 4)
	assert.Len(t, set.Submissions, 3)

	assert.Equal(t, user.RoleTeacher, set.Users[0].Role)

	math := set.Exams[0]
	assert.Equal(t, "Mathematics Midterm Exam", math.Title)
	assert.Equal(t, exam.StatusActive, math.Status)
	assert.Equal(t, exam.Attempts(2), math.Attempts)
	assert.Equal(t, "2024-12-20T09:00:00Z", math.StartTime.Format("2006-01-02T15:04:05Z07:00"))
	assert.True(t, math.EndTime.After(math.StartTime))

	assert.Equal(t, []string{"2x + 3", "x² + 3", "2x + 2", "x + 3"}, set.Questions[0].Options)
	assert.Equal(t, true, set.Questions[1].CorrectAnswer)
	assert.Equal(t, 94.67, set.Submissions[2].Percentage())
}

func TestParse_invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "bad yaml",
			data:    "users: [",
			wantErr: "decoding fixtures",
		},
		{
			name: "duplicate user id",
			data: `
users:
  - {id: "1", name: A, email: a@x.cd, role: teacher}
  - {id: "1", name: B, email: b@x.cd, role: student}`,
			wantErr: `user "1": duplicate id`,
		},
		{
			name: "duplicate email",
			data: `
users:
  - {id: "1", name: A, email: a@x.cd, role: teacher}
  - {id: "2", name: B, email: a@x.cd, role: student}`,
			wantErr: `duplicate email "a@x.cd"`,
		},
		{
			name: "unknown role",
			data: `
users:
  - {id: "1", name: A, email: a@x.cd, role: principal}`,
			wantErr: `unknown role "principal"`,
		},
		{
			name: "unknown teacher",
			data: `
exams:
  - id: "1"
    title: T
    subject: S
    teacher_id: "9"
    start_time: 2024-12-20T09:00:00Z
    end_time: 2024-12-20T10:00:00Z`,
			wantErr: `teacher "9" not found`,
		},
		{
			name: "end before start",
			data: `
users:
  - {id: "1", name: A, email: a@x.cd, role: teacher}
exams:
  - id: "1"
    title: T
    subject: S
    teacher_id: "1"
    status: draft
    start_time: 2024-12-20T09:00:00Z
    end_time: 2024-12-20T08:00:00Z`,
			wantErr: "end_time must be after start_time",
		},
		{
			name: "unknown exam status",
			data: `
users:
  - {id: "1", name: A, email: a@x.cd, role: teacher}
exams:
  - id: "1"
    title: T
    subject: S
    teacher_id: "1"
    status: archived
    start_time: 2024-12-20T09:00:00Z
    end_time: 2024-12-20T10:00:00Z`,
			wantErr: `exam "1": unknown status "archived"`,
		},
		{
			name: "unknown question type",
			data: `
users:
  - {id: "1", name: A, email: a@x.cd, role: teacher}
exams:
  - id: "1"
    title: T
    subject: S
    teacher_id: "1"
    status: active
    start_time: 2024-12-20T09:00:00Z
    end_time: 2024-12-20T10:00:00Z
questions:
  - {id: "1", exam_id: "1", type: essay, prompt: P, marks: 1}`,
			wantErr: `question "1": unknown type "essay"`,
		},
		{
			name: "unknown submission status",
			data: `
users:
  - {id: "1", name: A, email: a@x.cd, role: teacher}
  - {id: "2", name: B, email: b@x.cd, role: student}
exams:
  - id: "1"
    title: T
    subject: S
    teacher_id: "1"
    status: active
    start_time: 2024-12-20T09:00:00Z
    end_time: 2024-12-20T10:00:00Z
submissions:
  - {id: "1", exam_id: "1", student_id: "2", score: 1, total_marks: 2, status: lost}`,
			wantErr: `submission "1": unknown status "lost"`,
		},
		{
			name: "orphan question",
			data: `
questions:
  - {id: "1", exam_id: "1", type: true-false, prompt: P, correct_answer: true, marks: 1}`,
			wantErr: `question "1": exam "1" not found`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(strings.TrimSpace(tt.data)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
