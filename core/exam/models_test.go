package exam_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/examdesk/core"
	"github.com/trezcool/examdesk/core/exam"
)

func TestAttempts_JSON(t *testing.T) {
	tests := []struct {
		data    string
		want    exam.Attempts
		wantErr bool
	}{
		{data: `2`, want: 2},
		{data: `"3"`, want: 3},
		{data: `"unlimited"`, want: exam.AttemptsUnlimited},
		{data: `null`, want: 0},
		{data: `"lol"`, wantErr: true},
		{data: `0`, want: 0},
		{data: `-1`, wantErr: true},
		{data: `"-1"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			var a exam.Attempts
			err := json.Unmarshal([]byte(tt.data), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}

	data, err := json.Marshal(struct {
		A exam.Attempts `json:"a"`
		B exam.Attempts `json:"b"`
	}{A: 2, B: exam.AttemptsUnlimited})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 2, "b": "unlimited"}`, string(data))
}

func TestAttempts_negative(t *testing.T) {
	var ne exam.NewExam
	err := json.Unmarshal([]byte(`{"title": "T", "attempts": -1}`), &ne)
	require.Error(t, err)

	vErr, ok := err.(*core.ValidationError)
	require.True(t, ok, "got %T", err)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "attempts", vErr.Fields[0].Field)

	var v struct {
		A exam.Attempts `yaml:"a"`
	}
	assert.Error(t, yaml.Unmarshal([]byte("a: -1\n"), &v))
}

func TestAttempts_YAML(t *testing.T) {
	var v struct {
		A exam.Attempts `yaml:"a"`
		B exam.Attempts `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 4\nb: unlimited\n"), &v))
	assert.Equal(t, exam.Attempts(4), v.A)
	assert.Equal(t, exam.AttemptsUnlimited, v.B)
	assert.Equal(t, "unlimited", v.B.String())
	assert.False(t, exam.Attempts(0).IsValid())
	assert.False(t, exam.Attempts(-2).IsValid())
}

func TestValidValues(t *testing.T) {
	assert.True(t, exam.StatusScheduled.IsValid())
	assert.False(t, exam.AuthoringStatus("archived").IsValid())
	assert.False(t, exam.AuthoringStatus(exam.StatusAll).IsValid())

	assert.True(t, exam.ValidQuestionType(exam.QuestionTrueFalse))
	assert.False(t, exam.ValidQuestionType("essay"))

	assert.True(t, exam.ValidSubmissionStatus(exam.SubmissionPending))
	assert.False(t, exam.ValidSubmissionStatus(""))
}

func TestSubmission_Percentage(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		total float64
		want  float64
	}{
		{name: "full", score: 12, total: 12, want: 100},
		{name: "partial", score: 2, total: 12, want: 16.67},
		{name: "rounding", score: 142, total: 150, want: 94.67},
		{name: "no marks", score: 5, total: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := exam.Submission{Score: tt.score, TotalMarks: tt.total}
			assert.Equal(t, tt.want, s.Percentage())
			assert.Equal(t, tt.want, s.View().Percentage)
		})
	}
}
