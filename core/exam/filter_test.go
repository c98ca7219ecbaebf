package exam_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/examdesk/core"
	"github.com/trezcool/examdesk/core/exam"
)

func ids(exams []exam.Exam) []string {
	res := make([]string, 0, len(exams))
	for _, e := range exams {
		res = append(res, e.ID)
	}
	return res
}

var fixtureExams = []exam.Exam{
	{ID: "1", Title: "Mathematics Midterm Exam", Subject: "Mathematics", Status: exam.StatusActive},
	{ID: "2", Title: "Physics Chapter 5 Quiz", Subject: "Physics", Status: exam.StatusScheduled},
	{ID: "3", Title: "Chemistry Final Exam", Subject: "Chemistry", Status: exam.StatusCompleted},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter exam.QueryFilter
		want   []string
	}{
		{name: "no filter", want: []string{"1", "2", "3"}},
		{name: "status all", filter: exam.QueryFilter{Status: exam.StatusAll}, want: []string{"1", "2", "3"}},
		{name: "search title", filter: exam.QueryFilter{Search: "Math"}, want: []string{"1"}},
		{name: "search case-insensitive", filter: exam.QueryFilter{Search: "mIDTERM"}, want: []string{"1"}},
		{name: "search subject", filter: exam.QueryFilter{Search: "physics"}, want: []string{"2"}},
		{name: "search shared word", filter: exam.QueryFilter{Search: "exam"}, want: []string{"1", "3"}},
		{name: "search unknown", filter: exam.QueryFilter{Search: "biology"}, want: []string{}},
		{name: "status", filter: exam.QueryFilter{Status: string(exam.StatusScheduled)}, want: []string{"2"}},
		{name: "status draft", filter: exam.QueryFilter{Status: string(exam.StatusDraft)}, want: []string{}},
		{name: "search and status", filter: exam.QueryFilter{Search: "exam", Status: string(exam.StatusCompleted)}, want: []string{"3"}},
		{name: "search and status mismatch", filter: exam.QueryFilter{Search: "math", Status: string(exam.StatusCompleted)}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(exam.Filter(fixtureExams, tt.filter)))
		})
	}
}

func TestFilter_leavesInputUntouched(t *testing.T) {
	exams := append([]exam.Exam(nil), fixtureExams...)
	got := exam.Filter(exams, exam.QueryFilter{Search: "chemistry"})
	got[0].Title = "changed"
	assert.Equal(t, fixtureExams, exams)
}

func TestQueryFilter_Clean(t *testing.T) {
	qf := exam.QueryFilter{Search: "  Math ", Status: " Active"}
	qf.Clean()
	assert.Equal(t, exam.QueryFilter{Search: "Math", Status: "active"}, qf)
	assert.False(t, qf.IsEmpty())
	assert.True(t, (&exam.QueryFilter{Status: exam.StatusAll}).IsEmpty())
}

func TestSort(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 12, d, 0, 0, 0, 0, time.UTC) }
	exams := []exam.Exam{
		{ID: "a", Title: "beta", StartTime: day(3), CreatedAt: day(1)},
		{ID: "b", Title: "Alpha", StartTime: day(1), CreatedAt: day(1)},
		{ID: "c", Title: "gamma", StartTime: day(2), CreatedAt: day(2)},
	}

	tests := []struct {
		name     string
		ordering string
		want     []string
	}{
		{name: "none", want: []string{"a", "b", "c"}},
		{name: "title", ordering: "title", want: []string{"b", "a", "c"}},
		{name: "-start_time", ordering: "-start_time", want: []string{"a", "c", "b"}},
		{name: "created_at is stable", ordering: "created_at", want: []string{"a", "b", "c"}},
		{name: "-created_at,title", ordering: "-created_at,title", want: []string{"c", "b", "a"}},
		{name: "unknown field", ordering: "lol", want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]exam.Exam(nil), exams...)
			exam.Sort(got, core.ParseOrderings(tt.ordering)...)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}
