package exam

import (
	"sort"
	"strings"

	"github.com/trezcool/examdesk/core"
)

// Filter applies AND operation on available QueryFilter fields.
// QueryFilter.Search does a case-insensitive match on one of Exam.Title or Exam.Subject.
// exams is left untouched; the result keeps its relative order.
func Filter(exams []Exam, qf QueryFilter) []Exam {
	search := strings.ToLower(qf.Search)
	res := make([]Exam, 0, len(exams))
	for _, e := range exams {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Subject), search) {
			continue
		}
		if qf.Status != "" && qf.Status != StatusAll && string(e.Status) != qf.Status {
			continue
		}
		res = append(res, e)
	}
	return res
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && (qf.Status == "" || qf.Status == StatusAll)
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

// ordering fields
var lessFuncs = map[string]func(e1, e2 Exam) int{
	"title": func(e1, e2 Exam) int { return strings.Compare(strings.ToLower(e1.Title), strings.ToLower(e2.Title)) },
	"subject": func(e1, e2 Exam) int {
		return strings.Compare(strings.ToLower(e1.Subject), strings.ToLower(e2.Subject))
	},
	"status":     func(e1, e2 Exam) int { return strings.Compare(string(e1.Status), string(e2.Status)) },
	"start_time": func(e1, e2 Exam) int { return e1.StartTime.Compare(e2.StartTime) },
	"end_time":   func(e1, e2 Exam) int { return e1.EndTime.Compare(e2.EndTime) },
	"created_at": func(e1, e2 Exam) int { return e1.CreatedAt.Compare(e2.CreatedAt) },
}

// Sort stable sorts exams in place by the given orderings. Unknown fields are ignored.
func Sort(exams []Exam, orderings ...core.Ordering) {
	if len(orderings) == 0 {
		return
	}
	sort.SliceStable(exams, func(i, j int) bool {
		for _, ord := range orderings {
			cmp, ok := lessFuncs[ord.Field]
			if !ok {
				continue
			}
			c := cmp(exams[i], exams[j])
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
}
