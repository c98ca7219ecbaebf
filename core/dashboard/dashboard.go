// Package dashboard computes the per-role summary figures shown on the landing page.
package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/user"
)

const (
	recentExamsLen       = 3
	recentSubmissionsLen = 5
)

type (
	// Summary holds the dashboard of exactly one role.
	Summary struct {
		Role    user.RoleName   `json:"role"`
		Teacher *TeacherSummary `json:"teacher,omitempty"`
		Student *StudentSummary `json:"student,omitempty"`
		Admin   *AdminSummary   `json:"admin,omitempty"`
	}

	TeacherSummary struct {
		TotalExams        int                   `json:"total_exams"`
		ActiveExams       int                   `json:"active_exams"`
		TotalStudents     int                   `json:"total_students"`
		AverageScore      float64               `json:"average_score"`
		RecentExams       []exam.Exam           `json:"recent_exams"`
		RecentSubmissions []exam.SubmissionView `json:"recent_submissions"`
	}

	StudentSummary struct {
		AvailableExams []exam.StudentExam    `json:"available_exams"`
		Submissions    []exam.SubmissionView `json:"submissions"`
		AverageScore   float64               `json:"average_score"`
	}

	AdminSummary struct {
		TotalUsers       int `json:"total_users"`
		TotalTeachers    int `json:"total_teachers"`
		TotalStudents    int `json:"total_students"`
		TotalAdmins      int `json:"total_admins"`
		TotalExams       int `json:"total_exams"`
		ActiveExams      int `json:"active_exams"`
		TotalSubmissions int `json:"total_submissions"`
	}

	Service struct {
		users user.Repository
		exams *exam.Service
	}
)

func NewService(users user.Repository, exams *exam.Service) *Service {
	return &Service{users: users, exams: exams}
}

// For computes the dashboard of usr at now.
func (svc *Service) For(usr user.User, now time.Time) (Summary, error) {
	sum := Summary{Role: usr.Role}
	var err error

	switch usr.Role {
	case user.RoleTeacher:
		sum.Teacher, err = svc.teacher()
	case user.RoleStudent:
		sum.Student, err = svc.student(usr, now)
	case user.RoleAdmin:
		sum.Admin, err = svc.admin()
	default:
		err = fmt.Errorf("no dashboard for role %q", usr.Role)
	}
	return sum, err
}

func (svc *Service) teacher() (*TeacherSummary, error) {
	exams, err := svc.exams.QueryAll()
	if err != nil {
		return nil, errors.Wrap(err, "querying exams")
	}
	subs, err := svc.exams.Submissions(exam.SubmissionFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}
	counts, err := svc.countUsers()
	if err != nil {
		return nil, err
	}

	recent := exams
	if len(recent) > recentExamsLen {
		recent = recent[:recentExamsLen]
	}
	recentSubs := subs
	if len(recentSubs) > recentSubmissionsLen {
		recentSubs = recentSubs[:recentSubmissionsLen]
	}

	return &TeacherSummary{
		TotalExams:        len(exams),
		ActiveExams:       countActive(exams),
		TotalStudents:     counts[user.RoleStudent],
		AverageScore:      averagePercentage(subs),
		RecentExams:       recent,
		RecentSubmissions: views(recentSubs),
	}, nil
}

func (svc *Service) student(usr user.User, now time.Time) (*StudentSummary, error) {
	available, err := svc.exams.Available(now)
	if err != nil {
		return nil, errors.Wrap(err, "querying available exams")
	}
	subs, err := svc.exams.Submissions(exam.SubmissionFilter{StudentID: usr.ID})
	if err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}
	return &StudentSummary{
		AvailableExams: available,
		Submissions:    views(subs),
		AverageScore:   averagePercentage(subs),
	}, nil
}

func (svc *Service) admin() (*AdminSummary, error) {
	counts, err := svc.countUsers()
	if err != nil {
		return nil, err
	}
	exams, err := svc.exams.QueryAll()
	if err != nil {
		return nil, errors.Wrap(err, "querying exams")
	}
	subs, err := svc.exams.Submissions(exam.SubmissionFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}
	return &AdminSummary{
		TotalUsers:       counts[""],
		TotalTeachers:    counts[user.RoleTeacher],
		TotalStudents:    counts[user.RoleStudent],
		TotalAdmins:      counts[user.RoleAdmin],
		TotalExams:       len(exams),
		ActiveExams:      countActive(exams),
		TotalSubmissions: len(subs),
	}, nil
}

// countUsers counts users per role; the "" key holds the total.
func (svc *Service) countUsers() (map[user.RoleName]int, error) {
	users, err := svc.users.QueryAllUsers()
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	counts := map[user.RoleName]int{"": len(users)}
	for _, usr := range users {
		counts[usr.Role]++
	}
	return counts, nil
}

func countActive(exams []exam.Exam) int {
	var n int
	for _, e := range exams {
		if e.Status == exam.StatusActive {
			n++
		}
	}
	return n
}

// averagePercentage is 0 when there are no submissions.
func averagePercentage(subs []exam.Submission) float64 {
	if len(subs) == 0 {
		return 0
	}
	var total float64
	for _, s := range subs {
		total += s.Percentage()
	}
	return math.Round(100*total/float64(len(subs))) / 100
}

func views(subs []exam.Submission) []exam.SubmissionView {
	res := make([]exam.SubmissionView, 0, len(subs))
	for _, s := range subs {
		res = append(res, s.View())
	}
	return res
}
