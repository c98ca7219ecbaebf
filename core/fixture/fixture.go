// Package fixture holds the seed data the stores start from.
package fixture

import (
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/user"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type Set struct {
	Users       []user.User       `yaml:"users"`
	Exams       []exam.Exam       `yaml:"exams"`
	Questions   []exam.Question   `yaml:"questions"`
	Submissions []exam.Submission `yaml:"submissions"`
}

// Load decodes the embedded fixtures and checks their references.
func Load() (*Set, error) {
	return Parse(fixturesYAML)
}

// Parse decodes a YAML fixture document and checks its references.
func Parse(data []byte) (*Set, error) {
	set := new(Set)
	if err := yaml.Unmarshal(data, set); err != nil {
		return nil, errors.Wrap(err, "decoding fixtures")
	}
	if err := set.Check(); err != nil {
		return nil, errors.Wrap(err, "checking fixtures")
	}
	return set, nil
}

// Check verifies that IDs are unique and that every reference points to an existing record:
// exams to teachers, questions to exams, submissions to exams and students.
func (set *Set) Check() error {
	users := make(map[string]user.User, len(set.Users))
	emails := make(map[string]bool, len(set.Users))
	for _, usr := range set.Users {
		if _, ok := users[usr.ID]; ok {
			return errors.Errorf("user %q: duplicate id", usr.ID)
		}
		if emails[usr.Email] {
			return errors.Errorf("user %q: duplicate email %q", usr.ID, usr.Email)
		}
		if _, ok := usr.Profile(); !ok {
			return errors.Errorf("user %q: unknown role %q", usr.ID, usr.Role)
		}
		users[usr.ID] = usr
		emails[usr.Email] = true
	}

	exams := make(map[string]bool, len(set.Exams))
	for _, e := range set.Exams {
		if exams[e.ID] {
			return errors.Errorf("exam %q: duplicate id", e.ID)
		}
		if usr, ok := users[e.TeacherID]; !ok || !usr.IsTeacher() {
			return errors.Errorf("exam %q: teacher %q not found", e.ID, e.TeacherID)
		}
		if !e.Status.IsValid() {
			return errors.Errorf("exam %q: unknown status %q", e.ID, e.Status)
		}
		if !e.EndTime.After(e.StartTime) {
			return errors.Errorf("exam %q: end_time must be after start_time", e.ID)
		}
		exams[e.ID] = true
	}

	for _, q := range set.Questions {
		if !exams[q.ExamID] {
			return errors.Errorf("question %q: exam %q not found", q.ID, q.ExamID)
		}
		if !exam.ValidQuestionType(q.Type) {
			return errors.Errorf("question %q: unknown type %q", q.ID, q.Type)
		}
	}

	for _, s := range set.Submissions {
		if !exams[s.ExamID] {
			return errors.Errorf("submission %q: exam %q not found", s.ID, s.ExamID)
		}
		if usr, ok := users[s.StudentID]; !ok || !usr.IsStudent() {
			return errors.Errorf("submission %q: student %q not found", s.ID, s.StudentID)
		}
		if !exam.ValidSubmissionStatus(s.Status) {
			return errors.Errorf("submission %q: unknown status %q", s.ID, s.Status)
		}
	}
	return nil
}
