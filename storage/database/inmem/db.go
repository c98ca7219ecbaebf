package inmemdb

import (
	"sync"

	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/fixture"
	"github.com/trezcool/examdesk/core/user"
)

type (
	// DB is the in-memory store the running process owns.
	// It is seeded from a fixture.Set and never synced back.
	DB struct {
		user       *userTable
		exam       *examTable
		question   *questionTable
		submission *submissionTable
	}

	userTable struct {
		sync.RWMutex
		table []user.User
	}

	// examTable keeps the collection order, most recent first.
	examTable struct {
		sync.RWMutex
		table []exam.Exam
	}

	questionTable struct {
		sync.RWMutex
		table []exam.Question
	}

	submissionTable struct {
		sync.RWMutex
		table []exam.Submission
	}
)

// Open returns a DB holding copies of the records of set.
func Open(set *fixture.Set) (*DB, error) {
	db := &DB{
		user:       &userTable{table: append([]user.User(nil), set.Users...)},
		exam:       &examTable{table: append([]exam.Exam(nil), set.Exams...)},
		question:   &questionTable{table: append([]exam.Question(nil), set.Questions...)},
		submission: &submissionTable{table: append([]exam.Submission(nil), set.Submissions...)},
	}
	return db, nil
}
