package inmemdb

import (
	"github.com/trezcool/examdesk/core/exam"
)

type examRepository struct {
	db          *examTable
	questions   *questionTable
	submissions *submissionTable
}

func NewExamRepository(db *DB) exam.Repository {
	return &examRepository{
		db:          db.exam,
		questions:   db.question,
		submissions: db.submission,
	}
}

// indexOf must be called with the lock held.
func (repo *examRepository) indexOf(id string) int {
	for i, e := range repo.db.table {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (repo *examRepository) CreateExam(e exam.Exam) (exam.Exam, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	table := make([]exam.Exam, 0, len(repo.db.table)+1)
	table = append(table, e)
	repo.db.table = append(table, repo.db.table...)
	return e, nil
}

func (repo *examRepository) QueryAllExams() ([]exam.Exam, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	exams := make([]exam.Exam, len(repo.db.table))
	copy(exams, repo.db.table)
	return exams, nil
}

func (repo *examRepository) GetExamByID(id string) (exam.Exam, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if i := repo.indexOf(id); i >= 0 {
		return repo.db.table[i], nil
	}
	return exam.Exam{}, exam.ErrNotFound
}

func (repo *examRepository) UpdateExam(e exam.Exam) (exam.Exam, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	i := repo.indexOf(e.ID)
	if i < 0 {
		return exam.Exam{}, exam.ErrNotFound
	}
	repo.db.table[i] = e
	return e, nil
}

func (repo *examRepository) DeleteExamsByID(ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, id := range ids {
		if i := repo.indexOf(id); i >= 0 {
			repo.db.table = append(repo.db.table[:i:i], repo.db.table[i+1:]...)
		}
	}
	return nil
}

func (repo *examRepository) QueryQuestions(examID string) ([]exam.Question, error) {
	repo.questions.RLock()
	defer repo.questions.RUnlock()

	questions := make([]exam.Question, 0)
	for _, q := range repo.questions.table {
		if q.ExamID == examID {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (repo *examRepository) QuerySubmissions(filter exam.SubmissionFilter) ([]exam.Submission, error) {
	repo.submissions.RLock()
	defer repo.submissions.RUnlock()

	subs := make([]exam.Submission, 0)
	for _, s := range repo.submissions.table {
		if filter.ExamID != "" && s.ExamID != filter.ExamID {
			continue
		}
		if filter.StudentID != "" && s.StudentID != filter.StudentID {
			continue
		}
		subs = append(subs, s)
	}
	return subs, nil
}
