package exam

import "time"

// DerivedStatus is the student facing state of an Exam, computed from the clock and the Exam's window.
// It is never stored.
type DerivedStatus string

// Derived statuses
const (
	DerivedScheduled DerivedStatus = "scheduled" // not open yet
	DerivedActive    DerivedStatus = "active"    // open, can be taken
	DerivedEnded     DerivedStatus = "ended"
)

// Status derives the student facing status of e at now. The window bounds are inclusive.
func Status(e Exam, now time.Time) DerivedStatus {
	switch {
	case now.Before(e.StartTime):
		return DerivedScheduled
	case now.After(e.EndTime):
		return DerivedEnded
	default:
		return DerivedActive
	}
}

// CanTake reports whether a student can take e at now: StartTime <= now <= EndTime.
func CanTake(e Exam, now time.Time) bool {
	return Status(e, now) == DerivedActive
}

// StudentExam is an Exam as listed to students.
type StudentExam struct {
	Exam
	Availability DerivedStatus `json:"availability"`
	CanTake      bool          `json:"can_take"`
}

func NewStudentExam(e Exam, now time.Time) StudentExam {
	return StudentExam{
		Exam:         e,
		Availability: Status(e, now),
		CanTake:      CanTake(e, now),
	}
}

// Available lists the exams students get to see: the active and scheduled ones, in the given order.
func Available(exams []Exam, now time.Time) []StudentExam {
	res := make([]StudentExam, 0, len(exams))
	for _, e := range exams {
		if e.Status == StatusActive || e.Status == StatusScheduled {
			res = append(res, NewStudentExam(e, now))
		}
	}
	return res
}
