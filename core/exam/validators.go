package exam

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/examdesk/core"
)

var (
	attemptsTag  = "attempts"
	attemptsText = "must be a positive number or \"unlimited\""

	endAfterStartTag  = "gtfield"
	endAfterStartText = "must be after the start time"

	timestampText = "invalid date/time"
)

// InitValidators registers the exam validators on validate.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(attemptsTag, attemptsValidation)
	core.RegisterCustomTranslation(validate, translator, attemptsTag, attemptsText)
	// gtfield is only used for Exam.EndTime
	core.RegisterCustomTranslation(validate, translator, endAfterStartTag, endAfterStartText, true)
}

func (ne *NewExam) Validate(validate *validator.Validate) error {
	ne.Title = core.CleanString(ne.Title)
	ne.Subject = core.CleanString(ne.Subject)
	ne.Description = core.CleanString(ne.Description)
	ne.Instructions = core.CleanString(ne.Instructions)

	if ne.Duration == 0 {
		ne.Duration = defaultDuration
	}
	if ne.TotalQuestions == 0 {
		ne.TotalQuestions = defaultTotalQuestions
	}
	if ne.TotalMarks == 0 {
		ne.TotalMarks = defaultTotalMarks
	}
	if ne.Attempts == 0 {
		ne.Attempts = defaultAttempts
	}
	return validate.Struct(ne)
}

// Validate merges uu over orig and validates the result.
func (ue *UpdateExam) Validate(orig Exam, validate *validator.Validate) (Exam, error) {
	if err := validate.Struct(ue); err != nil {
		return Exam{}, err
	}

	exam := orig
	if ue.Title != nil {
		exam.Title = core.CleanString(*ue.Title)
	}
	if ue.Description != nil {
		exam.Description = core.CleanString(*ue.Description)
	}
	if ue.Subject != nil {
		exam.Subject = core.CleanString(*ue.Subject)
	}
	if ue.Duration != nil {
		exam.Duration = *ue.Duration
	}
	if ue.TotalQuestions != nil {
		exam.TotalQuestions = *ue.TotalQuestions
	}
	if ue.TotalMarks != nil {
		exam.TotalMarks = *ue.TotalMarks
	}
	if ue.Status != nil {
		exam.Status = *ue.Status
	}
	if ue.Instructions != nil {
		exam.Instructions = core.CleanString(*ue.Instructions)
	}
	if ue.StartTime != nil {
		t, err := core.ParseTimestamp(*ue.StartTime)
		if err != nil {
			return Exam{}, timestampError("start_time")
		}
		exam.StartTime = t
	}
	if ue.EndTime != nil {
		t, err := core.ParseTimestamp(*ue.EndTime)
		if err != nil {
			return Exam{}, timestampError("end_time")
		}
		exam.EndTime = t
	}
	if ue.Attempts != nil {
		exam.Attempts = *ue.Attempts
	}
	if ue.RandomizeQuestions != nil {
		exam.RandomizeQuestions = *ue.RandomizeQuestions
	}

	if err := validate.Struct(exam); err != nil {
		return Exam{}, err
	}
	return exam, nil
}

func timestampError(field string) error {
	return core.NewValidationError(nil, core.FieldError{Field: field, Error: timestampText})
}

// attemptsValidation only allows a positive number of attempts or AttemptsUnlimited.
func attemptsValidation(fl validator.FieldLevel) bool {
	if a, ok := fl.Field().Interface().(Attempts); ok {
		return a.IsValid()
	}
	return false
}
