package steps

import (
	"steam-intake/internal/wizard/models"
	dErrors "steam-intake/pkg/domain-errors"
)

const (
	MinCapacity = 1
	MaxCapacity = 10
)

// ValidateMentor checks structural correctness of the mentor page's codes.
// No field is required here.
func ValidateMentor(u models.MentorUpdate) error {
	if u.Background != 0 && !models.MentorBackgrounds.Valid(u.Background) {
		return dErrors.New(dErrors.CodeValidation, "unknown background selection")
	}
	if u.AcademicLevel != 0 && !models.AcademicLevels.Valid(u.AcademicLevel) {
		return dErrors.New(dErrors.CodeValidation, "unknown academic level")
	}
	if u.MentoringReason != 0 && !models.MentoringReasons.Valid(u.MentoringReason) {
		return dErrors.New(dErrors.CodeValidation, "unknown mentoring reason")
	}
	return nil
}

// ApplyMentor merges the mentor page. Capacity is clamped to its slider range
// rather than rejected; the zero value falls back to the default of 1.
func ApplyMentor(rec *models.AnswerRecord, u models.MentorUpdate) {
	rec.Background = u.Background
	rec.AcademicLevel = u.AcademicLevel
	rec.ProfessionalTitle = u.ProfessionalTitle
	rec.CurrentEmployer = u.CurrentEmployer
	rec.MentoringReason = u.MentoringReason

	capacity := u.Capacity
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if capacity > MaxCapacity {
		capacity = MaxCapacity
	}
	rec.Capacity = capacity
}

// ValidateMentee checks structural correctness of the mentee page's codes.
func ValidateMentee(u models.MenteeUpdate) error {
	if u.Grade != 0 && !models.Grades.Valid(u.Grade) {
		return dErrors.New(dErrors.CodeValidation, "unknown grade level")
	}
	if _, ok := models.NormalizeChoices(u.MenteeReasons, models.MenteeReasons); !ok {
		return dErrors.New(dErrors.CodeValidation, "unknown mentoring reason selection")
	}
	if _, ok := models.NormalizeChoices(u.Interests, models.Interests); !ok {
		return dErrors.New(dErrors.CodeValidation, "unknown interest selection")
	}
	return nil
}

// ApplyMentee merges the mentee page. When the "Other…" sentinel is not part
// of a selection set its paired free text is cleared, whatever was typed.
func ApplyMentee(rec *models.AnswerRecord, u models.MenteeUpdate) {
	rec.Grade = u.Grade
	rec.MenteeReasons, _ = models.NormalizeChoices(u.MenteeReasons, models.MenteeReasons)
	rec.Interests, _ = models.NormalizeChoices(u.Interests, models.Interests)

	rec.MenteeReasonOther = u.MenteeReasonOther
	if !contains(rec.MenteeReasons, models.MenteeReasons.OtherID()) {
		rec.MenteeReasonOther = ""
	}
	rec.InterestOther = u.InterestOther
	if !contains(rec.Interests, models.Interests.OtherID()) {
		rec.InterestOther = ""
	}
}

func contains(set []int, id int) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}
